// Package server assembles the ledger's usecases and exposes them over
// gRPC. The REST surface lives in the router subpackage.
package server

import (
	"time"

	"github.com/fekuna/omnipos-ledger-service/internal/apperror"
	"github.com/fekuna/omnipos-ledger-service/internal/attribution"
	attributionH "github.com/fekuna/omnipos-ledger-service/internal/attribution/handler"
	attributionRepo "github.com/fekuna/omnipos-ledger-service/internal/attribution/repository"
	attributionUC "github.com/fekuna/omnipos-ledger-service/internal/attribution/usecase"
	"github.com/fekuna/omnipos-ledger-service/internal/material"
	materialRepo "github.com/fekuna/omnipos-ledger-service/internal/material/repository"
	materialUC "github.com/fekuna/omnipos-ledger-service/internal/material/usecase"
	"github.com/fekuna/omnipos-ledger-service/internal/movement"
	movementH "github.com/fekuna/omnipos-ledger-service/internal/movement/handler"
	movementRepo "github.com/fekuna/omnipos-ledger-service/internal/movement/repository"
	movementUC "github.com/fekuna/omnipos-ledger-service/internal/movement/usecase"
	"github.com/fekuna/omnipos-ledger-service/internal/repair"
	repairH "github.com/fekuna/omnipos-ledger-service/internal/repair/handler"
	repairRepo "github.com/fekuna/omnipos-ledger-service/internal/repair/repository"
	repairUC "github.com/fekuna/omnipos-ledger-service/internal/repair/usecase"
	"github.com/fekuna/omnipos-ledger-service/internal/report"
	reportH "github.com/fekuna/omnipos-ledger-service/internal/report/handler"
	reportRepo "github.com/fekuna/omnipos-ledger-service/internal/report/repository"
	reportUC "github.com/fekuna/omnipos-ledger-service/internal/report/usecase"
	"github.com/fekuna/omnipos-ledger-service/internal/requestline"
	requestlineRepo "github.com/fekuna/omnipos-ledger-service/internal/requestline/repository"
	requestlineUC "github.com/fekuna/omnipos-ledger-service/internal/requestline/usecase"
	"github.com/fekuna/omnipos-ledger-service/internal/stock"
	stockH "github.com/fekuna/omnipos-ledger-service/internal/stock/handler"
	stockRepo "github.com/fekuna/omnipos-ledger-service/internal/stock/repository"
	stockUC "github.com/fekuna/omnipos-ledger-service/internal/stock/usecase"
	ledgerv1 "github.com/fekuna/omnipos-ledger-service/pkg/api/ledgerv1"
	"github.com/fekuna/omnipos-ledger-service/pkg/clock"
	"github.com/fekuna/omnipos-ledger-service/pkg/database"
	"github.com/fekuna/omnipos-ledger-service/pkg/logger"
	"github.com/fekuna/omnipos-ledger-service/pkg/middleware"
	"github.com/fekuna/omnipos-ledger-service/pkg/rpc"
	"github.com/jmoiron/sqlx"
	"google.golang.org/grpc"
)

type Deps struct {
	DB     *sqlx.DB
	Clock  clock.Clock
	Logger logger.ZapLogger

	// Optional. Leave nil (untyped) to disable.
	Cache   materialUC.Cache
	Locker  stockUC.Locker
	LockTTL time.Duration
}

// Services holds one instance of every usecase, shared by the gRPC
// server, the REST router and the event listener.
type Services struct {
	Materials    material.UseCase
	Movements    movement.Recorder
	Stock        stock.UseCase
	Lines        requestline.Linker
	Attributions attribution.UseCase
	Repairs      repair.UseCase
	Reports      report.UseCase
}

func NewServices(d Deps) *Services {
	clk := d.Clock
	if clk == nil {
		clk = clock.Real()
	}
	log := d.Logger
	if log == nil {
		log = logger.NewNop()
	}
	tx := database.NewTransactor(d.DB)

	materials := materialUC.NewMaterialUseCase(materialRepo.NewSQLRepository(d.DB), d.Cache, clk, log.Named("material"))
	movements := movementUC.NewMovementUseCase(movementRepo.NewSQLRepository(d.DB), log.Named("movement"))
	stocks := stockUC.NewStockUseCase(
		stockRepo.NewSQLRepository(d.DB),
		movements,
		materials,
		tx,
		clk,
		log.Named("stock"),
		stockUC.Options{Locker: d.Locker, LockTTL: d.LockTTL},
	)
	lines := requestlineUC.NewLinkerUseCase(requestlineRepo.NewSQLRepository(d.DB), clk, log.Named("requestline"))
	attributions := attributionUC.NewAttributionUseCase(attributionRepo.NewSQLRepository(d.DB), stocks, lines, tx, clk, log.Named("attribution"))
	repairs := repairUC.NewRepairUseCase(repairRepo.NewSQLRepository(d.DB), materials, clk, log.Named("repair"))
	reports := reportUC.NewReportUseCase(reportRepo.NewSQLRepository(d.DB), stocks, attributions, clk, log.Named("report"))

	return &Services{
		Materials:    materials,
		Movements:    movements,
		Stock:        stocks,
		Lines:        lines,
		Attributions: attributions,
		Repairs:      repairs,
		Reports:      reports,
	}
}

// NewGRPCServer registers every ledger service. Requests are decoded with
// the JSON codec whatever content-subtype the client declares.
func NewGRPCServer(svc *Services, errs *apperror.Mapper, log logger.ZapLogger, opts ...grpc.ServerOption) *grpc.Server {
	opts = append([]grpc.ServerOption{
		grpc.ForceServerCodec(rpc.Codec{}),
		grpc.ChainUnaryInterceptor(
			middleware.ContextInterceptor(),
			middleware.LoggingInterceptor(log.Named("grpc")),
		),
	}, opts...)
	s := grpc.NewServer(opts...)

	ledgerv1.RegisterStockServiceServer(s, stockH.NewStockHandler(svc.Stock, errs, log.Named("stock")))
	ledgerv1.RegisterMovementServiceServer(s, movementH.NewMovementHandler(svc.Movements, errs, log.Named("movement")))
	ledgerv1.RegisterAttributionServiceServer(s, attributionH.NewAttributionHandler(svc.Attributions, errs, log.Named("attribution")))
	ledgerv1.RegisterRepairTicketServiceServer(s, repairH.NewRepairTicketHandler(svc.Repairs, errs, log.Named("repair")))
	ledgerv1.RegisterReportServiceServer(s, reportH.NewReportHandler(svc.Reports, errs, log.Named("report")))
	return s
}
