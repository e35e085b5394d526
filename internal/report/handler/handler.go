package handler

import (
	"context"

	"github.com/fekuna/omnipos-ledger-service/internal/apperror"
	"github.com/fekuna/omnipos-ledger-service/internal/report"
	ledgerv1 "github.com/fekuna/omnipos-ledger-service/pkg/api/ledgerv1"
	"github.com/fekuna/omnipos-ledger-service/pkg/logger"
	"go.uber.org/zap"
)

type ReportHandler struct {
	ledgerv1.UnimplementedReportServiceServer
	uc     report.UseCase
	errs   *apperror.Mapper
	logger logger.ZapLogger
}

func NewReportHandler(uc report.UseCase, errs *apperror.Mapper, log logger.ZapLogger) *ReportHandler {
	return &ReportHandler{
		uc:     uc,
		errs:   errs,
		logger: log,
	}
}

func (h *ReportHandler) GetDashboard(ctx context.Context, _ *ledgerv1.GetDashboardRequest) (*ledgerv1.DashboardResponse, error) {
	s, err := h.uc.GetDashboard(ctx)
	if err != nil {
		h.logger.Error("get dashboard failed", zap.Error(err))
		return nil, h.errs.GRPC(ctx, err)
	}

	return &ledgerv1.DashboardResponse{
		Materials:                s.Materials,
		StockUnits:               s.StockUnits,
		ReservedUnits:            s.ReservedUnits,
		AvailableUnits:           s.AvailableUnits,
		LowStock:                 s.LowStock,
		AttributionsInPossession: s.AttributionsInPossession,
		AttributionsOverdue:      s.AttributionsOverdue,
		AttributionsReturned:     s.AttributionsReturned,
		TicketsReported:          s.TicketsReported,
		TicketsInProgress:        s.TicketsInProgress,
		TicketsResolved:          s.TicketsResolved,
		TicketsIrreparable:       s.TicketsIrreparable,
		GeneratedAt:              s.GeneratedAt,
	}, nil
}
