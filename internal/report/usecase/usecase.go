package usecase

import (
	"context"
	"fmt"

	"github.com/fekuna/omnipos-ledger-service/internal/attribution"
	attributiondto "github.com/fekuna/omnipos-ledger-service/internal/attribution/dto"
	"github.com/fekuna/omnipos-ledger-service/internal/model"
	"github.com/fekuna/omnipos-ledger-service/internal/report"
	"github.com/fekuna/omnipos-ledger-service/internal/stock"
	"github.com/fekuna/omnipos-ledger-service/pkg/clock"
	"github.com/fekuna/omnipos-ledger-service/pkg/logger"
)

// alertPageSize bounds each section of an alert report.
const alertPageSize = 100

type reportUseCase struct {
	repo         report.Repository
	stock        stock.UseCase
	attributions attribution.UseCase
	clock        clock.Clock
	logger       logger.ZapLogger
}

func NewReportUseCase(
	repo report.Repository,
	stockUC stock.UseCase,
	attributions attribution.UseCase,
	clk clock.Clock,
	log logger.ZapLogger,
) report.UseCase {
	return &reportUseCase{
		repo:         repo,
		stock:        stockUC,
		attributions: attributions,
		clock:        clk,
		logger:       log,
	}
}

func (uc *reportUseCase) GetDashboard(ctx context.Context) (*model.DashboardStats, error) {
	return uc.repo.Dashboard(ctx, uc.clock.Now())
}

func (uc *reportUseCase) BuildAlerts(ctx context.Context) (*model.AlertReport, error) {
	low, _, err := uc.stock.ListLowStock(ctx, 1, alertPageSize)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}

	overdue, _, err := uc.attributions.List(ctx, &attributiondto.AttributionFilters{
		Status:   model.AttributionOverdue,
		Page:     1,
		PageSize: alertPageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("list overdue attributions: %w", err)
	}

	return &model.AlertReport{
		GeneratedAt: uc.clock.Now(),
		LowStock:    low,
		Overdue:     overdue,
	}, nil
}
