package report

import (
	"context"

	"github.com/fekuna/omnipos-ledger-service/internal/model"
)

type UseCase interface {
	GetDashboard(ctx context.Context) (*model.DashboardStats, error)
	// BuildAlerts collects low-stock records and overdue attributions.
	BuildAlerts(ctx context.Context) (*model.AlertReport, error)
}
