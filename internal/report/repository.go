package report

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-ledger-service/internal/model"
)

type Repository interface {
	// Dashboard aggregates current rows; now decides which attributions
	// count as overdue.
	Dashboard(ctx context.Context, now time.Time) (*model.DashboardStats, error)
}
