package usecase

import (
	"context"
	"fmt"

	"github.com/fekuna/omnipos-ledger-service/internal/model"
	"github.com/fekuna/omnipos-ledger-service/internal/requestline"
	"github.com/fekuna/omnipos-ledger-service/pkg/clock"
	"github.com/fekuna/omnipos-ledger-service/pkg/logger"
	"go.uber.org/zap"
)

type linkerUseCase struct {
	repo   requestline.Repository
	clock  clock.Clock
	logger logger.ZapLogger
}

func NewLinkerUseCase(repo requestline.Repository, clk clock.Clock, log logger.ZapLogger) requestline.Linker {
	return &linkerUseCase{
		repo:   repo,
		clock:  clk,
		logger: log,
	}
}

func (uc *linkerUseCase) IsUnclaimed(ctx context.Context, lineID string) (bool, error) {
	claim, err := uc.repo.FindClaim(ctx, lineID)
	if err != nil {
		return false, fmt.Errorf("find claim %s: %w", lineID, err)
	}
	return claim == nil, nil
}

func (uc *linkerUseCase) Claim(ctx context.Context, lineID, attributionID string) error {
	if lineID == "" || attributionID == "" {
		return fmt.Errorf("%w: request line and attribution ids are required", model.ErrInvalidArgument)
	}

	ok, err := uc.repo.InsertClaim(ctx, &model.RequestLineClaim{
		RequestLineID: lineID,
		AttributionID: attributionID,
		ClaimedAt:     uc.clock.Now(),
	})
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("request line %s: %w", lineID, model.ErrDuplicateAttribution)
	}
	return nil
}

func (uc *linkerUseCase) Unclaim(ctx context.Context, lineID string) error {
	if err := uc.repo.DeleteClaim(ctx, lineID); err != nil {
		return fmt.Errorf("unclaim %s: %w", lineID, err)
	}
	return nil
}

func (uc *linkerUseCase) GetLine(ctx context.Context, id string) (*model.RequestLine, error) {
	line, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find request line %s: %w", id, err)
	}
	if line == nil {
		return nil, fmt.Errorf("request line %s: %w", id, model.ErrNotFound)
	}
	return line, nil
}

func (uc *linkerUseCase) SyncLine(ctx context.Context, line *model.RequestLine) error {
	if line == nil || line.ID == "" || line.MaterialID == "" {
		return fmt.Errorf("%w: request line id and material are required", model.ErrInvalidArgument)
	}
	if line.QuantityRequested <= 0 {
		return fmt.Errorf("%w: requested quantity must be positive", model.ErrInvalidQuantity)
	}

	line.UpdatedAt = uc.clock.Now()
	if err := uc.repo.Upsert(ctx, line); err != nil {
		return err
	}

	uc.logger.Debug("request line synced", zap.String("request_line_id", line.ID), zap.String("material_id", line.MaterialID))
	return nil
}
