package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/fekuna/omnipos-ledger-service/internal/attribution"
	"github.com/fekuna/omnipos-ledger-service/internal/attribution/dto"
	"github.com/fekuna/omnipos-ledger-service/internal/auth"
	"github.com/fekuna/omnipos-ledger-service/internal/model"
	"github.com/fekuna/omnipos-ledger-service/internal/requestline"
	"github.com/fekuna/omnipos-ledger-service/internal/stock"
	stockdto "github.com/fekuna/omnipos-ledger-service/internal/stock/dto"
	"github.com/fekuna/omnipos-ledger-service/pkg/clock"
	"github.com/fekuna/omnipos-ledger-service/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Transactor is satisfied by *database.Transactor.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type attributionUseCase struct {
	repo   attribution.Repository
	stock  stock.UseCase
	lines  requestline.Linker
	tx     Transactor
	clock  clock.Clock
	logger logger.ZapLogger
}

func NewAttributionUseCase(
	repo attribution.Repository,
	stockUC stock.UseCase,
	lines requestline.Linker,
	tx Transactor,
	clk clock.Clock,
	log logger.ZapLogger,
) attribution.UseCase {
	return &attributionUseCase{
		repo:   repo,
		stock:  stockUC,
		lines:  lines,
		tx:     tx,
		clock:  clk,
		logger: log,
	}
}

func (uc *attributionUseCase) Create(ctx context.Context, input *dto.CreateAttributionInput) (*model.Attribution, error) {
	if input.Quantity <= 0 {
		return nil, fmt.Errorf("%w: attributed quantity must be positive, got %d", model.ErrInvalidQuantity, input.Quantity)
	}
	if input.MaterialID == "" || input.RequesterID == "" {
		return nil, fmt.Errorf("%w: material and requester are required", model.ErrInvalidArgument)
	}

	now := uc.clock.Now()
	if input.DueDate != nil && input.DueDate.Before(now) {
		return nil, fmt.Errorf("%w: due date %s is in the past", model.ErrInvalidArgument, input.DueDate.Format("2006-01-02"))
	}

	var lineID *string
	if input.RequestLineID != "" {
		line, err := uc.lines.GetLine(ctx, input.RequestLineID)
		if err != nil {
			return nil, err
		}
		if line.MaterialID != input.MaterialID {
			return nil, fmt.Errorf("%w: request line %s is for material %s", model.ErrInvalidArgument, line.ID, line.MaterialID)
		}
		if input.Quantity > line.QuantityRequested {
			return nil, fmt.Errorf("%w: %d exceeds the %d requested", model.ErrInvalidQuantity, input.Quantity, line.QuantityRequested)
		}

		// Fast path only; the claim below is what enforces uniqueness.
		free, err := uc.lines.IsUnclaimed(ctx, line.ID)
		if err != nil {
			return nil, err
		}
		if !free {
			return nil, fmt.Errorf("request line %s: %w", line.ID, model.ErrDuplicateAttribution)
		}
		lineID = &line.ID
	}

	a := &model.Attribution{
		ID:                 uuid.New().String(),
		MaterialID:         input.MaterialID,
		RequesterID:        input.RequesterID,
		RequestLineID:      lineID,
		QuantityAttributed: input.Quantity,
		DateAttributed:     now,
		DueDate:            utc(input.DueDate),
		Status:             model.AttributionInPossession,
		CreatedBy:          auth.ActorPtr(input.ActorID),
		UpdatedAt:          now,
	}

	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		if lineID != nil {
			if err := uc.lines.Claim(ctx, *lineID, a.ID); err != nil {
				return err
			}
		}

		if _, err := uc.stock.AdjustStock(ctx, &stockdto.AdjustStockInput{
			MaterialID:    a.MaterialID,
			Delta:         -a.QuantityAttributed,
			MovementType:  model.MovementSortie,
			ReferenceType: model.ReferenceAttribution,
			ReferenceID:   a.ID,
			Reason:        "attribution to " + a.RequesterID,
			ActorID:       input.ActorID,
		}); err != nil {
			return err
		}

		return uc.repo.Create(ctx, a)
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("attribution created",
		zap.String("attribution_id", a.ID),
		zap.String("material_id", a.MaterialID),
		zap.String("requester_id", a.RequesterID),
		zap.Int64("quantity", a.QuantityAttributed),
	)

	resolved := a.Resolve(now)
	return &resolved, nil
}

func (uc *attributionUseCase) MarkReturned(ctx context.Context, id, actorID string) (*model.Attribution, error) {
	var a *model.Attribution
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		found, err := uc.find(ctx, id)
		if err != nil {
			return err
		}
		if err := uc.restore(ctx, found, actorID, "returned"); err != nil {
			return err
		}

		a, err = uc.find(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("attribution returned",
		zap.String("attribution_id", a.ID),
		zap.String("material_id", a.MaterialID),
		zap.Int64("quantity", a.QuantityAttributed),
	)

	resolved := a.Resolve(uc.clock.Now())
	return &resolved, nil
}

func (uc *attributionUseCase) UpdateStatus(ctx context.Context, id string, status model.AttributionStatus, actorID string) (*model.Attribution, error) {
	if status != model.AttributionReturned {
		return nil, fmt.Errorf("%w: attributions can only be moved to %s, not %s",
			model.ErrInvalidTransition, model.AttributionReturned, status)
	}
	return uc.MarkReturned(ctx, id, actorID)
}

func (uc *attributionUseCase) Delete(ctx context.Context, id, actorID string) error {
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		a, err := uc.find(ctx, id)
		if err != nil {
			return err
		}

		if a.Status != model.AttributionReturned {
			if err := uc.restore(ctx, a, actorID, "deleted"); err != nil {
				return err
			}
		}

		if _, err := uc.repo.Delete(ctx, a.ID); err != nil {
			return fmt.Errorf("delete attribution %s: %w", a.ID, err)
		}
		if a.RequestLineID != nil {
			return uc.lines.Unclaim(ctx, *a.RequestLineID)
		}
		return nil
	})
	if err != nil {
		return err
	}

	uc.logger.Info("attribution deleted", zap.String("attribution_id", id))
	return nil
}

func (uc *attributionUseCase) Get(ctx context.Context, id string) (*model.Attribution, error) {
	a, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	resolved := a.Resolve(uc.clock.Now())
	return &resolved, nil
}

func (uc *attributionUseCase) List(ctx context.Context, f *dto.AttributionFilters) ([]model.Attribution, int, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize <= 0 {
		f.PageSize = 20
	}

	now := uc.clock.Now()
	items, total, err := uc.repo.FindAll(ctx, f, now)
	if err != nil {
		return nil, 0, fmt.Errorf("list attributions: %w", err)
	}
	for i := range items {
		items[i] = items[i].Resolve(now)
	}
	return items, total, nil
}

func (uc *attributionUseCase) find(ctx context.Context, id string) (*model.Attribution, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: attribution id is required", model.ErrInvalidArgument)
	}
	a, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find attribution %s: %w", id, err)
	}
	if a == nil {
		return nil, fmt.Errorf("attribution %s: %w", id, model.ErrNotFound)
	}
	return a, nil
}

// restore flips the attribution to RETURNED and puts its quantity back in
// stock. The status swap runs first so that only one caller restores.
func (uc *attributionUseCase) restore(ctx context.Context, a *model.Attribution, actorID, reason string) error {
	ok, err := uc.repo.MarkReturned(ctx, a.ID, uc.clock.Now())
	if err != nil {
		return fmt.Errorf("return attribution %s: %w", a.ID, err)
	}
	if !ok {
		return fmt.Errorf("%w: attribution %s is already %s", model.ErrInvalidTransition, a.ID, model.AttributionReturned)
	}

	_, err = uc.stock.AdjustStock(ctx, &stockdto.AdjustStockInput{
		MaterialID:    a.MaterialID,
		Delta:         a.QuantityAttributed,
		MovementType:  model.MovementEntree,
		ReferenceType: model.ReferenceAttribution,
		ReferenceID:   a.ID,
		Reason:        "attribution " + reason,
		ActorID:       actorID,
	})
	return err
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
