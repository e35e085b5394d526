package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fekuna/omnipos-ledger-service/internal/material"
	"github.com/fekuna/omnipos-ledger-service/internal/model"
	"github.com/fekuna/omnipos-ledger-service/internal/repair"
	"github.com/fekuna/omnipos-ledger-service/internal/repair/dto"
	"github.com/fekuna/omnipos-ledger-service/pkg/clock"
	"github.com/fekuna/omnipos-ledger-service/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type repairUseCase struct {
	repo      repair.Repository
	materials material.UseCase
	clock     clock.Clock
	logger    logger.ZapLogger
}

func NewRepairUseCase(repo repair.Repository, materials material.UseCase, clk clock.Clock, log logger.ZapLogger) repair.UseCase {
	return &repairUseCase{
		repo:      repo,
		materials: materials,
		clock:     clk,
		logger:    log,
	}
}

func (uc *repairUseCase) Create(ctx context.Context, input *dto.CreateTicketInput) (*model.RepairTicket, error) {
	description := strings.TrimSpace(input.Description)
	if input.MaterialID == "" || input.RequesterID == "" || description == "" {
		return nil, fmt.Errorf("%w: material, requester and description are required", model.ErrInvalidArgument)
	}
	if _, err := uc.materials.GetMaterial(ctx, input.MaterialID); err != nil {
		return nil, err
	}

	if input.Status != "" && input.Status != model.RepairReported {
		uc.logger.Debug("ignoring initial repair status", zap.String("status", string(input.Status)))
	}

	now := uc.clock.Now()
	t := &model.RepairTicket{
		ID:           uuid.New().String(),
		MaterialID:   input.MaterialID,
		RequesterID:  input.RequesterID,
		Description:  description,
		Status:       model.RepairReported,
		DateReported: now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, t); err != nil {
		return nil, err
	}

	uc.logger.Info("repair ticket reported",
		zap.String("ticket_id", t.ID),
		zap.String("material_id", t.MaterialID),
		zap.String("requester_id", t.RequesterID),
	)
	return t, nil
}

func (uc *repairUseCase) UpdateStatus(ctx context.Context, id string, target model.RepairStatus) (*model.RepairTicket, error) {
	if _, err := model.ParseRepairStatus(string(target)); err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	var closedAt *time.Time
	if target.Terminal() {
		closedAt = &now
	}

	ok, err := uc.repo.Transition(ctx, id, model.RepairPredecessors(target), target, now, closedAt)
	if err != nil {
		return nil, fmt.Errorf("transition ticket %s: %w", id, err)
	}

	t, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: ticket %s cannot move from %s to %s", model.ErrInvalidTransition, id, t.Status, target)
	}

	uc.logger.Info("repair ticket updated", zap.String("ticket_id", id), zap.String("status", string(target)))
	return t, nil
}

func (uc *repairUseCase) Get(ctx context.Context, id string) (*model.RepairTicket, error) {
	t, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find ticket %s: %w", id, err)
	}
	if t == nil {
		return nil, fmt.Errorf("repair ticket %s: %w", id, model.ErrNotFound)
	}
	return t, nil
}

func (uc *repairUseCase) List(ctx context.Context, f *dto.TicketFilters) ([]model.RepairTicket, int, error) {
	if f.Status != "" {
		if _, err := model.ParseRepairStatus(string(f.Status)); err != nil {
			return nil, 0, err
		}
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize <= 0 {
		f.PageSize = 20
	}
	return uc.repo.FindAll(ctx, f)
}
