package handler

import (
	"context"

	"github.com/fekuna/omnipos-ledger-service/internal/apperror"
	"github.com/fekuna/omnipos-ledger-service/internal/model"
	"github.com/fekuna/omnipos-ledger-service/internal/movement"
	"github.com/fekuna/omnipos-ledger-service/internal/movement/dto"
	ledgerv1 "github.com/fekuna/omnipos-ledger-service/pkg/api/ledgerv1"
	"github.com/fekuna/omnipos-ledger-service/pkg/logger"
	"go.uber.org/zap"
)

const (
	defaultPageSize = 100
	maxPageSize     = 1000
)

type MovementHandler struct {
	ledgerv1.UnimplementedMovementServiceServer
	uc     movement.Recorder
	errs   *apperror.Mapper
	logger logger.ZapLogger
}

func NewMovementHandler(uc movement.Recorder, errs *apperror.Mapper, log logger.ZapLogger) *MovementHandler {
	return &MovementHandler{
		uc:     uc,
		errs:   errs,
		logger: log,
	}
}

func (h *MovementHandler) ListMovements(ctx context.Context, req *ledgerv1.ListMovementsRequest) (*ledgerv1.ListMovementsResponse, error) {
	limit := int(req.Limit)
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	items, err := h.uc.ListMovements(ctx, dto.HistoryFilter{
		MaterialID:    req.MaterialID,
		ReferenceType: req.ReferenceType,
		ReferenceID:   req.ReferenceID,
		AfterID:       req.After,
	}, limit)
	if err != nil {
		if apperror.IsInternal(err) {
			h.logger.Error("list movements failed", zap.Error(err))
		}
		return nil, h.errs.GRPC(ctx, err)
	}

	resp := &ledgerv1.ListMovementsResponse{
		Items: make([]*ledgerv1.MovementEntry, len(items)),
	}
	for i := range items {
		resp.Items[i] = mapMovementToProto(&items[i])
	}
	if len(items) == limit {
		resp.NextAfter = items[len(items)-1].ID
	}
	return resp, nil
}

func mapMovementToProto(m *model.Movement) *ledgerv1.MovementEntry {
	entry := &ledgerv1.MovementEntry{
		ID:            m.ID,
		MaterialID:    m.MaterialID,
		MovementType:  string(m.Type),
		Quantity:      m.Quantity,
		StockAfter:    m.StockAfter,
		ReservedAfter: m.ReservedAfter,
		ReferenceType: m.ReferenceType,
		ReferenceID:   m.ReferenceID,
		Reason:        m.Reason,
		CreatedAt:     m.CreatedAt,
	}
	if m.CreatedBy != nil {
		entry.CreatedBy = *m.CreatedBy
	}
	return entry
}
