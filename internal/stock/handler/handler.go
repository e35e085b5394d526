package handler

import (
	"context"

	"github.com/fekuna/omnipos-ledger-service/internal/apperror"
	"github.com/fekuna/omnipos-ledger-service/internal/auth"
	"github.com/fekuna/omnipos-ledger-service/internal/model"
	"github.com/fekuna/omnipos-ledger-service/internal/stock"
	"github.com/fekuna/omnipos-ledger-service/internal/stock/dto"
	ledgerv1 "github.com/fekuna/omnipos-ledger-service/pkg/api/ledgerv1"
	"github.com/fekuna/omnipos-ledger-service/pkg/logger"
	"go.uber.org/zap"
)

type StockHandler struct {
	ledgerv1.UnimplementedStockServiceServer
	uc     stock.UseCase
	errs   *apperror.Mapper
	logger logger.ZapLogger
}

func NewStockHandler(uc stock.UseCase, errs *apperror.Mapper, log logger.ZapLogger) *StockHandler {
	return &StockHandler{
		uc:     uc,
		errs:   errs,
		logger: log,
	}
}

func (h *StockHandler) AdjustStock(ctx context.Context, req *ledgerv1.AdjustStockRequest) (*ledgerv1.StockEntry, error) {
	var movementType model.MovementType
	if req.MovementType != "" {
		t, err := model.ParseMovementType(req.MovementType)
		if err != nil {
			return nil, h.fail(ctx, "adjust stock", err)
		}
		movementType = t
	}

	rec, err := h.uc.AdjustStock(ctx, &dto.AdjustStockInput{
		MaterialID:    req.MaterialID,
		Delta:         req.Delta,
		MovementType:  movementType,
		ReferenceType: req.ReferenceType,
		ReferenceID:   req.ReferenceID,
		Reason:        req.Reason,
		ActorID:       auth.GetActorID(ctx),
	})
	if err != nil {
		return nil, h.fail(ctx, "adjust stock", err)
	}
	return mapStockToProto(rec), nil
}

func (h *StockHandler) ReserveStock(ctx context.Context, req *ledgerv1.ReserveStockRequest) (*ledgerv1.StockEntry, error) {
	rec, err := h.uc.Reserve(ctx, &dto.ReserveInput{
		MaterialID:    req.MaterialID,
		Quantity:      req.Quantity,
		ReferenceType: req.ReferenceType,
		ReferenceID:   req.ReferenceID,
		Reason:        req.Reason,
		ActorID:       auth.GetActorID(ctx),
	})
	if err != nil {
		return nil, h.fail(ctx, "reserve stock", err)
	}
	return mapStockToProto(rec), nil
}

func (h *StockHandler) ReleaseStock(ctx context.Context, req *ledgerv1.ReleaseStockRequest) (*ledgerv1.StockEntry, error) {
	rec, err := h.uc.Release(ctx, &dto.ReleaseInput{
		MaterialID:    req.MaterialID,
		Quantity:      req.Quantity,
		ReferenceType: req.ReferenceType,
		ReferenceID:   req.ReferenceID,
		Reason:        req.Reason,
		ActorID:       auth.GetActorID(ctx),
	})
	if err != nil {
		return nil, h.fail(ctx, "release stock", err)
	}
	return mapStockToProto(rec), nil
}

func (h *StockHandler) ConfigureStock(ctx context.Context, req *ledgerv1.ConfigureStockRequest) (*ledgerv1.StockEntry, error) {
	rec, err := h.uc.ConfigureStock(ctx, &dto.ConfigureStockInput{
		MaterialID:     req.MaterialID,
		AlertThreshold: req.AlertThreshold,
		Location:       req.Location,
	})
	if err != nil {
		return nil, h.fail(ctx, "configure stock", err)
	}
	return mapStockToProto(rec), nil
}

func (h *StockHandler) GetStock(ctx context.Context, req *ledgerv1.GetStockRequest) (*ledgerv1.StockEntry, error) {
	rec, err := h.uc.GetStock(ctx, req.MaterialID)
	if err != nil {
		return nil, h.fail(ctx, "get stock", err)
	}
	return mapStockToProto(rec), nil
}

func (h *StockHandler) ListLowStock(ctx context.Context, req *ledgerv1.ListLowStockRequest) (*ledgerv1.ListLowStockResponse, error) {
	items, count, err := h.uc.ListLowStock(ctx, int(req.Page), int(req.PageSize))
	if err != nil {
		return nil, h.fail(ctx, "list low stock", err)
	}

	entries := make([]*ledgerv1.StockEntry, len(items))
	for i := range items {
		entries[i] = mapStockToProto(&items[i])
	}

	return &ledgerv1.ListLowStockResponse{
		Items: entries,
		Total: int32(count),
	}, nil
}

func (h *StockHandler) fail(ctx context.Context, op string, err error) error {
	if apperror.IsInternal(err) {
		h.logger.Error(op+" failed", zap.Error(err))
	} else {
		h.logger.Warn(op+" rejected", zap.Error(err))
	}
	return h.errs.GRPC(ctx, err)
}

func mapStockToProto(s *model.StockRecord) *ledgerv1.StockEntry {
	return &ledgerv1.StockEntry{
		MaterialID:        s.MaterialID,
		QuantityStock:     s.QuantityStock,
		QuantityReserved:  s.QuantityReserved,
		QuantityAvailable: s.Available(),
		AlertThreshold:    s.AlertThreshold,
		Location:          s.Location,
		LowStock:          s.LowStock(),
		UpdatedAt:         s.UpdatedAt,
	}
}
