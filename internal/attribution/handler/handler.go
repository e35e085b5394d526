package handler

import (
	"context"

	"github.com/fekuna/omnipos-ledger-service/internal/apperror"
	"github.com/fekuna/omnipos-ledger-service/internal/attribution"
	"github.com/fekuna/omnipos-ledger-service/internal/attribution/dto"
	"github.com/fekuna/omnipos-ledger-service/internal/auth"
	"github.com/fekuna/omnipos-ledger-service/internal/model"
	ledgerv1 "github.com/fekuna/omnipos-ledger-service/pkg/api/ledgerv1"
	"github.com/fekuna/omnipos-ledger-service/pkg/logger"
	"go.uber.org/zap"
)

type AttributionHandler struct {
	ledgerv1.UnimplementedAttributionServiceServer
	uc     attribution.UseCase
	errs   *apperror.Mapper
	logger logger.ZapLogger
}

func NewAttributionHandler(uc attribution.UseCase, errs *apperror.Mapper, log logger.ZapLogger) *AttributionHandler {
	return &AttributionHandler{
		uc:     uc,
		errs:   errs,
		logger: log,
	}
}

func (h *AttributionHandler) CreateAttribution(ctx context.Context, req *ledgerv1.CreateAttributionRequest) (*ledgerv1.AttributionEntry, error) {
	a, err := h.uc.Create(ctx, &dto.CreateAttributionInput{
		MaterialID:    req.MaterialID,
		RequesterID:   req.RequesterID,
		RequestLineID: req.RequestLineID,
		Quantity:      req.Quantity,
		DueDate:       req.DueDate,
		ActorID:       auth.GetActorID(ctx),
	})
	if err != nil {
		return nil, h.fail(ctx, "create attribution", err)
	}
	return mapAttributionToProto(a), nil
}

func (h *AttributionHandler) GetAttribution(ctx context.Context, req *ledgerv1.GetAttributionRequest) (*ledgerv1.AttributionEntry, error) {
	a, err := h.uc.Get(ctx, req.ID)
	if err != nil {
		return nil, h.fail(ctx, "get attribution", err)
	}
	return mapAttributionToProto(a), nil
}

func (h *AttributionHandler) ListAttributions(ctx context.Context, req *ledgerv1.ListAttributionsRequest) (*ledgerv1.ListAttributionsResponse, error) {
	f := &dto.AttributionFilters{
		MaterialID:  req.MaterialID,
		RequesterID: req.RequesterID,
		Page:        int(req.Page),
		PageSize:    int(req.PageSize),
	}
	if req.Status != "" {
		st, err := model.ParseAttributionStatus(req.Status)
		if err != nil {
			return nil, h.fail(ctx, "list attributions", err)
		}
		f.Status = st
	}

	items, count, err := h.uc.List(ctx, f)
	if err != nil {
		return nil, h.fail(ctx, "list attributions", err)
	}

	entries := make([]*ledgerv1.AttributionEntry, len(items))
	for i := range items {
		entries[i] = mapAttributionToProto(&items[i])
	}

	return &ledgerv1.ListAttributionsResponse{
		Items: entries,
		Total: int32(count),
	}, nil
}

func (h *AttributionHandler) UpdateAttributionStatus(ctx context.Context, req *ledgerv1.UpdateAttributionStatusRequest) (*ledgerv1.AttributionEntry, error) {
	st, err := model.ParseAttributionStatus(req.Status)
	if err != nil {
		return nil, h.fail(ctx, "update attribution status", err)
	}

	a, err := h.uc.UpdateStatus(ctx, req.ID, st, auth.GetActorID(ctx))
	if err != nil {
		return nil, h.fail(ctx, "update attribution status", err)
	}
	return mapAttributionToProto(a), nil
}

func (h *AttributionHandler) DeleteAttribution(ctx context.Context, req *ledgerv1.DeleteAttributionRequest) (*ledgerv1.Empty, error) {
	if err := h.uc.Delete(ctx, req.ID, auth.GetActorID(ctx)); err != nil {
		return nil, h.fail(ctx, "delete attribution", err)
	}
	return &ledgerv1.Empty{}, nil
}

func (h *AttributionHandler) fail(ctx context.Context, op string, err error) error {
	if apperror.IsInternal(err) {
		h.logger.Error(op+" failed", zap.Error(err))
	} else {
		h.logger.Warn(op+" rejected", zap.Error(err))
	}
	return h.errs.GRPC(ctx, err)
}

func mapAttributionToProto(a *model.Attribution) *ledgerv1.AttributionEntry {
	entry := &ledgerv1.AttributionEntry{
		ID:                 a.ID,
		MaterialID:         a.MaterialID,
		RequesterID:        a.RequesterID,
		QuantityAttributed: a.QuantityAttributed,
		DateAttributed:     a.DateAttributed,
		DueDate:            a.DueDate,
		Status:             string(a.Status),
		ReturnedAt:         a.ReturnedAt,
	}
	if a.RequestLineID != nil {
		entry.RequestLineID = *a.RequestLineID
	}
	if a.CreatedBy != nil {
		entry.CreatedBy = *a.CreatedBy
	}
	return entry
}
