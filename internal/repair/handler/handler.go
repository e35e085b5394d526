package handler

import (
	"context"

	"github.com/fekuna/omnipos-ledger-service/internal/apperror"
	"github.com/fekuna/omnipos-ledger-service/internal/model"
	"github.com/fekuna/omnipos-ledger-service/internal/repair"
	"github.com/fekuna/omnipos-ledger-service/internal/repair/dto"
	ledgerv1 "github.com/fekuna/omnipos-ledger-service/pkg/api/ledgerv1"
	"github.com/fekuna/omnipos-ledger-service/pkg/logger"
	"go.uber.org/zap"
)

type RepairTicketHandler struct {
	ledgerv1.UnimplementedRepairTicketServiceServer
	uc     repair.UseCase
	errs   *apperror.Mapper
	logger logger.ZapLogger
}

func NewRepairTicketHandler(uc repair.UseCase, errs *apperror.Mapper, log logger.ZapLogger) *RepairTicketHandler {
	return &RepairTicketHandler{
		uc:     uc,
		errs:   errs,
		logger: log,
	}
}

func (h *RepairTicketHandler) CreateRepairTicket(ctx context.Context, req *ledgerv1.CreateRepairTicketRequest) (*ledgerv1.RepairTicketEntry, error) {
	t, err := h.uc.Create(ctx, &dto.CreateTicketInput{
		MaterialID:  req.MaterialID,
		RequesterID: req.RequesterID,
		Description: req.Description,
		Status:      model.RepairStatus(req.Status),
	})
	if err != nil {
		return nil, h.fail(ctx, "create repair ticket", err)
	}
	return mapTicketToProto(t), nil
}

func (h *RepairTicketHandler) GetRepairTicket(ctx context.Context, req *ledgerv1.GetRepairTicketRequest) (*ledgerv1.RepairTicketEntry, error) {
	t, err := h.uc.Get(ctx, req.ID)
	if err != nil {
		return nil, h.fail(ctx, "get repair ticket", err)
	}
	return mapTicketToProto(t), nil
}

func (h *RepairTicketHandler) ListRepairTickets(ctx context.Context, req *ledgerv1.ListRepairTicketsRequest) (*ledgerv1.ListRepairTicketsResponse, error) {
	f := &dto.TicketFilters{
		MaterialID:  req.MaterialID,
		RequesterID: req.RequesterID,
		Page:        int(req.Page),
		PageSize:    int(req.PageSize),
	}
	if req.Status != "" {
		st, err := model.ParseRepairStatus(req.Status)
		if err != nil {
			return nil, h.fail(ctx, "list repair tickets", err)
		}
		f.Status = st
	}

	items, count, err := h.uc.List(ctx, f)
	if err != nil {
		return nil, h.fail(ctx, "list repair tickets", err)
	}

	entries := make([]*ledgerv1.RepairTicketEntry, len(items))
	for i := range items {
		entries[i] = mapTicketToProto(&items[i])
	}

	return &ledgerv1.ListRepairTicketsResponse{
		Items: entries,
		Total: int32(count),
	}, nil
}

func (h *RepairTicketHandler) UpdateRepairTicketStatus(ctx context.Context, req *ledgerv1.UpdateRepairTicketStatusRequest) (*ledgerv1.RepairTicketEntry, error) {
	st, err := model.ParseRepairStatus(req.Status)
	if err != nil {
		return nil, h.fail(ctx, "update repair ticket", err)
	}

	t, err := h.uc.UpdateStatus(ctx, req.ID, st)
	if err != nil {
		return nil, h.fail(ctx, "update repair ticket", err)
	}
	return mapTicketToProto(t), nil
}

func (h *RepairTicketHandler) fail(ctx context.Context, op string, err error) error {
	if apperror.IsInternal(err) {
		h.logger.Error(op+" failed", zap.Error(err))
	} else {
		h.logger.Warn(op+" rejected", zap.Error(err))
	}
	return h.errs.GRPC(ctx, err)
}

func mapTicketToProto(t *model.RepairTicket) *ledgerv1.RepairTicketEntry {
	return &ledgerv1.RepairTicketEntry{
		ID:           t.ID,
		MaterialID:   t.MaterialID,
		RequesterID:  t.RequesterID,
		Description:  t.Description,
		Status:       string(t.Status),
		DateReported: t.DateReported,
		UpdatedAt:    t.UpdatedAt,
		ClosedAt:     t.ClosedAt,
	}
}
