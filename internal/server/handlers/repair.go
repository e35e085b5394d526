package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fekuna/omnipos-ledger-service/internal/model"
	"github.com/fekuna/omnipos-ledger-service/internal/repair/dto"
	ledgerv1 "github.com/fekuna/omnipos-ledger-service/pkg/api/ledgerv1"
)

func (h *LedgerHandler) CreateRepairTicket(c *gin.Context) {
	var req ledgerv1.CreateRepairTicketRequest
	if !h.bind(c, &req) {
		return
	}

	t, err := h.svc.Repairs.Create(c.Request.Context(), &dto.CreateTicketInput{
		MaterialID:  req.MaterialID,
		RequesterID: req.RequesterID,
		Description: req.Description,
		Status:      model.RepairStatus(req.Status),
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (h *LedgerHandler) GetRepairTicket(c *gin.Context) {
	t, err := h.svc.Repairs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

type ticketQuery struct {
	pageQuery
	MaterialID  string `form:"material_id"`
	RequesterID string `form:"requester_id"`
	Status      string `form:"status"`
}

func (h *LedgerHandler) ListRepairTickets(c *gin.Context) {
	var q ticketQuery
	if !h.bindQuery(c, &q) {
		return
	}

	f := &dto.TicketFilters{
		MaterialID:  q.MaterialID,
		RequesterID: q.RequesterID,
		Page:        q.Page,
		PageSize:    q.PageSize,
	}
	if q.Status != "" {
		st, err := model.ParseRepairStatus(q.Status)
		if err != nil {
			h.fail(c, err)
			return
		}
		f.Status = st
	}

	items, total, err := h.svc.Repairs.List(c.Request.Context(), f)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse[model.RepairTicket]{Items: items, Total: total})
}

func (h *LedgerHandler) UpdateRepairTicketStatus(c *gin.Context) {
	var req statusRequest
	if !h.bind(c, &req) {
		return
	}
	st, err := model.ParseRepairStatus(req.Status)
	if err != nil {
		h.fail(c, err)
		return
	}

	t, err := h.svc.Repairs.UpdateStatus(c.Request.Context(), c.Param("id"), st)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *LedgerHandler) Dashboard(c *gin.Context) {
	s, err := h.svc.Reports.GetDashboard(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}
