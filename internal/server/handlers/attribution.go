package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fekuna/omnipos-ledger-service/internal/attribution/dto"
	"github.com/fekuna/omnipos-ledger-service/internal/auth"
	"github.com/fekuna/omnipos-ledger-service/internal/model"
	ledgerv1 "github.com/fekuna/omnipos-ledger-service/pkg/api/ledgerv1"
)

func (h *LedgerHandler) CreateAttribution(c *gin.Context) {
	var req ledgerv1.CreateAttributionRequest
	if !h.bind(c, &req) {
		return
	}

	ctx := c.Request.Context()
	a, err := h.svc.Attributions.Create(ctx, &dto.CreateAttributionInput{
		MaterialID:    req.MaterialID,
		RequesterID:   req.RequesterID,
		RequestLineID: req.RequestLineID,
		Quantity:      req.Quantity,
		DueDate:       req.DueDate,
		ActorID:       auth.GetActorID(ctx),
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

func (h *LedgerHandler) GetAttribution(c *gin.Context) {
	a, err := h.svc.Attributions.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

type attributionQuery struct {
	pageQuery
	MaterialID  string `form:"material_id"`
	RequesterID string `form:"requester_id"`
	Status      string `form:"status"`
}

func (h *LedgerHandler) ListAttributions(c *gin.Context) {
	var q attributionQuery
	if !h.bindQuery(c, &q) {
		return
	}

	f := &dto.AttributionFilters{
		MaterialID:  q.MaterialID,
		RequesterID: q.RequesterID,
		Page:        q.Page,
		PageSize:    q.PageSize,
	}
	if q.Status != "" {
		st, err := model.ParseAttributionStatus(q.Status)
		if err != nil {
			h.fail(c, err)
			return
		}
		f.Status = st
	}

	items, total, err := h.svc.Attributions.List(c.Request.Context(), f)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse[model.Attribution]{Items: items, Total: total})
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *LedgerHandler) UpdateAttributionStatus(c *gin.Context) {
	var req statusRequest
	if !h.bind(c, &req) {
		return
	}
	st, err := model.ParseAttributionStatus(req.Status)
	if err != nil {
		h.fail(c, err)
		return
	}

	ctx := c.Request.Context()
	a, err := h.svc.Attributions.UpdateStatus(ctx, c.Param("id"), st, auth.GetActorID(ctx))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *LedgerHandler) DeleteAttribution(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.svc.Attributions.Delete(ctx, c.Param("id"), auth.GetActorID(ctx)); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
