package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fekuna/omnipos-ledger-service/internal/model"
)

// Reference data normally arrives on the requisition topic. These routes
// let deployments without Kafka push it directly.

type materialRequest struct {
	Designation string `json:"designation"`
	Type        string `json:"type"`
	Condition   string `json:"condition"`
}

func (h *LedgerHandler) PutMaterial(c *gin.Context) {
	var req materialRequest
	if !h.bind(c, &req) {
		return
	}

	m := &model.Material{
		ID:          c.Param("id"),
		Designation: req.Designation,
		Type:        req.Type,
		Condition:   req.Condition,
	}
	if err := h.svc.Materials.SyncMaterial(c.Request.Context(), m); err != nil {
		h.fail(c, err)
		return
	}

	stored, err := h.svc.Materials.GetMaterial(c.Request.Context(), m.ID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stored)
}

type requestLineRequest struct {
	RequestID         string `json:"request_id"`
	MaterialID        string `json:"material_id"`
	QuantityRequested int64  `json:"quantity_requested"`
}

func (h *LedgerHandler) PutRequestLine(c *gin.Context) {
	var req requestLineRequest
	if !h.bind(c, &req) {
		return
	}

	line := &model.RequestLine{
		ID:                c.Param("id"),
		RequestID:         req.RequestID,
		MaterialID:        req.MaterialID,
		QuantityRequested: req.QuantityRequested,
	}
	if err := h.svc.Lines.SyncLine(c.Request.Context(), line); err != nil {
		h.fail(c, err)
		return
	}

	stored, err := h.svc.Lines.GetLine(c.Request.Context(), line.ID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stored)
}
