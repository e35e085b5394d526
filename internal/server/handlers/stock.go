package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fekuna/omnipos-ledger-service/internal/auth"
	"github.com/fekuna/omnipos-ledger-service/internal/model"
	movementdto "github.com/fekuna/omnipos-ledger-service/internal/movement/dto"
	"github.com/fekuna/omnipos-ledger-service/internal/stock/dto"
	ledgerv1 "github.com/fekuna/omnipos-ledger-service/pkg/api/ledgerv1"
)

const (
	defaultMovementLimit = 100
	maxMovementLimit     = 1000
)

type stockView struct {
	model.StockRecord
	QuantityAvailable int64 `json:"quantity_available"`
	LowStock          bool  `json:"low_stock"`
}

func newStockView(rec *model.StockRecord) stockView {
	return stockView{
		StockRecord:       *rec,
		QuantityAvailable: rec.Available(),
		LowStock:          rec.LowStock(),
	}
}

func (h *LedgerHandler) AdjustStock(c *gin.Context) {
	var req ledgerv1.AdjustStockRequest
	if !h.bind(c, &req) {
		return
	}

	var movementType model.MovementType
	if req.MovementType != "" {
		t, err := model.ParseMovementType(req.MovementType)
		if err != nil {
			h.fail(c, err)
			return
		}
		movementType = t
	}

	ctx := c.Request.Context()
	rec, err := h.svc.Stock.AdjustStock(ctx, &dto.AdjustStockInput{
		MaterialID:    req.MaterialID,
		Delta:         req.Delta,
		MovementType:  movementType,
		ReferenceType: req.ReferenceType,
		ReferenceID:   req.ReferenceID,
		Reason:        req.Reason,
		ActorID:       auth.GetActorID(ctx),
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, newStockView(rec))
}

func (h *LedgerHandler) ReserveStock(c *gin.Context) {
	var req ledgerv1.ReserveStockRequest
	if !h.bind(c, &req) {
		return
	}

	ctx := c.Request.Context()
	rec, err := h.svc.Stock.Reserve(ctx, &dto.ReserveInput{
		MaterialID:    req.MaterialID,
		Quantity:      req.Quantity,
		ReferenceType: req.ReferenceType,
		ReferenceID:   req.ReferenceID,
		Reason:        req.Reason,
		ActorID:       auth.GetActorID(ctx),
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, newStockView(rec))
}

func (h *LedgerHandler) ReleaseStock(c *gin.Context) {
	var req ledgerv1.ReleaseStockRequest
	if !h.bind(c, &req) {
		return
	}

	ctx := c.Request.Context()
	rec, err := h.svc.Stock.Release(ctx, &dto.ReleaseInput{
		MaterialID:    req.MaterialID,
		Quantity:      req.Quantity,
		ReferenceType: req.ReferenceType,
		ReferenceID:   req.ReferenceID,
		Reason:        req.Reason,
		ActorID:       auth.GetActorID(ctx),
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, newStockView(rec))
}

func (h *LedgerHandler) ConfigureStock(c *gin.Context) {
	var req ledgerv1.ConfigureStockRequest
	if !h.bind(c, &req) {
		return
	}

	rec, err := h.svc.Stock.ConfigureStock(c.Request.Context(), &dto.ConfigureStockInput{
		MaterialID:     c.Param("material_id"),
		AlertThreshold: req.AlertThreshold,
		Location:       req.Location,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, newStockView(rec))
}

func (h *LedgerHandler) GetStock(c *gin.Context) {
	rec, err := h.svc.Stock.GetStock(c.Request.Context(), c.Param("material_id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, newStockView(rec))
}

func (h *LedgerHandler) ListLowStock(c *gin.Context) {
	var q pageQuery
	if !h.bindQuery(c, &q) {
		return
	}

	items, total, err := h.svc.Stock.ListLowStock(c.Request.Context(), q.Page, q.PageSize)
	if err != nil {
		h.fail(c, err)
		return
	}

	views := make([]stockView, len(items))
	for i := range items {
		views[i] = newStockView(&items[i])
	}
	c.JSON(http.StatusOK, listResponse[stockView]{Items: views, Total: total})
}

type movementQuery struct {
	MaterialID    string `form:"material_id"`
	ReferenceType string `form:"reference_type"`
	ReferenceID   string `form:"reference_id"`
	After         string `form:"after"`
	Limit         int    `form:"limit"`
}

type movementPage struct {
	Items     []model.Movement `json:"items"`
	NextAfter string           `json:"next_after,omitempty"`
}

func (h *LedgerHandler) ListMovements(c *gin.Context) {
	var q movementQuery
	if !h.bindQuery(c, &q) {
		return
	}
	limit := q.Limit
	if limit <= 0 {
		limit = defaultMovementLimit
	}
	if limit > maxMovementLimit {
		limit = maxMovementLimit
	}

	items, err := h.svc.Movements.ListMovements(c.Request.Context(), movementdto.HistoryFilter{
		MaterialID:    q.MaterialID,
		ReferenceType: q.ReferenceType,
		ReferenceID:   q.ReferenceID,
		AfterID:       q.After,
	}, limit)
	if err != nil {
		h.fail(c, err)
		return
	}

	page := movementPage{Items: items}
	if len(items) == limit {
		page.NextAfter = items[len(items)-1].ID
	}
	c.JSON(http.StatusOK, page)
}
