package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fekuna/omnipos-ledger-service/internal/apperror"
	"github.com/fekuna/omnipos-ledger-service/internal/auth"
	"github.com/fekuna/omnipos-ledger-service/internal/model"
	"github.com/fekuna/omnipos-ledger-service/internal/server"
	"github.com/fekuna/omnipos-ledger-service/pkg/logger"
)

// LedgerHandler adapts the ledger usecases to JSON over HTTP.
type LedgerHandler struct {
	svc    *server.Services
	errs   *apperror.Mapper
	logger logger.ZapLogger
}

func NewLedgerHandler(svc *server.Services, errs *apperror.Mapper, log logger.ZapLogger) *LedgerHandler {
	if log == nil {
		log = logger.NewNop()
	}
	return &LedgerHandler{svc: svc, errs: errs, logger: log}
}

type listResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

type pageQuery struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size"`
}

func (h *LedgerHandler) fail(c *gin.Context, err error) {
	kind, body := h.errs.Response(err, auth.GetLanguage(c.Request.Context()))
	if apperror.IsInternal(err) {
		h.logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
	} else {
		h.logger.Warn("request rejected", zap.String("path", c.FullPath()), zap.String("code", kind.Name), zap.Error(err))
	}
	c.AbortWithStatusJSON(kind.HTTP, body)
}

// bind decodes the JSON body into dst, reporting malformed input as an
// invalid argument.
func (h *LedgerHandler) bind(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		h.fail(c, fmt.Errorf("%w: malformed request body: %v", model.ErrInvalidArgument, err))
		return false
	}
	return true
}

func (h *LedgerHandler) bindQuery(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		h.fail(c, fmt.Errorf("%w: malformed query: %v", model.ErrInvalidArgument, err))
		return false
	}
	return true
}

// Health reports liveness.
func (h *LedgerHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
