// Package apperror maps engine errors onto transport status codes and
// localized messages.
package apperror

import (
	"context"
	"errors"
	"net/http"

	"github.com/fekuna/omnipos-ledger-service/internal/auth"
	"github.com/fekuna/omnipos-ledger-service/internal/model"
	"github.com/fekuna/omnipos-ledger-service/pkg/i18n"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Kind struct {
	Name      string
	GRPC      codes.Code
	HTTP      int
	MessageID string
}

var internal = Kind{Name: "INTERNAL", GRPC: codes.Internal, HTTP: http.StatusInternalServerError, MessageID: "internal"}

var kinds = []struct {
	err  error
	kind Kind
}{
	{model.ErrInsufficientStock, Kind{"INSUFFICIENT_STOCK", codes.FailedPrecondition, http.StatusConflict, "insufficient_stock"}},
	{model.ErrInvalidReleaseAmount, Kind{"INVALID_RELEASE_AMOUNT", codes.FailedPrecondition, http.StatusConflict, "invalid_release_amount"}},
	{model.ErrDuplicateAttribution, Kind{"DUPLICATE_ATTRIBUTION", codes.AlreadyExists, http.StatusConflict, "duplicate_attribution"}},
	{model.ErrInvalidTransition, Kind{"INVALID_TRANSITION", codes.FailedPrecondition, http.StatusConflict, "invalid_transition"}},
	{model.ErrInvalidQuantity, Kind{"INVALID_QUANTITY", codes.InvalidArgument, http.StatusUnprocessableEntity, "invalid_quantity"}},
	{model.ErrInvalidArgument, Kind{"INVALID_ARGUMENT", codes.InvalidArgument, http.StatusUnprocessableEntity, "invalid_argument"}},
	{model.ErrNotFound, Kind{"NOT_FOUND", codes.NotFound, http.StatusNotFound, "not_found"}},
	{model.ErrBusy, Kind{"BUSY", codes.Unavailable, http.StatusServiceUnavailable, "busy"}},
	{context.DeadlineExceeded, Kind{"DEADLINE_EXCEEDED", codes.DeadlineExceeded, http.StatusGatewayTimeout, "busy"}},
}

// Classify returns the kind of err. Errors the engine does not know are
// INTERNAL.
func Classify(err error) Kind {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return internal
}

// IsInternal reports whether err is an unexpected failure rather than a
// rejected request.
func IsInternal(err error) bool {
	return Classify(err).GRPC == codes.Internal
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

type Mapper struct {
	tr *i18n.Translator
}

// NewMapper accepts a nil translator; messages then fall back to ids.
func NewMapper(tr *i18n.Translator) *Mapper {
	return &Mapper{tr: tr}
}

// Response builds the client-facing body for err in language lang.
// Internal details are never exposed.
func (m *Mapper) Response(err error, lang string) (Kind, ErrorResponse) {
	k := Classify(err)
	resp := ErrorResponse{
		Code:    k.Name,
		Message: m.tr.Message(k.MessageID, lang),
	}
	if k != internal {
		resp.Detail = err.Error()
	}
	return k, resp
}

// GRPC converts err into a status error, localized for the caller.
func (m *Mapper) GRPC(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	k, resp := m.Response(err, auth.GetLanguage(ctx))
	msg := resp.Message
	if resp.Detail != "" {
		msg += " (" + resp.Detail + ")"
	}
	return status.Error(k.GRPC, msg)
}
