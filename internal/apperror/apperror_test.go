package apperror

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/fekuna/omnipos-ledger-service/internal/model"
	"github.com/fekuna/omnipos-ledger-service/pkg/i18n"
	"github.com/fekuna/omnipos-ledger-service/pkg/middleware"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		err      error
		wantGRPC codes.Code
		wantHTTP int
	}{
		{fmt.Errorf("adjust: %w", model.ErrInsufficientStock), codes.FailedPrecondition, http.StatusConflict},
		{model.ErrInvalidReleaseAmount, codes.FailedPrecondition, http.StatusConflict},
		{fmt.Errorf("line l-1: %w", model.ErrDuplicateAttribution), codes.AlreadyExists, http.StatusConflict},
		{model.ErrInvalidTransition, codes.FailedPrecondition, http.StatusConflict},
		{model.ErrInvalidQuantity, codes.InvalidArgument, http.StatusUnprocessableEntity},
		{model.ErrInvalidArgument, codes.InvalidArgument, http.StatusUnprocessableEntity},
		{model.ErrNotFound, codes.NotFound, http.StatusNotFound},
		{model.ErrBusy, codes.Unavailable, http.StatusServiceUnavailable},
		{errors.New("disk on fire"), codes.Internal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		k := Classify(tt.err)
		if k.GRPC != tt.wantGRPC || k.HTTP != tt.wantHTTP {
			t.Errorf("%v: got (%s, %d), want (%s, %d)", tt.err, k.GRPC, k.HTTP, tt.wantGRPC, tt.wantHTTP)
		}
	}
}

func TestResponse_LocalizedAndHidesInternals(t *testing.T) {
	tr, err := i18n.New("en")
	if err != nil {
		t.Fatalf("i18n: %v", err)
	}
	m := NewMapper(tr)

	_, fr := m.Response(model.ErrInsufficientStock, "fr-FR,fr;q=0.9")
	_, en := m.Response(model.ErrInsufficientStock, "")
	if fr.Message == en.Message || fr.Code != "INSUFFICIENT_STOCK" {
		t.Errorf("expected a French message distinct from English, got %q and %q", fr.Message, en.Message)
	}

	k, resp := m.Response(errors.New("pq: connection refused"), "en")
	if k.HTTP != http.StatusInternalServerError || resp.Detail != "" {
		t.Errorf("internal errors must not leak detail: %+v", resp)
	}
}

func TestGRPC(t *testing.T) {
	m := NewMapper(nil)
	ctx := middleware.WithValue(context.Background(), middleware.HeaderAcceptLanguage, "en")

	if m.GRPC(ctx, nil) != nil {
		t.Error("nil stays nil")
	}

	err := m.GRPC(ctx, fmt.Errorf("attribution a-1: %w", model.ErrNotFound))
	st, _ := status.FromError(err)
	if st.Code() != codes.NotFound || !strings.Contains(st.Message(), "attribution a-1") {
		t.Errorf("unexpected status: %v", st)
	}

	already := status.Error(codes.Unauthenticated, "no token")
	if got := m.GRPC(ctx, already); status.Code(got) != codes.Unauthenticated {
		t.Errorf("status errors pass through, got %v", got)
	}
}
