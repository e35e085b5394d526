package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/fekuna/omnipos-ledger-service/internal/model"
	"github.com/fekuna/omnipos-ledger-service/internal/requestline/repository"
	"github.com/fekuna/omnipos-ledger-service/pkg/clock"
	"github.com/fekuna/omnipos-ledger-service/pkg/database/dbtest"
	"github.com/fekuna/omnipos-ledger-service/pkg/logger"
)

func TestLinker_ClaimOnce(t *testing.T) {
	db := dbtest.New(t)
	uc := NewLinkerUseCase(repository.NewSQLRepository(db), clock.Real(), logger.NewNop())
	ctx := context.Background()

	free, err := uc.IsUnclaimed(ctx, "l-1")
	if err != nil || !free {
		t.Fatalf("expected unclaimed line, got %v, %v", free, err)
	}

	if err := uc.Claim(ctx, "l-1", "a-1"); err != nil {
		t.Fatalf("Claim: %v", err)
	}
	if err := uc.Claim(ctx, "l-1", "a-2"); !errors.Is(err, model.ErrDuplicateAttribution) {
		t.Fatalf("expected ErrDuplicateAttribution, got %v", err)
	}
	if free, _ := uc.IsUnclaimed(ctx, "l-1"); free {
		t.Error("line should be claimed")
	}

	if err := uc.Unclaim(ctx, "l-1"); err != nil {
		t.Fatalf("Unclaim: %v", err)
	}
	if err := uc.Claim(ctx, "l-1", "a-3"); err != nil {
		t.Fatalf("Claim after unclaim: %v", err)
	}
}

func TestLinker_ClaimValidates(t *testing.T) {
	db := dbtest.New(t)
	uc := NewLinkerUseCase(repository.NewSQLRepository(db), clock.Real(), logger.NewNop())

	if err := uc.Claim(context.Background(), "", "a-1"); !errors.Is(err, model.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestLinker_SyncAndGetLine(t *testing.T) {
	db := dbtest.New(t)
	uc := NewLinkerUseCase(repository.NewSQLRepository(db), clock.Real(), logger.NewNop())
	ctx := context.Background()

	if _, err := uc.GetLine(ctx, "l-1"); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	tests := []struct {
		name    string
		line    model.RequestLine
		wantErr error
	}{
		{"valid", model.RequestLine{ID: "l-1", RequestID: "r-1", MaterialID: "m-1", QuantityRequested: 4}, nil},
		{"resync changes quantity", model.RequestLine{ID: "l-1", RequestID: "r-1", MaterialID: "m-1", QuantityRequested: 2}, nil},
		{"missing material", model.RequestLine{ID: "l-2", QuantityRequested: 1}, model.ErrInvalidArgument},
		{"zero quantity", model.RequestLine{ID: "l-2", MaterialID: "m-1"}, model.ErrInvalidQuantity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := uc.SyncLine(ctx, &tt.line)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	line, err := uc.GetLine(ctx, "l-1")
	if err != nil {
		t.Fatalf("GetLine: %v", err)
	}
	if line.QuantityRequested != 2 || line.RequestID != "r-1" {
		t.Errorf("unexpected line: %+v", line)
	}
}
