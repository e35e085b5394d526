package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	materialrepo "github.com/fekuna/omnipos-ledger-service/internal/material/repository"
	materialuc "github.com/fekuna/omnipos-ledger-service/internal/material/usecase"
	"github.com/fekuna/omnipos-ledger-service/internal/model"
	"github.com/fekuna/omnipos-ledger-service/internal/repair"
	"github.com/fekuna/omnipos-ledger-service/internal/repair/dto"
	"github.com/fekuna/omnipos-ledger-service/internal/repair/repository"
	"github.com/fekuna/omnipos-ledger-service/pkg/clock"
	"github.com/fekuna/omnipos-ledger-service/pkg/database/dbtest"
	"github.com/fekuna/omnipos-ledger-service/pkg/logger"
	"go.uber.org/zap/zaptest"
)

func newUseCase(t *testing.T) (repair.UseCase, *clock.Fake) {
	t.Helper()
	db := dbtest.New(t)
	log := logger.FromZap(zaptest.NewLogger(t))
	clk := clock.NewFake(time.Date(2026, 5, 4, 14, 0, 0, 0, time.UTC))

	materials := materialuc.NewMaterialUseCase(materialrepo.NewSQLRepository(db), nil, clk, log)
	if err := materials.SyncMaterial(context.Background(), &model.Material{ID: "m-1", Designation: "Printer"}); err != nil {
		t.Fatalf("seed material: %v", err)
	}
	return NewRepairUseCase(repository.NewSQLRepository(db), materials, clk, log), clk
}

func report(t *testing.T, uc repair.UseCase) *model.RepairTicket {
	t.Helper()
	ticket, err := uc.Create(context.Background(), &dto.CreateTicketInput{
		MaterialID: "m-1", RequesterID: "u-1", Description: "paper jam",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	return ticket
}

func TestCreate_AlwaysReported(t *testing.T) {
	uc, _ := newUseCase(t)
	ctx := context.Background()

	ticket, err := uc.Create(ctx, &dto.CreateTicketInput{
		MaterialID: "m-1", RequesterID: "u-1", Description: "  smoke from the fan ", Status: model.RepairIrreparable,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if ticket.Status != model.RepairReported {
		t.Errorf("expected REPORTED, got %s", ticket.Status)
	}
	if ticket.Description != "smoke from the fan" || ticket.ClosedAt != nil {
		t.Errorf("unexpected ticket: %+v", ticket)
	}

	got, err := uc.Get(ctx, ticket.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Status != model.RepairReported {
		t.Errorf("stored status: expected REPORTED, got %s", got.Status)
	}
}

func TestCreate_Validation(t *testing.T) {
	uc, _ := newUseCase(t)

	tests := []struct {
		name    string
		input   dto.CreateTicketInput
		wantErr error
	}{
		{"unknown material", dto.CreateTicketInput{MaterialID: "ghost", RequesterID: "u-1", Description: "broken"}, model.ErrNotFound},
		{"missing requester", dto.CreateTicketInput{MaterialID: "m-1", Description: "broken"}, model.ErrInvalidArgument},
		{"blank description", dto.CreateTicketInput{MaterialID: "m-1", RequesterID: "u-1", Description: "   "}, model.ErrInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := uc.Create(context.Background(), &tt.input); !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestUpdateStatus_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		path    []model.RepairStatus
		wantErr error
	}{
		{"reported to in progress", []model.RepairStatus{model.RepairInProgress}, nil},
		{"in progress to resolved", []model.RepairStatus{model.RepairInProgress, model.RepairResolved}, nil},
		{"reported to irreparable", []model.RepairStatus{model.RepairIrreparable}, nil},
		{"in progress to irreparable", []model.RepairStatus{model.RepairInProgress, model.RepairIrreparable}, nil},
		{"reported to resolved", []model.RepairStatus{model.RepairResolved}, model.ErrInvalidTransition},
		{"back to reported", []model.RepairStatus{model.RepairInProgress, model.RepairReported}, model.ErrInvalidTransition},
		{"irreparable to in progress", []model.RepairStatus{model.RepairIrreparable, model.RepairInProgress}, model.ErrInvalidTransition},
		{"resolved to irreparable", []model.RepairStatus{model.RepairInProgress, model.RepairResolved, model.RepairIrreparable}, model.ErrInvalidTransition},
		{"unknown status", []model.RepairStatus{"WAITING_PARTS"}, model.ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _ := newUseCase(t)
			ticket := report(t, uc)

			var err error
			for _, st := range tt.path {
				if _, err = uc.UpdateStatus(context.Background(), ticket.ID, st); err != nil {
					break
				}
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestUpdateStatus_ReportedStraightToIrreparable(t *testing.T) {
	uc, clk := newUseCase(t)
	ctx := context.Background()
	ticket := report(t, uc)

	clk.Advance(2 * time.Hour)
	closed, err := uc.UpdateStatus(ctx, ticket.ID, model.RepairIrreparable)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if closed.Status != model.RepairIrreparable || closed.ClosedAt == nil || !closed.ClosedAt.Equal(clk.Now()) {
		t.Errorf("unexpected ticket: %+v", closed)
	}

	if _, err := uc.UpdateStatus(ctx, ticket.ID, model.RepairInProgress); !errors.Is(err, model.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	got, _ := uc.Get(ctx, ticket.ID)
	if got.Status != model.RepairIrreparable {
		t.Errorf("rejected transition changed status to %s", got.Status)
	}
}

func TestUpdateStatus_UnknownTicket(t *testing.T) {
	uc, _ := newUseCase(t)

	if _, err := uc.UpdateStatus(context.Background(), "ghost", model.RepairInProgress); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestList(t *testing.T) {
	uc, clk := newUseCase(t)
	ctx := context.Background()

	first := report(t, uc)
	clk.Advance(time.Minute)
	report(t, uc)
	if _, err := uc.UpdateStatus(ctx, first.ID, model.RepairInProgress); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	items, total, err := uc.List(ctx, &dto.TicketFilters{Status: model.RepairInProgress})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 1 || items[0].ID != first.ID {
		t.Errorf("unexpected in-progress list: %d %+v", total, items)
	}

	_, total, _ = uc.List(ctx, &dto.TicketFilters{MaterialID: "m-1"})
	if total != 2 {
		t.Errorf("expected 2 tickets for m-1, got %d", total)
	}

	if _, _, err := uc.List(ctx, &dto.TicketFilters{Status: "LOST"}); !errors.Is(err, model.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}
