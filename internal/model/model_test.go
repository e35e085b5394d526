package model

import (
	"errors"
	"testing"
	"time"
)

func TestStockRecord_Available(t *testing.T) {
	s := StockRecord{QuantityStock: 10, QuantityReserved: 4, AlertThreshold: 6}
	if got := s.Available(); got != 6 {
		t.Errorf("Available() = %d, want 6", got)
	}
	if !s.LowStock() {
		t.Error("available == threshold should be low stock")
	}

	s.AlertThreshold = 0
	if s.LowStock() {
		t.Error("zero threshold disables low stock alerts")
	}
}

func TestMovementType_StockEffect(t *testing.T) {
	tests := []struct {
		typ          MovementType
		wantStock    int64
		wantReserved int64
	}{
		{MovementEntree, 3, 0},
		{MovementSortie, -3, 0},
		{MovementReservation, 0, 3},
		{MovementDereservation, 0, -3},
	}
	for _, tt := range tests {
		stock, reserved := tt.typ.StockEffect(3)
		if stock != tt.wantStock || reserved != tt.wantReserved {
			t.Errorf("%s: got (%d, %d), want (%d, %d)", tt.typ, stock, reserved, tt.wantStock, tt.wantReserved)
		}
	}
}

func TestParseEnums_RejectUnknown(t *testing.T) {
	if _, err := ParseMovementType("TRANSFER"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("movement type: expected ErrInvalidArgument, got %v", err)
	}
	if _, err := ParseAttributionStatus("LOST"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("attribution status: expected ErrInvalidArgument, got %v", err)
	}
	if _, err := ParseRepairStatus("returned"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("repair status: expected ErrInvalidArgument, got %v", err)
	}
}

func TestAttribution_EffectiveStatus(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name string
		a    Attribution
		want AttributionStatus
	}{
		{"due in past", Attribution{Status: AttributionInPossession, DueDate: &past}, AttributionOverdue},
		{"due in future", Attribution{Status: AttributionInPossession, DueDate: &future}, AttributionInPossession},
		{"definitive never overdue", Attribution{Status: AttributionInPossession}, AttributionInPossession},
		{"returned late stays returned", Attribution{Status: AttributionReturned, DueDate: &past}, AttributionReturned},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.EffectiveStatus(now); got != tt.want {
				t.Errorf("EffectiveStatus = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRepairStatus_Transitions(t *testing.T) {
	tests := []struct {
		from, to RepairStatus
		ok       bool
	}{
		{RepairReported, RepairInProgress, true},
		{RepairReported, RepairIrreparable, true},
		{RepairReported, RepairResolved, false},
		{RepairInProgress, RepairResolved, true},
		{RepairInProgress, RepairIrreparable, true},
		{RepairInProgress, RepairInProgress, false},
		{RepairResolved, RepairInProgress, false},
		{RepairIrreparable, RepairInProgress, false},
		{RepairIrreparable, RepairReported, false},
	}
	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.ok {
			t.Errorf("%s -> %s: got %v, want %v", tt.from, tt.to, got, tt.ok)
		}
	}
}
