package model

import (
	"fmt"
	"time"
)

type RepairStatus string

const (
	RepairReported    RepairStatus = "REPORTED"
	RepairInProgress  RepairStatus = "IN_PROGRESS"
	RepairResolved    RepairStatus = "RESOLVED"
	RepairIrreparable RepairStatus = "IRREPARABLE"
)

func ParseRepairStatus(s string) (RepairStatus, error) {
	switch st := RepairStatus(s); st {
	case RepairReported, RepairInProgress, RepairResolved, RepairIrreparable:
		return st, nil
	}
	return "", fmt.Errorf("%w: unknown repair status %q", ErrInvalidArgument, s)
}

// repairPredecessors lists, for each target, the states allowed to move to it.
var repairPredecessors = map[RepairStatus][]RepairStatus{
	RepairInProgress:  {RepairReported},
	RepairResolved:    {RepairInProgress},
	RepairIrreparable: {RepairReported, RepairInProgress},
}

// RepairPredecessors returns the states from which target is reachable.
// Reported is never a target: tickets only start there.
func RepairPredecessors(target RepairStatus) []RepairStatus {
	return repairPredecessors[target]
}

func (s RepairStatus) Terminal() bool {
	return s == RepairResolved || s == RepairIrreparable
}

func (s RepairStatus) CanTransitionTo(target RepairStatus) bool {
	for _, from := range repairPredecessors[target] {
		if from == s {
			return true
		}
	}
	return false
}

type RepairTicket struct {
	ID           string       `db:"id" json:"id"`
	MaterialID   string       `db:"material_id" json:"material_id"`
	RequesterID  string       `db:"requester_id" json:"requester_id"`
	Description  string       `db:"description" json:"description"`
	Status       RepairStatus `db:"status" json:"status"`
	DateReported time.Time    `db:"date_reported" json:"date_reported"`
	UpdatedAt    time.Time    `db:"updated_at" json:"updated_at"`
	ClosedAt     *time.Time   `db:"closed_at" json:"closed_at"`
}
