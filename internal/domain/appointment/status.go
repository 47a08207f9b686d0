package appointment

import (
	"strings"

	"github.com/BruksfildServices01/vet-clinic/internal/httperr"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
	StatusDenied    Status = "denied"
)

// AllStatuses is ordered the way admin screens list them.
var AllStatuses = []Status{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
	StatusCompleted,
	StatusDenied,
}

// Actor is who asks for a transition.
type Actor string

const (
	ActorOwner Actor = "owner"
	ActorAdmin Actor = "admin"
)

type transition struct {
	actor Actor
	from  Status
	to    Status
}

// transitions is the full (actor, current, requested) table. Anything missing
// is rejected. Admins may move any appointment to any status.
var transitions = buildTransitions()

func buildTransitions() map[transition]bool {
	t := map[transition]bool{
		{ActorOwner, StatusPending, StatusCancelled}:   true,
		{ActorOwner, StatusConfirmed, StatusCancelled}: true,
	}

	for _, from := range AllStatuses {
		for _, to := range AllStatuses {
			t[transition{ActorAdmin, from, to}] = true
		}
	}

	return t
}

// ===============================
// Validations
// ===============================

func ParseStatus(s string) (Status, error) {
	st := Status(strings.TrimSpace(s))
	for _, known := range AllStatuses {
		if st == known {
			return st, nil
		}
	}
	return "", httperr.ErrBusiness("invalid_status")
}

func CanTransition(actor Actor, from, to Status) error {
	if !transitions[transition{actor, from, to}] {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// AllowedFrom lists the current statuses from which actor may move an
// appointment to the requested status. Repositories use it to build
// conditional updates.
func AllowedFrom(actor Actor, to Status) []Status {
	var out []Status
	for _, from := range AllStatuses {
		if transitions[transition{actor, from, to}] {
			out = append(out, from)
		}
	}
	return out
}

// InitialStatus is the status of every new appointment.
func InitialStatus() Status {
	return StatusPending
}

// IsTerminalForOwner reports whether the owner can no longer cancel.
func IsTerminalForOwner(s Status) bool {
	return CanTransition(ActorOwner, s, StatusCancelled) != nil
}
