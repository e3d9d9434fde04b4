package appointment

import "github.com/barbercloud/agenda-api/internal/httperr"

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusFinalized Status = "finalized"
	StatusCancelled Status = "cancelled"
)

func InitialStatus() Status {
	return StatusScheduled
}

// Finalized and cancelled are terminal: nothing transitions out of them.

func CanFinalize(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

func CanCancel(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

// CanEdit gates direct field edits (price, service) outside a transition.
func CanEdit(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}
