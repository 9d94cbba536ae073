// Package lifecycle holds the donation status state machine. Transition is a
// pure function: it never mutates its argument and returns either the next
// donation value or a rejection carrying a human-readable reason.
package lifecycle

import (
	"fmt"

	"unityeats/internal/models"
)

// InvalidTransitionError rejects a status change the state machine does not
// allow from the donation's current state.
type InvalidTransitionError struct {
	Reason string
}

func (e *InvalidTransitionError) Error() string {
	return e.Reason
}

// ForbiddenError rejects a status change the acting user is not permitted to
// make, even though the transition itself exists.
type ForbiddenError struct {
	Reason string
}

func (e *ForbiddenError) Error() string {
	return e.Reason
}

// Transition applies requested to d on behalf of the acting user.
//
// States: pending -> accepted -> collected, with collected and expired
// terminal. Accepting binds the acting NGO's id exactly once; collecting is
// restricted to the NGO that accepted.
func Transition(d models.Donation, requested models.DonationStatus, actorID string, actorRole models.UserRole) (models.Donation, error) {
	switch d.Status {
	case models.DonationCollected:
		return d, &InvalidTransitionError{Reason: "this donation has already been collected"}
	case models.DonationExpired:
		return d, &InvalidTransitionError{Reason: "this donation has expired"}
	}

	switch requested {
	case models.DonationAccepted:
		if d.Status != models.DonationPending {
			return d, &InvalidTransitionError{Reason: "only a pending donation can be accepted"}
		}
		if actorRole != models.RoleNGO {
			return d, &ForbiddenError{Reason: "only an NGO can accept a donation"}
		}
		if d.NgoID != nil && *d.NgoID != actorID {
			return d, &InvalidTransitionError{Reason: "this donation was already accepted by another organization"}
		}
		next := d
		ngoID := actorID
		next.Status = models.DonationAccepted
		next.NgoID = &ngoID
		return next, nil

	case models.DonationCollected:
		if d.Status != models.DonationAccepted {
			return d, &InvalidTransitionError{Reason: "only an accepted donation can be marked collected"}
		}
		if d.NgoID == nil || *d.NgoID != actorID {
			return d, &ForbiddenError{Reason: "only the organization that accepted this donation can collect it"}
		}
		next := d
		next.Status = models.DonationCollected
		return next, nil

	case models.DonationPending, models.DonationExpired:
		return d, &InvalidTransitionError{Reason: fmt.Sprintf("a donation cannot be moved to %q by a user", requested)}

	default:
		return d, &InvalidTransitionError{Reason: fmt.Sprintf("unknown donation status %q", requested)}
	}
}
