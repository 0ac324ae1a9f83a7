package events

// Status is the approval state of an event. Newly created or edited events
// always go back to Pending; Approved/Disapproved are set only by a reviewer
// decision.
type Status string

const (
	StatusPending     Status = "Pending"
	StatusApproved    Status = "Approved"
	StatusDisapproved Status = "Disapproved"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusDisapproved:
		return true
	default:
		return false
	}
}

// IsDecided reports whether a reviewer has already ruled on the event.
func (s Status) IsDecided() bool {
	return s == StatusApproved || s == StatusDisapproved
}
