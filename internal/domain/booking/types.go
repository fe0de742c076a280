package booking

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusConfirmed Status = "confirmed"
	StatusPaid      Status = "paid"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusConfirmed, StatusPaid:
		return true
	default:
		return false
	}
}

// IsTransitionTarget reports whether s is one of the statuses an admin may
// move a booking into. Nothing ever transitions back to pending.
func (s Status) IsTransitionTarget() bool {
	switch s {
	case StatusApproved, StatusRejected, StatusConfirmed, StatusPaid:
		return true
	default:
		return false
	}
}

var transitions = map[Status][]Status{
	StatusPending:   {StatusApproved, StatusRejected},
	StatusApproved:  {StatusConfirmed, StatusPaid},
	StatusConfirmed: {StatusPaid},
	// rejected and paid are terminal
}

// CanTransitionTo enforces the lifecycle ordering:
// pending -> approved|rejected, approved -> confirmed|paid, confirmed -> paid.
func (s Status) CanTransitionTo(target Status) bool {
	for _, t := range transitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
