package booking

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingUserEmail    = errors.New("user email is required")
	ErrMissingCourtName    = errors.New("court name is required")
	ErrMissingDate         = errors.New("booking date is required")
	ErrEmptySlots          = errors.New("at least one slot is required")
	ErrInvalidTotalPrice   = errors.New("total price must be positive")
	ErrInvalidStatus       = errors.New("invalid booking status")
	ErrIllegalTransition   = errors.New("illegal status transition")
	ErrNotTransitionTarget = errors.New("status is not a valid transition target")
	ErrAlreadyInStatus     = errors.New("booking already in requested status")
)

// Booking is the aggregate root of the reservation domain. CourtName is a
// denormalized snapshot taken at creation time so listings survive facility
// renames.
type Booking struct {
	id              uuid.UUID
	courtID         uuid.UUID
	courtName       string
	userEmail       string
	date            string
	slots           []string
	totalPriceCents int64
	status          Status
	createdAt       time.Time
}

// NewBooking validates the caller-supplied fields and forces the initial
// status to pending regardless of anything the client sent.
func NewBooking(
	courtID uuid.UUID,
	courtName, userEmail, date string,
	slots []string,
	totalPriceCents int64,
	now time.Time,
) (*Booking, error) {
	if strings.TrimSpace(userEmail) == "" {
		return nil, ErrMissingUserEmail
	}
	if strings.TrimSpace(courtName) == "" {
		return nil, ErrMissingCourtName
	}
	if strings.TrimSpace(date) == "" {
		return nil, ErrMissingDate
	}
	if len(slots) == 0 {
		return nil, ErrEmptySlots
	}
	for _, s := range slots {
		if strings.TrimSpace(s) == "" {
			return nil, ErrEmptySlots
		}
	}
	if totalPriceCents <= 0 {
		return nil, ErrInvalidTotalPrice
	}

	return &Booking{
		id:              uuid.New(),
		courtID:         courtID,
		courtName:       courtName,
		userEmail:       userEmail,
		date:            date,
		slots:           slots,
		totalPriceCents: totalPriceCents,
		status:          StatusPending,
		createdAt:       now,
	}, nil
}

func ReconstructBooking(
	id, courtID uuid.UUID,
	courtName, userEmail, date string,
	slots []string,
	totalPriceCents int64,
	status Status,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:              id,
		courtID:         courtID,
		courtName:       courtName,
		userEmail:       userEmail,
		date:            date,
		slots:           slots,
		totalPriceCents: totalPriceCents,
		status:          status,
		createdAt:       createdAt,
	}
}

// TransitionTo moves the booking along the lifecycle. Targets outside the
// admin-settable set and jumps the transition table forbids are both rejected.
func (b *Booking) TransitionTo(target Status) error {
	if !target.IsTransitionTarget() {
		return ErrNotTransitionTarget
	}
	if b.status == target {
		return ErrAlreadyInStatus
	}
	if !b.status.CanTransitionTo(target) {
		return ErrIllegalTransition
	}
	b.status = target
	return nil
}

func (b *Booking) IsPaid() bool {
	return b.status == StatusPaid
}

func (b *Booking) ID() uuid.UUID          { return b.id }
func (b *Booking) CourtID() uuid.UUID     { return b.courtID }
func (b *Booking) CourtName() string      { return b.courtName }
func (b *Booking) UserEmail() string      { return b.userEmail }
func (b *Booking) Date() string           { return b.date }
func (b *Booking) Slots() []string        { return b.slots }
func (b *Booking) TotalPriceCents() int64 { return b.totalPriceCents }
func (b *Booking) Status() Status         { return b.status }
func (b *Booking) CreatedAt() time.Time   { return b.createdAt }
