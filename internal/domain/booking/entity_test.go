//go:build unit

package booking_test

import (
	"testing"
	"time"

	"court-connect-server/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingFields struct {
	courtName       string
	userEmail       string
	date            string
	slots           []string
	totalPriceCents int64
}

func validFields() bookingFields {
	return bookingFields{
		courtName:       "Center Court",
		userEmail:       "player@example.com",
		date:            "2026-09-15",
		slots:           []string{"10:00-11:00", "11:00-12:00"},
		totalPriceCents: 4000,
	}
}

func buildBooking(t *testing.T, f bookingFields) (*booking.Booking, error) {
	t.Helper()
	return booking.NewBooking(
		uuid.New(), f.courtName, f.userEmail, f.date,
		f.slots, f.totalPriceCents, time.Now(),
	)
}

func TestNewBooking(t *testing.T) {
	t.Run("valid booking starts pending", func(t *testing.T) {
		b, err := buildBooking(t, validFields())
		require.NoError(t, err)
		require.NotNil(t, b)

		assert.NotEqual(t, uuid.Nil, b.ID())
		assert.Equal(t, booking.StatusPending, b.Status())
		assert.False(t, b.IsPaid())
	})

	t.Run("field validation", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*bookingFields)
			errIs  error
		}{
			{
				name:   "missing user email",
				mutate: func(f *bookingFields) { f.userEmail = "  " },
				errIs:  booking.ErrMissingUserEmail,
			},
			{
				name:   "missing court name",
				mutate: func(f *bookingFields) { f.courtName = "" },
				errIs:  booking.ErrMissingCourtName,
			},
			{
				name:   "missing date",
				mutate: func(f *bookingFields) { f.date = "" },
				errIs:  booking.ErrMissingDate,
			},
			{
				name:   "empty slot list",
				mutate: func(f *bookingFields) { f.slots = nil },
				errIs:  booking.ErrEmptySlots,
			},
			{
				name:   "blank slot entry",
				mutate: func(f *bookingFields) { f.slots = []string{"10:00-11:00", " "} },
				errIs:  booking.ErrEmptySlots,
			},
			{
				name:   "zero price",
				mutate: func(f *bookingFields) { f.totalPriceCents = 0 },
				errIs:  booking.ErrInvalidTotalPrice,
			},
			{
				name:   "negative price",
				mutate: func(f *bookingFields) { f.totalPriceCents = -100 },
				errIs:  booking.ErrInvalidTotalPrice,
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				f := validFields()
				tc.mutate(&f)

				b, err := buildBooking(t, f)
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, b)
			})
		}
	})
}

func TestTransitionTo(t *testing.T) {
	at := func(status booking.Status) *booking.Booking {
		f := validFields()
		return booking.ReconstructBooking(
			uuid.New(), uuid.New(), f.courtName, f.userEmail, f.date,
			f.slots, f.totalPriceCents, status, time.Now(),
		)
	}

	t.Run("allowed transitions", func(t *testing.T) {
		cases := []struct {
			from, to booking.Status
		}{
			{booking.StatusPending, booking.StatusApproved},
			{booking.StatusPending, booking.StatusRejected},
			{booking.StatusApproved, booking.StatusConfirmed},
			{booking.StatusApproved, booking.StatusPaid},
			{booking.StatusConfirmed, booking.StatusPaid},
		}

		for _, tc := range cases {
			t.Run(tc.from.String()+" to "+tc.to.String(), func(t *testing.T) {
				b := at(tc.from)
				require.NoError(t, b.TransitionTo(tc.to))
				assert.Equal(t, tc.to, b.Status())
			})
		}
	})

	t.Run("forbidden transitions", func(t *testing.T) {
		cases := []struct {
			name     string
			from, to booking.Status
			errIs    error
		}{
			{"pending cannot skip to confirmed", booking.StatusPending, booking.StatusConfirmed, booking.ErrIllegalTransition},
			{"pending cannot skip to paid", booking.StatusPending, booking.StatusPaid, booking.ErrIllegalTransition},
			{"approved cannot be rejected", booking.StatusApproved, booking.StatusRejected, booking.ErrIllegalTransition},
			{"rejected is terminal", booking.StatusRejected, booking.StatusApproved, booking.ErrIllegalTransition},
			{"paid is terminal", booking.StatusPaid, booking.StatusConfirmed, booking.ErrIllegalTransition},
			{"nothing returns to pending", booking.StatusApproved, booking.StatusPending, booking.ErrNotTransitionTarget},
			{"same status is rejected", booking.StatusApproved, booking.StatusApproved, booking.ErrAlreadyInStatus},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				b := at(tc.from)
				err := b.TransitionTo(tc.to)
				require.ErrorIs(t, err, tc.errIs)
				assert.Equal(t, tc.from, b.Status(), "status must not change on rejected transition")
			})
		}
	})
}

func TestNewStatus(t *testing.T) {
	for _, valid := range []string{"pending", "approved", "rejected", "confirmed", "paid"} {
		s, err := booking.NewStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, s.String())
	}

	_, err := booking.NewStatus("cancelled")
	assert.ErrorIs(t, err, booking.ErrInvalidStatus)

	_, err = booking.NewStatus("Approved")
	assert.ErrorIs(t, err, booking.ErrInvalidStatus, "status values are case-sensitive")
}
