package court

import (
	"time"

	"github.com/google/uuid"
)

// Court is a bookable facility. Bookings snapshot its name at creation time,
// so this aggregate stays read-only inside the booking flow.
type Court struct {
	id         uuid.UUID
	courtType  string
	imageURL   string
	priceCents int64
	slots      []string
	createdAt  time.Time
}

func ReconstructCourt(
	id uuid.UUID,
	courtType, imageURL string,
	priceCents int64,
	slots []string,
	createdAt time.Time,
) *Court {
	return &Court{
		id:         id,
		courtType:  courtType,
		imageURL:   imageURL,
		priceCents: priceCents,
		slots:      slots,
		createdAt:  createdAt,
	}
}

func (c *Court) ID() uuid.UUID        { return c.id }
func (c *Court) CourtType() string    { return c.courtType }
func (c *Court) ImageURL() string     { return c.imageURL }
func (c *Court) PriceCents() int64    { return c.priceCents }
func (c *Court) Slots() []string      { return c.slots }
func (c *Court) CreatedAt() time.Time { return c.createdAt }
