package announcement

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrMissingTitle = errors.New("announcement title is required")

type Announcement struct {
	id        uuid.UUID
	title     string
	body      string
	createdAt time.Time
}

func NewAnnouncement(title, body string, now time.Time) (*Announcement, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrMissingTitle
	}
	return &Announcement{
		id:        uuid.New(),
		title:     title,
		body:      body,
		createdAt: now,
	}, nil
}

func (a *Announcement) ID() uuid.UUID        { return a.id }
func (a *Announcement) Title() string        { return a.title }
func (a *Announcement) Body() string         { return a.body }
func (a *Announcement) CreatedAt() time.Time { return a.createdAt }
