package event

import (
	"time"

	"github.com/google/uuid"
)

// Các event type thường gặp. Cột event_type là free text, set này open to extension
const (
	TypeDinner         = "Dinner"
	TypeSpeakerEvent   = "Speaker Event"
	TypeCompanyVisit   = "Company Visit"
	TypeMembersMeeting = "Members Meeting"
)

// Event là sự kiện của club
// Date luôn là UTC midnight — calendar date, không có time-of-day
// IsPast là write-time snapshot, xem Partition để biết cách nó tương tác với Date
type Event struct {
	ID          uuid.UUID `json:"id"`
	Date        time.Time `json:"date"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Address     string    `json:"address"`
	TimeFrom    string    `json:"time_from"`
	TimeTo      *string   `json:"time_to,omitempty"`
	RSVPLink    *string   `json:"rsvp_link,omitempty"`
	Featured    bool      `json:"featured"`
	IsPast      bool      `json:"is_past"`
	AuthorEmail string    `json:"author_email"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
