package event

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// SubmitEventRequest là payload của admin submit
// ID có mặt → update, không có → create
// Month/Day kết hợp với năm hiện tại thành event date (UTC)
// IsPast nil → compute từ date; non-nil → admin ép bucket (vd: event đã cancel)
type SubmitEventRequest struct {
	ID       *uuid.UUID `json:"id,omitempty"`
	Month    int        `json:"month"`
	Day      int        `json:"day"`
	Type     string     `json:"type"`
	Title    string     `json:"title"`
	Summary  string     `json:"summary"`
	Address  string     `json:"address"`
	TimeFrom string     `json:"time_from"`
	TimeTo   string     `json:"time_to"`
	RSVPLink string     `json:"rsvp_link"`
	Featured bool       `json:"featured"`
	IsPast   *bool      `json:"is_past,omitempty"`
}

func (r SubmitEventRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Month, validation.Required, validation.Min(1), validation.Max(12)),
		validation.Field(&r.Day, validation.Required, validation.Min(1), validation.Max(31)),
		validation.Field(&r.Type, validation.Required),
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Summary, validation.Required),
		validation.Field(&r.Address, validation.Required),
		validation.Field(&r.TimeFrom, validation.Required),
		validation.Field(&r.RSVPLink, validation.By(validateRSVPLink)),
	)
}

// validateRSVPLink chấp nhận web URL hoặc email-compose link
func validateRSVPLink(value interface{}) error {
	link, _ := value.(string)
	if link == "" {
		return nil
	}
	if strings.HasPrefix(link, "http://") ||
		strings.HasPrefix(link, "https://") ||
		strings.HasPrefix(link, "mailto:") {
		return nil
	}
	return ErrInvalidRSVPURL
}

// EventResponse là event trả về cho client, date format YYYY-MM-DD
type EventResponse struct {
	ID          uuid.UUID `json:"id"`
	Date        string    `json:"date"`
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

// EventsResponse là public list đã partition sẵn
type EventsResponse struct {
	Upcoming []EventResponse `json:"upcoming"`
	Past     []EventResponse `json:"past"`
}

func NewEventResponse(e *Event) EventResponse {
	return EventResponse{
		ID:          e.ID,
		Date:        e.Date.Format("2006-01-02"),
		Type:        e.Type,
		Title:       e.Title,
		Summary:     e.Summary,
		Address:     e.Address,
		TimeFrom:    e.TimeFrom,
		TimeTo:      e.TimeTo,
		RSVPLink:    e.RSVPLink,
		Featured:    e.Featured,
		IsPast:      e.IsPast,
		AuthorEmail: e.AuthorEmail,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func NewEventResponses(events []Event) []EventResponse {
	out := make([]EventResponse, 0, len(events))
	for i := range events {
		out = append(out, NewEventResponse(&events[i]))
	}
	return out
}
