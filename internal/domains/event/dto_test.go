package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validEventRequest() SubmitEventRequest {
	return SubmitEventRequest{
		Month:    6,
		Day:      15,
		Type:     TypeDinner,
		Title:    "Annual Dinner",
		Summary:  "End of year dinner",
		Address:  "116th & Broadway",
		TimeFrom: "18:00",
	}
}

func TestSubmitEventRequestValidate(t *testing.T) {
	t.Run("valid request passes", func(t *testing.T) {
		assert.NoError(t, validEventRequest().Validate())
	})

	t.Run("each required field is enforced", func(t *testing.T) {
		cases := map[string]func(*SubmitEventRequest){
			"month":     func(r *SubmitEventRequest) { r.Month = 0 },
			"day":       func(r *SubmitEventRequest) { r.Day = 0 },
			"type":      func(r *SubmitEventRequest) { r.Type = "" },
			"title":     func(r *SubmitEventRequest) { r.Title = "" },
			"summary":   func(r *SubmitEventRequest) { r.Summary = "" },
			"address":   func(r *SubmitEventRequest) { r.Address = "" },
			"time_from": func(r *SubmitEventRequest) { r.TimeFrom = "" },
		}

		for name, mutate := range cases {
			req := validEventRequest()
			mutate(&req)
			assert.Error(t, req.Validate(), "missing %s must fail", name)
		}
	})

	t.Run("month and day bounds", func(t *testing.T) {
		req := validEventRequest()
		req.Month = 13
		assert.Error(t, req.Validate())

		req = validEventRequest()
		req.Day = 32
		assert.Error(t, req.Validate())
	})

	t.Run("rsvp link accepts web and mailto", func(t *testing.T) {
		req := validEventRequest()
		req.RSVPLink = "https://forms.example.com/rsvp"
		assert.NoError(t, req.Validate())

		req.RSVPLink = "mailto:events@club.org?subject=RSVP"
		assert.NoError(t, req.Validate())

		req.RSVPLink = "ftp://files.example.com"
		assert.Error(t, req.Validate())
	})
}
