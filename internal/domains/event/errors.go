package event

import "errors"

var (
	ErrEventNotFound  = errors.New("event not found")
	ErrInvalidDate    = errors.New("invalid event date")
	ErrInvalidRSVPURL = errors.New("rsvp link must be a web URL or mailto link")
)
