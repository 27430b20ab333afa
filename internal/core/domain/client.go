package domain

import "errors"

// Mode classifies the kind of business a client runs.
type Mode string

const (
	ModeHotel     Mode = "hotel"
	ModeTourGuide Mode = "tourGuide"
)

// ValidMode reports whether s is a recognized client mode.
func ValidMode(s string) bool {
	return s == string(ModeHotel) || s == string(ModeTourGuide)
}

var ErrClientNotFound = errors.New("client not found")
var ErrValidation = errors.New("validation failed")
var ErrBackendUnavailable = errors.New("backend unavailable")

// BilingualString holds the two display locales for a human-facing label.
// Persisted records carry both values; the editing layer mirrors one locale
// into the other until they diverge (see pkg/bilingual).
type BilingualString struct {
	EN string `json:"en" bson:"en"`
	JA string `json:"ja" bson:"ja"`
}

// Client is a hotel or tour-guide business partner tracked for sales purposes.
//
// The optional contact fields use the empty string as "unset": they are never
// persisted as empty strings, and clearing one on update removes it from the
// stored document entirely.
type Client struct {
	ID               string          `json:"id" bson:"_id,omitempty"`
	Name             BilingualString `json:"name" bson:"name"`
	Type             []Mode          `json:"type" bson:"type"`
	CountryStrengths []string        `json:"countryStrengths" bson:"countryStrengths"`
	ContactName      string          `json:"contactName,omitempty" bson:"contactName,omitempty"`
	ContactEmail     string          `json:"contactEmail,omitempty" bson:"contactEmail,omitempty"`
	ContactPhone     string          `json:"contactPhone,omitempty" bson:"contactPhone,omitempty"`
	Website          string          `json:"website,omitempty" bson:"website,omitempty"`

	// LatestMemo is attached by the aggregation helper only. Never persisted.
	LatestMemo *Memo `json:"latestMemo,omitempty" bson:"-"`
}
