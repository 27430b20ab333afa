package handler

import (
	"fmt"
	"time"
)

// errorResponse documents the error envelope in handler annotations; the
// actual rendering happens in the central HTTP error handler.
type errorResponse struct {
	Error string `json:"error"`
}

type bilingualRequest struct {
	EN string `json:"en" validate:"required"`
	JA string `json:"ja" validate:"required"`
}

// bilingualOptionalRequest is a bilingual pair that may be left blank.
type bilingualOptionalRequest struct {
	EN string `json:"en"`
	JA string `json:"ja"`
}

type clientRequest struct {
	Name             bilingualRequest `json:"name" validate:"required"`
	Type             []string         `json:"type" validate:"required,min=1,dive,oneof=hotel tourGuide"`
	CountryStrengths []string         `json:"countryStrengths"`
	ContactName      string           `json:"contactName"`
	ContactEmail     string           `json:"contactEmail" validate:"omitempty,email"`
	ContactPhone     string           `json:"contactPhone"`
	Website          string           `json:"website"`
}

type planRequest struct {
	Name        bilingualRequest         `json:"name" validate:"required"`
	Description bilingualOptionalRequest `json:"description"`
	Type        string                   `json:"type" validate:"required,oneof=banquet accommodation menu"`
	Price       int                      `json:"price" validate:"gte=0"`
	Season      string                   `json:"season"`
}

type memoRequest struct {
	Text     string `json:"text" validate:"required"`
	Author   string `json:"author"`
	MemoDate string `json:"memoDate" validate:"required"`
}

type historyRequest struct {
	PlanID               string `json:"planId" validate:"required"`
	OtherPlanDescription string `json:"otherPlanDescription"`
	Date                 string `json:"date" validate:"required"`
	GroupSize            int    `json:"groupSize" validate:"required,gt=0"`
	Country              string `json:"country" validate:"required"`
}

type countryRequest struct {
	Name string `json:"name" validate:"required"`
}

type importResponse struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// parseDate accepts the calendar-date form used by the editing UI and full
// RFC 3339 timestamps.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
}
