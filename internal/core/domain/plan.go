package domain

import "errors"

// PlanType classifies a sellable offering.
type PlanType string

const (
	PlanBanquet       PlanType = "banquet"
	PlanAccommodation PlanType = "accommodation"
	PlanMenu          PlanType = "menu"
)

// ValidPlanType reports whether s is a recognized plan type.
func ValidPlanType(s string) bool {
	switch PlanType(s) {
	case PlanBanquet, PlanAccommodation, PlanMenu:
		return true
	}
	return false
}

var ErrPlanNotFound = errors.New("plan not found")

// Plan is a sellable banquet/accommodation/menu offering shown to clients.
// Price is in whole yen. Plans are never deleted, only replaced.
type Plan struct {
	ID          string          `json:"id" bson:"_id,omitempty"`
	Name        BilingualString `json:"name" bson:"name"`
	Description BilingualString `json:"description" bson:"description"`
	Type        PlanType        `json:"type" bson:"type"`
	Price       int             `json:"price" bson:"price"`
	Season      string          `json:"season" bson:"season"`
}
