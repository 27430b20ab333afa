package domain

import (
	"fmt"
	"time"
)

// PlanRefOther is the sentinel plan id for engagements sold outside the
// catalog. It always travels with a free-text description.
const PlanRefOther = "other"

// PlanRef points a history item at either a catalog plan or the "other"
// sentinel. OtherDescription is non-empty exactly when PlanID is the
// sentinel; Validate enforces this.
type PlanRef struct {
	PlanID           string `json:"planId" bson:"planId"`
	OtherDescription string `json:"otherPlanDescription,omitempty" bson:"otherPlanDescription,omitempty"`
}

// IsOther reports whether the reference targets an off-catalog engagement.
func (r PlanRef) IsOther() bool {
	return r.PlanID == PlanRefOther
}

// Validate checks the plan-or-other invariant.
func (r PlanRef) Validate() error {
	if r.PlanID == "" {
		return fmt.Errorf("%w: plan is required", ErrValidation)
	}
	if r.IsOther() && r.OtherDescription == "" {
		return fmt.Errorf("%w: description is required for an \"other\" plan", ErrValidation)
	}
	if !r.IsOther() && r.OtherDescription != "" {
		return fmt.Errorf("%w: description is only allowed for an \"other\" plan", ErrValidation)
	}
	return nil
}

// HistoryItem records a past booking or engagement for a client.
// History is append-only: no update or delete is exposed, except the
// cascade that removes a client's entire history with the client.
type HistoryItem struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	ClientID  string    `json:"clientId" bson:"clientId"`
	Plan      PlanRef   `json:"plan" bson:",inline"`
	Date      time.Time `json:"date" bson:"date"`
	GroupSize int       `json:"groupSize" bson:"groupSize"`
	Country   string    `json:"country" bson:"country"`
}
