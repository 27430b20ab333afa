package domain

import (
	"errors"
	"time"
)

var ErrMemoNotFound = errors.New("memo not found")

// Memo is a dated free-text sales note attached to a client.
//
// CreatedAt is assigned by the backend at write time and never changes; it
// drives the newest-first ordering of every memo listing. MemoDate is the
// user-supplied calendar date the note pertains to and may differ from
// CreatedAt. Updates replace Text and MemoDate only.
type Memo struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	ClientID  string    `json:"clientId" bson:"clientId"`
	Text      string    `json:"text" bson:"text"`
	Author    string    `json:"author" bson:"author"`
	MemoDate  time.Time `json:"memoDate" bson:"memoDate"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}
