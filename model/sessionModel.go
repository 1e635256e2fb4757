// model/session.go
package model

import "time"

// Session is everything one user sees: the catalog, the current rental and
// the receipts of settled ones.
type Session struct {
	ID           string        `json:"id"`
	Items        []Item        `json:"items"`
	ActiveRental *ActiveRental `json:"active_rental,omitempty"`
	Receipts     []Receipt     `json:"receipts"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// FindItem returns a pointer into s.Items so callers can flip status in place.
func (s *Session) FindItem(id int64) *Item {
	for i := range s.Items {
		if s.Items[i].ID == id {
			return &s.Items[i]
		}
	}
	return nil
}

// NextItemID is max(existing ids)+1.
func (s *Session) NextItemID() int64 {
	var max int64
	for _, it := range s.Items {
		if it.ID > max {
			max = it.ID
		}
	}
	return max + 1
}
