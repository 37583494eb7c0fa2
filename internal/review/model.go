package review

import "time"

type Review struct {
	ID        int       `json:"id"`
	BookID    int       `json:"bookId"`
	UserID    *int      `json:"userId,omitempty"`
	Name      string    `json:"name"`
	Rating    int       `json:"rating"`
	Comment   *string   `json:"comment,omitempty"`
	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"createdAt"`
}

type SubmitInput struct {
	BookID  int     `json:"-"`
	UserID  *int    `json:"-"`
	Name    string  `json:"name"`
	Rating  int     `json:"rating"`
	Comment *string `json:"comment,omitempty"`
}

// RatingSummary aggregates approved reviews for one book.
type RatingSummary struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}
