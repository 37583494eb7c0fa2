package points

// RedeemInput is the customer's request to spend points on a book.
type RedeemInput struct {
	UserID    int    `json:"-"`
	UserEmail string `json:"-"`
	BookID    int    `json:"bookId"`
	Quantity  int    `json:"quantity"`
}

// Receipt reports what a redemption consumed and what balance remains.
type Receipt struct {
	BookID          int `json:"bookId"`
	Quantity        int `json:"quantity"`
	PointsUsed      int `json:"pointsUsed"`
	RemainingPoints int `json:"remainingPoints"`
}
