package models

import "time"

// Auction is a timed sale record. CurrentPrice only ever goes up and equals
// the highest accepted bid, or StartPrice while no bid has been accepted.
type Auction struct {
	ID           string    `json:"id"`
	Item         string    `json:"item"`
	StartPrice   float64   `json:"start_price"`
	CurrentPrice float64   `json:"current_price"`
	EndTime      time.Time `json:"end_time"`
	Seller       string    `json:"seller"`
	Bids         []Bid     `json:"bids"`
	Winner       string    `json:"winner,omitempty"` // reserved; settlement is out of scope
}

// Bid is one accepted offer. Immutable once appended.
type Bid struct {
	Bidder   string    `json:"bidder"`
	Amount   float64   `json:"amount"`
	PlacedAt time.Time `json:"placed_at"`
}

// Active reports whether the auction is still open at the given instant.
// Closedness is always derived from EndTime, never stored.
func (a Auction) Active(now time.Time) bool {
	return a.EndTime.After(now)
}
