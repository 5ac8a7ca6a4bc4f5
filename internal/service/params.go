package service

import "time"

// CreateAuctionParams carries everything needed to open a new auction.
// Seller is filled in from the resolved session, never from the request body.
type CreateAuctionParams struct {
	Item        string
	StartPrice  float64
	DurationSec int
	Seller      string
}

// LogFilter supports audit history filtering by time range and type.
type LogFilter struct {
	From time.Time // inclusive; zero means no lower bound
	To   time.Time // inclusive; zero means no upper bound
	Type string    // "", "USER_REGISTERED", "AUCTION_CREATED", "BID_PLACED", "AUCTION_ENDED"
}
