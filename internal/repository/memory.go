package repository

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"time"

	"auctionhouse/internal/models"

	"golang.org/x/crypto/argon2"
)

// Domain errors raised by the store.
var (
	ErrUserExists      = errors.New("username already exists")
	ErrAuctionNotFound = errors.New("auction not found")
	ErrAuctionEnded    = errors.New("auction has ended")
	ErrBidTooLow       = errors.New("bid must be higher than current price")
)

const (
	saltBytes      = 16 // hex-encoded per-user salt
	tokenBytes     = 32 // session tokens, URL-safe base64
	auctionIDBytes = 16
)

// argon2id parameters for password hashing.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024 // KiB
	argonThreads = 4
	argonKeyLen  = 32
)

// MemoryStore holds users, sessions and auctions in process memory.
// One mutex guards all three maps: every critical section is pure in-memory
// work, so contention stays negligible and PlaceBid's check-then-act is
// trivially atomic per auction.
type MemoryStore struct {
	mu       sync.Mutex
	users    map[string]models.User
	sessions map[string]string // token -> username
	auctions map[string]*models.Auction
}

// Ensure the store satisfies all three repository interfaces.
var (
	_ Users    = (*MemoryStore)(nil)
	_ Sessions = (*MemoryStore)(nil)
	_ Auctions = (*MemoryStore)(nil)
)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:    make(map[string]models.User),
		sessions: make(map[string]string),
		auctions: make(map[string]*models.Auction),
	}
}

// ---- Credential vault ----

// Register stores a new user with a fresh random salt and an argon2id hash.
// Returns ErrUserExists if the username is taken.
func (s *MemoryStore) Register(username, password string) error {
	salt, err := newSalt()
	if err != nil {
		return fmt.Errorf("generate salt for user %q: %w", username, err)
	}
	// Hash outside the critical section; the duplicate check happens at
	// insert time, so a losing concurrent Register still gets ErrUserExists.
	hash := hashPassword(password, salt)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.users[username]; taken {
		return ErrUserExists
	}
	s.users[username] = models.User{
		Username:     username,
		Salt:         salt,
		PasswordHash: hash,
	}
	return nil
}

// Authenticate recomputes the salted hash and compares it in constant time.
// Unknown usernames simply report false.
func (s *MemoryStore) Authenticate(username, password string) bool {
	s.mu.Lock()
	u, ok := s.users[username]
	s.mu.Unlock()
	if !ok {
		return false
	}
	got := hashPassword(password, u.Salt)
	return subtle.ConstantTimeCompare([]byte(got), []byte(u.PasswordHash)) == 1
}

// ---- Session registry ----

// Login issues a fresh opaque token for an already-authenticated username.
// Credential verification is the caller's job (see AuthService.SignIn).
// A user may hold several tokens; each token maps to exactly one username.
func (s *MemoryStore) Login(username string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for {
		token, err := randomID(tokenBytes)
		if err != nil {
			return "", fmt.Errorf("generate session token: %w", err)
		}
		if _, inUse := s.sessions[token]; inUse {
			continue
		}
		s.sessions[token] = username
		return token, nil
	}
}

// Resolve maps a bearer token back to its username.
func (s *MemoryStore) Resolve(token string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	username, ok := s.sessions[token]
	return username, ok
}

// ---- Auction ledger ----

// CreateAuction stores a new auction record and returns its id.
func (s *MemoryStore) CreateAuction(item string, startPrice float64, endTime time.Time, seller string) (string, error) {
	id, err := randomID(auctionIDBytes)
	if err != nil {
		return "", fmt.Errorf("generate auction id: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auctions[id] = &models.Auction{
		ID:           id,
		Item:         item,
		StartPrice:   startPrice,
		CurrentPrice: startPrice,
		EndTime:      endTime,
		Seller:       seller,
		Bids:         []models.Bid{},
	}
	return id, nil
}

// PlaceBid validates and records a bid as one atomic step: the deadline and
// price checks always see the latest accepted bid, never a stale snapshot.
func (s *MemoryStore) PlaceBid(auctionID, bidder string, amount float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.auctions[auctionID]
	if !ok {
		return ErrAuctionNotFound
	}
	now := time.Now().UTC()
	if !now.Before(a.EndTime) {
		return ErrAuctionEnded
	}
	if amount <= a.CurrentPrice {
		return ErrBidTooLow
	}
	a.Bids = append(a.Bids, models.Bid{
		Bidder:   bidder,
		Amount:   amount,
		PlacedAt: now,
	})
	a.CurrentPrice = amount
	return nil
}

// Get returns a copy of the auction, so callers never alias the live record.
func (s *MemoryStore) Get(auctionID string) (models.Auction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.auctions[auctionID]
	if !ok {
		return models.Auction{}, false
	}
	return snapshot(a), true
}

// ListActive returns copies of all auctions whose EndTime is after now.
func (s *MemoryStore) ListActive(now time.Time) []models.Auction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Auction, 0, len(s.auctions))
	for _, a := range s.auctions {
		if a.Active(now) {
			out = append(out, snapshot(a))
		}
	}
	return out
}

// snapshot copies an auction including its bid history. Must be called with
// the store lock held.
func snapshot(a *models.Auction) models.Auction {
	cp := *a
	cp.Bids = make([]models.Bid, len(a.Bids))
	copy(cp.Bids, a.Bids)
	return cp
}

// ---- helpers ----

// newSalt returns a hex-encoded random salt.
func newSalt() (string, error) {
	b := make([]byte, saltBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// hashPassword derives an argon2id digest of password+salt, hex-encoded.
func hashPassword(password, salt string) string {
	sum := argon2.IDKey([]byte(password), []byte(salt), argonTime, argonMemory, argonThreads, argonKeyLen)
	return hex.EncodeToString(sum)
}

// randomID returns n random bytes in unpadded URL-safe base64.
func randomID(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
