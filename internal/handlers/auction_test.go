package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"auctionhouse/internal/models"
	"auctionhouse/internal/repository"
	"auctionhouse/internal/service"
)

func setAuth(req *http.Request, token string) {
	for k, vv := range authHeader(token) {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
}

func TestAuctionHandlers_CreateAndBid(t *testing.T) {
	auth := &mockAuth{resolveUser: "alice"}
	auc := &mockAuctions{
		createID:   "a1",
		getAuction: models.Auction{ID: "a1", Item: "Widget", CurrentPrice: 15},
	}
	s := &service.Service{Authorization: auth, Auctions: auc}
	r := newTestRouter(s)

	// create requires auth → 401 without header
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auctions", bytes.NewBufferString(`{"item":"Widget","start_price":10,"duration_sec":60}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without auth, got %d", w.Code)
	}

	// create with auth → 200, seller taken from session
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/auctions", bytes.NewBufferString(`{"item":"Widget","start_price":10,"duration_sec":60}`))
	req.Header.Set("Content-Type", "application/json")
	setAuth(req, "valid")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("create status=%d, body=%s", w.Code, w.Body.String())
	}
	var m map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if m["auction_id"] != "a1" {
		t.Fatalf("expected auction_id=a1, got %v", m["auction_id"])
	}
	if auc.lastCreate.Seller != "alice" {
		t.Fatalf("seller must come from the session, got %q", auc.lastCreate.Seller)
	}
	if auc.lastCreate.Item != "Widget" || auc.lastCreate.StartPrice != 10 || auc.lastCreate.DurationSec != 60 {
		t.Fatalf("unexpected create params: %+v", auc.lastCreate)
	}

	// bid with auth → 200, bidder from session, auction echoed back
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/auctions/a1/bids", bytes.NewBufferString(`{"amount":15}`))
	req.Header.Set("Content-Type", "application/json")
	setAuth(req, "valid")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("bid status=%d, body=%s", w.Code, w.Body.String())
	}
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if m["status"] != "bid_placed" {
		t.Fatalf("expected status=bid_placed, got %v", m["status"])
	}
	if auc.lastBidID != "a1" || auc.lastBidder != "alice" || auc.lastAmount != 15 {
		t.Fatalf("unexpected bid call: id=%q bidder=%q amount=%v", auc.lastBidID, auc.lastBidder, auc.lastAmount)
	}
}

func TestAuctionHandlers_BidErrors(t *testing.T) {
	cases := []struct {
		name     string
		bidErr   error
		wantCode int
	}{
		{"not found", repository.ErrAuctionNotFound, http.StatusNotFound},
		{"ended", repository.ErrAuctionEnded, http.StatusBadRequest},
		{"too low", repository.ErrBidTooLow, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			auth := &mockAuth{resolveUser: "bob"}
			auc := &mockAuctions{
				bidErr:     tc.bidErr,
				getAuction: models.Auction{ID: "a1", CurrentPrice: 15},
			}
			s := &service.Service{Authorization: auth, Auctions: auc}
			r := newTestRouter(s)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/auctions/a1/bids", bytes.NewBufferString(`{"amount":12}`))
			req.Header.Set("Content-Type", "application/json")
			setAuth(req, "valid")
			r.ServeHTTP(w, req)

			if w.Code != tc.wantCode {
				t.Fatalf("status: got %d, want %d (body=%s)", w.Code, tc.wantCode, w.Body.String())
			}
			if tc.bidErr == repository.ErrBidTooLow {
				var out map[string]any
				_ = json.Unmarshal(w.Body.Bytes(), &out)
				if out["current_price"] != 15.0 {
					t.Fatalf("too-low response must include the retry floor, got %v", out)
				}
			}
		})
	}
}

func TestAuctionHandlers_PublicReads(t *testing.T) {
	now := time.Now().UTC()
	a := models.Auction{ID: "a1", Item: "Widget", CurrentPrice: 15, EndTime: now.Add(time.Minute)}
	auc := &mockAuctions{getAuction: a, active: []models.Auction{a}}
	s := &service.Service{Auctions: auc}
	r := newTestRouter(s)

	// list active — no auth required
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/auctions", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("list status=%d, body=%s", w.Code, w.Body.String())
	}
	var list struct {
		Count    int              `json:"count"`
		Auctions []models.Auction `json:"auctions"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("unmarshal list: %v", err)
	}
	if list.Count != 1 || len(list.Auctions) != 1 || list.Auctions[0].ID != "a1" {
		t.Fatalf("unexpected listing: %+v", list)
	}

	// get by id — no auth required
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/auctions/a1", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("get status=%d, body=%s", w.Code, w.Body.String())
	}

	// unknown id → 404
	auc.getErr = repository.ErrAuctionNotFound
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/auctions/missing", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown auction, got %d", w.Code)
	}
}
