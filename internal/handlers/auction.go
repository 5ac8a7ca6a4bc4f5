package handlers

import (
	"errors"
	"net/http"
	"time"

	"auctionhouse/internal/repository"
	"auctionhouse/internal/service"

	"github.com/gin-gonic/gin"
)

const errPlaceBid = "failed to place bid"

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// Request DTO for creating an auction. Seller comes from the session.
type createAuctionRequest struct {
	Item        string  `json:"item" binding:"required"`
	StartPrice  float64 `json:"start_price" binding:"required"`
	DurationSec int     `json:"duration_sec" binding:"required"`
}

// Request DTO for placing a bid. Bidder comes from the session.
type placeBidRequest struct {
	Amount float64 `json:"amount" binding:"required"`
}

// CreateAuctionRequest is an exported model for Swagger docs of the createAuction payload.
type CreateAuctionRequest struct {
	// Item being sold
	Item string `json:"item" example:"Widget"`
	// Opening price; first bid must exceed it
	StartPrice float64 `json:"start_price" example:"10"`
	// Auction lifetime in seconds from now
	DurationSec int `json:"duration_sec" example:"60"`
}

// PlaceBidRequest is an exported model for Swagger docs of the placeBid payload.
type PlaceBidRequest struct {
	// Offered amount; must exceed the current price
	Amount float64 `json:"amount" example:"15"`
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// @Summary      Create auction
// @Description  Opens a timed auction ending duration_sec from now. Seller is taken from the session token.
// @Tags         auctions
// @Accept       json
// @Produce      json
// @Param        body  body   CreateAuctionRequest  true  "Auction payload"
// @Success      200   {object}  map[string]string  "auction_id"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/v1/auctions [post]
// @Security     BearerAuth
func (h *Handler) createAuction(c *gin.Context) {
	var req createAuctionRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	id, err := h.services.Auctions.Create(c.Request.Context(), service.CreateAuctionParams{
		Item:        req.Item,
		StartPrice:  req.StartPrice,
		DurationSec: req.DurationSec,
		Seller:      c.GetString(usernameKey),
	})
	if err != nil {
		if h.log != nil {
			h.log.Errorw("auction_create_failed", "err", err, "item", req.Item)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"auction_id": id})
}

// @Summary      Place bid
// @Description  Accepts the bid only while the auction is open and the amount exceeds the current price.
// @Tags         auctions
// @Accept       json
// @Produce      json
// @Param        id    path   string           true  "Auction id"
// @Param        body  body   PlaceBidRequest  true  "Bid payload"
// @Success      200   {object}  map[string]interface{}  "status, auction"
// @Failure      400   {object}  map[string]interface{}
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/auctions/{id}/bids [post]
// @Security     BearerAuth
func (h *Handler) placeBid(c *gin.Context) {
	var req placeBidRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	auctionID := c.Param("id")
	bidder := c.GetString(usernameKey)

	err := h.services.Auctions.PlaceBid(c.Request.Context(), auctionID, bidder, req.Amount)
	switch {
	case err == nil:
		// accepted; respond below
	case errors.Is(err, repository.ErrAuctionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	case errors.Is(err, repository.ErrAuctionEnded):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case errors.Is(err, repository.ErrBidTooLow):
		// Include the current price as the retry floor.
		resp := gin.H{"error": err.Error()}
		if a, aerr := h.services.Auctions.Get(auctionID); aerr == nil {
			resp["current_price"] = a.CurrentPrice
		}
		c.JSON(http.StatusBadRequest, resp)
		return
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, errPlaceBid, "bid_place_failed", err, "auction_id", auctionID)
		return
	}

	resp := gin.H{"status": "bid_placed"}
	if a, aerr := h.services.Auctions.Get(auctionID); aerr == nil {
		resp["auction"] = a
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary      Get auction
// @Tags         auctions
// @Produce      json
// @Param        id  path  string  true  "Auction id"
// @Success      200  {object}  map[string]interface{}  "auction"
// @Failure      404  {object}  map[string]string
// @Router       /auctions/{id} [get]
func (h *Handler) getAuction(c *gin.Context) {
	a, err := h.services.Auctions.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "auction not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"auction": a})
}

// @Summary      List active auctions
// @Tags         auctions
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, auctions"
// @Router       /auctions [get]
func (h *Handler) listAuctions(c *gin.Context) {
	auctions := h.services.Auctions.ListActive(time.Now().UTC())
	c.JSON(http.StatusOK, gin.H{
		"count":    len(auctions),
		"auctions": auctions,
	})
}
