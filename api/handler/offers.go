package handler

import (
	"fmt"
	"net/http"

	"entgo.io/ent/dialect/sql"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/CyrilCartoux/watch-pros-sub004/ent"
	entlisting "github.com/CyrilCartoux/watch-pros-sub004/ent/listing"
	entnotification "github.com/CyrilCartoux/watch-pros-sub004/ent/notification"
	entoffer "github.com/CyrilCartoux/watch-pros-sub004/ent/offer"
	entuser "github.com/CyrilCartoux/watch-pros-sub004/ent/user"
)

// OfferHandler handles the buyer/seller offer negotiation flow.
type OfferHandler struct {
	db       *ent.Client
	notifier *Notifier
}

func NewOfferHandler(db *ent.Client, notifier *Notifier) *OfferHandler {
	return &OfferHandler{db: db, notifier: notifier}
}

type offerResponse struct {
	ID          uuid.UUID `json:"id"`
	ListingID   uuid.UUID `json:"listing_id"`
	BuyerID     uuid.UUID `json:"buyer_id"`
	AmountCents int64     `json:"amount_cents"`
	Currency    string    `json:"currency"`
	Message     string    `json:"message,omitempty"`
	Status      string    `json:"status"`
}

func buildOfferResponse(o *ent.Offer) offerResponse {
	resp := offerResponse{
		ID:          o.ID,
		AmountCents: o.AmountCents,
		Currency:    o.Currency,
		Message:     o.Message,
		Status:      string(o.Status),
	}
	if l := o.Edges.Listing; l != nil {
		resp.ListingID = l.ID
	}
	if b := o.Edges.Buyer; b != nil {
		resp.BuyerID = b.ID
	}
	return resp
}

type createOfferRequest struct {
	AmountCents int64  `json:"amount_cents" binding:"required,gt=0"`
	Message     string `json:"message"`
}

// CreateOffer handles POST /listings/:id/offers.
// Buyers cannot bid on their own listings, and only active listings accept
// offers. The seller is notified of every new offer.
func (h *OfferHandler) CreateOffer(c *gin.Context) {
	caller := userFromCtx(c)
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid listing ID"})
		return
	}

	var req createOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	listing, err := h.db.Listing.Query().
		Where(entlisting.IDEQ(listingID)).
		WithSeller().
		Only(c.Request.Context())
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "listing not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get listing"})
		return
	}
	if listing.Status != entlisting.StatusActive {
		c.JSON(http.StatusConflict, gin.H{"error": "listing is not open for offers"})
		return
	}
	seller := listing.Edges.Seller
	if seller != nil && seller.ID == caller.ID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot make an offer on your own listing"})
		return
	}

	offer, err := h.db.Offer.Create().
		SetListing(listing).
		SetBuyer(caller).
		SetAmountCents(req.AmountCents).
		SetCurrency(listing.Currency).
		SetMessage(req.Message).
		Save(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create offer"})
		return
	}

	if seller != nil {
		h.notifier.Notify(c.Request.Context(), seller.ID, entnotification.TypeOfferReceived,
			fmt.Sprintf("%s offered %s on %q", caller.DisplayName, formatAmount(offer.AmountCents, offer.Currency), listing.Title))
	}

	offer.Edges.Listing = listing
	offer.Edges.Buyer = caller
	c.JSON(http.StatusCreated, buildOfferResponse(offer))
}

// ListOffers handles GET /offers?role=buyer|seller (default buyer).
// Buyers see the offers they made; sellers see offers on their listings.
func (h *OfferHandler) ListOffers(c *gin.Context) {
	caller := userFromCtx(c)

	q := h.db.Offer.Query().
		WithListing().
		WithBuyer().
		Order(entoffer.ByCreatedAt(sql.OrderDesc()))

	switch c.DefaultQuery("role", "buyer") {
	case "buyer":
		q = q.Where(entoffer.HasBuyerWith(entuser.IDEQ(caller.ID)))
	case "seller":
		q = q.Where(entoffer.HasListingWith(entlisting.HasSellerWith(entuser.IDEQ(caller.ID))))
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "role must be buyer or seller"})
		return
	}

	offers, err := q.All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list offers"})
		return
	}
	resp := make([]offerResponse, len(offers))
	for i, o := range offers {
		resp[i] = buildOfferResponse(o)
	}
	c.JSON(http.StatusOK, gin.H{"offers": resp})
}

// AcceptOffer handles POST /offers/:id/accept.
// Seller only. Accepting marks the listing sold and declines all other
// pending offers on it; every affected buyer is notified.
func (h *OfferHandler) AcceptOffer(c *gin.Context) {
	offer, listing, ok := h.sellerOffer(c)
	if !ok {
		return
	}
	if offer.Status != entoffer.StatusPending {
		c.JSON(http.StatusConflict, gin.H{"error": "offer is not pending"})
		return
	}

	ctx := c.Request.Context()
	tx, err := h.db.Tx(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to accept offer"})
		return
	}

	if err := tx.Offer.UpdateOneID(offer.ID).SetStatus(entoffer.StatusAccepted).Exec(ctx); err != nil {
		_ = tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to accept offer"})
		return
	}
	if err := tx.Listing.UpdateOneID(listing.ID).SetStatus(entlisting.StatusSold).Exec(ctx); err != nil {
		_ = tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to accept offer"})
		return
	}

	// Competing pending offers lose.
	losers, err := tx.Offer.Query().
		Where(
			entoffer.HasListingWith(entlisting.IDEQ(listing.ID)),
			entoffer.StatusEQ(entoffer.StatusPending),
			entoffer.IDNEQ(offer.ID),
		).
		WithBuyer().
		All(ctx)
	if err != nil {
		_ = tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to accept offer"})
		return
	}
	for _, loser := range losers {
		if err := tx.Offer.UpdateOneID(loser.ID).SetStatus(entoffer.StatusDeclined).Exec(ctx); err != nil {
			_ = tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to accept offer"})
			return
		}
	}

	if err := tx.Commit(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to accept offer"})
		return
	}

	if buyer := offer.Edges.Buyer; buyer != nil {
		h.notifier.Notify(ctx, buyer.ID, entnotification.TypeOfferAccepted,
			fmt.Sprintf("Your offer of %s on %q was accepted", formatAmount(offer.AmountCents, offer.Currency), listing.Title))
	}
	for _, loser := range losers {
		if buyer := loser.Edges.Buyer; buyer != nil {
			h.notifier.Notify(ctx, buyer.ID, entnotification.TypeOfferDeclined,
				fmt.Sprintf("Your offer on %q was declined", listing.Title))
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "accepted"})
}

// DeclineOffer handles POST /offers/:id/decline. Seller only.
func (h *OfferHandler) DeclineOffer(c *gin.Context) {
	offer, listing, ok := h.sellerOffer(c)
	if !ok {
		return
	}
	if offer.Status != entoffer.StatusPending {
		c.JSON(http.StatusConflict, gin.H{"error": "offer is not pending"})
		return
	}

	if err := h.db.Offer.UpdateOneID(offer.ID).SetStatus(entoffer.StatusDeclined).Exec(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to decline offer"})
		return
	}

	if buyer := offer.Edges.Buyer; buyer != nil {
		h.notifier.Notify(c.Request.Context(), buyer.ID, entnotification.TypeOfferDeclined,
			fmt.Sprintf("Your offer on %q was declined", listing.Title))
	}
	c.JSON(http.StatusOK, gin.H{"status": "declined"})
}

// WithdrawOffer handles POST /offers/:id/withdraw. Buyer only, pending offers only.
func (h *OfferHandler) WithdrawOffer(c *gin.Context) {
	caller := userFromCtx(c)
	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid offer ID"})
		return
	}

	offer, err := h.db.Offer.Query().
		Where(entoffer.IDEQ(offerID)).
		WithBuyer().
		Only(c.Request.Context())
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "offer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get offer"})
		return
	}
	if offer.Edges.Buyer == nil || offer.Edges.Buyer.ID != caller.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	if offer.Status != entoffer.StatusPending {
		c.JSON(http.StatusConflict, gin.H{"error": "offer is not pending"})
		return
	}

	if err := h.db.Offer.UpdateOneID(offer.ID).SetStatus(entoffer.StatusWithdrawn).Exec(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to withdraw offer"})
		return
	}
	c.Status(http.StatusNoContent)
}

// sellerOffer loads the offer from the :id param with its listing and buyer,
// and verifies the caller sells the listing. Writes the error response
// itself on failure.
func (h *OfferHandler) sellerOffer(c *gin.Context) (*ent.Offer, *ent.Listing, bool) {
	caller := userFromCtx(c)
	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid offer ID"})
		return nil, nil, false
	}

	offer, err := h.db.Offer.Query().
		Where(entoffer.IDEQ(offerID)).
		WithBuyer().
		WithListing(func(q *ent.ListingQuery) { q.WithSeller() }).
		Only(c.Request.Context())
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "offer not found"})
			return nil, nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get offer"})
		return nil, nil, false
	}

	listing := offer.Edges.Listing
	if listing == nil || listing.Edges.Seller == nil || listing.Edges.Seller.ID != caller.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return nil, nil, false
	}
	return offer, listing, true
}

// formatAmount renders a minor-unit amount for notification text, e.g.
// "12500.00 EUR".
func formatAmount(cents int64, currency string) string {
	return fmt.Sprintf("%d.%02d %s", cents/100, cents%100, currency)
}
