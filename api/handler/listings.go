package handler

import (
	"net/http"
	"strconv"

	"entgo.io/ent/dialect/sql"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/CyrilCartoux/watch-pros-sub004/ent"
	entbrand "github.com/CyrilCartoux/watch-pros-sub004/ent/brand"
	entlisting "github.com/CyrilCartoux/watch-pros-sub004/ent/listing"
	entmodel "github.com/CyrilCartoux/watch-pros-sub004/ent/model"
	entsellerprofile "github.com/CyrilCartoux/watch-pros-sub004/ent/sellerprofile"
	entuser "github.com/CyrilCartoux/watch-pros-sub004/ent/user"
)

// listingPageSize caps browse responses; deeper pages use the offset param.
const listingPageSize = 50

// ListingHandler handles listing CRUD and browsing.
type ListingHandler struct {
	db *ent.Client
}

func NewListingHandler(db *ent.Client) *ListingHandler {
	return &ListingHandler{db: db}
}

type listingResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	PriceCents  int64     `json:"price_cents"`
	Currency    string    `json:"currency"`
	Condition   string    `json:"condition"`
	Year        int       `json:"year,omitempty"`
	Status      string    `json:"status"`
	ViewsCount  int64     `json:"views_count"`
	BrandSlug   string    `json:"brand_slug,omitempty"`
	ModelSlug   string    `json:"model_slug,omitempty"`
	SellerID    uuid.UUID `json:"seller_id,omitempty"`
	SellerName  string    `json:"seller_name,omitempty"`
}

func buildListingResponse(l *ent.Listing) listingResponse {
	resp := listingResponse{
		ID:          l.ID,
		Title:       l.Title,
		Description: l.Description,
		PriceCents:  l.PriceCents,
		Currency:    l.Currency,
		Condition:   string(l.Condition),
		Year:        l.Year,
		Status:      string(l.Status),
		ViewsCount:  l.ViewsCount,
	}
	if b := l.Edges.Brand; b != nil {
		resp.BrandSlug = b.Slug
	}
	if m := l.Edges.Model; m != nil {
		resp.ModelSlug = m.Slug
	}
	if s := l.Edges.Seller; s != nil {
		resp.SellerID = s.ID
		resp.SellerName = s.DisplayName
	}
	return resp
}

// ListListings handles GET /listings.
// Filters: brand_id, model_id, condition, min_price, max_price, seller_id.
// Only active listings are returned to the public browse endpoint.
func (h *ListingHandler) ListListings(c *gin.Context) {
	q := h.db.Listing.Query().
		Where(entlisting.StatusEQ(entlisting.StatusActive)).
		WithBrand().
		WithModel().
		WithSeller().
		Order(entlisting.ByCreatedAt(sql.OrderDesc()))

	if raw := c.Query("brand_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid brand_id"})
			return
		}
		q = q.Where(entlisting.HasBrandWith(entbrand.IDEQ(id)))
	}
	if raw := c.Query("model_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid model_id"})
			return
		}
		q = q.Where(entlisting.HasModelWith(entmodel.IDEQ(id)))
	}
	if raw := c.Query("seller_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid seller_id"})
			return
		}
		q = q.Where(entlisting.HasSellerWith(entuser.IDEQ(id)))
	}
	if raw := c.Query("condition"); raw != "" {
		cond := entlisting.Condition(raw)
		if err := entlisting.ConditionValidator(cond); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid condition"})
			return
		}
		q = q.Where(entlisting.ConditionEQ(cond))
	}
	if raw := c.Query("min_price"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid min_price"})
			return
		}
		q = q.Where(entlisting.PriceCentsGTE(v))
	}
	if raw := c.Query("max_price"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid max_price"})
			return
		}
		q = q.Where(entlisting.PriceCentsLTE(v))
	}
	if raw := c.Query("offset"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid offset"})
			return
		}
		q = q.Offset(v)
	}

	listings, err := q.Limit(listingPageSize).All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list listings"})
		return
	}

	resp := make([]listingResponse, len(listings))
	for i, l := range listings {
		resp[i] = buildListingResponse(l)
	}
	c.JSON(http.StatusOK, gin.H{"listings": resp})
}

// GetListing handles GET /listings/:id. Non-active listings are only visible
// to their seller and admins.
func (h *ListingHandler) GetListing(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid listing ID"})
		return
	}

	l, err := h.db.Listing.Query().
		Where(entlisting.IDEQ(id)).
		WithBrand().
		WithModel().
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

	if l.Status != entlisting.StatusActive {
		caller := userFromCtx(c)
		isOwner := caller != nil && l.Edges.Seller != nil && caller.ID == l.Edges.Seller.ID
		if caller == nil || (!isOwner && !caller.IsAdmin) {
			c.JSON(http.StatusNotFound, gin.H{"error": "listing not found"})
			return
		}
	}

	c.JSON(http.StatusOK, buildListingResponse(l))
}

type createListingRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	BrandID     uuid.UUID  `json:"brand_id" binding:"required"`
	ModelID     *uuid.UUID `json:"model_id"`
	PriceCents  int64      `json:"price_cents" binding:"required,gt=0"`
	Currency    string     `json:"currency"`
	Condition   string     `json:"condition"`
	Year        int        `json:"year"`
}

// CreateListing handles POST /listings. Only verified sellers may create
// listings.
func (h *ListingHandler) CreateListing(c *gin.Context) {
	caller := userFromCtx(c)
	if caller == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	verified, err := h.db.SellerProfile.Query().
		Where(
			entsellerprofile.HasUserWith(entuser.IDEQ(caller.ID)),
			entsellerprofile.StatusEQ(entsellerprofile.StatusVerified),
		).
		Exist(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check seller status"})
		return
	}
	if !verified {
		c.JSON(http.StatusForbidden, gin.H{"error": "seller verification required"})
		return
	}

	var req createListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	create := h.db.Listing.Create().
		SetTitle(req.Title).
		SetDescription(req.Description).
		SetBrandID(req.BrandID).
		SetPriceCents(req.PriceCents).
		SetSeller(caller)
	if req.ModelID != nil {
		create = create.SetModelID(*req.ModelID)
	}
	if req.Currency != "" {
		create = create.SetCurrency(req.Currency)
	}
	if req.Condition != "" {
		cond := entlisting.Condition(req.Condition)
		if err := entlisting.ConditionValidator(cond); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid condition"})
			return
		}
		create = create.SetCondition(cond)
	}
	if req.Year != 0 {
		create = create.SetYear(req.Year)
	}

	l, err := create.Save(c.Request.Context())
	if err != nil {
		if ent.IsConstraintError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown brand or model"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create listing"})
		return
	}
	c.JSON(http.StatusCreated, buildListingResponse(l))
}

type updateListingRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	PriceCents  *int64  `json:"price_cents"`
	Condition   *string `json:"condition"`
	Year        *int    `json:"year"`
	Status      *string `json:"status"`
}

// UpdateListing handles PATCH /listings/:id. Only the seller (or an admin)
// may update; sold listings are frozen.
func (h *ListingHandler) UpdateListing(c *gin.Context) {
	l, ok := h.ownedListing(c)
	if !ok {
		return
	}
	if l.Status == entlisting.StatusSold {
		c.JSON(http.StatusConflict, gin.H{"error": "sold listings cannot be updated"})
		return
	}

	var req updateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := h.db.Listing.UpdateOneID(l.ID)
	if req.Title != nil {
		update = update.SetTitle(*req.Title)
	}
	if req.Description != nil {
		update = update.SetDescription(*req.Description)
	}
	if req.PriceCents != nil {
		if *req.PriceCents <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "price_cents must be positive"})
			return
		}
		update = update.SetPriceCents(*req.PriceCents)
	}
	if req.Condition != nil {
		cond := entlisting.Condition(*req.Condition)
		if err := entlisting.ConditionValidator(cond); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid condition"})
			return
		}
		update = update.SetCondition(cond)
	}
	if req.Year != nil {
		update = update.SetYear(*req.Year)
	}
	if req.Status != nil {
		status := entlisting.Status(*req.Status)
		if err := entlisting.StatusValidator(status); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
			return
		}
		// Sellers move listings between draft and active; sold and suspended
		// are owned by the offer flow and admins respectively.
		if status == entlisting.StatusSold || (status == entlisting.StatusSuspended && !userFromCtx(c).IsAdmin) {
			c.JSON(http.StatusForbidden, gin.H{"error": "status not settable"})
			return
		}
		update = update.SetStatus(status)
	}

	updated, err := update.Save(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update listing"})
		return
	}
	c.JSON(http.StatusOK, buildListingResponse(updated))
}

// DeleteListing handles DELETE /listings/:id.
func (h *ListingHandler) DeleteListing(c *gin.Context) {
	l, ok := h.ownedListing(c)
	if !ok {
		return
	}
	if err := h.db.Listing.DeleteOneID(l.ID).Exec(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete listing"})
		return
	}
	c.Status(http.StatusNoContent)
}

// ownedListing loads the listing from the :id param and verifies the caller
// is its seller or an admin. Writes the error response itself on failure.
func (h *ListingHandler) ownedListing(c *gin.Context) (*ent.Listing, bool) {
	caller := userFromCtx(c)
	if caller == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid listing ID"})
		return nil, false
	}
	l, err := h.db.Listing.Query().
		Where(entlisting.IDEQ(id)).
		WithSeller().
		Only(c.Request.Context())
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "listing not found"})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get listing"})
		return nil, false
	}
	if (l.Edges.Seller == nil || l.Edges.Seller.ID != caller.ID) && !caller.IsAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return nil, false
	}
	return l, true
}
