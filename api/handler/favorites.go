package handler

import (
	"net/http"

	"entgo.io/ent/dialect/sql"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/CyrilCartoux/watch-pros-sub004/ent"
	entfavorite "github.com/CyrilCartoux/watch-pros-sub004/ent/favorite"
	entlisting "github.com/CyrilCartoux/watch-pros-sub004/ent/listing"
	entuser "github.com/CyrilCartoux/watch-pros-sub004/ent/user"
)

// FavoriteHandler handles saved listings.
type FavoriteHandler struct {
	db *ent.Client
}

func NewFavoriteHandler(db *ent.Client) *FavoriteHandler {
	return &FavoriteHandler{db: db}
}

// AddFavorite handles POST /listings/:id/favorite.
// Idempotent: favoriting an already-saved listing returns 200.
func (h *FavoriteHandler) AddFavorite(c *gin.Context) {
	caller := userFromCtx(c)
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid listing ID"})
		return
	}

	ctx := c.Request.Context()
	exists, err := h.db.Listing.Query().
		Where(entlisting.IDEQ(listingID)).
		Exist(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to look up listing"})
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "listing not found"})
		return
	}

	_, err = h.db.Favorite.Create().
		SetUser(caller).
		SetListingID(listingID).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Already saved.
			c.JSON(http.StatusOK, gin.H{"favorited": true})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save favorite"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"favorited": true})
}

// RemoveFavorite handles DELETE /listings/:id/favorite.
func (h *FavoriteHandler) RemoveFavorite(c *gin.Context) {
	caller := userFromCtx(c)
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid listing ID"})
		return
	}

	_, err = h.db.Favorite.Delete().
		Where(
			entfavorite.HasUserWith(entuser.IDEQ(caller.ID)),
			entfavorite.HasListingWith(entlisting.IDEQ(listingID)),
		).
		Exec(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove favorite"})
		return
	}
	c.Status(http.StatusNoContent)
}

// ListFavorites handles GET /favorites — the caller's saved listings, most
// recently saved first.
func (h *FavoriteHandler) ListFavorites(c *gin.Context) {
	caller := userFromCtx(c)

	favs, err := h.db.Favorite.Query().
		Where(entfavorite.HasUserWith(entuser.IDEQ(caller.ID))).
		WithListing(func(q *ent.ListingQuery) { q.WithBrand().WithModel().WithSeller() }).
		Order(entfavorite.ByCreatedAt(sql.OrderDesc())).
		All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list favorites"})
		return
	}

	resp := make([]listingResponse, 0, len(favs))
	for _, f := range favs {
		if f.Edges.Listing != nil {
			resp = append(resp, buildListingResponse(f.Edges.Listing))
		}
	}
	c.JSON(http.StatusOK, gin.H{"listings": resp})
}
