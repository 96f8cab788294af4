package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/CyrilCartoux/watch-pros-sub004/config"
	"github.com/CyrilCartoux/watch-pros-sub004/ent"
	entbrand "github.com/CyrilCartoux/watch-pros-sub004/ent/brand"
	entmodel "github.com/CyrilCartoux/watch-pros-sub004/ent/model"
	"github.com/CyrilCartoux/watch-pros-sub004/slug"
)

// CatalogHandler serves the brand/model catalog. Responses are cached in a
// process-wide TTL cache because the catalog changes rarely and these lists
// sit on every page of the storefront.
type CatalogHandler struct {
	db    *ent.Client
	cfg   config.Config
	cache *catalogCache
}

func NewCatalogHandler(db *ent.Client, cfg config.Config) *CatalogHandler {
	return &CatalogHandler{db: db, cfg: cfg, cache: newCatalogCache(cfg.CatalogCacheTTL)}
}

type brandResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Slug    string    `json:"slug"`
	Country string    `json:"country,omitempty"`
	Popular bool      `json:"popular"`
}

type modelResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Reference string    `json:"reference,omitempty"`
	Popular   bool      `json:"popular"`
}

// catalogFilters are the query parameters shared by both catalog endpoints.
type catalogFilters struct {
	popular *bool
	slugs   []string
}

// parseCatalogFilters reads the popular and slugs query parameters.
// Returns (filters, ok); on a malformed popular value it writes a 400
// response and returns ok=false.
func parseCatalogFilters(c *gin.Context) (catalogFilters, bool) {
	var f catalogFilters
	if raw, present := c.GetQuery("popular"); present {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "popular must be a boolean"})
			return f, false
		}
		f.popular = &v
	}
	if raw, present := c.GetQuery("slugs"); present && raw != "" {
		f.slugs = slug.NormalizeSet(strings.Split(raw, ","))
	}
	return f, true
}

// GetBrands handles GET /brands?popular=<bool>&slugs=<csv>.
// Served from the TTL cache when fresh; repopulated from the database on miss.
func (h *CatalogHandler) GetBrands(c *gin.Context) {
	filters, ok := parseCatalogFilters(c)
	if !ok {
		return
	}

	key := catalogKey("brands", "", filters.popular, filters.slugs)
	if payload := h.cache.get(key); payload != nil {
		c.Header("Cache-Control", h.cache.cacheControl())
		c.Data(http.StatusOK, "application/json", payload)
		return
	}

	q := h.db.Brand.Query().Order(entbrand.ByName())
	if filters.popular != nil {
		q = q.Where(entbrand.PopularEQ(*filters.popular))
	}
	if len(filters.slugs) > 0 {
		q = q.Where(entbrand.SlugIn(filters.slugs...))
	}
	brands, err := q.All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list brands"})
		return
	}

	resp := make([]brandResponse, len(brands))
	for i, b := range brands {
		resp[i] = brandResponse{ID: b.ID, Name: b.Name, Slug: b.Slug, Country: b.Country, Popular: b.Popular}
	}
	payload, err := json.Marshal(gin.H{"brands": resp})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to encode brands"})
		return
	}
	// An empty list is a valid, cacheable payload; only query failures above
	// are kept out of the cache.
	h.cache.put(key, payload)
	c.Header("Cache-Control", h.cache.cacheControl())
	c.Data(http.StatusOK, "application/json", payload)
}

// GetModels handles GET /models?brand_id=<uuid>&popular=<bool>&slugs=<csv>.
// brand_id is required — the model list is only ever browsed per brand.
func (h *CatalogHandler) GetModels(c *gin.Context) {
	rawBrandID := c.Query("brand_id")
	if rawBrandID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "brand_id is required"})
		return
	}
	brandID, err := uuid.Parse(rawBrandID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid brand_id"})
		return
	}
	filters, ok := parseCatalogFilters(c)
	if !ok {
		return
	}

	key := catalogKey("models", brandID.String(), filters.popular, filters.slugs)
	if payload := h.cache.get(key); payload != nil {
		c.Header("Cache-Control", h.cache.cacheControl())
		c.Data(http.StatusOK, "application/json", payload)
		return
	}

	q := h.db.Model.Query().
		Where(entmodel.HasBrandWith(entbrand.IDEQ(brandID))).
		Order(entmodel.ByName())
	if filters.popular != nil {
		q = q.Where(entmodel.PopularEQ(*filters.popular))
	}
	if len(filters.slugs) > 0 {
		q = q.Where(entmodel.SlugIn(filters.slugs...))
	}
	models, err := q.All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list models"})
		return
	}

	resp := make([]modelResponse, len(models))
	for i, m := range models {
		resp[i] = modelResponse{ID: m.ID, Name: m.Name, Slug: m.Slug, Reference: m.Reference, Popular: m.Popular}
	}
	payload, err := json.Marshal(gin.H{"models": resp})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to encode models"})
		return
	}
	h.cache.put(key, payload)
	c.Header("Cache-Control", h.cache.cacheControl())
	c.Data(http.StatusOK, "application/json", payload)
}

// ── admin catalog management ──────────────────────────────────────────────────

type createBrandRequest struct {
	Name    string `json:"name" binding:"required"`
	Country string `json:"country"`
	Popular bool   `json:"popular"`
}

// CreateBrand handles POST /admin/brands. Cached catalog responses are not
// invalidated: new brands become visible once the current entries expire,
// which is the documented staleness window.
func (h *CatalogHandler) CreateBrand(c *gin.Context) {
	var req createBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	b, err := h.db.Brand.Create().
		SetName(req.Name).
		SetSlug(slug.Make(req.Name)).
		SetCountry(req.Country).
		SetPopular(req.Popular).
		Save(c.Request.Context())
	if err != nil {
		if ent.IsConstraintError(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "brand already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create brand"})
		return
	}
	c.JSON(http.StatusCreated, brandResponse{ID: b.ID, Name: b.Name, Slug: b.Slug, Country: b.Country, Popular: b.Popular})
}

type createModelRequest struct {
	BrandID   uuid.UUID `json:"brand_id" binding:"required"`
	Name      string    `json:"name" binding:"required"`
	Reference string    `json:"reference"`
	Popular   bool      `json:"popular"`
}

// CreateModel handles POST /admin/models.
func (h *CatalogHandler) CreateModel(c *gin.Context) {
	var req createModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	exists, err := h.db.Brand.Query().
		Where(entbrand.IDEQ(req.BrandID)).
		Exist(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to look up brand"})
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "brand not found"})
		return
	}

	m, err := h.db.Model.Create().
		SetBrandID(req.BrandID).
		SetName(req.Name).
		SetSlug(slug.Make(req.Name)).
		SetReference(req.Reference).
		SetPopular(req.Popular).
		Save(c.Request.Context())
	if err != nil {
		if ent.IsConstraintError(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "model already exists for this brand"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create model"})
		return
	}
	c.JSON(http.StatusCreated, modelResponse{ID: m.ID, Name: m.Name, Slug: m.Slug, Reference: m.Reference, Popular: m.Popular})
}
