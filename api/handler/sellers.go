package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/CyrilCartoux/watch-pros-sub004/ent"
	entnotification "github.com/CyrilCartoux/watch-pros-sub004/ent/notification"
	entsellerprofile "github.com/CyrilCartoux/watch-pros-sub004/ent/sellerprofile"
	entuser "github.com/CyrilCartoux/watch-pros-sub004/ent/user"
)

// SellerHandler handles seller verification: users apply with company
// details, admins review the queue and approve or reject.
type SellerHandler struct {
	db       *ent.Client
	notifier *Notifier
}

func NewSellerHandler(db *ent.Client, notifier *Notifier) *SellerHandler {
	return &SellerHandler{db: db, notifier: notifier}
}

type sellerProfileResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id,omitempty"`
	CompanyName string    `json:"company_name"`
	Country     string    `json:"country"`
	VatNumber   string    `json:"vat_number,omitempty"`
	Status      string    `json:"status"`
	Note        string    `json:"note,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func buildSellerProfileResponse(p *ent.SellerProfile) sellerProfileResponse {
	resp := sellerProfileResponse{
		ID:          p.ID,
		CompanyName: p.CompanyName,
		Country:     p.Country,
		VatNumber:   p.VatNumber,
		Status:      string(p.Status),
		Note:        p.Note,
		CreatedAt:   p.CreatedAt,
	}
	if u := p.Edges.User; u != nil {
		resp.UserID = u.ID
	}
	return resp
}

type applyRequest struct {
	CompanyName string `json:"company_name" binding:"required"`
	Country     string `json:"country" binding:"required"`
	VatNumber   string `json:"vat_number"`
}

// Apply handles POST /sellers/apply.
// A rejected applicant may re-apply, which resets the profile to pending; a
// pending or verified profile cannot be re-submitted.
func (h *SellerHandler) Apply(c *gin.Context) {
	caller := userFromCtx(c)

	var req applyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	existing, err := h.db.SellerProfile.Query().
		Where(entsellerprofile.HasUserWith(entuser.IDEQ(caller.ID))).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to look up seller profile"})
		return
	}

	if existing != nil {
		if existing.Status != entsellerprofile.StatusRejected {
			c.JSON(http.StatusConflict, gin.H{"error": "application already submitted"})
			return
		}
		updated, err := h.db.SellerProfile.UpdateOneID(existing.ID).
			SetCompanyName(req.CompanyName).
			SetCountry(req.Country).
			SetVatNumber(req.VatNumber).
			SetStatus(entsellerprofile.StatusPending).
			ClearNote().
			Save(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update application"})
			return
		}
		c.JSON(http.StatusOK, buildSellerProfileResponse(updated))
		return
	}

	p, err := h.db.SellerProfile.Create().
		SetUser(caller).
		SetCompanyName(req.CompanyName).
		SetCountry(req.Country).
		SetVatNumber(req.VatNumber).
		Save(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create application"})
		return
	}
	c.JSON(http.StatusCreated, buildSellerProfileResponse(p))
}

// GetOwnProfile handles GET /sellers/me.
func (h *SellerHandler) GetOwnProfile(c *gin.Context) {
	caller := userFromCtx(c)

	p, err := h.db.SellerProfile.Query().
		Where(entsellerprofile.HasUserWith(entuser.IDEQ(caller.ID))).
		Only(c.Request.Context())
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no seller profile"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get seller profile"})
		return
	}
	c.JSON(http.StatusOK, buildSellerProfileResponse(p))
}

// ListPending handles GET /admin/sellers/pending — the review queue, oldest
// applications first.
func (h *SellerHandler) ListPending(c *gin.Context) {
	profiles, err := h.db.SellerProfile.Query().
		Where(entsellerprofile.StatusEQ(entsellerprofile.StatusPending)).
		WithUser().
		Order(entsellerprofile.ByCreatedAt()).
		All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list applications"})
		return
	}

	resp := make([]sellerProfileResponse, len(profiles))
	for i, p := range profiles {
		resp[i] = buildSellerProfileResponse(p)
	}
	c.JSON(http.StatusOK, gin.H{"applications": resp})
}

// Approve handles POST /admin/sellers/:id/approve.
func (h *SellerHandler) Approve(c *gin.Context) {
	h.review(c, entsellerprofile.StatusVerified, entnotification.TypeSellerApproved,
		"Your seller application has been approved. You can now create listings.")
}

type rejectRequest struct {
	Note string `json:"note"`
}

// Reject handles POST /admin/sellers/:id/reject. The optional note is stored
// on the profile and included in the applicant's notification.
func (h *SellerHandler) Reject(c *gin.Context) {
	h.review(c, entsellerprofile.StatusRejected, entnotification.TypeSellerRejected,
		"Your seller application has been rejected.")
}

// review resolves a pending application to the given status and notifies the
// applicant.
func (h *SellerHandler) review(c *gin.Context, status entsellerprofile.Status, notifType entnotification.Type, notifBody string) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile ID"})
		return
	}

	ctx := c.Request.Context()
	p, err := h.db.SellerProfile.Query().
		Where(entsellerprofile.IDEQ(id)).
		WithUser().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "seller profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get seller profile"})
		return
	}
	if p.Status != entsellerprofile.StatusPending {
		c.JSON(http.StatusConflict, gin.H{"error": "application already reviewed"})
		return
	}

	update := h.db.SellerProfile.UpdateOneID(p.ID).SetStatus(status)
	if status == entsellerprofile.StatusRejected {
		var req rejectRequest
		// Body is optional on reject.
		_ = c.ShouldBindJSON(&req)
		if req.Note != "" {
			update = update.SetNote(req.Note)
			notifBody += " Reason: " + req.Note
		}
	}

	updated, err := update.Save(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update application"})
		return
	}

	if u := p.Edges.User; u != nil {
		h.notifier.Notify(ctx, u.ID, notifType, notifBody)
	}

	updated.Edges.User = p.Edges.User
	c.JSON(http.StatusOK, buildSellerProfileResponse(updated))
}
