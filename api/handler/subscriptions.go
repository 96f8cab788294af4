package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/CyrilCartoux/watch-pros-sub004/billing"
	"github.com/CyrilCartoux/watch-pros-sub004/ent"
	entsubscription "github.com/CyrilCartoux/watch-pros-sub004/ent/subscription"
	entuser "github.com/CyrilCartoux/watch-pros-sub004/ent/user"
)

// SubscriptionHandler manages seller plans. The billing provider owns
// payment state; the local Subscription row mirrors plan and seat count so
// limits can be enforced without a provider round-trip.
type SubscriptionHandler struct {
	db      *ent.Client
	billing *billing.Client
	health  *billing.HealthChecker
}

func NewSubscriptionHandler(db *ent.Client, client *billing.Client, health *billing.HealthChecker) *SubscriptionHandler {
	return &SubscriptionHandler{db: db, billing: client, health: health}
}

type subscriptionResponse struct {
	Plan             string     `json:"plan"`
	Seats            int        `json:"seats"`
	Status           string     `json:"status"`
	CurrentPeriodEnd *time.Time `json:"current_period_end,omitempty"`
}

func buildSubscriptionResponse(s *ent.Subscription) subscriptionResponse {
	resp := subscriptionResponse{
		Plan:   string(s.Plan),
		Seats:  s.Seats,
		Status: string(s.Status),
	}
	if !s.CurrentPeriodEnd.IsZero() {
		resp.CurrentPeriodEnd = &s.CurrentPeriodEnd
	}
	return resp
}

// GetSubscription handles GET /subscription.
func (h *SubscriptionHandler) GetSubscription(c *gin.Context) {
	caller := userFromCtx(c)

	sub, err := h.db.Subscription.Query().
		Where(entsubscription.HasUserWith(entuser.IDEQ(caller.ID))).
		Only(c.Request.Context())
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no subscription"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get subscription"})
		return
	}
	c.JSON(http.StatusOK, buildSubscriptionResponse(sub))
}

type subscribeRequest struct {
	Plan string `json:"plan" binding:"required"`
}

// Subscribe handles POST /subscription.
// Opens the subscription at the billing provider first, then mirrors it
// locally; when the provider is known to be down the request fails fast
// with 503 instead of timing out against it.
func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	caller := userFromCtx(c)

	var req subscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	seats, ok := billing.PlanSeats[req.Plan]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown plan"})
		return
	}

	if !h.health.Available() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "billing provider unavailable, try again later"})
		return
	}

	ctx := c.Request.Context()
	existing, err := h.db.Subscription.Query().
		Where(entsubscription.HasUserWith(entuser.IDEQ(caller.ID))).
		Exist(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to look up subscription"})
		return
	}
	if existing {
		c.JSON(http.StatusConflict, gin.H{"error": "subscription already active"})
		return
	}

	provider, err := h.billing.CreateSubscription(ctx, caller.ID.String(), req.Plan)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "billing provider rejected the subscription"})
		return
	}

	sub, err := h.db.Subscription.Create().
		SetUser(caller).
		SetPlan(entsubscription.Plan(req.Plan)).
		SetSeats(seats).
		SetProviderID(provider.ID).
		SetCurrentPeriodEnd(provider.CurrentPeriodEnd).
		Save(ctx)
	if err != nil {
		// The provider-side subscription exists but the mirror failed; cancel
		// remotely so the user isn't billed for a plan the app doesn't know about.
		_ = h.billing.CancelSubscription(ctx, provider.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store subscription"})
		return
	}
	c.JSON(http.StatusCreated, buildSubscriptionResponse(sub))
}

// Unsubscribe handles DELETE /subscription.
// Cancels at the provider first; the local mirror is marked canceled only
// after the provider confirms.
func (h *SubscriptionHandler) Unsubscribe(c *gin.Context) {
	caller := userFromCtx(c)
	ctx := c.Request.Context()

	sub, err := h.db.Subscription.Query().
		Where(entsubscription.HasUserWith(entuser.IDEQ(caller.ID))).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no subscription"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get subscription"})
		return
	}
	if sub.Status == entsubscription.StatusCanceled {
		c.JSON(http.StatusConflict, gin.H{"error": "subscription already canceled"})
		return
	}

	if err := h.billing.CancelSubscription(ctx, sub.ProviderID); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "billing provider cancellation failed"})
		return
	}

	if err := h.db.Subscription.UpdateOneID(sub.ID).
		SetStatus(entsubscription.StatusCanceled).
		Exec(ctx); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update subscription"})
		return
	}
	c.Status(http.StatusNoContent)
}

// BillingHealth handles GET /admin/billing/health.
func (h *SubscriptionHandler) BillingHealth(c *gin.Context) {
	c.JSON(http.StatusOK, h.health.Snapshot())
}
