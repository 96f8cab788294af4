package api

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	"github.com/CyrilCartoux/watch-pros-sub004/api/handler"
	"github.com/CyrilCartoux/watch-pros-sub004/api/middleware"
	"github.com/CyrilCartoux/watch-pros-sub004/billing"
	"github.com/CyrilCartoux/watch-pros-sub004/config"
	"github.com/CyrilCartoux/watch-pros-sub004/ent"
	"github.com/CyrilCartoux/watch-pros-sub004/views"
)

// corsMiddleware returns a gin-contrib/cors middleware configured with the
// marketplace's allowed origins. Credentialed origins from ExternalURL +
// CORSOrigins are accepted with credentials. Unknown origins receive a
// wildcard Allow-Origin without credentials so public resources (avatars,
// catalog data) still work from partner storefronts.
func corsMiddleware(cfg config.Config) gin.HandlerFunc {
	allowed := buildAllowedOrigins(cfg.ExternalURL)
	for _, o := range cfg.CORSOrigins {
		allowed[strings.ToLower(o)] = true
	}

	return cors.New(cors.Config{
		AllowOriginWithContextFunc: func(c *gin.Context, origin string) bool {
			if !allowed[strings.ToLower(origin)] {
				c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
				c.Writer.Header().Del("Access-Control-Allow-Credentials")
			}
			return true
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept", "Accept-Encoding", "Authorization", "X-Api-Token", "User-Agent", "X-Requested-With", "Cache-Control", "Pragma"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Cache-Control"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	})
}

// NewRouter builds the HTTP handler for the marketplace API. The returned
// cleanup func stops the login rate limiter's background goroutine.
func NewRouter(db *ent.Client, cfg config.Config, billingClient *billing.Client, billingHealth *billing.HealthChecker, wsHub *handler.WSHub) (http.Handler, func()) {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), requestid.New(), middleware.RequestLogger(), corsMiddleware(cfg))

	loginMW, onFail, onSuccess, stopLimiter := middleware.LoginRateLimiter(cfg)

	notifier := handler.NewNotifier(db, wsHub)
	recorder := views.NewRecorder(db, cfg.ViewDedupWindow)

	authH := handler.NewAuthHandler(db, cfg, onFail, onSuccess)
	catalogH := handler.NewCatalogHandler(db, cfg)
	listingH := handler.NewListingHandler(db)
	viewH := handler.NewViewHandler(db, cfg, recorder)
	offerH := handler.NewOfferHandler(db, notifier)
	messageH := handler.NewMessageHandler(db, notifier)
	favoriteH := handler.NewFavoriteHandler(db)
	notificationH := handler.NewNotificationHandler(db)
	sellerH := handler.NewSellerHandler(db, notifier)
	subscriptionH := handler.NewSubscriptionHandler(db, billingClient, billingHealth)
	avatarH := handler.NewAvatarHandler(db)
	systemH := handler.NewSystemHandler(db)

	// --- Public (no auth required) ---
	{
		r.POST("/auth/register", authH.Register)
		r.POST("/auth/login", loginMW, authH.Login)

		// Catalog — cached responses, served with Cache-Control headers.
		r.GET("/brands", catalogH.GetBrands)
		r.GET("/models", catalogH.GetModels)

		// Listings browse is public; view recording works anonymously too.
		r.GET("/listings", listingH.ListListings)
		r.GET("/listings/:id", listingH.GetListing)
		r.POST("/listings/:id/view", viewH.RecordView)

		// Avatars appear on public listing pages.
		r.GET("/users/:userId/avatar", avatarH.GetAvatar)
	}

	// --- Authenticated ---
	priv := r.Group("")
	priv.Use(middleware.Auth(db, cfg))
	{
		priv.GET("/auth/me", authH.Me)
		priv.POST("/auth/logout", authH.Logout)
		priv.POST("/auth/password", authH.UpdatePassword)

		priv.POST("/users/me/avatar", avatarH.UploadAvatar)
		priv.DELETE("/users/me/avatar", avatarH.DeleteAvatar)

		priv.POST("/listings", listingH.CreateListing)
		priv.PATCH("/listings/:id", listingH.UpdateListing)
		priv.DELETE("/listings/:id", listingH.DeleteListing)

		priv.POST("/listings/:id/offers", offerH.CreateOffer)
		priv.GET("/offers", offerH.ListOffers)
		priv.POST("/offers/:id/accept", offerH.AcceptOffer)
		priv.POST("/offers/:id/decline", offerH.DeclineOffer)
		priv.POST("/offers/:id/withdraw", offerH.WithdrawOffer)

		priv.POST("/conversations", messageH.StartConversation)
		priv.GET("/conversations", messageH.ListConversations)
		priv.GET("/conversations/:id/messages", messageH.ListMessages)
		priv.POST("/conversations/:id/messages", messageH.SendMessage)

		priv.POST("/listings/:id/favorite", favoriteH.AddFavorite)
		priv.DELETE("/listings/:id/favorite", favoriteH.RemoveFavorite)
		priv.GET("/favorites", favoriteH.ListFavorites)

		priv.GET("/notifications", notificationH.ListNotifications)
		priv.POST("/notifications/:id/read", notificationH.MarkRead)
		priv.POST("/notifications/read-all", notificationH.MarkAllRead)

		priv.POST("/sellers/apply", sellerH.Apply)
		priv.GET("/sellers/me", sellerH.GetOwnProfile)

		priv.GET("/subscription", subscriptionH.GetSubscription)
		priv.POST("/subscription", subscriptionH.Subscribe)
		priv.DELETE("/subscription", subscriptionH.Unsubscribe)
	}

	// --- Admin ---
	admin := r.Group("/admin")
	admin.Use(middleware.Auth(db, cfg), middleware.AdminOnly())
	{
		admin.POST("/brands", catalogH.CreateBrand)
		admin.POST("/models", catalogH.CreateModel)

		admin.GET("/sellers/pending", sellerH.ListPending)
		admin.POST("/sellers/:id/approve", sellerH.Approve)
		admin.POST("/sellers/:id/reject", sellerH.Reject)

		admin.GET("/billing/health", subscriptionH.BillingHealth)
	}

	// WebSocket — requires a valid session token via Authorization header or
	// the token query param (browsers cannot set headers on WS upgrades).
	r.GET("/socket", middleware.Auth(db, cfg), handler.WebSocketHandler(wsHub))

	// Health probes — unauthenticated, for container orchestrators.
	r.GET("/health", systemH.Health)
	r.GET("/ready", systemH.Ready)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "endpoint not found"})
	})

	return r, stopLimiter
}

// buildAllowedOrigins returns a set of lower-cased origin strings that are
// allowed to make credentialed cross-origin requests. It derives the origins
// from the configured ExternalURL and also includes its http/https counterpart
// so that both schemes work during development.
func buildAllowedOrigins(externalURL string) map[string]bool {
	origins := make(map[string]bool)
	if externalURL == "" {
		return origins
	}
	parsed, err := url.Parse(externalURL)
	if err != nil {
		origins[strings.ToLower(externalURL)] = true
		return origins
	}
	// Origin = scheme://host (no trailing slash, no path).
	origin := strings.ToLower(parsed.Scheme + "://" + parsed.Host)
	origins[origin] = true
	// Also allow the opposite scheme so http and https both work.
	switch parsed.Scheme {
	case "https":
		origins["http://"+strings.ToLower(parsed.Host)] = true
	case "http":
		origins["https://"+strings.ToLower(parsed.Host)] = true
	}
	return origins
}
