package handler

import (
	"fmt"
	"net/http"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/CyrilCartoux/watch-pros-sub004/ent"
	entconversation "github.com/CyrilCartoux/watch-pros-sub004/ent/conversation"
	entlisting "github.com/CyrilCartoux/watch-pros-sub004/ent/listing"
	entmessage "github.com/CyrilCartoux/watch-pros-sub004/ent/message"
	entnotification "github.com/CyrilCartoux/watch-pros-sub004/ent/notification"
	entuser "github.com/CyrilCartoux/watch-pros-sub004/ent/user"
)

// MessageHandler handles buyer/seller conversations about listings.
type MessageHandler struct {
	db       *ent.Client
	notifier *Notifier
}

func NewMessageHandler(db *ent.Client, notifier *Notifier) *MessageHandler {
	return &MessageHandler{db: db, notifier: notifier}
}

type conversationResponse struct {
	ID        uuid.UUID `json:"id"`
	ListingID uuid.UUID `json:"listing_id"`
	BuyerID   uuid.UUID `json:"buyer_id"`
	SellerID  uuid.UUID `json:"seller_id"`
}

func buildConversationResponse(conv *ent.Conversation) conversationResponse {
	resp := conversationResponse{ID: conv.ID}
	if l := conv.Edges.Listing; l != nil {
		resp.ListingID = l.ID
	}
	if b := conv.Edges.Buyer; b != nil {
		resp.BuyerID = b.ID
	}
	if s := conv.Edges.Seller; s != nil {
		resp.SellerID = s.ID
	}
	return resp
}

type startConversationRequest struct {
	ListingID uuid.UUID `json:"listing_id" binding:"required"`
	Body      string    `json:"body" binding:"required"`
}

// StartConversation handles POST /conversations.
// A buyer has at most one conversation per listing: starting a second one
// returns the existing thread with the new message appended.
func (h *MessageHandler) StartConversation(c *gin.Context) {
	caller := userFromCtx(c)

	var req startConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	listing, err := h.db.Listing.Query().
		Where(entlisting.IDEQ(req.ListingID)).
		WithSeller().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "listing not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get listing"})
		return
	}
	seller := listing.Edges.Seller
	if seller == nil || seller.ID == caller.ID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot message yourself"})
		return
	}

	conv, err := h.db.Conversation.Query().
		Where(
			entconversation.HasListingWith(entlisting.IDEQ(listing.ID)),
			entconversation.HasBuyerWith(entuser.IDEQ(caller.ID)),
		).
		WithListing().
		WithBuyer().
		WithSeller().
		Only(ctx)
	if ent.IsNotFound(err) {
		conv, err = h.db.Conversation.Create().
			SetListing(listing).
			SetBuyer(caller).
			SetSeller(seller).
			Save(ctx)
		if err != nil && ent.IsConstraintError(err) {
			// Lost a race against a concurrent start; reuse the winner's thread.
			conv, err = h.db.Conversation.Query().
				Where(
					entconversation.HasListingWith(entlisting.IDEQ(listing.ID)),
					entconversation.HasBuyerWith(entuser.IDEQ(caller.ID)),
				).
				Only(ctx)
		}
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start conversation"})
		return
	}

	if _, err := h.sendMessage(c, conv.ID, caller, req.Body); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send message"})
		return
	}

	conv.Edges.Listing = listing
	conv.Edges.Buyer = caller
	conv.Edges.Seller = seller
	c.JSON(http.StatusCreated, buildConversationResponse(conv))
}

// ListConversations handles GET /conversations — threads where the caller is
// buyer or seller, most recently active first.
func (h *MessageHandler) ListConversations(c *gin.Context) {
	caller := userFromCtx(c)

	convs, err := h.db.Conversation.Query().
		Where(
			entconversation.Or(
				entconversation.HasBuyerWith(entuser.IDEQ(caller.ID)),
				entconversation.HasSellerWith(entuser.IDEQ(caller.ID)),
			),
		).
		WithListing().
		WithBuyer().
		WithSeller().
		Order(entconversation.ByUpdatedAt(sql.OrderDesc())).
		All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list conversations"})
		return
	}

	resp := make([]conversationResponse, len(convs))
	for i, conv := range convs {
		resp[i] = buildConversationResponse(conv)
	}
	c.JSON(http.StatusOK, gin.H{"conversations": resp})
}

type messageResponse struct {
	ID        uuid.UUID `json:"id"`
	SenderID  uuid.UUID `json:"sender_id"`
	Body      string    `json:"body"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// ListMessages handles GET /conversations/:id/messages.
// Fetching a thread marks the other party's messages as read.
func (h *MessageHandler) ListMessages(c *gin.Context) {
	caller := userFromCtx(c)
	conv, ok := h.memberConversation(c, caller)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	msgs, err := h.db.Message.Query().
		Where(entmessage.HasConversationWith(entconversation.IDEQ(conv.ID))).
		WithSender().
		Order(entmessage.ByCreatedAt()).
		All(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list messages"})
		return
	}

	// Reading the thread acknowledges everything the counterparty sent.
	_, _ = h.db.Message.Update().
		Where(
			entmessage.HasConversationWith(entconversation.IDEQ(conv.ID)),
			entmessage.Not(entmessage.HasSenderWith(entuser.IDEQ(caller.ID))),
			entmessage.Read(false),
		).
		SetRead(true).
		Save(ctx)

	resp := make([]messageResponse, len(msgs))
	for i, m := range msgs {
		r := messageResponse{ID: m.ID, Body: m.Body, Read: m.Read, CreatedAt: m.CreatedAt}
		if s := m.Edges.Sender; s != nil {
			r.SenderID = s.ID
		}
		resp[i] = r
	}
	c.JSON(http.StatusOK, gin.H{"messages": resp})
}

type sendMessageRequest struct {
	Body string `json:"body" binding:"required"`
}

// SendMessage handles POST /conversations/:id/messages.
func (h *MessageHandler) SendMessage(c *gin.Context) {
	caller := userFromCtx(c)
	conv, ok := h.memberConversation(c, caller)
	if !ok {
		return
	}

	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := h.sendMessage(c, conv.ID, caller, req.Body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send message"})
		return
	}

	// Notify the other participant.
	var recipient *ent.User
	if conv.Edges.Buyer != nil && conv.Edges.Buyer.ID == caller.ID {
		recipient = conv.Edges.Seller
	} else {
		recipient = conv.Edges.Buyer
	}
	if recipient != nil {
		h.notifier.Notify(c.Request.Context(), recipient.ID, entnotification.TypeMessageReceived,
			fmt.Sprintf("New message from %s", caller.DisplayName))
	}

	c.JSON(http.StatusCreated, messageResponse{
		ID:        msg.ID,
		SenderID:  caller.ID,
		Body:      msg.Body,
		Read:      msg.Read,
		CreatedAt: msg.CreatedAt,
	})
}

// sendMessage persists a message and bumps the thread's updated_at so
// conversation lists sort by recent activity.
func (h *MessageHandler) sendMessage(c *gin.Context, convID uuid.UUID, sender *ent.User, body string) (*ent.Message, error) {
	ctx := c.Request.Context()
	msg, err := h.db.Message.Create().
		SetConversationID(convID).
		SetSender(sender).
		SetBody(body).
		Save(ctx)
	if err != nil {
		return nil, err
	}
	_ = h.db.Conversation.UpdateOneID(convID).Exec(ctx)
	return msg, nil
}

// memberConversation loads the conversation from the :id param and verifies
// the caller participates in it. Writes the error response itself on failure.
func (h *MessageHandler) memberConversation(c *gin.Context, caller *ent.User) (*ent.Conversation, bool) {
	convID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid conversation ID"})
		return nil, false
	}

	conv, err := h.db.Conversation.Query().
		Where(entconversation.IDEQ(convID)).
		WithBuyer().
		WithSeller().
		Only(c.Request.Context())
	if err != nil {
		if ent.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "conversation not found"})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get conversation"})
		return nil, false
	}

	isBuyer := conv.Edges.Buyer != nil && conv.Edges.Buyer.ID == caller.ID
	isSeller := conv.Edges.Seller != nil && conv.Edges.Seller.ID == caller.ID
	if !isBuyer && !isSeller {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return nil, false
	}
	return conv, true
}
