// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/CyrilCartoux/watch-pros-sub004/ent/brand"
	"github.com/CyrilCartoux/watch-pros-sub004/ent/conversation"
	"github.com/CyrilCartoux/watch-pros-sub004/ent/favorite"
	"github.com/CyrilCartoux/watch-pros-sub004/ent/listing"
	"github.com/CyrilCartoux/watch-pros-sub004/ent/listingview"
	"github.com/CyrilCartoux/watch-pros-sub004/ent/message"
	"github.com/CyrilCartoux/watch-pros-sub004/ent/model"
	"github.com/CyrilCartoux/watch-pros-sub004/ent/notification"
	"github.com/CyrilCartoux/watch-pros-sub004/ent/offer"
	"github.com/CyrilCartoux/watch-pros-sub004/ent/schema"
	"github.com/CyrilCartoux/watch-pros-sub004/ent/sellerprofile"
	"github.com/CyrilCartoux/watch-pros-sub004/ent/session"
	"github.com/CyrilCartoux/watch-pros-sub004/ent/subscription"
	"github.com/CyrilCartoux/watch-pros-sub004/ent/user"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	brandFields := schema.Brand{}.Fields()
	_ = brandFields
	// brandDescName is the schema descriptor for name field.
	brandDescName := brandFields[1].Descriptor()
	// brand.NameValidator is a validator for the "name" field. It is called by the builders before save.
	brand.NameValidator = brandDescName.Validators[0].(func(string) error)
	// brandDescSlug is the schema descriptor for slug field.
	brandDescSlug := brandFields[2].Descriptor()
	// brand.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	brand.SlugValidator = brandDescSlug.Validators[0].(func(string) error)
	// brandDescPopular is the schema descriptor for popular field.
	brandDescPopular := brandFields[4].Descriptor()
	// brand.DefaultPopular holds the default value on creation for the popular field.
	brand.DefaultPopular = brandDescPopular.Default.(bool)
	// brandDescCreatedAt is the schema descriptor for created_at field.
	brandDescCreatedAt := brandFields[5].Descriptor()
	// brand.DefaultCreatedAt holds the default value on creation for the created_at field.
	brand.DefaultCreatedAt = brandDescCreatedAt.Default.(func() time.Time)
	// brandDescID is the schema descriptor for id field.
	brandDescID := brandFields[0].Descriptor()
	// brand.DefaultID holds the default value on creation for the id field.
	brand.DefaultID = brandDescID.Default.(func() uuid.UUID)
	conversationFields := schema.Conversation{}.Fields()
	_ = conversationFields
	// conversationDescCreatedAt is the schema descriptor for created_at field.
	conversationDescCreatedAt := conversationFields[1].Descriptor()
	// conversation.DefaultCreatedAt holds the default value on creation for the created_at field.
	conversation.DefaultCreatedAt = conversationDescCreatedAt.Default.(func() time.Time)
	// conversationDescUpdatedAt is the schema descriptor for updated_at field.
	conversationDescUpdatedAt := conversationFields[2].Descriptor()
	// conversation.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	conversation.DefaultUpdatedAt = conversationDescUpdatedAt.Default.(func() time.Time)
	// conversation.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	conversation.UpdateDefaultUpdatedAt = conversationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// conversationDescID is the schema descriptor for id field.
	conversationDescID := conversationFields[0].Descriptor()
	// conversation.DefaultID holds the default value on creation for the id field.
	conversation.DefaultID = conversationDescID.Default.(func() uuid.UUID)
	favoriteFields := schema.Favorite{}.Fields()
	_ = favoriteFields
	// favoriteDescCreatedAt is the schema descriptor for created_at field.
	favoriteDescCreatedAt := favoriteFields[1].Descriptor()
	// favorite.DefaultCreatedAt holds the default value on creation for the created_at field.
	favorite.DefaultCreatedAt = favoriteDescCreatedAt.Default.(func() time.Time)
	// favoriteDescID is the schema descriptor for id field.
	favoriteDescID := favoriteFields[0].Descriptor()
	// favorite.DefaultID holds the default value on creation for the id field.
	favorite.DefaultID = favoriteDescID.Default.(func() uuid.UUID)
	listingFields := schema.Listing{}.Fields()
	_ = listingFields
	// listingDescTitle is the schema descriptor for title field.
	listingDescTitle := listingFields[1].Descriptor()
	// listing.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	listing.TitleValidator = listingDescTitle.Validators[0].(func(string) error)
	// listingDescPriceCents is the schema descriptor for price_cents field.
	listingDescPriceCents := listingFields[3].Descriptor()
	// listing.PriceCentsValidator is a validator for the "price_cents" field. It is called by the builders before save.
	listing.PriceCentsValidator = listingDescPriceCents.Validators[0].(func(int64) error)
	// listingDescCurrency is the schema descriptor for currency field.
	listingDescCurrency := listingFields[4].Descriptor()
	// listing.DefaultCurrency holds the default value on creation for the currency field.
	listing.DefaultCurrency = listingDescCurrency.Default.(string)
	// listingDescViewsCount is the schema descriptor for views_count field.
	listingDescViewsCount := listingFields[8].Descriptor()
	// listing.DefaultViewsCount holds the default value on creation for the views_count field.
	listing.DefaultViewsCount = listingDescViewsCount.Default.(int64)
	// listing.ViewsCountValidator is a validator for the "views_count" field. It is called by the builders before save.
	listing.ViewsCountValidator = listingDescViewsCount.Validators[0].(func(int64) error)
	// listingDescCreatedAt is the schema descriptor for created_at field.
	listingDescCreatedAt := listingFields[9].Descriptor()
	// listing.DefaultCreatedAt holds the default value on creation for the created_at field.
	listing.DefaultCreatedAt = listingDescCreatedAt.Default.(func() time.Time)
	// listingDescUpdatedAt is the schema descriptor for updated_at field.
	listingDescUpdatedAt := listingFields[10].Descriptor()
	// listing.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	listing.DefaultUpdatedAt = listingDescUpdatedAt.Default.(func() time.Time)
	// listing.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	listing.UpdateDefaultUpdatedAt = listingDescUpdatedAt.UpdateDefault.(func() time.Time)
	// listingDescID is the schema descriptor for id field.
	listingDescID := listingFields[0].Descriptor()
	// listing.DefaultID holds the default value on creation for the id field.
	listing.DefaultID = listingDescID.Default.(func() uuid.UUID)
	listingviewFields := schema.ListingView{}.Fields()
	_ = listingviewFields
	// listingviewDescViewerKey is the schema descriptor for viewer_key field.
	listingviewDescViewerKey := listingviewFields[1].Descriptor()
	// listingview.ViewerKeyValidator is a validator for the "viewer_key" field. It is called by the builders before save.
	listingview.ViewerKeyValidator = listingviewDescViewerKey.Validators[0].(func(string) error)
	// listingviewDescRecordedAt is the schema descriptor for recorded_at field.
	listingviewDescRecordedAt := listingviewFields[2].Descriptor()
	// listingview.DefaultRecordedAt holds the default value on creation for the recorded_at field.
	listingview.DefaultRecordedAt = listingviewDescRecordedAt.Default.(func() time.Time)
	// listingviewDescID is the schema descriptor for id field.
	listingviewDescID := listingviewFields[0].Descriptor()
	// listingview.DefaultID holds the default value on creation for the id field.
	listingview.DefaultID = listingviewDescID.Default.(func() uuid.UUID)
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescBody is the schema descriptor for body field.
	messageDescBody := messageFields[1].Descriptor()
	// message.BodyValidator is a validator for the "body" field. It is called by the builders before save.
	message.BodyValidator = messageDescBody.Validators[0].(func(string) error)
	// messageDescRead is the schema descriptor for read field.
	messageDescRead := messageFields[2].Descriptor()
	// message.DefaultRead holds the default value on creation for the read field.
	message.DefaultRead = messageDescRead.Default.(bool)
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageFields[3].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() time.Time)
	// messageDescID is the schema descriptor for id field.
	messageDescID := messageFields[0].Descriptor()
	// message.DefaultID holds the default value on creation for the id field.
	message.DefaultID = messageDescID.Default.(func() uuid.UUID)
	modelFields := schema.Model{}.Fields()
	_ = modelFields
	// modelDescName is the schema descriptor for name field.
	modelDescName := modelFields[1].Descriptor()
	// model.NameValidator is a validator for the "name" field. It is called by the builders before save.
	model.NameValidator = modelDescName.Validators[0].(func(string) error)
	// modelDescSlug is the schema descriptor for slug field.
	modelDescSlug := modelFields[2].Descriptor()
	// model.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	model.SlugValidator = modelDescSlug.Validators[0].(func(string) error)
	// modelDescPopular is the schema descriptor for popular field.
	modelDescPopular := modelFields[4].Descriptor()
	// model.DefaultPopular holds the default value on creation for the popular field.
	model.DefaultPopular = modelDescPopular.Default.(bool)
	// modelDescCreatedAt is the schema descriptor for created_at field.
	modelDescCreatedAt := modelFields[5].Descriptor()
	// model.DefaultCreatedAt holds the default value on creation for the created_at field.
	model.DefaultCreatedAt = modelDescCreatedAt.Default.(func() time.Time)
	// modelDescID is the schema descriptor for id field.
	modelDescID := modelFields[0].Descriptor()
	// model.DefaultID holds the default value on creation for the id field.
	model.DefaultID = modelDescID.Default.(func() uuid.UUID)
	notificationFields := schema.Notification{}.Fields()
	_ = notificationFields
	// notificationDescBody is the schema descriptor for body field.
	notificationDescBody := notificationFields[2].Descriptor()
	// notification.BodyValidator is a validator for the "body" field. It is called by the builders before save.
	notification.BodyValidator = notificationDescBody.Validators[0].(func(string) error)
	// notificationDescRead is the schema descriptor for read field.
	notificationDescRead := notificationFields[3].Descriptor()
	// notification.DefaultRead holds the default value on creation for the read field.
	notification.DefaultRead = notificationDescRead.Default.(bool)
	// notificationDescCreatedAt is the schema descriptor for created_at field.
	notificationDescCreatedAt := notificationFields[4].Descriptor()
	// notification.DefaultCreatedAt holds the default value on creation for the created_at field.
	notification.DefaultCreatedAt = notificationDescCreatedAt.Default.(func() time.Time)
	// notificationDescID is the schema descriptor for id field.
	notificationDescID := notificationFields[0].Descriptor()
	// notification.DefaultID holds the default value on creation for the id field.
	notification.DefaultID = notificationDescID.Default.(func() uuid.UUID)
	offerFields := schema.Offer{}.Fields()
	_ = offerFields
	// offerDescAmountCents is the schema descriptor for amount_cents field.
	offerDescAmountCents := offerFields[1].Descriptor()
	// offer.AmountCentsValidator is a validator for the "amount_cents" field. It is called by the builders before save.
	offer.AmountCentsValidator = offerDescAmountCents.Validators[0].(func(int64) error)
	// offerDescCurrency is the schema descriptor for currency field.
	offerDescCurrency := offerFields[2].Descriptor()
	// offer.DefaultCurrency holds the default value on creation for the currency field.
	offer.DefaultCurrency = offerDescCurrency.Default.(string)
	// offerDescCreatedAt is the schema descriptor for created_at field.
	offerDescCreatedAt := offerFields[5].Descriptor()
	// offer.DefaultCreatedAt holds the default value on creation for the created_at field.
	offer.DefaultCreatedAt = offerDescCreatedAt.Default.(func() time.Time)
	// offerDescUpdatedAt is the schema descriptor for updated_at field.
	offerDescUpdatedAt := offerFields[6].Descriptor()
	// offer.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	offer.DefaultUpdatedAt = offerDescUpdatedAt.Default.(func() time.Time)
	// offer.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	offer.UpdateDefaultUpdatedAt = offerDescUpdatedAt.UpdateDefault.(func() time.Time)
	// offerDescID is the schema descriptor for id field.
	offerDescID := offerFields[0].Descriptor()
	// offer.DefaultID holds the default value on creation for the id field.
	offer.DefaultID = offerDescID.Default.(func() uuid.UUID)
	sellerprofileFields := schema.SellerProfile{}.Fields()
	_ = sellerprofileFields
	// sellerprofileDescCompanyName is the schema descriptor for company_name field.
	sellerprofileDescCompanyName := sellerprofileFields[1].Descriptor()
	// sellerprofile.CompanyNameValidator is a validator for the "company_name" field. It is called by the builders before save.
	sellerprofile.CompanyNameValidator = sellerprofileDescCompanyName.Validators[0].(func(string) error)
	// sellerprofileDescCountry is the schema descriptor for country field.
	sellerprofileDescCountry := sellerprofileFields[2].Descriptor()
	// sellerprofile.CountryValidator is a validator for the "country" field. It is called by the builders before save.
	sellerprofile.CountryValidator = sellerprofileDescCountry.Validators[0].(func(string) error)
	// sellerprofileDescCreatedAt is the schema descriptor for created_at field.
	sellerprofileDescCreatedAt := sellerprofileFields[6].Descriptor()
	// sellerprofile.DefaultCreatedAt holds the default value on creation for the created_at field.
	sellerprofile.DefaultCreatedAt = sellerprofileDescCreatedAt.Default.(func() time.Time)
	// sellerprofileDescUpdatedAt is the schema descriptor for updated_at field.
	sellerprofileDescUpdatedAt := sellerprofileFields[7].Descriptor()
	// sellerprofile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	sellerprofile.DefaultUpdatedAt = sellerprofileDescUpdatedAt.Default.(func() time.Time)
	// sellerprofile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	sellerprofile.UpdateDefaultUpdatedAt = sellerprofileDescUpdatedAt.UpdateDefault.(func() time.Time)
	// sellerprofileDescID is the schema descriptor for id field.
	sellerprofileDescID := sellerprofileFields[0].Descriptor()
	// sellerprofile.DefaultID holds the default value on creation for the id field.
	sellerprofile.DefaultID = sellerprofileDescID.Default.(func() uuid.UUID)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescToken is the schema descriptor for token field.
	sessionDescToken := sessionFields[1].Descriptor()
	// session.TokenValidator is a validator for the "token" field. It is called by the builders before save.
	session.TokenValidator = sessionDescToken.Validators[0].(func(string) error)
	// sessionDescLastActivity is the schema descriptor for last_activity field.
	sessionDescLastActivity := sessionFields[4].Descriptor()
	// session.DefaultLastActivity holds the default value on creation for the last_activity field.
	session.DefaultLastActivity = sessionDescLastActivity.Default.(func() time.Time)
	// sessionDescCreatedAt is the schema descriptor for created_at field.
	sessionDescCreatedAt := sessionFields[5].Descriptor()
	// session.DefaultCreatedAt holds the default value on creation for the created_at field.
	session.DefaultCreatedAt = sessionDescCreatedAt.Default.(func() time.Time)
	// sessionDescID is the schema descriptor for id field.
	sessionDescID := sessionFields[0].Descriptor()
	// session.DefaultID holds the default value on creation for the id field.
	session.DefaultID = sessionDescID.Default.(func() uuid.UUID)
	subscriptionFields := schema.Subscription{}.Fields()
	_ = subscriptionFields
	// subscriptionDescSeats is the schema descriptor for seats field.
	subscriptionDescSeats := subscriptionFields[2].Descriptor()
	// subscription.DefaultSeats holds the default value on creation for the seats field.
	subscription.DefaultSeats = subscriptionDescSeats.Default.(int)
	// subscription.SeatsValidator is a validator for the "seats" field. It is called by the builders before save.
	subscription.SeatsValidator = subscriptionDescSeats.Validators[0].(func(int) error)
	// subscriptionDescProviderID is the schema descriptor for provider_id field.
	subscriptionDescProviderID := subscriptionFields[4].Descriptor()
	// subscription.ProviderIDValidator is a validator for the "provider_id" field. It is called by the builders before save.
	subscription.ProviderIDValidator = subscriptionDescProviderID.Validators[0].(func(string) error)
	// subscriptionDescCreatedAt is the schema descriptor for created_at field.
	subscriptionDescCreatedAt := subscriptionFields[6].Descriptor()
	// subscription.DefaultCreatedAt holds the default value on creation for the created_at field.
	subscription.DefaultCreatedAt = subscriptionDescCreatedAt.Default.(func() time.Time)
	// subscriptionDescUpdatedAt is the schema descriptor for updated_at field.
	subscriptionDescUpdatedAt := subscriptionFields[7].Descriptor()
	// subscription.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	subscription.DefaultUpdatedAt = subscriptionDescUpdatedAt.Default.(func() time.Time)
	// subscription.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	subscription.UpdateDefaultUpdatedAt = subscriptionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// subscriptionDescID is the schema descriptor for id field.
	subscriptionDescID := subscriptionFields[0].Descriptor()
	// subscription.DefaultID holds the default value on creation for the id field.
	subscription.DefaultID = subscriptionDescID.Default.(func() uuid.UUID)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescDisplayName is the schema descriptor for display_name field.
	userDescDisplayName := userFields[2].Descriptor()
	// user.DisplayNameValidator is a validator for the "display_name" field. It is called by the builders before save.
	user.DisplayNameValidator = userDescDisplayName.Validators[0].(func(string) error)
	// userDescHashedPassword is the schema descriptor for hashed_password field.
	userDescHashedPassword := userFields[4].Descriptor()
	// user.HashedPasswordValidator is a validator for the "hashed_password" field. It is called by the builders before save.
	user.HashedPasswordValidator = userDescHashedPassword.Validators[0].(func(string) error)
	// userDescIsAdmin is the schema descriptor for is_admin field.
	userDescIsAdmin := userFields[5].Descriptor()
	// user.DefaultIsAdmin holds the default value on creation for the is_admin field.
	user.DefaultIsAdmin = userDescIsAdmin.Default.(bool)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[6].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[7].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
