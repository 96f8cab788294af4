// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Brand is the predicate function for brand builders.
type Brand func(*sql.Selector)

// Conversation is the predicate function for conversation builders.
type Conversation func(*sql.Selector)

// Favorite is the predicate function for favorite builders.
type Favorite func(*sql.Selector)

// Listing is the predicate function for listing builders.
type Listing func(*sql.Selector)

// ListingView is the predicate function for listingview builders.
type ListingView func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// Model is the predicate function for model builders.
type Model func(*sql.Selector)

// Notification is the predicate function for notification builders.
type Notification func(*sql.Selector)

// Offer is the predicate function for offer builders.
type Offer func(*sql.Selector)

// SellerProfile is the predicate function for sellerprofile builders.
type SellerProfile func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)

// Subscription is the predicate function for subscription builders.
type Subscription func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
