// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BrandsColumns holds the columns for the "brands" table.
	BrandsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "slug", Type: field.TypeString, Unique: true},
		{Name: "country", Type: field.TypeString, Nullable: true},
		{Name: "popular", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// BrandsTable holds the schema information for the "brands" table.
	BrandsTable = &schema.Table{
		Name:       "brands",
		Columns:    BrandsColumns,
		PrimaryKey: []*schema.Column{BrandsColumns[0]},
	}
	// ConversationsColumns holds the columns for the "conversations" table.
	ConversationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "conversation_buyer", Type: field.TypeUUID},
		{Name: "conversation_seller", Type: field.TypeUUID},
		{Name: "listing_conversations", Type: field.TypeUUID},
	}
	// ConversationsTable holds the schema information for the "conversations" table.
	ConversationsTable = &schema.Table{
		Name:       "conversations",
		Columns:    ConversationsColumns,
		PrimaryKey: []*schema.Column{ConversationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "conversations_users_buyer",
				Columns:    []*schema.Column{ConversationsColumns[3]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "conversations_users_seller",
				Columns:    []*schema.Column{ConversationsColumns[4]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "conversations_listings_conversations",
				Columns:    []*schema.Column{ConversationsColumns[5]},
				RefColumns: []*schema.Column{ListingsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "conversation_listing_conversations_conversation_buyer",
				Unique:  true,
				Columns: []*schema.Column{ConversationsColumns[5], ConversationsColumns[3]},
			},
		},
	}
	// FavoritesColumns holds the columns for the "favorites" table.
	FavoritesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "listing_favorites", Type: field.TypeUUID},
		{Name: "user_favorites", Type: field.TypeUUID},
	}
	// FavoritesTable holds the schema information for the "favorites" table.
	FavoritesTable = &schema.Table{
		Name:       "favorites",
		Columns:    FavoritesColumns,
		PrimaryKey: []*schema.Column{FavoritesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "favorites_listings_favorites",
				Columns:    []*schema.Column{FavoritesColumns[2]},
				RefColumns: []*schema.Column{ListingsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "favorites_users_favorites",
				Columns:    []*schema.Column{FavoritesColumns[3]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "favorite_user_favorites_listing_favorites",
				Unique:  true,
				Columns: []*schema.Column{FavoritesColumns[3], FavoritesColumns[2]},
			},
		},
	}
	// ListingsColumns holds the columns for the "listings" table.
	ListingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "price_cents", Type: field.TypeInt64},
		{Name: "currency", Type: field.TypeString, Default: "EUR"},
		{Name: "condition", Type: field.TypeEnum, Enums: []string{"new", "unworn", "very_good", "good", "fair"}, Default: "very_good"},
		{Name: "year", Type: field.TypeInt, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "active", "sold", "suspended"}, Default: "active"},
		{Name: "views_count", Type: field.TypeInt64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "brand_listings", Type: field.TypeUUID},
		{Name: "model_listings", Type: field.TypeUUID, Nullable: true},
		{Name: "user_listings", Type: field.TypeUUID},
	}
	// ListingsTable holds the schema information for the "listings" table.
	ListingsTable = &schema.Table{
		Name:       "listings",
		Columns:    ListingsColumns,
		PrimaryKey: []*schema.Column{ListingsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "listings_brands_listings",
				Columns:    []*schema.Column{ListingsColumns[11]},
				RefColumns: []*schema.Column{BrandsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "listings_models_listings",
				Columns:    []*schema.Column{ListingsColumns[12]},
				RefColumns: []*schema.Column{ModelsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "listings_users_listings",
				Columns:    []*schema.Column{ListingsColumns[13]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// ListingViewsColumns holds the columns for the "listing_views" table.
	ListingViewsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "viewer_key", Type: field.TypeString},
		{Name: "recorded_at", Type: field.TypeTime},
		{Name: "window_bucket", Type: field.TypeInt64},
		{Name: "listing_views", Type: field.TypeUUID},
	}
	// ListingViewsTable holds the schema information for the "listing_views" table.
	ListingViewsTable = &schema.Table{
		Name:       "listing_views",
		Columns:    ListingViewsColumns,
		PrimaryKey: []*schema.Column{ListingViewsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "listing_views_listings_views",
				Columns:    []*schema.Column{ListingViewsColumns[4]},
				RefColumns: []*schema.Column{ListingsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "listingview_viewer_key_window_bucket_listing_views",
				Unique:  true,
				Columns: []*schema.Column{ListingViewsColumns[1], ListingViewsColumns[3], ListingViewsColumns[4]},
			},
			{
				Name:    "listingview_viewer_key_recorded_at_listing_views",
				Unique:  false,
				Columns: []*schema.Column{ListingViewsColumns[1], ListingViewsColumns[2], ListingViewsColumns[4]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "body", Type: field.TypeString},
		{Name: "read", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "conversation_messages", Type: field.TypeUUID},
		{Name: "message_sender", Type: field.TypeUUID},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "messages_conversations_messages",
				Columns:    []*schema.Column{MessagesColumns[4]},
				RefColumns: []*schema.Column{ConversationsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "messages_users_sender",
				Columns:    []*schema.Column{MessagesColumns[5]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// ModelsColumns holds the columns for the "models" table.
	ModelsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "slug", Type: field.TypeString},
		{Name: "reference", Type: field.TypeString, Nullable: true},
		{Name: "popular", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "brand_models", Type: field.TypeUUID},
	}
	// ModelsTable holds the schema information for the "models" table.
	ModelsTable = &schema.Table{
		Name:       "models",
		Columns:    ModelsColumns,
		PrimaryKey: []*schema.Column{ModelsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "models_brands_models",
				Columns:    []*schema.Column{ModelsColumns[6]},
				RefColumns: []*schema.Column{BrandsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "model_slug_brand_models",
				Unique:  true,
				Columns: []*schema.Column{ModelsColumns[2], ModelsColumns[6]},
			},
		},
	}
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"offer_received", "offer_accepted", "offer_declined", "message_received", "seller_approved", "seller_rejected"}},
		{Name: "body", Type: field.TypeString},
		{Name: "read", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_notifications", Type: field.TypeUUID},
	}
	// NotificationsTable holds the schema information for the "notifications" table.
	NotificationsTable = &schema.Table{
		Name:       "notifications",
		Columns:    NotificationsColumns,
		PrimaryKey: []*schema.Column{NotificationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "notifications_users_notifications",
				Columns:    []*schema.Column{NotificationsColumns[5]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "notification_read_user_notifications",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[3], NotificationsColumns[5]},
			},
		},
	}
	// OffersColumns holds the columns for the "offers" table.
	OffersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "amount_cents", Type: field.TypeInt64},
		{Name: "currency", Type: field.TypeString, Default: "EUR"},
		{Name: "message", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "accepted", "declined", "withdrawn"}, Default: "pending"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "listing_offers", Type: field.TypeUUID},
		{Name: "offer_buyer", Type: field.TypeUUID},
	}
	// OffersTable holds the schema information for the "offers" table.
	OffersTable = &schema.Table{
		Name:       "offers",
		Columns:    OffersColumns,
		PrimaryKey: []*schema.Column{OffersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "offers_listings_offers",
				Columns:    []*schema.Column{OffersColumns[7]},
				RefColumns: []*schema.Column{ListingsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "offers_users_buyer",
				Columns:    []*schema.Column{OffersColumns[8]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// SellerProfilesColumns holds the columns for the "seller_profiles" table.
	SellerProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "company_name", Type: field.TypeString},
		{Name: "country", Type: field.TypeString},
		{Name: "vat_number", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "verified", "rejected"}, Default: "pending"},
		{Name: "note", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_seller_profile", Type: field.TypeUUID, Unique: true},
	}
	// SellerProfilesTable holds the schema information for the "seller_profiles" table.
	SellerProfilesTable = &schema.Table{
		Name:       "seller_profiles",
		Columns:    SellerProfilesColumns,
		PrimaryKey: []*schema.Column{SellerProfilesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "seller_profiles_users_seller_profile",
				Columns:    []*schema.Column{SellerProfilesColumns[8]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "token", Type: field.TypeString, Unique: true},
		{Name: "user_agent", Type: field.TypeString, Nullable: true},
		{Name: "ip", Type: field.TypeString, Nullable: true},
		{Name: "last_activity", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_sessions", Type: field.TypeUUID},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "sessions_users_sessions",
				Columns:    []*schema.Column{SessionsColumns[6]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "session_token",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[1]},
			},
		},
	}
	// SubscriptionsColumns holds the columns for the "subscriptions" table.
	SubscriptionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "plan", Type: field.TypeEnum, Enums: []string{"basic", "pro", "elite"}},
		{Name: "seats", Type: field.TypeInt, Default: 1},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "past_due", "canceled"}, Default: "active"},
		{Name: "provider_id", Type: field.TypeString},
		{Name: "current_period_end", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_subscription", Type: field.TypeUUID, Unique: true},
	}
	// SubscriptionsTable holds the schema information for the "subscriptions" table.
	SubscriptionsTable = &schema.Table{
		Name:       "subscriptions",
		Columns:    SubscriptionsColumns,
		PrimaryKey: []*schema.Column{SubscriptionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "subscriptions_users_subscription",
				Columns:    []*schema.Column{SubscriptionsColumns[8]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "display_name", Type: field.TypeString},
		{Name: "company_name", Type: field.TypeString, Nullable: true},
		{Name: "hashed_password", Type: field.TypeString},
		{Name: "is_admin", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "avatar", Type: field.TypeBytes, Nullable: true},
		{Name: "avatar_content_type", Type: field.TypeString, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BrandsTable,
		ConversationsTable,
		FavoritesTable,
		ListingsTable,
		ListingViewsTable,
		MessagesTable,
		ModelsTable,
		NotificationsTable,
		OffersTable,
		SellerProfilesTable,
		SessionsTable,
		SubscriptionsTable,
		UsersTable,
	}
)

func init() {
	ConversationsTable.ForeignKeys[0].RefTable = UsersTable
	ConversationsTable.ForeignKeys[1].RefTable = UsersTable
	ConversationsTable.ForeignKeys[2].RefTable = ListingsTable
	FavoritesTable.ForeignKeys[0].RefTable = ListingsTable
	FavoritesTable.ForeignKeys[1].RefTable = UsersTable
	ListingsTable.ForeignKeys[0].RefTable = BrandsTable
	ListingsTable.ForeignKeys[1].RefTable = ModelsTable
	ListingsTable.ForeignKeys[2].RefTable = UsersTable
	ListingViewsTable.ForeignKeys[0].RefTable = ListingsTable
	MessagesTable.ForeignKeys[0].RefTable = ConversationsTable
	MessagesTable.ForeignKeys[1].RefTable = UsersTable
	ModelsTable.ForeignKeys[0].RefTable = BrandsTable
	NotificationsTable.ForeignKeys[0].RefTable = UsersTable
	OffersTable.ForeignKeys[0].RefTable = ListingsTable
	OffersTable.ForeignKeys[1].RefTable = UsersTable
	SellerProfilesTable.ForeignKeys[0].RefTable = UsersTable
	SessionsTable.ForeignKeys[0].RefTable = UsersTable
	SubscriptionsTable.ForeignKeys[0].RefTable = UsersTable
}
