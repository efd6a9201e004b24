package admin

// Restaurant is the admin-side tenant view, richer than the mobile listing.
type Restaurant struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	Logo         string `json:"logo"`
	Description  string `json:"description"`
	Status       string `json:"status"`
	Subscription string `json:"subscription"`
	CreatedAt    string `json:"created_at,omitempty"`
}

// User is a staff or admin account row.
type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Avatar       string `json:"avatar"`
	Role         string `json:"role"`
	RestaurantID int64  `json:"tenant_id"`
	CreatedAt    string `json:"created_at,omitempty"`
}

// RevenueRow is one restaurant's paid-order revenue inside a report window.
type RevenueRow struct {
	RestaurantID int64   `json:"tenant_id"`
	Name         string  `json:"name"`
	Slug         string  `json:"slug"`
	TotalRevenue float64 `json:"total_revenue"`
	OrderCount   int     `json:"order_count"`
}

// Revenue is the full revenue report: per-restaurant rows plus the grand
// total across all of them.
type Revenue struct {
	ByRestaurant []RevenueRow `json:"by_restaurant"`
	TotalRevenue float64      `json:"total_revenue"`
	DateFrom     string       `json:"date_from,omitempty"`
	DateTo       string       `json:"date_to,omitempty"`
}

// AIConfig tunes the server-side recommendation feed.
type AIConfig struct {
	Enabled        bool    `json:"enabled"`
	MinRating      float64 `json:"min_rating"`
	MaxRestaurants int     `json:"max_restaurants"`
	SortBy         string  `json:"sort_by"`
}

// Clamp forces the config into the ranges the backend enforces, so a
// dashboard edit round-trips without surprises: min_rating 0..5,
// max_restaurants 1..100, sort_by one of rating, reviews, recent.
func (c AIConfig) Clamp() AIConfig {
	if c.MinRating < 0 {
		c.MinRating = 0
	}
	if c.MinRating > 5 {
		c.MinRating = 5
	}
	if c.MaxRestaurants < 1 {
		c.MaxRestaurants = 1
	}
	if c.MaxRestaurants > 100 {
		c.MaxRestaurants = 100
	}
	switch c.SortBy {
	case "rating", "reviews", "recent":
	default:
		c.SortBy = "rating"
	}
	return c
}
