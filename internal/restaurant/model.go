package restaurant

// Restaurant is the backend's restaurant entity, read-only on the client.
type Restaurant struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Slug          string  `json:"slug,omitempty"`
	Address       string  `json:"address,omitempty"`
	Phone         string  `json:"phone,omitempty"`
	Logo          string  `json:"logo,omitempty"`
	ImageURL      string  `json:"image_url,omitempty"`
	Description   string  `json:"description,omitempty"`
	AverageRating float64 `json:"average_rating,omitempty"`
	ReviewCount   int     `json:"review_count,omitempty"`
	Status        string  `json:"status,omitempty"`
	DirectionsURL string  `json:"directions_url,omitempty"`
}

// Page is the paginated listing shape of GET /mobile/restaurants.
type Page struct {
	Items []Restaurant `json:"items"`
	Total int          `json:"total"`
	Page  int          `json:"page"`
	Limit int          `json:"limit"`
}

// Directions is the payload of GET /mobile/restaurants/{id}/directions.
type Directions struct {
	RestaurantID   int64  `json:"restaurant_id"`
	RestaurantName string `json:"restaurant_name"`
	Address        string `json:"address"`
	DirectionsURL  string `json:"directions_url"`
	GoogleMapsURL  string `json:"google_maps_url"`
}
