package menu

// Dish is a menu item as served by GET /dishes.
type Dish struct {
	ID             int64   `json:"id"`
	RestaurantID   int64   `json:"tenant_id"`
	RestaurantName string  `json:"restaurant_name,omitempty"`
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	Description    string  `json:"description,omitempty"`
	Image          string  `json:"image,omitempty"`
	ImageURL       string  `json:"image_url,omitempty"`
	Category       string  `json:"category,omitempty"`
	Status         string  `json:"status,omitempty"`
}

// ImageRef prefers the primary image field, matching how the app resolves
// dish art (image first, image_url as fallback).
func (d Dish) ImageRef() string {
	if d.Image != "" {
		return d.Image
	}
	return d.ImageURL
}

// Page is the paginated dish listing shape.
type Page struct {
	Items []Dish `json:"items"`
	Total int    `json:"total"`
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
}
