package reservation

const (
	StatusPending   = "Pending"
	StatusConfirmed = "Confirmed"
	StatusCancelled = "Cancelled"
	StatusCompleted = "Completed"
)

// Reservation is a table booking as the backend returns it. The customer
// listing carries the restaurant name; the owner listing carries the
// customer name instead.
type Reservation struct {
	ID             int64  `json:"id"`
	RestaurantID   int64  `json:"restaurant_id"`
	RestaurantName string `json:"restaurant_name,omitempty"`
	CustomerID     int64  `json:"customer_id,omitempty"`
	CustomerName   string `json:"customer_name,omitempty"`
	TableNumber    int    `json:"table_number"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	Guests         int    `json:"guests"`
	Status         string `json:"status"`
	Notes          string `json:"notes,omitempty"`
}

// Request carries the mutable booking fields for create and update. Zero
// values are omitted so a partial update only touches what the caller set.
type Request struct {
	TableNumber int    `json:"table_number,omitempty"`
	Date        string `json:"date,omitempty"`
	Time        string `json:"time,omitempty"`
	Guests      int    `json:"guests,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

type Page struct {
	Items []Reservation `json:"items"`
	Total int           `json:"total"`
	Page  int           `json:"page,omitempty"`
	Limit int           `json:"limit,omitempty"`
}
