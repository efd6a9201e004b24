package order

// Order statuses as the backend spells them on the wire.
const (
	StatusPending   = "Pending"
	StatusPreparing = "Preparing"
	StatusReady     = "Ready"
	StatusServed    = "Served"
	StatusCancelled = "Cancelled"
	StatusPaid      = "Paid"
)

// Line is one dish line inside an order submission.
type Line struct {
	DishID   int64  `json:"dish_id"`
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes"`
}

// Submission is the POST /guest/orders request body: the cart flattened to
// dish lines plus the table the guest is seated at.
type Submission struct {
	Orders      []Line `json:"orders"`
	TableNumber int    `json:"table_number,omitempty"`
}

// Order is a single created or listed order row.
type Order struct {
	ID             int64  `json:"id"`
	RestaurantID   int64  `json:"tenant_id"`
	TableNumber    int    `json:"table_number"`
	GuestID        int64  `json:"guest_id,omitempty"`
	DishSnapshotID int64  `json:"dish_snapshot_id"`
	Quantity       int    `json:"quantity"`
	Notes          string `json:"notes"`
	Status         string `json:"status"`
	CreatedAt      string `json:"created_at,omitempty"`
	UpdatedAt      string `json:"updated_at,omitempty"`
}

// Page is the envelope for order listings.
type Page struct {
	Items []Order `json:"items"`
	Total int     `json:"total"`
}

// HistorySummary aggregates a customer's visits across restaurants.
type HistorySummary struct {
	TotalSpending      float64 `json:"total_spending"`
	RestaurantsVisited int     `json:"restaurants_visited"`
	UniqueDishesTried  int     `json:"unique_dishes_tried"`
	TotalVisits        int     `json:"total_visits"`
}

// HistoryEntry is one recorded visit.
type HistoryEntry struct {
	ID             int64   `json:"id"`
	RestaurantID   int64   `json:"restaurant_id"`
	RestaurantName string  `json:"restaurant_name"`
	DishIDs        []int64 `json:"dish_ids"`
	TotalAmount    float64 `json:"total_amount"`
	VisitDate      string  `json:"visit_date"`
	Notes          string  `json:"notes"`
}

// History is the GET /history response body.
type History struct {
	Summary HistorySummary `json:"summary"`
	History []HistoryEntry `json:"history"`
	Page    int            `json:"page"`
	Limit   int            `json:"limit"`
}

// VisitedRestaurant is one row of GET /history/restaurants.
type VisitedRestaurant struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Address       string  `json:"address"`
	Logo          string  `json:"logo"`
	VisitCount    int     `json:"visit_count"`
	TotalSpending float64 `json:"total_spending"`
	LastVisit     string  `json:"last_visit"`
}
