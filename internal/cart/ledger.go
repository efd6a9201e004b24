package cart

import (
	"sync"

	"github.com/Cong-Nghe-Phan-Mem-UTH/bigboy-app/internal/menu"
)

// LineItem is one distinct (dish, notes) pairing in the cart. Name, price and
// image are snapshots taken when the dish was first added; later changes to
// the dish elsewhere never reach a pending cart line.
type LineItem struct {
	DishID    int64   `json:"dish_id"`
	DishName  string  `json:"dish_name"`
	DishPrice float64 `json:"dish_price"`
	Quantity  int     `json:"quantity"`
	Notes     string  `json:"notes"`
	DishImage string  `json:"dish_image,omitempty"`
}

// Ledger consolidates cart line items. All state is private and reachable
// only through the named operations below; none of them can fail, invalid
// input is absorbed as a no-op.
type Ledger struct {
	mu             sync.Mutex
	items          []LineItem
	restaurantID   int64
	restaurantName string
}

func NewLedger() *Ledger {
	return &Ledger{}
}

// AddItem merges quantity into the line keyed by (dish.ID, notes), or appends
// a new snapshot line. The cart binds to the dish's restaurant on the first
// add that carries one; it never re-validates later additions against that
// binding. The return value reports whether the dish names a different
// restaurant than the one the cart is bound to, so callers can warn.
func (l *Ledger) AddItem(dish menu.Dish, quantity int, notes string) (crossRestaurant bool) {
	if quantity < 1 {
		return false
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	crossRestaurant = l.restaurantID != 0 && dish.RestaurantID != 0 && dish.RestaurantID != l.restaurantID

	for i := range l.items {
		if l.items[i].DishID == dish.ID && l.items[i].Notes == notes {
			l.items[i].Quantity += quantity
			return crossRestaurant
		}
	}

	l.items = append(l.items, LineItem{
		DishID:    dish.ID,
		DishName:  dish.Name,
		DishPrice: dish.Price,
		Quantity:  quantity,
		Notes:     notes,
		DishImage: dish.ImageRef(),
	})

	if l.restaurantID == 0 && dish.RestaurantID != 0 {
		l.restaurantID = dish.RestaurantID
		l.restaurantName = dish.RestaurantName
	}
	return crossRestaurant
}

// RemoveItem deletes the line matching (dishID, notes) exactly; absent keys
// are a no-op.
func (l *Ledger) RemoveItem(dishID int64, notes string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	kept := l.items[:0]
	for _, item := range l.items {
		if item.DishID == dishID && item.Notes == notes {
			continue
		}
		kept = append(kept, item)
	}
	l.items = kept
}

// UpdateQuantity sets the matching line to max(0, quantity). Lines reaching
// zero are removed in the same operation.
func (l *Ledger) UpdateQuantity(dishID int64, quantity int, notes string) {
	if quantity < 0 {
		quantity = 0
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	kept := l.items[:0]
	for _, item := range l.items {
		if item.DishID == dishID && item.Notes == notes {
			item.Quantity = quantity
		}
		if item.Quantity > 0 {
			kept = append(kept, item)
		}
	}
	l.items = kept
}

// Clear empties the cart and drops the restaurant binding.
func (l *Ledger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.items = nil
	l.restaurantID = 0
	l.restaurantName = ""
}

// Items returns a copy of the current lines in insertion order.
func (l *Ledger) Items() []LineItem {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]LineItem, len(l.items))
	copy(out, l.items)
	return out
}

// Total recomputes price x quantity across all lines on every call.
func (l *Ledger) Total() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	var total float64
	for _, item := range l.items {
		total += item.DishPrice * float64(item.Quantity)
	}
	return total
}

// TotalItems recomputes the summed quantity on every call.
func (l *Ledger) TotalItems() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	var count int
	for _, item := range l.items {
		count += item.Quantity
	}
	return count
}

func (l *Ledger) RestaurantID() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.restaurantID
}

func (l *Ledger) RestaurantName() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.restaurantName
}
