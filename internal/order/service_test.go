package order

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/Cong-Nghe-Phan-Mem-UTH/bigboy-app/internal/api"
	"github.com/Cong-Nghe-Phan-Mem-UTH/bigboy-app/internal/cart"
	"github.com/Cong-Nghe-Phan-Mem-UTH/bigboy-app/internal/menu"
	"github.com/Cong-Nghe-Phan-Mem-UTH/bigboy-app/internal/storage"
)

func newTestService(t *testing.T, handler http.Handler) *Service {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := api.New(server.URL, "/api/v1", 5*time.Second, storage.NewMemory())
	return NewService(client)
}

func TestSubmitFlattensLedger(t *testing.T) {
	var received Submission
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/guest/orders", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("got method %s, want POST", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode submission: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{"id": 1, "quantity": 2, "status": StatusPending},
				{"id": 2, "quantity": 1, "status": StatusPending},
			},
			"message": "created",
		})
	})

	ledger := cart.NewLedger()
	ledger.AddItem(menu.Dish{ID: 11, RestaurantID: 3, Name: "Phở bò", Price: 50000}, 2, "")
	ledger.AddItem(menu.Dish{ID: 12, RestaurantID: 3, Name: "Bún chả", Price: 45000}, 1, "ít cay")

	service := newTestService(t, mux)
	created, err := service.Submit(context.Background(), ledger, 7)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if received.TableNumber != 7 {
		t.Errorf("table number %d, want 7", received.TableNumber)
	}
	if len(received.Orders) != 2 {
		t.Fatalf("got %d order lines, want 2", len(received.Orders))
	}
	if received.Orders[0] != (Line{DishID: 11, Quantity: 2}) {
		t.Errorf("unexpected first line %+v", received.Orders[0])
	}
	if received.Orders[1] != (Line{DishID: 12, Quantity: 1, Notes: "ít cay"}) {
		t.Errorf("unexpected second line %+v", received.Orders[1])
	}

	if len(created) != 2 || created[0].Status != StatusPending {
		t.Errorf("unexpected created orders %+v", created)
	}
}

func TestSubmitEmptyCart(t *testing.T) {
	service := newTestService(t, http.NewServeMux())

	if _, err := service.Submit(context.Background(), cart.NewLedger(), 7); err != ErrEmptyCart {
		t.Errorf("got %v, want ErrEmptyCart", err)
	}
}

func TestHistoryDecodesSummary(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/history", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"summary": map[string]any{
					"total_spending":      1500000,
					"restaurants_visited": 3,
					"unique_dishes_tried": 12,
					"total_visits":        5,
				},
				"history": []map[string]any{
					{"id": 1, "restaurant_id": 3, "restaurant_name": "BigBoy Sài Gòn", "total_amount": 300000},
				},
			},
			"message": "ok",
		})
	})

	service := newTestService(t, mux)
	history, err := service.History(context.Background())
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if history.Summary.RestaurantsVisited != 3 || history.Summary.TotalSpending != 1500000 {
		t.Errorf("unexpected summary %+v", history.Summary)
	}
	if len(history.History) != 1 || history.History[0].RestaurantName != "BigBoy Sài Gòn" {
		t.Errorf("unexpected entries %+v", history.History)
	}
}
