package order

import (
	"context"
	"errors"

	"github.com/Cong-Nghe-Phan-Mem-UTH/bigboy-app/internal/api"
	"github.com/Cong-Nghe-Phan-Mem-UTH/bigboy-app/internal/cart"
)

var ErrEmptyCart = errors.New("cart has no items to submit")

type Service struct {
	client *api.Client
}

func NewService(client *api.Client) *Service {
	return &Service{client: client}
}

// Submit sends the cart's current lines as one order batch. The ledger is
// read once up front so concurrent cart edits cannot split the submission.
func (s *Service) Submit(ctx context.Context, ledger *cart.Ledger, tableNumber int) ([]Order, error) {
	items := ledger.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	submission := Submission{
		Orders:      make([]Line, 0, len(items)),
		TableNumber: tableNumber,
	}
	for _, item := range items {
		submission.Orders = append(submission.Orders, Line{
			DishID:   item.DishID,
			Quantity: item.Quantity,
			Notes:    item.Notes,
		})
	}

	var created []Order
	if err := s.client.Post(ctx, "/guest/orders", submission, &created); err != nil {
		return nil, err
	}
	return created, nil
}

// List returns the current guest session's orders.
func (s *Service) List(ctx context.Context) (*Page, error) {
	var page Page
	if err := s.client.Get(ctx, "/guest/orders", &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// History returns the authenticated customer's visit history with its
// spending summary.
func (s *Service) History(ctx context.Context) (*History, error) {
	var history History
	if err := s.client.Get(ctx, "/history", &history); err != nil {
		return nil, err
	}
	return &history, nil
}

// VisitedRestaurants lists the restaurants the customer has ordered at.
func (s *Service) VisitedRestaurants(ctx context.Context) ([]VisitedRestaurant, error) {
	var restaurants []VisitedRestaurant
	if err := s.client.Get(ctx, "/history/restaurants", &restaurants); err != nil {
		return nil, err
	}
	return restaurants, nil
}
