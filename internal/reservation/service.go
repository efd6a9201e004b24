package reservation

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/Cong-Nghe-Phan-Mem-UTH/bigboy-app/internal/api"
)

type Service struct {
	client *api.Client
}

func NewService(client *api.Client) *Service {
	return &Service{client: client}
}

// Create books a table at a restaurant for the authenticated customer.
func (s *Service) Create(ctx context.Context, restaurantID int64, req Request) (*Reservation, error) {
	var created Reservation
	path := fmt.Sprintf("/restaurants/%d/reservations", restaurantID)
	if err := s.client.Post(ctx, path, req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// List returns the customer's own reservations, newest first.
func (s *Service) List(ctx context.Context) (*Page, error) {
	var page Page
	if err := s.client.Get(ctx, "/reservations", &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (s *Service) Update(ctx context.Context, reservationID int64, req Request) (*Reservation, error) {
	var updated Reservation
	path := fmt.Sprintf("/reservations/%d", reservationID)
	if err := s.client.Put(ctx, path, req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Cancel marks the reservation cancelled. The backend keeps the row.
func (s *Service) Cancel(ctx context.Context, reservationID int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/reservations/%d", reservationID), nil)
}

// OwnerListParams narrows the staff-side reservation listing.
type OwnerListParams struct {
	Status string
	Page   int
	Limit  int
}

// ListForMyRestaurant returns every reservation at the authenticated staff
// member's restaurant, upcoming first.
func (s *Service) ListForMyRestaurant(ctx context.Context, params OwnerListParams) (*Page, error) {
	query := url.Values{}
	if params.Status != "" {
		query.Set("status", params.Status)
	}
	if params.Page > 0 {
		query.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}

	path := "/restaurants/my/reservations"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var page Page
	if err := s.client.Get(ctx, path, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (s *Service) Approve(ctx context.Context, reservationID int64) (*Reservation, error) {
	var updated Reservation
	path := fmt.Sprintf("/restaurants/my/reservations/%d/approve", reservationID)
	if err := s.client.Put(ctx, path, nil, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Reject cancels a pending reservation on behalf of the restaurant. The
// reason, when given, is appended to the reservation's notes server-side.
func (s *Service) Reject(ctx context.Context, reservationID int64, reason string) (*Reservation, error) {
	body := map[string]string{}
	if reason != "" {
		body["reason"] = reason
	}

	var updated Reservation
	path := fmt.Sprintf("/restaurants/my/reservations/%d/reject", reservationID)
	if err := s.client.Put(ctx, path, body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *Service) UpdateStatus(ctx context.Context, reservationID int64, status string) (*Reservation, error) {
	var updated Reservation
	path := fmt.Sprintf("/restaurants/my/reservations/%d/status", reservationID)
	if err := s.client.Put(ctx, path, map[string]string{"status": status}, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
