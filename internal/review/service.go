package review

import (
	"context"
	"fmt"

	"github.com/Cong-Nghe-Phan-Mem-UTH/bigboy-app/internal/api"
)

// Review is one customer review of a restaurant. DishRatings maps dish ids
// (as the backend keys them) to per-dish star ratings.
type Review struct {
	ID           int64          `json:"id"`
	CustomerID   int64          `json:"customer_id,omitempty"`
	CustomerName string         `json:"customer_name,omitempty"`
	Rating       int            `json:"rating"`
	Comment      string         `json:"comment"`
	DishRatings  map[string]int `json:"dish_ratings,omitempty"`
	CreatedAt    string         `json:"created_at,omitempty"`
	UpdatedAt    string         `json:"updated_at,omitempty"`
}

type Request struct {
	Rating      int            `json:"rating,omitempty"`
	Comment     string         `json:"comment,omitempty"`
	DishRatings map[string]int `json:"dish_ratings,omitempty"`
}

type Page struct {
	Items []Review `json:"items"`
	Total int      `json:"total"`
}

type Service struct {
	client *api.Client
}

func NewService(client *api.Client) *Service {
	return &Service{client: client}
}

func (s *Service) ListByRestaurant(ctx context.Context, restaurantID int64) (*Page, error) {
	var page Page
	path := fmt.Sprintf("/restaurants/%d/reviews", restaurantID)
	if err := s.client.Get(ctx, path, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Create posts a review. The backend rejects a second review of the same
// restaurant by the same customer; that surfaces as an *api.APIError.
func (s *Service) Create(ctx context.Context, restaurantID int64, req Request) (*Review, error) {
	var created Review
	path := fmt.Sprintf("/restaurants/%d/reviews", restaurantID)
	if err := s.client.Post(ctx, path, req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *Service) Update(ctx context.Context, reviewID int64, req Request) (*Review, error) {
	var updated Review
	if err := s.client.Put(ctx, fmt.Sprintf("/reviews/%d", reviewID), req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *Service) Delete(ctx context.Context, reviewID int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/reviews/%d", reviewID), nil)
}
