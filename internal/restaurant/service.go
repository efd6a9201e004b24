package restaurant

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/Cong-Nghe-Phan-Mem-UTH/bigboy-app/internal/api"
)

// ListParams narrows GET /mobile/restaurants. Zero values are omitted.
type ListParams struct {
	Page      int
	Limit     int
	Search    string
	MinRating float64
}

type Service struct {
	client *api.Client
}

func NewService(client *api.Client) *Service {
	return &Service{client: client}
}

func (s *Service) List(ctx context.Context, params ListParams) (*Page, error) {
	query := url.Values{}
	if params.Page > 0 {
		query.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Search != "" {
		query.Set("search", params.Search)
	}
	if params.MinRating > 0 {
		query.Set("min_rating", strconv.FormatFloat(params.MinRating, 'f', -1, 64))
	}

	path := "/mobile/restaurants"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var page Page
	if err := s.client.Get(ctx, path, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// All fetches every active restaurant in one call, the input the
// recommendation scorer works from. A fetch failure surfaces as an empty
// slice to the caller: the scorer is simply never invoked.
func (s *Service) All(ctx context.Context) []Restaurant {
	page, err := s.List(ctx, ListParams{Limit: 100})
	if err != nil {
		return nil
	}
	return page.Items
}

// Recommended returns the backend's own top-rated list.
func (s *Service) Recommended(ctx context.Context, limit int) ([]Restaurant, error) {
	path := "/mobile/restaurants/recommended"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}

	var restaurants []Restaurant
	if err := s.client.Get(ctx, path, &restaurants); err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Restaurant, error) {
	var r Restaurant
	if err := s.client.Get(ctx, fmt.Sprintf("/mobile/restaurants/%d", id), &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *Service) Directions(ctx context.Context, id int64) (*Directions, error) {
	var d Directions
	if err := s.client.Get(ctx, fmt.Sprintf("/mobile/restaurants/%d/directions", id), &d); err != nil {
		return nil, err
	}
	return &d, nil
}
