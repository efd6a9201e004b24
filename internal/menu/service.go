package menu

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/Cong-Nghe-Phan-Mem-UTH/bigboy-app/internal/api"
)

type ListParams struct {
	Page         int
	Limit        int
	RestaurantID int64
	Category     string
	Status       string
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
	if params.RestaurantID > 0 {
		query.Set("tenant_id", strconv.FormatInt(params.RestaurantID, 10))
	}
	if params.Category != "" {
		query.Set("category", params.Category)
	}
	if params.Status != "" {
		query.Set("status", params.Status)
	}

	path := "/dishes"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var page Page
	if err := s.client.Get(ctx, path, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (s *Service) Get(ctx context.Context, dishID int64) (*Dish, error) {
	var dish Dish
	if err := s.client.Get(ctx, fmt.Sprintf("/dishes/%d", dishID), &dish); err != nil {
		return nil, err
	}
	return &dish, nil
}
