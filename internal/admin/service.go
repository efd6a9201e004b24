package admin

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/Cong-Nghe-Phan-Mem-UTH/bigboy-app/internal/api"
)

// ListParams narrows the admin listings. Zero values are omitted.
type ListParams struct {
	Page   int
	Limit  int
	Status string
	Role   string
}

func (p ListParams) encode() string {
	query := url.Values{}
	if p.Page > 0 {
		query.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		query.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Status != "" {
		query.Set("status", p.Status)
	}
	if p.Role != "" {
		query.Set("role", p.Role)
	}
	if encoded := query.Encode(); encoded != "" {
		return "?" + encoded
	}
	return ""
}

type Service struct {
	client *api.Client
}

func NewService(client *api.Client) *Service {
	return &Service{client: client}
}

func (s *Service) Restaurants(ctx context.Context, params ListParams) ([]Restaurant, error) {
	var restaurants []Restaurant
	if err := s.client.Get(ctx, "/admin/restaurants"+params.encode(), &restaurants); err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (s *Service) UpdateRestaurantStatus(ctx context.Context, restaurantID int64, status string) (*Restaurant, error) {
	var updated Restaurant
	path := fmt.Sprintf("/admin/restaurants/%d/status", restaurantID)
	if err := s.client.Put(ctx, path, map[string]string{"status": status}, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *Service) Users(ctx context.Context, params ListParams) ([]User, error) {
	var users []User
	if err := s.client.Get(ctx, "/admin/users"+params.encode(), &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Revenue reports paid-order revenue per restaurant, optionally bounded by
// YYYY-MM-DD dates.
func (s *Service) Revenue(ctx context.Context, dateFrom, dateTo string) (*Revenue, error) {
	query := url.Values{}
	if dateFrom != "" {
		query.Set("date_from", dateFrom)
	}
	if dateTo != "" {
		query.Set("date_to", dateTo)
	}

	path := "/admin/revenue"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var revenue Revenue
	if err := s.client.Get(ctx, path, &revenue); err != nil {
		return nil, err
	}
	return &revenue, nil
}

func (s *Service) AIConfig(ctx context.Context) (*AIConfig, error) {
	var cfg AIConfig
	if err := s.client.Get(ctx, "/admin/ai-config", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// UpdateAIConfig clamps the config into valid ranges before sending, mirroring
// the backend's own rules, and returns the stored result.
func (s *Service) UpdateAIConfig(ctx context.Context, cfg AIConfig) (*AIConfig, error) {
	clamped := cfg.Clamp()

	var stored AIConfig
	if err := s.client.Put(ctx, "/admin/ai-config", clamped, &stored); err != nil {
		return nil, err
	}
	return &stored, nil
}
