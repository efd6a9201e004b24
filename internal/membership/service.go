package membership

import (
	"context"

	"github.com/Cong-Nghe-Phan-Mem-UTH/bigboy-app/internal/api"
)

// TierInfo describes one tier as the backend advertises it.
type TierInfo struct {
	Name        string   `json:"name"`
	MinSpending float64  `json:"min_spending"`
	Benefits    []string `json:"benefits"`
}

// MyTier is the customer's current standing plus progress to the next rung.
type MyTier struct {
	CurrentTier    string  `json:"current_tier"`
	TotalSpending  float64 `json:"total_spending"`
	Points         int     `json:"points"`
	NextTier       string  `json:"next_tier,omitempty"`
	SpendingToNext float64 `json:"spending_to_next"`
}

// UpdateResult reports a server-side tier recalculation.
type UpdateResult struct {
	MembershipTier string  `json:"membership_tier"`
	TierUpdated    bool    `json:"tier_updated"`
	TotalSpending  float64 `json:"total_spending"`
}

type Service struct {
	client *api.Client
}

func NewService(client *api.Client) *Service {
	return &Service{client: client}
}

// Tiers returns the full tier catalog keyed by tier name.
func (s *Service) Tiers(ctx context.Context) (map[string]TierInfo, error) {
	var tiers map[string]TierInfo
	if err := s.client.Get(ctx, "/membership/tiers", &tiers); err != nil {
		return nil, err
	}
	return tiers, nil
}

func (s *Service) MyTier(ctx context.Context) (*MyTier, error) {
	var tier MyTier
	if err := s.client.Get(ctx, "/membership/my-tier", &tier); err != nil {
		return nil, err
	}
	return &tier, nil
}

// UpdateTier asks the backend to recompute the tier from lifetime spending.
func (s *Service) UpdateTier(ctx context.Context) (*UpdateResult, error) {
	var result UpdateResult
	if err := s.client.Post(ctx, "/membership/update-tier", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
