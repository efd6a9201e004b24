package qr

import (
	"context"

	"github.com/Cong-Nghe-Phan-Mem-UTH/bigboy-app/internal/api"
)

// TableSession is the flattened result of scanning a table QR code: enough
// to greet the guest, bind the cart and run a guest login.
type TableSession struct {
	RestaurantID   int64
	RestaurantName string
	TableToken     string
	TableNumber    int
	TableCapacity  int
}

// scanResponse mirrors the nested POST /qr/scan body.
type scanResponse struct {
	Restaurant struct {
		ID      int64  `json:"id"`
		Name    string `json:"name"`
		Slug    string `json:"slug"`
		Logo    string `json:"logo"`
		Address string `json:"address"`
	} `json:"restaurant"`
	Table struct {
		Number   int    `json:"number"`
		Capacity int    `json:"capacity"`
		Status   string `json:"status"`
	} `json:"table"`
	Token string `json:"token"`
}

type Service struct {
	client *api.Client
}

func NewService(client *api.Client) *Service {
	return &Service{client: client}
}

// Scan exchanges a scanned QR token for the table's restaurant and seat
// details. When the response omits the token the scanned one is kept, so the
// caller always has a usable table token.
func (s *Service) Scan(ctx context.Context, token string) (*TableSession, error) {
	var payload scanResponse
	err := s.client.Post(ctx, "/qr/scan", map[string]string{"token": token}, &payload)
	if err != nil {
		return nil, err
	}

	session := &TableSession{
		RestaurantID:   payload.Restaurant.ID,
		RestaurantName: payload.Restaurant.Name,
		TableToken:     payload.Token,
		TableNumber:    payload.Table.Number,
		TableCapacity:  payload.Table.Capacity,
	}
	if session.TableToken == "" {
		session.TableToken = token
	}
	return session, nil
}
