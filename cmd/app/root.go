package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Cong-Nghe-Phan-Mem-UTH/bigboy-app/internal/api"
	"github.com/Cong-Nghe-Phan-Mem-UTH/bigboy-app/internal/auth"
	"github.com/Cong-Nghe-Phan-Mem-UTH/bigboy-app/internal/config"
	"github.com/Cong-Nghe-Phan-Mem-UTH/bigboy-app/internal/membership"
	"github.com/Cong-Nghe-Phan-Mem-UTH/bigboy-app/internal/menu"
	"github.com/Cong-Nghe-Phan-Mem-UTH/bigboy-app/internal/order"
	"github.com/Cong-Nghe-Phan-Mem-UTH/bigboy-app/internal/qr"
	"github.com/Cong-Nghe-Phan-Mem-UTH/bigboy-app/internal/reservation"
	"github.com/Cong-Nghe-Phan-Mem-UTH/bigboy-app/internal/restaurant"
	"github.com/Cong-Nghe-Phan-Mem-UTH/bigboy-app/internal/review"
	"github.com/Cong-Nghe-Phan-Mem-UTH/bigboy-app/internal/storage"
)

// app bundles the wired services every command reaches for. It is built once
// in the root command's PersistentPreRunE.
type app struct {
	cfg   config.Config
	store *storage.Store

	gate         *auth.Gate
	restaurants  *restaurant.Service
	menu         *menu.Service
	orders       *order.Service
	reservations *reservation.Service
	reviews      *review.Service
	membership   *membership.Service
	qr           *qr.Service
}

func (a *app) close() {
	if a.store != nil {
		_ = a.store.Close()
	}
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{}

	root := &cobra.Command{
		Use:           "bigboy",
		Short:         "BigBoy restaurant ordering and reservations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.cfg = config.Load()

			if err := os.MkdirAll(filepath.Dir(a.cfg.StoragePath), 0o700); err != nil {
				return fmt.Errorf("prepare storage dir: %w", err)
			}
			store, err := storage.Open(a.cfg.StoragePath)
			if err != nil {
				return fmt.Errorf("open credential store: %w", err)
			}
			a.store = store

			client := api.New(a.cfg.BaseURL, a.cfg.APIVersion, a.cfg.RequestTimeout, store)

			a.gate = auth.NewGate(client, store)
			a.restaurants = restaurant.NewService(client)
			a.menu = menu.NewService(client)
			a.orders = order.NewService(client)
			a.reservations = reservation.NewService(client)
			a.reviews = review.NewService(client)
			a.membership = membership.NewService(client)
			a.qr = qr.NewService(client)

			// Session restore runs before every command so protected
			// screens never render against a stale token.
			a.gate.InitAuth(cmd.Context())
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.close()
		},
	}

	root.AddCommand(
		newLoginCmd(a),
		newRegisterCmd(a),
		newLogoutCmd(a),
		newMeCmd(a),
		newScanCmd(a),
		newRestaurantsCmd(a),
		newRestaurantCmd(a),
		newMenuCmd(a),
		newRecommendCmd(a),
		newOrderCmd(a),
		newReservationsCmd(a),
		newReviewsCmd(a),
		newMembershipCmd(a),
		newHistoryCmd(a),
	)

	return root, a
}

// requireSession guards commands that only make sense when logged in.
func requireSession(a *app) error {
	if !a.gate.Current().IsAuthenticated {
		return fmt.Errorf("not logged in, run `bigboy login` or scan a table QR first")
	}
	return nil
}

func main() {
	root, a := newRootCmd()
	if err := root.Execute(); err != nil {
		a.close()
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
