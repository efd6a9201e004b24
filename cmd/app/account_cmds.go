package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Cong-Nghe-Phan-Mem-UTH/bigboy-app/internal/membership"
	"github.com/Cong-Nghe-Phan-Mem-UTH/bigboy-app/internal/reservation"
	"github.com/Cong-Nghe-Phan-Mem-UTH/bigboy-app/internal/review"
)

func newReservationsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reservations",
		Short: "Manage your table reservations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(a); err != nil {
				return err
			}

			page, err := a.reservations.List(cmd.Context())
			if err != nil {
				return err
			}

			if len(page.Items) == 0 {
				fmt.Println("No reservations.")
				return nil
			}
			for _, r := range page.Items {
				fmt.Printf("%4d  %-25s  %s %s  %d guests  [%s]\n",
					r.ID, r.RestaurantName, r.Date, r.Time, r.Guests, r.Status)
			}
			return nil
		},
	}

	cmd.AddCommand(newReservationCreateCmd(a), newReservationCancelCmd(a))
	return cmd
}

func newReservationCreateCmd(a *app) *cobra.Command {
	var restaurantID int64
	var req reservation.Request

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Book a table",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(a); err != nil {
				return err
			}
			if restaurantID == 0 || req.Date == "" || req.Time == "" {
				return fmt.Errorf("--restaurant, --date and --time are required")
			}

			created, err := a.reservations.Create(cmd.Context(), restaurantID, req)
			if err != nil {
				return err
			}
			fmt.Printf("Reservation #%d created, status %s.\n", created.ID, created.Status)
			return nil
		},
	}

	cmd.Flags().Int64VarP(&restaurantID, "restaurant", "r", 0, "restaurant id")
	cmd.Flags().StringVar(&req.Date, "date", "", "reservation date (ISO 8601)")
	cmd.Flags().StringVar(&req.Time, "time", "", "reservation time, e.g. 19:00")
	cmd.Flags().IntVar(&req.Guests, "guests", 2, "party size")
	cmd.Flags().IntVar(&req.TableNumber, "table", 0, "preferred table (optional)")
	cmd.Flags().StringVar(&req.Notes, "notes", "", "notes for the restaurant")
	return cmd
}

func newReservationCancelCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel a reservation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(a); err != nil {
				return err
			}

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid reservation id %q", args[0])
			}
			if err := a.reservations.Cancel(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("Reservation #%d cancelled.\n", id)
			return nil
		},
	}
}

func newReviewsCmd(a *app) *cobra.Command {
	var restaurantID int64

	cmd := &cobra.Command{
		Use:   "reviews",
		Short: "Read restaurant reviews",
		RunE: func(cmd *cobra.Command, args []string) error {
			if restaurantID == 0 {
				return fmt.Errorf("--restaurant is required")
			}

			page, err := a.reviews.ListByRestaurant(cmd.Context(), restaurantID)
			if err != nil {
				return err
			}

			if len(page.Items) == 0 {
				fmt.Println("No reviews yet.")
				return nil
			}
			for _, r := range page.Items {
				fmt.Printf("%d★  %s — %s\n", r.Rating, r.CustomerName, r.Comment)
			}
			fmt.Printf("%d reviews\n", page.Total)
			return nil
		},
	}

	cmd.PersistentFlags().Int64VarP(&restaurantID, "restaurant", "r", 0, "restaurant id")
	cmd.AddCommand(newReviewAddCmd(a, &restaurantID))
	return cmd
}

func newReviewAddCmd(a *app, restaurantID *int64) *cobra.Command {
	var req review.Request

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Post a review",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(a); err != nil {
				return err
			}
			if *restaurantID == 0 {
				return fmt.Errorf("--restaurant is required")
			}
			if req.Rating < 1 || req.Rating > 5 {
				return fmt.Errorf("--rating must be between 1 and 5")
			}

			created, err := a.reviews.Create(cmd.Context(), *restaurantID, req)
			if err != nil {
				return err
			}
			fmt.Printf("Review #%d posted.\n", created.ID)
			return nil
		},
	}

	cmd.Flags().IntVar(&req.Rating, "rating", 0, "star rating 1-5")
	cmd.Flags().StringVar(&req.Comment, "comment", "", "review text")
	return cmd
}

func newMembershipCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "membership",
		Short: "Show your membership tier and progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(a); err != nil {
				return err
			}

			tier, err := a.membership.MyTier(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Printf("Tier: %s  (%.0f₫ lifetime, %d points)\n",
				tier.CurrentTier, tier.TotalSpending, tier.Points)
			if tier.NextTier != "" {
				fmt.Printf("Spend %.0f₫ more to reach %s.\n", tier.SpendingToNext, tier.NextTier)
			} else if next := membership.NextThreshold(tier.CurrentTier); next == nil {
				fmt.Println("You are at the top tier.")
			}
			return nil
		},
	}
}

func newHistoryCmd(a *app) *cobra.Command {
	var byRestaurant bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show your visit and spending history",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(a); err != nil {
				return err
			}

			if byRestaurant {
				visited, err := a.orders.VisitedRestaurants(cmd.Context())
				if err != nil {
					return err
				}
				for _, r := range visited {
					fmt.Printf("%-25s  %d visits  %.0f₫  (last %s)\n",
						r.Name, r.VisitCount, r.TotalSpending, r.LastVisit)
				}
				return nil
			}

			history, err := a.orders.History(cmd.Context())
			if err != nil {
				return err
			}

			s := history.Summary
			fmt.Printf("Visits: %d  Restaurants: %d  Dishes tried: %d  Spent: %.0f₫\n",
				s.TotalVisits, s.RestaurantsVisited, s.UniqueDishesTried, s.TotalSpending)
			for _, entry := range history.History {
				fmt.Printf("  %s  %-25s  %.0f₫\n", entry.VisitDate, entry.RestaurantName, entry.TotalAmount)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&byRestaurant, "restaurants", false, "group history by restaurant")
	return cmd
}
