package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Cong-Nghe-Phan-Mem-UTH/bigboy-app/internal/menu"
	"github.com/Cong-Nghe-Phan-Mem-UTH/bigboy-app/internal/recommend"
	"github.com/Cong-Nghe-Phan-Mem-UTH/bigboy-app/internal/restaurant"
)

func newRestaurantsCmd(a *app) *cobra.Command {
	var params restaurant.ListParams

	cmd := &cobra.Command{
		Use:   "restaurants",
		Short: "Browse and search restaurants",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.restaurants.List(cmd.Context(), params)
			if err != nil {
				return err
			}

			if len(page.Items) == 0 {
				fmt.Println("No restaurants found.")
				return nil
			}

			for _, r := range page.Items {
				fmt.Printf("%4d  %-30s  %.1f★ (%d reviews)  %s\n",
					r.ID, r.Name, r.AverageRating, r.ReviewCount, r.Address)
			}
			fmt.Printf("%d of %d restaurants\n", len(page.Items), page.Total)
			return nil
		},
	}

	cmd.Flags().IntVar(&params.Page, "page", 1, "page number")
	cmd.Flags().IntVar(&params.Limit, "limit", 20, "results per page")
	cmd.Flags().StringVarP(&params.Search, "search", "s", "", "search by name")
	cmd.Flags().Float64Var(&params.MinRating, "min-rating", 0, "minimum average rating")
	return cmd
}

func newRestaurantCmd(a *app) *cobra.Command {
	var withDirections bool

	cmd := &cobra.Command{
		Use:   "restaurant <id>",
		Short: "Show one restaurant's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid restaurant id %q", args[0])
			}

			r, err := a.restaurants.Get(cmd.Context(), id)
			if err != nil {
				return err
			}

			fmt.Printf("%s (#%d)\n", r.Name, r.ID)
			fmt.Printf("  rating:  %.1f★ (%d reviews)\n", r.AverageRating, r.ReviewCount)
			fmt.Printf("  address: %s\n", r.Address)
			if r.Phone != "" {
				fmt.Printf("  phone:   %s\n", r.Phone)
			}
			if r.Description != "" {
				fmt.Printf("  %s\n", r.Description)
			}

			if withDirections {
				directions, err := a.restaurants.Directions(cmd.Context(), id)
				if err != nil {
					return err
				}
				fmt.Printf("  directions: %s\n", directions.GoogleMapsURL)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&withDirections, "directions", false, "include a directions link")
	return cmd
}

func newMenuCmd(a *app) *cobra.Command {
	var params menu.ListParams

	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Browse dishes",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.menu.List(cmd.Context(), params)
			if err != nil {
				return err
			}

			if len(page.Items) == 0 {
				fmt.Println("No dishes found.")
				return nil
			}

			for _, d := range page.Items {
				fmt.Printf("%4d  %-30s  %10.0f₫  %s\n", d.ID, d.Name, d.Price, d.Category)
			}
			fmt.Printf("%d of %d dishes\n", len(page.Items), page.Total)
			return nil
		},
	}

	cmd.Flags().Int64VarP(&params.RestaurantID, "restaurant", "r", 0, "filter by restaurant id")
	cmd.Flags().StringVar(&params.Category, "category", "", "filter by category")
	cmd.Flags().IntVar(&params.Page, "page", 1, "page number")
	cmd.Flags().IntVar(&params.Limit, "limit", 50, "results per page")
	return cmd
}

func newRecommendCmd(a *app) *cobra.Command {
	var prefer []string
	var listOptions bool

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Score restaurants against your preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := recommend.NewIndex(recommend.DefaultCatalog)
			if err != nil {
				return err
			}

			if listOptions {
				for _, category := range recommend.DefaultCatalog {
					fmt.Printf("%s:\n", category.Title)
					for _, option := range category.Options {
						fmt.Printf("  %-12s %s\n", option.ID, option.Label)
					}
				}
				return nil
			}

			restaurants := a.restaurants.All(cmd.Context())
			if len(restaurants) == 0 {
				fmt.Println("No restaurants available right now.")
				return nil
			}

			scored := index.Recommend(restaurants, prefer)
			for _, s := range scored {
				line := fmt.Sprintf("%4d  %-30s  %.1f★", s.ID, s.Name, s.AverageRating)
				if s.Score > 0 {
					line += fmt.Sprintf("  score %d (%s)", s.Score, strings.Join(s.Matched, ", "))
				}
				fmt.Println(line)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&prefer, "prefer", nil, "preference option ids (repeatable), see --options")
	cmd.Flags().BoolVar(&listOptions, "options", false, "list the selectable preference options")
	return cmd
}
