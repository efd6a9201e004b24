package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Cong-Nghe-Phan-Mem-UTH/bigboy-app/internal/api"
	"github.com/Cong-Nghe-Phan-Mem-UTH/bigboy-app/internal/cart"
)

func newOrderCmd(a *app) *cobra.Command {
	var tableNumber int

	cmd := &cobra.Command{
		Use:   "order",
		Short: "Run an interactive cart session and submit it",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(a); err != nil {
				return err
			}

			ledger := cart.NewLedger()
			fmt.Println("Cart session. Commands: add <dish-id> <qty> [notes], rm <dish-id> [notes],")
			fmt.Println("qty <dish-id> <qty> [notes], list, clear, submit, quit")

			scanner := bufio.NewScanner(os.Stdin)
			for {
				fmt.Print("> ")
				if !scanner.Scan() {
					return scanner.Err()
				}

				fields := strings.Fields(scanner.Text())
				if len(fields) == 0 {
					continue
				}

				switch fields[0] {
				case "add":
					a.cartAdd(cmd, ledger, fields[1:])
				case "rm":
					if len(fields) < 2 {
						fmt.Println("usage: rm <dish-id> [notes]")
						continue
					}
					dishID, err := strconv.ParseInt(fields[1], 10, 64)
					if err != nil {
						fmt.Println("invalid dish id")
						continue
					}
					ledger.RemoveItem(dishID, strings.Join(fields[2:], " "))
				case "qty":
					if len(fields) < 3 {
						fmt.Println("usage: qty <dish-id> <qty> [notes]")
						continue
					}
					dishID, err1 := strconv.ParseInt(fields[1], 10, 64)
					quantity, err2 := strconv.Atoi(fields[2])
					if err1 != nil || err2 != nil {
						fmt.Println("invalid dish id or quantity")
						continue
					}
					ledger.UpdateQuantity(dishID, quantity, strings.Join(fields[3:], " "))
				case "list":
					printCart(ledger)
				case "clear":
					ledger.Clear()
					fmt.Println("Cart cleared.")
				case "submit":
					created, err := a.orders.Submit(cmd.Context(), ledger, tableNumber)
					if err != nil {
						fmt.Println("Submit failed:", api.ErrorMessage(err))
						continue
					}
					fmt.Printf("Submitted %d order lines.\n", len(created))
					ledger.Clear()
					return nil
				case "quit", "exit":
					return nil
				default:
					fmt.Println("unknown command:", fields[0])
				}
			}
		},
	}

	cmd.Flags().IntVarP(&tableNumber, "table", "t", 0, "table number for the order")
	return cmd
}

// cartAdd looks the dish up so the cart line snapshots its current name and
// price, then warns when the dish belongs to a different restaurant than the
// cart is bound to.
func (a *app) cartAdd(cmd *cobra.Command, ledger *cart.Ledger, args []string) {
	if len(args) < 2 {
		fmt.Println("usage: add <dish-id> <qty> [notes]")
		return
	}

	dishID, err1 := strconv.ParseInt(args[0], 10, 64)
	quantity, err2 := strconv.Atoi(args[1])
	if err1 != nil || err2 != nil {
		fmt.Println("invalid dish id or quantity")
		return
	}

	dish, err := a.menu.Get(cmd.Context(), dishID)
	if err != nil {
		fmt.Println("Cannot load dish:", api.ErrorMessage(err))
		return
	}

	notes := strings.Join(args[2:], " ")
	if ledger.AddItem(*dish, quantity, notes) {
		fmt.Printf("Warning: %s belongs to %s, but this cart started at %s.\n",
			dish.Name, dish.RestaurantName, ledger.RestaurantName())
	}
	fmt.Printf("Added %d× %s.\n", quantity, dish.Name)
}

func printCart(ledger *cart.Ledger) {
	items := ledger.Items()
	if len(items) == 0 {
		fmt.Println("Cart is empty.")
		return
	}

	for _, item := range items {
		line := fmt.Sprintf("%4d  %d× %-28s %10.0f₫", item.DishID, item.Quantity, item.DishName,
			item.DishPrice*float64(item.Quantity))
		if item.Notes != "" {
			line += "  (" + item.Notes + ")"
		}
		fmt.Println(line)
	}
	fmt.Printf("Total: %.0f₫ for %d items\n", ledger.Total(), ledger.TotalItems())
}
