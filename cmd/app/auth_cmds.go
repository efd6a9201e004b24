package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Cong-Nghe-Phan-Mem-UTH/bigboy-app/internal/auth"
)

func newLoginCmd(a *app) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in with your customer account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				email = prompt("Email: ")
			}
			if password == "" {
				password = prompt("Password: ")
			}

			result := a.gate.Login(cmd.Context(), email, password)
			if !result.Success {
				return fmt.Errorf("%s", result.Error)
			}

			fmt.Printf("Welcome back, %s!\n", result.User.Name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	return cmd
}

func newRegisterCmd(a *app) *cobra.Command {
	var req auth.RegisterRequest

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new customer account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if req.Name == "" {
				req.Name = prompt("Name: ")
			}
			if req.Email == "" {
				req.Email = prompt("Email: ")
			}
			if req.Password == "" {
				req.Password = prompt("Password: ")
			}

			result := a.gate.Register(cmd.Context(), req)
			if !result.Success {
				return fmt.Errorf("%s", result.Error)
			}

			if a.gate.Current().IsAuthenticated {
				fmt.Printf("Account created, you are now logged in as %s.\n", result.User.Name)
			} else {
				fmt.Printf("Account created for %s. Run `bigboy login` to sign in.\n", result.User.Name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "full name")
	cmd.Flags().StringVarP(&req.Email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&req.Password, "password", "p", "", "account password")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "phone number (optional)")
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and clear stored credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			a.gate.Logout()
			fmt.Println("Logged out.")
			return nil
		},
	}
}

func newMeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			session := a.gate.Current()
			if !session.IsAuthenticated {
				fmt.Println("Not logged in.")
				return nil
			}

			kind := "customer"
			if session.IsGuest {
				kind = "guest"
			}
			fmt.Printf("Logged in as %s (%s)\n", session.User.Name, kind)
			if session.User.Email != "" {
				fmt.Printf("  email: %s\n", session.User.Email)
			}
			if session.User.Phone != "" {
				fmt.Printf("  phone: %s\n", session.User.Phone)
			}
			return nil
		},
	}
}

func newScanCmd(a *app) *cobra.Command {
	var guestName string

	cmd := &cobra.Command{
		Use:   "scan <qr-token>",
		Short: "Scan a table QR code and start a guest session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := a.qr.Scan(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Table %d at %s\n", table.TableNumber, table.RestaurantName)

			if guestName == "" {
				guestName = prompt("Your name (empty to skip guest login): ")
			}
			if guestName == "" {
				return nil
			}

			result := a.gate.GuestLogin(cmd.Context(), guestName, table.TableToken)
			if !result.Success {
				return fmt.Errorf("%s", result.Error)
			}
			fmt.Printf("Seated as %s. You can now order with `bigboy order`.\n", result.User.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&guestName, "name", "", "guest display name")
	return cmd
}

func prompt(label string) string {
	fmt.Print(label)
	reader := bufio.NewReader(os.Stdin)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}
