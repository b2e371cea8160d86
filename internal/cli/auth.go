package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"noteshop/pkg/user"
)

var registerName, registerEmail string

var registerCmd = &cobra.Command{
	Use:   "register <username>",
	Short: "Create a noteshop account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp()

		password, err := readPassword("Password: ")
		if err != nil {
			return err
		}

		if err := a.API.Register(user.RegisterForm{
			Username: args[0],
			Name:     registerName,
			Email:    registerEmail,
			Password: password,
		}); err != nil {
			return err
		}

		fmt.Println("Registered and logged in as", args[0])
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login <username>",
	Short: "Log in to noteshop",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp()

		password, err := readPassword("Password: ")
		if err != nil {
			return err
		}

		if err := a.API.Login(args[0], password); err != nil {
			return err
		}

		fmt.Println("Logged in as", args[0])
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and forget local session state",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp()

		err := a.API.Logout()
		a.Tracker.Clear()
		if err != nil {
			return err
		}

		fmt.Println("Logged out")
		return nil
	},
}

func init() {
	registerCmd.Flags().StringVar(&registerName, "name", "", "display name")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "email address")
	registerCmd.MarkFlagRequired("email")
}

func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	raw, err := term.ReadPassword(0)
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(raw), nil
}
