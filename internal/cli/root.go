package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"noteshop/pkg/client"
	"noteshop/pkg/credential"
	"noteshop/pkg/storage"
	"noteshop/pkg/viewtrack"
)

var serverURL string

var rootCmd = &cobra.Command{
	Use:   "noteshopctl",
	Short: "Noteshop - sheet music storefront client",
	Long: `noteshopctl browses the noteshop catalog, records views,
and manages your account and purchases from the terminal.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8082", "noteshop server URL")

	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(buyCmd)
	rootCmd.AddCommand(libraryCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// app wires one CLI invocation: durable state store, credential manager,
// REST client, and view tracker.
type app struct {
	Store   storage.Store
	Cred    *credential.Manager
	API     *client.Client
	Tracker *viewtrack.Tracker
	Logger  *slog.Logger
}

// newApp degrades to an in-memory store when the state file cannot be
// opened: the session just remembers nothing.
func newApp() *app {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	store := openStore(logger)
	cred := credential.NewManager(store)
	api := client.New(serverURL, cred)

	return &app{
		Store:   store,
		Cred:    cred,
		API:     api,
		Tracker: viewtrack.New(store, api, logger),
		Logger:  logger,
	}
}

func openStore(logger *slog.Logger) storage.Store {
	home, err := os.UserHomeDir()
	if err != nil {
		logger.Warn("no home directory, state will not persist", "error", err)
		return storage.NewMemStore()
	}

	dir := filepath.Join(home, ".noteshop")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warn("cannot create state dir, state will not persist", "error", err)
		return storage.NewMemStore()
	}

	store, err := storage.OpenSQLite(filepath.Join(dir, "state.db"))
	if err != nil {
		logger.Warn("cannot open state store, state will not persist", "error", err)
		return storage.NewMemStore()
	}
	return store
}

func (a *app) requireLogin() error {
	if a.Cred.ValidToken() == "" {
		return fmt.Errorf("not logged in (run 'noteshopctl login' first)")
	}
	return nil
}
