package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"noteshop/pkg/purchase"
)

var viewCmd = &cobra.Command{
	Use:   "view <song-id>",
	Short: "Show one song and record the view",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp()

		s, err := a.API.Song(args[0])
		if err != nil {
			return err
		}

		var purchases []*purchase.Purchase
		if a.Cred.ValidToken() != "" {
			purchases, _ = a.API.Purchases()
		}

		printSong(s, purchases)
		if s.Premium && purchase.HasAccess(s.ID, purchases) || !s.Premium {
			if s.ScoreURL != "" {
				fmt.Println("score:", s.ScoreURL)
			}
			if s.VideoURL != "" {
				fmt.Println("video:", s.VideoURL)
			}
		}

		a.Tracker.RecordView(s.ID)
		time.Sleep(a.Tracker.Debounce + 250*time.Millisecond)
		a.Tracker.Stop()
		return nil
	},
}

var buyCmd = &cobra.Command{
	Use:   "buy <song-id>",
	Short: "Start a purchase for a premium song",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp()
		if err := a.requireLogin(); err != nil {
			return err
		}

		created, err := a.API.Purchase(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Purchase %s created (%s, %d¢) — pending confirmation\n",
			created.ID, created.Type, created.Amount)
		return nil
	},
}

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "List your purchases",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp()
		if err := a.requireLogin(); err != nil {
			return err
		}

		purchases, err := a.API.Purchases()
		if err != nil {
			return err
		}
		if len(purchases) == 0 {
			fmt.Println("No purchases yet")
			return nil
		}

		for _, p := range purchases {
			fmt.Printf("%s  song=%s  %-12s %-9s %d¢\n", p.ID, p.SongID, p.Type, p.Status, p.Amount)
		}
		return nil
	},
}
