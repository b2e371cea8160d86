package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"noteshop/pkg/pagecursor"
	"noteshop/pkg/purchase"
	"noteshop/pkg/song"
)

var browseCategory string

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Page through the catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp()

		// Anonymous sessions simply have no purchases.
		var purchases []*purchase.Purchase
		if a.Cred.ValidToken() != "" {
			purchases, _ = a.API.Purchases()
		}

		pages := make(chan *song.Page)
		errs := make(chan error)

		cursor := pagecursor.New(func(page int) (*song.Page, error) {
			return a.API.Songs(page, browseCategory)
		})
		cursor.OnPage = func(p *song.Page) { pages <- p }
		cursor.OnError = func(err error) { errs <- err }

		reader := bufio.NewReader(os.Stdin)
		for cursor.HasMore() {
			// Reaching the end of the printed page is this UI's
			// version of the sentinel becoming visible.
			cursor.Observe()

			select {
			case p := <-pages:
				for _, s := range p.Items {
					printSong(s, purchases)
					a.Tracker.RecordView(s.ID)
				}
			case err := <-errs:
				return err
			}

			if !cursor.HasMore() {
				break
			}
			fmt.Print("-- more? [Y/n] ")
			line, _ := reader.ReadString('\n')
			if strings.HasPrefix(strings.TrimSpace(strings.ToLower(line)), "n") {
				break
			}
		}

		// Let pending debounced view reports fire before exit.
		time.Sleep(a.Tracker.Debounce + 250*time.Millisecond)
		a.Tracker.Stop()
		return nil
	},
}

func init() {
	browseCmd.Flags().StringVar(&browseCategory, "category", "", "filter by category")
}

func printSong(s *song.Song, purchases []*purchase.Purchase) {
	access := "free"
	if s.Premium {
		if purchase.HasAccess(s.ID, purchases) {
			access = "owned"
		} else {
			access = fmt.Sprintf("premium %d¢", s.Price)
		}
	}
	fmt.Printf("%s  %-30s %-20s [%s] %s (%d views)\n",
		s.ID, s.Title, s.Artist, s.Category, access, s.Views)
}
