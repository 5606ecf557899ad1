package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/lazyhash/tokenpick/networks"
)

var favoritesCmd = &cobra.Command{
	Use:     "favorites",
	Aliases: []string{"fav"},
	Short:   "List favorite tokens, most recently selected first",
	Long: `Lists every favorite token grouped per chain. An address favorited on
several chains shows up once per chain. Ordering follows the selection
history, the token you picked last comes first.`,
	Run: func(cmd *cobra.Command, args []string) {
		svc, err := newLocalService()
		if err != nil {
			appUI.Error("%s", err)
			return
		}
		ctx := context.Background()
		if err = initService(ctx, appUI, svc); err != nil {
			appUI.Error("Couldn't open the token data: %s", err)
			return
		}
		defer svc.Close()

		favs, err := svc.Favorites(ctx)
		if err != nil {
			appUI.Error("Couldn't list favorites: %s", err)
			return
		}
		if len(favs) == 0 {
			appUI.Info("No favorites yet. Toggle one from 'tokenpick search' with :f N.")
			return
		}

		// group per chain, chains ordered by their first appearance so
		// the recency ordering stays readable
		rowsOf := map[int64][][]string{}
		order := []int64{}
		profile := svc.Profile()
		for _, f := range favs {
			if _, seen := rowsOf[f.ChainID]; !seen {
				order = append(order, f.ChainID)
			}
			last := "never"
			if ts := profile.LastSelectedAt(f.Address); ts > 0 {
				last = time.UnixMilli(ts).Format("2006-01-02 15:04")
			}
			rowsOf[f.ChainID] = append(rowsOf[f.ChainID], []string{
				networks.ChainName(f.ChainID), f.Symbol, f.Name, f.Address, last,
			})
		}
		groups := make([][][]string, 0, len(order))
		for _, chainID := range order {
			groups = append(groups, rowsOf[chainID])
		}
		appUI.TableWithGroups([]string{"Chain", "Symbol", "Name", "Address", "Last selected"}, groups)
	},
}

func init() {
	rootCmd.AddCommand(favoritesCmd)
}
