package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lazyhash/tokenpick/bleve"
	"github.com/lazyhash/tokenpick/config"
	"github.com/lazyhash/tokenpick/db"
	"github.com/lazyhash/tokenpick/networks"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Show token index statistics",
	Long:  ``,
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

		count, err := svc.Index().Count()
		if err != nil {
			appUI.Error("Couldn't count indexed documents: %s", err)
			return
		}

		p := message.NewPrinter(language.English)
		appUI.KeyValue([][2]string{
			{"Data dir", config.DataDir},
			{"Indexed documents", p.Sprintf("%d", count)},
			{"Catalog tokens", p.Sprintf("%d", len(db.AllTokens()))},
			{"Supported networks", p.Sprintf("%d", len(networks.GetSupportedNetworks()))},
			{"Profile", svc.Profile().ID()},
		})
	},
}

var rebuildIndexCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Drop and rebuild the persistent token index",
	Long: `Deletes the on-disk index and reindexes the token catalog. Use it when
the index looks wrong; a normal run already reindexes automatically
whenever the catalog changed.`,
	Run: func(cmd *cobra.Command, args []string) {
		if config.MemIndex {
			appUI.Warn("mem-index mode has no persistent index to rebuild.")
			return
		}
		chainID, err := config.ChainID()
		if err != nil {
			appUI.Error("%s", err)
			return
		}
		catalog := db.AllTokens()
		if chainID != 0 {
			catalog = db.TokensByChain(chainID)
		}

		stop := appUI.Spinner("Reindexing the token catalog...")
		idx, err := bleve.Rebuild(config.DataDir, catalog)
		stop()
		if err != nil {
			appUI.Error("Rebuilding the index failed: %s", err)
			return
		}
		defer idx.Close()

		count, err := idx.Count()
		if err != nil {
			appUI.Error("Couldn't count indexed documents: %s", err)
			return
		}
		appUI.Success("Indexed %d tokens into %s.", count, config.DataDir)
	},
}

func init() {
	indexCmd.AddCommand(rebuildIndexCmd)
	rootCmd.AddCommand(indexCmd)
}
