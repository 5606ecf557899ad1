package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lazyhash/tokenpick/config"
	"github.com/lazyhash/tokenpick/ui"
)

// appUI and appClipboard are the presentation collaborators shared by
// all commands. Tests swap them for recording fakes.
var (
	appUI        ui.UI        = ui.NewTerminalUI()
	appClipboard ui.Clipboard = ui.NewSystemClipboard()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tokenpick",
	Short: "Search a multichain token list and copy checksummed addresses",
	Long: `Tokenpick is a command line companion for working with the tokens of the
major EVM chains. It keeps a searchable token list covering ethereum,
optimism, bsc, polygon, base, arbitrum and avalanche, and it always hands
you addresses in their EIP-55 checksummed form.

What it does for you:

	1. Incremental search over symbol, name, chain and address, loading
	further result pages on demand and never showing the same token twice.

	2. Favorites and selection history per profile, so the tokens you
	actually use surface first.

	3. One-shot address resolution: give it a hex address or a rough token
	name and get the checksummed address on your clipboard.

Settings are read from config.toml in the data dir (default ~/.tokenpick)
and TOKENPICK_* environment variables; flags given explicitly always win.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return config.Load(cmd.Flags().Changed)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.PersistentFlags().StringVarP(&config.Network, config.FlagNetwork, "k", "",
		"restrict to one network. Valid values: \"ethereum\", \"optimism\", \"bsc\", \"polygon\", \"base\", \"arbitrum\", \"avalanche\" or an alternative name like \"matic\". Empty means all networks.")
	rootCmd.PersistentFlags().StringVar(&config.DataDir, config.FlagDataDir, "",
		"directory holding the index and profile. Defaults to ~/.tokenpick.")
	rootCmd.PersistentFlags().IntVar(&config.PageSize, config.FlagPageSize, config.DefaultPageSize,
		"number of results per search page.")
	rootCmd.PersistentFlags().IntVar(&config.DebounceMS, config.FlagDebounce, config.DefaultDebounceMS,
		"milliseconds the query must be stable before a search is issued.")
	rootCmd.PersistentFlags().IntVar(&config.LoadMoreCooldownMS, config.FlagCooldown, config.DefaultLoadMoreCooldownMS,
		"minimum milliseconds between two automatic page loads.")
	rootCmd.PersistentFlags().IntVar(&config.LookAhead, config.FlagLookAhead, config.DefaultLookAhead,
		"how close to the end of the list browsing may come before the next page is prefetched.")
	rootCmd.PersistentFlags().BoolVar(&config.MemIndex, config.FlagMemIndex, false,
		"keep the token index in memory instead of the data dir.")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
