package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lazyhash/tokenpick/checksum"
	"github.com/lazyhash/tokenpick/common"
	"github.com/lazyhash/tokenpick/config"
	"github.com/lazyhash/tokenpick/db"
	"github.com/lazyhash/tokenpick/networks"
	"github.com/lazyhash/tokenpick/ui"
)

var addrCmd = &cobra.Command{
	Use:   "addr [address or token name]",
	Short: "Checksum an address or resolve a token to its address",
	Long: `With a hex address, prints its EIP-55 checksummed form and copies it to
the clipboard. With anything else, resolves the input fuzzily against the
token list, shows what was picked and copies the checksummed address.
Use --network to scope the lookup to one chain.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		input := strings.Join(args, " ")
		address, description, chainID, err := resolveAddress(appUI, input)
		if err != nil {
			appUI.Error("%s", err)
			return
		}
		appUI.Interpret(description)
		if link := networks.ExplorerAddressURL(chainID, address); link != "" {
			appUI.Info("%s", link)
		}
		if err = appClipboard.Copy(address); err != nil {
			appUI.Warn("clipboard copy failed: %s", err)
			return
		}
		appUI.Success("%s copied to clipboard", address)
	},
}

// resolveAddress turns user input into a checksummed address, the line
// describing what it resolved to and the chain it lives on (0 when the
// address is not in the catalog). Hex input is checksummed as is,
// anything else goes through the fuzzy token lookup; with several
// candidates the user picks one.
func resolveAddress(u ui.UI, input string) (string, string, int64, error) {
	input = strings.TrimSpace(input)

	if common.IsHexAddress(input) {
		checksummed, err := checksum.Encode(input)
		if err != nil {
			return "", "", 0, err
		}
		if known := db.FindTokensByAddress(input); len(known) > 0 {
			return checksummed, describeToken(known[0], checksummed), known[0].ChainID, nil
		}
		return checksummed, checksummed, 0, nil
	}

	chainID, err := config.ChainID()
	if err != nil {
		return "", "", 0, err
	}
	if chainID != 0 {
		tok, err := db.GetChainToken(chainID, input)
		if err != nil {
			return "", "", 0, err
		}
		return checksumToken(tok)
	}

	matches, _ := db.GetTokens(input)
	switch len(matches) {
	case 0:
		return "", "", 0, fmt.Errorf("No token is found with '%s'", input)
	case 1:
		return checksumToken(matches[0])
	}

	options := make([]string, 0, len(matches))
	for _, tok := range matches {
		options = append(options, fmt.Sprintf("%s (%s on %s)",
			tok.Symbol, tok.Name, networks.ChainName(tok.ChainID)))
	}
	picked := u.Choose("Which token did you mean?", options)
	return checksumToken(matches[picked])
}

func init() {
	rootCmd.AddCommand(addrCmd)
}
