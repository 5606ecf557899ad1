package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/lazyhash/tokenpick/checksum"
	"github.com/lazyhash/tokenpick/common"
	"github.com/lazyhash/tokenpick/config"
	"github.com/lazyhash/tokenpick/networks"
	"github.com/lazyhash/tokenpick/tokens"
	"github.com/lazyhash/tokenpick/ui"
)

// newLocalService builds the token service for the configured data dir
// and network restriction.
func newLocalService() (*tokens.LocalService, error) {
	chainID, err := config.ChainID()
	if err != nil {
		return nil, err
	}
	if chainID != 0 {
		return tokens.NewChainLocalService(config.DataDir, config.MemIndex, config.PageSize, chainID), nil
	}
	return tokens.NewLocalService(config.DataDir, config.MemIndex, config.PageSize), nil
}

// initService opens the index and profile behind a spinner, since the
// first run indexes the whole catalog.
func initService(ctx context.Context, u ui.UI, svc *tokens.LocalService) error {
	stop := u.Spinner("Opening the token index...")
	err := svc.Initialize(ctx)
	stop()
	return err
}

func describeToken(tok common.Token, checksummed string) string {
	return fmt.Sprintf("%s (%s on %s)", checksummed, tok.Symbol, networks.ChainName(tok.ChainID))
}

// checksumToken returns the checksummed address of tok, the line shown
// to the user for it and the chain the token lives on.
func checksumToken(tok common.Token) (string, string, int64, error) {
	checksummed, err := checksum.Encode(tok.Address)
	if err != nil {
		return "", "", 0, err
	}
	return checksummed, describeToken(tok, checksummed), tok.ChainID, nil
}

// parseIndex interprets input as a 1-based list index.
func parseIndex(input string) (int, bool) {
	n, err := strconv.Atoi(input)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
