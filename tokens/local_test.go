package tokens_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/lazyhash/tokenpick/tokens"
)

var (
	_ tokens.Service = &tokens.LocalService{}
	_ tokens.Service = &tokens.Scripted{}
)

func newTestService(t *testing.T) *tokens.LocalService {
	t.Helper()
	svc := tokens.NewLocalService(t.TempDir(), true, 10)
	if err := svc.Initialize(context.Background()); err != nil {
		t.Fatalf("Initialize failed: %s", err)
	}
	t.Cleanup(func() { svc.Close() })
	return svc
}

func TestSearchTokensBeforeInitialize(t *testing.T) {
	svc := tokens.NewLocalService(t.TempDir(), true, 10)
	_, err := svc.SearchTokens(context.Background(), "usdc", 0)
	if !errors.Is(err, tokens.ErrNotInitialized) {
		t.Errorf("SearchTokens before Initialize returned %v, want ErrNotInitialized", err)
	}
}

func TestSearchTokensEmptyQuery(t *testing.T) {
	svc := newTestService(t)
	page, err := svc.SearchTokens(context.Background(), "   ", 0)
	if err != nil {
		t.Fatalf("SearchTokens on blank query failed: %s", err)
	}
	if len(page.Results) != 0 || page.HasMore {
		t.Errorf("blank query should return an empty page, got %d results hasMore=%t",
			len(page.Results), page.HasMore)
	}
}

func TestSearchTokensPaging(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	page0, err := svc.SearchTokens(ctx, "usd", 0)
	if err != nil {
		t.Fatalf("page 0 failed: %s", err)
	}
	if len(page0.Results) != 10 {
		t.Fatalf("page 0 returned %d results, want the full page of 10", len(page0.Results))
	}
	if !page0.HasMore {
		t.Fatalf("the catalog has more than 10 usd tokens, page 0 should report more")
	}

	page1, err := svc.SearchTokens(ctx, "usd", 1)
	if err != nil {
		t.Fatalf("page 1 failed: %s", err)
	}
	if len(page1.Results) == 0 {
		t.Fatalf("page 1 returned nothing")
	}

	seen := map[string]bool{}
	for _, r := range append(page0.Results, page1.Results...) {
		if seen[r.Key()] {
			t.Errorf("key %s appears on both pages", r.Key())
		}
		seen[r.Key()] = true
	}
}

func TestToggleFavoriteAnnotatesResults(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// DAI shares one address on optimism and arbitrum, favoriting it
	// must mark both entries
	page, err := svc.SearchTokens(ctx, "dai", 0)
	if err != nil {
		t.Fatalf("search failed: %s", err)
	}
	shared := "0xDA10009cBd5D07dd0CeCc66161FC93D7c9000da1"
	found := 0
	for _, r := range page.Results {
		if r.Favorite {
			t.Errorf("nothing is favorited yet, got favorite %s", r.Key())
		}
		if strings.EqualFold(r.Address, shared) {
			found++
		}
	}
	if found != 2 {
		t.Fatalf("expected the shared DAI address on 2 chains in page 0, got %d", found)
	}

	if err := svc.ToggleFavorite(ctx, shared); err != nil {
		t.Fatalf("ToggleFavorite failed: %s", err)
	}

	// the second search hits the page cache, the flag must still be
	// fresh
	page, err = svc.SearchTokens(ctx, "dai", 0)
	if err != nil {
		t.Fatalf("search after toggle failed: %s", err)
	}
	favorited := 0
	for _, r := range page.Results {
		if strings.EqualFold(r.Address, shared) {
			if !r.Favorite {
				t.Errorf("entry %s should be favorited", r.Key())
			}
			favorited++
		} else if r.Favorite {
			t.Errorf("entry %s should not be favorited", r.Key())
		}
	}
	if favorited != 2 {
		t.Errorf("favorite flag set on %d entries of the shared address, want 2", favorited)
	}
}

func TestSearchFloatsFavoritesInPage(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	page, err := svc.SearchTokens(ctx, "usd", 0)
	if err != nil {
		t.Fatalf("search failed: %s", err)
	}
	if len(page.Results) < 2 {
		t.Fatalf("need at least 2 results to observe ordering, got %d", len(page.Results))
	}
	last := page.Results[len(page.Results)-1]

	if err := svc.ToggleFavorite(ctx, last.Address); err != nil {
		t.Fatal(err)
	}
	page, err = svc.SearchTokens(ctx, "usd", 0)
	if err != nil {
		t.Fatalf("search after toggle failed: %s", err)
	}
	if !strings.EqualFold(page.Results[0].Address, last.Address) {
		t.Errorf("the favorited %s should lead the page, got %s first",
			last.Key(), page.Results[0].Key())
	}
	if !page.Results[0].Favorite {
		t.Errorf("the leading entry lost its favorite flag")
	}
}

func TestToggleFavoriteRejectsGarbage(t *testing.T) {
	svc := newTestService(t)
	if err := svc.ToggleFavorite(context.Background(), "not-an-address"); err == nil {
		t.Errorf("ToggleFavorite on a malformed address should fail")
	}
}

func TestChainRestrictedService(t *testing.T) {
	svc := tokens.NewChainLocalService(t.TempDir(), true, 10, 42161)
	if err := svc.Initialize(context.Background()); err != nil {
		t.Fatalf("Initialize failed: %s", err)
	}
	t.Cleanup(func() { svc.Close() })
	ctx := context.Background()

	page, err := svc.SearchTokens(ctx, "dai", 0)
	if err != nil {
		t.Fatalf("search failed: %s", err)
	}
	if len(page.Results) == 0 {
		t.Fatal("restricted search returned nothing for dai")
	}
	for _, r := range page.Results {
		if r.ChainID != 42161 {
			t.Errorf("result %s leaked from chain %d into the arbitrum-only service",
				r.Key(), r.ChainID)
		}
	}

	// the shared DAI address resolves to one entry here, not two
	shared := "0xDA10009cBd5D07dd0CeCc66161FC93D7c9000da1"
	if err := svc.ToggleFavorite(ctx, shared); err != nil {
		t.Fatal(err)
	}
	favs, err := svc.Favorites(ctx)
	if err != nil {
		t.Fatalf("Favorites failed: %s", err)
	}
	if len(favs) != 1 || favs[0].ChainID != 42161 {
		t.Fatalf("restricted favorites should hold one arbitrum entry, got %d", len(favs))
	}
}

func TestFavoritesOrderedByRecency(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	usdc := "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"
	dai := "0xDA10009cBd5D07dd0CeCc66161FC93D7c9000da1"

	if err := svc.ToggleFavorite(ctx, usdc); err != nil {
		t.Fatal(err)
	}
	if err := svc.ToggleFavorite(ctx, dai); err != nil {
		t.Fatal(err)
	}
	if err := svc.UpdateLastSelected(ctx, dai); err != nil {
		t.Fatal(err)
	}

	favs, err := svc.Favorites(ctx)
	if err != nil {
		t.Fatalf("Favorites failed: %s", err)
	}
	// dai resolves to two catalog entries, usdc to one
	if len(favs) != 3 {
		t.Fatalf("Favorites returned %d entries, want 3", len(favs))
	}
	for i := 0; i < 2; i++ {
		if !strings.EqualFold(favs[i].Address, dai) {
			t.Errorf("entry %d should be the recently selected dai, got %s", i, favs[i].Key())
		}
	}
	if !strings.EqualFold(favs[2].Address, usdc) {
		t.Errorf("last entry should be usdc, got %s", favs[2].Key())
	}
	for _, r := range favs {
		if !r.Favorite {
			t.Errorf("favorites listing returned %s without the favorite flag", r.Key())
		}
	}
}
