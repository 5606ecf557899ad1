package cmd

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lazyhash/tokenpick/config"
	"github.com/lazyhash/tokenpick/networks"
	"github.com/lazyhash/tokenpick/search"
	"github.com/lazyhash/tokenpick/tokens"
	"github.com/lazyhash/tokenpick/ui"
)

// settleTimeout bounds how long the prompt waits for a debounced
// search to come back before giving up on this render.
const settleTimeout = 5 * time.Second

const searchHelp = `Type to search, or enter a listed number to copy that address.
Commands: :m loads more results, :f N toggles favorite N, :q or an empty line quits.`

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Interactively search the token list",
	Long: `Opens an interactive prompt over the token list. Every line you type is
searched as a query across symbol, name, chain and address; results come
back page by page and duplicates across pages are dropped.

Entering the number of a listed result copies its checksummed address to
the clipboard and records the selection. ':f N' toggles the favorite flag
of result N for every chain that address is deployed on, ':m' loads the
next page when one is available.`,
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

		loop := newSearchLoop(ctx, appUI, appClipboard, svc, search.Options{
			Debounce:  config.Debounce(),
			Cooldown:  config.LoadMoreCooldown(),
			LookAhead: config.LookAhead,
		})
		defer loop.close()
		loop.run(ctx, strings.Join(args, " "))
	},
}

// searchLoop drives one interactive search session. The session calls
// back on its own goroutines; snapshots are queued on updates and all
// terminal output happens on the prompt goroutine.
type searchLoop struct {
	ui       ui.UI
	clip     ui.Clipboard
	session  *search.Session
	updates  chan search.Snapshot
	debounce time.Duration
}

func newSearchLoop(ctx context.Context, u ui.UI, clip ui.Clipboard, svc tokens.Service, opts search.Options) *searchLoop {
	loop := &searchLoop{
		ui:       u,
		clip:     clip,
		updates:  make(chan search.Snapshot, 16),
		debounce: opts.Debounce,
	}
	if loop.debounce <= 0 {
		loop.debounce = search.DefaultDebounce
	}
	opts.OnUpdate = loop.enqueue
	loop.session = search.NewSession(ctx, svc, opts)
	return loop
}

func (l *searchLoop) enqueue(snap search.Snapshot) {
	select {
	case l.updates <- snap:
	default:
	}
}

func (l *searchLoop) run(ctx context.Context, initial string) {
	l.ui.Info(searchHelp)
	if strings.TrimSpace(initial) != "" {
		l.apply(initial)
	}
	for {
		input := strings.TrimSpace(l.ui.Ask(nil))
		if quit := l.handle(ctx, input); quit {
			return
		}
	}
}

// handle dispatches one prompt line and reports whether to quit.
func (l *searchLoop) handle(ctx context.Context, input string) bool {
	switch {
	case input == "" || input == ":q":
		return true

	case input == ":m":
		if err := l.session.LoadMore(ctx); err != nil {
			// the page cursor is rolled back, :m again retries
			l.ui.Warn("%s", err)
		}
		l.render(l.session.Snapshot())

	case strings.HasPrefix(input, ":f"):
		index, ok := parseIndex(strings.TrimSpace(strings.TrimPrefix(input, ":f")))
		if !ok {
			l.ui.Error("usage: :f N where N is a listed number")
			return false
		}
		if err := l.session.ToggleFavorite(ctx, index-1); err != nil {
			l.ui.Error("toggling the favorite failed: %s", err)
			return false
		}
		// browsing near the end of the list prefetches the next page
		_ = l.session.NotifyVisible(ctx, index-1)
		l.render(l.session.Snapshot())

	default:
		if index, ok := parseIndex(input); ok {
			l.selectResult(ctx, index)
			return false
		}
		l.apply(input)
	}
	return false
}

// apply feeds a query to the session and waits for the debounced
// search to settle before rendering.
func (l *searchLoop) apply(input string) {
	query := strings.TrimSpace(input)
	// drop queued updates from earlier actions, await must only see
	// snapshots born after this query
	for len(l.updates) > 0 {
		<-l.updates
	}
	l.session.SetQuery(query)
	snap, settled := l.await(query)
	if !settled {
		l.ui.Warn("the search did not settle in time, showing what arrived")
		snap = l.session.Snapshot()
	}
	l.render(snap)
}

// await drains snapshots until one for query reports loading done.
func (l *searchLoop) await(query string) (search.Snapshot, bool) {
	deadline := time.NewTimer(l.debounce + settleTimeout)
	defer deadline.Stop()
	for {
		select {
		case snap := <-l.updates:
			if snap.Query == query && !snap.Loading {
				return snap, true
			}
		case <-deadline.C:
			return search.Snapshot{}, false
		}
	}
}

func (l *searchLoop) selectResult(ctx context.Context, index int) {
	address, err := l.session.Select(ctx, index-1)
	if address == "" {
		l.ui.Error("%s", err)
		return
	}
	if err != nil {
		// the address is still usable, only the history write failed
		l.ui.Warn("recording the selection failed: %s", err)
	}
	if err := l.clip.Copy(address); err != nil {
		l.ui.Warn("clipboard copy failed: %s", err)
		l.ui.Interpret(address)
		return
	}
	l.ui.Success("%s copied to clipboard", address)
	_ = l.session.NotifyVisible(ctx, index-1)
}

func (l *searchLoop) render(snap search.Snapshot) {
	if snap.Err != nil {
		l.ui.Warn("search failed: %s (previous results kept)", snap.Err)
	}
	if len(snap.Results) == 0 {
		if snap.Query != "" && snap.Err == nil {
			l.ui.Info("Nothing matches '%s'.", snap.Query)
		}
		return
	}
	rows := make([][]string, 0, len(snap.Results))
	for i, r := range snap.Results {
		star := ""
		if r.Favorite {
			star = "★"
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			star,
			r.Symbol,
			r.Name,
			networks.ChainName(r.ChainID),
			r.Address,
		})
	}
	l.ui.Table([]string{"#", "", "Symbol", "Name", "Chain", "Address"}, rows)
	if snap.HasMore {
		l.ui.Info("%d results, more available (:m loads them).", len(snap.Results))
	} else {
		l.ui.Info("%d results.", len(snap.Results))
	}
}

func (l *searchLoop) close() {
	l.session.Close()
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
