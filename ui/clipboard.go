package ui

import (
	"fmt"
	"os/exec"
	"strings"
	"sync"
)

// Clipboard is the sink a selected address is written to.
type Clipboard interface {
	Copy(text string) error
}

// clipboardTools are tried in order; the first one on PATH wins. Each
// tool reads the payload from stdin.
var clipboardTools = [][]string{
	{"wl-copy"},
	{"xclip", "-selection", "clipboard"},
	{"xsel", "--clipboard", "--input"},
	{"pbcopy"},
}

// SystemClipboard copies via the platform clipboard tool (wl-copy on
// Wayland, xclip/xsel on X11, pbcopy on macOS). The tool is detected
// once on first use.
type SystemClipboard struct {
	once sync.Once
	tool []string
}

// NewSystemClipboard creates a SystemClipboard. Tool detection is
// deferred until the first Copy so construction never fails.
func NewSystemClipboard() *SystemClipboard {
	return &SystemClipboard{}
}

func (c *SystemClipboard) detect() {
	for _, tool := range clipboardTools {
		if _, err := exec.LookPath(tool[0]); err == nil {
			c.tool = tool
			return
		}
	}
}

func (c *SystemClipboard) Copy(text string) error {
	c.once.Do(c.detect)
	if c.tool == nil {
		return fmt.Errorf("no clipboard tool found (tried wl-copy, xclip, xsel, pbcopy)")
	}
	cmd := exec.Command(c.tool[0], c.tool[1:]...)
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s failed: %w", c.tool[0], err)
	}
	return nil
}

// RecordingClipboard captures copied text for tests. Set Err to make
// every Copy fail with it.
type RecordingClipboard struct {
	Err error

	mu     sync.Mutex
	copied []string
}

func (c *RecordingClipboard) Copy(text string) error {
	if c.Err != nil {
		return c.Err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.copied = append(c.copied, text)
	return nil
}

// Copied returns every successfully copied payload in order.
func (c *RecordingClipboard) Copied() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.copied))
	copy(out, c.copied)
	return out
}

// Last returns the most recent payload, or "" when nothing was copied.
func (c *RecordingClipboard) Last() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.copied) == 0 {
		return ""
	}
	return c.copied[len(c.copied)-1]
}
