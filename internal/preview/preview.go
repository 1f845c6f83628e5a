// Package preview loads rendered pages in headless Chrome to screenshot them
// and read back the live DOM.
package preview

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

// ErrNoBrowser is returned when no Chrome or Chromium binary can be found.
var ErrNoBrowser = errors.New("no chrome binary found")

// Options configures a browser session.
type Options struct {
	// ExecPath is the browser binary. Empty means search the usual names.
	ExecPath string
	Width    int
	Height   int
	Timeout  time.Duration
	Logger   *zap.Logger
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = 800
	}
	if o.Height <= 0 {
		o.Height = 200
	}
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

// browserNames are the binaries looked up on PATH, in order.
var browserNames = []string{
	"google-chrome",
	"google-chrome-stable",
	"chromium",
	"chromium-browser",
	"chrome",
	"headless-shell",
}

// lookPath is replaced in tests.
var lookPath = exec.LookPath

// FindBrowser returns the first browser binary on PATH.
func FindBrowser() (string, error) {
	for _, name := range browserNames {
		if p, err := lookPath(name); err == nil {
			return p, nil
		}
	}
	return "", ErrNoBrowser
}

// Element is what Inspect reports for one DOM element.
type Element struct {
	Tag     string            `json:"tag"`
	Classes string            `json:"classes"`
	Attrs   map[string]string `json:"attrs"`
	Visible bool              `json:"visible"`
	Text    string            `json:"text"`
}

// Screenshot renders page in the browser and returns a PNG of the whole
// page.
func Screenshot(ctx context.Context, page []byte, opts Options) ([]byte, error) {
	var buf []byte
	err := run(ctx, page, opts, chromedp.FullScreenshot(&buf, 100))
	if err != nil {
		return nil, fmt.Errorf("screenshot: %w", err)
	}
	return buf, nil
}

// Inspect renders page and returns the elements matching selector as the
// browser sees them, including computed visibility.
func Inspect(ctx context.Context, page []byte, selector string, opts Options) ([]Element, error) {
	var out []Element
	js := fmt.Sprintf(`Array.from(document.querySelectorAll(%q)).map(el => ({
	tag: el.tagName.toLowerCase(),
	classes: el.className,
	attrs: Object.fromEntries(Array.from(el.attributes).map(a => [a.name, a.value])),
	visible: getComputedStyle(el).display !== "none",
	text: el.textContent.trim()
}))`, selector)
	if err := run(ctx, page, opts, chromedp.Evaluate(js, &out)); err != nil {
		return nil, fmt.Errorf("inspect %s: %w", selector, err)
	}
	return out, nil
}

// run writes page to a temporary file, opens it in a fresh headless
// browser and runs actions once the body is ready.
func run(ctx context.Context, page []byte, opts Options, actions ...chromedp.Action) error {
	opts = opts.withDefaults()
	execPath := opts.ExecPath
	if execPath == "" {
		p, err := FindBrowser()
		if err != nil {
			return err
		}
		execPath = p
	}

	dir, err := os.MkdirTemp("", "fileinput-preview-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "index.html")
	if err := os.WriteFile(path, page, 0o644); err != nil {
		return err
	}

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.ExecPath(execPath),
		chromedp.Headless,
		chromedp.DisableGPU,
		chromedp.NoSandbox,
		chromedp.WindowSize(opts.Width, opts.Height),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("allow-file-access-from-files", true),
	)

	ctx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer allocCancel()
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	opts.Logger.Debug("preview loading",
		zap.String("browser", execPath),
		zap.String("page", path))

	tasks := chromedp.Tasks{
		chromedp.Navigate("file://" + filepath.ToSlash(path)),
		chromedp.WaitReady("body", chromedp.ByQuery),
	}
	tasks = append(tasks, actions...)
	return chromedp.Run(browserCtx, tasks)
}
