package commands

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/agiangrant/fileinput/internal/preview"
	"github.com/agiangrant/fileinput/render"
)

// Screenshot implements 'fileinput screenshot': the rendered page is loaded
// in headless Chrome and saved as a PNG.
func Screenshot(args []string) error {
	fs := newFlagSet("screenshot")
	out := fs.StringP("out", "o", "fileinput.png", "PNG file to write")
	browser := fs.String("browser", "", "Chrome or Chromium binary (default: search PATH)")
	width := fs.Int("width", 800, "viewport width")
	height := fs.Int("height", 200, "viewport height")
	timeout := fs.Duration("timeout", 30*time.Second, "give up after this long")
	css := fs.StringSlice("css", nil, "stylesheet URLs to link from the page")
	value := fs.String("value", "", "simulate selecting this path")
	e, err := setup(fs, args)
	if err != nil {
		return err
	}

	tree, fi := e.page("file", nil)
	if *value != "" {
		fi.Control().Select(*value)
	}
	var page bytes.Buffer
	if err := render.Page(&page, "fileinput", tree.Root(), *css...); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	png, err := preview.Screenshot(ctx, page.Bytes(), preview.Options{
		ExecPath: *browser,
		Width:    *width,
		Height:   *height,
		Timeout:  *timeout,
		Logger:   e.logger,
	})
	if err != nil {
		return err
	}
	if err := os.WriteFile(*out, png, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", *out, err)
	}
	fmt.Fprintf(Stdout, "Wrote %s (%d bytes)\n", *out, len(png))
	return nil
}
