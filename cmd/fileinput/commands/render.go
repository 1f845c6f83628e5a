package commands

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/agiangrant/fileinput/render"
)

// Render implements 'fileinput render': it builds a widget, optionally
// applies a selection, and writes the markup.
func Render(args []string) error {
	fs := newFlagSet("render")
	format := fs.String("format", "page", "output format: page, html or terminal")
	out := fs.StringP("out", "o", "", "output file (default stdout)")
	title := fs.String("title", "File upload", "page title")
	css := fs.StringSlice("css", nil, "stylesheet URLs to link from the page")
	value := fs.String("value", "", "simulate selecting this path")
	accept := fs.StringSlice("accept", nil, "accepted types on the native control")
	e, err := setup(fs, args)
	if err != nil {
		return err
	}

	tree, fi := e.page("file", *accept)
	if *value != "" {
		fi.Control().Select(*value)
	}

	var buf bytes.Buffer
	switch *format {
	case "page":
		err = render.Page(&buf, *title, tree.Root(), *css...)
	case "html":
		err = render.HTML(&buf, tree.Root())
	case "terminal":
		_, err = io.WriteString(&buf, render.Terminal(tree.Root(), render.DefaultTerminalStyles())+"\n")
	default:
		return usage("render", fmt.Sprintf("unknown format %q", *format))
	}
	if err != nil {
		return err
	}

	if *out == "" {
		_, err = Stdout.Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(*out, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", *out, err)
	}
	fmt.Fprintf(Stdout, "Wrote %s\n", *out)
	return nil
}
