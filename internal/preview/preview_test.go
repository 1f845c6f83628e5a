package preview

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/agiangrant/fileinput"
	"github.com/agiangrant/fileinput/render"
	"github.com/agiangrant/fileinput/retained"
)

func TestFindBrowserNone(t *testing.T) {
	orig := lookPath
	t.Cleanup(func() { lookPath = orig })
	lookPath = func(string) (string, error) { return "", exec.ErrNotFound }

	if _, err := FindBrowser(); !errors.Is(err, ErrNoBrowser) {
		t.Errorf("err = %v, want ErrNoBrowser", err)
	}
	if _, err := Screenshot(context.Background(), []byte("<p>x</p>"), Options{}); !errors.Is(err, ErrNoBrowser) {
		t.Errorf("Screenshot err = %v, want ErrNoBrowser", err)
	}
}

func TestFindBrowserOrder(t *testing.T) {
	orig := lookPath
	t.Cleanup(func() { lookPath = orig })
	lookPath = func(name string) (string, error) {
		if name == "chromium" || name == "chrome" {
			return "/usr/bin/" + name, nil
		}
		return "", exec.ErrNotFound
	}
	got, err := FindBrowser()
	if err != nil || got != "/usr/bin/chromium" {
		t.Errorf("FindBrowser() = %q, %v", got, err)
	}
}

// page renders a document holding one attached widget.
func page(t *testing.T) []byte {
	t.Helper()
	tree := retained.NewTree()
	control := retained.FileInput("upload", "")
	tree.Root().AddChild(control)
	fileinput.NewRegistry().Create(control)

	var buf bytes.Buffer
	if err := render.Page(&buf, "preview", tree.Root()); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func requireBrowser(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}
	if _, err := FindBrowser(); err != nil {
		t.Skip("no chrome binary found")
	}
}

func TestScreenshot(t *testing.T) {
	requireBrowser(t)
	png, err := Screenshot(context.Background(), page(t), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Errorf("not a PNG: % x", png[:min(8, len(png))])
	}
}

func TestInspect(t *testing.T) {
	requireBrowser(t)
	els, err := Inspect(context.Background(), page(t), "input, button", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(els) != 4 {
		t.Fatalf("found %d elements, want 4: %+v", len(els), els)
	}
	if els[0].Attrs["type"] != "file" || els[0].Visible {
		t.Errorf("native control = %+v, want hidden file input", els[0])
	}
	if els[1].Classes != "form-control" || !els[1].Visible {
		t.Errorf("text field = %+v", els[1])
	}
	if els[2].Text != "Remove" || els[2].Visible {
		t.Errorf("clear button = %+v, want hidden", els[2])
	}
	if els[3].Text != "Browse" || !els[3].Visible {
		t.Errorf("browse button = %+v", els[3])
	}
}
