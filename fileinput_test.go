package fileinput

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/agiangrant/fileinput/retained"
)

// newPage returns a tree holding a single native control.
func newPage(t *testing.T) (*retained.Tree, *retained.Widget) {
	t.Helper()
	tree := retained.NewTree()
	control := retained.FileInput("attachment", "")
	tree.Root().AddChild(control)
	return tree, control
}

type changeCall struct {
	Control   *retained.Widget
	FileName  string
	Extension string
	Valid     bool
}

func TestFileNameFromPath(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{`C:\Users\a\report.PDF`, "report.PDF"},
		{"/home/a/archive.zip", "archive.zip"},
		{`a/b\c/d\e.txt`, "e.txt"},
		{`C:\fakepath\photo.png`, "photo.png"},
		{"plain.txt", "plain.txt"},
		{"dir/", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			if got := FileNameFromPath(tt.value); got != tt.want {
				t.Errorf("FileNameFromPath(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestExtensionFromPath(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{`C:\Users\a\report.PDF`, "pdf"},
		{"archive.tar.GZ", "gz"},
		{"README", "readme"},
		{".bashrc", "bashrc"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			if got := ExtensionFromPath(tt.value); got != tt.want {
				t.Errorf("ExtensionFromPath(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestExtensionAllowedIgnoresCase(t *testing.T) {
	allowed := []string{"pdf", "PNG", "Jpg"}
	for _, ext := range []string{"pdf", "PDF", "Pdf", "png", "PNG", "jpg", "JPG"} {
		if !ExtensionAllowed(ext, allowed) {
			t.Errorf("ExtensionAllowed(%q) = false, want true", ext)
		}
	}
	for _, ext := range []string{"zip", "", "pd"} {
		if ExtensionAllowed(ext, allowed) {
			t.Errorf("ExtensionAllowed(%q) = true, want false", ext)
		}
	}
}

func TestCreateBuildsMarkupAfterControl(t *testing.T) {
	tree, control := newPage(t)
	sibling := retained.Text("after", "")
	tree.Root().AddChild(sibling)

	fi := NewRegistry().Create(control)

	children := tree.Root().Children()
	if len(children) != 3 || children[0] != control || children[1] != fi.Container() || children[2] != sibling {
		t.Fatalf("root children = %v, want control, container, sibling", children)
	}
	if control.Visible() {
		t.Error("native control should be hidden")
	}
	if got := fi.Container().Classes(); got != "input-group fileinput" {
		t.Errorf("container classes = %q", got)
	}
	if got, _ := fi.Container().Attr("id"); got != "fileinput-"+fi.ID() {
		t.Errorf("container id = %q", got)
	}

	inner := fi.Container().Children()
	if len(inner) != 2 || inner[0] != fi.TextField() || inner[1] != fi.ButtonGroup() {
		t.Fatalf("container children = %v, want text field then button group", inner)
	}
	buttons := fi.ButtonGroup().Children()
	if len(buttons) != 2 || buttons[0] != fi.ClearButton() || buttons[1] != fi.BrowseButton() {
		t.Fatalf("group children = %v, want clear then browse", buttons)
	}

	if got := fi.TextField().Placeholder(); got != "Choose file..." {
		t.Errorf("placeholder = %q", got)
	}
	if got := fi.BrowseButton().Text(); got != "Browse" {
		t.Errorf("browse text = %q", got)
	}
	if got := fi.ClearButton().Text(); got != "Remove" {
		t.Errorf("clear text = %q", got)
	}
	if got := fi.BrowseButton().Classes(); got != "btn btn-success" {
		t.Errorf("browse classes = %q", got)
	}
	if got := fi.ClearButton().Classes(); got != "btn btn-danger" {
		t.Errorf("clear classes = %q", got)
	}
	if fi.ClearButton().Visible() {
		t.Error("clear button should start hidden with no file")
	}
	if !fi.IsValid() {
		t.Error("new widget should be valid")
	}
}

func TestCreateAppliesClassOverrides(t *testing.T) {
	_, control := newPage(t)
	fi := NewRegistry().Create(control, Overrides{}.
		WithButtonGroupClass("btn-group-sm").
		WithInputClass("input-lg").
		WithBrowseButtonClass("btn-primary").
		WithClearButtonClass("btn-outline-danger"))

	if got := fi.ButtonGroup().Classes(); got != "input-group-btn btn-group-sm" {
		t.Errorf("group classes = %q", got)
	}
	if got := fi.TextField().Classes(); got != "form-control input-lg" {
		t.Errorf("text field classes = %q", got)
	}
	if got := fi.BrowseButton().Classes(); got != "btn btn-primary" {
		t.Errorf("browse classes = %q", got)
	}
	if got := fi.ClearButton().Classes(); got != "btn btn-outline-danger" {
		t.Errorf("clear classes = %q", got)
	}
}

func TestCreateIsIdempotent(t *testing.T) {
	tree, control := newPage(t)
	r := NewRegistry()
	inits := 0
	first := r.Create(control, Overrides{}.WithInit(func(*retained.Widget) { inits++ }))
	second := r.Create(control, Overrides{}.WithShowClearButton(false))

	if first != second {
		t.Fatal("second Create should return the stored instance")
	}
	if inits != 1 {
		t.Errorf("init hook ran %d times, want 1", inits)
	}
	if r.Len() != 1 {
		t.Errorf("registry holds %d widgets, want 1", r.Len())
	}
	if n := len(tree.Root().FindByClass("fileinput")); n != 1 {
		t.Errorf("found %d containers, want 1", n)
	}
	if !first.Options().ShowClearButton {
		t.Error("second Create must not change options")
	}
}

func TestCreateNilControl(t *testing.T) {
	if fi := NewRegistry().Create(nil); fi != nil {
		t.Errorf("Create(nil) = %v, want nil", fi)
	}
}

func TestInitHookSeesBuiltWidget(t *testing.T) {
	_, control := newPage(t)
	r := NewRegistry()
	var got *retained.Widget
	var registered bool
	r.Create(control, Overrides{}.WithInit(func(c *retained.Widget) {
		got = c
		_, registered = r.Lookup(c)
	}))
	if got != control {
		t.Error("init hook should receive the native control")
	}
	if !registered {
		t.Error("widget should be registered before the init hook runs")
	}
}

func TestCreateSeedsFileNameFromValueAttribute(t *testing.T) {
	_, control := newPage(t)
	control.SetAttr("value", "seed.txt")
	fi := NewRegistry().Create(control)

	if fi.FileName() != "seed.txt" {
		t.Errorf("FileName = %q, want seed.txt", fi.FileName())
	}
	if got := fi.TextField().Value(); got != "seed.txt" {
		t.Errorf("text field = %q, want seed.txt", got)
	}
	if !fi.ClearButton().Visible() {
		t.Error("clear button should be visible for a seeded name")
	}
}

func TestChangeWindowsPathAllowed(t *testing.T) {
	_, control := newPage(t)
	var calls []changeCall
	fi := NewRegistry().Create(control, Overrides{}.
		WithAllowedExtensions("pdf", "png").
		WithChange(func(c *retained.Widget, name, ext string, valid bool) {
			calls = append(calls, changeCall{c, name, ext, valid})
		}))

	control.Select(`C:\Users\a\report.PDF`)

	want := []changeCall{{control, "report.PDF", "pdf", true}}
	if diff := cmp.Diff(want, calls, cmp.Comparer(func(a, b *retained.Widget) bool { return a == b })); diff != "" {
		t.Errorf("change hook calls mismatch (-want +got):\n%s", diff)
	}
	if fi.FileName() != "report.PDF" || fi.FileExtension() != "pdf" || !fi.IsValid() {
		t.Errorf("state = (%q, %q, %v)", fi.FileName(), fi.FileExtension(), fi.IsValid())
	}
	if got := fi.TextField().Value(); got != "report.PDF" {
		t.Errorf("text field = %q", got)
	}
	if !fi.ClearButton().Visible() {
		t.Error("clear button should be visible")
	}
}

func TestChangeUnixPathRejected(t *testing.T) {
	_, control := newPage(t)
	fi := NewRegistry().Create(control, Overrides{}.WithAllowedExtensions("pdf"))

	control.Select("/home/a/archive.zip")

	if fi.IsValid() {
		t.Error("zip should be invalid")
	}
	if fi.FileName() != "archive.zip" {
		t.Errorf("FileName = %q", fi.FileName())
	}
	if !fi.ClearButton().Visible() {
		t.Error("clear button should stay visible for an invalid selection")
	}
}

func TestChangeEmptyAllowedListRejectsEverything(t *testing.T) {
	_, control := newPage(t)
	fi := NewRegistry().Create(control, Overrides{}.WithAllowedExtensions())

	control.Select("notes.txt")
	if fi.IsValid() {
		t.Error("an empty allowed list should reject a selection")
	}
}

func TestChangeFallsBackToNativeValidity(t *testing.T) {
	_, control := newPage(t)
	fi := NewRegistry().Create(control)

	control.Select("anything.exe")
	if !fi.IsValid() {
		t.Error("without allowed extensions any selection is natively valid")
	}

	control.SetCustomValidity("virus scan pending")
	control.Select("anything.exe")
	if fi.IsValid() {
		t.Error("custom validity message should make the selection invalid")
	}
}

func TestCheckValidity(t *testing.T) {
	_, control := newPage(t)
	fi := NewRegistry().Create(control, Overrides{}.WithAllowedExtensions("PDF"))

	if !fi.CheckValidity() {
		t.Error("empty selection should be valid")
	}
	control.Select("/tmp/Report.pdf")
	if !fi.CheckValidity() {
		t.Error("pdf should match PDF")
	}
	control.Select("/tmp/report.doc")
	if fi.CheckValidity() {
		t.Error("doc should not match")
	}
}

func TestCheckValidityEmptySelectionIgnoresList(t *testing.T) {
	_, control := newPage(t)
	fi := NewRegistry().Create(control, Overrides{}.WithAllowedExtensions())
	if !fi.CheckValidity() {
		t.Error("empty selection is valid whatever the allowed list holds")
	}
}

func TestDisplayClearButton(t *testing.T) {
	tests := []struct {
		name     string
		show     bool
		file     string
		wantShow bool
	}{
		{"enabled with file", true, "a.txt", true},
		{"enabled without file", true, "", false},
		{"disabled with file", false, "a.txt", false},
		{"disabled without file", false, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, control := newPage(t)
			fi := NewRegistry().Create(control, Overrides{}.WithShowClearButton(tt.show))
			if tt.file != "" {
				control.Select(tt.file)
			}
			fi.DisplayClearButton()
			if got := fi.ClearButton().Visible(); got != tt.wantShow {
				t.Errorf("clear visible = %v, want %v", got, tt.wantShow)
			}
		})
	}
}

func TestSetFileName(t *testing.T) {
	_, control := newPage(t)
	fi := NewRegistry().Create(control, Overrides{}.WithAllowedExtensions("pdf"))
	control.Select("/tmp/a.pdf")

	fi.SetFileName("shown.zip")
	if got := fi.TextField().Value(); got != "shown.zip" {
		t.Errorf("text field = %q, want shown.zip", got)
	}
	if fi.FileName() != "a.pdf" || fi.FileExtension() != "pdf" || !fi.IsValid() {
		t.Error("explicit name must not touch name, extension or validity")
	}

	fi.SetFileName("")
	if got := fi.TextField().Value(); got != "a.pdf" {
		t.Errorf("text field = %q, want current file name", got)
	}
}

func TestClear(t *testing.T) {
	tree, control := newPage(t)
	var previous []string
	fi := NewRegistry().Create(control, Overrides{}.
		WithAllowedExtensions("pdf").
		WithClear(func(c *retained.Widget, prev string) {
			if c != control {
				t.Error("clear hook should receive the native control")
			}
			previous = append(previous, prev)
		}))
	control.SetAttr("value", "seed.pdf")
	control.Select("/docs/contract.pdf")

	fi.ClearButton().Click()

	if diff := cmp.Diff([]string{"contract.pdf"}, previous); diff != "" {
		t.Errorf("clear hook calls (-want +got):\n%s", diff)
	}
	if got := fi.TextField().Value(); got != "" {
		t.Errorf("text field = %q, want empty", got)
	}
	if fi.ClearButton().Visible() {
		t.Error("clear button should be hidden")
	}
	if control.Value() != "" || len(control.Files()) != 0 {
		t.Errorf("control still holds %q %v", control.Value(), control.Files())
	}
	if v, _ := control.Attr("value"); v != "" {
		t.Errorf("value attribute = %q, want empty", v)
	}
	if control.Parent() != tree.Root() || control.Index() != 0 {
		t.Error("control should be back in place after the temporary form")
	}
	if n := len(tree.Root().Children()); n != 2 {
		t.Errorf("root has %d children, want control and container", n)
	}
}

func TestClearKeepsStaleStateUntilNextChange(t *testing.T) {
	_, control := newPage(t)
	fi := NewRegistry().Create(control, Overrides{}.WithAllowedExtensions("pdf"))
	control.Select("/docs/old.zip")

	fi.Clear()

	if fi.FileName() != "old.zip" || fi.FileExtension() != "zip" || fi.IsValid() {
		t.Errorf("clear reset internal state: (%q, %q, %v)", fi.FileName(), fi.FileExtension(), fi.IsValid())
	}
	fi.Refresh()
	if got := fi.TextField().Value(); got != "old.zip" {
		t.Errorf("refresh after clear shows %q, want stale old.zip", got)
	}
}

func TestDestroy(t *testing.T) {
	tree, control := newPage(t)
	r := NewRegistry()
	calls := 0
	fi := r.Create(control, Overrides{}.WithChange(func(*retained.Widget, string, string, bool) { calls++ }))

	fi.Destroy()

	if fi.Container().Parent() != nil {
		t.Error("container should be removed")
	}
	if n := len(tree.Root().FindByClass("fileinput")); n != 0 {
		t.Errorf("found %d containers after destroy", n)
	}
	if !control.Visible() {
		t.Error("native control should be visible again")
	}
	if _, ok := r.Lookup(control); ok {
		t.Error("registry should forget the control")
	}

	control.Select("/tmp/x.txt")
	if calls != 0 {
		t.Error("destroyed widget should not react to changes")
	}

	again := r.Create(control)
	if again == fi || again.ID() == fi.ID() {
		t.Error("Create after Destroy should start fresh")
	}
}

func TestPageChangeHandlersSurviveWidget(t *testing.T) {
	tree, control := newPage(t)
	var own, page []string
	control.OnChange(func(e *retained.ChangeEvent) { own = append(own, e.Value) })
	tree.Root().OnChange(func(e *retained.ChangeEvent) { page = append(page, e.Value) })

	r := NewRegistry()
	fi := r.Create(control)
	control.Select("/tmp/a.txt")
	if fi.FileName() != "a.txt" {
		t.Errorf("FileName() = %q, want a.txt", fi.FileName())
	}
	fi.Refresh()
	control.Select("/tmp/b.txt")
	if fi.FileName() != "b.txt" {
		t.Errorf("FileName() = %q after refresh, want b.txt", fi.FileName())
	}

	fi.Destroy()
	control.Select("/tmp/c.txt")

	want := []string{"/tmp/a.txt", "/tmp/b.txt", "/tmp/c.txt"}
	if diff := cmp.Diff(want, own); diff != "" {
		t.Errorf("control handler calls mismatch (-want +got):\n%s", diff)
	}
	// The control's own handler consumes the event, so the root only sees
	// changes when that handler is gone.
	control.OnChange(nil)
	control.Select("/tmp/d.txt")
	if diff := cmp.Diff([]string{"/tmp/d.txt"}, page); diff != "" {
		t.Errorf("root handler calls mismatch (-want +got):\n%s", diff)
	}
}

func TestChangeBubblesPastWidget(t *testing.T) {
	tree, control := newPage(t)
	var page []string
	tree.Root().OnChange(func(e *retained.ChangeEvent) { page = append(page, e.Value) })

	fi := NewRegistry().Create(control)
	control.Select("/tmp/a.txt")
	fi.Refresh()
	control.Select("/tmp/b.txt")

	if diff := cmp.Diff([]string{"/tmp/a.txt", "/tmp/b.txt"}, page); diff != "" {
		t.Errorf("root handler calls mismatch (-want +got):\n%s", diff)
	}
}

func TestRefreshRebuildsOnce(t *testing.T) {
	tree, control := newPage(t)
	fi := NewRegistry().Create(control)
	old := fi.Container()

	fi.Refresh()

	if old.Parent() != nil {
		t.Error("old container should be removed")
	}
	if n := len(tree.Root().FindByClass("fileinput")); n != 1 {
		t.Errorf("found %d containers, want 1", n)
	}

	calls := 0
	fi.SetOptions(Overrides{}.WithChange(func(*retained.Widget, string, string, bool) { calls++ }))
	control.Select("a.txt")
	if calls != 1 {
		t.Errorf("change hook ran %d times after refresh, want 1", calls)
	}
}

func TestSetOptionsHidesClearButton(t *testing.T) {
	_, control := newPage(t)
	fi := NewRegistry().Create(control)
	control.Select("/tmp/a.txt")
	if !fi.ClearButton().Visible() {
		t.Fatal("clear button should be visible before the change")
	}

	fi.SetOptions(Overrides{}.WithShowClearButton(false))

	if fi.ClearButton().Visible() {
		t.Error("clear button should be hidden after SetOptions")
	}
	if got := fi.TextField().Value(); got != "a.txt" {
		t.Errorf("text field = %q, want a.txt after rebuild", got)
	}
}

func TestSetOptionsRelabels(t *testing.T) {
	_, control := newPage(t)
	fi := NewRegistry().Create(control)

	fi.SetOptions(Overrides{}.WithBrowseButtonText("Pick").WithPlaceholder("No file"))

	if got := fi.BrowseButton().Text(); got != "Pick" {
		t.Errorf("browse text = %q", got)
	}
	if got := fi.TextField().Placeholder(); got != "No file" {
		t.Errorf("placeholder = %q", got)
	}
	if got := fi.ClearButton().Text(); got != "Remove" {
		t.Errorf("clear text = %q, want untouched", got)
	}
}

func TestBrowseOpensPicker(t *testing.T) {
	_, control := newPage(t)
	control.SetAccept(".pdf", ".PNG")
	var requests []retained.PickRequest
	control.SetPicker(retained.PickerFunc(func(c *retained.Widget, req retained.PickRequest) {
		requests = append(requests, req)
		c.Select("/home/me/scan.png")
	}))
	fi := NewRegistry().Create(control, Overrides{}.WithAllowedExtensions("png"))

	fi.BrowseButton().Click()

	if len(requests) != 1 {
		t.Fatalf("picker opened %d times, want 1", len(requests))
	}
	want := []retained.FileFilter{{Name: "Accepted files", Extensions: []string{"pdf", "png"}}}
	if diff := cmp.Diff(want, requests[0].Filters); diff != "" {
		t.Errorf("filters mismatch (-want +got):\n%s", diff)
	}
	if fi.FileName() != "scan.png" || !fi.IsValid() {
		t.Errorf("state = (%q, %v)", fi.FileName(), fi.IsValid())
	}
}

func TestTextFieldYieldsFocus(t *testing.T) {
	tree, control := newPage(t)
	fi := NewRegistry().Create(control)

	fi.TextField().Focus()

	if tree.Focused() != nil {
		t.Errorf("focused = %v, want nil", tree.Focused())
	}
	if fi.TextField().Focused() {
		t.Error("text field should not keep focus")
	}
	if fi.TextField().Disabled() {
		t.Error("text field must not be disabled")
	}
}

func TestChangeLogsValue(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	_, control := newPage(t)
	NewRegistry(WithLogger(zap.New(core))).Create(control)

	control.Select("/srv/upload/cv.pdf")

	entries := logs.FilterMessage("fileinput change").All()
	if len(entries) != 1 {
		t.Fatalf("got %d change log entries, want 1", len(entries))
	}
	if got := entries[0].ContextMap()["value"]; got != "/srv/upload/cv.pdf" {
		t.Errorf("logged value = %v", got)
	}
}

func TestRegistryLocale(t *testing.T) {
	_, control := newPage(t)
	fi := NewRegistry(WithLocale(LocaleFor("de"))).Create(control, Overrides{}.WithClearButtonText("Weg"))

	if got := fi.BrowseButton().Text(); got != "Durchsuchen" {
		t.Errorf("browse text = %q", got)
	}
	if got := fi.ClearButton().Text(); got != "Weg" {
		t.Errorf("override should beat locale, got %q", got)
	}
}

func TestDetachedControl(t *testing.T) {
	control := retained.FileInput("", "")
	fi := NewRegistry().Create(control)

	if fi.Container().Parent() != nil {
		t.Error("detached control has nowhere to insert the container")
	}
	control.Select("a.txt")
	if fi.TextField().Value() != "a.txt" {
		t.Error("detached widget should still track changes")
	}
	fi.Clear()
	if control.Parent() != nil {
		t.Error("clear should leave a detached control detached")
	}
}
