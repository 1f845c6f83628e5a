package retained

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// ids lists the ids of ws for readable diffs.
func ids(ws []*Widget) []WidgetID {
	out := make([]WidgetID, len(ws))
	for i, w := range ws {
		out[i] = w.ID()
	}
	return out
}

func TestBuilders(t *testing.T) {
	tests := []struct {
		name     string
		widget   *Widget
		wantKind WidgetKind
	}{
		{"Container", Container("input-group"), KindContainer},
		{"Group", Group("input-group-btn"), KindGroup},
		{"Text", Text("Hello", "label"), KindText},
		{"Button", Button("Browse", "btn"), KindButton},
		{"TextField", TextField("Choose file...", "form-control"), KindTextField},
		{"FileInput", FileInput("upload", ""), KindFileInput},
		{"Form", Form(""), KindForm},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.widget.Kind() != tt.wantKind {
				t.Errorf("Kind() = %v, want %v", tt.widget.Kind(), tt.wantKind)
			}
			if !tt.widget.Visible() {
				t.Error("new widgets should be visible")
			}
		})
	}
}

func TestButtonType(t *testing.T) {
	if v, _ := Button("x", "").Attr("type"); v != "button" {
		t.Errorf("type attr = %q, want button", v)
	}
}

func TestWidgetIDsUnique(t *testing.T) {
	seen := map[WidgetID]bool{}
	for i := 0; i < 100; i++ {
		id := NewWidget(KindText).ID()
		if seen[id] {
			t.Fatalf("duplicate id %d", id)
		}
		seen[id] = true
	}
}

func TestInsertChild(t *testing.T) {
	parent := Container("")
	a, b, c, d := Text("a", ""), Text("b", ""), Text("c", ""), Text("d", "")

	parent.AddChild(a).AddChild(b)
	parent.PrependChild(c)
	parent.InsertChild(1, d)

	if diff := cmp.Diff(ids([]*Widget{c, d, a, b}), ids(parent.Children())); diff != "" {
		t.Errorf("children mismatch (-want +got):\n%s", diff)
	}
	if a.Parent() != parent || a.Index() != 2 {
		t.Errorf("a parent/index = %v/%d", a.Parent(), a.Index())
	}
}

func TestInsertChildMovesBetweenParents(t *testing.T) {
	first, second := Container(""), Container("")
	child := Text("x", "")
	first.AddChild(child)
	second.AddChild(child)

	if len(first.Children()) != 0 {
		t.Error("child should leave its previous parent")
	}
	if child.Parent() != second {
		t.Error("child should belong to the new parent")
	}
}

func TestInsertChildIgnoresSelfAndNil(t *testing.T) {
	w := Container("")
	w.AddChild(nil).AddChild(w)
	if len(w.Children()) != 0 {
		t.Errorf("children = %v", w.Children())
	}
}

func TestTreeMembershipFollowsParent(t *testing.T) {
	tree := NewTree()
	sub := Container("", Text("leaf", ""))
	leaf := sub.Children()[0]

	tree.Root().AddChild(sub)
	if leaf.Tree() != tree {
		t.Error("descendants should join the tree")
	}
	sub.RemoveFromParent()
	if leaf.Tree() != nil || sub.Parent() != nil {
		t.Error("descendants should leave the tree")
	}
}

func TestInsertAfter(t *testing.T) {
	parent := Container("")
	a, b, c := Text("a", ""), Text("b", ""), Text("c", "")
	parent.AddChild(a).AddChild(b)

	if !a.InsertAfter(c) {
		t.Fatal("InsertAfter returned false")
	}
	if diff := cmp.Diff(ids([]*Widget{a, c, b}), ids(parent.Children())); diff != "" {
		t.Errorf("children mismatch (-want +got):\n%s", diff)
	}
	if Text("orphan", "").InsertAfter(Text("x", "")) {
		t.Error("InsertAfter without a parent should return false")
	}
}

func TestWrapUnwrap(t *testing.T) {
	parent := Container("")
	a, b, c := Text("a", ""), Text("b", ""), Text("c", "")
	parent.AddChild(a).AddChild(b).AddChild(c)
	form := Form("")

	b.Wrap(form)
	if diff := cmp.Diff(ids([]*Widget{a, form, c}), ids(parent.Children())); diff != "" {
		t.Errorf("after wrap (-want +got):\n%s", diff)
	}
	if b.Parent() != form {
		t.Error("b should be inside the wrapper")
	}

	b.Unwrap()
	if diff := cmp.Diff(ids([]*Widget{a, b, c}), ids(parent.Children())); diff != "" {
		t.Errorf("after unwrap (-want +got):\n%s", diff)
	}
	if form.Parent() != nil || len(form.Children()) != 0 {
		t.Error("wrapper should be empty and detached")
	}
}

func TestWrapDetached(t *testing.T) {
	w := Text("x", "")
	form := Form("")
	w.Wrap(form)
	if w.Parent() != form {
		t.Fatal("detached widget should end up inside the wrapper")
	}
	w.Unwrap()
	if w.Parent() != nil {
		t.Error("unwrapping from a parentless wrapper should detach")
	}
}

func TestFindByClassAndContains(t *testing.T) {
	target := Button("x", "btn btn-danger")
	root := Container("outer", Group("btn-group", Button("y", "btn"), target))

	if got := root.FindByClass("btn"); len(got) != 2 {
		t.Errorf("found %d .btn widgets, want 2", len(got))
	}
	if got := root.FindByClass("btn-danger"); len(got) != 1 || got[0] != target {
		t.Errorf("FindByClass(btn-danger) = %v", got)
	}
	if !root.Contains(target) || target.Contains(root) {
		t.Error("Contains is wrong")
	}
}

func TestWalkSkipsSubtree(t *testing.T) {
	hidden := Container("", Text("inside", ""))
	root := Container("", hidden, Text("after", ""))
	var seen []string
	root.Walk(func(w *Widget) bool {
		if w.Kind() == KindText {
			seen = append(seen, w.Text())
		}
		return w != hidden
	})
	if diff := cmp.Diff([]string{"after"}, seen); diff != "" {
		t.Errorf("walk mismatch (-want +got):\n%s", diff)
	}
}

func TestClasses(t *testing.T) {
	w := NewWidget(KindButton).SetClasses("btn  btn-success btn")
	if got := w.Classes(); got != "btn btn-success" {
		t.Errorf("Classes() = %q", got)
	}
	w.AddClass("active btn")
	w.RemoveClass("btn-success")
	if diff := cmp.Diff([]string{"btn", "active"}, w.ClassList()); diff != "" {
		t.Errorf("class list mismatch (-want +got):\n%s", diff)
	}
	if !w.HasClass("active") || w.HasClass("btn-success") {
		t.Error("HasClass is wrong")
	}
}

func TestJoinClasses(t *testing.T) {
	tests := []struct {
		parts []string
		want  string
	}{
		{[]string{"btn", "btn-success"}, "btn btn-success"},
		{[]string{"form-control", ""}, "form-control"},
		{[]string{" a  b ", "c"}, "a b c"},
		{nil, ""},
	}
	for _, tt := range tests {
		if got := JoinClasses(tt.parts...); got != tt.want {
			t.Errorf("JoinClasses(%q) = %q, want %q", tt.parts, got, tt.want)
		}
	}
}

func TestAttrs(t *testing.T) {
	w := NewWidget(KindFileInput).
		SetAttr("name", "upload").
		SetAttr("accept", ".pdf").
		SetAttr("id", "f1")
	w.RemoveAttr("accept")

	if diff := cmp.Diff([]string{"id", "name"}, w.AttrNames()); diff != "" {
		t.Errorf("attr names (-want +got):\n%s", diff)
	}
	if _, ok := w.Attr("accept"); ok {
		t.Error("accept should be removed")
	}
}

func TestSetValueOnFileInputClearsFiles(t *testing.T) {
	w := FileInput("", "")
	w.Select("/a.txt", "/b.txt")
	if len(w.Files()) != 2 {
		t.Fatalf("files = %v", w.Files())
	}
	w.SetValue("")
	if w.Files() != nil || w.Value() != "" {
		t.Errorf("files = %v value = %q", w.Files(), w.Value())
	}
}
