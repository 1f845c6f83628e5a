package retained

// Tree is a document: a root widget plus the dispatcher that routes its
// events and tracks focus.
type Tree struct {
	root       *Widget
	dispatcher *EventDispatcher
}

// NewTree creates a tree with an empty root container.
func NewTree() *Tree {
	t := &Tree{}
	t.dispatcher = NewEventDispatcher(t)
	t.root = NewWidget(KindContainer)
	t.root.setTree(t)
	return t
}

// Root returns the root widget.
func (t *Tree) Root() *Widget {
	return t.root
}

// Dispatcher returns the tree's event dispatcher.
func (t *Tree) Dispatcher() *EventDispatcher {
	return t.dispatcher
}

// Focused returns the widget holding keyboard focus, or nil.
func (t *Tree) Focused() *Widget {
	return t.dispatcher.FocusedWidget()
}

// Focusable returns the visible, enabled buttons, text fields and file
// inputs in document order. Hidden subtrees are skipped.
func (t *Tree) Focusable() []*Widget {
	var out []*Widget
	t.root.Walk(func(w *Widget) bool {
		if !w.Visible() {
			return false
		}
		switch w.Kind() {
		case KindButton, KindTextField, KindFileInput:
			if !w.Disabled() {
				out = append(out, w)
			}
		}
		return true
	})
	return out
}
