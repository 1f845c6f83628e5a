// Package retained provides the retained widget tree that hosts form widgets.
//
// A Tree is a document of Widgets: nodes with classes, attributes, text,
// visibility and focus state. Click, focus, blur and change events travel
// through capture, target and bubble phases the same way for every widget,
// and some widgets (file inputs, forms) carry default actions that run after
// dispatch unless a handler prevents them.
//
// Widgets are safe for concurrent property updates. Handlers are always
// invoked without any widget lock held, so a handler may freely mutate the
// tree it is attached to.
package retained

import (
	"slices"
	"sort"
	"sync"
	"sync/atomic"
)

// WidgetID uniquely identifies a widget for the lifetime of the process.
type WidgetID uint64

var nextWidgetID atomic.Uint64

func newWidgetID() WidgetID {
	return WidgetID(nextWidgetID.Add(1))
}

// WidgetKind identifies the type of widget for rendering.
type WidgetKind string

const (
	KindContainer WidgetKind = "container"
	KindGroup     WidgetKind = "group"
	KindText      WidgetKind = "text"
	KindButton    WidgetKind = "button"
	KindTextField WidgetKind = "text_field"
	KindFileInput WidgetKind = "file_input"
	KindForm      WidgetKind = "form"
)

// Widget represents a node in the retained tree.
type Widget struct {
	mu sync.RWMutex

	id       WidgetID
	kind     WidgetKind
	tree     *Tree
	parent   *Widget
	children []*Widget

	classes     []string
	attrs       map[string]string
	text        string
	value       string
	placeholder string

	visible  bool
	focused  bool
	disabled bool

	onClick  ClickHandler
	onFocus  FocusHandler
	onBlur   FocusHandler
	onChange ChangeHandler

	changeListeners []changeListener

	// File input state
	accept         []string
	required       bool
	customValidity string
	files          []string
	picker         Picker
	pickerTitle    string
}

// NewWidget creates a visible widget with no parent.
func NewWidget(kind WidgetKind) *Widget {
	return &Widget{
		id:      newWidgetID(),
		kind:    kind,
		visible: true,
	}
}

// ID returns the widget's unique identifier.
func (w *Widget) ID() WidgetID {
	return w.id
}

// Kind returns the widget type.
func (w *Widget) Kind() WidgetKind {
	return w.kind
}

// Tree returns the tree the widget is attached to, or nil.
func (w *Widget) Tree() *Tree {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.tree
}

// ============================================================================
// Tree Structure
// ============================================================================

// Parent returns the widget's parent, or nil if it is detached or the root.
func (w *Widget) Parent() *Widget {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.parent
}

// Children returns a copy of the widget's children slice.
func (w *Widget) Children() []*Widget {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]*Widget, len(w.children))
	copy(result, w.children)
	return result
}

// AddChild appends a child widget, detaching it from any previous parent.
func (w *Widget) AddChild(child *Widget) *Widget {
	return w.InsertChild(-1, child)
}

// PrependChild inserts a child as the first child.
func (w *Widget) PrependChild(child *Widget) *Widget {
	return w.InsertChild(0, child)
}

// InsertChild inserts a child at the specified index.
// A negative or out-of-range index appends.
func (w *Widget) InsertChild(index int, child *Widget) *Widget {
	if child == nil || child == w {
		return w
	}
	child.RemoveFromParent()

	w.mu.Lock()
	if index < 0 || index >= len(w.children) {
		w.children = append(w.children, child)
	} else {
		w.children = append(w.children[:index+1], w.children[index:]...)
		w.children[index] = child
	}
	tree := w.tree
	w.mu.Unlock()

	child.mu.Lock()
	child.parent = w
	child.mu.Unlock()
	child.setTree(tree)
	return w
}

// RemoveChild removes a child by reference.
func (w *Widget) RemoveChild(child *Widget) bool {
	w.mu.Lock()
	found := false
	for i, c := range w.children {
		if c == child {
			w.children = append(w.children[:i], w.children[i+1:]...)
			found = true
			break
		}
	}
	w.mu.Unlock()

	if !found {
		return false
	}
	if t := child.Tree(); t != nil {
		t.Dispatcher().forget(child)
	}
	child.mu.Lock()
	child.parent = nil
	child.mu.Unlock()
	child.setTree(nil)
	return true
}

// RemoveFromParent removes this widget from its parent.
func (w *Widget) RemoveFromParent() {
	w.mu.RLock()
	parent := w.parent
	w.mu.RUnlock()

	if parent != nil {
		parent.RemoveChild(w)
	}
}

// Index returns the position of the widget among its siblings, or -1.
func (w *Widget) Index() int {
	parent := w.Parent()
	if parent == nil {
		return -1
	}
	parent.mu.RLock()
	defer parent.mu.RUnlock()
	for i, c := range parent.children {
		if c == w {
			return i
		}
	}
	return -1
}

// InsertAfter places sibling directly after w in w's parent.
// It returns false when w has no parent.
func (w *Widget) InsertAfter(sibling *Widget) bool {
	parent := w.Parent()
	if parent == nil {
		return false
	}
	parent.InsertChild(w.Index()+1, sibling)
	return true
}

// Wrap places w inside wrapper, and wrapper where w used to be.
func (w *Widget) Wrap(wrapper *Widget) *Widget {
	parent := w.Parent()
	if parent == nil {
		wrapper.AddChild(w)
		return wrapper
	}
	index := w.Index()
	parent.RemoveChild(w)
	parent.InsertChild(index, wrapper)
	wrapper.AddChild(w)
	return wrapper
}

// Unwrap removes w's parent from the tree, leaving the parent's children in
// its place. A parent without its own parent just releases its children.
func (w *Widget) Unwrap() {
	parent := w.Parent()
	if parent == nil {
		return
	}
	children := parent.Children()
	grand := parent.Parent()
	if grand == nil {
		for _, c := range children {
			parent.RemoveChild(c)
		}
		return
	}
	index := parent.Index()
	grand.RemoveChild(parent)
	for i, c := range children {
		grand.InsertChild(index+i, c)
	}
}

// setTree attaches the widget and its descendants to tree.
func (w *Widget) setTree(tree *Tree) {
	w.mu.Lock()
	w.tree = tree
	children := make([]*Widget, len(w.children))
	copy(children, w.children)
	w.mu.Unlock()

	for _, c := range children {
		c.setTree(tree)
	}
}

// Walk calls fn for w and every descendant in document order.
// Returning false from fn skips the widget's subtree.
func (w *Widget) Walk(fn func(*Widget) bool) {
	if !fn(w) {
		return
	}
	for _, c := range w.Children() {
		c.Walk(fn)
	}
}

// FindByClass returns every descendant (including w) carrying class.
func (w *Widget) FindByClass(class string) []*Widget {
	var found []*Widget
	w.Walk(func(n *Widget) bool {
		if n.HasClass(class) {
			found = append(found, n)
		}
		return true
	})
	return found
}

// Contains reports whether other is w or one of its descendants.
func (w *Widget) Contains(other *Widget) bool {
	for n := other; n != nil; n = n.Parent() {
		if n == w {
			return true
		}
	}
	return false
}

// ============================================================================
// Properties
// ============================================================================

// SetText sets the text content (button label, text node).
func (w *Widget) SetText(text string) *Widget {
	w.mu.Lock()
	w.text = text
	w.mu.Unlock()
	return w
}

// Text returns the text content.
func (w *Widget) Text() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.text
}

// SetValue sets the current value of a text field or file input.
// It does not dispatch a change event.
func (w *Widget) SetValue(value string) *Widget {
	w.mu.Lock()
	w.value = value
	if w.kind == KindFileInput && value == "" {
		w.files = nil
	}
	w.mu.Unlock()
	return w
}

// Value returns the current value.
func (w *Widget) Value() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.value
}

// SetPlaceholder sets the placeholder shown by an empty text field.
func (w *Widget) SetPlaceholder(placeholder string) *Widget {
	w.mu.Lock()
	w.placeholder = placeholder
	w.mu.Unlock()
	return w
}

// Placeholder returns the placeholder text.
func (w *Widget) Placeholder() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.placeholder
}

// SetAttr sets a markup attribute. Attributes are carried to renderers as-is.
func (w *Widget) SetAttr(name, value string) *Widget {
	w.mu.Lock()
	if w.attrs == nil {
		w.attrs = make(map[string]string)
	}
	w.attrs[name] = value
	w.mu.Unlock()
	return w
}

// Attr returns the attribute value and whether it is set.
func (w *Widget) Attr(name string) (string, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	v, ok := w.attrs[name]
	return v, ok
}

// RemoveAttr deletes an attribute.
func (w *Widget) RemoveAttr(name string) *Widget {
	w.mu.Lock()
	delete(w.attrs, name)
	w.mu.Unlock()
	return w
}

// AttrNames returns the set attribute names in sorted order.
func (w *Widget) AttrNames() []string {
	w.mu.RLock()
	names := make([]string, 0, len(w.attrs))
	for name := range w.attrs {
		names = append(names, name)
	}
	w.mu.RUnlock()
	sort.Strings(names)
	return names
}

// SetVisible sets whether the widget is rendered.
// Hidden widgets stay in the tree and keep receiving programmatic events.
func (w *Widget) SetVisible(visible bool) *Widget {
	w.mu.Lock()
	w.visible = visible
	w.mu.Unlock()
	return w
}

// Show makes the widget visible.
func (w *Widget) Show() *Widget { return w.SetVisible(true) }

// Hide hides the widget.
func (w *Widget) Hide() *Widget { return w.SetVisible(false) }

// Visible returns whether the widget is rendered.
func (w *Widget) Visible() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.visible
}

// SetDisabled enables or disables the widget. Disabled widgets ignore clicks.
func (w *Widget) SetDisabled(disabled bool) *Widget {
	w.mu.Lock()
	w.disabled = disabled
	w.mu.Unlock()
	return w
}

// Disabled returns whether the widget is disabled.
func (w *Widget) Disabled() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.disabled
}

// Focused returns whether the widget has keyboard focus.
func (w *Widget) Focused() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.focused
}

func (w *Widget) setFocused(focused bool) {
	w.mu.Lock()
	w.focused = focused
	w.mu.Unlock()
}

// ============================================================================
// Event Handler Setters
// ============================================================================

// OnClick sets the click handler. Passing nil removes it.
func (w *Widget) OnClick(handler ClickHandler) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onClick = handler
	return w
}

// OnFocus sets the focus handler.
func (w *Widget) OnFocus(handler FocusHandler) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onFocus = handler
	return w
}

// OnBlur sets the blur (focus lost) handler.
func (w *Widget) OnBlur(handler FocusHandler) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onBlur = handler
	return w
}

// OnChange sets the value change handler.
func (w *Widget) OnChange(handler ChangeHandler) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = handler
	return w
}

// ListenerID identifies a listener added with AddChangeListener.
type ListenerID uint64

var nextListenerID atomic.Uint64

type changeListener struct {
	id ListenerID
	fn ChangeHandler
}

// AddChangeListener adds fn alongside the change handler and any other
// listeners. Listeners run in the order they were added, before the
// handler, and never consume the event, so it keeps bubbling.
func (w *Widget) AddChangeListener(fn ChangeHandler) ListenerID {
	id := ListenerID(nextListenerID.Add(1))
	w.mu.Lock()
	defer w.mu.Unlock()
	w.changeListeners = append(w.changeListeners, changeListener{id: id, fn: fn})
	return id
}

// RemoveChangeListener removes the listener with the given id and reports
// whether it was present.
func (w *Widget) RemoveChangeListener(id ListenerID) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i, l := range w.changeListeners {
		if l.id == id {
			w.changeListeners = append(w.changeListeners[:i:i], w.changeListeners[i+1:]...)
			return true
		}
	}
	return false
}

// ============================================================================
// Programmatic Interaction
// ============================================================================

// dispatcher returns the tree's dispatcher, or a throwaway one for detached widgets.
func (w *Widget) dispatcher() *EventDispatcher {
	if t := w.Tree(); t != nil {
		return t.Dispatcher()
	}
	return NewEventDispatcher(nil)
}

// Click dispatches a click on the widget, as if the user activated it.
func (w *Widget) Click() {
	w.dispatcher().Click(w)
}

// Focus gives the widget keyboard focus.
func (w *Widget) Focus() {
	w.dispatcher().Focus(w)
}

// Blur removes keyboard focus from the widget if it has it.
func (w *Widget) Blur() {
	d := w.dispatcher()
	if d.FocusedWidget() == w {
		d.Blur()
		return
	}
	w.setFocused(false)
}

// ============================================================================
// Event Handling
// ============================================================================

// HandleEvent processes an event during the given phase.
// Only target and bubble phases reach the callback handlers.
// It returns true when a handler consumed the event.
func (w *Widget) HandleEvent(event Event, phase EventPhase) bool {
	if phase != PhaseBubble && phase != PhaseTarget {
		return false
	}
	switch e := event.(type) {
	case *ClickEvent:
		w.mu.RLock()
		handler := w.onClick
		w.mu.RUnlock()
		if handler != nil {
			handler(e)
			return true
		}
	case *FocusEvent:
		w.mu.RLock()
		handler := w.onFocus
		if e.Type() == EventBlur {
			handler = w.onBlur
		}
		w.mu.RUnlock()
		if handler != nil {
			handler(e)
			return true
		}
	case *ChangeEvent:
		w.mu.RLock()
		handler := w.onChange
		listeners := slices.Clone(w.changeListeners)
		w.mu.RUnlock()
		for _, l := range listeners {
			l.fn(e)
		}
		if handler != nil {
			handler(e)
			return true
		}
	}
	return false
}

// defaultAction runs the built-in behavior for an event that reached w
// and was not prevented.
func (w *Widget) defaultAction(e Event) {
	switch w.kind {
	case KindFileInput:
		if e.Type() == EventClick {
			w.openPicker()
		}
	}
}
