package retained

import "sync"

// EventDispatcher routes events to widgets and tracks keyboard focus.
type EventDispatcher struct {
	tree *Tree

	mu            sync.Mutex
	focusedWidget *Widget
}

// NewEventDispatcher creates a dispatcher for the given tree.
// A nil tree is allowed for detached widgets.
func NewEventDispatcher(tree *Tree) *EventDispatcher {
	return &EventDispatcher{tree: tree}
}

// ============================================================================
// Dispatch
// ============================================================================

// Dispatch sends e to target with capture, target and bubble phases, then
// runs the target's default action unless a handler prevented it.
// It returns false if the default action was prevented.
func (d *EventDispatcher) Dispatch(target *Widget, e Event) bool {
	if target == nil {
		return false
	}
	e.setTarget(target)
	d.dispatchToWidget(target, e, d.buildChainToRoot(target))

	if e.IsDefaultPrevented() {
		return false
	}
	target.defaultAction(e)
	return true
}

// Click dispatches a click to w. Disabled widgets ignore clicks.
func (d *EventDispatcher) Click(w *Widget) {
	if w == nil || w.Disabled() {
		return
	}
	d.Dispatch(w, NewClickEvent())
}

// Change dispatches a change event carrying w's current value.
func (d *EventDispatcher) Change(w *Widget) {
	if w == nil {
		return
	}
	d.Dispatch(w, NewChangeEvent(w, w.Value()))
}

// dispatchToWidget dispatches an event to a widget with capture/bubble phases.
// A handler that consumes the event stops propagation.
func (d *EventDispatcher) dispatchToWidget(target *Widget, e Event, chain []*Widget) {
	// Capture phase (from root towards target)
	for i := 0; i < len(chain)-1; i++ {
		e.setPhase(PhaseCapture)
		e.setCurrentTarget(chain[i])
		if chain[i].HandleEvent(e, PhaseCapture) || e.IsPropagationStopped() {
			return
		}
	}

	// Target phase
	e.setPhase(PhaseTarget)
	e.setCurrentTarget(target)
	if target.HandleEvent(e, PhaseTarget) || e.IsPropagationStopped() {
		return
	}

	if !e.bubbles() {
		return
	}

	// Bubble phase (from target towards root)
	for i := len(chain) - 2; i >= 0; i-- {
		e.setPhase(PhaseBubble)
		e.setCurrentTarget(chain[i])
		if chain[i].HandleEvent(e, PhaseBubble) || e.IsPropagationStopped() {
			return
		}
	}
}

// buildChainToRoot builds a slice from root to the given widget.
func (d *EventDispatcher) buildChainToRoot(w *Widget) []*Widget {
	var reversedChain []*Widget
	for current := w; current != nil; current = current.Parent() {
		reversedChain = append(reversedChain, current)
	}

	chain := make([]*Widget, len(reversedChain))
	for i, w := range reversedChain {
		chain[len(reversedChain)-1-i] = w
	}
	return chain
}

// ============================================================================
// Focus Management
// ============================================================================

// setFocus changes the focused widget, dispatching blur/focus events.
// Handlers may change focus again; the last change wins.
func (d *EventDispatcher) setFocus(newFocus *Widget) {
	d.mu.Lock()
	oldFocus := d.focusedWidget
	if oldFocus == newFocus {
		d.mu.Unlock()
		return
	}
	d.focusedWidget = newFocus
	d.mu.Unlock()

	if oldFocus != nil {
		oldFocus.setFocused(false)
		d.Dispatch(oldFocus, NewFocusEvent(EventBlur, newFocus))
	}

	if newFocus != nil {
		newFocus.setFocused(true)
		d.Dispatch(newFocus, NewFocusEvent(EventFocus, oldFocus))
	}
}

// FocusedWidget returns the currently focused widget.
func (d *EventDispatcher) FocusedWidget() *Widget {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.focusedWidget
}

// Focus sets focus to a specific widget. Disabled widgets cannot be focused.
func (d *EventDispatcher) Focus(w *Widget) {
	if w != nil && w.Disabled() {
		return
	}
	d.setFocus(w)
}

// Blur removes focus from the currently focused widget.
func (d *EventDispatcher) Blur() {
	d.setFocus(nil)
}

// forget drops focus tracking for w and its descendants without events.
// Called when a subtree leaves the tree.
func (d *EventDispatcher) forget(w *Widget) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.focusedWidget != nil && w.Contains(d.focusedWidget) {
		d.focusedWidget.setFocused(false)
		d.focusedWidget = nil
	}
}
