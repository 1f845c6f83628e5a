package retained

// ============================================================================
// Event Types
// ============================================================================

// EventType identifies the kind of event.
type EventType uint8

const (
	EventClick EventType = iota + 1
	EventFocus
	EventBlur
	EventChange
)

// String returns the DOM-style event name.
func (t EventType) String() string {
	switch t {
	case EventClick:
		return "click"
	case EventFocus:
		return "focus"
	case EventBlur:
		return "blur"
	case EventChange:
		return "change"
	}
	return "unknown"
}

// EventPhase indicates when in the event propagation cycle we are.
type EventPhase uint8

const (
	// PhaseCapture - event travels from root down to target.
	PhaseCapture EventPhase = iota

	// PhaseTarget - event is at the target widget.
	PhaseTarget

	// PhaseBubble - event travels from target up to root.
	PhaseBubble
)

// ============================================================================
// Event Interface and Base
// ============================================================================

// Event is the interface for all events.
type Event interface {
	// Type returns the event type.
	Type() EventType

	// Target returns the widget the event was dispatched to.
	Target() *Widget

	// CurrentTarget returns the widget currently handling the event during propagation.
	CurrentTarget() *Widget

	// Phase returns the current propagation phase.
	Phase() EventPhase

	// StopPropagation prevents the event from continuing to propagate.
	StopPropagation()

	// IsPropagationStopped returns true if propagation was stopped.
	IsPropagationStopped() bool

	// PreventDefault prevents the target's default action (if any).
	PreventDefault()

	// IsDefaultPrevented returns true if default was prevented.
	IsDefaultPrevented() bool

	setTarget(w *Widget)
	setCurrentTarget(w *Widget)
	setPhase(p EventPhase)
	bubbles() bool
}

type eventBase struct {
	eventType          EventType
	target             *Widget
	currentTarget      *Widget
	phase              EventPhase
	propagationStopped bool
	defaultPrevented   bool
}

func (e *eventBase) Type() EventType { return e.eventType }
func (e *eventBase) Target() *Widget { return e.target }
func (e *eventBase) CurrentTarget() *Widget { return e.currentTarget }
func (e *eventBase) Phase() EventPhase { return e.phase }
func (e *eventBase) StopPropagation() { e.propagationStopped = true }
func (e *eventBase) IsPropagationStopped() bool { return e.propagationStopped }
func (e *eventBase) PreventDefault() { e.defaultPrevented = true }
func (e *eventBase) IsDefaultPrevented() bool { return e.defaultPrevented }
func (e *eventBase) setTarget(w *Widget) { e.target = w }
func (e *eventBase) setCurrentTarget(w *Widget) { e.currentTarget = w }
func (e *eventBase) setPhase(p EventPhase) { e.phase = p }
func (e *eventBase) bubbles() bool { return e.eventType != EventFocus && e.eventType != EventBlur }

// ============================================================================
// Concrete Events
// ============================================================================

// ClickEvent represents a widget activation (pointer click, Enter, or a
// programmatic Click call).
type ClickEvent struct {
	eventBase
}

// NewClickEvent creates a click event.
func NewClickEvent() *ClickEvent {
	return &ClickEvent{eventBase: eventBase{eventType: EventClick}}
}

// FocusEvent represents focus change events.
type FocusEvent struct {
	eventBase

	// RelatedTarget is the widget losing focus (for Focus) or gaining focus (for Blur)
	RelatedTarget *Widget
}

// NewFocusEvent creates a focus event.
func NewFocusEvent(eventType EventType, relatedTarget *Widget) *FocusEvent {
	return &FocusEvent{
		eventBase:     eventBase{eventType: eventType},
		RelatedTarget: relatedTarget,
	}
}

// ChangeEvent is dispatched after a control's value was changed by the user
// (for file inputs: after the picker reported a selection).
type ChangeEvent struct {
	eventBase

	// Value is the target's value at dispatch time.
	Value string
}

// NewChangeEvent creates a change event carrying target's value. The event
// is not dispatched; pass it to EventDispatcher.Dispatch or a handler.
func NewChangeEvent(target *Widget, value string) *ChangeEvent {
	return &ChangeEvent{
		eventBase: eventBase{eventType: EventChange, target: target},
		Value:     value,
	}
}

// Handler types for the simple callback API.
type (
	ClickHandler  func(e *ClickEvent)
	FocusHandler  func(e *FocusEvent)
	ChangeHandler func(e *ChangeEvent)
)
