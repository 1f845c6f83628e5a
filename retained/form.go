package retained

// ============================================================================
// FormControl Interface
// ============================================================================

// FormControl is implemented by widgets that can participate in forms.
// Built-in text fields and file inputs implement it through Widget.
type FormControl interface {
	// FormValue returns the current value of the control
	FormValue() any
	// SetFormValue sets the value programmatically
	SetFormValue(value any)
	// FormReset resets to default/zero value
	FormReset()
}

// FormValue returns the control's value.
func (w *Widget) FormValue() any {
	return w.Value()
}

// SetFormValue sets the control's value when value is a string.
func (w *Widget) SetFormValue(value any) {
	if s, ok := value.(string); ok {
		w.SetValue(s)
	}
}

// FormReset restores the control's default value. Text fields go back to
// their "value" attribute; file inputs always become empty, whatever
// their attribute says.
func (w *Widget) FormReset() {
	switch w.Kind() {
	case KindTextField:
		def, _ := w.Attr("value")
		w.SetValue(def)
	case KindFileInput:
		w.SetValue("")
	}
}

// IsFormControl reports whether w takes part in form reset.
func (w *Widget) IsFormControl() bool {
	switch w.Kind() {
	case KindTextField, KindFileInput:
		return true
	}
	return false
}

// ============================================================================
// Reset
// ============================================================================

// Reset restores every form control inside a form widget. It has no effect
// on other widget kinds. Reset never submits anything and dispatches no
// events.
func (w *Widget) Reset() {
	if w.Kind() != KindForm {
		return
	}
	var controls []FormControl
	w.Walk(func(n *Widget) bool {
		if n != w && n.IsFormControl() {
			controls = append(controls, n)
		}
		return true
	})
	for _, c := range controls {
		c.FormReset()
	}
}
