package retained

import (
	"mime"
	"slices"
	"strings"
)

// Control widgets: the native file input.
// A file input never touches the file system itself. Clicking it asks its
// Picker (the platform dialog) to choose files, and the platform reports
// back through Select or Cancel.

// FileFilter represents a file type filter for file picker dialogs.
type FileFilter struct {
	Name       string   // Display name (e.g., "Images")
	Extensions []string // File extensions without dots (e.g., []string{"png", "jpg", "jpeg"})
}

// PickRequest describes a dialog the file input wants opened.
type PickRequest struct {
	Title   string
	Filters []FileFilter
}

// Picker opens the platform file dialog for a file input.
// Open may return before the user decides; the outcome is delivered by
// calling Select or Cancel on the control, from any goroutine that owns the
// tree at that moment.
type Picker interface {
	Open(control *Widget, req PickRequest)
}

// PickerFunc adapts a function to the Picker interface.
type PickerFunc func(control *Widget, req PickRequest)

// Open calls f(control, req).
func (f PickerFunc) Open(control *Widget, req PickRequest) {
	f(control, req)
}

// ValidityState mirrors the constraint-validation flags of a file input.
type ValidityState struct {
	ValueMissing bool // required but nothing selected
	CustomError  bool // a custom validity message is set
}

// Valid reports whether no constraint is violated.
func (v ValidityState) Valid() bool {
	return !v.ValueMissing && !v.CustomError
}

// ============================================================================
// File Input
// ============================================================================

// FileInput creates a native file-selection control.
func FileInput(name string, classes string) *Widget {
	w := NewWidget(KindFileInput)
	w.SetClasses(classes)
	if name != "" {
		w.SetAttr("name", name)
	}
	return w
}

// SetPicker sets the dialog used when the control is clicked.
func (w *Widget) SetPicker(p Picker) *Widget {
	w.mu.Lock()
	w.picker = p
	w.mu.Unlock()
	return w
}

// Picker returns the control's dialog, or nil.
func (w *Widget) Picker() Picker {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.picker
}

// SetPickerTitle sets the dialog title.
func (w *Widget) SetPickerTitle(title string) *Widget {
	w.mu.Lock()
	w.pickerTitle = title
	w.mu.Unlock()
	return w
}

// SetAccept sets the accepted types: extensions with a leading dot
// (".pdf") or MIME types ("image/png", "image/*").
func (w *Widget) SetAccept(types ...string) *Widget {
	var clean []string
	for _, t := range types {
		if t = strings.TrimSpace(t); t != "" {
			clean = append(clean, t)
		}
	}
	w.mu.Lock()
	w.accept = clean
	w.mu.Unlock()
	return w
}

// Accept returns the accepted types.
func (w *Widget) Accept() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return slices.Clone(w.accept)
}

// SetRequired marks the control as requiring a selection.
func (w *Widget) SetRequired(required bool) *Widget {
	w.mu.Lock()
	w.required = required
	w.mu.Unlock()
	return w
}

// Required returns whether a selection is required.
func (w *Widget) Required() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.required
}

// SetCustomValidity sets a custom error message. An empty message clears it.
func (w *Widget) SetCustomValidity(message string) *Widget {
	w.mu.Lock()
	w.customValidity = message
	w.mu.Unlock()
	return w
}

// CustomValidity returns the custom error message.
func (w *Widget) CustomValidity() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.customValidity
}

// Validity returns the control's current constraint-validation state.
func (w *Widget) Validity() ValidityState {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return ValidityState{
		ValueMissing: w.required && w.value == "",
		CustomError:  w.customValidity != "",
	}
}

// Files returns the selected paths.
func (w *Widget) Files() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return slices.Clone(w.files)
}

// Select records the paths chosen in the dialog and dispatches a change
// event. The control's value is the first path. Selecting nothing is a
// cancel.
func (w *Widget) Select(paths ...string) {
	if len(paths) == 0 {
		w.Cancel()
		return
	}
	w.mu.Lock()
	w.files = slices.Clone(paths)
	w.value = paths[0]
	w.mu.Unlock()

	w.dispatcher().Change(w)
}

// Cancel records that the dialog was dismissed. The selection is unchanged
// and no change event is dispatched.
func (w *Widget) Cancel() {}

// openPicker is the file input's click default action.
func (w *Widget) openPicker() {
	w.mu.RLock()
	picker := w.picker
	req := PickRequest{
		Title:   w.pickerTitle,
		Filters: filtersFromAccept(w.accept),
	}
	w.mu.RUnlock()

	if picker != nil {
		picker.Open(w, req)
	}
}

// filtersFromAccept turns accept tokens into dialog filters: all dotted
// extensions share one filter, and each MIME type gets its own.
func filtersFromAccept(accept []string) []FileFilter {
	var filters []FileFilter
	var exts []string
	for _, token := range accept {
		if strings.HasPrefix(token, ".") {
			exts = append(exts, strings.ToLower(strings.TrimPrefix(token, ".")))
			continue
		}
		f := FileFilter{Name: token}
		if known, err := mime.ExtensionsByType(token); err == nil {
			for _, e := range known {
				f.Extensions = append(f.Extensions, strings.TrimPrefix(e, "."))
			}
		}
		filters = append(filters, f)
	}
	if len(exts) > 0 {
		filters = append([]FileFilter{{Name: "Accepted files", Extensions: exts}}, filters...)
	}
	return filters
}
