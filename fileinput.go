// Package fileinput decorates a native file-selection control with styled
// presentation widgets: a text field showing the chosen file name, a browse
// button and a clear button. The native control stays in the document,
// hidden, and remains the only thing that opens the platform file dialog.
//
// A FileInput is created through a Registry, which keeps at most one widget
// per control:
//
//	control := retained.FileInput("attachment", "")
//	tree.Root().AddChild(control)
//	fi := fileinput.Create(control, fileinput.Overrides{}.
//		WithAllowedExtensions("pdf", "png").
//		WithChange(func(c *retained.Widget, name, ext string, valid bool) {
//			// react to the selection
//		}))
//
// Lifecycle methods never fail. Malformed configuration falls back to
// defaults, and re-attaching to a control returns the existing widget.
package fileinput

import (
	"slices"

	"go.uber.org/zap"

	"github.com/agiangrant/fileinput/retained"
)

// Class names of the generated widgets.
const (
	ContainerClass   = "input-group fileinput"
	ButtonGroupClass = "input-group-btn"
	TextFieldClass   = "form-control"
	ButtonClass      = "btn"
)

// FileInput is the widget attached to one native control.
// It is driven from the goroutine that owns the tree and is not safe for
// concurrent use.
type FileInput struct {
	id       string
	registry *Registry
	logger   *zap.Logger
	control  *retained.Widget
	options  Options

	fileName      string
	fileExtension string
	isValid       bool

	container    *retained.Widget
	textField    *retained.Widget
	buttonGroup  *retained.Widget
	browseButton *retained.Widget
	clearButton  *retained.Widget

	changeListener retained.ListenerID
}

// ID returns the instance id, also used for the container's id attribute.
func (fi *FileInput) ID() string { return fi.id }

// Control returns the native control.
func (fi *FileInput) Control() *retained.Widget { return fi.control }

// Options returns a copy of the resolved options.
func (fi *FileInput) Options() Options {
	o := fi.options
	o.AllowedExtensions = slices.Clone(o.AllowedExtensions)
	return o
}

// FileName returns the current file name (no directories).
func (fi *FileInput) FileName() string { return fi.fileName }

// FileExtension returns the current lower-cased extension.
func (fi *FileInput) FileExtension() string { return fi.fileExtension }

// IsValid returns the validity computed by the last change.
func (fi *FileInput) IsValid() bool { return fi.isValid }

// Container returns the presentation root.
func (fi *FileInput) Container() *retained.Widget { return fi.container }

// TextField returns the field displaying the file name.
func (fi *FileInput) TextField() *retained.Widget { return fi.textField }

// ButtonGroup returns the group holding both buttons.
func (fi *FileInput) ButtonGroup() *retained.Widget { return fi.buttonGroup }

// BrowseButton returns the browse trigger.
func (fi *FileInput) BrowseButton() *retained.Widget { return fi.browseButton }

// ClearButton returns the clear trigger.
func (fi *FileInput) ClearButton() *retained.Widget { return fi.clearButton }

// ============================================================================
// Lifecycle
// ============================================================================

// Build creates the presentation widgets, places them right after the
// native control and hides the control. Earlier widgets are not removed;
// use Refresh to rebuild.
//
// Widgets are prepended in creation order, so the container holds the text
// field then the button group, and the group holds clear then browse.
func (fi *FileInput) Build() {
	o := fi.options

	fi.container = retained.Container(ContainerClass).
		SetAttr("id", "fileinput-"+fi.id)
	fi.buttonGroup = retained.Group(retained.JoinClasses(ButtonGroupClass, o.ButtonGroupClass))
	fi.container.AddChild(fi.buttonGroup)

	fi.textField = retained.TextField(o.Placeholder, retained.JoinClasses(TextFieldClass, o.InputClass))
	fi.container.PrependChild(fi.textField)

	fi.browseButton = retained.Button(o.BrowseButtonText, retained.JoinClasses(ButtonClass, o.BrowseButtonClass))
	fi.buttonGroup.PrependChild(fi.browseButton)

	fi.clearButton = retained.Button(o.ClearButtonText, retained.JoinClasses(ButtonClass, o.ClearButtonClass))
	fi.buttonGroup.PrependChild(fi.clearButton)

	fi.SetFileName("")
	fi.DisplayClearButton()

	fi.control.InsertAfter(fi.container)
	fi.control.Hide()

	fi.logger.Debug("fileinput built",
		zap.String("id", fi.id),
		zap.Bool("attached", fi.container.Parent() != nil))
}

// BindEvents wires the presentation widgets to the native control:
// browse clicks the control, clear clears, the control's change runs
// Change, and the text field gives focus straight back. Change is added as
// a listener, so handlers the page put on the control keep running.
func (fi *FileInput) BindEvents() {
	fi.browseButton.OnClick(func(*retained.ClickEvent) {
		fi.control.Click()
	})
	fi.clearButton.OnClick(func(*retained.ClickEvent) {
		fi.Clear()
	})
	if fi.changeListener != 0 {
		fi.control.RemoveChangeListener(fi.changeListener)
	}
	fi.changeListener = fi.control.AddChangeListener(func(e *retained.ChangeEvent) {
		fi.Change(e)
	})
	textField := fi.textField
	textField.OnFocus(func(*retained.FocusEvent) {
		textField.Blur()
	})
}

// Change derives the file name, extension and validity from a change event
// on the native control, updates the presentation and calls the change hook.
// A nil event reads the control's current value.
func (fi *FileInput) Change(e *retained.ChangeEvent) {
	value := fi.control.Value()
	if e != nil {
		value = e.Value
	}
	fi.logger.Debug("fileinput change",
		zap.String("id", fi.id),
		zap.String("value", value))

	fi.fileName = FileNameFromPath(value)
	fi.fileExtension = ExtensionFromPath(value)

	if fi.options.AllowedExtensions != nil {
		fi.isValid = fi.CheckValidity()
	} else {
		fi.isValid = fi.control.Validity().Valid()
	}

	fi.DisplayClearButton()
	fi.SetFileName("")

	fi.options.Change(fi.control, fi.fileName, fi.fileExtension, fi.isValid)
}

// DisplayClearButton shows the clear button when clearing is enabled and a
// file name is set, and hides it otherwise.
func (fi *FileInput) DisplayClearButton() {
	fi.clearButton.SetVisible(fi.options.ShowClearButton && fi.fileName != "")
}

// SetFileName shows name in the text field, or the current file name when
// name is empty. File name, extension and validity are left untouched.
func (fi *FileInput) SetFileName(name string) {
	if name == "" {
		name = fi.fileName
	}
	fi.textField.SetValue(name)
}

// Clear resets the native control, empties the text field, hides the clear
// button and calls the clear hook with the file name shown before.
//
// The stored file name, extension and validity are kept, so a later Refresh
// shows the old name again.
func (fi *FileInput) Clear() {
	form := retained.Form("")
	fi.control.Wrap(form)
	form.Reset()
	fi.control.Unwrap()
	fi.control.SetAttr("value", "")

	fi.textField.SetValue("")
	fi.clearButton.Hide()

	fi.logger.Debug("fileinput cleared",
		zap.String("id", fi.id),
		zap.String("previous", fi.fileName))

	fi.options.Clear(fi.control, fi.fileName)
}

// CheckValidity reports whether the current selection passes the extension
// check. An empty selection is always valid.
func (fi *FileInput) CheckValidity() bool {
	if fi.fileName == "" {
		return true
	}
	return ExtensionAllowed(fi.fileExtension, fi.options.AllowedExtensions)
}

// Destroy removes the presentation widgets, shows the native control again,
// unbinds it and forgets the instance, so a later Create starts fresh.
func (fi *FileInput) Destroy() {
	fi.container.RemoveFromParent()
	fi.control.Show()
	fi.control.RemoveChangeListener(fi.changeListener)
	fi.changeListener = 0
	if fi.registry != nil {
		fi.registry.forget(fi)
	}
	fi.logger.Debug("fileinput destroyed", zap.String("id", fi.id))
}

// Refresh rebuilds the presentation widgets with the current options.
func (fi *FileInput) Refresh() {
	fi.container.RemoveFromParent()
	fi.Build()
	fi.BindEvents()
}

// SetOptions merges ov onto the current options and refreshes.
func (fi *FileInput) SetOptions(ov Overrides) {
	fi.options = fi.options.Merge(ov)
	fi.Refresh()
}
