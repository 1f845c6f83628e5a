package fileinput

import (
	"slices"

	"github.com/agiangrant/fileinput/retained"
)

// InitFunc is called once, after the first build, with the native control.
type InitFunc func(control *retained.Widget)

// ChangeFunc is called after every selection change with the derived file
// name, lower-cased extension and validity.
type ChangeFunc func(control *retained.Widget, fileName, fileExtension string, valid bool)

// ClearFunc is called after every clear with the file name shown before it.
type ClearFunc func(control *retained.Widget, previousFileName string)

// Options is a fully resolved widget configuration.
type Options struct {
	ButtonGroupClass  string
	BrowseButtonClass string
	ClearButtonClass  string
	InputClass        string

	// AllowedExtensions enables extension validation when non-nil. A nil
	// slice falls back to the native control's validity; an empty non-nil
	// slice rejects every non-empty selection.
	AllowedExtensions []string

	ShowClearButton bool

	Placeholder      string
	BrowseButtonText string
	ClearButtonText  string

	Init   InitFunc
	Change ChangeFunc
	Clear  ClearFunc
}

// DefaultOptions returns the built-in defaults, without locale text.
func DefaultOptions() Options {
	return Options{
		BrowseButtonClass: "btn-success",
		ClearButtonClass:  "btn-danger",
		ShowClearButton:   true,
		Init:              func(*retained.Widget) {},
		Change:            func(*retained.Widget, string, string, bool) {},
		Clear:             func(*retained.Widget, string) {},
	}
}

// Resolve merges, in increasing precedence, the built-in defaults, the
// locale's text and each of overrides.
func Resolve(locale Locale, overrides ...Overrides) Options {
	o := DefaultOptions()
	o.Placeholder = locale.Placeholder
	o.BrowseButtonText = locale.BrowseButtonText
	o.ClearButtonText = locale.ClearButtonText
	for _, ov := range overrides {
		o = o.Merge(ov)
	}
	return o
}

// Merge returns a copy of o with every field set in ov applied.
// Nil hooks in ov leave the current hooks in place.
func (o Options) Merge(ov Overrides) Options {
	setString(&o.ButtonGroupClass, ov.ButtonGroupClass)
	setString(&o.BrowseButtonClass, ov.BrowseButtonClass)
	setString(&o.ClearButtonClass, ov.ClearButtonClass)
	setString(&o.InputClass, ov.InputClass)
	setString(&o.Placeholder, ov.Placeholder)
	setString(&o.BrowseButtonText, ov.BrowseButtonText)
	setString(&o.ClearButtonText, ov.ClearButtonText)
	if ov.AllowedExtensions != nil {
		exts := slices.Clone(*ov.AllowedExtensions)
		if exts == nil {
			exts = []string{}
		}
		o.AllowedExtensions = exts
	}
	if ov.ShowClearButton != nil {
		o.ShowClearButton = *ov.ShowClearButton
	}
	if ov.Init != nil {
		o.Init = ov.Init
	}
	if ov.Change != nil {
		o.Change = ov.Change
	}
	if ov.Clear != nil {
		o.Clear = ov.Clear
	}
	return o
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// Overrides holds caller-supplied configuration. Nil fields are not set and
// leave the underlying value alone, so zero values (false, "") can still
// override. Hooks cannot come from configuration files.
type Overrides struct {
	ButtonGroupClass  *string   `toml:"button_group_class,omitempty" yaml:"button_group_class,omitempty"`
	BrowseButtonClass *string   `toml:"browse_button_class,omitempty" yaml:"browse_button_class,omitempty"`
	ClearButtonClass  *string   `toml:"clear_button_class,omitempty" yaml:"clear_button_class,omitempty"`
	InputClass        *string   `toml:"input_class,omitempty" yaml:"input_class,omitempty"`
	AllowedExtensions *[]string `toml:"allowed_extensions,omitempty" yaml:"allowed_extensions,omitempty"`
	ShowClearButton   *bool     `toml:"show_clear_button,omitempty" yaml:"show_clear_button,omitempty"`
	Placeholder       *string   `toml:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	BrowseButtonText  *string   `toml:"browse_button_text,omitempty" yaml:"browse_button_text,omitempty"`
	ClearButtonText   *string   `toml:"clear_button_text,omitempty" yaml:"clear_button_text,omitempty"`

	Init   InitFunc   `toml:"-" yaml:"-"`
	Change ChangeFunc `toml:"-" yaml:"-"`
	Clear  ClearFunc  `toml:"-" yaml:"-"`
}

// WithButtonGroupClass sets extra classes on the button group.
func (o Overrides) WithButtonGroupClass(classes string) Overrides {
	o.ButtonGroupClass = &classes
	return o
}

// WithBrowseButtonClass sets the browse button classes.
func (o Overrides) WithBrowseButtonClass(classes string) Overrides {
	o.BrowseButtonClass = &classes
	return o
}

// WithClearButtonClass sets the clear button classes.
func (o Overrides) WithClearButtonClass(classes string) Overrides {
	o.ClearButtonClass = &classes
	return o
}

// WithInputClass sets extra classes on the text field.
func (o Overrides) WithInputClass(classes string) Overrides {
	o.InputClass = &classes
	return o
}

// WithAllowedExtensions enables extension validation against exts.
// Calling it with no arguments sets an empty, non-nil list.
func (o Overrides) WithAllowedExtensions(exts ...string) Overrides {
	list := append([]string{}, exts...)
	o.AllowedExtensions = &list
	return o
}

// WithShowClearButton sets whether the clear button may be shown.
func (o Overrides) WithShowClearButton(show bool) Overrides {
	o.ShowClearButton = &show
	return o
}

// WithPlaceholder sets the text field placeholder.
func (o Overrides) WithPlaceholder(text string) Overrides {
	o.Placeholder = &text
	return o
}

// WithBrowseButtonText sets the browse button label.
func (o Overrides) WithBrowseButtonText(text string) Overrides {
	o.BrowseButtonText = &text
	return o
}

// WithClearButtonText sets the clear button label.
func (o Overrides) WithClearButtonText(text string) Overrides {
	o.ClearButtonText = &text
	return o
}

// WithInit sets the init hook.
func (o Overrides) WithInit(fn InitFunc) Overrides {
	o.Init = fn
	return o
}

// WithChange sets the change hook.
func (o Overrides) WithChange(fn ChangeFunc) Overrides {
	o.Change = fn
	return o
}

// WithClear sets the clear hook.
func (o Overrides) WithClear(fn ClearFunc) Overrides {
	o.Clear = fn
	return o
}

// Layer returns o with every field set in top applied over it.
func (o Overrides) Layer(top Overrides) Overrides {
	if top.ButtonGroupClass != nil {
		o.ButtonGroupClass = top.ButtonGroupClass
	}
	if top.BrowseButtonClass != nil {
		o.BrowseButtonClass = top.BrowseButtonClass
	}
	if top.ClearButtonClass != nil {
		o.ClearButtonClass = top.ClearButtonClass
	}
	if top.InputClass != nil {
		o.InputClass = top.InputClass
	}
	if top.AllowedExtensions != nil {
		o.AllowedExtensions = top.AllowedExtensions
	}
	if top.ShowClearButton != nil {
		o.ShowClearButton = top.ShowClearButton
	}
	if top.Placeholder != nil {
		o.Placeholder = top.Placeholder
	}
	if top.BrowseButtonText != nil {
		o.BrowseButtonText = top.BrowseButtonText
	}
	if top.ClearButtonText != nil {
		o.ClearButtonText = top.ClearButtonText
	}
	if top.Init != nil {
		o.Init = top.Init
	}
	if top.Change != nil {
		o.Change = top.Change
	}
	if top.Clear != nil {
		o.Clear = top.Clear
	}
	return o
}

// OverridesFromOptions returns overrides that set every configurable field
// of o. AllowedExtensions is left unset when nil. Hooks are carried over.
func OverridesFromOptions(o Options) Overrides {
	ov := Overrides{}.
		WithButtonGroupClass(o.ButtonGroupClass).
		WithBrowseButtonClass(o.BrowseButtonClass).
		WithClearButtonClass(o.ClearButtonClass).
		WithInputClass(o.InputClass).
		WithShowClearButton(o.ShowClearButton).
		WithPlaceholder(o.Placeholder).
		WithBrowseButtonText(o.BrowseButtonText).
		WithClearButtonText(o.ClearButtonText).
		WithInit(o.Init).
		WithChange(o.Change).
		WithClear(o.Clear)
	if o.AllowedExtensions != nil {
		ov = ov.WithAllowedExtensions(o.AllowedExtensions...)
	}
	return ov
}
