package fileinput

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/agiangrant/fileinput/retained"
)

// Registry maps native controls to their widgets. A control has at most one
// widget at a time: Create inserts if absent and Destroy erases.
type Registry struct {
	mu        sync.Mutex
	instances map[retained.WidgetID]*FileInput

	logger *zap.Logger
	locale Locale
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger sets the logger handed to every widget the registry creates.
func WithLogger(logger *zap.Logger) RegistryOption {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithLocale sets the locale text layered under caller overrides.
func WithLocale(locale Locale) RegistryOption {
	return func(r *Registry) {
		r.locale = locale
	}
}

// NewRegistry creates an empty registry using English text and no logging.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		instances: make(map[retained.WidgetID]*FileInput),
		logger:    zap.NewNop(),
		locale:    English,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Default is the process-wide registry used by the package-level functions.
var Default = NewRegistry()

// Create attaches a widget to control using Default.
func Create(control *retained.Widget, overrides ...Overrides) *FileInput {
	return Default.Create(control, overrides...)
}

// Lookup returns the widget attached to control in Default.
func Lookup(control *retained.Widget) (*FileInput, bool) {
	return Default.Lookup(control)
}

// Create attaches a widget to control: options are resolved, the
// presentation is built, the init hook runs and events are bound. If control
// already has a widget, that widget is returned and nothing else happens.
// A nil control yields nil.
func (r *Registry) Create(control *retained.Widget, overrides ...Overrides) *FileInput {
	if control == nil {
		return nil
	}

	r.mu.Lock()
	if fi, ok := r.instances[control.ID()]; ok {
		r.mu.Unlock()
		return fi
	}
	id := uuid.NewString()
	fi := &FileInput{
		id:       id,
		registry: r,
		logger:   r.logger.With(zap.String("fileinput", id)),
		control:  control,
		options:  Resolve(r.locale, overrides...),
		isValid:  true,
	}
	fi.fileName, _ = control.Attr("value")
	r.instances[control.ID()] = fi
	r.mu.Unlock()

	fi.Build()
	fi.options.Init(control)
	fi.BindEvents()
	return fi
}

// CreateAll attaches a widget to each control with the same overrides and
// returns them in order. Nil controls are skipped; controls that already
// have a widget contribute the existing one.
func (r *Registry) CreateAll(overrides Overrides, controls ...*retained.Widget) []*FileInput {
	out := make([]*FileInput, 0, len(controls))
	for _, c := range controls {
		if fi := r.Create(c, overrides); fi != nil {
			out = append(out, fi)
		}
	}
	return out
}

// Lookup returns the widget attached to control.
func (r *Registry) Lookup(control *retained.Widget) (*FileInput, bool) {
	if control == nil {
		return nil, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	fi, ok := r.instances[control.ID()]
	return fi, ok
}

// Len returns the number of attached widgets.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.instances)
}

// forget erases fi's association if it is still the registered widget.
func (r *Registry) forget(fi *FileInput) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cur, ok := r.instances[fi.control.ID()]; ok && cur == fi {
		delete(r.instances, fi.control.ID())
	}
}
