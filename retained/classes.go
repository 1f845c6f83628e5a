package retained

import (
	"slices"
	"strings"
)

// SetClasses replaces the widget's class list with the whitespace-separated
// tokens in classes. Duplicate tokens are kept once, in first-seen order.
func (w *Widget) SetClasses(classes string) *Widget {
	tokens := splitClasses(classes)
	w.mu.Lock()
	w.classes = tokens
	w.mu.Unlock()
	return w
}

// Classes returns the class list as a single space-separated string.
func (w *Widget) Classes() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return strings.Join(w.classes, " ")
}

// ClassList returns a copy of the class tokens.
func (w *Widget) ClassList() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return slices.Clone(w.classes)
}

// HasClass reports whether the widget carries class.
func (w *Widget) HasClass(class string) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return slices.Contains(w.classes, class)
}

// AddClass appends every token of classes not already present.
func (w *Widget) AddClass(classes string) *Widget {
	w.mu.Lock()
	for _, c := range splitClasses(classes) {
		if !slices.Contains(w.classes, c) {
			w.classes = append(w.classes, c)
		}
	}
	w.mu.Unlock()
	return w
}

// RemoveClass drops every token of classes.
func (w *Widget) RemoveClass(classes string) *Widget {
	drop := splitClasses(classes)
	w.mu.Lock()
	w.classes = slices.DeleteFunc(w.classes, func(c string) bool {
		return slices.Contains(drop, c)
	})
	w.mu.Unlock()
	return w
}

// JoinClasses joins class strings, dropping empty parts and extra spaces.
func JoinClasses(parts ...string) string {
	var tokens []string
	for _, p := range parts {
		tokens = append(tokens, strings.Fields(p)...)
	}
	return strings.Join(tokens, " ")
}

func splitClasses(classes string) []string {
	fields := strings.Fields(classes)
	out := fields[:0]
	for _, f := range fields {
		if !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}
