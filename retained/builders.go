package retained

// Builder helpers for common widget patterns.
// These provide a fluent API for constructing UI trees.

// Container creates a block container widget.
func Container(classes string, children ...*Widget) *Widget {
	w := NewWidget(KindContainer)
	w.SetClasses(classes)
	for _, child := range children {
		w.AddChild(child)
	}
	return w
}

// Group creates an inline container, typically holding buttons side by side.
func Group(classes string, children ...*Widget) *Widget {
	w := NewWidget(KindGroup)
	w.SetClasses(classes)
	for _, child := range children {
		w.AddChild(child)
	}
	return w
}

// Text creates a text widget.
func Text(text string, classes string) *Widget {
	w := NewWidget(KindText)
	w.SetText(text)
	w.SetClasses(classes)
	return w
}

// Button creates a button widget. Buttons never submit forms.
func Button(text string, classes string) *Widget {
	w := NewWidget(KindButton)
	w.SetText(text)
	w.SetClasses(classes)
	w.SetAttr("type", "button")
	return w
}

// TextField creates a single-line text field.
func TextField(placeholder string, classes string) *Widget {
	w := NewWidget(KindTextField)
	w.SetPlaceholder(placeholder)
	w.SetClasses(classes)
	return w
}

// Form creates a form container. Reset restores every form control inside it.
func Form(classes string, children ...*Widget) *Widget {
	w := NewWidget(KindForm)
	w.SetClasses(classes)
	for _, child := range children {
		w.AddChild(child)
	}
	return w
}
