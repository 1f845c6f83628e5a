// Package tui hosts a file input in a terminal program. The terminal file
// picker stands in for the platform dialog, so browse, change, clear and
// validation run exactly as they would in any other host.
package tui

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/agiangrant/fileinput"
	"github.com/agiangrant/fileinput/render"
	"github.com/agiangrant/fileinput/retained"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	statusStyle = lipgloss.NewStyle().MarginTop(1)
	errorStyle  = lipgloss.NewStyle().MarginTop(1).Foreground(lipgloss.Color("#f38ba8"))
	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#89b4fa")).
			Padding(0, 1).
			MarginTop(1)
)

// Model is the bubbletea model of the demo.
type Model struct {
	tree    *retained.Tree
	control *retained.Widget
	widget  *fileinput.FileInput

	picker  filepicker.Model
	picking bool
	pending tea.Cmd

	keys   KeyMap
	help   help.Model
	styles render.TerminalStyles
	logger *zap.Logger

	title    string
	status   string
	invalid  bool
	quitting bool
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger used for picker events.
func WithLogger(logger *zap.Logger) Option {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithStartDir sets the directory the picker opens in.
func WithStartDir(dir string) Option {
	return func(m *Model) {
		m.picker.CurrentDirectory = dir
	}
}

// WithTitle sets the heading shown above the widget.
func WithTitle(title string) Option {
	return func(m *Model) {
		m.title = title
	}
}

// WithAccept sets the native control's accepted types, which filter the
// picker.
func WithAccept(types ...string) Option {
	return func(m *Model) {
		m.control.SetAccept(types...)
	}
}

// New builds a page holding one native control, attaches a widget through
// r with ov, and routes the control's dialog to the terminal picker.
// Change and clear hooks in ov still run after the model's own.
func New(r *fileinput.Registry, ov fileinput.Overrides, opts ...Option) *Model {
	m := &Model{
		tree:    retained.NewTree(),
		control: retained.FileInput("file", ""),
		picker:  filepicker.New(),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		styles:  render.DefaultTerminalStyles(),
		logger:  zap.NewNop(),
		title:   "Select a file",
	}
	if wd, err := os.Getwd(); err == nil {
		m.picker.CurrentDirectory = wd
	}
	m.picker.AutoHeight = false
	m.picker.Height = 10

	m.tree.Root().AddChild(m.control)
	m.control.SetPicker(retained.PickerFunc(m.openPicker))
	for _, opt := range opts {
		opt(m)
	}

	userChange, userClear := ov.Change, ov.Clear
	ov = ov.WithChange(func(c *retained.Widget, name, ext string, valid bool) {
		m.onChange(name, ext, valid)
		if userChange != nil {
			userChange(c, name, ext, valid)
		}
	}).WithClear(func(c *retained.Widget, previous string) {
		m.onClear(previous)
		if userClear != nil {
			userClear(c, previous)
		}
	})
	m.widget = r.Create(m.control, ov)
	return m
}

// Widget returns the attached file input.
func (m *Model) Widget() *fileinput.FileInput { return m.widget }

// Tree returns the page tree.
func (m *Model) Tree() *retained.Tree { return m.tree }

// Picking reports whether the file dialog is open.
func (m *Model) Picking() bool { return m.picking }

// Status returns the last status line.
func (m *Model) Status() string { return m.status }

// openPicker is the control's dialog: it configures the terminal picker
// from the request and shows it.
func (m *Model) openPicker(_ *retained.Widget, req retained.PickRequest) {
	var types []string
	for _, f := range req.Filters {
		for _, ext := range f.Extensions {
			ext = "." + strings.ToLower(ext)
			if !slices.Contains(types, ext) {
				types = append(types, ext, strings.ToUpper(ext))
			}
		}
	}
	m.picker.AllowedTypes = types
	m.picking = true
	m.pending = m.picker.Init()
	m.logger.Debug("picker opened",
		zap.String("dir", m.picker.CurrentDirectory),
		zap.Strings("types", types))
}

func (m *Model) closePicker() {
	m.picking = false
	m.control.Cancel()
}

func (m *Model) onChange(name, ext string, valid bool) {
	m.invalid = !valid
	switch {
	case name == "":
		m.status = "No file selected"
	case valid:
		m.status = fmt.Sprintf("Selected %s", name)
	default:
		m.status = fmt.Sprintf("%s is not an accepted file type (.%s)", name, ext)
	}
}

func (m *Model) onClear(previous string) {
	m.invalid = false
	if previous == "" {
		m.status = "Cleared"
		return
	}
	m.status = fmt.Sprintf("Removed %s", previous)
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.picking {
		return m, m.updatePicker(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Browse):
			m.widget.BrowseButton().Click()
		case key.Matches(msg, m.keys.Clear):
			if m.widget.ClearButton().Visible() {
				m.widget.ClearButton().Click()
			}
		case key.Matches(msg, m.keys.Next):
			m.focusNext(msg.String() == "shift+tab")
		case key.Matches(msg, m.keys.Press):
			if w := m.tree.Focused(); w != nil {
				w.Click()
			}
		}
	}
	return m, m.takePending()
}

func (m *Model) updatePicker(msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, m.keys.Cancel):
			m.closePicker()
			return nil
		case k.String() == "ctrl+c":
			m.quitting = true
			return tea.Quit
		}
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.picking = false
		m.logger.Debug("picker selected", zap.String("path", path))
		m.control.Select(path)
		return m.takePending()
	}
	if ok, path := m.picker.DidSelectDisabledFile(msg); ok {
		m.status = fmt.Sprintf("%s does not match the accepted types", fileinput.FileNameFromPath(path))
		m.invalid = true
	}
	return cmd
}

func (m *Model) takePending() tea.Cmd {
	cmd := m.pending
	m.pending = nil
	return cmd
}

// focusNext moves focus through the visible buttons.
func (m *Model) focusNext(reverse bool) {
	var buttons []*retained.Widget
	for _, w := range m.tree.Focusable() {
		if w.Kind() == retained.KindButton {
			buttons = append(buttons, w)
		}
	}
	if len(buttons) == 0 {
		return
	}
	i := slices.Index(buttons, m.tree.Focused())
	switch {
	case i < 0 && reverse:
		i = len(buttons) - 1
	case i < 0:
		i = 0
	case reverse:
		i = (i - 1 + len(buttons)) % len(buttons)
	default:
		i = (i + 1) % len(buttons)
	}
	buttons[i].Focus()
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(render.Terminal(m.tree.Root(), m.styles))
	if m.status != "" {
		b.WriteString("\n")
		if m.invalid {
			b.WriteString(errorStyle.Render(m.status))
		} else {
			b.WriteString(statusStyle.Render(m.status))
		}
	}
	if m.picking {
		b.WriteString("\n")
		b.WriteString(dialogStyle.Render(m.picker.CurrentDirectory + "\n\n" + m.picker.View()))
	}
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
