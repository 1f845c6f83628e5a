package commands

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/agiangrant/fileinput/internal/tui"
)

// ErrNotTerminal is returned when demo runs without an interactive terminal.
var ErrNotTerminal = errors.New("demo needs an interactive terminal")

// Demo implements 'fileinput demo': an interactive widget in the terminal
// whose browse button opens a file picker.
func Demo(args []string) error {
	fs := newFlagSet("demo")
	dir := fs.String("dir", "", "directory the picker starts in (default current directory)")
	accept := fs.StringSlice("accept", nil, "accepted types on the native control, e.g. .pdf,image/png")
	e, err := setup(fs, args)
	if err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNotTerminal
	}

	opts := []tui.Option{tui.WithLogger(e.logger), tui.WithAccept(*accept...)}
	if *dir != "" {
		opts = append(opts, tui.WithStartDir(*dir))
	}
	m := tui.New(e.registry, e.overrides, opts...)

	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
