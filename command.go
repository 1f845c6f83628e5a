package fileinput

import (
	"errors"
	"fmt"

	"github.com/agnivade/levenshtein"
	"go.uber.org/zap"

	"github.com/agiangrant/fileinput/retained"
)

// Command names a widget operation that can be invoked by name.
type Command string

const (
	CommandBuild              Command = "build"
	CommandBindEvents         Command = "bindEvents"
	CommandChange             Command = "change"
	CommandDisplayClearButton Command = "displayClearButton"
	CommandSetFileName        Command = "setFileName"
	CommandClear              Command = "clear"
	CommandCheckValidity      Command = "checkValidity"
	CommandDestroy            Command = "destroy"
	CommandRefresh            Command = "refresh"
	CommandSetOptions         Command = "setOptions"
)

// Commands lists every command in declaration order.
var Commands = []Command{
	CommandBuild,
	CommandBindEvents,
	CommandChange,
	CommandDisplayClearButton,
	CommandSetFileName,
	CommandClear,
	CommandCheckValidity,
	CommandDestroy,
	CommandRefresh,
	CommandSetOptions,
}

var (
	// ErrUnknownCommand is returned for names outside Commands.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrInvalidParameter is returned when a command gets a parameter of the
	// wrong type.
	ErrInvalidParameter = errors.New("invalid parameter")
)

// maxSuggestDistance bounds how far a misspelling may be from a command
// before no suggestion is made.
const maxSuggestDistance = 3

// ParseCommand resolves a command name. Unknown names yield an error
// wrapping ErrUnknownCommand, naming the closest command when one is near.
func ParseCommand(name string) (Command, error) {
	best, bestDist := Command(""), maxSuggestDistance+1
	for _, c := range Commands {
		if string(c) == name {
			return c, nil
		}
		if d := levenshtein.ComputeDistance(name, string(c)); d < bestDist {
			best, bestDist = c, d
		}
	}
	if best != "" {
		return "", fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownCommand, name, best)
	}
	return "", fmt.Errorf("%w %q", ErrUnknownCommand, name)
}

// Exec runs cmd with param through a single dispatch. Parameters:
//
//   - setFileName: string or nil
//   - setOptions: Overrides or *Overrides
//   - change: *retained.ChangeEvent, a raw value string, or nil for the
//     control's current value
//   - everything else ignores param
//
// checkValidity only logs its result; call CheckValidity for the value.
func (fi *FileInput) Exec(cmd Command, param any) error {
	switch cmd {
	case CommandBuild:
		fi.Build()
	case CommandBindEvents:
		fi.BindEvents()
	case CommandChange:
		switch p := param.(type) {
		case nil:
			fi.Change(nil)
		case *retained.ChangeEvent:
			fi.Change(p)
		case string:
			fi.Change(retained.NewChangeEvent(fi.control, p))
		default:
			return fmt.Errorf("%s: %w: %T", cmd, ErrInvalidParameter, param)
		}
	case CommandDisplayClearButton:
		fi.DisplayClearButton()
	case CommandSetFileName:
		switch p := param.(type) {
		case nil:
			fi.SetFileName("")
		case string:
			fi.SetFileName(p)
		default:
			return fmt.Errorf("%s: %w: %T", cmd, ErrInvalidParameter, param)
		}
	case CommandClear:
		fi.Clear()
	case CommandCheckValidity:
		valid := fi.CheckValidity()
		fi.logger.Debug("fileinput validity", zap.Bool("valid", valid))
	case CommandDestroy:
		fi.Destroy()
	case CommandRefresh:
		fi.Refresh()
	case CommandSetOptions:
		switch p := param.(type) {
		case Overrides:
			fi.SetOptions(p)
		case *Overrides:
			if p == nil {
				return fmt.Errorf("%s: %w: nil", cmd, ErrInvalidParameter)
			}
			fi.SetOptions(*p)
		default:
			return fmt.Errorf("%s: %w: %T", cmd, ErrInvalidParameter, param)
		}
	default:
		return fmt.Errorf("%w %q", ErrUnknownCommand, cmd)
	}
	return nil
}

// Invoke runs the named command on every control, first attaching a widget
// with default options to controls that have none. An unknown name fails
// before anything is attached. Errors from individual controls are joined.
func (r *Registry) Invoke(name string, param any, controls ...*retained.Widget) error {
	cmd, err := ParseCommand(name)
	if err != nil {
		return err
	}
	var errs []error
	for _, fi := range r.CreateAll(Overrides{}, controls...) {
		if err := fi.Exec(cmd, param); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Invoke runs the named command through Default.
func Invoke(name string, param any, controls ...*retained.Widget) error {
	return Default.Invoke(name, param, controls...)
}
