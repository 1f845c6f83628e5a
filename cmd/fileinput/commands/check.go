package commands

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/agiangrant/fileinput"
	"github.com/agiangrant/fileinput/retained"
)

// ErrRejected is returned by Check when at least one path is invalid.
var ErrRejected = errors.New("one or more files rejected")

// Check implements 'fileinput check': every path is selected on a widget
// exactly as a browse would, and the derived name, extension and validity
// are printed.
func Check(args []string) error {
	fs := newFlagSet("check")
	quiet := fs.BoolP("quiet", "q", false, "print nothing, only set the exit status")
	e, err := setup(fs, args)
	if err != nil {
		return err
	}
	paths := fs.Args()
	if len(paths) == 0 {
		return usage("check", "no paths given")
	}

	type result struct {
		name, ext string
		valid     bool
	}
	var last result
	_, fi := e.page("file", nil)
	fi.SetOptions(fileinput.Overrides{}.WithChange(func(_ *retained.Widget, name, ext string, valid bool) {
		last = result{name, ext, valid}
	}))

	tw := tabwriter.NewWriter(Stdout, 0, 4, 2, ' ', 0)
	if !*quiet {
		fmt.Fprintln(tw, "PATH\tNAME\tEXTENSION\tVALID")
	}
	rejected := 0
	for _, p := range paths {
		fi.Control().Select(p)
		if !last.valid {
			rejected++
		}
		e.logger.Info("checked", zap.String("path", p), zap.Bool("valid", last.valid))
		if !*quiet {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%v\n", p, last.name, last.ext, last.valid)
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if rejected > 0 {
		return fmt.Errorf("%w: %d of %d", ErrRejected, rejected, len(paths))
	}
	return nil
}
