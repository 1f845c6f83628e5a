package commands

import (
	"bytes"
	"fmt"
	"os"

	"github.com/agiangrant/fileinput"
)

// Init implements 'fileinput init': it writes a preset holding every
// option at its resolved value, ready to be edited and passed to --preset.
func Init(args []string) error {
	fs := newFlagSet("init")
	out := fs.StringP("out", "o", "fileinput-preset.toml", "preset file to write (.toml or .yaml)")
	force := fs.Bool("force", false, "overwrite an existing file")
	e, err := setup(fs, args)
	if err != nil {
		return err
	}

	format, err := fileinput.FormatFromPath(*out)
	if err != nil {
		return err
	}
	if _, err := os.Stat(*out); err == nil && !*force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", *out)
	}

	opts := fileinput.Resolve(e.cfg.LocaleText(), e.overrides)
	var buf bytes.Buffer
	if err := fileinput.EncodeOverrides(&buf, format, fileinput.OverridesFromOptions(opts)); err != nil {
		return err
	}
	if err := os.WriteFile(*out, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", *out, err)
	}
	fmt.Fprintf(Stdout, "  ✓ Created %s\n", *out)
	return nil
}
