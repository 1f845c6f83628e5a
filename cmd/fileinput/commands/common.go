// Package commands implements the fileinput subcommands.
package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/agiangrant/fileinput"
	"github.com/agiangrant/fileinput/internal/config"
	"github.com/agiangrant/fileinput/internal/logging"
	"github.com/agiangrant/fileinput/retained"
)

// Output streams, replaced in tests.
var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// newFlagSet returns a flag set carrying the shared flags.
func newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(Stderr)
	config.RegisterFlags(fs)
	return fs
}

// env is what every command works with after flags are parsed.
type env struct {
	cfg       *config.Config
	logger    *zap.Logger
	overrides fileinput.Overrides
	registry  *fileinput.Registry
}

// setup parses args and resolves configuration and logging.
func setup(fs *pflag.FlagSet, args []string) (*env, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cfg, err := config.Load(fs)
	if err != nil {
		return nil, err
	}
	logger := logging.New(Stderr, cfg.Verbose, cfg.Debug)
	if f := cfg.ConfigFile(); f != "" {
		logger.Info("using config file", zap.String("path", f))
	}
	ov, err := cfg.Overrides()
	if err != nil {
		return nil, err
	}
	return &env{
		cfg:       cfg,
		logger:    logger,
		overrides: ov,
		registry:  fileinput.NewRegistry(fileinput.WithLogger(logger), fileinput.WithLocale(cfg.LocaleText())),
	}, nil
}

// page builds a tree holding one native control with a widget attached.
func (e *env) page(name string, accept []string) (*retained.Tree, *fileinput.FileInput) {
	tree := retained.NewTree()
	control := retained.FileInput(name, "").SetAccept(accept...)
	tree.Root().AddChild(control)
	return tree, e.registry.Create(control, e.overrides)
}

// usage reports a usage error for cmd.
func usage(cmd, msg string) error {
	return fmt.Errorf("%s: %s (see 'fileinput %s --help')", cmd, msg, cmd)
}

// IsHelp reports whether err is a request for help rather than a failure.
func IsHelp(err error) bool {
	return errors.Is(err, pflag.ErrHelp)
}
