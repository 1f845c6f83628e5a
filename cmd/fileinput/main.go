package main

import (
	"fmt"
	"os"

	"github.com/agiangrant/fileinput/cmd/fileinput/commands"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "render":
		err = commands.Render(args)
	case "check":
		err = commands.Check(args)
	case "demo":
		err = commands.Demo(args)
	case "screenshot":
		err = commands.Screenshot(args)
	case "init":
		err = commands.Init(args)
	case "version", "--version":
		fmt.Printf("fileinput version %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		if s := commands.Suggest(cmd); s != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", s)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}

	if commands.IsHelp(err) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`fileinput - styled file selection widget

Usage: fileinput <command> [options]

Commands:
  render      Render the widget as an HTML page, fragment or terminal view
  check       Validate file paths against the allowed extensions
  demo        Run the widget interactively in the terminal
  screenshot  Render the page in headless Chrome and save a PNG
  init        Write a preset file with every option
  version     Print version information
  help        Show this help message

Shared options:
  --config FILE        config file (.toml or .yaml)
  --preset FILE        widget preset (.toml or .yaml)
  --locale TAG         button and placeholder language (en, de, fr, es)
  --allow EXT,...      allowed file extensions
  --show-clear         show the clear button when a file is selected
  -v, --verbose        log informational messages
  --debug              log debug messages

Examples:
  fileinput render --allow pdf,png --value /home/me/cv.pdf
  fileinput check --allow pdf report.pdf archive.zip
  fileinput demo --accept .pdf,.png
  fileinput screenshot -o widget.png --css bootstrap.min.css
  fileinput init --locale de -o preset.yaml

Configuration:
  Settings are read from fileinput.toml or fileinput.yaml in the current
  directory or $HOME/.config/fileinput, then FILEINPUT_* environment
  variables, then flags.`)
}
