package commands

import "github.com/agnivade/levenshtein"

// Names lists the subcommands in help order.
var Names = []string{"render", "check", "demo", "screenshot", "init", "version", "help"}

// Suggest returns the subcommand closest to name, or "" when none is close.
func Suggest(name string) string {
	best, bestDist := "", 3
	for _, n := range Names {
		if d := levenshtein.ComputeDistance(name, n); d < bestDist {
			best, bestDist = n, d
		}
	}
	return best
}
