package main

import (
	"github.com/multimediallc/advent-2018/internal/input"
)

var isStdinPiped = input.IsStdinPiped

// resolveInput picks stdin when no path was given and input is being piped.
// An empty result means the configured default path for the day.
func resolveInput(path string) string {
	if path == "" && isStdinPiped() {
		return input.Stdin
	}
	return path
}
