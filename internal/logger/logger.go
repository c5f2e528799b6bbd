// Package logger provides the tagged console output used by the CLI
// and the archive layer. Library packages do not log through it.
package logger

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	cyan   = "\033[36m"
	green  = "\033[32m"
	yellow = "\033[33m"
	red    = "\033[31m"
)

var colorized = isatty.IsTerminal(os.Stdout.Fd())

func paint(color, s string) string {
	if !colorized {
		return s
	}
	return color + s + reset
}

func emit(color, level, tag, msg string) {
	fmt.Printf("%s %s %s\n", paint(color, level), paint(bold, "["+tag+"]"), msg)
}

// Info prints a neutral progress message.
func Info(tag, msg string) { emit(cyan, " INFO", tag, msg) }

// Success prints a completed-step message.
func Success(tag, msg string) { emit(green, "   OK", tag, msg) }

// Warn prints a recoverable-problem message.
func Warn(tag, msg string) { emit(yellow, " WARN", tag, msg) }

// Error prints a failure message.
func Error(tag, msg string) { emit(red, "ERROR", tag, msg) }

// Banner prints the startup header with the build version.
func Banner(version string) {
	if version == "" {
		version = "dev"
	}
	fmt.Println(paint(bold, "pocketscan "+version))
}

// Section prints a visual divider before a group of messages.
func Section(name string) {
	fmt.Println(paint(bold, "--- "+name+" ---"))
}

// Stats prints a single key/value measurement.
func Stats(key string, value any) {
	fmt.Printf("%s %v\n", paint(cyan, key+":"), value)
}
