package ui

import (
	"fmt"
	"os"
)

// OK prints a one-line success message in the current theme.
func OK(msg string) {
	fmt.Println(current.Success.Render("✔ " + msg))
}

// Fail prints a one-line error message to stderr.
func Fail(msg string) {
	fmt.Fprintln(os.Stderr, current.Error.Render("✖ "+msg))
}
