//go:build nowindow

package main

import (
	"errors"

	"github.com/smasonuk/asciitorus"
)

var errNoWindow = errors.New("window display not built in (nowindow tag)")

func runWindow(asciitorus.Config, *asciitorus.Scene, func() string) error {
	return errNoWindow
}
