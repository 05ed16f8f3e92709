//go:build !nowindow

package main

import (
	"github.com/smasonuk/asciitorus"
	"github.com/smasonuk/asciitorus/display/window"
)

func runWindow(cfg asciitorus.Config, scene *asciitorus.Scene, status func() string) error {
	w := window.New(2*cfg.HalfWidth, 2*cfg.HalfHeight, func() (*asciitorus.Grid, string) {
		g := scene.Step()
		return g, status()
	})
	return window.Run(w, "asciitorus", cfg.Delay)
}
