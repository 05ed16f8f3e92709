package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/smasonuk/asciitorus"
	"github.com/smasonuk/asciitorus/display/stream"
	"github.com/smasonuk/asciitorus/display/terminal"
)

// display is what the frame loop draws into.
type display interface {
	Show(g *asciitorus.Grid, status string) error
	Done() <-chan struct{}
	Close() error
}

// vecFlag parses "x,y,z".
type vecFlag struct{ v *asciitorus.Vec3 }

func (f vecFlag) String() string {
	if f.v == nil {
		return ""
	}
	return fmt.Sprintf("%g,%g,%g", f.v[0], f.v[1], f.v[2])
}

func (f vecFlag) Set(s string) error {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return fmt.Errorf("want x,y,z, got %q", s)
	}
	for i, p := range parts {
		n, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return fmt.Errorf("component %d: %w", i, err)
		}
		f.v[i] = n
	}
	return nil
}

func main() {
	cfg := asciitorus.DefaultConfig()
	cols := flag.Int("cols", 2*cfg.HalfWidth, "Grid width in characters (rounded down to even)")
	rows := flag.Int("rows", 2*cfg.HalfHeight, "Grid height in characters (rounded down to even)")
	flag.IntVar(&cfg.Torus.InnerCount, "inner-count", cfg.Torus.InnerCount, "Samples around the main ring")
	flag.IntVar(&cfg.Torus.OuterCount, "outer-count", cfg.Torus.OuterCount, "Samples around the tube")
	flag.Float64Var(&cfg.Torus.InnerRadius, "inner-radius", cfg.Torus.InnerRadius, "Main ring radius")
	flag.Float64Var(&cfg.Torus.OuterRadius, "outer-radius", cfg.Torus.OuterRadius, "Tube radius")
	flag.Var(vecFlag{&cfg.Light}, "light", "Light direction as x,y,z")
	flag.Float64Var(&cfg.IncrementX, "rx", cfg.IncrementX, "Rotation per frame about X (radians)")
	flag.Float64Var(&cfg.IncrementY, "ry", cfg.IncrementY, "Rotation per frame about Y (radians)")
	flag.Float64Var(&cfg.IncrementZ, "rz", cfg.IncrementZ, "Rotation per frame about Z (radians)")
	flag.StringVar(&cfg.Shading, "shading", cfg.Shading, "Shading mode: lambert, legacy or depth")
	flag.StringVar(&cfg.Palette, "palette", "", "Symbols from dimmest to brightest (default depends on shading)")
	flag.Float64Var(&cfg.DepthOffset, "depth-offset", cfg.DepthOffset, "Depth added before bucketing in depth mode")
	flag.Float64Var(&cfg.DepthDivisor, "depth-divisor", cfg.DepthDivisor, "Depth units per palette step in depth mode")
	flag.DurationVar(&cfg.Delay, "delay", cfg.Delay, "Delay between frames")
	mode := flag.String("display", "stream", "Output: stream, terminal or window")
	status := flag.Bool("status", false, "Print a status line under each frame")
	frames := flag.Int("frames", 0, "Stop after this many frames (0 runs forever)")
	logFile := flag.String("log", "", "Write logs to this file")
	flag.Parse()

	cfg.HalfWidth, cfg.HalfHeight = *cols/2, *rows/2

	closeLog, err := setupLog(*logFile, *mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}

	err = run(cfg, *mode, *status, *frames)
	closeLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLog points the standard logger at path, or silences it while a
// full-screen display owns the terminal. The returned func closes the file.
func setupLog(path, mode string) (func(), error) {
	log.SetPrefix("asciitorus: ")
	if path == "" {
		if mode != "stream" {
			log.SetOutput(io.Discard)
		}
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(os.Stderr)
		f.Close()
	}, nil
}

func run(cfg asciitorus.Config, mode string, showStatus bool, frames int) error {
	if frames < 0 {
		return fmt.Errorf("frames must not be negative, got %d", frames)
	}
	scene, err := asciitorus.NewScene(cfg)
	if err != nil {
		return err
	}
	log.Printf("Points: %d", scene.Mesh().Len())
	log.Printf("Grid: %dx%d, shading %s, display %s", 2*cfg.HalfWidth, 2*cfg.HalfHeight, cfg.Shading, mode)

	statusLine := func() string {
		if !showStatus {
			return ""
		}
		return scene.Status()
	}

	var out display
	switch mode {
	case "stream":
		out = stream.New(os.Stdout, frames != 1)
	case "terminal":
		t, err := terminal.New()
		if err != nil {
			return err
		}
		out = t
	case "window":
		return runWindow(cfg, scene, statusLine)
	default:
		return fmt.Errorf("unknown display %q", mode)
	}
	defer out.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return loop(ctx, scene, out, cfg.Delay, frames, statusLine)
}

func loop(ctx context.Context, scene *asciitorus.Scene, out display, delay time.Duration, frames int, status func() string) error {
	// first frame shows the unrotated torus
	if err := out.Show(scene.Frame(), status()); err != nil {
		return fmt.Errorf("show frame: %w", err)
	}
	if frames == 1 {
		return nil
	}

	ticker := time.NewTicker(delay)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Interrupted.")
			return nil
		case <-out.Done():
			log.Println("Quit.")
			return nil
		case <-ticker.C:
			g := scene.Step()
			if err := out.Show(g, status()); err != nil {
				return fmt.Errorf("show frame %d: %w", scene.Frames(), err)
			}
			if frames > 0 && scene.Frames()+1 >= frames {
				return nil
			}
		}
	}
}
