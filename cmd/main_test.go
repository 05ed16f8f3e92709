package main

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/smasonuk/asciitorus"
)

type recorder struct {
	grids  []*asciitorus.Grid
	status []string
	done   chan struct{}
}

func (r *recorder) Show(g *asciitorus.Grid, status string) error {
	r.grids = append(r.grids, g)
	r.status = append(r.status, status)
	return nil
}

func (r *recorder) Done() <-chan struct{} { return r.done }
func (r *recorder) Close() error          { return nil }

func testScene(t *testing.T) *asciitorus.Scene {
	t.Helper()
	s, err := asciitorus.NewScene(asciitorus.DefaultConfig())
	if err != nil {
		t.Fatalf("NewScene() error = %v", err)
	}
	return s
}

func TestLoopStopsAfterFrames(t *testing.T) {
	s := testScene(t)
	rec := &recorder{}
	err := loop(context.Background(), s, rec, time.Millisecond, 3, s.Status)
	if err != nil {
		t.Fatalf("loop() error = %v", err)
	}
	if len(rec.grids) != 3 {
		t.Fatalf("shown %d frames, want 3", len(rec.grids))
	}
	if rec.status[0] != "frame 0 x=0.00 y=0.00 z=0.00" {
		t.Errorf("first status = %q", rec.status[0])
	}
	if s.Frames() != 2 {
		t.Errorf("scene stepped %d times, want 2", s.Frames())
	}
}

func TestLoopSingleFrame(t *testing.T) {
	s := testScene(t)
	rec := &recorder{}
	if err := loop(context.Background(), s, rec, time.Millisecond, 1, func() string { return "" }); err != nil {
		t.Fatalf("loop() error = %v", err)
	}
	if len(rec.grids) != 1 || s.Frames() != 0 {
		t.Errorf("shown %d frames after %d steps", len(rec.grids), s.Frames())
	}
}

func TestLoopStopsOnQuitAndCancel(t *testing.T) {
	s := testScene(t)
	rec := &recorder{done: make(chan struct{})}
	close(rec.done)
	if err := loop(context.Background(), s, rec, time.Hour, 0, func() string { return "" }); err != nil {
		t.Fatalf("loop() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := loop(ctx, s, &recorder{}, time.Hour, 0, func() string { return "" }); err != nil {
		t.Fatalf("loop() error = %v", err)
	}
}

func TestVecFlag(t *testing.T) {
	var v asciitorus.Vec3
	f := vecFlag{&v}
	if err := f.Set("1, -2.5,3"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if v != (asciitorus.Vec3{1, -2.5, 3}) {
		t.Errorf("parsed %v", v)
	}
	if f.String() != "1,-2.5,3" {
		t.Errorf("String() = %q", f.String())
	}

	for _, bad := range []string{"", "1,2", "1,2,x", "1,2,3,4"} {
		if err := f.Set(bad); err == nil {
			t.Errorf("Set(%q) did not fail", bad)
		}
	}
}

func TestRunRejectsBadArguments(t *testing.T) {
	testCases := []struct {
		name   string
		mode   string
		frames int
	}{
		{"negative frames", "stream", -1},
		{"unknown display", "printer", 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if err := run(asciitorus.DefaultConfig(), tc.mode, false, tc.frames); err == nil {
				t.Errorf("run(%q, frames %d) did not fail", tc.mode, tc.frames)
			}
		})
	}
}

func TestSetupLogWritesAndCloses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "torus.log")
	closeLog, err := setupLog(path, "terminal")
	if err != nil {
		t.Fatalf("setupLog() error = %v", err)
	}
	log.Printf("Points: %d", 16)
	closeLog()
	log.Printf("after close")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	got := string(data)
	if !strings.Contains(got, "asciitorus: ") || !strings.Contains(got, "Points: 16") {
		t.Errorf("log file = %q", got)
	}
	if strings.Contains(got, "after close") {
		t.Error("logger still writes to the file after close")
	}
}

func TestSetupLogBadPath(t *testing.T) {
	if _, err := setupLog(filepath.Join(t.TempDir(), "missing", "torus.log"), "stream"); err == nil {
		t.Error("setupLog() with a missing directory did not fail")
	}
}
