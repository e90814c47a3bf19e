// Package main renders the particle field without a window and writes the
// final frame as a PNG. Useful for checking parameter changes and for
// reproducible screenshots.
//
// Usage:
//
//	go run ./cmd/snapshot [flags]
//
// Flags:
//
//	--width, --height <px>   Surface size (default 1280x720)
//	--viewport <px>          Viewport width that decides the particle count (default = width)
//	--frames <n>             Frames to simulate before the snapshot (default 300)
//	--seed <n>               Random seed (default 1)
//	--pointer <x,y>          Hold the pointer at x,y for every frame
//	--sweep <x0,y0:x1,y1>    Move the pointer linearly from the first to the second point
//	--config <path>          YAML config file
//	--out <path>             Output PNG (default snapshot.png)
//	--verbose                Enable verbose logging
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"

	"github.com/gonewx/portfolio-fx/internal/particlefield"
	"github.com/gonewx/portfolio-fx/pkg/config"
	"github.com/gonewx/portfolio-fx/pkg/render"
	"github.com/gonewx/portfolio-fx/pkg/utils"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "snapshot: %v\n", err)
		os.Exit(1)
	}
}

// options 命令行参数
type options struct {
	width, height int
	viewport      int
	frames        int
	seed          int64
	pointer       string
	sweep         string
	configPath    string
	out           string
	verbose       bool
}

func parseFlags(args []string) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("snapshot", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.IntVar(&opts.width, "width", config.DefaultWindowWidth, "surface width")
	fs.IntVar(&opts.height, "height", config.DefaultWindowHeight, "surface height")
	fs.IntVar(&opts.viewport, "viewport", 0, "viewport width deciding the particle count (0 = width)")
	fs.IntVar(&opts.frames, "frames", 300, "frames to simulate")
	fs.Int64Var(&opts.seed, "seed", 1, "random seed")
	fs.StringVar(&opts.pointer, "pointer", "", "fixed pointer position x,y")
	fs.StringVar(&opts.sweep, "sweep", "", "pointer sweep x0,y0:x1,y1")
	fs.StringVar(&opts.configPath, "config", "", "YAML config file")
	fs.StringVar(&opts.out, "out", "snapshot.png", "output PNG path")
	fs.BoolVar(&opts.verbose, "verbose", false, "enable verbose logging")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if opts.width <= 0 || opts.height <= 0 {
		return nil, fmt.Errorf("size must be positive, got %dx%d", opts.width, opts.height)
	}
	if opts.frames < 0 {
		return nil, fmt.Errorf("frames must not be negative, got %d", opts.frames)
	}
	if opts.pointer != "" && opts.sweep != "" {
		return nil, errors.New("--pointer and --sweep are mutually exclusive")
	}
	if opts.viewport == 0 {
		opts.viewport = opts.width
	}
	return opts, nil
}

// pointerScript 返回第 frame 帧的指针位置，ok 为 false 表示指针不在表面上
type pointerScript func(frame, frames int) (x, y float64, ok bool)

func noPointer(int, int) (float64, float64, bool) { return 0, 0, false }

func parsePoint(s string) (x, y float64, err error) {
	if _, err := fmt.Sscanf(s, "%g,%g", &x, &y); err != nil {
		return 0, 0, fmt.Errorf("invalid point %q (want x,y): %w", s, err)
	}
	return x, y, nil
}

func buildScript(opts *options) (pointerScript, error) {
	switch {
	case opts.pointer != "":
		x, y, err := parsePoint(opts.pointer)
		if err != nil {
			return nil, err
		}
		return func(int, int) (float64, float64, bool) { return x, y, true }, nil

	case opts.sweep != "":
		var from, to string
		for i := 0; i < len(opts.sweep); i++ {
			if opts.sweep[i] == ':' {
				from, to = opts.sweep[:i], opts.sweep[i+1:]
				break
			}
		}
		if from == "" || to == "" {
			return nil, fmt.Errorf("invalid sweep %q (want x0,y0:x1,y1)", opts.sweep)
		}
		x0, y0, err := parsePoint(from)
		if err != nil {
			return nil, err
		}
		x1, y1, err := parsePoint(to)
		if err != nil {
			return nil, err
		}
		return func(frame, frames int) (float64, float64, bool) {
			t := 1.0
			if frames > 1 {
				t = float64(frame) / float64(frames-1)
			}
			return utils.Lerp(x0, x1, t), utils.Lerp(y0, y1, t), true
		}, nil
	}
	return noPointer, nil
}

func run(args []string, stdout io.Writer) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	if !opts.verbose {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	script, err := buildScript(opts)
	if err != nil {
		return err
	}

	surface := particlefield.FixedSurface{W: float64(opts.width), H: float64(opts.height)}
	field := particlefield.New(surface, float64(opts.viewport), cfg.Field.Params(), rand.New(rand.NewSource(opts.seed)))

	for i := 0; i < opts.frames; i++ {
		x, y, ok := script(i, opts.frames)
		if ok && x >= 0 && y >= 0 && x < surface.W && y < surface.H {
			field.PointerMove(x, y)
		} else {
			field.PointerLeave()
		}
		field.Step()
	}
	log.Printf("[Snapshot] Simulated %d frames with %d particles", opts.frames, field.Len())

	background, err := config.ParseHexColor(cfg.Window.Background)
	if err != nil {
		return err
	}
	canvas := render.NewPNGCanvas(opts.width, opts.height, background)
	field.Render(canvas)

	if err := canvas.SavePNG(opts.out); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "wrote %s (%dx%d, %d particles, %d frames)\n",
		opts.out, opts.width, opts.height, field.Len(), opts.frames)
	return nil
}
