// Command ufodemo moves a marker around with the keyboard and mouse.
//
// By default it opens a gogpu window. With -headless it replays a built-in
// input script against a manual clock and saves the last frame as a PNG.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/gg"
	"github.com/gogpu/ufo"
	"github.com/gogpu/ufo/app"
	"github.com/gogpu/ufo/app/window"
	"github.com/gogpu/ufo/keymap"
)

func main() {
	var (
		width    = flag.Int("width", 800, "window width")
		height   = flag.Int("height", 600, "window height")
		bindings = flag.String("bindings", "", "TOML key bindings (default: built-in)")
		logLevel = flag.String("log-level", "info", "log level: debug, info, warn or error")
		headless = flag.Bool("headless", false, "replay a scripted session instead of opening a window")
		output   = flag.String("output", "demo.png", "output file for -headless")
	)
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		log.Fatalf("Invalid -log-level: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	ufo.SetLogger(logger)
	gg.SetLogger(logger)

	keys := keymap.Default()
	if *bindings != "" {
		var err error
		if keys, err = keymap.LoadFile(*bindings); err != nil {
			log.Fatalf("Failed to load bindings: %v", err)
		}
	}

	cfg := app.DefaultConfig().
		WithTitle("ufo demo").
		WithSize(*width, *height)
	if quit, ok := keys.Lookup("quit"); ok {
		cfg = cfg.WithExitKey(quit.Key)
	}

	var loop app.Loop = window.New(cfg)
	if *headless {
		loop = app.NewHeadlessLoop(cfg, demoScript()).WithOutput(*output)
	}

	if err := loop.Run(newDemo(keys, loadFace())); err != nil {
		log.Fatalf("ufodemo: %v", err)
	}
}
