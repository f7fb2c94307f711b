package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/tilerun/assets"
	"github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/headless/core"
	"github.com/automoto/tilerun/shared/leveldata"
	"github.com/automoto/tilerun/systems"
	"gopkg.in/yaml.v3"
)

func main() {
	levelPath := flag.String("level", "", "Level file (.lvl or .tmx); empty plays the embedded demo")
	scriptPath := flag.String("script", "", "YAML input script")
	configPath := flag.String("config", "", "YAML file overriding the default configuration")
	frames := flag.Int("frames", 600, "Frames to idle when no script is given")
	realtime := flag.Bool("realtime", false, "Tick at the configured rate instead of as fast as possible")
	watch := flag.Bool("watch", false, "Reload the level file when it changes (realtime only)")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	var (
		grid *leveldata.Grid
		name string
		err  error
	)
	if *levelPath != "" {
		grid, err = leveldata.LoadFile(*levelPath)
		name = assets.LevelName(*levelPath)
	} else {
		grid, err = assets.LoadLevel(assets.DefaultLevel)
		name = assets.LevelName(assets.DefaultLevel)
	}
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	script := core.Script{{Frames: *frames}}
	if *scriptPath != "" {
		if script, err = core.LoadScript(*scriptPath); err != nil {
			log.Fatalf("Failed to load script: %v", err)
		}
	}

	session := core.NewSession(grid, name, *levelPath)
	defer session.Close()

	var report core.Report
	if *realtime {
		if *watch {
			if err := systems.StartReload(session.World()); err != nil {
				log.Printf("Warning: Could not watch level file: %v", err)
			}
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		report = core.NewGameLoop(session, script, config.C.TPS).Run(ctx)
	} else {
		report = session.Run(script)
	}

	out, err := yaml.Marshal(report)
	if err != nil {
		log.Fatalf("Failed to encode report: %v", err)
	}
	os.Stdout.Write(out)
}
