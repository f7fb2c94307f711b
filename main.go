package main

import (
	"flag"
	"fmt"
	"image"
	"log"

	"github.com/automoto/tilerun/assets"
	"github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/scenes"
	"github.com/automoto/tilerun/shared/leveldata"
	"github.com/automoto/tilerun/systems/client"
	"github.com/automoto/tilerun/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Close()
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(scene Scene) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

// chooseLevel picks the level to play: the -level file, then the last level
// played, then the embedded default, then a generated floor.
func chooseLevel(path string, saved *client.SavedSettings) scenes.LevelSource {
	if path == "" && saved != nil {
		path = saved.LastLevel
	}
	if path != "" {
		grid, err := leveldata.LoadFile(path)
		if err == nil {
			return scenes.LevelSource{Grid: grid, Name: assets.LevelName(path), Path: path}
		}
		log.Printf("Warning: Could not load level %s: %v", path, err)
	}

	grid, err := assets.LoadLevel(assets.DefaultLevel)
	if err == nil {
		return scenes.LevelSource{Grid: grid, Name: assets.LevelName(assets.DefaultLevel)}
	}
	log.Printf("Warning: Could not load embedded level: %v", err)
	return scenes.LevelSource{Grid: factory.DefaultGrid(), Name: "generated"}
}

func main() {
	levelPath := flag.String("level", "", "Level file to play (.lvl level text or .tmx Tiled map)")
	configPath := flag.String("config", "", "YAML file overriding the default configuration")
	watch := flag.Bool("watch", false, "Reload the level file when it changes on disk")
	debug := flag.Bool("debug", false, "Start with the collision overlay shown")
	list := flag.Bool("list", false, "List the embedded levels and exit")
	flag.Parse()

	if *list {
		names, err := assets.LevelNames()
		if err != nil {
			log.Fatalf("Failed to list levels: %v", err)
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return
	}

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *debug {
		config.Debug.ShowSpace = true
	}
	client.ResolveBindings()

	ebiten.SetWindowSize(config.C.Width*config.C.Scale, config.C.Height*config.C.Scale)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)

	// Initialize persistence and load saved settings
	var saved *client.SavedSettings
	if err := client.InitPersistence(config.C.Title); err == nil {
		saved = client.LoadSettings()
	}

	source := chooseLevel(*levelPath, saved)
	source.Watch = *watch && source.Path != ""

	scene := scenes.NewPlatformerScene(source, saved)
	defer scene.Close()

	if err := ebiten.RunGame(NewGame(scene)); err != nil {
		log.Fatal(err)
	}
}
