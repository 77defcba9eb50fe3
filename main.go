package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vantor3d/orbitcam/config"
	"github.com/vantor3d/orbitcam/fonts"
	"github.com/vantor3d/orbitcam/scenes"
	"github.com/vantor3d/orbitcam/systems"
)

const configPath = "orbitcam.yaml"

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
	// configEvents delivers file-change notifications from the watcher
	// goroutine; the reload itself runs here, on the game goroutine, so
	// Layout never races a config write.
	configEvents <-chan string
}

func NewGame() *Game {
	fonts.LoadFontWithSize(fonts.Hud, goregular.TTF, 14)
	fonts.LoadFontWithSize(fonts.HudSmall, goregular.TTF, 12)

	return &Game{
		scene: scenes.NewDemoScene(),
	}
}

func (g *Game) Update() error {
	g.drainConfigEvents()
	g.scene.Update()
	return nil
}

func (g *Game) drainConfigEvents() {
	for {
		select {
		case _, ok := <-g.configEvents:
			if !ok {
				g.configEvents = nil
				return
			}
			if err := config.Load(configPath); err != nil {
				log.Printf("Warning: config reload failed: %v", err)
			}
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	if err := config.Load(configPath); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	game := NewGame()

	// Reload camera knobs live when the override file changes.
	if watcher, err := config.NewWatcher("."); err != nil {
		log.Printf("Warning: config watcher unavailable: %v", err)
	} else {
		defer watcher.Close()
		game.configEvents = watcher.Events
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := systems.InitPersistence("orbitcam"); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
