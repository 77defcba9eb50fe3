package main

import (
	"testing"

	"github.com/vantor3d/orbitcam/config"
)

func TestDrainConfigEventsReloadsOnGameGoroutine(t *testing.T) {
	oldC := *config.C
	oldCamera := config.Camera
	t.Cleanup(func() {
		*config.C = oldC
		config.Camera = oldCamera
	})

	config.C.Width = 1
	events := make(chan string, 1)
	events <- configPath
	g := &Game{configEvents: events}

	g.drainConfigEvents()

	if config.C.Width != 1280 {
		t.Errorf("Width = %d, want 1280 reloaded from %s", config.C.Width, configPath)
	}
}

func TestDrainConfigEventsDoesNotBlock(t *testing.T) {
	g := &Game{configEvents: make(chan string)}
	g.drainConfigEvents()

	g = &Game{}
	g.drainConfigEvents()

	closed := make(chan string)
	close(closed)
	g = &Game{configEvents: closed}
	g.drainConfigEvents()
	if g.configEvents != nil {
		t.Error("closed event channel should be dropped")
	}
}
