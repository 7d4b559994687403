// cmd/game/main.go
package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-galaga/internal/audio"
	"go-galaga/internal/config"
	"go-galaga/internal/state"
)

const startFromGame = false // true to skip the menu

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()

	sound := audio.NewSoundManager()
	if err := sound.Initialize(); err != nil {
		log.Printf("audio disabled: %v", err)
	}
	defer sound.Cleanup()

	sm := state.NewStateMachine()
	if startFromGame {
		sm.SetState(state.NewGameState(sm, sound))
	} else {
		sm.SetState(state.NewMenuState(sm, sound))
	}
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Go Galaga")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
