// internal/audio/sound_manager.go
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"go-galaga/internal/event"
)

const sampleRate = beep.SampleRate(44100)

// SoundManager plays the game's one-shot procedural effects. It listens on
// the event dispatcher, so gameplay code never talks to the speaker
// directly. If the speaker cannot initialize the game simply runs silent.
type SoundManager struct {
	mu          sync.Mutex
	initialized bool
}

func NewSoundManager() *SoundManager {
	return &SoundManager{}
}

// Initialize opens the speaker. Safe to call more than once.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return err
	}
	sm.initialized = true
	return nil
}

// Cleanup stops all playing sounds.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	sm.initialized = false
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Play(s)
}

// OnEvent maps gameplay events to sound effects.
func (sm *SoundManager) OnEvent(e event.Event) {
	switch e.Type {
	case event.ProjectileFired:
		sm.play(NewShotEffect(sampleRate))
	case event.EnemyDestroyed:
		sm.play(NewExplosionEffect(sampleRate))
	case event.PlayerHit, event.GameOver:
		sm.play(NewPlayerHitEffect(sampleRate))
	case event.WaveCleared:
		sm.play(NewWaveClearEffect(sampleRate))
	}
}
