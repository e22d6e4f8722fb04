package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"gridsnake/game/entity"
)

const (
	sampleRate  = beep.SampleRate(48000)
	latency     = 100 * time.Millisecond
	chimeLength = 120 * time.Millisecond
	thudLength  = 250 * time.Millisecond
)

// SoundManager plays short cues for game events. The zero value is muted:
// OnStep does nothing until the manager owns the speaker.
type SoundManager struct {
	mu    sync.Mutex
	mixer *beep.Mixer
	live  bool
}

// Open takes the speaker and starts an empty mixer on it
func Open() (*SoundManager, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(latency)); err != nil {
		return nil, fmt.Errorf("speaker: %w", err)
	}

	sm := &SoundManager{mixer: &beep.Mixer{}, live: true}
	speaker.Play(sm.mixer)
	return sm, nil
}

// Close silences pending cues and gives the speaker back. Later OnStep calls
// are ignored.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	live := sm.live
	sm.live = false
	sm.mu.Unlock()

	if live {
		speaker.Clear()
		speaker.Close()
	}
}

// OnStep plays the cue for a step result. Plain moves are silent.
func (sm *SoundManager) OnStep(res entity.StepResult) {
	switch res {
	case entity.AteFood:
		sm.play(beep.Take(sampleRate.N(chimeLength), NewChimeGenerator(sampleRate, 660, 990)))
	case entity.Collided:
		sm.play(beep.Take(sampleRate.N(thudLength), NewThudGenerator(sampleRate, 180)))
	}
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.live {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// ChimeGenerator sweeps from one pitch to another over the first 100ms
type ChimeGenerator struct {
	sr       beep.SampleRate
	from, to float64
	pos      int
	phase    float64
}

func NewChimeGenerator(sr beep.SampleRate, from, to float64) *ChimeGenerator {
	return &ChimeGenerator{
		sr:   sr,
		from: from,
		to:   to,
	}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		progress := math.Min(t/0.1, 1.0)
		freq := g.from + (g.to-g.from)*progress
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		// Quick attack, exponential decay
		envelope := math.Min(t/0.005, 1.0) * math.Exp(-t*20)
		sample := 0.25 * math.Sin(g.phase) * envelope

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}

// ThudGenerator is a triangle wave whose pitch falls an octave every
// 60ms, fading out as it drops
type ThudGenerator struct {
	sr    beep.SampleRate
	start float64
	pos   int
	phase float64
}

func NewThudGenerator(sr beep.SampleRate, start float64) *ThudGenerator {
	return &ThudGenerator{sr: sr, start: start}
}

func (g *ThudGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	step := 1 / float64(g.sr)
	for i := range samples {
		t := float64(g.pos) * step

		freq := g.start * math.Exp2(-t/0.06)
		g.phase = math.Mod(g.phase+freq*step, 1)

		// triangle in [-1, 1]
		tri := 4*math.Abs(g.phase-0.5) - 1
		v := 0.3 * tri * math.Exp(-t*12)

		samples[i] = [2]float64{v, v}
		g.pos++
	}
	return len(samples), true
}

func (g *ThudGenerator) Err() error {
	return nil
}
