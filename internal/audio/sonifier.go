// Package audio sonifies the simulation: an output-only stream whose
// pitch tracks the z-coordinate and whose loudness tracks the speed of
// the state point. Chaotic wandering between the attractor's wings
// becomes an audible drift.
package audio

import (
	"math"
	"sync"

	"github.com/gordonklaus/portaudio"
)

const (
	sampleRate = 44100
	bufferSize = 1024

	baseFreq = 110.0 // A2 at z=0
	freqSpan = 330.0 // up to ~A4 at the top of the attractor
)

type Sonifier struct {
	stream *portaudio.Stream
	active bool

	mu    sync.Mutex
	z     float64 // latest z, normalized by caller
	speed float64

	// synthesis state, audio goroutine only
	phase       float64
	freqSmooth  float64
	levelSmooth float64
	filterState float64
}

func NewSonifier() *Sonifier {
	return &Sonifier{freqSmooth: baseFreq}
}

// Start opens the default output device. Failure is not fatal to the
// visualizer; the caller just runs silent.
func (s *Sonifier) Start() error {
	if err := portaudio.Initialize(); err != nil {
		return err
	}
	stream, err := portaudio.OpenDefaultStream(0, 2, sampleRate, bufferSize, s.process)
	if err != nil {
		portaudio.Terminate()
		return err
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return err
	}
	s.stream = stream
	s.active = true
	return nil
}

func (s *Sonifier) Active() bool { return s.active }

func (s *Sonifier) Stop() {
	if s.stream != nil {
		s.stream.Stop()
		s.stream.Close()
		s.stream = nil
	}
	if s.active {
		portaudio.Terminate()
	}
	s.active = false
}

// Observe feeds the current state into the synth. z is expected in the
// attractor's natural range (roughly 0..50); speed is the norm of the
// derivative. Called from the frame loop, any rate.
func (s *Sonifier) Observe(z, speed float64) {
	s.mu.Lock()
	s.z = math.Max(0, math.Min(z/50.0, 1))
	s.speed = math.Min(speed/300.0, 1)
	s.mu.Unlock()
}

// One-pole low pass, warms up the triangle into a flute-ish tone.
func lpf(sample, cutoff, state float64) (float64, float64) {
	rc := 1.0 / (2.0 * math.Pi * cutoff)
	dt := 1.0 / float64(sampleRate)
	alpha := dt / (rc + dt)
	out := state + alpha*(sample-state)
	return out, out
}

func triangle(phase float64) float64 {
	p := phase - math.Floor(phase)
	return 4.0*math.Abs(p-0.5) - 1.0
}

func (s *Sonifier) process(out [][]float32) {
	s.mu.Lock()
	targetFreq := baseFreq + freqSpan*s.z
	targetLevel := 0.05 + 0.25*s.speed
	s.mu.Unlock()

	for i := range out[0] {
		// slow glide so parameter jumps do not click
		s.freqSmooth += (targetFreq - s.freqSmooth) * 0.0005
		s.levelSmooth += (targetLevel - s.levelSmooth) * 0.0005

		sample := triangle(s.phase) * s.levelSmooth
		sample, s.filterState = lpf(sample, 1200, s.filterState)

		out[0][i] = float32(sample)
		out[1][i] = float32(sample)

		s.phase += s.freqSmooth / sampleRate
		if s.phase > 1e6 {
			s.phase -= math.Floor(s.phase)
		}
	}
}
