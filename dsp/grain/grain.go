package grain

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-granular/dsp/osc"
)

// envelopeSteepness scales how quickly the grain envelope reaches unity as
// shape goes from 0 to 1.
const envelopeSteepness = 20

// Grain reads a windowed, randomly offset slice of a [Buffer].
//
// A triangular ramp at 1/period drives both the envelope and the grain
// boundaries. On every ramp wrap the grain re-reads the buffer's readable
// length, jumps its read head by a random amount, decides whether the next
// grain is muted, and draws a new stereo position.
type Grain struct {
	ramp osc.Oscillator
	rng  *rand.Rand

	readPos    int
	maxReadPos int

	sampleEnvelope float64
	skipVolume     float64
	left           float64
	right          float64
}

// NewGrain returns a grain running at sampleRate Hz with its own random
// source seeded by seed.
func NewGrain(sampleRate float64, seed int64) *Grain {
	g := &Grain{
		ramp:       osc.New(osc.TriRamp, sampleRate),
		rng:        rand.New(rand.NewSource(seed)),
		skipVolume: 1,
		left:       0.5,
		right:      0.5,
	}

	return g
}

// SetSampleRate changes the rate of the grain ramp.
func (g *Grain) SetSampleRate(sampleRate float64) {
	g.ramp.SetSampleRate(sampleRate)
}

// Seed rewinds the grain's random source.
func (g *Grain) Seed(seed int64) {
	g.rng.Seed(seed)
}

// SetGrainPhase moves the ramp phase; values are wrapped into [0, 1).
func (g *Grain) SetGrainPhase(phase float64) {
	g.ramp.SetPhase(phase)
}

// Reset returns the read head, envelope and pan to their initial state. The
// readable length is taken again from the next Process call. The ramp phase
// and random source are left alone.
func (g *Grain) Reset() {
	g.readPos = 0
	g.maxReadPos = 0
	g.sampleEnvelope = 0
	g.skipVolume = 1
	g.left = 0.5
	g.right = 0.5
}

// Process advances the grain by one sample.
//
// period is the grain length in seconds and maxReadPos the buffer's current
// readable length. randomisation scales the read-head jump, shape the
// envelope steepness, chanceToSkip the probability that a grain is muted
// and stereoRandomness the pan spread; all are expected in [0, 1].
func (g *Grain) Process(period float64, maxReadPos int, randomisation, shape, chanceToSkip, stereoRandomness float64) {
	g.readPos++

	// Until its first boundary the grain reads against the buffer's current
	// length so the read head moves from the start.
	if g.maxReadPos == 0 {
		g.maxReadPos = maxReadPos
	}

	if period > 0 {
		g.ramp.SetFrequency(1 / period)
	} else {
		g.ramp.SetFrequency(0)
	}

	ramp := g.ramp.Process()
	g.sampleEnvelope = math.Min(1, (envelopeSteepness*shape+1)*ramp)

	if g.ramp.NewCycleStarted() {
		g.maxReadPos = maxReadPos
		g.readPos += int(math.Floor((g.rng.Float64() - 0.5) * float64(g.maxReadPos) * randomisation))

		if g.rng.Float64() < chanceToSkip {
			g.skipVolume = 0
		} else {
			g.skipVolume = 1
		}

		g.left = 0.5 + (g.rng.Float64()-0.5)*stereoRandomness
		g.right = 1 - g.left
	}

	if g.readPos >= g.maxReadPos || g.readPos < 0 {
		g.readPos = 0
	}
}

// ReadPos returns the buffer index the grain is reading.
func (g *Grain) ReadPos() int { return g.readPos }

// SampleEnvelope returns the envelope without the skip gate.
func (g *Grain) SampleEnvelope() float64 { return g.sampleEnvelope }

// Envelope returns the envelope multiplied by the skip gate.
func (g *Grain) Envelope() float64 { return g.sampleEnvelope * g.skipVolume }

// Skipped reports whether the current grain is muted.
func (g *Grain) Skipped() bool { return g.skipVolume == 0 }

// StereoVolumeLeft returns the left pan gain.
func (g *Grain) StereoVolumeLeft() float64 { return g.left }

// StereoVolumeRight returns the right pan gain.
func (g *Grain) StereoVolumeRight() float64 { return g.right }

// NewGrainStarted reports whether the last Process call began a new grain.
func (g *Grain) NewGrainStarted() bool { return g.ramp.NewCycleStarted() }

// Phase returns the ramp phase in [0, 1).
func (g *Grain) Phase() float32 { return g.ramp.Phase() }
