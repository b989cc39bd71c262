package fftsynth

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-granular/dsp/core"
	"github.com/cwbudde/algo-granular/dsp/filter/biquad"
	"github.com/cwbudde/algo-granular/dsp/osc"
	"github.com/cwbudde/algo-granular/dsp/spectrum"
	"github.com/cwbudde/algo-granular/dsp/tuning"
)

// State is the playback state of a [Synth].
type State int

const (
	// StateIdle means the synth has not been triggered yet.
	StateIdle State = iota
	// StatePlaying means the oscillator bank is sounding under the envelope.
	StatePlaying
	// StateSilent means the last envelope has finished.
	StateSilent
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlaying:
		return "playing"
	case StateSilent:
		return "silent"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

const (
	minEnvelopeShape = 0.01
	maxEnvelopeShape = 0.99

	defaultEnvelopeShape = 0.1
	defaultGrainSeconds  = 0.1
	defaultPrecision     = 0.6
	defaultOscSelect     = 1.0
)

// envelope holds the committed envelope of the grain being played.
type envelope struct {
	length    int
	attack    int
	slope     float64
	intercept float64
}

func newEnvelope(shape, seconds, sampleRate float64) envelope {
	shape = core.Clamp(shape, minEnvelopeShape, maxEnvelopeShape)
	length := max(1, int(seconds*sampleRate))
	slope := 1 / ((shape - 1) * float64(length))

	return envelope{
		length:    length,
		attack:    int(shape * float64(length)),
		slope:     slope,
		intercept: -slope * float64(length),
	}
}

// Synth is a single pitch-following voice. It is not safe for concurrent
// use.
type Synth struct {
	sampleRate float64
	analyzer   *spectrum.Analyzer
	rng        *rand.Rand

	// capture
	fifo      []float64
	fifoIndex int
	listening bool
	hann      osc.Oscillator
	grainMax  float64
	lowCut    *biquad.Filter
	highCut   *biquad.Filter
	lowCutOn  bool
	highCutOn bool

	// analysis
	precision  float64
	referenceA float64
	detected   float64
	frequency  float64

	// playback
	state     State
	sine      osc.Oscillator
	triangle  osc.Oscillator
	saw       osc.Oscillator
	oscSelect float64
	volume    float64
	count     int
	env       envelope
	left      float64
	right     float64

	stagedShape   float64
	stagedSeconds float64
}

// New returns a synth running at sampleRate Hz. All analysis memory is
// allocated here.
func New(sampleRate float64, opts ...Option) (*Synth, error) {
	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return nil, fmt.Errorf("fftsynth sample rate must be > 0: %f", sampleRate)
	}

	cfg := config{fftSize: FFTSize, seed: 1}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	analyzer, err := spectrum.NewAnalyzer(cfg.fftSize)
	if err != nil {
		return nil, fmt.Errorf("fftsynth: %w", err)
	}

	lowCut, err := biquad.NewFilter(biquad.KindHighpass, sampleRate, 20)
	if err != nil {
		return nil, fmt.Errorf("fftsynth: %w", err)
	}

	highCut, err := biquad.NewFilter(biquad.KindLowpass, sampleRate, 20000)
	if err != nil {
		return nil, fmt.Errorf("fftsynth: %w", err)
	}

	s := &Synth{
		sampleRate: sampleRate,
		analyzer:   analyzer,
		rng:        rand.New(rand.NewSource(cfg.seed)),
		fifo:       make([]float64, cfg.fftSize),
		hann:       osc.New(osc.Sine, sampleRate),
		lowCut:     lowCut,
		highCut:    highCut,
		precision:  defaultPrecision,
		referenceA: tuning.DefaultReferenceA,
		sine:       osc.New(osc.Sine, sampleRate),
		triangle:   osc.New(osc.Triangle, sampleRate),
		saw:        osc.New(osc.PolyBLEPSaw, sampleRate),
		oscSelect:  defaultOscSelect,
		left:       0.5,
		right:      0.5,
	}

	s.SetEnvelopeParams(defaultEnvelopeShape, defaultGrainSeconds)
	s.env = newEnvelope(s.stagedShape, s.stagedSeconds, sampleRate)

	return s, nil
}

// SetSeed rewinds the random source used for skip and pan draws.
func (s *Synth) SetSeed(seed int64) {
	s.rng.Seed(seed)
}

// SetEnvelopeParams stages the envelope shape in [0.01, 0.99] and the grain
// length in seconds. The envelope takes effect on the next trigger; the
// capture window follows the new length immediately.
func (s *Synth) SetEnvelopeParams(shape, grainLengthSeconds float64) {
	s.stagedShape = core.Sanitize(shape, minEnvelopeShape, maxEnvelopeShape, defaultEnvelopeShape)

	if grainLengthSeconds > 0 && !math.IsInf(grainLengthSeconds, 0) {
		s.stagedSeconds = grainLengthSeconds
		s.hann.SetFrequency(1 / (2 * grainLengthSeconds))
	}
}

// SetPrecision sets how far detected pitches are pulled towards the nearest
// note (0 free, 1 snapped) and the A4 reference in Hz.
func (s *Synth) SetPrecision(precision, referenceA float64) {
	s.precision = core.Sanitize(precision, 0, 1, defaultPrecision)
	s.referenceA = core.Sanitize(referenceA, 1, 20000, tuning.DefaultReferenceA)
}

// SetOscillatorSelect crossfades the bank: 1 is sine, 2 triangle, 3 saw.
func (s *Synth) SetOscillatorSelect(sel float64) {
	s.oscSelect = core.Sanitize(sel, 1, 3, defaultOscSelect)
}

// SetAnalysisBand limits the captured signal to [lowCutHz, highCutHz]
// before analysis. A value <= 0 disables that side.
func (s *Synth) SetAnalysisBand(lowCutHz, highCutHz float64) {
	s.lowCutOn = lowCutHz > 0
	if s.lowCutOn {
		s.lowCut.SetCutoff(lowCutHz)
	}

	s.highCutOn = highCutHz > 0
	if s.highCutOn {
		s.highCut.SetCutoff(highCutHz)
	}
}

// WriteInSamples feeds one stereo frame of the owning grain.
//
// newGrainStarted marks the first frame of a grain: the previous grain's
// capture is analysed if its peak exceeded threshold and a draw against
// chanceToSkip passes, then capture restarts. stereoRandomness spreads the
// pan drawn at each trigger.
func (s *Synth) WriteInSamples(left, right float64, newGrainStarted bool, threshold, chanceToSkip, stereoRandomness float64) {
	if newGrainStarted {
		if s.grainMax > threshold && s.rng.Float64() >= chanceToSkip {
			s.analyse(stereoRandomness)
		}

		clear(s.fifo[:s.fifoIndex])
		s.fifoIndex = 0
		s.listening = true
		s.hann.SetPhase(0)
		s.lowCut.Reset()
		s.highCut.Reset()
		s.grainMax = 0
	}

	if !s.listening {
		return
	}

	w := s.hann.Process()
	x := (left + right) * 0.5 * w * w

	if s.lowCutOn {
		x = s.lowCut.ProcessSample(x)
	}

	if s.highCutOn {
		x = s.highCut.ProcessSample(x)
	}

	s.fifo[s.fifoIndex] = x
	s.fifoIndex++

	if a := math.Abs(x); a > s.grainMax {
		s.grainMax = a
	}

	if s.hann.Phase() > 0.5 || s.fifoIndex >= len(s.fifo) {
		s.listening = false
	}
}

func (s *Synth) analyse(stereoRandomness float64) {
	bin, _, err := s.analyzer.Peak(s.fifo[:s.fifoIndex])
	if err != nil || bin <= 0 {
		return
	}

	s.detected = spectrum.BinFrequency(bin, s.sampleRate, s.analyzer.Size())
	s.frequency = tuning.AdjustedFrequency(s.detected, s.precision, s.referenceA)

	s.sine.SetFrequency(s.frequency)
	s.triangle.SetFrequency(s.frequency)
	s.saw.SetFrequency(s.frequency)

	s.volume = s.grainMax
	s.left = 0.5 + (s.rng.Float64()-0.5)*stereoRandomness
	s.right = 1 - s.left

	s.count = 0
	s.env = newEnvelope(s.stagedShape, s.stagedSeconds, s.sampleRate)
	s.state = StatePlaying
}

// ProcessSynth returns the next output sample of the voice.
func (s *Synth) ProcessSynth() float64 {
	if s.state != StatePlaying {
		return 0
	}

	s.count++
	if s.count >= s.env.length {
		s.state = StateSilent
		return 0
	}

	y := s.ProcessOscillators(s.oscSelect)
	n := float64(s.count)

	if s.count < s.env.attack {
		return y * math.Tanh(s.volume*2*n/float64(s.env.length))
	}

	return y * math.Tanh(s.volume*(n*s.env.slope+s.env.intercept))
}

// ProcessOscillators advances the bank by one sample and returns the mix
// for sel in [1, 3]. Each oscillator's weight falls off linearly with its
// distance from its own index; the sum is scaled by 1/3.
func (s *Synth) ProcessOscillators(sel float64) float64 {
	wSine := core.Clamp(2-sel, 0, 1)
	wTri := core.Clamp(1-math.Abs(sel-2), 0, 1)
	wSaw := core.Clamp(sel-2, 0, 1)

	sum := wSine*s.sine.Process() + wTri*s.triangle.Process() + wSaw*s.saw.Process()

	return sum / 3
}

// Reset stops playback and capture and clears the FIFO. Settings and the
// random source are kept.
func (s *Synth) Reset() {
	clear(s.fifo)
	s.fifoIndex = 0
	s.listening = false
	s.grainMax = 0
	s.state = StateIdle
	s.count = 0
	s.detected = 0
	s.frequency = 0
	s.volume = 0
	s.left = 0.5
	s.right = 0.5
	s.lowCut.Reset()
	s.highCut.Reset()
}

// State returns the playback state.
func (s *Synth) State() State { return s.state }

// Listening reports whether the capture window is open.
func (s *Synth) Listening() bool { return s.listening }

// DetectedFrequency returns the peak-bin frequency of the last analysed
// grain, before tuning.
func (s *Synth) DetectedFrequency() float64 { return s.detected }

// Frequency returns the frequency of the oscillator bank.
func (s *Synth) Frequency() float64 { return s.frequency }

// Volume returns the peak level of the grain that triggered playback.
func (s *Synth) Volume() float64 { return s.volume }

// StereoVolumeLeft returns the left pan gain.
func (s *Synth) StereoVolumeLeft() float64 { return s.left }

// StereoVolumeRight returns the right pan gain.
func (s *Synth) StereoVolumeRight() float64 { return s.right }

// FFTSize returns the analysis length.
func (s *Synth) FFTSize() int { return s.analyzer.Size() }

// Resolution returns the pitch resolution in Hz.
func (s *Synth) Resolution() float64 {
	return spectrum.Resolution(s.sampleRate, s.analyzer.Size())
}
