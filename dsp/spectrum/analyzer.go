package spectrum

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Analyzer computes the magnitude spectrum of real frames of a fixed size.
type Analyzer struct {
	size int
	plan *algofft.Plan[complex128]

	work []complex128
	re   []float64
	im   []float64
	mag  []float64
}

// NewAnalyzer allocates a forward FFT plan and scratch for size-point
// frames. size must be a power of two >= 2.
func NewAnalyzer(size int) (*Analyzer, error) {
	if size < 2 || size&(size-1) != 0 {
		return nil, fmt.Errorf("spectrum: analyzer size must be a power of two >= 2: %d", size)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	half := size / 2

	return &Analyzer{
		size: size,
		plan: plan,
		work: make([]complex128, size),
		re:   make([]float64, half),
		im:   make([]float64, half),
		mag:  make([]float64, half),
	}, nil
}

// Size returns the FFT length.
func (a *Analyzer) Size() int { return a.size }

// Bins returns the number of magnitude bins produced per frame.
func (a *Analyzer) Bins() int { return len(a.mag) }

// Magnitudes transforms frame and returns the magnitudes of bins
// [0, Size/2). Frames shorter than Size are zero padded. The returned slice
// is owned by the analyzer and overwritten by the next call.
func (a *Analyzer) Magnitudes(frame []float64) ([]float64, error) {
	if len(frame) > a.size {
		return nil, fmt.Errorf("spectrum: frame length %d exceeds analyzer size %d", len(frame), a.size)
	}

	for i, v := range frame {
		a.work[i] = complex(v, 0)
	}

	clear(a.work[len(frame):])

	if err := a.plan.Forward(a.work, a.work); err != nil {
		return nil, fmt.Errorf("spectrum: forward FFT failed: %w", err)
	}

	splitComplex(a.re, a.im, a.work[:len(a.mag)])
	MagnitudeFromParts(a.mag, a.re, a.im)

	return a.mag, nil
}

// Peak transforms frame and returns its largest bin in [0, Size/2) together
// with that bin's magnitude. See [PeakBin] for the degenerate results.
func (a *Analyzer) Peak(frame []float64) (int, float64, error) {
	mag, err := a.Magnitudes(frame)
	if err != nil {
		return -1, 0, err
	}

	bin, peak := PeakBin(mag)

	return bin, peak, nil
}
