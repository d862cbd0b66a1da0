// Package simulator generates the synthetic resource readings shown by the
// dashboard. Nothing here reads the real host: every value is drawn from a
// bounded formula mixing uniform noise with a slow sinusoidal drift, using a
// caller-supplied random source so tests can pin the stream with a seed.
package simulator

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"
)

// Channel identifies one simulated metric stream.
type Channel string

const (
	CPU      Channel = "cpu"
	RAM      Channel = "ram"
	Disk     Channel = "disk"
	Upload   Channel = "upload"
	Download Channel = "download"
)

// Channels lists every channel in the order the dashboard updates them.
var Channels = []Channel{CPU, RAM, Disk, Upload, Download}

// ErrUnknownChannel is returned by NextValue for a channel with no generator.
var ErrUnknownChannel = errors.New("unknown channel")

// Generator produces one reading for the given wall-clock time.
type Generator func(rng *rand.Rand, now time.Time) float64

// Bounded reports whether readings of ch are percentages clamped to [0,100].
// Network rates are unbounded positive values in KB/s.
func (ch Channel) Bounded() bool {
	switch ch {
	case CPU, RAM, Disk:
		return true
	default:
		return false
	}
}

// Simulator draws readings for all channels from one random stream.
type Simulator struct {
	rng        *rand.Rand
	generators map[Channel]Generator
}

// New creates a Simulator over src. A nil src is seeded from the clock.
func New(src rand.Source) *Simulator {
	if src == nil {
		seed := uint64(time.Now().UnixNano())
		src = rand.NewPCG(seed, seed>>1)
	}
	return &Simulator{
		rng: rand.New(src),
		generators: map[Channel]Generator{
			CPU:      cpuLoad,
			RAM:      ramLoad,
			Disk:     diskUsage,
			Upload:   uploadRate,
			Download: downloadRate,
		},
	}
}

// NewSeeded creates a Simulator with a deterministic PCG stream.
func NewSeeded(seed uint64) *Simulator {
	return New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NextValue returns the reading for ch at now. Percent channels are always
// within [0,100]; network channels are rates in KB/s.
func (s *Simulator) NextValue(ch Channel, now time.Time) (float64, error) {
	gen, ok := s.generators[ch]
	if !ok {
		return 0, fmt.Errorf("next value for %q: %w", ch, ErrUnknownChannel)
	}
	return gen(s.rng, now), nil
}

// CPUTemperature returns a simulated package temperature in °C.
func (s *Simulator) CPUTemperature() float64 {
	return uniform(s.rng, 45, 60)
}

// CPUClock returns a simulated core clock in GHz.
func (s *Simulator) CPUClock() float64 {
	return uniform(s.rng, 2.4, 3.2)
}

func cpuLoad(rng *rand.Rand, now time.Time) float64 {
	return clamp(uniform(rng, 20, 50)+20*math.Sin(millis(now)/10000), 0, 100)
}

func ramLoad(rng *rand.Rand, now time.Time) float64 {
	return clamp(uniform(rng, 40, 60)+15*math.Cos(millis(now)/15000), 0, 100)
}

// diskUsage drifts slowly with no noise term; disk fill is near-static.
func diskUsage(_ *rand.Rand, now time.Time) float64 {
	return clamp(65+5*math.Sin(millis(now)/50000), 0, 100)
}

func uploadRate(rng *rand.Rand, _ time.Time) float64 {
	return uniform(rng, 100, 600)
}

func downloadRate(rng *rand.Rand, _ time.Time) float64 {
	return uniform(rng, 500, 2000)
}

// uniform returns a value in [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func millis(t time.Time) float64 {
	return float64(t.UnixMilli())
}
