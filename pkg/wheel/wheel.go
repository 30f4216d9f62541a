// Package wheel implements the spinning-wheel selection engine. The winning
// item is fixed the moment a spin starts; the delay before the reveal only
// exists so a rotating display can play out.
package wheel

import (
	"errors"
	"math"
	"sync"
	"time"

	"tableflip.dev/roulette/pkg/random"
)

// RevealDelay is how long a spin stays in the Spinning phase before the
// outcome is reported.
const RevealDelay = 2 * time.Second

// Extra full rotations are purely cosmetic and never affect the outcome.
const (
	minExtraTurns = 4
	maxExtraTurns = 6
)

var (
	ErrNoItems  = errors.New("wheel: no items to spin")
	ErrSpinning = errors.New("wheel: spin already in progress")
)

// Phase is the engine state: Idle, or Spinning until the reveal fires.
type Phase int

const (
	Idle Phase = iota
	Spinning
)

// Result reports a finished draw. Rotation is the accumulated rotation in
// degrees after this spin; repeated spins keep turning the same direction.
type Result struct {
	Index    int
	Item     string
	Rotation float64
}

// Wheel performs weighted-equal random selection over a list of items.
type Wheel struct {
	mu       sync.Mutex
	src      random.Source
	sched    Scheduler
	phase    Phase
	rotation float64
	cancel   func()
}

// New builds a wheel around the given randomness source. A nil scheduler
// gets the real timer-backed one.
func New(src random.Source, sched Scheduler) *Wheel {
	if sched == nil {
		sched = TimerScheduler{}
	}
	return &Wheel{src: src, sched: sched}
}

// Spin draws the winner, accumulates the presentational rotation, and
// schedules the reveal. done runs once after RevealDelay with the result
// chosen here. A spin while already Spinning is refused so two draws can
// never race one animation.
func (w *Wheel) Spin(items []string, done func(Result)) (Result, error) {
	w.mu.Lock()

	if len(items) == 0 {
		w.mu.Unlock()
		return Result{}, ErrNoItems
	}
	if w.phase == Spinning {
		w.mu.Unlock()
		return Result{}, ErrSpinning
	}

	n := len(items)
	target := w.src.Intn(n)
	extra := minExtraTurns + w.src.Intn(maxExtraTurns-minExtraTurns+1)

	// Advance by full extra turns plus whatever partial turn moves the
	// pointer from its current resting angle onto the winning slice, so the
	// accumulated rotation always points at the drawn winner.
	slice := 360.0 / float64(n)
	cur := math.Mod(w.rotation, 360)
	w.rotation += float64(extra)*360 + math.Mod(float64(target)*slice+slice/2-cur+360, 360)
	w.phase = Spinning

	res := Result{Index: target, Item: items[target], Rotation: w.rotation}

	// The scheduler may fire synchronously, and the reveal re-locks, so the
	// mutex cannot be held across Schedule.
	w.mu.Unlock()

	cancel := w.sched.Schedule(RevealDelay, func() {
		w.mu.Lock()
		if w.phase != Spinning {
			w.mu.Unlock()
			return
		}
		w.phase = Idle
		w.cancel = nil
		w.mu.Unlock()
		if done != nil {
			done(res)
		}
	})

	w.mu.Lock()
	if w.phase == Spinning {
		w.cancel = cancel
		w.mu.Unlock()
	} else {
		// The reveal already fired or the spin was cancelled in the gap.
		w.mu.Unlock()
		cancel()
	}
	return res, nil
}

// Cancel aborts a pending reveal and returns the wheel to Idle. The done
// callback for the cancelled spin never runs.
func (w *Wheel) Cancel() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.cancel != nil {
		w.cancel()
		w.cancel = nil
	}
	w.phase = Idle
}

// Phase reports whether a spin is in flight.
func (w *Wheel) Phase() Phase {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.phase
}

// Rotation returns the accumulated rotation in degrees.
func (w *Wheel) Rotation() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.rotation
}

// PointerIndex maps an accumulated rotation back to the slice sitting under
// the pointer for a wheel of n items. For any spin result this recovers the
// winning index from Result.Rotation.
func PointerIndex(rotation float64, n int) int {
	if n <= 0 {
		return 0
	}
	deg := math.Mod(rotation, 360)
	if deg < 0 {
		deg += 360
	}
	idx := int(deg / (360.0 / float64(n)))
	if idx >= n {
		idx = n - 1
	}
	return idx
}
