// Package runner drives transition animations over time.
//
// Runner is a reference implementation of the animation contract the
// descriptor library leaves to its host: it owns one element's animation
// clock and, polled once per frame, turns visibility changes into
// interpolated visual parameters. Hosts with their own frame schedulers
// can treat it as a worked example of the required policy.
package runner

import (
	"time"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/sfumato/pkg/sfumato"
)

// Runner animates one element's transition. The element's visibility
// may be toggled from any goroutine; Update must be called from a
// single goroutine, typically the host's render loop.
type Runner struct {
	transition sfumato.Transition
	duration   time.Duration
	easing     EasingFunc

	visible atomic.Bool

	// Render-loop state, owned by the goroutine calling Update.
	lastVisible   bool
	animating     bool
	direction     sfumato.Direction
	startTime     time.Time
	startProgress float64
	progress      float64
}

// Option configures a Runner.
type Option func(*Runner)

// WithEasing sets the easing curve applied to animation progress.
// The default is EaseInOutCubic.
func WithEasing(f EasingFunc) Option {
	return func(r *Runner) {
		r.easing = f
	}
}

// WithVisible sets the element's initial visibility. The default is
// hidden.
func WithVisible(visible bool) Option {
	return func(r *Runner) {
		r.visible.Store(visible)
		r.lastVisible = visible
	}
}

// New creates a Runner animating the given transition over the given
// duration. A non-positive duration makes visibility changes take
// effect instantly.
func New(t sfumato.Transition, duration time.Duration, opts ...Option) *Runner {
	r := &Runner{
		transition: t,
		duration:   duration,
		easing:     EaseInOutCubic,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.lastVisible {
		r.progress = 1
	}
	return r
}

// SetVisible changes the element's visibility. Safe to call from any
// goroutine.
//
// Toggling while an animation is in flight cancels it: the next Update
// restarts with the transition side matching the new direction, seeded
// at the progress that preserves the current degree of hiddenness. For
// symmetric transitions this continues from the exact rendered pose;
// for asymmetric pairs the two sides are independent by contract, so
// the new side begins from its own pose at that progress.
func (r *Runner) SetVisible(visible bool) {
	r.visible.Store(visible)
}

// Visible returns the element's target visibility.
func (r *Runner) Visible() bool {
	return r.visible.Load()
}

// Toggle flips the element's visibility and returns the new value.
func (r *Runner) Toggle() bool {
	return !r.visible.Toggle()
}

// Animating reports whether an animation was in flight at the last
// Update.
func (r *Runner) Animating() bool {
	return r.animating
}

// Update advances the animation clock to now and returns the visual
// parameters the host should render, plus whether an animation is still
// in flight. Call once per frame from the render loop.
func (r *Runner) Update(now time.Time) (sfumato.VisualParams, bool) {
	visible := r.visible.Load()

	if visible != r.lastVisible {
		r.direction = sfumato.Removal
		if visible {
			r.direction = sfumato.Insertion
		}

		r.startProgress = 0
		if r.animating {
			// Preserve the current eased hiddenness across the
			// direction change, so the rendered pose does not jump.
			r.startProgress = progressForEased(r.easing,
				1-r.easing(r.progress), 1-r.progress)
		}

		r.lastVisible = visible
		r.startTime = now
		r.animating = r.duration > 0
		r.progress = r.startProgress
	}

	if r.animating {
		elapsed := now.Sub(r.startTime)
		r.progress = r.startProgress + float64(elapsed)/float64(r.duration)
		if r.progress >= 1 {
			r.progress = 1
			r.animating = false
		}
		return sfumato.Resolve(r.transition, r.direction, r.easing(r.progress)), r.animating
	}

	if visible {
		return sfumato.IdentityParams(), false
	}
	return sfumato.Resolve(r.transition, sfumato.Removal, 1), false
}
