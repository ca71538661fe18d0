package stream

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/matt-g-everett/keyframer/easing"
	"github.com/matt-g-everett/keyframer/keyframe"
	"github.com/matt-g-everett/keyframer/value"
)

// Controller that cycles through clips, crossfading between them.
type Controller struct {
	logger hclog.Logger

	mu      sync.Mutex
	clips   []*Clip
	current int
	next    int

	transition        *keyframe.Animation[float64, float64]
	transitionMs      int64
	transitionStarted bool
	transitionStartMs int64
}

// NewController creates an instance of a Controller playing clips in order.
// The crossfade between clips lasts transition and follows ease.
func NewController(clips []*Clip, transition time.Duration, ease easing.Func, logger hclog.Logger) (*Controller, error) {
	if len(clips) == 0 {
		return nil, ErrNoClips
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	seq, err := keyframe.NewSequence(keyframe.NewKeyframe(0, 1, 0.0, 1.0, ease))
	if err != nil {
		return nil, err
	}

	c := new(Controller)
	c.logger = logger
	c.clips = clips
	c.current = 0
	c.next = -1
	c.transition = value.NewFloat(seq)
	c.transitionMs = transition.Milliseconds()

	return c, nil
}

// NewControllerFromConfig builds the clips in config and a Controller for
// them.
func NewControllerFromConfig(config Config, logger hclog.Logger) (*Controller, error) {
	clips, err := NewClipsFromConfig(config)
	if err != nil {
		return nil, err
	}

	ease, err := easing.Lookup(config.TransitionEasing)
	if err != nil {
		return nil, err
	}

	transition := time.Duration(config.TransitionSecs * float64(time.Second))
	return NewController(clips, transition, ease, logger)
}

// Current returns the clip playing, or fading out, now.
func (c *Controller) Current() *Clip {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.clips[c.current]
}

// Transitioning reports whether a crossfade is in progress.
func (c *Controller) Transitioning() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.next >= 0
}

// CalculateFrame renders the current clip, blended with the next one while
// a crossfade is running.
func (c *Controller) CalculateFrame(runtimeMs int64) *Frame {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.next < 0 {
		return c.clips[c.current].CalculateFrame(runtimeMs)
	}

	if !c.transitionStarted {
		c.transitionStarted = true
		c.transitionStartMs = runtimeMs
	}

	p := 1.0
	if c.transitionMs > 0 {
		p = float64(runtimeMs-c.transitionStartMs) / float64(c.transitionMs)
	}
	c.transition.SetProgress(p)

	f1 := c.clips[c.current].CalculateFrame(runtimeMs)
	f2 := c.clips[c.next].CalculateFrame(runtimeMs)
	f := f1.InterpolateFrame(f2, c.transition.Value())

	if p >= 1 {
		c.logger.Debug("transition complete", "clip", c.clips[c.next].Name())
		c.current = c.next
		c.next = -1
		c.transitionStarted = false
	}

	return f
}

// Cycle starts a crossfade to the following clip. It does nothing with a
// single clip or while a crossfade is already running.
func (c *Controller) Cycle() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.clips) < 2 || c.next >= 0 {
		return
	}

	c.next = (c.current + 1) % len(c.clips)
	c.clips[c.next].Reset()
	c.logger.Info("cycling clip", "from", c.clips[c.current].Name(), "to", c.clips[c.next].Name())
}

// Run causes the Controller to cycle through clips every interval until ctx
// is done.
func (c *Controller) Run(ctx context.Context, interval time.Duration) {
	cycleTimer := time.NewTicker(interval)
	defer cycleTimer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-cycleTimer.C:
			c.Cycle()
		}
	}
}
