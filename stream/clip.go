package stream

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/keyframer/keyframe"
	"github.com/matt-g-everett/keyframer/value"
)

// A Clip is an Animation driven by keyframe tracks. Runtime is turned into a
// global progress over the clip's duration and pushed into every track; the
// frame is only redrawn when a track reports a change.
//
// The colour track paints the whole strip unless a gradient track is set, in
// which case the gradient is stretched along the strip. The brightness track
// scales the result towards black.
type Clip struct {
	name       string
	numPixels  int
	durationMs int64
	loop       bool
	space      value.ColorSpace

	colour     *keyframe.Animation[colorful.Color, colorful.Color]
	gradient   *keyframe.Animation[value.Gradient, value.Gradient]
	brightness *keyframe.Animation[float64, float64]

	unwatchColour     func()
	unwatchGradient   func()
	unwatchBrightness func()

	started bool
	startMs int64
	dirty   bool
	frame   *Frame
}

// NewClip creates an instance of a Clip with no tracks. durationMs must be
// positive.
func NewClip(name string, numPixels int, durationMs int64, loop bool, space value.ColorSpace) *Clip {
	c := new(Clip)
	c.name = name
	c.numPixels = numPixels
	c.durationMs = durationMs
	c.loop = loop
	c.space = space
	c.dirty = true
	return c
}

// Name returns the clip's name.
func (c *Clip) Name() string {
	return c.name
}

// SetColour sets the track that colours the whole strip. A nil track
// removes it.
func (c *Clip) SetColour(a *keyframe.Animation[colorful.Color, colorful.Color]) {
	c.colour = a
	var add func(keyframe.Listener) func()
	if a != nil {
		add = a.AddListener
	}
	c.watch(&c.unwatchColour, add)
}

// SetGradient sets the track whose gradient is stretched along the strip.
// A nil track removes it.
func (c *Clip) SetGradient(a *keyframe.Animation[value.Gradient, value.Gradient]) {
	c.gradient = a
	var add func(keyframe.Listener) func()
	if a != nil {
		add = a.AddListener
	}
	c.watch(&c.unwatchGradient, add)
}

// SetBrightness sets the track that scales every pixel towards black. A nil
// track removes it.
func (c *Clip) SetBrightness(a *keyframe.Animation[float64, float64]) {
	c.brightness = a
	var add func(keyframe.Listener) func()
	if a != nil {
		add = a.AddListener
	}
	c.watch(&c.unwatchBrightness, add)
}

// watch detaches the clip from the track it replaces and listens to the new
// one through add, if any.
func (c *Clip) watch(unwatch *func(), add func(keyframe.Listener) func()) {
	if *unwatch != nil {
		(*unwatch)()
		*unwatch = nil
	}
	if add != nil {
		*unwatch = add(c.markDirty)
	}
	c.dirty = true
}

// Reset makes the next CalculateFrame call the start of the clip.
func (c *Clip) Reset() {
	c.started = false
}

func (c *Clip) markDirty() {
	c.dirty = true
}

// progressAt maps runtime to global progress in [0, 1].
func (c *Clip) progressAt(runtimeMs int64) float64 {
	elapsed := runtimeMs - c.startMs
	if elapsed <= 0 || c.durationMs <= 0 {
		return 0
	}
	if c.loop {
		return float64(elapsed%c.durationMs) / float64(c.durationMs)
	}
	if elapsed >= c.durationMs {
		return 1
	}
	return float64(elapsed) / float64(c.durationMs)
}

// CalculateFrame returns the frame for runtimeMs. The returned frame is
// shared between calls while nothing changes and must not be modified.
func (c *Clip) CalculateFrame(runtimeMs int64) *Frame {
	if !c.started {
		c.started = true
		c.startMs = runtimeMs
	}

	p := c.progressAt(runtimeMs)
	if c.colour != nil {
		c.colour.SetProgress(p)
	}
	if c.gradient != nil {
		c.gradient.SetProgress(p)
	}
	if c.brightness != nil {
		c.brightness.SetProgress(p)
	}

	if c.dirty || c.frame == nil {
		c.frame = c.render()
		c.dirty = false
	}

	return c.frame
}

func (c *Clip) render() *Frame {
	f := NewFrame(c.numPixels)

	var base colorful.Color
	if c.colour != nil {
		base = c.colour.Value()
	}

	var gradient value.Gradient
	if c.gradient != nil {
		gradient = c.gradient.Value()
	}

	brightness := 1.0
	if c.brightness != nil {
		brightness = c.brightness.Value()
	}

	span := float64(c.numPixels - 1)
	if span < 1 {
		span = 1
	}

	var black colorful.Color
	for i := range f.pixels {
		colour := base
		if gradient != nil {
			colour = gradient.At(float64(i)/span, c.space)
		}
		f.pixels[i] = black.BlendRgb(colour, brightness)
	}

	return f
}
