package stream

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/keyframer/keyframe"
	"github.com/matt-g-everett/keyframer/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	black = colorful.Color{}
	white = colorful.Color{R: 1, G: 1, B: 1}
	red   = colorful.Color{R: 1}
	blue  = colorful.Color{B: 1}
)

func fadeTrack(from, to colorful.Color) *keyframe.Animation[colorful.Color, colorful.Color] {
	seq := keyframe.MustSequence(keyframe.NewKeyframe(0, 1, from, to, nil))
	return value.NewColor(seq, value.RGB)
}

func solidClip(name string, numPixels int, c colorful.Color) *Clip {
	clip := NewClip(name, numPixels, 1000, true, value.RGB)
	seq := keyframe.MustSequence(keyframe.NewHoldKeyframe(0, 1, c))
	clip.SetColour(value.NewColor(seq, value.RGB))
	return clip
}

func TestClipLoopingProgress(t *testing.T) {
	c := NewClip("fade", 4, 1000, true, value.RGB)
	c.SetColour(fadeTrack(black, white))

	f := c.CalculateFrame(5000)
	require.Equal(t, 4, f.Len())
	assert.Equal(t, black, f.Pixel(0))

	f = c.CalculateFrame(5500)
	assert.InDelta(t, 0.5, f.Pixel(3).R, 1e-9)

	f = c.CalculateFrame(6250)
	assert.InDelta(t, 0.25, f.Pixel(0).G, 1e-9)
}

func TestClipOnceHoldsEnd(t *testing.T) {
	c := NewClip("fade", 2, 1000, false, value.RGB)
	c.SetColour(fadeTrack(black, white))

	c.CalculateFrame(0)
	f := c.CalculateFrame(5000)
	assert.Equal(t, white, f.Pixel(1))
}

func TestClipReusesFrameUntilChanged(t *testing.T) {
	c := NewClip("fade", 2, 1000, false, value.RGB)
	c.SetColour(fadeTrack(black, white))

	c.CalculateFrame(0)
	f1 := c.CalculateFrame(2000)
	f2 := c.CalculateFrame(3000)
	assert.Same(t, f1, f2)

	c.Reset()
	f3 := c.CalculateFrame(4000)
	assert.NotSame(t, f2, f3)
	assert.Equal(t, black, f3.Pixel(0))
}

func TestClipBrightness(t *testing.T) {
	c := solidClip("dim", 2, white)
	seq := keyframe.MustSequence(keyframe.NewKeyframe(0, 1, 0.0, 1.0, nil))
	c.SetBrightness(value.NewFloat(seq))

	c.CalculateFrame(0)
	f := c.CalculateFrame(250)
	assert.InDelta(t, 0.25, f.Pixel(0).R, 1e-9)
	assert.InDelta(t, 0.25, f.Pixel(1).B, 1e-9)
}

func TestClipGradient(t *testing.T) {
	c := NewClip("rainbow", 3, 1000, true, value.RGB)
	g := value.Gradient{{Pos: 0, Color: red}, {Pos: 1, Color: blue}}
	seq := keyframe.MustSequence(keyframe.NewHoldKeyframe(0, 1, g))
	c.SetGradient(keyframe.New(seq, value.GradientResolver(value.RGB)))

	f := c.CalculateFrame(0)
	assert.Equal(t, red, f.Pixel(0))
	assert.InDelta(t, 0.5, f.Pixel(1).R, 1e-9)
	assert.InDelta(t, 0.5, f.Pixel(1).B, 1e-9)
	assert.Equal(t, blue, f.Pixel(2))
}

func TestClipName(t *testing.T) {
	assert.Equal(t, "solid", solidClip("solid", 1, red).Name())
}

func TestClipReplacedTrackNoLongerRedraws(t *testing.T) {
	c := NewClip("swap", 2, 1000, true, value.RGB)
	old := fadeTrack(black, white)
	c.SetColour(old)
	c.SetColour(fadeTrack(red, red))

	f1 := c.CalculateFrame(0)
	assert.Equal(t, red, f1.Pixel(0))

	old.SetProgress(0.5)
	assert.False(t, c.dirty)
	assert.Same(t, f1, c.CalculateFrame(0))
}

func TestClipRemoveTrack(t *testing.T) {
	c := solidClip("solid", 1, red)
	seq := keyframe.MustSequence(keyframe.NewKeyframe(0, 1, 0.0, 1.0, nil))
	brightness := value.NewFloat(seq)
	c.SetBrightness(brightness)
	c.SetBrightness(nil)

	f := c.CalculateFrame(0)
	assert.Equal(t, red, f.Pixel(0))

	brightness.SetProgress(0.5)
	assert.False(t, c.dirty)
}
