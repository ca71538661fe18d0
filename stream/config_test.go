package stream

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matt-g-everett/keyframer/easing"
	"github.com/matt-g-everett/keyframer/keyframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalConfig = `
mqtt:
  url: tcp://localhost:1883
clips:
  - name: glow
    durationMs: 1000
    colour:
      keyframes:
        - {start: 0, end: 1, from: "#000000", to: "#ffffff"}
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	config, err := LoadConfig(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, "tcp://localhost:1883", config.Mqtt.URL)
	assert.Equal(t, "ledtx", config.Mqtt.ClientID)
	assert.Equal(t, "home/xmastree/stream", config.Mqtt.Topics.Stream)
	assert.Equal(t, "info", config.LogLevel)
	assert.Equal(t, 30.0, config.FrameRate)
	assert.Equal(t, DefaultPixels, config.Pixels)
	assert.Equal(t, 60.0, config.CycleSecs)
	assert.Equal(t, "inOutQuad", config.TransitionEasing)
	require.Len(t, config.Clips, 1)
	assert.Equal(t, "glow", config.Clips[0].Name)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadExampleConfig(t *testing.T) {
	config, err := LoadConfig("../config.yaml")
	require.NoError(t, err)

	c, err := NewControllerFromConfig(config, nil)
	require.NoError(t, err)
	assert.Equal(t, "sunrise", c.Current().Name())

	f := c.CalculateFrame(0)
	assert.Equal(t, config.Pixels, f.Len())
}

func TestConfigValidate(t *testing.T) {
	valid := func() Config {
		var c Config
		c.Mqtt.URL = "tcp://broker:1883"
		c.Clips = []ClipConfig{{
			Name:       "glow",
			DurationMs: 1000,
			Colour:     &TrackConfig{},
		}}
		return c
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
		want   error
	}{
		{"missing url", func(c *Config) { c.Mqtt.URL = "" }, ErrInvalidConfig},
		{"no clips", func(c *Config) { c.Clips = nil }, ErrNoClips},
		{"bad log level", func(c *Config) { c.LogLevel = "chatty" }, ErrInvalidConfig},
		{"bad qos", func(c *Config) { c.Mqtt.QoS = 3 }, ErrInvalidConfig},
		{"unnamed clip", func(c *Config) { c.Clips[0].Name = "" }, ErrInvalidConfig},
		{"zero duration", func(c *Config) { c.Clips[0].DurationMs = 0 }, ErrInvalidConfig},
		{"no tracks", func(c *Config) { c.Clips[0].Colour = nil }, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			assert.ErrorIs(t, c.Validate(), tt.want)
		})
	}

	c := valid()
	assert.NoError(t, c.Validate())
}

func TestNewClipFromConfigErrors(t *testing.T) {
	kf := func(k KeyframeConfig) ClipConfig {
		return ClipConfig{
			Name:       "c",
			DurationMs: 1000,
			Colour:     &TrackConfig{Keyframes: []KeyframeConfig{k}},
		}
	}

	tests := []struct {
		name string
		cc   ClipConfig
		want error
	}{
		{"bad easing", kf(KeyframeConfig{End: 1, From: "#000000", To: "#ffffff", Easing: "wobble"}), easing.ErrUnknownEasing},
		{"short bezier", kf(KeyframeConfig{End: 1, From: "#000000", To: "#ffffff", Bezier: []float64{0, 1}}), easing.ErrInvalidBezier},
		{"bad bezier", kf(KeyframeConfig{End: 1, From: "#000000", To: "#ffffff", Bezier: []float64{2, 0, 0.5, 1}}), easing.ErrInvalidBezier},
		{"bad range", kf(KeyframeConfig{Start: 0.8, End: 0.2, From: "#000000"}), keyframe.ErrInvalidRange},
		{"no keyframes", ClipConfig{Name: "c", DurationMs: 1, Colour: &TrackConfig{}}, keyframe.ErrNoKeyframes},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClipFromConfig(tt.cc, 1)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := NewClipFromConfig(kf(KeyframeConfig{End: 1, From: "not-a-colour"}), 1)
	assert.Error(t, err)

	_, err = NewClipFromConfig(ClipConfig{Name: "c", DurationMs: 1, ColorSpace: "cmyk"}, 1)
	assert.Error(t, err)
}

func TestNewClipFromConfigTracks(t *testing.T) {
	cc := ClipConfig{
		Name:       "mixed",
		DurationMs: 1000,
		Once:       true,
		Gradient: &TrackConfig{Keyframes: []KeyframeConfig{{
			End: 1,
			From: []interface{}{
				map[interface{}]interface{}{"pos": 0, "colour": "#ff0000"},
				map[interface{}]interface{}{"pos": 1, "colour": "#0000ff"},
			},
		}}},
		Brightness: &TrackConfig{Keyframes: []KeyframeConfig{
			{End: 0.5, From: 0, To: "1", Bezier: []float64{0, 0, 1, 1}},
			{Start: 0.5, End: 1, From: 1, Hold: true, To: 0},
		}},
	}

	c, err := NewClipFromConfig(cc, 3)
	require.NoError(t, err)

	c.CalculateFrame(0)
	f := c.CalculateFrame(250)
	assert.InDelta(t, 0.5, f.Pixel(0).R, 1e-3)
	assert.InDelta(t, 0.5, f.Pixel(2).B, 1e-3)

	f = c.CalculateFrame(900)
	assert.InDelta(t, 1.0, f.Pixel(0).R, 1e-9)
}

func TestNewClipFromConfigDiscrete(t *testing.T) {
	cc := ClipConfig{
		Name:       "blink",
		DurationMs: 1000,
		Colour: &TrackConfig{Discrete: true, Keyframes: []KeyframeConfig{
			{End: 1, From: "#ff0000", To: "#0000ff"},
		}},
	}

	c, err := NewClipFromConfig(cc, 1)
	require.NoError(t, err)
	c.CalculateFrame(0)
	f := c.CalculateFrame(900)
	assert.Equal(t, red, f.Pixel(0))
}

func TestConfigSetLogLevel(t *testing.T) {
	config, err := LoadConfig(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	require.NoError(t, config.SetLogLevel("debug"))
	assert.Equal(t, "debug", config.LogLevel)

	err = config.SetLogLevel("chatty")
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Equal(t, "debug", config.LogLevel)
}
