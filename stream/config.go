package stream

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"gopkg.in/yaml.v2"
)

// Config is the YAML configuration of the streamer.
type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		ClientID string `yaml:"clientId"`
		QoS      byte   `yaml:"qos"`
		Topics   struct {
			Stream string `yaml:"stream"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`

	LogLevel         string       `yaml:"logLevel"`
	FrameRate        float64      `yaml:"frameRate"`
	Pixels           int          `yaml:"pixels"`
	CycleSecs        float64      `yaml:"cycleSecs"`
	TransitionSecs   float64      `yaml:"transitionSecs"`
	TransitionEasing string       `yaml:"transitionEasing"`
	Clips            []ClipConfig `yaml:"clips"`
}

// ClipConfig describes one clip and its keyframe tracks.
type ClipConfig struct {
	Name       string       `yaml:"name"`
	DurationMs int64        `yaml:"durationMs"`
	Once       bool         `yaml:"once"`
	ColorSpace string       `yaml:"colorSpace"`
	Colour     *TrackConfig `yaml:"colour"`
	Gradient   *TrackConfig `yaml:"gradient"`
	Brightness *TrackConfig `yaml:"brightness"`
}

// TrackConfig describes the keyframes of one animated property.
type TrackConfig struct {
	Discrete  bool             `yaml:"discrete"`
	Keyframes []KeyframeConfig `yaml:"keyframes"`
}

// KeyframeConfig describes one keyframe. From and To are loose YAML values:
// numbers for brightness, hex strings for colours and lists of
// {pos, colour} maps for gradients. A keyframe without To, or with Hold set,
// holds From.
type KeyframeConfig struct {
	Start  float64     `yaml:"start"`
	End    float64     `yaml:"end"`
	From   interface{} `yaml:"from"`
	To     interface{} `yaml:"to"`
	Hold   bool        `yaml:"hold"`
	Easing string      `yaml:"easing"`
	Bezier []float64   `yaml:"bezier"`
}

// LoadConfig reads and validates the YAML config at path.
func LoadConfig(path string) (Config, error) {
	var config Config

	f, err := os.Open(path)
	if err != nil {
		return config, err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	if err = decoder.Decode(&config); err != nil {
		return config, fmt.Errorf("decode %s: %w", path, err)
	}

	if err = config.Validate(); err != nil {
		return config, err
	}

	return config, nil
}

// Validate checks the configuration and fills in defaults.
func (c *Config) Validate() error {
	if c.Mqtt.URL == "" {
		return fmt.Errorf("%w: mqtt.url is required", ErrInvalidConfig)
	}

	if len(c.Clips) == 0 {
		return ErrNoClips
	}

	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if err := c.SetLogLevel(c.LogLevel); err != nil {
		return err
	}

	if c.Mqtt.QoS > 2 {
		return fmt.Errorf("%w: mqtt.qos must be 0, 1 or 2", ErrInvalidConfig)
	}

	// Set defaults
	if c.Mqtt.ClientID == "" {
		c.Mqtt.ClientID = "ledtx"
	}
	if c.Mqtt.Topics.Stream == "" {
		c.Mqtt.Topics.Stream = "home/xmastree/stream"
	}
	if c.FrameRate <= 0 {
		c.FrameRate = 30
	}
	if c.Pixels <= 0 {
		c.Pixels = DefaultPixels
	}
	if c.CycleSecs <= 0 {
		c.CycleSecs = 60
	}
	if c.TransitionSecs < 0 {
		c.TransitionSecs = 0
	}
	if c.TransitionEasing == "" {
		c.TransitionEasing = "inOutQuad"
	}

	for i, clip := range c.Clips {
		if clip.Name == "" {
			return fmt.Errorf("%w: clip %d has no name", ErrInvalidConfig, i)
		}
		if clip.DurationMs <= 0 {
			return fmt.Errorf("%w: clip %q durationMs must be positive", ErrInvalidConfig, clip.Name)
		}
		if clip.Colour == nil && clip.Gradient == nil {
			return fmt.Errorf("%w: clip %q needs a colour or gradient track", ErrInvalidConfig, clip.Name)
		}
	}

	return nil
}

// SetLogLevel sets the log level, rejecting names hclog does not know.
func (c *Config) SetLogLevel(level string) error {
	if hclog.LevelFromString(level) == hclog.NoLevel {
		return fmt.Errorf("%w: unknown logLevel %q", ErrInvalidConfig, level)
	}
	c.LogLevel = level
	return nil
}
