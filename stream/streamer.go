package stream

import (
	"context"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/hashicorp/go-hclog"
)

// Publisher is the part of mqtt.Client the Streamer uses.
type Publisher interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

// Streamer that streams RGB data frames to an ledrx device.
type Streamer struct {
	client    Publisher
	topic     string
	qos       byte
	interval  time.Duration
	animation Animation
	logger    hclog.Logger
}

// NewStreamer creates an instance of a Streamer publishing frames of
// animation on topic, frameRate times a second.
func NewStreamer(client Publisher, topic string, qos byte, frameRate float64, animation Animation, logger hclog.Logger) *Streamer {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if frameRate <= 0 {
		frameRate = 30
	}

	s := new(Streamer)
	s.client = client
	s.topic = topic
	s.qos = qos
	s.interval = time.Duration(float64(time.Second) / frameRate)
	s.animation = animation
	s.logger = logger
	return s
}

// SendFrame renders the frame for runtimeMs and publishes it as binary.
func (s *Streamer) SendFrame(runtimeMs int64) error {
	f := s.animation.CalculateFrame(runtimeMs)
	b, err := f.MarshalBinary()
	if err != nil {
		return err
	}

	token := s.client.Publish(s.topic, s.qos, false, b)
	token.Wait()
	return token.Error()
}

// Run causes the Streamer to send Frames continuously until ctx is done.
// Failed publishes are logged and streaming carries on.
func (s *Streamer) Run(ctx context.Context) {
	publishTimer := time.NewTicker(s.interval)
	defer publishTimer.Stop()

	start := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-publishTimer.C:
			runtimeMs := now.Sub(start).Milliseconds()
			if err := s.SendFrame(runtimeMs); err != nil {
				s.logger.Warn("failed to publish frame", "topic", s.topic, "error", err)
			}
		}
	}
}
