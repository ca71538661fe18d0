package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/hashicorp/go-hclog"
	"github.com/matt-g-everett/keyframer/stream"
)

type app struct {
	Config     stream.Config
	Client     mqtt.Client
	Controller *stream.Controller
	Streamer   *stream.Streamer
	logger     hclog.Logger
}

func newApp(config stream.Config, logger hclog.Logger) *app {
	a := new(app)
	a.Config = config
	a.logger = logger
	return a
}

func (a *app) handleOnConnect(client mqtt.Client) {
	a.logger.Info("connected", "broker", a.Config.Mqtt.URL)
}

func (a *app) handleConnectionLost(client mqtt.Client, err error) {
	a.logger.Warn("connection lost", "error", err)
}

func (a *app) run(ctx context.Context) error {
	if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	defer a.Client.Disconnect(250)

	cycle := time.Duration(a.Config.CycleSecs * float64(time.Second))
	go a.Controller.Run(ctx, cycle)

	a.Streamer.Run(ctx)
	return nil
}

func main() {
	// Parse command line parameters
	configPath := flag.String("config", "config.yaml", "YAML config file.")
	logLevel := flag.String("log-level", "", "Log level, overrides the config file.")
	flag.Parse()

	// Read the config
	config, err := stream.LoadConfig(*configPath)
	if err != nil {
		hclog.Default().Error("failed to load config", "path", *configPath, "error", err)
		os.Exit(1)
	}
	if *logLevel != "" {
		if err := config.SetLogLevel(*logLevel); err != nil {
			hclog.Default().Error("invalid -log-level", "error", err)
			os.Exit(1)
		}
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "keyframer",
		Level:  hclog.LevelFromString(config.LogLevel),
		Output: os.Stdout,
	})
	logger.Info("config loaded", "clips", len(config.Clips), "pixels", config.Pixels, "frameRate", config.FrameRate)

	mqtt.ERROR = logger.Named("mqtt").StandardLogger(&hclog.StandardLoggerOptions{ForceLevel: hclog.Error})

	a := newApp(config, logger)

	a.Controller, err = stream.NewControllerFromConfig(config, logger.Named("controller"))
	if err != nil {
		logger.Error("failed to build clips", "error", err)
		os.Exit(1)
	}

	options := mqtt.NewClientOptions().
		AddBroker(config.Mqtt.URL).
		SetClientID(config.Mqtt.ClientID).
		SetUsername(config.Mqtt.Username).
		SetPassword(config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetOnConnectHandler(a.handleOnConnect).
		SetConnectionLostHandler(a.handleConnectionLost)
	a.Client = mqtt.NewClient(options)

	a.Streamer = stream.NewStreamer(a.Client, config.Mqtt.Topics.Stream, config.Mqtt.QoS,
		config.FrameRate, a.Controller, logger.Named("streamer"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		logger.Info("received signal", "signal", sig)
		cancel()
	}()

	if err := a.run(ctx); err != nil {
		logger.Error("application error", "error", err)
		os.Exit(1)
	}

	logger.Info("stopped")
}
