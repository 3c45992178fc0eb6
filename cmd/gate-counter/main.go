// Command gate-counter counts people through a doorway with two beam
// sensors, drives a red/green entry light and buzzer against an occupancy
// cap, and lets an operator adjust the counts with three buttons.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	logp "github.com/charmbracelet/log"
	"github.com/sweeney/gate-counter/internal/clock"
	"github.com/sweeney/gate-counter/internal/gpio"
	"github.com/sweeney/gate-counter/internal/lcd"
	"github.com/sweeney/gate-counter/internal/logic"
)

var log = logp.NewWithOptions(os.Stderr, logp.Options{
	ReportTimestamp: true,
	TimeFormat:      time.DateTime,
	Prefix:          "gate",
})

func main() {
	printState := flag.Bool("print-state", false, "Print current input levels and exit")
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal(
			"could not load config",
			"err",
			strings.TrimPrefix(strings.ReplaceAll(err.Error(), "; ", "\n"), "env: ")+"\n",
		)
	}

	if err := run(cfg, *printState); err != nil {
		log.Fatal("fatal", "err", err)
	}
}

func run(cfg Config, printState bool) error {
	level, err := logp.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	log.SetLevel(level)

	hw, err := openHardware(cfg)
	if err != nil {
		return fmt.Errorf("init gpio: %w", err)
	}
	defer func() {
		if err := hw.Close(); err != nil {
			log.Error("could not release gpio", "err", err)
		}
	}()

	if printState {
		in, err := hw.Read()
		if err != nil {
			return fmt.Errorf("read gpio: %w", err)
		}
		fmt.Printf("SENSOR_IN: %s, SENSOR_OUT: %s, RESET: %s, UP: %s, DOWN: %s\n",
			stateString(in.SensorIn), stateString(in.SensorOut),
			stateString(in.Reset), stateString(in.Up), stateString(in.Down))
		return nil
	}

	sink, err := openDisplay(cfg, hw)
	if err != nil {
		return fmt.Errorf("init display: %w", err)
	}

	ctrl := logic.NewController(cfg.logicConfig())

	log.Info(
		"started",
		"poll", cfg.Poll,
		"display", cfg.Display,
		"maximum", cfg.DefaultMaximum,
		"separation", cfg.SensorSeparation,
		"hold_red", cfg.HoldRed,
		"heartbeat", cfg.Heartbeat,
	)

	ticker := time.NewTicker(cfg.Poll)
	defer ticker.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	return runLoop(hw, hw, sink, ctrl, clock.NewSystem(), clock.FromDuration(cfg.Heartbeat), ticker.C, sigCh)
}

// openHardware requests the GPIO lines, retrying while the chip is busy or
// not yet present (e.g. early in boot).
func openHardware(cfg Config) (*gpio.RealIO, error) {
	bo := backoff.NewExponentialBackOff()
	bo.MaxInterval = time.Second * 5
	bo.MaxElapsedTime = time.Minute

	return backoff.RetryNotifyWithData(func() (*gpio.RealIO, error) {
		hw, err := gpio.Open(cfg.Chip, cfg.pins(), cfg.ActiveLow)
		if errors.Is(err, gpio.ErrUnsupported) {
			return nil, backoff.Permanent(err)
		}
		return hw, err
	}, bo, func(err error, next time.Duration) {
		log.Warn("gpio not ready", "err", err, "retry_in", next)
	})
}

func openDisplay(cfg Config, hw *gpio.RealIO) (lcd.Sink, error) {
	switch cfg.Display {
	case displayHD44780:
		lines, err := hw.RequestOutputs(cfg.LCDPins)
		if err != nil {
			return nil, err
		}
		return lcd.NewHD44780(lines, cfg.LCDWidth), nil
	case displayLog:
		return lcd.NewLogSink(log.WithPrefix("display"), cfg.LCDWidth), nil
	default:
		return lcd.Nop{}, nil
	}
}

func runLoop(reader gpio.Reader, writer gpio.Writer, sink lcd.Sink, ctrl *logic.Controller, clk clock.Source, heartbeat clock.Millis, tick <-chan time.Time, sig <-chan os.Signal) error {
	for {
		select {
		case s := <-sig:
			log.Info("shutting down", "signal", s)
			if err := writer.Write(gpio.Outputs{}); err != nil {
				log.Error("could not clear outputs", "err", err)
			}
			cur, maxi := ctrl.Counts()
			counts := ctrl.EventCountsSnapshot()
			log.Info("final counts", "current", cur, "maximum", maxi, "entries", counts.Entries, "exits", counts.Exits)
			return nil

		case <-tick:
			now := clk.Now()
			in, err := reader.Read()
			if err != nil {
				log.Error("gpio read error", "err", err)
				continue
			}

			out := ctrl.Tick(now, in)

			for _, ev := range out.Events {
				log.Info("event", "type", ev.Type, "current", ev.Current, "maximum", ev.Maximum)
			}

			if err := writer.Write(gpio.OutputsFrom(out)); err != nil {
				log.Error("gpio write error", "err", err)
			}

			// Display faults are expected; the periodic reinit recovers them.
			if err := lcd.Apply(sink, out.Display); err != nil {
				log.Warn("display error", "err", err)
			}

			if hb := ctrl.CheckHeartbeat(now, heartbeat); hb != nil {
				log.Info(
					"heartbeat",
					"uptime", hb.Uptime.Duration(),
					"current", hb.Current,
					"maximum", hb.Maximum,
					"entries", hb.Counts.Entries,
					"exits", hb.Counts.Exits,
					"resets", hb.Counts.Resets,
					"adjusts", hb.Counts.Adjusts,
				)
			}
		}
	}
}

func stateString(on bool) string {
	if on {
		return "ON"
	}
	return "OFF"
}
