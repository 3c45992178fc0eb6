package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sweeney/gate-counter/internal/clock"
	"github.com/sweeney/gate-counter/internal/gpio"
	"github.com/sweeney/gate-counter/internal/logic"
)

// envPrefix namespaces every variable, e.g. GATE_POLL.
const envPrefix = "GATE_"

// Display kinds
const (
	displayHD44780 = "hd44780"
	displayLog     = "log"
	displayNone    = "none"
)

type Config struct {
	Poll      time.Duration `env:"POLL"       envDefault:"10ms"`
	Heartbeat time.Duration `env:"HEARTBEAT"  envDefault:"15m"`
	LogLevel  string        `env:"LOG_LEVEL"  envDefault:"info"`
	Chip      string        `env:"CHIP"       envDefault:"gpiochip0"`
	ActiveLow bool          `env:"ACTIVE_LOW" envDefault:"true"`

	PinSensorIn  int `env:"PIN_SENSOR_IN"  envDefault:"17"`
	PinSensorOut int `env:"PIN_SENSOR_OUT" envDefault:"27"`
	PinReset     int `env:"PIN_RESET"      envDefault:"22"`
	PinUp        int `env:"PIN_UP"         envDefault:"23"`
	PinDown      int `env:"PIN_DOWN"       envDefault:"24"`
	PinRed       int `env:"PIN_RED"        envDefault:"5"`
	PinGreen     int `env:"PIN_GREEN"      envDefault:"6"`
	PinBuzzer    int `env:"PIN_BUZZER"     envDefault:"13"`

	Display  string `env:"DISPLAY"   envDefault:"hd44780"`
	LCDPins  []int  `env:"LCD_PINS"  envDefault:"7,8,25,12,16,20"`
	LCDWidth int    `env:"LCD_WIDTH" envDefault:"16"`

	SensorSeparation time.Duration `env:"SENSOR_SEPARATION" envDefault:"1s"`
	RepeatDelay      time.Duration `env:"REPEAT_DELAY"      envDefault:"500ms"`
	LongHold         time.Duration `env:"LONG_HOLD"         envDefault:"5s"`
	HoldRed          time.Duration `env:"HOLD_RED"          envDefault:"2s"`
	Sound            time.Duration `env:"SOUND"             envDefault:"500ms"`
	DisplayReinit    time.Duration `env:"DISPLAY_REINIT"    envDefault:"1m"`
	DefaultCurrent   int           `env:"DEFAULT_CURRENT"   envDefault:"0"`
	DefaultMaximum   int           `env:"DEFAULT_MAXIMUM"   envDefault:"20"`
}

// loadConfig reads GATE_* variables from the environment.
func loadConfig() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) pins() gpio.Pins {
	return gpio.Pins{
		SensorIn:  c.PinSensorIn,
		SensorOut: c.PinSensorOut,
		Reset:     c.PinReset,
		Up:        c.PinUp,
		Down:      c.PinDown,
		Red:       c.PinRed,
		Green:     c.PinGreen,
		Buzzer:    c.PinBuzzer,
	}
}

func (c Config) logicConfig() logic.Config {
	return logic.Config{
		SensorSeparation: c.SensorSeparation,
		RepeatDelay:      c.RepeatDelay,
		LongHold:         c.LongHold,
		HoldRed:          c.HoldRed,
		Sound:            c.Sound,
		DisplayReinit:    c.DisplayReinit,
		DefaultCurrent:   c.DefaultCurrent,
		DefaultMaximum:   c.DefaultMaximum,
		DisplayWidth:     c.LCDWidth,
	}
}

// Validate checks everything env.Parse cannot.
func (c Config) Validate() error {
	var errs []error
	if c.Poll <= 0 {
		errs = append(errs, fmt.Errorf("poll must be positive, got %v", c.Poll))
	}
	if c.Heartbeat < 0 {
		errs = append(errs, fmt.Errorf("heartbeat must not be negative, got %v", c.Heartbeat))
	}
	if c.Heartbeat > clock.MaxDuration {
		errs = append(errs, fmt.Errorf("heartbeat exceeds clock range, got %v", c.Heartbeat))
	}

	var lcdPins []int
	switch c.Display {
	case displayHD44780:
		if len(c.LCDPins) != 6 {
			errs = append(errs, fmt.Errorf("lcd pins: want 6 (RS,E,D4,D5,D6,D7), got %d", len(c.LCDPins)))
		}
		lcdPins = c.LCDPins
	case displayLog, displayNone:
	default:
		errs = append(errs, fmt.Errorf("unknown display %q", c.Display))
	}
	if err := c.pins().Validate(lcdPins...); err != nil {
		errs = append(errs, err)
	}
	if err := c.logicConfig().Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
