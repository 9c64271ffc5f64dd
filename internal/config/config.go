package config

import (
	"flag"
	"os"
	"time"

	"codeberg.org/mutker/jitterctl/internal/errors"
	"github.com/spf13/viper"
)

const (
	defaultPeriodMicros = 1000
	defaultTimeoutSecs  = 10
	defaultSessions     = 0
	defaultInteractive  = true
)

type Config struct {
	Period      int  // nominal tick period in microseconds
	Timeout     int  // session await timeout in seconds, 0 disables
	Sessions    int  // number of sessions to run, 0 runs forever
	Interactive bool // wait for a keystroke before arming each session
	Debug       bool
	Verbose     bool
}

// TickPeriod returns the nominal tick period as a duration.
func (c *Config) TickPeriod() time.Duration {
	return time.Duration(c.Period) * time.Microsecond
}

// AwaitTimeout returns the session completion timeout. Zero means
// wait indefinitely.
func (c *Config) AwaitTimeout() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

func Load() (*Config, error) {
	return load(os.Args[1:])
}

func load(args []string) (*Config, error) {
	errFactory := errors.New()
	config := &Config{}

	// Define flags
	fs := flag.NewFlagSet("jitterctl", flag.ContinueOnError)
	fs.IntVar(&config.Period, "period", defaultPeriodMicros, "Nominal tick period in microseconds")
	fs.IntVar(&config.Timeout, "timeout", defaultTimeoutSecs, "Session timeout in seconds (0 waits forever)")
	fs.IntVar(&config.Sessions, "sessions", defaultSessions, "Number of capture sessions to run (0 runs forever)")
	fs.BoolVar(&config.Interactive, "interactive", defaultInteractive, "Wait for a keystroke before each capture")
	fs.BoolVar(&config.Debug, "debug", false, "Enable debugging mode")
	fs.BoolVar(&config.Verbose, "verbose", false, "Enable verbose logging")

	if err := fs.Parse(args); err != nil {
		return nil, errFactory.Wrap(errors.ErrInvalidConfig, err)
	}

	// Load configuration from file
	v := viper.New()
	v.SetDefault("period", defaultPeriodMicros)
	v.SetDefault("timeout", defaultTimeoutSecs)
	v.SetDefault("sessions", defaultSessions)
	v.SetDefault("interactive", defaultInteractive)

	if path := os.Getenv("JITTERCTL_CONFIG"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("jitterctl.conf")
		v.SetConfigType("toml")
		v.AddConfigPath("/etc")
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errFactory.Wrap(errors.ErrReadConfig, err)
		}
	}

	// Override config file values with command line flags
	fs.Visit(func(f *flag.Flag) {
		v.Set(f.Name, f.Value.String())
	})

	// Unmarshal the configuration
	if err := v.Unmarshal(config); err != nil {
		return nil, errFactory.Wrap(errors.ErrInvalidConfig, err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	errFactory := errors.New()

	if c.Period <= 0 {
		return errFactory.WithData(errors.ErrInvalidPeriod, c.Period)
	}
	if c.Timeout < 0 {
		return errFactory.WithData(errors.ErrInvalidTimeout, c.Timeout)
	}
	if c.Sessions < 0 {
		return errFactory.WithData(errors.ErrInvalidConfig, c.Sessions)
	}

	return nil
}
