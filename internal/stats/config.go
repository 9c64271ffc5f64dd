package stats

import "codeberg.org/mutker/jitterctl/internal/errors"

const defaultCapacity = 64

type Config struct {
	Enabled  bool
	Capacity int // number of recent snapshots retained, 0 uses the default
}

func DefaultConfig() Config {
	return Config{
		Enabled:  true,
		Capacity: defaultCapacity,
	}
}

func (c Config) Validate() error {
	errFactory := errors.New()

	if c.Capacity < 0 {
		return errFactory.WithData(errors.ErrInvalidStatsConfig, c.Capacity)
	}

	return nil
}
