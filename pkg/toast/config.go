package toast

import (
	"time"

	"github.com/dmitrymomot/toastkit/pkg/config"
	"github.com/dmitrymomot/toastkit/pkg/notice"
)

// EnvPrefix is prepended to every Config variable.
const EnvPrefix = "TOAST_"

// Config holds the environment tunables of a toast scheduler.
type Config struct {
	TickQuantum     time.Duration `env:"TICK_QUANTUM" envDefault:"100ms"`
	DefaultLifetime time.Duration `env:"DEFAULT_LIFETIME" envDefault:"3s"`
	BufferSize      int           `env:"BUFFER_SIZE" envDefault:"64"`
	Position        Position      `env:"POSITION" envDefault:"bottom-right"`
}

// LoadConfig reads TOAST_* variables. Extra options are applied after the prefix.
func LoadConfig(opts ...config.Option) (Config, error) {
	var cfg Config
	opts = append([]config.Option{config.WithPrefix(EnvPrefix)}, opts...)
	if err := config.Load(&cfg, opts...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Options converts the config into scheduler options.
func (c Config) Options() []notice.Option {
	return []notice.Option{
		notice.WithTickQuantum(c.TickQuantum),
		notice.WithDefaultLifetime(c.DefaultLifetime),
		notice.WithBufferSize(c.BufferSize),
	}
}
