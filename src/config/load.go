package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid config")

// Load decodes a YAML config file on top of cfg. Keys missing from the file
// leave cfg untouched. The result is not validated; call Validate once every
// source has been applied.
func Load(cfg *Config, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode config %s: %w", path, err)
	}
	return nil
}

// LoadEnv applies ELEVSIM_* overrides from a dotenv file. Keys that are absent
// leave the config untouched. Like Load, it does not validate.
func LoadEnv(cfg *Config, path string) error {
	env, err := godotenv.Read(path)
	if err != nil {
		return fmt.Errorf("read env file: %w", err)
	}
	return applyEnv(cfg, env)
}

func applyEnv(cfg *Config, env map[string]string) error {
	ints := map[string]*int{
		"NUM_FLOORS":  &cfg.NumFloors,
		"START_FLOOR": &cfg.StartFloor,
		"DWELL_TICKS": &cfg.DwellTicks,
		"TOTAL_TICKS": &cfg.TotalTicks,
	}
	for key, field := range ints {
		raw, ok := env[EnvPrefix+key]
		if !ok {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q: %v", ErrInvalid, EnvPrefix, key, raw, err)
		}
		*field = v
	}
	if v, ok := env[EnvPrefix+"LOG_LEVEL"]; ok {
		cfg.LogLevel = v
	}
	if v, ok := env[EnvPrefix+"LOG_FILE"]; ok {
		cfg.LogFile = v
	}
	if raw, ok := env[EnvPrefix+"TICK_INTERVAL"]; ok {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("%w: %sTICK_INTERVAL=%q: %v", ErrInvalid, EnvPrefix, raw, err)
		}
		cfg.TickInterval = d
	}
	return nil
}

func (cfg Config) Validate() error {
	switch {
	case cfg.NumFloors < 2:
		return fmt.Errorf("%w: num_floors must be at least 2, got %d", ErrInvalid, cfg.NumFloors)
	case cfg.StartFloor < 0 || cfg.StartFloor >= cfg.NumFloors:
		return fmt.Errorf("%w: start_floor %d outside [0,%d)", ErrInvalid, cfg.StartFloor, cfg.NumFloors)
	case cfg.DwellTicks < 0:
		return fmt.Errorf("%w: dwell_ticks must not be negative", ErrInvalid)
	case cfg.TotalTicks < 0:
		return fmt.Errorf("%w: total_ticks must not be negative", ErrInvalid)
	case cfg.TickInterval < 0:
		return fmt.Errorf("%w: tick_interval must not be negative", ErrInvalid)
	}
	return nil
}
