package config

import "time"

const (
	NumFloors  = 10
	StartFloor = 1
	DwellTicks = 1
	TotalTicks = 100
	LogLevel   = "info"
	EnvPrefix  = "ELEVSIM_"
)

// TickInterval of zero runs ticks back to back.
const TickInterval time.Duration = 0

// Config holds the run settings. Default fills it from the constants above.
type Config struct {
	NumFloors    int           `yaml:"num_floors"`
	StartFloor   int           `yaml:"start_floor"`
	DwellTicks   int           `yaml:"dwell_ticks"`
	TotalTicks   int           `yaml:"total_ticks"`
	LogLevel     string        `yaml:"log_level"`
	LogFile      string        `yaml:"log_file"`
	TickInterval time.Duration `yaml:"tick_interval"`
}

func Default() Config {
	return Config{
		NumFloors:    NumFloors,
		StartFloor:   StartFloor,
		DwellTicks:   DwellTicks,
		TotalTicks:   TotalTicks,
		LogLevel:     LogLevel,
		TickInterval: TickInterval,
	}
}
