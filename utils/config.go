package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Config holds the configuration for the simulation
type Config struct {
	Size          int           `json:"size"`
	Generations   int           `json:"generations"`
	Pattern       string        `json:"pattern"`
	Workers       int           `json:"workers"`
	FrameRate     time.Duration `json:"frame_rate"`
	Seed          int64         `json:"seed"`
	UseMemoryPool bool          `json:"use_memory_pool"`
	ClearScreen   bool          `json:"clear_screen"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Size:          8,
		Generations:   3,
		Pattern:       "blinker",
		Workers:       1,
		FrameRate:     0,
		Seed:          0,
		UseMemoryPool: true,
		ClearScreen:   false,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if config.Size < 1 {
		return config, errors.Errorf("[LoadConfig] size must be at least 1, got: %+v", config.Size)
	}

	return config, nil
}
