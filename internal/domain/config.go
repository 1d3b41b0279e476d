package domain

import "time"

type Config struct {
	FrameInterval time.Duration `mapstructure:"frameInterval"`
	StartPosition float64       `mapstructure:"startPosition"`
	Label         string        `mapstructure:"label"`
	LogLevel      string        `mapstructure:"logLevel"`
	Flash         FlashConfig   `mapstructure:"flash"`
}

type FlashConfig struct {
	Duration time.Duration `mapstructure:"duration"`
	// Debounce cancels the pending flash timer on every new press instead of
	// letting an older timer clear a newer flash.
	Debounce bool `mapstructure:"debounce"`
}
