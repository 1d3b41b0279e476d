package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabrielcapilla/tapedeck/internal/domain"
	"github.com/gabrielcapilla/tapedeck/internal/logger"
	"github.com/gabrielcapilla/tapedeck/internal/ports"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Flag names bound on top of the config file.
const (
	FlagLogLevel      = "log-level"
	FlagStartPosition = "start"
)

type ViperConfigService struct {
	v          *viper.Viper
	configFile string
}

// NewViperConfigService reads configFile when it is set, otherwise config.yml
// from the user config directory or the working directory. Flags that were
// changed on the command line take precedence over the file.
func NewViperConfigService(configFile string, flags *pflag.FlagSet) ports.ConfigService {
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		configDir, err := os.UserConfigDir()
		if err != nil {
			logger.Log.Warn().Err(err).Msg("Could not find user config directory, using current directory")
		}

		if configDir != "" {
			deckConfigDir := filepath.Join(configDir, "tapedeck")
			if err := os.MkdirAll(deckConfigDir, 0755); err != nil {
				logger.Log.Error().Err(err).Msg("Could not create tapedeck config directory")
			} else {
				v.AddConfigPath(deckConfigDir)
			}
		}

		v.SetConfigName("config")
		v.AddConfigPath(".")
	}
	v.SetConfigType("yml")

	v.SetDefault("frameInterval", "16ms")
	v.SetDefault("startPosition", 0.0)
	v.SetDefault("label", "MIXTAPE VOL. 1")
	v.SetDefault("logLevel", "info")
	v.SetDefault("flash.duration", "150ms")
	v.SetDefault("flash.debounce", false)

	v.SetEnvPrefix("TAPEDECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		bindFlag(v, "logLevel", flags.Lookup(FlagLogLevel))
		bindFlag(v, "startPosition", flags.Lookup(FlagStartPosition))
	}

	return &ViperConfigService{v: v, configFile: configFile}
}

func bindFlag(v *viper.Viper, key string, flag *pflag.Flag) {
	if flag == nil {
		return
	}
	if err := v.BindPFlag(key, flag); err != nil {
		logger.Log.Warn().Err(err).Str("flag", flag.Name).Msg("Could not bind flag")
	}
}

func (s *ViperConfigService) Load() (domain.Config, error) {
	var cfg domain.Config

	if err := s.v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &configFileNotFoundError):
			logger.Log.Info().Msg("Config file not found, creating with default values.")
			if err := s.v.SafeWriteConfig(); err != nil {
				return cfg, fmt.Errorf("could not write default config: %w", err)
			}
		case s.configFile != "" && errors.Is(err, fs.ErrNotExist):
			logger.Log.Info().Str("path", s.configFile).Msg("Config file not found, creating with default values.")
			if err := s.v.SafeWriteConfigAs(s.configFile); err != nil {
				return cfg, fmt.Errorf("could not write default config: %w", err)
			}
		default:
			return cfg, fmt.Errorf("could not read config: %w", err)
		}
	}

	if err := s.v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("could not decode config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func validate(cfg domain.Config) error {
	if cfg.FrameInterval <= 0 {
		return fmt.Errorf("frameInterval must be positive, got %s", cfg.FrameInterval)
	}
	if cfg.Flash.Duration <= 0 {
		return fmt.Errorf("flash.duration must be positive, got %s", cfg.Flash.Duration)
	}
	if cfg.StartPosition < 0 || cfg.StartPosition > 100 {
		return fmt.Errorf("startPosition must be within [0, 100], got %g", cfg.StartPosition)
	}
	return nil
}
