package main

import (
	"fmt"
	"os"

	"github.com/gabrielcapilla/tapedeck/internal/deck"
	"github.com/gabrielcapilla/tapedeck/internal/logger"
	"github.com/gabrielcapilla/tapedeck/internal/services/config"
	"github.com/gabrielcapilla/tapedeck/internal/services/scheduler"
	"github.com/gabrielcapilla/tapedeck/internal/ui"

	"github.com/benbjohnson/clock"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "tapedeck",
	Short: "A cassette deck for your terminal",
	Long: `tapedeck draws a cassette player with spinning reels and a tape counter.
Play, rewind and fast-forward move the tape between the reels. Nothing is
actually played.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVarP(&configFile, "config", "c", "", "config file (default is <user config dir>/tapedeck/config.yml)")
	rootCmd.Flags().String(config.FlagLogLevel, "info", "log level: debug, info, warn, error")
	rootCmd.Flags().Float64(config.FlagStartPosition, 0, "initial tape position between 0 and 100")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.NewViperConfigService(configFile, cmd.Flags()).Load()
	if err != nil {
		return err
	}

	logFile, err := logger.Init(logger.Path(), cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logFile.Close()

	d := deck.New(scheduler.NewClockScheduler(clock.New()), deck.OptionsFromConfig(cfg))
	defer d.Close()

	p := tea.NewProgram(ui.InitialModel(d), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		logger.Log.Error().Err(err).Msg("Program exited with error")
		return fmt.Errorf("could not run program: %w", err)
	}

	logger.Log.Info().Msg("Bye")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Oh no! There was an error: %v\n", err)
		os.Exit(1)
	}
}
