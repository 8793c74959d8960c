package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/Veraticus/amazing-numbers/internal/cli"
	"github.com/Veraticus/amazing-numbers/internal/common"
	"github.com/Veraticus/amazing-numbers/internal/config"
	"github.com/Veraticus/amazing-numbers/internal/engine"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile   string
	appConfig config.Config
	version   = "dev"
	rootCmd   = &cobra.Command{
		Use:   "amazing",
		Short: "🔢 Amazing Numbers property explorer",
		Long: `amazing-numbers: classify natural numbers by twelve digit and arithmetic
properties (even, buzz, duck, palindromic, gapful, spy, square, sunny, jumping,
happy and their opposites), list ranges, and search for numbers that match a
combination of properties.

Run without a subcommand for the interactive prompt.`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: initConfig,
		RunE:              runInteractive,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}
)

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/amazing/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")
	rootCmd.PersistentFlags().String("format", "text", "output format for results (text, json, yaml)")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	rootCmd.Flags().String("input", "", "read requests from a file instead of stdin")

	// Bind flags to viper
	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag("display.format", rootCmd.PersistentFlags().Lookup("format"))

	// Add commands
	rootCmd.AddCommand(checkCmd())
	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(propertiesCmd())
	rootCmd.AddCommand(tallyCmd())
	rootCmd.AddCommand(tuiCmd())
	rootCmd.AddCommand(versionCmd())
}

func main() {
	// Set up signal handling
	interrupts := cli.NewInterruptHandler(os.Stderr, cli.Palette{Color: true})
	ctx := interrupts.HandleInterrupts(context.Background())

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		if interrupts.WasInterrupted() {
			slog.Debug("Stopped by interrupt", "error", err)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func initConfig(cmd *cobra.Command, _ []string) error {
	// Set up config file
	if cfgFile != "" {
		viper.SetConfigFile(config.ExpandPath(cfgFile))
	} else {
		for _, path := range config.SearchPaths() {
			viper.AddConfigPath(path)
		}
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// Environment variables, e.g. AMAZING_LOGGING_LEVEL
	viper.SetEnvPrefix(strings.ToUpper(config.AppName))
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		viper.Set("display.color", false)
	}

	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}
	appConfig = cfg

	// Set up logging
	level, err := common.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return err
	}
	if err := common.SetupLogger(level, cfg.Logging.Format); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	slog.Debug("Configuration loaded", "file", viper.ConfigFileUsed(), "format", cfg.Display.Format)
	return nil
}

func newEngine() *engine.Engine {
	return engine.NewWithConfig(engine.Config{
		SearchWarnAfter: appConfig.Search.WarnAfter,
	})
}

func palette() cli.Palette {
	return cli.Palette{Color: appConfig.Display.Color}
}

// newRenderer writes results to stdout in the configured format.
func newRenderer() (*cli.Renderer, error) {
	format, err := cli.ParseFormat(appConfig.Display.Format)
	if err != nil {
		return nil, common.NewUserError("invalid --format", err)
	}
	return cli.NewRenderer(os.Stdout, format, palette()), nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			slog.Info("amazing version", "version", version)
		},
	}
}
