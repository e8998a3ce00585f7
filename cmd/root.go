package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/lingua/internal/config"
	"github.com/abhisek/lingua/internal/lessons"
)

// cliState holds what the persistent pre-run resolved for subcommands.
type cliState struct {
	cfg    config.Config
	logger *slog.Logger
}

// Execute runs the lingua command tree.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rt := &cliState{}

	rootCmd := &cobra.Command{
		Use:           "lingua",
		Short:         "Gamified language-learning engine",
		Long:          "Lingua checks answers with typo tolerance and tracks XP, levels, streaks, combos, energy and achievements.",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			logger, err := setupLogger(cfg.Log, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			rt.cfg = cfg
			rt.logger = logger
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("course", "", "Path to a course JSON file (overrides LINGUA_COURSE, default: bundled course)")
	flags.Int("max-energy", 0, "Energy capacity (overrides LINGUA_MAX_ENERGY)")
	flags.String("user", "", "Learner ID (overrides LINGUA_USER)")
	flags.String("log-level", "", "Log level: debug, info, warn, error (overrides LINGUA_LOG_LEVEL)")
	flags.String("log-format", "", "Log format: text, json (overrides LINGUA_LOG_FORMAT)")

	rootCmd.AddCommand(newDemoCmd(rt))
	rootCmd.AddCommand(newCourseCmd(rt))
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// resolveConfig layers flags over LINGUA_* env vars over defaults.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.ConfigFromEnv()
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("course") {
		cfg.CoursePath, _ = flags.GetString("course")
	}
	if flags.Changed("max-energy") {
		cfg.MaxEnergy, _ = flags.GetInt("max-energy")
	}
	if flags.Changed("user") {
		cfg.UserID, _ = flags.GetString("user")
	}
	if flags.Changed("log-level") {
		cfg.Log.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		cfg.Log.Format, _ = flags.GetString("log-format")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func setupLogger(cfg config.LogConfig, w io.Writer) (*slog.Logger, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler), nil
}

// loadCourse returns the course at path, or the bundled one when path is empty.
func loadCourse(path string) (*lessons.Course, error) {
	if path == "" {
		return lessons.DefaultCourse()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open course: %w", err)
	}
	defer f.Close()
	return lessons.LoadCourse(f)
}
