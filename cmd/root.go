// Package cmd implements the freon command line interface.
package cmd

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/e30n3/freon/internal/config"
)

// Version is the program version.
const Version = "1.0.0"

type app struct {
	configFile string
	logLevel   string
	cfg        *config.Config
	log        *logrus.Logger
	start      time.Time
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{log: logrus.New()}

	root := &cobra.Command{
		Use:   "freon",
		Short: "Drift velocity of droplets in refrigerant vapor.",
		Long: `freon computes the Archimedes and Reynolds criteria and the drift
velocity of a droplet in saturated refrigerant vapor, using properties
interpolated from tabulated data.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.startup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.log.WithField("elapsed", time.Since(a.start)).Debug("completed")
		},
	}
	root.PersistentFlags().StringVar(&a.configFile, "config", "", "configuration file (.yaml or .toml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level, overrides the configuration file")

	root.AddCommand(
		a.calcCmd(),
		a.sweepCmd(),
		a.interactiveCmd(),
		a.substancesCmd(),
		versionCmd(),
	)
	return root
}

// Execute runs the command line.
func Execute() error {
	return NewRootCmd().Execute()
}

func (a *app) startup(cmd *cobra.Command) error {
	a.start = time.Now()
	a.log.SetOutput(cmd.ErrOrStderr())

	cfg, err := config.Load(a.configFile)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	a.cfg = cfg
	a.log.SetLevel(cfg.Derived.LogLevel)

	a.log.WithFields(logrus.Fields{
		"config":    a.configFile,
		"substance": cfg.Derived.Kind,
	}).Debug("configuration loaded")
	return nil
}

// revalidate recomputes derived settings after flags changed the configuration.
func (a *app) revalidate() error {
	return a.cfg.Validate()
}
