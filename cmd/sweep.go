package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/e30n3/freon/internal/sweep"
)

type sweepOptions struct {
	csv  string
	plot string
}

func (o *sweepOptions) register(flags *pflag.FlagSet) {
	flags.StringVar(&o.csv, "csv", "", "write records to this CSV file instead of standard output")
	flags.StringVar(&o.plot, "plot", "", "save a drift velocity figure (.png, .svg, .pdf)")
}

func (a *app) sweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Evaluate ranges of diameters and temperatures",
	}
	cmd.AddCommand(a.sweepDiameterCmd(), a.sweepTemperatureCmd())
	return cmd
}

func (a *app) sweepDiameterCmd() *cobra.Command {
	var (
		opts        sweepOptions
		temperature float64
		substances  []string
	)
	cmd := &cobra.Command{
		Use:   "diameter",
		Short: "Sweep droplet diameters for every refrigerant at one temperature",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("temperature") {
				a.cfg.Temperature = temperature
			}
			if cmd.Flags().Changed("substances") {
				a.cfg.Sweep.Substances = substances
			}
			if err := a.revalidate(); err != nil {
				return err
			}

			a.log.WithFields(logrus.Fields{
				"substances":  a.cfg.Derived.Kinds,
				"temperature": a.cfg.Temperature,
				"diameter":    a.cfg.Sweep.Diameter,
			}).Info("diameter sweep")

			rec := sweep.NewRecorder()
			if err := sweep.Diameters(a.cfg.Derived.Kinds, a.cfg.Temperature, a.cfg.Sweep.Diameter, rec); err != nil {
				return err
			}
			title := fmt.Sprintf("t = %g degree C", a.cfg.Temperature)
			return a.export(cmd, &opts, rec, sweep.BySubstance, title)
		},
	}
	opts.register(cmd.Flags())
	cmd.Flags().Float64VarP(&temperature, "temperature", "t", 0, "ambient temperature, degree C")
	cmd.Flags().StringSliceVar(&substances, "substances", nil, "refrigerants to include")
	return cmd
}

func (a *app) sweepTemperatureCmd() *cobra.Command {
	var (
		opts      sweepOptions
		substance string
	)
	cmd := &cobra.Command{
		Use:   "temperature",
		Short: "Sweep temperatures and droplet diameters for one refrigerant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("substance") {
				a.cfg.Substance = substance
			}
			if err := a.revalidate(); err != nil {
				return err
			}

			a.log.WithFields(logrus.Fields{
				"substance":   a.cfg.Derived.Kind,
				"temperature": a.cfg.Sweep.Temperature,
				"diameter":    a.cfg.Sweep.Diameter,
			}).Info("temperature sweep")

			rec := sweep.NewRecorder()
			if err := sweep.Temperatures(a.cfg.Derived.Kind, a.cfg.Sweep.Temperature, a.cfg.Sweep.Diameter, rec); err != nil {
				return err
			}
			return a.export(cmd, &opts, rec, sweep.ByTemperature, a.cfg.Derived.Kind.String())
		},
	}
	opts.register(cmd.Flags())
	cmd.Flags().StringVarP(&substance, "substance", "s", "", "refrigerant (R134, R407, R410, R32)")
	return cmd
}

func (a *app) export(cmd *cobra.Command, opts *sweepOptions, rec *sweep.Recorder, label func(sweep.Record) string, title string) error {
	csvPath := opts.csv
	if csvPath == "" {
		csvPath = a.cfg.Output.CSV
	}
	plotPath := opts.plot
	if plotPath == "" {
		plotPath = a.cfg.Output.Plot
	}

	if csvPath == "" {
		if err := rec.WriteCSV(cmd.OutOrStdout()); err != nil {
			return err
		}
	} else {
		a.log.Infof("Save %d records to `%s`", rec.Len(), csvPath)
		if err := writeCSVFile(rec, csvPath); err != nil {
			return err
		}
	}

	if plotPath != "" {
		a.log.Infof("Save figure to `%s`", plotPath)
		if err := sweep.Plot(rec.Series(label), title, plotPath); err != nil {
			return err
		}
	}
	return nil
}

func writeCSVFile(rec *sweep.Recorder, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := rec.WriteCSV(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
