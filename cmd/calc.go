package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/e30n3/freon/internal/console"
	"github.com/e30n3/freon/internal/criteria"
	"github.com/e30n3/freon/internal/refrigerant"
)

func (a *app) calcCmd() *cobra.Command {
	var (
		substance   string
		temperature float64
		diameter    float64
	)
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute the criteria for one droplet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("substance") {
				a.cfg.Substance = substance
			}
			if flags.Changed("temperature") {
				a.cfg.Temperature = temperature
			}
			if flags.Changed("diameter") {
				a.cfg.DiameterMM = diameter
			}
			if err := a.revalidate(); err != nil {
				return err
			}

			f, err := refrigerant.New(a.cfg.Derived.Kind, a.cfg.Temperature)
			if err != nil {
				return err
			}
			res, err := criteria.Evaluate(a.cfg.Derived.DiameterM, f)
			if err != nil {
				a.log.WithFields(logrus.Fields{
					"substance":   f.Name(),
					"temperature": f.Temperature(),
				}).Error("cannot resolve properties")
				return err
			}
			a.logProperties(f)

			out := cmd.OutOrStdout()
			comma := a.cfg.DecimalComma
			fmt.Fprintf(out, "Refrigerant: %s, t = %s degree C, d = %s mm\n",
				f.Name(), console.FormatFloat(f.Temperature(), comma), console.FormatFloat(a.cfg.DiameterMM, comma))
			fmt.Fprintf(out, "Archimedes criterion: %s\n", console.FormatFloat(res.Archimedes, comma))
			fmt.Fprintf(out, "Reynolds criterion: %s\n", console.FormatFloat(res.Reynolds, comma))
			fmt.Fprintf(out, "Drift velocity, m/s: %s\n", console.FormatFloat(res.DriftVelocity, comma))
			return nil
		},
	}
	cmd.Flags().StringVarP(&substance, "substance", "s", "", "refrigerant (R134, R407, R410, R32)")
	cmd.Flags().Float64VarP(&temperature, "temperature", "t", 0, "ambient temperature, degree C")
	cmd.Flags().Float64VarP(&diameter, "diameter", "d", 0, "droplet diameter, mm")
	return cmd
}

func (a *app) logProperties(f *refrigerant.Freon) {
	if !a.log.IsLevelEnabled(logrus.DebugLevel) {
		return
	}
	fields := logrus.Fields{"substance": f.Name(), "temperature": f.Temperature()}
	if v, err := f.VaporDensity(); err == nil {
		fields["vapor_density"] = v
	}
	if v, err := f.LiquidDensity(); err == nil {
		fields["liquid_density"] = v
	}
	if v, err := f.KinematicVaporViscosity(); err == nil {
		fields["kinematic_vapor_viscosity"] = v
	}
	a.log.WithFields(fields).Debug("properties resolved")
}
