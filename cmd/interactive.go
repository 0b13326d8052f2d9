package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/e30n3/freon/internal/console"
)

func (a *app) interactiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Ask for the refrigerant, diameter and temperature on the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := console.NewSession(cmd.InOrStdin(), cmd.OutOrStdout(),
				a.cfg.Input.TemperatureMin, a.cfg.Input.TemperatureMax)
			s.DecimalComma = a.cfg.DecimalComma

			q, res, err := s.Run()
			if err != nil {
				return err
			}
			a.log.WithFields(logrus.Fields{
				"substance":      q.Kind,
				"temperature":    q.Temperature,
				"diameter_m":     q.DiameterM,
				"drift_velocity": res.DriftVelocity,
			}).Debug("interactive query")
			return nil
		},
	}
}
