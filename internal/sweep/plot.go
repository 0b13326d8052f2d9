package sweep

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Plot draws drift velocity against droplet diameter, one line per series,
// and saves it to path. The image format follows the file extension.
func Plot(series []Series, title, path string) error {
	if len(series) == 0 {
		return fmt.Errorf("sweep: nothing to plot")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "droplet diameter, mm"
	p.Y.Label.Text = "drift velocity, m/s"

	lines := make([]interface{}, 0, 2*len(series))
	for _, s := range series {
		xys := make(plotter.XYs, len(s.DiameterMM))
		for i := range xys {
			xys[i].X = s.DiameterMM[i]
			xys[i].Y = s.DriftVelocity[i]
		}
		lines = append(lines, s.Label, xys)
	}
	if err := plotutil.AddLines(p, lines...); err != nil {
		return err
	}
	p.Legend.Top = true
	p.Legend.Left = true

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
