// Package criteria evaluates the dimensionless criteria that give the drift
// velocity of a droplet in refrigerant vapor.
package criteria

import "math"

// G is the standard acceleration of gravity, m/s2.
const G = 9.80665

// Medium provides the properties of the fluid pair at the current
// temperature.
type Medium interface {
	VaporDensity() (float64, error)
	LiquidDensity() (float64, error)
	KinematicVaporViscosity() (float64, error)
}

// Result holds the criteria computed for one droplet.
type Result struct {
	Archimedes    float64 // -
	Reynolds      float64 // -
	DriftVelocity float64 // m/s
}

/*
Archimedes computes the Archimedes criterion.

	Args:
	    d: droplet diameter, m
	    nu: kinematic viscosity of the vapor, m2/s
	    rhoL: liquid density, kg/m3
	    rhoV: vapor density, kg/m3

	Returns:
	    Archimedes criterion, -
*/
func Archimedes(d, nu, rhoL, rhoV float64) float64 {
	return (G * math.Pow(d, 3) / math.Pow(nu, 2)) * ((rhoL - rhoV) / rhoV)
}

/*
Reynolds computes the Reynolds criterion of a hovering droplet.

	Args:
	    ar: Archimedes criterion, -

	Returns:
	    Reynolds criterion, -
*/
func Reynolds(ar float64) float64 {
	return ar / (18 + 0.61*math.Sqrt(ar))
}

/*
DriftVelocity computes the drift (hovering) velocity of the vapor.

	Args:
	    nu: kinematic viscosity of the vapor, m2/s
	    d: droplet diameter, m
	    re: Reynolds criterion, -

	Returns:
	    drift velocity, m/s
*/
func DriftVelocity(nu, d, re float64) float64 {
	return re * nu / d
}

// Evaluate chains the three criteria for a droplet of diameter d, m.
func Evaluate(d float64, m Medium) (Result, error) {
	nu, err := m.KinematicVaporViscosity()
	if err != nil {
		return Result{}, err
	}
	rhoL, err := m.LiquidDensity()
	if err != nil {
		return Result{}, err
	}
	rhoV, err := m.VaporDensity()
	if err != nil {
		return Result{}, err
	}

	ar := Archimedes(d, nu, rhoL, rhoV)
	re := Reynolds(ar)
	return Result{
		Archimedes:    ar,
		Reynolds:      re,
		DriftVelocity: DriftVelocity(nu, d, re),
	}, nil
}
