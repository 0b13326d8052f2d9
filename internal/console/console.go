// Package console implements the interactive question-and-answer session.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/spf13/cast"

	"github.com/e30n3/freon/internal/criteria"
	"github.com/e30n3/freon/internal/refrigerant"
)

// ErrNoInput is returned when the input ends before all answers are given.
var ErrNoInput = errors.New("console: input ended")

// Query is the set of answers collected from the user.
type Query struct {
	Kind        refrigerant.Kind
	DiameterM   float64 // m
	Temperature float64 // degree C
}

// Session asks for a refrigerant, a droplet diameter and a temperature,
// repeating each question until the answer is valid.
type Session struct {
	in  *bufio.Scanner
	out io.Writer

	TemperatureMin, TemperatureMax float64
	DecimalComma                   bool
}

func NewSession(in io.Reader, out io.Writer, tmin, tmax float64) *Session {
	return &Session{
		in:             bufio.NewScanner(in),
		out:            out,
		TemperatureMin: tmin,
		TemperatureMax: tmax,
	}
}

// Ask collects a complete query.
func (s *Session) Ask() (Query, error) {
	var q Query
	var err error
	if q.Kind, err = s.askKind(); err != nil {
		return Query{}, err
	}
	if q.DiameterM, err = s.askDiameter(); err != nil {
		return Query{}, err
	}
	if q.Temperature, err = s.askTemperature(); err != nil {
		return Query{}, err
	}
	return q, nil
}

// Run asks for a query, evaluates it and prints the criteria.
func (s *Session) Run() (Query, criteria.Result, error) {
	q, err := s.Ask()
	if err != nil {
		return Query{}, criteria.Result{}, err
	}

	f, err := refrigerant.New(q.Kind, q.Temperature)
	if err != nil {
		return q, criteria.Result{}, err
	}
	res, err := criteria.Evaluate(q.DiameterM, f)
	if err != nil {
		return q, criteria.Result{}, err
	}

	s.Report(res)
	return q, res, nil
}

// Report prints the criteria.
func (s *Session) Report(res criteria.Result) {
	fmt.Fprintln(s.out, "Archimedes criterion:")
	fmt.Fprintln(s.out, FormatFloat(res.Archimedes, s.DecimalComma))
	fmt.Fprintln(s.out, "Reynolds criterion:")
	fmt.Fprintln(s.out, FormatFloat(res.Reynolds, s.DecimalComma))
	fmt.Fprintln(s.out, "Drift velocity, m/s:")
	fmt.Fprintln(s.out, FormatFloat(res.DriftVelocity, s.DecimalComma))
}

func (s *Session) askKind() (refrigerant.Kind, error) {
	for {
		fmt.Fprintln(s.out, "Choose the refrigerant:")
		names := make([]string, 0, len(refrigerant.Kinds()))
		for i, k := range refrigerant.Kinds() {
			names = append(names, fmt.Sprintf("%d. %s", i, k))
		}
		fmt.Fprintln(s.out, strings.Join(names, "\t\t"))

		line, err := s.readLine()
		if err != nil {
			return "", err
		}
		i, err := parseIndex(line)
		if err != nil {
			continue
		}
		if k, ok := refrigerant.KindAt(i); ok {
			return k, nil
		}
	}
}

// parseIndex reads a decimal menu index. Leading zeros do not switch
// to octal, and base prefixes are not accepted.
func parseIndex(line string) (int, error) {
	digits := strings.TrimLeft(line, "0")
	if digits == "" && line != "" {
		digits = "0"
	}
	return cast.ToIntE(digits)
}

func (s *Session) askDiameter() (float64, error) {
	for {
		fmt.Fprintln(s.out, "Droplet diameter, mm:")
		line, err := s.readLine()
		if err != nil {
			return 0, err
		}
		d, err := s.parseFloat(line)
		if err != nil || !(d > 0) || math.IsInf(d, 0) {
			continue
		}
		// mm -> m
		return d / 1000, nil
	}
}

func (s *Session) askTemperature() (float64, error) {
	for {
		fmt.Fprintf(s.out, "Air temperature, degree C [%v; %v]:\n", s.TemperatureMin, s.TemperatureMax)
		line, err := s.readLine()
		if err != nil {
			return 0, err
		}
		t, err := s.parseFloat(line)
		if err != nil || !(t >= s.TemperatureMin && t <= s.TemperatureMax) {
			continue
		}
		return t, nil
	}
}

func (s *Session) parseFloat(line string) (float64, error) {
	if s.DecimalComma {
		line = strings.Replace(line, ",", ".", 1)
	}
	return cast.ToFloat64E(line)
}

func (s *Session) readLine() (string, error) {
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", ErrNoInput
	}
	return strings.TrimSpace(s.in.Text()), nil
}
