package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/e30n3/freon/internal/criteria"
	"github.com/e30n3/freon/internal/refrigerant"
)

func TestAskRepeatsUntilValid(t *testing.T) {
	in := strings.NewReader("9\nabc\n\n1\n-2\nx\n0\n0.5\n45\nNaN\n-5.5\n")
	var out bytes.Buffer

	q, err := NewSession(in, &out, -30, 30).Ask()
	require.NoError(t, err)

	assert.Equal(t, refrigerant.R407, q.Kind)
	assert.InDelta(t, 0.0005, q.DiameterM, 1e-15)
	assert.Equal(t, -5.5, q.Temperature)

	text := out.String()
	assert.Equal(t, 4, strings.Count(text, "Choose the refrigerant:"))
	assert.Contains(t, text, "0. R134\t\t1. R407\t\t2. R410\t\t3. R32")
	assert.Equal(t, 4, strings.Count(text, "Droplet diameter, mm:"))
	assert.Equal(t, 3, strings.Count(text, "Air temperature, degree C [-30; 30]:"))
}

func TestAskKindIndexIsDecimal(t *testing.T) {
	for in, want := range map[string]refrigerant.Kind{
		"00\n":            refrigerant.R134,
		"02\n":            refrigerant.R410,
		"0x1\n0b1\n003\n": refrigerant.R32,
		"010\n08\n01\n":   refrigerant.R407,
	} {
		q, err := NewSession(strings.NewReader(in+"1\n0\n"), &bytes.Buffer{}, -30, 30).Ask()
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, q.Kind, "input %q", in)
	}

	for in, want := range map[string]int{"0": 0, "000": 0, "010": 10, "08": 8, "3": 3} {
		got, err := parseIndex(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
	}
	for _, in := range []string{"", "0x2", "0b1", "0o7", "x"} {
		_, err := parseIndex(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestAskEndOfInput(t *testing.T) {
	for _, in := range []string{"", "0\n", "0\n1\n", "7\n"} {
		_, err := NewSession(strings.NewReader(in), &bytes.Buffer{}, -30, 30).Ask()
		assert.ErrorIs(t, err, ErrNoInput, "input %q", in)
	}
}

func TestRunPrintsCriteria(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(strings.NewReader("0\n0.5\n0\n"), &out, -30, 30)

	q, res, err := s.Run()
	require.NoError(t, err)
	assert.Equal(t, refrigerant.R134, q.Kind)

	f, err := refrigerant.New(refrigerant.R134, 0)
	require.NoError(t, err)
	want, err := criteria.Evaluate(0.0005, f)
	require.NoError(t, err)
	assert.Equal(t, want, res)

	text := out.String()
	assert.Contains(t, text, "Archimedes criterion:\n"+FormatFloat(res.Archimedes, false)+"\n")
	assert.Contains(t, text, "Reynolds criterion:\n"+FormatFloat(res.Reynolds, false)+"\n")
	assert.Contains(t, text, "Drift velocity, m/s:\n"+FormatFloat(res.DriftVelocity, false)+"\n")
}

func TestDecimalComma(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(strings.NewReader("2\n0,75\n-2,5\n"), &out, -30, 30)
	s.DecimalComma = true

	q, res, err := s.Run()
	require.NoError(t, err)
	assert.InDelta(t, 0.00075, q.DiameterM, 1e-15)
	assert.Equal(t, -2.5, q.Temperature)
	assert.Contains(t, out.String(), FormatFloat(res.DriftVelocity, true))
	assert.NotContains(t, FormatFloat(res.DriftVelocity, true), ".")
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "0.9921727483837682", FormatFloat(0.9921727483837682, false))
	assert.Equal(t, "0,9921727483837682", FormatFloat(0.9921727483837682, true))
	assert.Equal(t, "189013", FormatFloat(189013, true))
	assert.Equal(t, "-12,5", FormatFloat(-12.5, true))
}

func TestCustomTemperatureBounds(t *testing.T) {
	var out bytes.Buffer
	q, err := NewSession(strings.NewReader("3\n1\n-20\n15\n"), &out, 0, 20).Ask()
	require.NoError(t, err)
	assert.Equal(t, 15.0, q.Temperature)
	assert.Contains(t, out.String(), "[0; 20]")
}
