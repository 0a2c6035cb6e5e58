package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/linefit/dataset"
	"github.com/arloliu/linefit/errs"
	"github.com/arloliu/linefit/regression"
)

func runSession(t *testing.T, input string, opts ...SessionOption) (*Report, string) {
	t.Helper()

	var out bytes.Buffer
	s, err := NewSession(strings.NewReader(input), &out, opts...)
	require.NoError(t, err)

	report, err := s.Run()
	require.NoError(t, err)

	return report, out.String()
}

func TestSession_FitsEnteredPoints(t *testing.T) {
	input := "1\n1\n2\n1\n2\n4\n1\n3\n6\n2\n"
	report, out := runSession(t, input)
	require.NotNil(t, report)

	assert.Equal(t, dataset.Points{{X: 1, Y: 2}, {X: 2, Y: 4}, {X: 3, Y: 6}}, report.Points)
	assert.Equal(t, regression.DefaultParameters(), report.Initial)
	assert.Equal(t, 14.0, report.InitialLoss)
	assert.Equal(t, regression.DefaultMaxSteps, report.Steps)
	assert.InDelta(t, 2.0, report.Final.Slope, 1e-3)
	assert.InDelta(t, 0.0, report.Final.Intercept, 1e-3)
	assert.InDelta(t, 0.0, report.FinalLoss, 1e-3)

	assert.True(t, strings.HasPrefix(out, welcome))
	assert.Equal(t, 4, strings.Count(out, ">>> "))
	assert.Contains(t, out, "Initial intercept: 0.0\nInitial slope: 1.0\nInitial error: 14.0\n")
	assert.Contains(t, out, "The number of steps was 100000\n")
	assert.Contains(t, out, "Final intercept: 0.0\nFinal slope: 2.0\n")
}

func TestSession_InvalidOption(t *testing.T) {
	report, out := runSession(t, "3\nabc\n\n2\n")
	assert.Nil(t, report)

	assert.Equal(t, 3, strings.Count(out, "Please enter a valid option."))
	assert.True(t, strings.HasSuffix(out, noCoordinates))
}

func TestSession_InvalidCoordinate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		promptY int
	}{
		{name: "bad x", input: "1\nfoo\n2\n", promptY: 0},
		{name: "bad y", input: "1\n1\nbar\n2\n", promptY: 1},
		{name: "empty x", input: "1\n\n2\n", promptY: 0},
		{name: "infinite y", input: "1\n1\ninf\n2\n", promptY: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, out := runSession(t, tt.input)
			assert.Nil(t, report, "a rejected pair is dropped")
			assert.Contains(t, out, "Invalid input. Only numbers are allowed.")
			assert.Equal(t, tt.promptY, strings.Count(out, promptY))
			assert.Contains(t, out, noCoordinates)
		})
	}
}

func TestSession_DuplicateX(t *testing.T) {
	report, _ := runSession(t, "1\n1\n2\n1\n1\n5\n2\n", WithFitOptions(regression.WithMaxSteps(1)))
	require.NotNil(t, report)
	assert.Equal(t, dataset.Points{{X: 1, Y: 5}}, report.Points)
}

func TestSession_EOFFinishes(t *testing.T) {
	report, out := runSession(t, "1\n0\n1\n")
	require.NotNil(t, report)

	assert.Equal(t, dataset.Points{{X: 0, Y: 1}}, report.Points)
	assert.Equal(t, 1.0, report.Final.Slope)
	assert.InDelta(t, 1.0, report.Final.Intercept, 1e-9)
	assert.Contains(t, out, "Final intercept: 1.0\nFinal slope: 1.0\n")
}

func TestSession_EOFDuringCoordinate(t *testing.T) {
	report, out := runSession(t, "1\n5\n")
	assert.Nil(t, report)
	assert.Contains(t, out, noCoordinates)
}

func TestSession_Seeded(t *testing.T) {
	seed := dataset.Points{{X: 1, Y: 1}, {X: 2, Y: 2}}
	report, _ := runSession(t, "",
		WithSeed(seed),
		WithInitial(regression.Parameters{Intercept: 1, Slope: 0}),
		WithFitOptions(regression.WithMaxSteps(10)),
	)
	require.NotNil(t, report)

	assert.Equal(t, seed, report.Points)
	assert.Equal(t, regression.Parameters{Intercept: 1, Slope: 0}, report.Initial)
	assert.Equal(t, 1.0, report.InitialLoss)
	assert.Equal(t, 10, report.Steps)
	assert.Less(t, report.FinalLoss, report.InitialLoss)
}

func TestSession_FitError(t *testing.T) {
	var out bytes.Buffer
	s, err := NewSession(strings.NewReader("2\n"), &out,
		WithSeed(dataset.Points{{X: 1, Y: 1}}),
		WithFitOptions(regression.WithLearningRate(-1)),
	)
	require.NoError(t, err)

	report, err := s.Run()
	require.ErrorIs(t, err, errs.ErrInvalidLearningRate)
	assert.Nil(t, report)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestSession_WriteError(t *testing.T) {
	s, err := NewSession(strings.NewReader("2\n"), failingWriter{})
	require.NoError(t, err)

	_, err = s.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken pipe")
}

func TestSession_Points(t *testing.T) {
	var out bytes.Buffer
	s, err := NewSession(strings.NewReader("1\n4\n8\n"), &out, WithFitOptions(regression.WithMaxSteps(0)))
	require.NoError(t, err)

	_, err = s.Run()
	require.NoError(t, err)
	assert.Equal(t, dataset.Points{{X: 4, Y: 8}}, s.Points())
}
