// Package console implements the interactive point-entry session of the
// linefit command: a numbered menu for entering coordinates, followed by a
// gradient-descent fit over whatever was entered.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/arloliu/linefit/dataset"
	"github.com/arloliu/linefit/internal/logger"
	"github.com/arloliu/linefit/internal/options"
	"github.com/arloliu/linefit/regression"
)

const (
	welcome       = "\nWelcome to the Linear Regression Program\n"
	menu          = "\n1. Enter coordinate\n2. Finish\n>>> "
	promptX       = "X -> "
	promptY       = "Y -> "
	invalidOption = "Please enter a valid option.\n\n"
	invalidNumber = "Invalid input. Only numbers are allowed.\n\n"
	noCoordinates = "No coordinates were added.\n"

	// displayDigits is the number of decimals final parameters are shown with.
	displayDigits = 6
)

// errInputClosed ends the menu loop when the input reaches EOF.
var errInputClosed = errors.New("input closed")

// Report is the outcome of a session that fitted at least one point.
type Report struct {
	Points      dataset.Points
	Initial     regression.Parameters
	Final       regression.Parameters
	InitialLoss float64
	FinalLoss   float64
	Steps       int
}

// Session collects points from an input stream and fits a line to them.
// A Session is single-use and not safe for concurrent use.
type Session struct {
	in        *bufio.Scanner
	out       io.Writer
	collector *dataset.Collector
	initial   regression.Parameters
	fitOpts   []regression.FitOption
	log       *slog.Logger
}

// SessionOption configures a Session.
type SessionOption = options.Option[*Session]

// WithInitial sets the parameters the fit starts from.
func WithInitial(p regression.Parameters) SessionOption {
	return options.NoError(func(s *Session) {
		s.initial = p
	})
}

// WithSeed pre-loads points as if they had been entered before the menu.
func WithSeed(points dataset.Points) SessionOption {
	return options.NoError(func(s *Session) {
		s.collector.SetPoints(points)
	})
}

// WithFitOptions passes opts through to regression.Fit.
func WithFitOptions(opts ...regression.FitOption) SessionOption {
	return options.NoError(func(s *Session) {
		s.fitOpts = append(s.fitOpts, opts...)
	})
}

// WithLogger sets the logger used for diagnostics. Nothing is logged to the
// session output.
func WithLogger(log *slog.Logger) SessionOption {
	return options.NoError(func(s *Session) {
		if log != nil {
			s.log = log
		}
	})
}

// NewSession creates a session reading from in and writing to out.
func NewSession(in io.Reader, out io.Writer, opts ...SessionOption) (*Session, error) {
	s := &Session{
		in:        bufio.NewScanner(in),
		out:       out,
		collector: dataset.NewCollector(),
		initial:   regression.DefaultParameters(),
		log:       logger.Discard(),
	}
	if err := options.Apply(s, opts...); err != nil {
		return nil, err
	}

	return s, nil
}

// Run shows the menu until the user picks Finish or the input ends, then
// fits a line to the collected points and prints the result.
//
// It returns a nil Report when no points were collected. Invalid menu
// choices and coordinates are reported on the output and never end the
// session.
func (s *Session) Run() (*Report, error) {
	if err := s.print(welcome); err != nil {
		return nil, err
	}

	if err := s.collect(); err != nil {
		return nil, err
	}

	if s.collector.Len() == 0 {
		return nil, s.print(noCoordinates)
	}

	return s.regress()
}

// Points returns the points collected so far.
func (s *Session) Points() dataset.Points {
	return s.collector.Points()
}

func (s *Session) collect() error {
	for {
		if err := s.print(menu); err != nil {
			return err
		}

		choice, err := s.readLine()
		if errors.Is(err, errInputClosed) {
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = s.enterCoordinate()
			if errors.Is(err, errInputClosed) {
				return nil
			}
			if err != nil {
				return err
			}
		case "2":
			return nil
		default:
			if err := s.print(invalidOption); err != nil {
				return err
			}
		}
	}
}

func (s *Session) enterCoordinate() error {
	if err := s.print(promptX); err != nil {
		return err
	}
	xText, err := s.readLine()
	if err != nil {
		return err
	}
	x, err := dataset.ParseCoordinate(xText)
	if err != nil {
		s.log.Debug("rejected coordinate", "axis", "x", "error", err)
		return s.print(invalidNumber)
	}

	if err := s.print(promptY); err != nil {
		return err
	}
	yText, err := s.readLine()
	if err != nil {
		return err
	}
	y, err := dataset.ParseCoordinate(yText)
	if err != nil {
		s.log.Debug("rejected coordinate", "axis", "y", "error", err)
		return s.print(invalidNumber)
	}

	s.collector.Set(x, y)
	s.log.Debug("coordinate added", "x", x, "y", y, "points", s.collector.Len())

	return s.print("\n\n")
}

func (s *Session) regress() (*Report, error) {
	points := s.collector.Points()
	params := s.initial

	report := &Report{
		Points:      points,
		Initial:     params,
		InitialLoss: regression.Loss(points, params),
	}

	if err := s.printf("\nInitial intercept: %s\nInitial slope: %s\nInitial error: %s\n\n",
		FormatNumber(params.Intercept), FormatNumber(params.Slope), FormatNumber(report.InitialLoss)); err != nil {
		return nil, err
	}

	res, err := regression.Fit(points, &params, s.fitOpts...)
	if err != nil {
		return nil, fmt.Errorf("fit: %w", err)
	}
	if !params.IsFinite() {
		s.log.Warn("fit diverged, try a smaller learning rate", "intercept", params.Intercept, "slope", params.Slope)
	}

	report.Final = params
	report.FinalLoss = regression.Loss(points, params)
	report.Steps = res.Steps

	shown := params.Rounded(displayDigits)
	if err := s.printf("The number of steps was %d\n\nFinal intercept: %s\nFinal slope: %s\nFinal error: %s\n\n",
		res.Steps, FormatNumber(shown.Intercept), FormatNumber(shown.Slope), FormatNumber(report.FinalLoss)); err != nil {
		return nil, err
	}

	return report, nil
}

func (s *Session) readLine() (string, error) {
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}

		return "", errInputClosed
	}

	return strings.TrimSpace(s.in.Text()), nil
}

func (s *Session) print(text string) error {
	_, err := io.WriteString(s.out, text)
	return err
}

func (s *Session) printf(format string, args ...any) error {
	_, err := fmt.Fprintf(s.out, format, args...)
	return err
}
