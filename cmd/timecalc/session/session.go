/*
 * Copyright (c) 2024, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

// Package session evaluates expressions on behalf of the command line
// front ends: it renders results and errors, logs and records metrics.
package session

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/dburkart/timecalc/pkg/calc"
	"github.com/dburkart/timecalc/pkg/calc/ast"
	"github.com/dburkart/timecalc/pkg/calc/parser"
	"github.com/dburkart/timecalc/pkg/calc/scanner"
	"github.com/dburkart/timecalc/pkg/metrics"
	"github.com/dburkart/timecalc/pkg/repl"
)

// Failure is returned when an expression could not be evaluated. The
// error has already been reported on the session's error stream.
type Failure struct {
	Expression string
	Err        error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("evaluating %q: %v", f.Expression, f.Err)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

type Config struct {
	Output      io.Writer
	Errors      io.Writer
	Format      string
	MetricsFile string
	Logger      zerolog.Logger
}

type Session struct {
	out         io.Writer
	errs        io.Writer
	writer      repl.OutputWriter
	metricsFile string
	metrics     metrics.MetricsStore
	log         zerolog.Logger
}

func New(c Config) (*Session, error) {
	s := &Session{
		out:         c.Output,
		errs:        c.Errors,
		metricsFile: c.MetricsFile,
		metrics:     metrics.NewMetricsStore(),
		log:         c.Logger,
	}

	if err := s.SetFormat(c.Format); err != nil {
		return nil, err
	}

	return s, nil
}

// SetFormat switches the output format for subsequent results.
func (s *Session) SetFormat(format string) error {
	if !repl.IsFormat(format) {
		return errors.Errorf("unsupported output format %q (want one of %s)", format, strings.Join(repl.Formats, ", "))
	}
	s.writer = repl.NewOutputWriter(s.out, format)
	s.log.Debug().Str("format", format).Msg("output format set")
	return nil
}

func (s *Session) Metrics() metrics.MetricsStore {
	return s.metrics
}

// Evaluate evaluates expr and writes its result. An evaluation failure is
// reported on the error stream and returned as a *Failure; any other error
// is an I/O problem.
func (s *Session) Evaluate(expr string) error {
	start := time.Now()

	p := parser.Parser{Scanner: scanner.Scanner{Input: expr}}
	tree, err := p.Parse()
	if err == nil {
		s.trace(p, tree)
		var result repl.Result
		result.Expression = expr
		result.Value, err = calc.Eval(tree)
		if err == nil {
			s.metrics.ObserveEvaluationNS(time.Since(start).Nanoseconds())
			s.metrics.IncEvaluations(result.Value.Kind().String())
			s.log.Debug().
				Str("expression", expr).
				Str("type", result.Value.Kind().String()).
				Str("result", result.Value.String()).
				Msg("evaluated")

			return errors.Wrap(s.writer.Write(result), "writing result")
		}
	}

	s.metrics.ObserveEvaluationNS(time.Since(start).Nanoseconds())
	s.metrics.ObserveError(err)

	family, kind := metrics.Classify(err)
	s.log.Debug().Err(err).Str("expression", expr).Str("family", family).Str("kind", kind).Msg("evaluation failed")

	if _, werr := io.WriteString(s.errs, repl.FormatError(expr, err)); werr != nil {
		return errors.Wrap(werr, "writing error")
	}
	return &Failure{Expression: expr, Err: err}
}

func (s *Session) trace(p parser.Parser, tree ast.ASTNode) {
	if s.log.GetLevel() > zerolog.TraceLevel || zerolog.GlobalLevel() > zerolog.TraceLevel {
		return
	}

	for _, t := range p.Tokens() {
		s.log.Trace().Str("type", t.Type.ToString()).Str("lexeme", t.Lexeme).Int("start", t.Location.Start).Msg("token")
	}
	s.log.Trace().Msgf("parsed:\n%s", ast.Dump(tree))
}

// Close flushes metrics to the configured textfile, if any.
func (s *Session) Close() error {
	if s.metricsFile == "" {
		return nil
	}

	s.log.Debug().Str("file", s.metricsFile).Msg("writing metrics")
	return errors.Wrap(s.metrics.WriteTextfile(s.metricsFile), "writing metrics")
}

// FromViper builds a session from the loaded configuration and the logger
// stored under "logger".
func FromViper(out, errs io.Writer) (*Session, error) {
	log, ok := viper.Get("logger").(zerolog.Logger)
	if !ok {
		log = zerolog.Nop()
	}

	return New(Config{
		Output:      out,
		Errors:      errs,
		Format:      viper.GetString("timecalc.output"),
		MetricsFile: viper.GetString("timecalc.metrics-file"),
		Logger:      log,
	})
}
