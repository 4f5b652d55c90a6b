/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

// Package metrics counts evaluations and their failures. The counters are
// kept in a private registry which can be flushed to a node-exporter
// textfile when the process exits.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/dburkart/timecalc/pkg/calc"
	"github.com/dburkart/timecalc/pkg/calc/parser"
	"github.com/dburkart/timecalc/pkg/common/parse"
)

type MetricsStore interface {
	Registry() *prometheus.Registry

	// Collection
	IncEvaluations(kind string)
	IncErrors(family, kind string)
	ObserveError(err error)
	ObserveEvaluationNS(t int64)

	WriteTextfile(filename string) error
}

type metricsStore struct {
	registry     *prometheus.Registry
	Evaluations  *prometheus.CounterVec
	Errors       *prometheus.CounterVec
	EvaluationNS prometheus.Histogram
}

var (
	KindLabel   = "kind"
	FamilyLabel = "family"
)

// Error families
const (
	FamilyLex   = "lex"
	FamilyParse = "parse"
	FamilyEval  = "eval"
	FamilyOther = "other"
)

func NewMetricsStore() MetricsStore {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
	)

	buckets := []float64{}
	for i := 1; i < 20; i++ {
		buckets = append(buckets, float64(2*i*int(time.Microsecond)))
	}

	factory := promauto.With(reg)
	return &metricsStore{
		registry: reg,
		Evaluations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "timecalc_evaluations_total",
			Help: "Successful evaluations by result kind",
		}, []string{KindLabel}),
		Errors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "timecalc_errors_total",
			Help: "Failed evaluations by error family and kind",
		}, []string{FamilyLabel, KindLabel}),
		EvaluationNS: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "timecalc_evaluation_ns",
			Help:    "Time taken to scan, parse and evaluate an expression",
			Buckets: buckets,
		}),
	}
}

func (ms *metricsStore) Registry() *prometheus.Registry {
	return ms.registry
}

func (ms *metricsStore) IncEvaluations(kind string) {
	ms.Evaluations.With(prometheus.Labels{KindLabel: kind}).Inc()
}

func (ms *metricsStore) IncErrors(family, kind string) {
	ms.Errors.With(prometheus.Labels{FamilyLabel: family, KindLabel: kind}).Inc()
}

// ObserveError counts err under the family and kind Classify gives it.
func (ms *metricsStore) ObserveError(err error) {
	ms.IncErrors(Classify(err))
}

func (ms *metricsStore) ObserveEvaluationNS(t int64) {
	ms.EvaluationNS.Observe(float64(t))
}

// WriteTextfile writes every metric in the registry to filename in the
// text exposition format.
func (ms *metricsStore) WriteTextfile(filename string) error {
	return prometheus.WriteToTextfile(filename, ms.registry)
}

// Classify names the family and kind of an evaluation error.
func Classify(err error) (family, kind string) {
	var evalErr *calc.EvalError
	if errors.As(err, &evalErr) {
		return FamilyEval, evalErr.Kind.String()
	}

	var parseErr *parser.Error
	if errors.As(err, &parseErr) {
		return FamilyParse, parseErr.Kind.String()
	}

	var lexErrs parse.LexErrors
	if errors.As(err, &lexErrs) && len(lexErrs) > 0 {
		return FamilyLex, lexErrs[0].Kind.String()
	}

	return FamilyOther, "Unknown"
}
