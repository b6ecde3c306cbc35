// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package host

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	calls      *prometheus.CounterVec
	dispatched *prometheus.CounterVec
}

func newMetrics(registerer prometheus.Registerer) *metrics {
	factory := promauto.With(registerer)
	return &metrics{
		calls: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "xcm",
			Name:      "extension_calls_total",
			Help:      "Number of chain extension calls served, by function",
		}, []string{"function"}),
		dispatched: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "xcm",
			Name:      "dispatched_programs_total",
			Help:      "Number of programs executed or sent, by kind",
		}, []string{"kind"}),
	}
}
