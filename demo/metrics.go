package main

import "github.com/prometheus/client_golang/prometheus"

var demoRequests *prometheus.CounterVec

func init() {
	demoRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "distrib_demo_requests",
		Help: "How many requests served by demo handlers.",
	}, []string{"route", "status"})

	prometheus.MustRegister(demoRequests)
}

func requestMetric(route string, status int) {
	demoRequests.WithLabelValues(route, statusClass(status)).Inc()
}

func statusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	default:
		return "2xx"
	}
}
