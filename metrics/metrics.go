package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HttpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	HttpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "catalog_http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"path"})

	SearchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_searches_total",
		Help: "Total number of catalog searches by store",
	}, []string{"store"})

	EmptySearchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_empty_searches_total",
		Help: "Catalog searches that matched no book",
	}, []string{"store"})

	KinematicsErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_kinematics_errors_total",
		Help: "Rejected kinematics calculations by error kind",
	}, []string{"operation", "kind"})
)
