// Package metrics provides copy metrics for the feature copier.
//
// The package follows the Null Object pattern: callers receive a Recorder and
// default to NoopRecorder, so the copier never needs nil checks. When metrics
// are wanted, inject a PrometheusRecorder and dump its registry with
// WriteTextfile (node-exporter textfile collector format):
//
//	reg := prometheus.NewRegistry()
//	rec := metrics.NewPrometheusRecorder(reg)
//	res, err := features.Copy(ctx, paths, features.WithRecorder(rec))
//	_ = metrics.WriteTextfile("/var/lib/node_exporter/docfeatures.prom", reg)
package metrics
