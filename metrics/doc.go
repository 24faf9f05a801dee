// SPDX-License-Identifier: MIT

// Package metrics exports fusion engine events as Prometheus metrics.
//
// A Collector implements fusion.Observer. Register it once on a
// prometheus.Registerer and hand it to every engine through
// fusion.WithObserver:
//
//	reg := prometheus.NewRegistry()
//	c, err := metrics.New(reg)
//	engine := fusion.New[powerset.Code](fusion.WithObserver(c))
//
// Exported series (namespace "evidence", subsystem "fusion"):
//
//	fusions_total          successful Fuse calls
//	combinations_total     tensor-product combinations visited
//	sources                histogram of sources per fusion
//	conflict               histogram of measured conflict in [0,1]
//	prunes_total           prune passes that shrank a result
//	pruned_elements_total  focal elements merged away by pruning
//
// WriteText renders everything a Gatherer holds in the text exposition
// format.
package metrics
