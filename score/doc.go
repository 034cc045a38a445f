// Package score implements the granular threat scoring pipeline: it reduces a
// batch of logical inferences to per-reasoning-mode and per-threat-category
// aggregates, ranks each inference's individual contribution, combines the
// fourteen aggregate fields into one composite score on a 0-100 scale,
// classifies the composite into a ten-band threat level, and derives
// prioritized remediation recommendations.
//
// All functions in this package are pure and order-independent over their
// input slice: reordering the inferences never changes aggregate scores or
// the composite, only tie-break order among equal-score contributions.
//
// The numeric constants driving the pipeline (mode and category weights,
// blend shares, thresholds) live in Weights. DefaultWeights returns the
// calibrated production set; alternative sets can be loaded from YAML so
// every platform scores with identical constants.
package score
