// Package threatindex provides the granular threat inference and scoring
// engine for Khandoba secure document vaults.
//
// The engine converts a batch of logical inferences about a vault's access
// and behavior history into a single explainable composite threat score
// (0-100), a ten-band threat level, ranked per-inference contributions,
// prioritized remediation recommendations, and a bounded score history used
// for trend (delta and velocity) computation.
//
// # Architecture
//
// The engine is organized around a small set of pure components:
//
//   - inference: the LogicalInference input type, seven reasoning modes and
//     seven threat categories, ingestion validation
//   - score: aggregation, contribution ranking, composite scoring, level
//     classification, and recommendation generation
//   - history: bounded per-vault snapshot timelines (in-memory or Redis)
//   - policy: CEL-based decision evaluation over assessment results, used
//     by the anti-vault auto-unlock and dual-key collaborators
//   - calibration: etcd-backed distribution of scoring weight sets
//
// # Getting Started
//
// Construct an Engine and assess a vault:
//
//	engine, err := threatindex.NewEngine()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := engine.Assess(ctx, vaultID, inferences)
//	if err != nil {
//		return err
//	}
//	fmt.Printf("score %.2f level %s\n", result.Scores.CompositeScore, result.Level)
//
// Every point of the composite score is traceable to a concrete inference
// through result.Contributions. Assessments for the same vault are
// serialized internally; assessments for different vaults run fully
// concurrently.
package threatindex
