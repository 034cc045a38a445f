// Package policy evaluates configurable decision rules against assessment
// results using CEL (Common Expression Language) expressions.
//
// Collaborators that consume ThreatInferenceResult values (the anti-vault
// auto-unlock evaluator and the dual-key auto-approval module) express their
// thresholds as CEL over the assessment's score, level, trend, and category
// breakdown:
//
//	eval, err := policy.New(policy.DefaultAutoUnlockExpr)
//	if err != nil {
//		return err
//	}
//	allow, err := eval.Evaluate(result)
//
// Expressions are compiled and type-checked once at construction; evaluation
// is pure and safe for concurrent use.
package policy
