// Package inference provides the types for logical inferences produced by the
// formal-logic reasoning engine that monitors vault access and behavior.
//
// Each LogicalInference is one unit of reasoning evidence: a premise, an
// observation, and a conclusion reached through one of seven reasoning modes
// (deductive, inductive, abductive, statistical, analogical, temporal, modal),
// tagged with one of seven threat categories and a confidence in [0.0, 1.0].
//
// Inferences are immutable inputs to the scoring engine. The package validates
// them at ingestion and provides a keyword-based category fallback for
// producers that do not tag a category explicitly.
package inference
