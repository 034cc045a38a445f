package policy

import (
	"fmt"
	"reflect"

	"github.com/google/cel-go/cel"

	"github.com/khandoba/threatindex"
)

// Default decision expressions. Deployments tune these per vault tier.
const (
	// DefaultAutoUnlockExpr permits anti-vault auto-unlock only while the
	// threat posture is calm and not actionable.
	DefaultAutoUnlockExpr = "composite_score < 40.0 && !requires_action"

	// DefaultDualKeyApproveExpr auto-approves a dual-key request only at
	// a near-minimal, non-rising score.
	DefaultDualKeyApproveExpr = "composite_score < 20.0 && (!has_delta || delta <= 0.0)"
)

// Evaluator is a compiled decision rule over assessment results.
// Safe for concurrent use.
type Evaluator struct {
	expr    string
	program cel.Program
}

// New compiles and type-checks a CEL expression. The expression must
// evaluate to a boolean and may reference:
//
//	composite_score            double, 0 to 100
//	level                      string, e.g. "medium_high"
//	level_rank                 int, 1 to 10
//	requires_action            bool
//	requires_immediate_action  bool
//	has_delta                  bool, false on a vault's first assessment
//	delta                      double, 0.0 when has_delta is false
//	velocity                   double, score points per hour
//	access_pattern_score       double
//	geographic_score           double
//	document_content_score     double
//	behavioral_score           double
//	external_threat_score      double
//	compliance_score           double
//	data_exfiltration_score    double
func New(expr string) (*Evaluator, error) {
	env, err := cel.NewEnv(
		cel.Variable("composite_score", cel.DoubleType),
		cel.Variable("level", cel.StringType),
		cel.Variable("level_rank", cel.IntType),
		cel.Variable("requires_action", cel.BoolType),
		cel.Variable("requires_immediate_action", cel.BoolType),
		cel.Variable("has_delta", cel.BoolType),
		cel.Variable("delta", cel.DoubleType),
		cel.Variable("velocity", cel.DoubleType),
		cel.Variable("access_pattern_score", cel.DoubleType),
		cel.Variable("geographic_score", cel.DoubleType),
		cel.Variable("document_content_score", cel.DoubleType),
		cel.Variable("behavioral_score", cel.DoubleType),
		cel.Variable("external_threat_score", cel.DoubleType),
		cel.Variable("compliance_score", cel.DoubleType),
		cel.Variable("data_exfiltration_score", cel.DoubleType),
	)
	if err != nil {
		return nil, fmt.Errorf("policy: failed to create CEL environment: %w", err)
	}

	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("policy: failed to compile expression %q: %w", expr, issues.Err())
	}
	if !reflect.DeepEqual(ast.OutputType(), cel.BoolType) {
		return nil, fmt.Errorf("policy: expression %q must evaluate to bool, got %s", expr, ast.OutputType())
	}

	program, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("policy: failed to build program for %q: %w", expr, err)
	}

	return &Evaluator{expr: expr, program: program}, nil
}

// Expression returns the source expression this evaluator was built from.
func (e *Evaluator) Expression() string {
	return e.expr
}

// Evaluate applies the rule to one assessment result.
func (e *Evaluator) Evaluate(result *threatindex.Result) (bool, error) {
	if result == nil {
		return false, fmt.Errorf("policy: result is nil")
	}

	var delta, velocity float64
	hasDelta := result.Scores.Delta != nil
	if hasDelta {
		delta = *result.Scores.Delta
	}
	if result.Scores.Velocity != nil {
		velocity = *result.Scores.Velocity
	}

	cats := result.Scores.CategoryScores
	out, _, err := e.program.Eval(map[string]any{
		"composite_score":           result.Scores.CompositeScore,
		"level":                     result.Level.String(),
		"level_rank":                result.Level.Rank(),
		"requires_action":           result.Level.RequiresAction(),
		"requires_immediate_action": result.Level.RequiresImmediateAction(),
		"has_delta":                 hasDelta,
		"delta":                     delta,
		"velocity":                  velocity,
		"access_pattern_score":      cats.AccessPattern,
		"geographic_score":          cats.Geographic,
		"document_content_score":    cats.DocumentContent,
		"behavioral_score":          cats.Behavioral,
		"external_threat_score":     cats.ExternalThreat,
		"compliance_score":          cats.Compliance,
		"data_exfiltration_score":   cats.DataExfiltration,
	})
	if err != nil {
		return false, fmt.Errorf("policy: evaluation failed for %q: %w", e.expr, err)
	}

	allow, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("policy: expression %q produced non-boolean %v", e.expr, out.Value())
	}
	return allow, nil
}
