package compiler

import (
	"github.com/celexpr/celc/common/types"
	"github.com/celexpr/celc/interpreter"
)

// CompileResult is the outcome of a successful Compile call: a bound,
// repeatedly-evaluable program plus a diagnostic rendering of the IR it
// evaluates over.
type CompileResult struct {
	// Source is the emitted Go source rendering of the compiled
	// expression, produced purely for inspection; Evaluate never runs it.
	Source string

	plan    interpreter.Interpretable
	cache   *bindingCache
	metrics *Metrics
}

// Evaluate runs the compiled program against bindings, returning a
// host-native value (see interpreter.ValToNative's boundary shapes) or a
// *CelError if evaluation produced the error sentinel.
func (r *CompileResult) Evaluate(bindings map[string]interface{}) (interface{}, error) {
	act, err := r.cache.derive(bindings)
	if err != nil {
		return nil, newCelError("invalid bindings: %v", err)
	}
	result := r.plan.Eval(act)
	if types.IsError(result) {
		r.metrics.observeEvaluateError()
		return nil, newCelError("%v", result)
	}
	native, err := interpreter.ValToNative(result)
	if err != nil {
		r.metrics.observeEvaluateError()
		return nil, newCelError("%v", err)
	}
	return native, nil
}
