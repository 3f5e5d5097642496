package interpreter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/celexpr/celc/common/types"
	"github.com/celexpr/celc/ir"
)

func TestPlannerPlanEvaluatesRoot(t *testing.T) {
	p := NewPlanner(NewDefaultDispatcher())
	plan := p.Plan(&ir.Literal{Value: int64(5)})
	result := plan.Eval(newActivation(t, nil))
	assert.Equal(t, types.Int(5), result)
}
