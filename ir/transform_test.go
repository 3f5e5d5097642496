package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/celexpr/celc/ast"
	"github.com/celexpr/celc/common"
	"github.com/celexpr/celc/common/containers"
)

func loc() common.Location { return common.NewLocation(1, 0) }

func TestTransformExtensionNamespaceCall(t *testing.T) {
	e := ast.NewCallMethod(1, loc(), "of", ast.NewIdent(2, loc(), "optional"), ast.NewIntLit(3, loc(), 1))
	node, err := Transform(e, containers.New(""))
	require.NoError(t, err)

	call, ok := node.(*Call)
	require.True(t, ok)
	assert.Nil(t, call.Target)
	assert.Equal(t, "optional.of", call.Function)
	require.Len(t, call.Args, 1)
}

func TestTransformOrdinaryMethodCallKeepsTarget(t *testing.T) {
	e := ast.NewCallMethod(1, loc(), "size", ast.NewIdent(2, loc(), "myList"))
	node, err := Transform(e, containers.New(""))
	require.NoError(t, err)

	call, ok := node.(*Call)
	require.True(t, ok)
	require.NotNil(t, call.Target)
	qi, ok := call.Target.(*QualifiedIdent)
	require.True(t, ok)
	assert.Equal(t, []string{"myList"}, qi.Candidates)
}

func TestTransformQualifiedIdentAppliesContainer(t *testing.T) {
	node, err := Transform(ast.NewIdent(1, loc(), "foo"), containers.New("a.b"))
	require.NoError(t, err)
	qi, ok := node.(*QualifiedIdent)
	require.True(t, ok)
	assert.Equal(t, []string{"a.b.foo", "a.foo", "foo"}, qi.Candidates)
}

func TestTransformFusesSelectChain(t *testing.T) {
	e := ast.NewSelect(1, loc(), ast.NewSelect(2, loc(), ast.NewIdent(3, loc(), "a"), "b", false), "c", false)
	node, err := Transform(e, containers.New(""))
	require.NoError(t, err)
	qi, ok := node.(*QualifiedIdent)
	require.True(t, ok)
	assert.Equal(t, []string{"a.b.c"}, qi.Candidates)
}
