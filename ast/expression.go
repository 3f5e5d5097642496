// Package ast declares the CEL abstract syntax tree: the tagged node set the
// parser builds and the transformer consumes.
package ast

import "github.com/celexpr/celc/common"

// Expression is the common interface implemented by every AST node tag.
type Expression interface {
	// ID is the node's id, unique within one parse tree. IDs are assigned
	// depth-first by the parser and are stable across a single parse.
	ID() int64

	// Location is the source-text position the node was parsed from.
	Location() common.Location

	// String renders a debug form of the expression tree.
	String() string

	writeDebugString(w *debugWriter)
}

// BaseExpression carries the fields common to every node tag.
type BaseExpression struct {
	id int64
	loc common.Location
}

func (e *BaseExpression) ID() int64 { return e.id }
func (e *BaseExpression) Location() common.Location { return e.loc }
