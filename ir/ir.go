// Package ir defines the reduced intermediate form the transformer lowers
// a CEL-AST into before emission. The IR is never serialized;
// it exists only between Transform and the emitter/interpreter.
package ir

// Node is any IR expression node. Unlike ast.Expression, IR nodes carry no
// source location — diagnostics are attached earlier, during parsing and
// type-level checks against the AST.
type Node interface {
	irNode()
}

// Literal wraps an already-evaluated constant value produced by the AST's
// literal nodes; the concrete Go value's type identifies which CEL literal
// it came from (int64, uint64, float64, string, []byte, bool, or nil).
type Literal struct {
	Value interface{}
}

func (*Literal) irNode() {}

// QualifiedIdent is the fusion of a Select(Select(Ident(a), b), c) chain
// into a single node the emitter lowers into one longest-prefix lookup
// over the bindings record. Candidates holds the
// container-prefixed alternatives to try, most specific first (just the
// bare path itself when no container applies); each candidate is in turn
// resolved against the binding map by its own longest-prefix cascade.
type QualifiedIdent struct {
	Candidates []string
}

func (*QualifiedIdent) irNode() {}

// Select is a single field/index access that did not fuse into a
// QualifiedIdent, e.g. selecting off a call result or a map/list literal.
type Select struct {
	Operand Node
	Field string
	TestOnly bool
	Optional bool
}

func (*Select) irNode() {}

// Index is `operand[key]`.
type Index struct {
	Operand Node
	Key Node
	Optional bool
}

func (*Index) irNode() {}

// Call is a function or operator application. Target is non-nil for a
// member-style call (`a.f(b)`); Function holds the callee name, which may
// be one of the fixed operator tokens.
type Call struct {
	Target Node
	Function string
	Args []Node
}

func (*Call) irNode() {}

// LogicalAnd and LogicalOr carry the two freshly-allocated temporary names
// the emitter declares and assigns during evaluation;
// the interpreter instead evaluates both operands directly and applies the
// same commutative-absorption cascade without needing named temporaries.
type LogicalAnd struct {
	Left, Right Node
	TempL, TempR string
}

func (*LogicalAnd) irNode() {}

type LogicalOr struct {
	Left, Right Node
	TempL, TempR string
}

func (*LogicalOr) irNode() {}

// Not is the unary `!` operator.
type Not struct {
	Operand Node
}

func (*Not) irNode() {}

// Negate is unary `-`.
type Negate struct {
	Operand Node
}

func (*Negate) irNode() {}

// Ternary is `c ? t: f` in its explicit error-propagation form: a
// non-bool condition yields the error sentinel without evaluating either
// branch.
type Ternary struct {
	Cond, True, False Node
}

func (*Ternary) irNode() {}

// CreateList is a list literal; OptionalIndices marks entries written with
// a `?` prefix that are omitted from the result when none.
type CreateList struct {
	Elements []Node
	OptionalIndices []bool
}

func (*CreateList) irNode() {}

// MapEntry is one key/value pair of a CreateMap.
type MapEntry struct {
	Key, Value Node
	Optional bool
}

// CreateMap is a map literal.
type CreateMap struct {
	Entries []MapEntry
}

func (*CreateMap) irNode() {}

// FieldEntry is one field initializer of a CreateStruct.
type FieldEntry struct {
	Field string
	Initializer Node
	Optional bool
}

// CreateStruct is a struct (message) literal.
type CreateStruct struct {
	MessageName string
	Entries []FieldEntry
}

func (*CreateStruct) irNode() {}

// Comprehension carries exactly the lambda parameter lists the emitter
// (and interpreter) needs to drive the fold/loop protocol every
// macro expansion (map, filter, all, exists, exists_one) lowers to.
type Comprehension struct {
	IterVar   string
	IterVar2  string // empty for the single-variable form
	IterRange Node
	AccuVar   string
	AccuInit  Node

	// LoopCondition and LoopStep are lambdas over (IterVar, IterVar2?,
	// AccuVar); NotStrictlyFalse marks a LoopCondition that must probe
	// with the @not_strictly_false semantics `all`/`exists` rely on
	// (an error counts as not false and the loop continues, rather than
	// the error propagating) instead of a plain boolean evaluation.
	LoopCondition    Node
	NotStrictlyFalse bool
	LoopStep         Node
	Result           Node
}

func (*Comprehension) irNode() {}

// ErrorNode marks a position where parsing failed and recovered; it
// evaluates to the error sentinel unconditionally.
type ErrorNode struct{}

func (*ErrorNode) irNode() {}
