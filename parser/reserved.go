package parser

// reservedWords may not appear as identifiers: they are kept
// available to a future grammar extension (package/namespace declarations,
// function literals) without breaking existing programs.
var reservedWords = map[string]bool{
	"as": true, "break": true, "const": true, "continue": true,
	"else": true, "for": true, "function": true, "if": true,
	"import": true, "in": true, "let": true, "loop": true,
	"package": true, "namespace": true, "null": true, "return": true,
	"var": true, "void": true, "while": true,
	"true": true, "false": true,
}

func isReserved(name string) bool {
	return reservedWords[name]
}
