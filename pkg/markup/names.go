package markup

import "strings"

// reservedNames are attribute names callers may spell with a trailing
// underscore because they collide with a keyword. The table covers Go and
// Python keywords plus "class".
var reservedNames = map[string]bool{
	// Go
	"break": true, "case": true, "chan": true, "const": true, "continue": true,
	"default": true, "defer": true, "else": true, "fallthrough": true, "for": true,
	"func": true, "go": true, "goto": true, "if": true, "import": true,
	"interface": true, "map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true, "var": true,

	// Python
	"and": true, "as": true, "assert": true, "async": true, "await": true,
	"class": true, "def": true, "del": true, "elif": true, "except": true,
	"finally": true, "from": true, "global": true, "in": true, "is": true,
	"lambda": true, "nonlocal": true, "not": true, "or": true, "pass": true,
	"raise": true, "try": true, "while": true, "with": true, "yield": true,
}

// AttrName returns the attribute name written to the output for key:
// "name_" becomes "name" when name is reserved, every other key is
// returned unchanged.
func AttrName(key string) string {
	base, ok := strings.CutSuffix(key, "_")
	if ok && reservedNames[base] {
		return base
	}
	return key
}
