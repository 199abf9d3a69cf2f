package ast

import "unicode"

// Identifier casing is load-bearing in the Quadra grammar: several otherwise
// identical token sequences are disambiguated purely by whether a name is
// type-cased or value-cased. The parser branches on these predicates when
// telling apart a struct literal from any other expression, a module path
// from a bare type, and a `Type.method` definition from a free function.

// IsTypeName reports whether name is type-cased: a leading uppercase letter
// followed by alphanumerics or underscores.
func IsTypeName(name string) bool {
	runes := []rune(name)
	if len(runes) == 0 {
		return false
	}
	if !unicode.IsLetter(runes[0]) || !unicode.IsUpper(runes[0]) {
		return false
	}
	for _, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}

// IsValueName reports whether name is value-cased: a leading lowercase
// letter or underscore followed by alphanumerics or underscores. Functions
// and variables are value-cased.
func IsValueName(name string) bool {
	runes := []rune(name)
	if len(runes) == 0 {
		return false
	}
	first := runes[0]
	if first != '_' && !(unicode.IsLetter(first) && unicode.IsLower(first)) {
		return false
	}
	for _, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}
