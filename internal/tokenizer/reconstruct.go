package tokenizer

import (
	"errors"
	"fmt"
	"strings"
)

// ErrStructuralMismatch is returned by Reconstruct when the number of
// replacement tokens does not match the number of tokens Split derives from
// the identifier. It signals a caller contract violation, not a condition to
// recover from.
var ErrStructuralMismatch = errors.New("replacement token count does not match identifier structure")

// Reconstruct rebuilds identifier with each recognized sub-token span replaced
// by the corresponding entry of tokens, consumed in Split order. Separators,
// digit runs and every other non-token byte are preserved verbatim, and the
// casing pattern of each original span is reapplied to its replacement:
// a majority-uppercase span upper-cases the replacement ("COPS" + "caps" ->
// "CAPS"), a span starting with a capital capitalizes it ("Comel" + "camel" ->
// "Camel"), anything else keeps the replacement as supplied.
func Reconstruct(identifier string, tokens []string) (string, error) {
	parsed := Split(identifier)
	if len(parsed) != len(tokens) {
		return "", fmt.Errorf("reconstruct %q: %d replacement tokens for %d parsed tokens: %w",
			identifier, len(tokens), len(parsed), ErrStructuralMismatch)
	}

	lowered := lowerASCII(identifier)
	var out strings.Builder
	out.Grow(len(identifier))

	pos := 0
	for i, span := range parsed {
		start := strings.Index(lowered[pos:], span) + pos
		out.WriteString(identifier[pos:start])
		out.WriteString(applyCase(identifier[start:start+len(span)], tokens[i]))
		pos = start + len(span)
	}
	out.WriteString(identifier[pos:])
	return out.String(), nil
}

// applyCase transfers the casing pattern of the original span onto word.
func applyCase(span, word string) string {
	var upper, lower int
	for i := 0; i < len(span); i++ {
		if isUpper(span[i]) {
			upper++
		} else {
			lower++
		}
	}
	switch {
	case upper > lower:
		return strings.ToUpper(word)
	case isUpper(span[0]):
		return capitalize(word)
	default:
		return word
	}
}

func capitalize(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}
