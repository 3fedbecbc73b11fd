package tokenizer

// Split breaks a source identifier into its ordered, lower-cased sub-tokens.
//
// Splitting rules, in precedence order:
//  1. Anything that is not an ASCII letter (underscores, dots, digits,
//     whitespace, unicode punctuation) is a separator and never appears in a
//     token. Digit runs produce no token of their own but still split the
//     letter runs around them: "Man45var" -> ["man", "var"].
//  2. Inside a letter run, a lower-to-upper transition starts a new token:
//     "camelCase" -> ["camel", "case"].
//  3. An uppercase run followed by a lowercase letter splits depending on the
//     run length: a run of exactly two splits after its first letter
//     ("ABc" -> ["a", "bc"]), a longer run splits right before the lowercase
//     letter so the run keeps its last capital ("SQLThing" -> ["sqlt", "hing"],
//     "FRAPScase" -> ["fraps", "case"]).
//
// An identifier with no letters at all ("100500", "__42__") splits into zero
// tokens; callers must treat a nil result as a normal outcome.
func Split(identifier string) []string {
	var tokens []string
	forEachSegment(identifier, func(seg string) {
		tokens = append(tokens, splitSegment(seg)...)
	})
	return tokens
}

// forEachSegment calls fn for every maximal ASCII-letter run in s.
func forEachSegment(s string, fn func(string)) {
	start := -1
	for i := 0; i < len(s); i++ {
		if isLetter(s[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			fn(s[start:i])
			start = -1
		}
	}
	if start >= 0 {
		fn(s[start:])
	}
}

// splitSegment applies the case-transition rules to a pure letter run.
func splitSegment(seg string) []string {
	var words []string
	pos := 0
	for i := 1; i < len(seg); i++ {
		prev, cur := seg[i-1], seg[i]
		switch {
		case isLower(prev) && isUpper(cur):
			words = append(words, lowerASCII(seg[pos:i]))
			pos = i
		case isUpper(prev) && isLower(cur):
			run := i - 1 - pos // capitals before the last one of the run
			if run == 1 {
				words = append(words, lowerASCII(seg[pos:i-1]))
				pos = i - 1
			} else if run > 1 {
				words = append(words, lowerASCII(seg[pos:i]))
				pos = i
			}
		}
	}
	if pos < len(seg) {
		words = append(words, lowerASCII(seg[pos:]))
	}
	return words
}

func isLetter(b byte) bool { return isLower(b) || isUpper(b) }
func isLower(b byte) bool  { return b >= 'a' && b <= 'z' }
func isUpper(b byte) bool  { return b >= 'A' && b <= 'Z' }

// lowerASCII lower-cases A-Z only, leaving every other byte (and therefore
// every byte offset) untouched.
func lowerASCII(s string) string {
	buf := []byte(s)
	for i, b := range buf {
		if isUpper(b) {
			buf[i] = b + 'a' - 'A'
		}
	}
	return string(buf)
}
