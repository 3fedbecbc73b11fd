package extract

import (
	"bufio"
	"os"
	"regexp"
	"strings"

	"typoscout/internal/config"
	"typoscout/internal/types"
)

var identifierRegex = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*`)

// File pulls candidate identifiers out of a source file. Each distinct
// identifier is reported once, at its first occurrence. The scan is
// lexical, not syntactic: it strips line comments and quoted strings,
// then takes every identifier-shaped word that is not a reserved word.
func File(filePath string, cfg *config.Config) ([]types.IdentifierOccurrence, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var occurrences []types.IdentifierOccurrence
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := stripNonCode(scanner.Text())

		for _, match := range identifierRegex.FindAllStringIndex(line, -1) {
			name := line[match[0]:match[1]]

			if len(name) < 2 || seen[name] {
				continue
			}
			if isReservedWord(name) || cfg.ShouldIgnoreIdentifier(name) {
				continue
			}

			seen[name] = true
			occurrences = append(occurrences, types.IdentifierOccurrence{
				Name:   name,
				Line:   lineNum,
				Column: match[0] + 1,
			})
		}
	}

	return occurrences, scanner.Err()
}

// stripNonCode blanks out quoted strings and the tail of line comments
// so their contents are not mistaken for identifiers. Blanks, not cuts:
// column positions in the remaining code must stay put.
func stripNonCode(line string) string {
	runes := []byte(line)
	inString := byte(0)

	for i := 0; i < len(runes); i++ {
		c := runes[i]

		if inString != 0 {
			if c == '\\' && i+1 < len(runes) {
				runes[i], runes[i+1] = ' ', ' '
				i++
				continue
			}
			if c == inString {
				inString = 0
			}
			runes[i] = ' '
			continue
		}

		switch c {
		case '"', '\'', '`':
			inString = c
			runes[i] = ' '
		case '/':
			if i+1 < len(runes) && (runes[i+1] == '/' || runes[i+1] == '*') {
				for j := i; j < len(runes); j++ {
					runes[j] = ' '
				}
				return string(runes)
			}
		case '#':
			for j := i; j < len(runes); j++ {
				runes[j] = ' '
			}
			return string(runes)
		}
	}

	return string(runes)
}

func isReservedWord(word string) bool {
	return reservedWords[strings.ToLower(word)]
}

// Keywords across the languages we scan; flagging these would be noise.
var reservedWords = map[string]bool{
	"abstract": true, "arguments": true, "async": true, "await": true,
	"bool": true, "boolean": true, "break": true, "byte": true,
	"case": true, "catch": true, "chan": true, "char": true, "class": true,
	"const": true, "continue": true, "debugger": true, "def": true,
	"default": true, "defer": true, "delete": true, "do": true,
	"double": true, "elif": true, "else": true, "enum": true, "eval": true,
	"except": true, "export": true, "extends": true, "fallthrough": true,
	"false": true, "final": true, "finally": true, "float": true,
	"float32": true, "float64": true, "fn": true, "for": true, "from": true,
	"func": true, "function": true, "go": true, "goto": true, "if": true,
	"impl": true, "implements": true, "import": true, "in": true,
	"instanceof": true, "int": true, "int32": true, "int64": true,
	"interface": true, "lambda": true, "let": true, "long": true,
	"map": true, "match": true, "mut": true, "native": true, "new": true,
	"nil": true, "none": true, "null": true, "package": true, "pass": true,
	"private": true, "protected": true, "pub": true, "public": true,
	"raise": true, "range": true, "return": true, "select": true,
	"self": true, "short": true, "static": true, "string": true,
	"struct": true, "super": true, "switch": true, "synchronized": true,
	"this": true, "throw": true, "throws": true, "transient": true,
	"true": true, "try": true, "type": true, "typeof": true, "uint": true,
	"uint32": true, "uint64": true, "use": true, "var": true, "void": true,
	"volatile": true, "while": true, "with": true, "yield": true,
}
