package tokenizer

import (
	"reflect"
	"testing"
)

func TestSplit(t *testing.T) {
	cases := []struct {
		identifier string
		want       []string
	}{
		{"UpperCamelCase", []string{"upper", "camel", "case"}},
		{"camelCase", []string{"camel", "case"}},
		{"snake_case_name", []string{"snake", "case", "name"}},
		{"SQLThing", []string{"sqlt", "hing"}},
		{"FRAPScase", []string{"fraps", "case"}},
		{"ABc", []string{"a", "bc"}},
		{"Man45var", []string{"man", "var"}},
		{"101dalms", []string{"dalms"}},
		{"101_dalms", []string{"dalms"}},
		{"101_DalmsBug", []string{"dalms", "bug"}},
		{"101_Dalms45Bug7", []string{"dalms", "bug"}},
		{"FooBar100500Bingo", []string{"foo", "bar", "bingo"}},
		{"CAPS_CONST", []string{"caps", "const"}},
		{"_something_SILLY_", []string{"something", "silly"}},
		{"wdSize", []string{"wd", "size"}},
		{"blink182", []string{"blink"}},
		{"a.b.c.d", []string{"a", "b", "c", "d"}},
		{"A.b.Cd.E", []string{"a", "b", "cd", "e"}},
		{"sourced.ml.algorithms.uast_ids_to_bag",
			[]string{"sourced", "ml", "algorithms", "uast", "ids", "to", "bag"}},
		{"WORSTnameYOUcanIMAGINE", []string{"worst", "name", "you", "can", "imagine"}},
		{"SmallIdsToFoOo", []string{"small", "ids", "to", "fo", "oo"}},
		{"ONE_M0re_.__badId.example", []string{"one", "m", "re", "bad", "id", "example"}},
		{"looong_sh_loooong_sh", []string{"looong", "sh", "loooong", "sh"}},
	}

	for _, tc := range cases {
		got := Split(tc.identifier)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Split(%q) = %v, want %v", tc.identifier, got, tc.want)
		}
	}
}

func TestSplitNoTokens(t *testing.T) {
	for _, identifier := range []string{"", "42", "100500", "_", "__42__", "...", "- -"} {
		if got := Split(identifier); len(got) != 0 {
			t.Errorf("Split(%q) = %v, want no tokens", identifier, got)
		}
	}
}

func TestSplitDropsSeparators(t *testing.T) {
	for _, identifier := range []string{"_leading", "trailing_", "__both__", ".dotted."} {
		tokens := Split(identifier)
		for _, tok := range tokens {
			for i := 0; i < len(tok); i++ {
				if !isLower(tok[i]) {
					t.Errorf("Split(%q) produced token %q with non-letter or upper-case byte", identifier, tok)
				}
			}
			if tok == "" {
				t.Errorf("Split(%q) produced an empty token", identifier)
			}
		}
	}
}

func TestSplitDeterministic(t *testing.T) {
	identifier := "WORSTnameYOUcanIMAGINE_100500_times"
	first := Split(identifier)
	for i := 0; i < 10; i++ {
		if got := Split(identifier); !reflect.DeepEqual(got, first) {
			t.Fatalf("Split(%q) changed between calls: %v vs %v", identifier, first, got)
		}
	}
}
