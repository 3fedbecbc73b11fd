package types

import "typoscout/internal/suggest"

// BlameInfo is the author attribution of one line, from git blame.
type BlameInfo struct {
	Email string
	Name  string
}

// IdentifierOccurrence is one identifier found in a source file.
type IdentifierOccurrence struct {
	Name   string
	Line   int
	Column int
}

// TypoIssue is one identifier flagged as correctable, with the reconstructed
// spelling and the ranked per-token suggestions behind it.
type TypoIssue struct {
	Identifier  string
	Corrected   string // full reconstructed identifier, empty if reconstruction failed
	Line        int
	Column      int
	Tokens      []FlaggedToken
	Author      string
	AuthorEmail string
}

// FlaggedToken is one misspelled sub-token of a flagged identifier.
type FlaggedToken struct {
	Token       string
	Position    int
	Suggestions []suggest.Suggestion
}

// FileReport aggregates the typo findings of one file.
type FileReport struct {
	Rank               int
	Path               string
	CheckedIdentifiers int
	TypoIdentifiers    int
	ErrorRate          float64 // percentage of checked identifiers flagged
	TopTokens          map[string]int
	Issues             []TypoIssue
}

// AuthorStats accumulates typo attribution per author across the repository.
type AuthorStats struct {
	Name         string
	Email        string
	TotalTypos   int
	Files        map[string]int // path -> flagged identifiers
	CommonTokens map[string]int // misspelled sub-token -> count
}

// AuthorEntry is one ranked row of the author leaderboard.
type AuthorEntry struct {
	Rank     int
	Name     string
	Email    string
	Typos    int
	Files    int
	TopToken string
	TopCount int
}

// WordEntry is one ranked row of the misspelled sub-token leaderboard.
type WordEntry struct {
	Rank          int
	Token         string
	Count         int
	Files         int
	TopSuggestion string
}
