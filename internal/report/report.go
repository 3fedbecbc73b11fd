package report

import (
	"fmt"
	"sort"

	"typoscout/internal/types"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#5d5d5d")).
			PaddingLeft(1).
			PaddingRight(1)

	cellStyle = lipgloss.NewStyle().
			PaddingLeft(1).
			PaddingRight(1)

	rankStyle = cellStyle.Copy().
			Foreground(lipgloss.Color("#878787"))

	nameStyle = cellStyle.Copy().
			Foreground(lipgloss.Color("#d75f00"))

	emailStyle = cellStyle.Copy().
			Foreground(lipgloss.Color("#878787"))

	tokenStyle = cellStyle.Copy().
			Foreground(lipgloss.Color("#ffd700"))

	typoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff0000"))

	fixStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ff00"))

	confStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#878787"))
)

// GenerateAuthorLeaderboard ranks authors by attributed typos.
func GenerateAuthorLeaderboard(authorStats map[string]*types.AuthorStats) []types.AuthorEntry {
	var entries []types.AuthorEntry
	for email, stats := range authorStats {
		var topToken string
		var topCount int
		for token, count := range stats.CommonTokens {
			if count > topCount || (count == topCount && token < topToken) {
				topToken = token
				topCount = count
			}
		}
		if topToken == "" {
			topToken = "unknown"
		}

		entries = append(entries, types.AuthorEntry{
			Name:     stats.Name,
			Email:    email,
			Typos:    stats.TotalTypos,
			Files:    len(stats.Files),
			TopToken: topToken,
			TopCount: topCount,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Typos != entries[j].Typos {
			return entries[i].Typos > entries[j].Typos
		}
		return entries[i].Email < entries[j].Email
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}

	return entries
}

// GenerateWordLeaderboard ranks the misspelled sub-tokens seen across
// all file reports, with the suggestion most often offered for each.
func GenerateWordLeaderboard(reports []types.FileReport) []types.WordEntry {
	counts := make(map[string]int)
	files := make(map[string]map[string]bool)
	suggestions := make(map[string]map[string]int)

	for _, report := range reports {
		for _, issue := range report.Issues {
			for _, flagged := range issue.Tokens {
				counts[flagged.Token]++

				if files[flagged.Token] == nil {
					files[flagged.Token] = make(map[string]bool)
				}
				files[flagged.Token][report.Path] = true

				if len(flagged.Suggestions) > 0 {
					if suggestions[flagged.Token] == nil {
						suggestions[flagged.Token] = make(map[string]int)
					}
					suggestions[flagged.Token][flagged.Suggestions[0].Candidate]++
				}
			}
		}
	}

	var entries []types.WordEntry
	for token, count := range counts {
		var topSuggestion string
		var topCount int
		for candidate, n := range suggestions[token] {
			if n > topCount || (n == topCount && candidate < topSuggestion) {
				topSuggestion = candidate
				topCount = n
			}
		}

		entries = append(entries, types.WordEntry{
			Token:         token,
			Count:         count,
			Files:         len(files[token]),
			TopSuggestion: topSuggestion,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Token < entries[j].Token
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}

	return entries
}

func PrintFileLeaderboard(reports []types.FileReport, topN int) {
	fmt.Println(titleStyle.Render("File Leaderboard - Most Typo-Dense Files"))

	if len(reports) == 0 {
		fmt.Println(cellStyle.Render("📭 No analyzable files found"))
		return
	}

	maxEntries := topN
	if len(reports) < maxEntries {
		maxEntries = len(reports)
	}

	for i := 0; i < maxEntries; i++ {
		report := reports[i]
		rank := rankStyle.Render(fmt.Sprintf("%2d", report.Rank))
		path := cellStyle.Render(report.Path)
		topToken := tokenStyle.Render(topFileToken(report))

		fmt.Printf("%s. %s – %d/%d identifiers flagged (%.1f%%), top token: %s\n",
			rank, path, report.TypoIdentifiers, report.CheckedIdentifiers,
			report.ErrorRate, topToken)
	}
}

func PrintAuthorLeaderboard(entries []types.AuthorEntry, topN int) {
	fmt.Println(titleStyle.Render("Author Leaderboard - Most Identifier Typos"))

	if len(entries) == 0 {
		fmt.Println(cellStyle.Render("🎉 Everyone spells their identifiers correctly"))
		return
	}

	maxEntries := topN
	if len(entries) < maxEntries {
		maxEntries = len(entries)
	}

	for i := 0; i < maxEntries; i++ {
		entry := entries[i]
		rank := rankStyle.Render(fmt.Sprintf("%2d", entry.Rank))
		name := nameStyle.Render(entry.Name)
		email := emailStyle.Render(fmt.Sprintf("(%s)", entry.Email))
		topToken := tokenStyle.Render(entry.TopToken)

		fmt.Printf("%s. %s %s – %d typos, %d files, favorite misspelling: %s (%d)\n",
			rank, name, email, entry.Typos, entry.Files, topToken, entry.TopCount)
	}
}

func PrintWordLeaderboard(entries []types.WordEntry, topN int) {
	fmt.Println(titleStyle.Render("Word Leaderboard - Most Common Misspellings"))

	if len(entries) == 0 {
		fmt.Println(cellStyle.Render("🎉 No misspelled sub-tokens found"))
		return
	}

	maxEntries := topN
	if len(entries) < maxEntries {
		maxEntries = len(entries)
	}

	for i := 0; i < maxEntries; i++ {
		entry := entries[i]
		rank := rankStyle.Render(fmt.Sprintf("%2d", entry.Rank))
		token := typoStyle.Render(entry.Token)
		suggestion := fixStyle.Render(entry.TopSuggestion)

		fmt.Printf("%s. %s → %s – %d occurrences in %d files\n",
			rank, token, suggestion, entry.Count, entry.Files)
	}
}

// PrintCheckResults lists every finding, file by file, with the
// corrected spelling and the per-token candidates behind it.
func PrintCheckResults(reports []types.FileReport, verbose bool) {
	for _, report := range reports {
		if len(report.Issues) == 0 {
			continue
		}

		fmt.Println(titleStyle.Render(report.Path))
		for _, issue := range report.Issues {
			location := rankStyle.Render(fmt.Sprintf("%d:%d", issue.Line, issue.Column))
			identifier := typoStyle.Render(issue.Identifier)

			if issue.Corrected != "" {
				fmt.Printf("%s %s → %s\n", location, identifier, fixStyle.Render(issue.Corrected))
			} else {
				fmt.Printf("%s %s (no safe rewrite)\n", location, identifier)
			}

			if verbose {
				for _, flagged := range issue.Tokens {
					for _, suggestion := range flagged.Suggestions {
						fmt.Printf("      %s → %s %s\n",
							flagged.Token, suggestion.Candidate,
							confStyle.Render(fmt.Sprintf("(%.2f)", suggestion.Confidence)))
					}
				}
			}

			if issue.Author != "unknown" {
				fmt.Printf("      %s\n", emailStyle.Render(fmt.Sprintf("blame: %s <%s>", issue.Author, issue.AuthorEmail)))
			}
		}
		fmt.Println()
	}
}

// PrintSummary condenses a run into a few headline numbers.
func PrintSummary(reports []types.FileReport, authorStats map[string]*types.AuthorStats) {
	fmt.Println(titleStyle.Render("Analysis Summary"))

	totalChecked, totalFlagged, filesWithTypos := 0, 0, 0
	for _, report := range reports {
		totalChecked += report.CheckedIdentifiers
		totalFlagged += report.TypoIdentifiers
		if report.TypoIdentifiers > 0 {
			filesWithTypos++
		}
	}

	rate := 0.0
	if totalChecked > 0 {
		rate = float64(totalFlagged) / float64(totalChecked) * 100
	}

	fmt.Printf("  Files analyzed:       %d\n", len(reports))
	fmt.Printf("  Files with typos:     %d\n", filesWithTypos)
	fmt.Printf("  Identifiers checked:  %d\n", totalChecked)
	fmt.Printf("  Identifiers flagged:  %d (%.1f%%)\n", totalFlagged, rate)
	fmt.Printf("  Authors involved:     %d\n", len(authorStats))
}

func topFileToken(report types.FileReport) string {
	var topToken string
	var topCount int
	for token, count := range report.TopTokens {
		if count > topCount || (count == topCount && token < topToken) {
			topToken = token
			topCount = count
		}
	}
	if topToken == "" {
		return "unknown"
	}
	return topToken
}
