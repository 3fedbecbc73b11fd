package analyzer

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"typoscout/internal/checker"
	"typoscout/internal/config"
	"typoscout/internal/extract"
	"typoscout/internal/git"
	"typoscout/internal/tokenizer"
	"typoscout/internal/types"
	"typoscout/internal/utils"
)

// Analyzer runs the identifier checking pipeline over a repository:
// extraction, sub-token checking, reconstruction of corrected spellings
// and git blame attribution of every finding.
type Analyzer struct {
	checker   *checker.Checker
	cfg       *config.Config
	semaphore *utils.Semaphore
	mu        sync.Mutex
}

func New(scorer checker.Scorer, cfg *config.Config) *Analyzer {
	return &Analyzer{
		checker:   checker.New(scorer, cfg.Options()),
		cfg:       cfg,
		semaphore: utils.NewSemaphore(cfg.GetConcurrency()),
	}
}

// AnalyzeRepository checks every tracked file that passes the config
// filters. Files are processed concurrently; the returned reports are
// ranked by error rate and the author stats are merged across files.
// progress, if non-nil, is called once per finished file.
func (a *Analyzer) AnalyzeRepository(trackedFiles map[string]bool, progress func()) ([]types.FileReport, map[string]*types.AuthorStats, []string, error) {
	paths := make([]string, 0, len(trackedFiles))
	for path := range trackedFiles {
		if a.cfg.ShouldCheckFile(path) {
			paths = append(paths, path)
		}
	}
	sort.Strings(paths)

	var (
		reports     []types.FileReport
		authorStats = make(map[string]*types.AuthorStats)
		warningLogs []string
		wg          sync.WaitGroup
	)

	for _, path := range paths {
		wg.Add(1)
		go func(filePath string) {
			defer wg.Done()

			report, err := a.AnalyzeFile(filePath, &warningLogs)

			a.mu.Lock()
			if err != nil {
				warningLogs = append(warningLogs, fmt.Sprintf("⚠️ Skipped %s: %v", filePath, err))
			} else if report.CheckedIdentifiers > 0 {
				reports = append(reports, report)
				mergeAuthorStats(authorStats, report)
			}
			a.mu.Unlock()

			if progress != nil {
				progress()
			}
		}(path)
	}
	wg.Wait()

	sort.Slice(reports, func(i, j int) bool {
		if reports[i].ErrorRate != reports[j].ErrorRate {
			return reports[i].ErrorRate > reports[j].ErrorRate
		}
		if reports[i].TypoIdentifiers != reports[j].TypoIdentifiers {
			return reports[i].TypoIdentifiers > reports[j].TypoIdentifiers
		}
		return reports[i].Path < reports[j].Path
	})
	for i := range reports {
		reports[i].Rank = i + 1
	}

	return reports, authorStats, warningLogs, nil
}

// AnalyzeFile checks one file and returns its report. Identifiers whose
// corrected spelling cannot be rebuilt keep their suggestions but get an
// empty Corrected field, with a warning logged; that failure is loud,
// never silent.
func (a *Analyzer) AnalyzeFile(filePath string, warningLogs *[]string) (types.FileReport, error) {
	report := types.FileReport{
		Path:      filePath,
		TopTokens: make(map[string]int),
	}

	occurrences, err := extract.File(filePath, a.cfg)
	if err != nil {
		return report, err
	}
	if len(occurrences) == 0 {
		return report, nil
	}

	identifiers := make([]string, len(occurrences))
	for i, occ := range occurrences {
		identifiers[i] = occ.Name
	}

	result, err := a.checker.Check(identifiers)
	if err != nil {
		return report, err
	}
	report.CheckedIdentifiers = len(identifiers)

	// Blame once per file; every issue below shares the map.
	blameMap, blameErr := git.BlameFile(filePath, warningLogs, &a.mu, a.semaphore)
	if blameErr != nil {
		blameMap = make(map[int]types.BlameInfo)
	}

	for id, source := range occurrences {
		if !result.Correctable(id) {
			continue
		}

		issue := types.TypoIssue{
			Identifier:  source.Name,
			Line:        source.Line,
			Column:      source.Column,
			Author:      "unknown",
			AuthorEmail: "unknown",
		}

		for idx, occ := range result.Occurrences {
			if occ.Identifier != id {
				continue
			}
			ranked, ok := result.Suggestions[idx]
			if !ok {
				continue
			}
			issue.Tokens = append(issue.Tokens, types.FlaggedToken{
				Token:       occ.Token,
				Position:    occ.Position,
				Suggestions: ranked,
			})
			report.TopTokens[occ.Token]++
		}

		corrected, err := tokenizer.Reconstruct(source.Name, result.ReplacementTokens(id))
		if err != nil {
			a.mu.Lock()
			if errors.Is(err, tokenizer.ErrStructuralMismatch) {
				*warningLogs = append(*warningLogs, fmt.Sprintf(
					"⚠️ Could not rebuild corrected spelling for %q in %s:%d: %v",
					source.Name, filePath, source.Line, err))
			} else {
				*warningLogs = append(*warningLogs, fmt.Sprintf(
					"⚠️ Reconstruction error for %q in %s:%d: %v",
					source.Name, filePath, source.Line, err))
			}
			a.mu.Unlock()
		} else {
			issue.Corrected = corrected
		}

		if info, ok := nearestBlame(blameMap, source.Line); ok {
			if a.cfg.ShouldIgnoreAuthor(info.Email, info.Name) {
				continue
			}
			issue.Author = info.Name
			issue.AuthorEmail = info.Email
		}

		report.TypoIdentifiers++
		report.Issues = append(report.Issues, issue)
	}

	if report.CheckedIdentifiers > 0 {
		report.ErrorRate = float64(report.TypoIdentifiers) / float64(report.CheckedIdentifiers) * 100
	}

	return report, nil
}

// nearestBlame attributes a line to the closest blamed line at or after
// it, falling back to the last blamed line of the file.
func nearestBlame(blameMap map[int]types.BlameInfo, line int) (types.BlameInfo, bool) {
	if len(blameMap) == 0 {
		return types.BlameInfo{}, false
	}
	if info, exists := blameMap[line]; exists {
		return info, true
	}

	var lines []int
	for l := range blameMap {
		lines = append(lines, l)
	}
	sort.Ints(lines)

	for _, l := range lines {
		if l >= line {
			return blameMap[l], true
		}
	}
	return blameMap[lines[len(lines)-1]], true
}

func mergeAuthorStats(authorStats map[string]*types.AuthorStats, report types.FileReport) {
	for _, issue := range report.Issues {
		if issue.AuthorEmail == "unknown" {
			continue
		}

		stats := authorStats[issue.AuthorEmail]
		if stats == nil {
			stats = &types.AuthorStats{
				Name:         issue.Author,
				Email:        issue.AuthorEmail,
				Files:        make(map[string]int),
				CommonTokens: make(map[string]int),
			}
			authorStats[issue.AuthorEmail] = stats
		}

		stats.Name = issue.Author
		stats.TotalTypos++
		stats.Files[report.Path]++
		for _, token := range issue.Tokens {
			stats.CommonTokens[token.Token]++
		}
	}
}
