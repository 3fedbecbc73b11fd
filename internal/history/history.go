package history

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"typoscout/internal/types"
)

// WriteReportToCSV writes a generic report table to a CSV file.
func WriteReportToCSV(dir, filename string, header []string, data [][]string) error {
	if dir == "" {
		return fmt.Errorf("log directory not specified")
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory %s: %w", dir, err)
	}

	filePath := filepath.Join(dir, filename)
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file %s: %w", filePath, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, row := range data {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	return nil
}

// WriteFileReportCSV writes the per-file typo report to a CSV file.
func WriteFileReportCSV(dir string, reports []types.FileReport) error {
	filename := fmt.Sprintf("file_report_%s.csv", time.Now().Format("20060102_150405"))
	header := []string{"Rank", "Path", "CheckedIdentifiers", "TypoIdentifiers", "ErrorRate"}
	data := make([][]string, len(reports))
	for i, report := range reports {
		data[i] = []string{
			fmt.Sprintf("%d", report.Rank),
			report.Path,
			fmt.Sprintf("%d", report.CheckedIdentifiers),
			fmt.Sprintf("%d", report.TypoIdentifiers),
			fmt.Sprintf("%.4f", report.ErrorRate),
		}
	}
	return WriteReportToCSV(dir, filename, header, data)
}

// WriteAuthorReportCSV writes the author leaderboard to a CSV file.
func WriteAuthorReportCSV(dir string, entries []types.AuthorEntry) error {
	filename := fmt.Sprintf("author_report_%s.csv", time.Now().Format("20060102_150405"))
	header := []string{"Rank", "Name", "Email", "Typos", "Files", "TopToken", "TopTokenCount"}
	data := make([][]string, len(entries))
	for i, entry := range entries {
		data[i] = []string{
			fmt.Sprintf("%d", entry.Rank),
			entry.Name,
			entry.Email,
			fmt.Sprintf("%d", entry.Typos),
			fmt.Sprintf("%d", entry.Files),
			entry.TopToken,
			fmt.Sprintf("%d", entry.TopCount),
		}
	}
	return WriteReportToCSV(dir, filename, header, data)
}

// WriteWordReportCSV writes the misspelled-token leaderboard to a CSV file.
func WriteWordReportCSV(dir string, entries []types.WordEntry) error {
	filename := fmt.Sprintf("word_report_%s.csv", time.Now().Format("20060102_150405"))
	header := []string{"Rank", "Token", "Count", "Files", "TopSuggestion"}
	data := make([][]string, len(entries))
	for i, entry := range entries {
		data[i] = []string{
			fmt.Sprintf("%d", entry.Rank),
			entry.Token,
			fmt.Sprintf("%d", entry.Count),
			fmt.Sprintf("%d", entry.Files),
			entry.TopSuggestion,
		}
	}
	return WriteReportToCSV(dir, filename, header, data)
}

// WriteIssuesCSV writes every individual finding to a CSV file, one row
// per flagged identifier.
func WriteIssuesCSV(dir string, reports []types.FileReport) error {
	filename := fmt.Sprintf("issues_%s.csv", time.Now().Format("20060102_150405"))
	header := []string{"Path", "Line", "Column", "Identifier", "Corrected", "Author", "AuthorEmail"}
	var data [][]string
	for _, report := range reports {
		for _, issue := range report.Issues {
			data = append(data, []string{
				report.Path,
				fmt.Sprintf("%d", issue.Line),
				fmt.Sprintf("%d", issue.Column),
				issue.Identifier,
				issue.Corrected,
				issue.Author,
				issue.AuthorEmail,
			})
		}
	}
	return WriteReportToCSV(dir, filename, header, data)
}
