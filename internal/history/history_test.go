package history

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"typoscout/internal/types"
)

func readSingleCSV(t *testing.T, dir, prefix string) string {
	t.Helper()

	files, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read temp dir: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("Expected 1 file in temp dir, got %d", len(files))
	}

	name := files[0].Name()
	if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, ".csv") {
		t.Fatalf("Generated filename %s does not match expected pattern %s*.csv", name, prefix)
	}

	content, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("Failed to read generated CSV file: %v", err)
	}
	return string(content)
}

func TestWriteAuthorReportCSV(t *testing.T) {
	tmpDir := t.TempDir()

	entries := []types.AuthorEntry{
		{
			Rank:     1,
			Name:     "John Doe",
			Email:    "john@example.com",
			Typos:    12,
			Files:    4,
			TopToken: "recieve",
			TopCount: 5,
		},
		{
			Rank:     2,
			Name:     "Jane Smith",
			Email:    "jane@example.com",
			Typos:    7,
			Files:    3,
			TopToken: "lenght",
			TopCount: 4,
		},
	}

	if err := WriteAuthorReportCSV(tmpDir, entries); err != nil {
		t.Fatalf("WriteAuthorReportCSV failed: %v", err)
	}

	expected := "Rank,Name,Email,Typos,Files,TopToken,TopTokenCount\n" +
		"1,John Doe,john@example.com,12,4,recieve,5\n" +
		"2,Jane Smith,jane@example.com,7,3,lenght,4\n"

	if content := readSingleCSV(t, tmpDir, "author_report_"); content != expected {
		t.Errorf("CSV content mismatch:\nExpected:\n%s\nGot:\n%s", expected, content)
	}
}

func TestWriteFileReportCSV(t *testing.T) {
	tmpDir := t.TempDir()

	reports := []types.FileReport{
		{Rank: 1, Path: "internal/server.go", CheckedIdentifiers: 40, TypoIdentifiers: 4, ErrorRate: 10},
	}

	if err := WriteFileReportCSV(tmpDir, reports); err != nil {
		t.Fatalf("WriteFileReportCSV failed: %v", err)
	}

	expected := "Rank,Path,CheckedIdentifiers,TypoIdentifiers,ErrorRate\n" +
		"1,internal/server.go,40,4,10.0000\n"

	if content := readSingleCSV(t, tmpDir, "file_report_"); content != expected {
		t.Errorf("CSV content mismatch:\nExpected:\n%s\nGot:\n%s", expected, content)
	}
}

func TestWriteIssuesCSV(t *testing.T) {
	tmpDir := t.TempDir()

	reports := []types.FileReport{
		{
			Path: "buffer.go",
			Issues: []types.TypoIssue{
				{
					Identifier:  "recieveBuf",
					Corrected:   "receiveBuf",
					Line:        3,
					Column:      5,
					Author:      "John Doe",
					AuthorEmail: "john@example.com",
				},
			},
		},
	}

	if err := WriteIssuesCSV(tmpDir, reports); err != nil {
		t.Fatalf("WriteIssuesCSV failed: %v", err)
	}

	expected := "Path,Line,Column,Identifier,Corrected,Author,AuthorEmail\n" +
		"buffer.go,3,5,recieveBuf,receiveBuf,John Doe,john@example.com\n"

	if content := readSingleCSV(t, tmpDir, "issues_"); content != expected {
		t.Errorf("CSV content mismatch:\nExpected:\n%s\nGot:\n%s", expected, content)
	}
}

func TestWriteReportToCSV_ErrorHandling(t *testing.T) {
	err := WriteReportToCSV("", "test.csv", []string{"Header"}, [][]string{{"Data"}})
	if err == nil || !strings.Contains(err.Error(), "log directory not specified") {
		t.Errorf("Expected 'log directory not specified' error, got: %v", err)
	}

	err = WriteReportToCSV("/proc/nonexistent/path", "test.csv", []string{"Header"}, [][]string{{"Data"}})
	if err == nil || !strings.Contains(err.Error(), "failed to create log directory") {
		t.Errorf("Expected 'failed to create log directory' error, got: %v", err)
	}
}
