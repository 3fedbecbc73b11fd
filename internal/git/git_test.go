package git

import (
	"os"
	"os/exec"
	"sync"
	"testing"

	"typoscout/internal/utils"
)

func setupTestRepo(t *testing.T) {
	t.Helper()

	tmpdir := t.TempDir()

	oldwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(oldwd) })
	os.Chdir(tmpdir)

	if err := exec.Command("git", "init").Run(); err != nil {
		t.Fatal(err)
	}
	if err := exec.Command("git", "config", "user.email", "scout@example.com").Run(); err != nil {
		t.Fatal(err)
	}
	if err := exec.Command("git", "config", "user.name", "Scout Tester").Run(); err != nil {
		t.Fatal(err)
	}

	content := []byte("var recieveBuf int\nvar sendBuf int\n")
	if err := os.WriteFile("test.go", content, 0644); err != nil {
		t.Fatal(err)
	}

	if err := exec.Command("git", "add", "test.go").Run(); err != nil {
		t.Fatal(err)
	}
	if err := exec.Command("git", "commit", "-m", "initial commit").Run(); err != nil {
		t.Fatal(err)
	}
}

func TestValidateRepository(t *testing.T) {
	setupTestRepo(t)

	if err := ValidateRepository(); err != nil {
		t.Errorf("expected valid repository, got %v", err)
	}
}

func TestGetTrackedFiles(t *testing.T) {
	setupTestRepo(t)

	files, err := GetTrackedFiles()
	if err != nil {
		t.Fatal(err)
	}

	if len(files) != 1 {
		t.Fatalf("Expected 1 tracked file, but got %d", len(files))
	}
	if !files["test.go"] {
		t.Errorf("Expected test.go to be a tracked file")
	}
}

func TestBlameFile(t *testing.T) {
	setupTestRepo(t)
	SetCaching(false)
	defer SetCaching(true)

	var warnings []string
	var mu sync.Mutex
	semaphore := utils.NewSemaphore(1)

	blameMap, err := BlameFile("test.go", &warnings, &mu, semaphore)
	if err != nil {
		t.Fatalf("BlameFile failed: %v", err)
	}

	if len(blameMap) != 2 {
		t.Fatalf("expected blame info for 2 lines, got %d", len(blameMap))
	}

	info := blameMap[1]
	if info.Email != "scout@example.com" {
		t.Errorf("expected blame email scout@example.com, got %q", info.Email)
	}
	if info.Name != "Scout Tester" {
		t.Errorf("expected blame name Scout Tester, got %q", info.Name)
	}
	if len(warnings) != 0 {
		t.Errorf("did not expect warnings, got %v", warnings)
	}
}

func TestBlameFileFailure(t *testing.T) {
	setupTestRepo(t)
	SetCaching(false)
	defer SetCaching(true)

	var warnings []string
	var mu sync.Mutex
	semaphore := utils.NewSemaphore(1)

	if _, err := BlameFile("missing.go", &warnings, &mu, semaphore); err == nil {
		t.Error("expected error blaming an untracked file")
	}
	if len(warnings) != 1 {
		t.Errorf("expected one warning, got %v", warnings)
	}
}

func TestParseBlameOutput(t *testing.T) {
	output := "0123456789abcdef0123456789abcdef01234567 1 1 1\n" +
		"author Scout Tester\n" +
		"author-mail <scout@example.com>\n" +
		"filename test.go\n" +
		"\tvar recieveBuf int\n"

	blameMap := parseBlameOutput(output)

	if len(blameMap) != 1 {
		t.Fatalf("expected one blamed line, got %d", len(blameMap))
	}
	if blameMap[1].Email != "scout@example.com" || blameMap[1].Name != "Scout Tester" {
		t.Errorf("unexpected blame info: %+v", blameMap[1])
	}
}
