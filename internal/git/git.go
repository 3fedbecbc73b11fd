package git

import (
	"bufio"
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"typoscout/internal/types"
	"typoscout/internal/utils"
)

var (
	blameCache     = make(map[string]map[int]types.BlameInfo)
	blameFailures  = make(map[string]bool)
	cacheMutex     sync.Mutex
	cachingEnabled = true
)

// SetCaching toggles the blame result cache; analysis of a repository
// that is being rewritten underneath us should turn it off.
func SetCaching(enabled bool) {
	cacheMutex.Lock()
	defer cacheMutex.Unlock()
	cachingEnabled = enabled
	if !enabled {
		blameCache = make(map[string]map[int]types.BlameInfo)
		blameFailures = make(map[string]bool)
	}
}

func ValidateRepository() error {
	if _, err := exec.Command("git", "rev-parse", "--git-dir").Output(); err != nil {
		return fmt.Errorf("not a git repository (or git is unavailable): %w", err)
	}
	return nil
}

func GetTrackedFiles() (map[string]bool, error) {
	cmd := exec.Command("git", "ls-files")
	output, err := cmd.Output()
	if err != nil {
		return nil, err
	}

	files := make(map[string]bool)
	for _, line := range strings.Split(strings.TrimSpace(string(output)), "\n") {
		if line != "" {
			files[line] = true
		}
	}
	return files, nil
}

// BlameFile maps line numbers to the author who last touched them.
// Results and failures are memoized so a file is blamed at most once
// per run; the semaphore bounds how many blame processes run at once.
func BlameFile(filePath string, warningLogs *[]string, mu *sync.Mutex, semaphore *utils.Semaphore) (map[int]types.BlameInfo, error) {
	cacheMutex.Lock()
	if blameMap, exists := blameCache[filePath]; exists {
		cacheMutex.Unlock()
		return blameMap, nil
	}
	if blameFailures[filePath] {
		cacheMutex.Unlock()
		return make(map[int]types.BlameInfo), fmt.Errorf("blame already failed for %s", filePath)
	}
	cacheMutex.Unlock()

	semaphore.Acquire()
	defer semaphore.Release()

	normalizedPath := strings.ReplaceAll(filePath, "\\", "/")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", "blame", "--line-porcelain", "--", normalizedPath)
	output, err := cmd.Output()
	if err != nil {
		cacheMutex.Lock()
		if cachingEnabled {
			blameFailures[filePath] = true
		}
		cacheMutex.Unlock()

		mu.Lock()
		*warningLogs = append(*warningLogs, fmt.Sprintf("⚠️ Blame failed for %s: %v", filePath, err))
		mu.Unlock()

		return make(map[int]types.BlameInfo), err
	}

	blameMap := parseBlameOutput(string(output))

	cacheMutex.Lock()
	if cachingEnabled {
		blameCache[filePath] = blameMap
	}
	cacheMutex.Unlock()

	return blameMap, nil
}

var commitHeaderRegex = regexp.MustCompile(`^[0-9a-f]{40} `)

func parseBlameOutput(output string) map[int]types.BlameInfo {
	blameMap := make(map[int]types.BlameInfo)
	scanner := bufio.NewScanner(strings.NewReader(output))

	var currentEmail, currentName string
	var currentLine int

	for scanner.Scan() {
		line := scanner.Text()

		if commitHeaderRegex.MatchString(line) {
			parts := strings.Fields(line)
			if len(parts) >= 3 {
				if lineNum, err := strconv.Atoi(parts[2]); err == nil {
					currentLine = lineNum
				}
			}
		} else if strings.HasPrefix(line, "author ") {
			currentName = strings.TrimSpace(strings.TrimPrefix(line, "author "))
		} else if strings.HasPrefix(line, "author-mail ") {
			email := strings.TrimPrefix(line, "author-mail ")
			email = strings.Trim(email, "<>")
			currentEmail = strings.TrimSpace(email)
		} else if strings.HasPrefix(line, "\t") {
			if currentEmail != "" && currentLine > 0 {
				blameMap[currentLine] = types.BlameInfo{
					Email: currentEmail,
					Name:  currentName,
				}
			}
			currentEmail = ""
			currentName = ""
			currentLine = 0
		}
	}

	return blameMap
}
