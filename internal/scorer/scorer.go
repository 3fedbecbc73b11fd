package scorer

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"typoscout/internal/checker"
	"typoscout/internal/config"

	"github.com/sajari/fuzzy"
)

// Scorer rates correction candidates for identifier sub-tokens. It
// satisfies checker.Scorer and is safe for concurrent use once built.
type Scorer struct {
	model          *fuzzy.Model
	freqs          map[string]int
	maxFreq        int
	minTokenLength int
}

func New(cfg *config.Config) (*Scorer, error) {
	freqs := make(map[string]int)
	for word, count := range builtinWords() {
		freqs[word] += count
	}

	if cfg.DictionaryPath != "" {
		if err := loadDictionary(cfg.DictionaryPath, freqs); err != nil {
			return nil, fmt.Errorf("failed to load dictionary %s: %w", cfg.DictionaryPath, err)
		}
	}

	// Project vocabulary counts as very common so it is never flagged
	// and wins ties against lookalikes.
	for _, word := range cfg.CustomWords {
		freqs[strings.ToLower(word)] += 10000
	}

	maxFreq := 0
	words := make([]string, 0, len(freqs))
	for word, count := range freqs {
		words = append(words, word)
		if count > maxFreq {
			maxFreq = count
		}
	}
	// Training order affects the model's internal counts; sort so two
	// runs over the same dictionary score identically.
	sort.Strings(words)

	model := fuzzy.NewModel()
	model.SetThreshold(1)
	model.SetDepth(2)
	model.Train(words)

	return &Scorer{
		model:          model,
		freqs:          freqs,
		maxFreq:        maxFreq,
		minTokenLength: cfg.MinTokenLength,
	}, nil
}

// Score implements checker.Scorer: for every occurrence it returns the
// candidate words the token could have meant, each with a confidence in
// (0, 1]. A token that is already a known word scores itself 1.0, which
// makes the checker leave it alone.
func (s *Scorer) Score(occurrences []checker.Occurrence) (map[int]map[string]float64, error) {
	result := make(map[int]map[string]float64, len(occurrences))
	for i, occ := range occurrences {
		result[i] = s.scoreToken(occ.Token)
	}
	return result, nil
}

func (s *Scorer) scoreToken(token string) map[string]float64 {
	// Too short to judge: abbreviations like "id" or "fd" are not typos.
	if len(token) < s.minTokenLength {
		return map[string]float64{token: 1.0}
	}

	if _, known := s.freqs[token]; known {
		return map[string]float64{token: 1.0}
	}

	candidates := s.model.Suggestions(token, false)
	if len(candidates) == 0 {
		// Nothing close enough; treat the token as project jargon.
		return map[string]float64{token: 1.0}
	}

	scored := make(map[string]float64, len(candidates))
	for _, candidate := range candidates {
		if candidate == token {
			continue
		}
		scored[candidate] = s.confidence(token, candidate)
	}
	if len(scored) == 0 {
		return map[string]float64{token: 1.0}
	}
	return scored
}

// confidence combines edit-distance similarity with how common the
// candidate word is: "lenght" should prefer "length" over "lent".
func (s *Scorer) confidence(token, candidate string) float64 {
	maxLen := len(token)
	if len(candidate) > maxLen {
		maxLen = len(candidate)
	}
	if maxLen == 0 {
		return 0
	}

	distance := levenshteinDistance(token, candidate)
	similarity := 1.0 - float64(distance)/float64(maxLen)
	if similarity < 0 {
		similarity = 0
	}

	relevance := 0.0
	if s.maxFreq > 0 {
		relevance = math.Log1p(float64(s.freqs[candidate])) / math.Log1p(float64(s.maxFreq))
	}

	return similarity * (0.7 + 0.3*relevance)
}

// loadDictionary reads "word count" lines; a bare word gets count 1.
func loadDictionary(path string, freqs map[string]int) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		word := strings.ToLower(fields[0])
		count := 1
		if len(fields) > 1 {
			if parsed, err := strconv.Atoi(fields[1]); err == nil && parsed > 0 {
				count = parsed
			}
		}
		freqs[word] += count
	}

	return scanner.Err()
}

func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	matrix := make([][]int, len(a)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(b)+1)
		matrix[i][0] = i
	}

	for j := 1; j <= len(b); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			matrix[i][j] = minOfThree(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[len(a)][len(b)]
}

func minOfThree(a, b, c int) int {
	if a < b && a < c {
		return a
	}
	if b < c {
		return b
	}
	return c
}
