package matcher

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// Mode selects the guess-checking policy
type Mode string

const (
	// ModeFuzzy accepts guesses within a similarity threshold of an
	// acceptable answer, tolerant of word order and small typos
	ModeFuzzy Mode = "fuzzy"

	// ModeExact requires case-insensitive equality with an acceptable
	// answer after trimming
	ModeExact Mode = "exact"
)

// DefaultThreshold is the minimum token-sort similarity score (0-100)
// for a fuzzy match
const DefaultThreshold = 85.0

// Config holds matcher settings
type Config struct {
	Mode      Mode
	Threshold float64
}

// DefaultConfig returns the production matching policy
func DefaultConfig() Config {
	return Config{
		Mode:      ModeFuzzy,
		Threshold: DefaultThreshold,
	}
}

// Service decides whether a free-text guess matches an answer
type Service struct {
	mode      Mode
	threshold float64
}

// New creates a matcher with the given policy
func New(cfg Config) *Service {
	if cfg.Mode == "" {
		cfg.Mode = ModeFuzzy
	}
	if cfg.Threshold == 0 {
		cfg.Threshold = DefaultThreshold
	}
	return &Service{
		mode:      cfg.Mode,
		threshold: cfg.Threshold,
	}
}

// Matches reports whether the guess matches the canonical answer or any
// alternate under the configured policy
func (s *Service) Matches(guess, answer string, altAnswers []string) bool {
	if s.mode == ModeExact {
		return ExactMatch(guess, answer, altAnswers)
	}
	return FuzzyMatch(guess, answer, altAnswers, s.threshold)
}

// FuzzyMatch reports whether the guess scores at least threshold
// against any acceptable answer. Scoring is an edit-distance ratio over
// whitespace tokens sorted into canonical order, so "Kennedy John"
// matches "John Kennedy". An empty guess never matches; identical
// strings always score 100.
func FuzzyMatch(guess, answer string, altAnswers []string, threshold float64) bool {
	guess = normalize(guess)
	if guess == "" {
		return false
	}

	for _, candidate := range candidates(answer, altAnswers) {
		score := fuzzy.TokenSortRatio(guess, candidate)
		if float64(score) >= threshold {
			return true
		}
	}
	return false
}

// ExactMatch reports whether the guess equals any acceptable answer
// after trimming and case-folding
func ExactMatch(guess, answer string, altAnswers []string) bool {
	guess = normalize(guess)
	if guess == "" {
		return false
	}

	for _, candidate := range candidates(answer, altAnswers) {
		if guess == candidate {
			return true
		}
	}
	return false
}

func candidates(answer string, altAnswers []string) []string {
	result := make([]string, 0, 1+len(altAnswers))
	if c := normalize(answer); c != "" {
		result = append(result, c)
	}
	for _, alt := range altAnswers {
		if c := normalize(alt); c != "" {
			result = append(result, c)
		}
	}
	return result
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
