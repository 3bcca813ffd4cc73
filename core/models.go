package core

import (
	"encoding/binary"
	"strconv"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier derived from text content.
// It is used to key cached embedding vectors.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// Identical content always produces the identical ID.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// TimeHint classifies the rough era a scene description implies.
type TimeHint string

const (
	TimeHintHistorical  TimeHint = "historical"
	TimeHintModern      TimeHint = "modern"
	TimeHintFuture      TimeHint = "future"
	TimeHintUnspecified TimeHint = "unspecified"
)

// ParseTimeHint maps free text to a TimeHint, defaulting to unspecified.
func ParseTimeHint(s string) TimeHint {
	switch TimeHint(s) {
	case TimeHintHistorical, TimeHintModern, TimeHintFuture:
		return TimeHint(s)
	default:
		return TimeHintUnspecified
	}
}

// SceneDescription is the structured reading of a user's free-text scene.
// It is produced once per query by a scene analyzer and never mutated
// afterwards. The tag lists are free-form and may contain duplicates;
// consumers are responsible for de-duplication.
type SceneDescription struct {
	Entities    []string
	Events      []string
	Environment []string
	Themes      []string
	TimeHint    TimeHint
}

// AllTerms returns the concatenation of all tag lists in field order.
func (s SceneDescription) AllTerms() []string {
	terms := make([]string, 0, len(s.Entities)+len(s.Events)+len(s.Environment)+len(s.Themes))
	terms = append(terms, s.Entities...)
	terms = append(terms, s.Events...)
	terms = append(terms, s.Environment...)
	terms = append(terms, s.Themes...)
	return terms
}

// IsEmpty reports whether no tags were extracted at all.
// This is a valid non-error analyzer result, not a failure.
func (s SceneDescription) IsEmpty() bool {
	return len(s.Entities) == 0 && len(s.Events) == 0 &&
		len(s.Environment) == 0 && len(s.Themes) == 0
}

// EmptyScene returns a well-formed SceneDescription with no tags.
func EmptyScene() SceneDescription {
	return SceneDescription{
		Entities:    []string{},
		Events:      []string{},
		Environment: []string{},
		Themes:      []string{},
		TimeHint:    TimeHintUnspecified,
	}
}

// MovieCandidate is a catalog entry under consideration for matching.
// Materialized during candidate retrieval and read-only afterwards.
type MovieCandidate struct {
	ID          int // external catalog key, unique per pipeline run
	Title       string
	Overview    string // plain-text synopsis, may be empty
	Keywords    []string
	VoteCount   int
	ReleaseDate string // ISO date or empty
}

// SearchText returns the lowercased concatenation of title, overview and
// keywords, used by the retrieval precision gate.
func (m MovieCandidate) SearchText() string {
	var b strings.Builder
	b.WriteString(m.Title)
	b.WriteByte(' ')
	b.WriteString(m.Overview)
	for _, kw := range m.Keywords {
		b.WriteByte(' ')
		b.WriteString(kw)
	}
	return strings.ToLower(b.String())
}

// ScoredMovie wraps a candidate with its fused similarity score.
// EmbeddingScore lives in [0,1]; the re-ranker may replace it via its
// documented blend formula, nothing else mutates it.
type ScoredMovie struct {
	Movie          MovieCandidate
	EmbeddingScore float64
	Explanation    string
}

// FinalResult is the externally visible result shape.
type FinalResult struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Year        int     `json:"year"`
	Description string  `json:"description"`
	MatchScore  int     `json:"matchScore"` // 0..100
	Explanation string  `json:"explanation"`
	PosterURL   string  `json:"posterUrl"`
	BackdropURL string  `json:"backdropUrl,omitempty"`
	VoteAverage float64 `json:"voteAverage,omitempty"`
}

// YearFromDate resolves a release year from an ISO date string.
// Empty or unparseable dates map to the current year.
func YearFromDate(date string) int {
	if len(date) >= 4 {
		if year, err := strconv.Atoi(date[:4]); err == nil && year > 0 {
			return year
		}
	}
	return time.Now().Year()
}
