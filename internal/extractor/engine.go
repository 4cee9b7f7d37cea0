package extractor

import (
	"sort"
	"sync"

	"github.com/custodia-labs/specxtract/internal/core/domain"
)

// Engine extracts ordered feature tuples from text.
// Label frequencies accumulate across calls; calls are serialised.
type Engine struct {
	mu         sync.Mutex
	registry   *Registry
	freq       *FrequencyTable
	classifier *Classifier
}

// NewEngine creates an engine over registry, or DefaultRegistry when nil.
func NewEngine(registry *Registry) *Engine {
	if registry == nil {
		registry = DefaultRegistry()
	}
	freq := NewFrequencyTable()
	return &Engine{
		registry:   registry,
		freq:       freq,
		classifier: NewClassifier(registry, freq),
	}
}

// Registry returns the engine's detectors.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// ExtractFeatures segments text into records, classifies every line,
// resolves precedence per record and returns the tuples ordered by
// descending record id, then descending label frequency.
func (e *Engine) ExtractFeatures(text, documentID string) []domain.FeatureTuple {
	e.mu.Lock()
	defer e.mu.Unlock()

	var tuples []domain.FeatureTuple
	for _, record := range Segment(text) {
		groups := NewMatchGroups()
		for _, line := range splitLines(record.Text) {
			e.classifier.Classify(line, documentID, record.ID, groups)
		}
		tuples = Resolve(tuples, groups)
	}

	sort.SliceStable(tuples, func(i, j int) bool {
		if tuples[i].RecordID != tuples[j].RecordID {
			return tuples[i].RecordID > tuples[j].RecordID
		}
		return e.freq.Count(tuples[i].Content) > e.freq.Count(tuples[j].Content)
	})
	return tuples
}

// Resolve appends one record's tuples to out. Colon-separated tuples are
// dropped in favour of every other detector. A record without any
// colon-separated tuple has all its tuples appended twice.
func Resolve(out []domain.FeatureTuple, groups *MatchGroups) []domain.FeatureTuple {
	for _, name := range groups.order {
		if name != PatternColonSeparated {
			out = append(out, groups.byName[name]...)
		}
	}
	// Existing exports contain the repeated rows; consumers key on them.
	if len(groups.byName[PatternColonSeparated]) == 0 {
		for _, name := range groups.order {
			out = append(out, groups.byName[name]...)
		}
	}
	return out
}

// Frequency returns how many generic tuples carried label.
func (e *Engine) Frequency(label string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.freq.Count(label)
}

// Frequencies returns a copy of all label counts.
func (e *Engine) Frequencies() map[string]int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.freq.Snapshot()
}

// Reset clears label counts, as if the engine were new.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.freq.Reset()
}
