package extractor

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/specxtract/internal/core/domain"
)

// valuePattern captures everything after a line's first colon.
var valuePattern = regexp.MustCompile(`:\s*(.*)`)

// Classifier applies every detector of a registry to single lines.
type Classifier struct {
	registry *Registry
	freq     *FrequencyTable
}

// NewClassifier creates a classifier that counts generic labels in freq.
func NewClassifier(registry *Registry, freq *FrequencyTable) *Classifier {
	return &Classifier{registry: registry, freq: freq}
}

// Classify runs every detector, in registry order, against line and adds
// the resulting tuples to groups. A line may produce one tuple per detector.
func (c *Classifier) Classify(line, documentID string, recordID int, groups *MatchGroups) {
	for _, d := range c.registry.detectors {
		m, ok := d.Recognize(line)
		if !ok {
			continue
		}

		switch d.Kind() {
		case domain.KindContact:
			groups.add(domain.FeatureTuple{
				DocumentID: documentID,
				RecordID:   recordID,
				Pattern:    d.Name(),
				Content:    m.Span(),
			})
		case domain.KindBareWord:
			if c.claimed(line, m) {
				continue
			}
			groups.add(domain.FeatureTuple{
				DocumentID: documentID,
				RecordID:   recordID,
				Pattern:    d.Name(),
				Content:    m.Span(),
			})
		default:
			label, _ := m.Group(1)
			label = strings.TrimSpace(label)
			groups.add(domain.FeatureTuple{
				DocumentID: documentID,
				RecordID:   recordID,
				Pattern:    d.Name(),
				Content:    label,
				Value:      lineValue(line),
			})
			c.freq.Increment(label)
		}
	}
}

// claimed reports whether a colon, quantity or name rule recognises the
// bare-word match, either on its own or together with the rest of its line.
func (c *Classifier) claimed(line string, m Match) bool {
	span, rest := m.Span(), line[m.Start():]
	for _, name := range suppressors {
		if c.registry.Recognizes(name, span) || c.registry.Recognizes(name, rest) {
			return true
		}
	}
	return false
}

// lineValue returns the trimmed text after the first colon, or "".
func lineValue(line string) string {
	sub := valuePattern.FindStringSubmatch(line)
	if sub == nil {
		return ""
	}
	return strings.TrimSpace(sub[1])
}

// MatchGroups collects one record's tuples by detector name, keeping
// detectors in the order they first produced a tuple.
type MatchGroups struct {
	order  []string
	byName map[string][]domain.FeatureTuple
}

// NewMatchGroups creates an empty collection.
func NewMatchGroups() *MatchGroups {
	return &MatchGroups{byName: make(map[string][]domain.FeatureTuple)}
}

func (g *MatchGroups) add(t domain.FeatureTuple) {
	if _, seen := g.byName[t.Pattern]; !seen {
		g.order = append(g.order, t.Pattern)
	}
	g.byName[t.Pattern] = append(g.byName[t.Pattern], t)
}

// Names returns detector names in first-appearance order.
func (g *MatchGroups) Names() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Get returns the tuples produced by the named detector.
func (g *MatchGroups) Get(name string) []domain.FeatureTuple {
	return g.byName[name]
}
