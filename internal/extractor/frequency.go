package extractor

// FrequencyTable counts how often each label was produced by a generic
// detector. Labels are counted regardless of which detector produced them.
// It is not safe for concurrent use; the Engine serialises access.
type FrequencyTable struct {
	counts map[string]int
}

// NewFrequencyTable creates an empty table.
func NewFrequencyTable() *FrequencyTable {
	return &FrequencyTable{counts: make(map[string]int)}
}

// Increment adds one occurrence of label.
func (f *FrequencyTable) Increment(label string) {
	f.counts[label]++
}

// Count returns the occurrences of label. Lookups never add keys.
func (f *FrequencyTable) Count(label string) int {
	return f.counts[label]
}

// Len returns the number of distinct labels.
func (f *FrequencyTable) Len() int {
	return len(f.counts)
}

// Snapshot returns a copy of the counts.
func (f *FrequencyTable) Snapshot() map[string]int {
	out := make(map[string]int, len(f.counts))
	for k, v := range f.counts {
		out[k] = v
	}
	return out
}

// Reset forgets every count.
func (f *FrequencyTable) Reset() {
	f.counts = make(map[string]int)
}
