package extractor

import (
	"errors"
	"regexp"
	"strings"

	"github.com/custodia-labs/specxtract/internal/core/domain"
)

var (
	errEmptyName     = errors.New("empty name")
	errEmptyExpr     = errors.New("empty rule")
	errDuplicateName = errors.New("duplicate name")
)

// DetectorSpec describes a detector before its rule is compiled.
type DetectorSpec struct {
	// Name identifies the detector and appears in every tuple it produces.
	Name string

	// Expr is the RE2 recognition rule.
	Expr string

	// Column is the display label used by tabular outputs.
	// Defaults to Name.
	Column string

	// Kind selects how a match becomes a tuple.
	Kind domain.DetectorKind

	// Scope selects where in a line the rule may match.
	Scope domain.MatchScope
}

// Detector is a compiled, immutable recognition rule.
// Detectors are safe for concurrent use.
type Detector struct {
	spec    DetectorSpec
	pattern *regexp.Regexp
}

func compileDetector(spec DetectorSpec) (*Detector, error) {
	if strings.TrimSpace(spec.Name) == "" {
		return nil, &domain.PatternError{Detector: spec.Name, Expr: spec.Expr, Err: errEmptyName}
	}
	if spec.Expr == "" {
		return nil, &domain.PatternError{Detector: spec.Name, Expr: spec.Expr, Err: errEmptyExpr}
	}
	pattern, err := regexp.Compile(spec.Expr)
	if err != nil {
		return nil, &domain.PatternError{Detector: spec.Name, Expr: spec.Expr, Err: err}
	}
	if spec.Column == "" {
		spec.Column = spec.Name
	}
	return &Detector{spec: spec, pattern: pattern}, nil
}

// Name returns the detector name.
func (d *Detector) Name() string { return d.spec.Name }

// Column returns the display label.
func (d *Detector) Column() string { return d.spec.Column }

// Kind returns the detector kind.
func (d *Detector) Kind() domain.DetectorKind { return d.spec.Kind }

// Scope returns the detector's match scope.
func (d *Detector) Scope() domain.MatchScope { return d.spec.Scope }

// Expr returns the rule as written.
func (d *Detector) Expr() string { return d.spec.Expr }

// Spec returns the definition the detector was compiled from.
func (d *Detector) Spec() DetectorSpec { return d.spec }

// Recognize applies the rule to a line according to the detector's scope.
// With ScopeLineStart a rule that only matches mid-line yields no match.
func (d *Detector) Recognize(line string) (Match, bool) {
	// Leftmost-first semantics: if any match starts at 0, the leftmost one does.
	loc := d.pattern.FindStringSubmatchIndex(line)
	if loc == nil {
		return Match{}, false
	}
	if d.spec.Scope == domain.ScopeLineStart && loc[0] != 0 {
		return Match{}, false
	}
	return Match{line: line, loc: loc}, true
}

// Match is the result of one successful recognition.
type Match struct {
	line string
	loc  []int
}

// Span returns the full matched text.
func (m Match) Span() string {
	return m.line[m.loc[0]:m.loc[1]]
}

// Start returns the byte offset of the match within the line.
func (m Match) Start() int { return m.loc[0] }

// Group returns capture group i and whether it participated in the match.
// Group 0 is the span.
func (m Match) Group(i int) (string, bool) {
	if i < 0 || 2*i+1 >= len(m.loc) || m.loc[2*i] < 0 {
		return "", false
	}
	return m.line[m.loc[2*i]:m.loc[2*i+1]], true
}

// Registry is an ordered, read-only catalogue of detectors.
// Its order is the order in which detectors are tried on every line and
// therefore the order of tuples within a record.
type Registry struct {
	detectors []*Detector
	index     map[string]int
}

// NewRegistry compiles specs, in order, into a registry.
// A malformed rule, an empty name or a repeated name returns a
// *domain.PatternError wrapping domain.ErrInvalidPattern.
func NewRegistry(specs ...DetectorSpec) (*Registry, error) {
	r := &Registry{
		detectors: make([]*Detector, 0, len(specs)),
		index:     make(map[string]int, len(specs)),
	}
	if err := r.add(specs); err != nil {
		return nil, err
	}
	return r, nil
}

// Extend returns a new registry holding r's detectors followed by specs.
// r is left untouched.
func (r *Registry) Extend(specs ...DetectorSpec) (*Registry, error) {
	next := &Registry{
		detectors: make([]*Detector, len(r.detectors), len(r.detectors)+len(specs)),
		index:     make(map[string]int, len(r.detectors)+len(specs)),
	}
	copy(next.detectors, r.detectors)
	for k, v := range r.index {
		next.index[k] = v
	}
	if err := next.add(specs); err != nil {
		return nil, err
	}
	return next, nil
}

func (r *Registry) add(specs []DetectorSpec) error {
	for _, spec := range specs {
		d, err := compileDetector(spec)
		if err != nil {
			return err
		}
		if _, exists := r.index[d.Name()]; exists {
			return &domain.PatternError{Detector: spec.Name, Expr: spec.Expr, Err: errDuplicateName}
		}
		r.index[d.Name()] = len(r.detectors)
		r.detectors = append(r.detectors, d)
	}
	return nil
}

// Detectors returns the detectors in priority order.
func (r *Registry) Detectors() []*Detector {
	out := make([]*Detector, len(r.detectors))
	copy(out, r.detectors)
	return out
}

// Names returns detector names in priority order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.detectors))
	for i, d := range r.detectors {
		names[i] = d.Name()
	}
	return names
}

// Lookup returns the named detector.
func (r *Registry) Lookup(name string) (*Detector, bool) {
	i, ok := r.index[name]
	if !ok {
		return nil, false
	}
	return r.detectors[i], true
}

// Len returns the number of detectors.
func (r *Registry) Len() int {
	return len(r.detectors)
}

// Recognizes reports whether the named detector's rule matches anywhere
// in text. Unknown names never match.
func (r *Registry) Recognizes(name, text string) bool {
	d, ok := r.Lookup(name)
	if !ok {
		return false
	}
	return d.pattern.MatchString(text)
}
