package extractor

import (
	"sync"

	"github.com/custodia-labs/specxtract/internal/core/domain"
)

// Built-in detector names.
const (
	PatternKeywords       = "Keywords"
	PatternName           = "Name"
	PatternBrand          = "Brand"
	PatternQuantity       = "Quantity"
	PatternPrice          = "Price"
	PatternProductionDate = "ProductionDate"
	PatternExpirationDate = "ExpirationDate"
	PatternParentheses    = "Parentheses"
	PatternBrackets       = "Brackets"
	PatternColonSeparated = "ColonSeparated"
	PatternAsterisks      = "Asterisks"
	PatternTabular        = "Tabular"
	PatternQuoted         = "Quoted"
	PatternBraces         = "Braces"
	PatternDashes         = "Dashes"
	PatternUpperCaseWord  = "UpperCaseWord"
	PatternURL            = "URL"
	PatternPhone          = "Phone"
	PatternEmail          = "Email"
)

// suppressors are the detectors whose recognition of a bare-word match
// suppresses it.
var suppressors = []string{PatternColonSeparated, PatternQuantity, PatternName}

// DefaultSpecs returns the built-in detectors in priority order.
// New detectors go at the end.
func DefaultSpecs() []DetectorSpec {
	return []DetectorSpec{
		{Name: PatternKeywords, Expr: `(?i)(Features|Specifications)[:\s]*(.*)`},
		{Name: PatternName, Expr: `(?i)(Name|Product)[:\s]*(.*)`},
		{Name: PatternBrand, Expr: `(?i)(Brand)[:\s]*(.*)`},
		{Name: PatternQuantity, Expr: `(?i)(Quantity|Count)[:\s]*(.*)`},
		{Name: PatternPrice, Expr: `Price:\s*(?:\$\s*)?(\d+(?:,\d{3})*(?:\.\d{2})?)`},
		{Name: PatternProductionDate, Column: "Production Date", Expr: `(?i)(Production|Prod)[:\s]*(.*)`},
		{Name: PatternExpirationDate, Column: "Expiration Date", Expr: `(?i)(Expiration|Exp)[:\s]*(.*)`},
		{Name: PatternParentheses, Expr: `\((.*?)\)`},
		{Name: PatternBrackets, Expr: `\[(.*?)\]`},
		{Name: PatternColonSeparated, Column: "Colon Separated", Expr: `([^:]+)\s*:\s*(.*)`},
		{Name: PatternAsterisks, Expr: `\*\s*(.*)`},
		{Name: PatternTabular, Expr: `\|(.*)\|`},
		{Name: PatternQuoted, Expr: `"(.*?)"`},
		{Name: PatternBraces, Expr: `\{(.*)\}`},
		{Name: PatternDashes, Expr: `—\s*(.*)`},
		{Name: PatternUpperCaseWord, Column: "Upper Case Word", Kind: domain.KindBareWord, Expr: `\b[A-Z][A-Z\s\p{Zs}]+\b`},
		{Name: PatternURL, Expr: `(https?://(?:[a-zA-Z]|[0-9]|[$-_@.&+]|[!*\(\),]|(?:%[0-9a-fA-F][0-9a-fA-F]))+)`},
		{Name: PatternPhone, Kind: domain.KindContact, Expr: `\b(\+\d{1,3})?\s?(\d{1,4}[-\s]?){1,3}\d{1,4}\b`},
		{
			Name:  PatternEmail,
			Kind:  domain.KindContact,
			Scope: domain.ScopeAnywhere,
			Expr:  `[a-zA-Z0-9_\-\.]+@([a-zA-Z0-9_\-\.]+)\.[a-zA-Z]{2,5}`,
		},
	}
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	r, err := NewRegistry(DefaultSpecs()...)
	if err != nil {
		panic(err)
	}
	return r
})

// DefaultRegistry returns the shared registry of built-in detectors.
func DefaultRegistry() *Registry {
	return defaultRegistry()
}
