// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Extraction runs documents through one shared engine, or through isolated
// engines in parallel on an errgroup.
package services
