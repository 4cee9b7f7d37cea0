// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Interfaces
//
//   - Connector: Lists raw documents at a location
//   - Normaliser: Linearises one document format into text parts
//   - NormaliserRegistry: Selects the appropriate normaliser
//   - FeatureSink: Persists extracted feature tuples
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or normaliser package
package driven
