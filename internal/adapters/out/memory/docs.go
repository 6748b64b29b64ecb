// Package memory provides map-backed implementations of the reference-data
// ports. A Factory builds the full repository set from one record snapshot
// and rejects duplicate natural keys at construction, so the engine never
// sees an ambiguous lookup.
package memory
