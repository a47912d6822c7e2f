// Package api defines the wire-level types for the Profkom backend: the
// content entities (news, events, team members, units, prof listings), the
// admin account DTOs, and the structured error type returned on every
// failure.
//
// The package has zero external dependencies (Go standard library only) and
// performs no I/O. All types serialize to the JSON shapes the public site
// and the admin panel already consume, so field names are a compatibility
// contract.
package api
