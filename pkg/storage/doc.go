// Package storage provides utilities shared across storage adapter
// implementations, currently the sentinel errors.
//
// Storage adapters (memory, postgres) implement the credential.Store and
// content.Store interfaces defined next to their consumers. This package
// contains only shared types, not the interfaces themselves.
package storage
