// Package types defines the formula catalog entities, the Result type returned
// by catalog queries, configuration, and the standard error values shared by
// the store and its callers.
package types
