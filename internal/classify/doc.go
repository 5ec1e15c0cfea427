// Package classify maps file extensions to category labels.
//
// The rule table is embedded in the binary and decoded once on first use; it
// never changes at runtime. Lookups are pure and total: any extension,
// including the empty one, resolves to exactly one category, with
// DefaultCategory as the catch-all.
package classify
