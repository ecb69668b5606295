// Package types defines the public data model shared by the savekit
// packages: typed errors, the canonical stat order, derived-value
// helpers (natures, shininess, stat formulas), and the identifier
// mapping entries that tie game-internal ids to canonical ones.
package types
