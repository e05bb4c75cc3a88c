// Package kernel provides the domain primitives shared by every aggregate:
// the UUID identifier value object and the constructor guard that makes
// zero-value domain objects fail validation. Both are immutable and safe
// for concurrent use.
package kernel
