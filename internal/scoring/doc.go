// Package scoring computes the two derived scalars for the field-level
// aggregate: a development-stage score in [0,3) describing how far a detailed
// field's standards work has progressed, and a capability score in [0,3]
// describing participation strength, normalized against the strongest peer
// within the same strategic field.
package scoring
