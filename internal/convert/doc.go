// Package convert holds the pure value converters used by converted
// bindings: duration ↔ colon-separated text and int ↔ decimal text.
//
// All parse functions are total. Malformed input maps to the zero value
// instead of an error, so a binding built on them either applies the
// default or suppresses the write when the field already holds it.
package convert
