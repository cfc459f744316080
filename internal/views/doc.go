// Package views is the conversion layer: pure mappings from stored entities to
// response views. Derived values (counts, progress, percentage, preview) are
// recomputed on every call and never stored.
package views
