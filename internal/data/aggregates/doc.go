// Package aggregates contains infrastructure implementations of domain aggregate contracts.
//
// Implementations compose table-level repos from internal/data/repos and own the
// transaction boundary for every write that touches more than one row.
package aggregates
