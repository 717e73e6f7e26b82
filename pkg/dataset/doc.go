// Package dataset generates the synthetic HR dataset served by hrmockd.
//
// Generate builds eleven related collections in dependency order. Catalog
// collections (departments, locations, positions, legal entities, payroll
// cycles, leave types) come first, followed by the entities that reference
// them (users, onboarding users, employees, leave requests, candidates).
// Every stored reference points at a record generated earlier in the same
// pass.
//
// All randomness, record ids included, is drawn from one ChaCha8 stream.
// A non-zero Options.Seed makes the dataset reproducible; a zero seed reads
// fresh entropy from the OS. Generation performs no I/O beyond that and
// either returns a complete dataset or an error.
//
// NewSnapshot wraps a Dataset in query.Collection values carrying each
// collection's filter registry. A Snapshot is immutable and safe for
// concurrent readers.
package dataset
