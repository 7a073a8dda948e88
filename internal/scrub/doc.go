// Package scrub implements the record-filtering core of csvscrub:
// key normalization, header column resolution, key-set accumulation,
// and the streaming keep/drop pass shared by both run modes.
//
// The package operates on record streams, not files. Callers own the
// underlying readers and writers; scrub only decides, record for record,
// whether a record survives, and never alters the content of a record
// it keeps.
//
// Two policies drive the decision:
//
//   - ExclusionPolicy drops records whose key appears in a reference set
//     built from a separate file.
//   - DedupPolicy drops records whose key was already seen earlier in
//     the same stream, keeping the first occurrence.
//
// Records without a usable key (blank or absent email field) are always
// kept and never enter a key set.
package scrub
