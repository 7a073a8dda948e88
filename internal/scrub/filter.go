package scrub

import "io"

// Policy decides whether a record with the given normalized key is kept.
// Filter never consults a policy for records without a key; those are
// always kept.
type Policy interface {
	Keep(key string) bool
}

// ExclusionPolicy keeps records whose key is absent from a reference set.
type ExclusionPolicy struct {
	Exclude KeySet
}

func (p ExclusionPolicy) Keep(key string) bool {
	return !p.Exclude.Contains(key)
}

// DedupPolicy keeps the first occurrence of each key. Seen starts empty
// and is owned by the single filtering pass; each Keep call that returns
// true has recorded the key.
type DedupPolicy struct {
	Seen KeySet
}

func (p DedupPolicy) Keep(key string) bool {
	return p.Seen.Add(key)
}

// RecordWriter consumes one record per call. *encoding/csv.Writer
// satisfies it directly.
type RecordWriter interface {
	Write(record []string) error
}

// Filter writes header to w, then streams records from r, writing each
// record the policy keeps. Kept records pass through verbatim: field
// values, order, and arity are never touched. The return value counts
// kept records, header excluded.
//
// The first read or write error aborts the pass; discarding any
// partially written output is the caller's responsibility.
func Filter(r RecordReader, header []string, keyCol int, policy Policy, w RecordWriter) (int, error) {
	if err := w.Write(header); err != nil {
		return 0, err
	}
	kept := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			return kept, nil
		}
		if err != nil {
			return kept, err
		}
		if key, ok := keyAt(record, keyCol); ok && !policy.Keep(key) {
			continue
		}
		if err := w.Write(record); err != nil {
			return kept, err
		}
		kept++
	}
}
