package scrub

import "io"

// KeySet is a set of normalized keys. It grows for the lifetime of one
// run and is never shared across runs. Memory scales with the number of
// distinct non-empty keys; there is no bound or eviction.
type KeySet map[string]struct{}

// NewKeySet returns an empty key set.
func NewKeySet() KeySet {
	return make(KeySet)
}

// Add inserts key and reports whether it was newly inserted.
func (s KeySet) Add(key string) bool {
	if _, ok := s[key]; ok {
		return false
	}
	s[key] = struct{}{}
	return true
}

// Contains reports whether key is in the set.
func (s KeySet) Contains(key string) bool {
	_, ok := s[key]
	return ok
}

// Len returns the number of distinct keys in the set.
func (s KeySet) Len() int {
	return len(s)
}

// RecordReader yields one record per call and io.EOF at end of stream.
// *encoding/csv.Reader satisfies it directly.
type RecordReader interface {
	Read() ([]string, error)
}

// keyAt extracts and normalizes the key field of a record. A record too
// short to contain keyCol has no key.
func keyAt(record []string, keyCol int) (string, bool) {
	if keyCol < 0 || keyCol >= len(record) {
		return "", false
	}
	return NormalizeKey(record[keyCol])
}

// BuildKeySet drains r and accumulates the normalized key of every
// record that has one. Duplicate keys collapse silently. Raw records are
// not retained, only the set. Any read error aborts the build.
func BuildKeySet(r RecordReader, keyCol int) (KeySet, error) {
	set := NewKeySet()
	for {
		record, err := r.Read()
		if err == io.EOF {
			return set, nil
		}
		if err != nil {
			return nil, err
		}
		if key, ok := keyAt(record, keyCol); ok {
			set.Add(key)
		}
	}
}
