package scrub

// ResolveColumn returns the position of name in header, matching exactly
// and case-sensitively. When the same name appears more than once the
// first position wins. The lookup happens once per file at header-read
// time; every record in the file is then indexed by the resolved position.
//
// A miss returns *ColumnNotFoundError, which is fatal for the calling
// mode: without the key column the run has no defined semantics.
func ResolveColumn(header []string, name string) (int, error) {
	for i, h := range header {
		if h == name {
			return i, nil
		}
	}
	return -1, &ColumnNotFoundError{Column: name}
}
