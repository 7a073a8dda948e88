package scrub

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubWriter collects written records.
type stubWriter struct {
	rows [][]string
}

func (w *stubWriter) Write(record []string) error {
	w.rows = append(w.rows, record)
	return nil
}

// failWriter fails once len(rows) records have been accepted.
type failWriter struct {
	rows  [][]string
	limit int
	err   error
}

func (w *failWriter) Write(record []string) error {
	if len(w.rows) >= w.limit {
		return w.err
	}
	w.rows = append(w.rows, record)
	return nil
}

func TestFilterExclusion(t *testing.T) {
	header := []string{"email", "name"}
	r := &stubReader{rows: [][]string{
		{"x@y.com", "Al"},
		{"z@w.com", "Bo"},
	}}
	exclude := NewKeySet()
	exclude.Add("x@y.com")

	out := &stubWriter{}
	kept, err := Filter(r, header, 0, ExclusionPolicy{Exclude: exclude}, out)
	require.NoError(t, err)

	assert.Equal(t, 1, kept)
	assert.Equal(t, [][]string{
		{"email", "name"},
		{"z@w.com", "Bo"},
	}, out.rows)
}

func TestFilterExclusionMatchesNormalized(t *testing.T) {
	header := []string{"email", "name"}
	r := &stubReader{rows: [][]string{
		{" X@Y.COM ", "Al"}, // dropped: normalizes to a member
		{"z@w.com", "Bo"},
	}}
	exclude := NewKeySet()
	exclude.Add("x@y.com")

	out := &stubWriter{}
	kept, err := Filter(r, header, 0, ExclusionPolicy{Exclude: exclude}, out)
	require.NoError(t, err)
	assert.Equal(t, 1, kept)
	assert.Equal(t, []string{"z@w.com", "Bo"}, out.rows[1])
}

func TestFilterDedup(t *testing.T) {
	header := []string{"email", "name"}
	r := &stubReader{rows: [][]string{
		{"a@b.com", "Al"},
		{"A@B.COM", "Ann"}, // case-insensitive duplicate of row 1
		{"c@d.com", "Cy"},
	}}

	out := &stubWriter{}
	kept, err := Filter(r, header, 0, DedupPolicy{Seen: NewKeySet()}, out)
	require.NoError(t, err)

	assert.Equal(t, 2, kept)
	assert.Equal(t, [][]string{
		{"email", "name"},
		{"a@b.com", "Al"},
		{"c@d.com", "Cy"},
	}, out.rows)
}

func TestFilterKeepsEmptyKeys(t *testing.T) {
	header := []string{"email", "name"}
	rows := [][]string{
		{"", "Al"},
		{"", "Ann"},
		{"x@y.com", "Bo"},
	}

	t.Run("dedup", func(t *testing.T) {
		out := &stubWriter{}
		kept, err := Filter(&stubReader{rows: rows}, header, 0, DedupPolicy{Seen: NewKeySet()}, out)
		require.NoError(t, err)
		assert.Equal(t, 3, kept, "empty keys never collide")
	})

	t.Run("exclusion", func(t *testing.T) {
		exclude := NewKeySet()
		exclude.Add("x@y.com")
		out := &stubWriter{}
		kept, err := Filter(&stubReader{rows: rows}, header, 0, ExclusionPolicy{Exclude: exclude}, out)
		require.NoError(t, err)
		assert.Equal(t, 2, kept, "empty keys are never excluded")
		assert.Equal(t, []string{"", "Ann"}, out.rows[2])
	})
}

func TestFilterPreservesContentAndArity(t *testing.T) {
	// Kept records pass through verbatim, ragged arity included.
	header := []string{"email", "name", "note"}
	r := &stubReader{rows: [][]string{
		{" Keep@Example.com ", "Al", "raw value, untouched"},
		{"short@row.com"},
		{"long@row.com", "Bo", "x", "extra"},
	}}

	out := &stubWriter{}
	kept, err := Filter(r, header, 0, ExclusionPolicy{Exclude: NewKeySet()}, out)
	require.NoError(t, err)

	assert.Equal(t, 3, kept)
	assert.Equal(t, [][]string{
		{"email", "name", "note"},
		{" Keep@Example.com ", "Al", "raw value, untouched"},
		{"short@row.com"},
		{"long@row.com", "Bo", "x", "extra"},
	}, out.rows)
}

func TestFilterShortRecordHasNoKey(t *testing.T) {
	// Key column out of range for a record means the record is kept.
	header := []string{"name", "email"}
	r := &stubReader{rows: [][]string{
		{"Al", "x@y.com"},
		{"Bo"},
	}}
	exclude := NewKeySet()
	exclude.Add("x@y.com")

	out := &stubWriter{}
	kept, err := Filter(r, header, 1, ExclusionPolicy{Exclude: exclude}, out)
	require.NoError(t, err)
	assert.Equal(t, 1, kept)
	assert.Equal(t, []string{"Bo"}, out.rows[1])
}

func TestFilterExclusionIdempotent(t *testing.T) {
	header := []string{"email", "name"}
	rows := [][]string{
		{"x@y.com", "Al"},
		{"z@w.com", "Bo"},
		{"", "Cy"},
	}
	exclude := NewKeySet()
	exclude.Add("x@y.com")

	first := &stubWriter{}
	_, err := Filter(&stubReader{rows: rows}, header, 0, ExclusionPolicy{Exclude: exclude}, first)
	require.NoError(t, err)

	second := &stubWriter{}
	kept2, err := Filter(&stubReader{rows: first.rows[1:]}, header, 0, ExclusionPolicy{Exclude: exclude}, second)
	require.NoError(t, err)

	assert.Equal(t, len(first.rows)-1, kept2, "re-running drops nothing further")
	assert.Equal(t, first.rows, second.rows)
}

func TestFilterDedupIdempotent(t *testing.T) {
	header := []string{"email", "name"}
	rows := [][]string{
		{"a@b.com", "Al"},
		{"A@B.COM", "Ann"},
		{"c@d.com", "Cy"},
		{"", "Di"},
		{"", "Ed"},
	}

	first := &stubWriter{}
	_, err := Filter(&stubReader{rows: rows}, header, 0, DedupPolicy{Seen: NewKeySet()}, first)
	require.NoError(t, err)

	second := &stubWriter{}
	kept2, err := Filter(&stubReader{rows: first.rows[1:]}, header, 0, DedupPolicy{Seen: NewKeySet()}, second)
	require.NoError(t, err)

	assert.Equal(t, len(first.rows)-1, kept2)
	assert.Equal(t, first.rows, second.rows)
}

func TestFilterPropagatesReadError(t *testing.T) {
	readErr := errors.New("parse error on line 2")
	r := &stubReader{rows: [][]string{{"a@b.com"}}, err: readErr}

	out := &stubWriter{}
	kept, err := Filter(r, []string{"email"}, 0, DedupPolicy{Seen: NewKeySet()}, out)
	require.ErrorIs(t, err, readErr)
	assert.Equal(t, 1, kept, "records written before the failure are counted")
}

func TestFilterPropagatesWriteError(t *testing.T) {
	writeErr := errors.New("no space left on device")
	r := &stubReader{rows: [][]string{{"a@b.com"}, {"b@c.com"}}}

	// Accepts the header and first record, then fails.
	out := &failWriter{limit: 2, err: writeErr}
	kept, err := Filter(r, []string{"email"}, 0, DedupPolicy{Seen: NewKeySet()}, out)
	require.ErrorIs(t, err, writeErr)
	assert.Equal(t, 1, kept)
}

func TestFilterHeaderWriteError(t *testing.T) {
	writeErr := errors.New("closed pipe")
	out := &failWriter{limit: 0, err: writeErr}

	kept, err := Filter(&stubReader{}, []string{"email"}, 0, DedupPolicy{Seen: NewKeySet()}, out)
	require.ErrorIs(t, err, writeErr)
	assert.Equal(t, 0, kept)
}

func TestFilterEmptyBody(t *testing.T) {
	out := &stubWriter{}
	kept, err := Filter(&stubReader{}, []string{"email"}, 0, DedupPolicy{Seen: NewKeySet()}, out)
	require.NoError(t, err)

	assert.Equal(t, 0, kept)
	assert.Equal(t, [][]string{{"email"}}, out.rows, "header is still written")
}
