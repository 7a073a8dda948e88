// Package replacer rewrites files in place without ever mutating the
// original directly: output is staged to a sibling temporary path and
// renamed over the original only on success, so a failed run leaves the
// file exactly as it was.
package replacer

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
)

// Replace atomically rewrites path with the content produced by write.
// The write callback receives the staged temporary file; when it returns
// nil the temporary file is synced, closed, and renamed over path. On
// any failure the temporary file is deleted (best effort) and path is
// left untouched.
//
// The rename is atomic when the temporary file is on the same
// filesystem as path, which a sibling path guarantees in practice.
func Replace(path string, write func(w io.Writer) error) error {
	tmp := tempPath(path)

	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("creating %s: %w", tmp, err)
	}

	if err := write(f); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("syncing %s: %w", tmp, err)
	}

	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("closing %s: %w", tmp, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing %s: %w", path, err)
	}

	return nil
}

// tempPath returns a sibling temporary path for path. The random suffix
// keeps concurrent invocations over different targets in one directory
// from colliding.
func tempPath(path string) string {
	return fmt.Sprintf("%s.tmp.%.8s", path, uuid.NewString())
}
