package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/JonMunkholm/csvscrub/internal/csvkit"
	"github.com/JonMunkholm/csvscrub/internal/logging"
	"github.com/JonMunkholm/csvscrub/internal/replacer"
	"github.com/JonMunkholm/csvscrub/internal/scrub"
)

// Exclude rewrites targetPath in place, dropping every record whose
// normalized email also appears in refPath. The reference file is fully
// read and closed before the target is opened, so refPath and targetPath
// may name the same file.
func Exclude(refPath, targetPath string) error {
	log := logging.WithRun("mode", "exclude", "reference", refPath, "target", targetPath)
	log.Info("run started")

	exclude, err := loadKeySet(refPath)
	if err != nil {
		return err
	}
	log.Info("reference keys loaded", "keys_loaded", exclude.Len())

	kept, dropped, err := filterInPlace(targetPath, scrub.ExclusionPolicy{Exclude: exclude})
	if err != nil {
		return err
	}

	log.Info("run complete", "kept", kept, "dropped", dropped)
	return nil
}

// Dedup rewrites path in place, keeping only the first occurrence of
// each normalized email.
func Dedup(path string) error {
	log := logging.WithRun("mode", "dedup", "target", path)
	log.Info("run started")

	kept, dropped, err := filterInPlace(path, scrub.DedupPolicy{Seen: scrub.NewKeySet()})
	if err != nil {
		return err
	}

	log.Info("run complete", "kept", kept, "dropped", dropped)
	return nil
}

// loadKeySet reads every record of path and returns the set of
// normalized keys found in its key column.
func loadKeySet(path string) (scrub.KeySet, error) {
	in, err := csvkit.Open(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	header, err := in.ReadHeader()
	if err != nil {
		return nil, err
	}

	keyCol, err := resolveKeyColumn(path, header)
	if err != nil {
		return nil, err
	}

	set, err := scrub.BuildKeySet(in, keyCol)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return set, nil
}

// filterInPlace runs one filtering pass over path, staging the output
// through the replacer so the file is swapped only on success. The
// header is read and the key column resolved before any output is
// staged; a missing column therefore aborts with the file untouched.
func filterInPlace(path string, policy scrub.Policy) (kept, dropped int, err error) {
	in, err := csvkit.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer in.Close()

	header, err := in.ReadHeader()
	if err != nil {
		return 0, 0, err
	}

	keyCol, err := resolveKeyColumn(path, header)
	if err != nil {
		return 0, 0, err
	}

	cr := &countingReader{r: in}
	err = replacer.Replace(path, func(w io.Writer) error {
		out := csvkit.NewWriter(w)
		n, err := scrub.Filter(cr, header, keyCol, policy, out)
		if err != nil {
			return fmt.Errorf("filtering %s: %w", path, err)
		}
		kept = n
		return out.Flush()
	})
	if err != nil {
		return 0, 0, err
	}

	return kept, cr.read - kept, nil
}

// resolveKeyColumn resolves the key column in header, attaching path to
// the error when the column is absent.
func resolveKeyColumn(path string, header []string) (int, error) {
	keyCol, err := scrub.ResolveColumn(header, scrub.KeyColumn)
	if err != nil {
		var cnf *scrub.ColumnNotFoundError
		if errors.As(err, &cnf) {
			cnf.File = path
		}
		return -1, err
	}
	return keyCol, nil
}

// countingReader counts records read so a pass can report how many it
// dropped.
type countingReader struct {
	r    scrub.RecordReader
	read int
}

func (c *countingReader) Read() ([]string, error) {
	record, err := c.r.Read()
	if err == nil {
		c.read++
	}
	return record, err
}
