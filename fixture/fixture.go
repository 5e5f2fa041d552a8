// Package fixture collects the results of batch fixture generation. Every
// attempted file produces a Result, success or not, so a whole batch runs to
// completion and reports what it managed to write.
package fixture

import (
	"bufio"
	"io"
	"os"
	"path/filepath"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Result records one attempted fixture file.
type Result struct {
	// Name is the human-readable fixture name, e.g. "binary tetrahedron stl".
	Name string
	// Path is where the file was (or would have been) written.
	Path string
	// Size is the file size in bytes on success.
	Size int64
	// Err is the failure reason, nil on success.
	Err error
}

// Failed reports whether the fixture could not be generated.
func (r Result) Failed() bool {
	return r.Err != nil
}

// Manifest is the ordered collection of results from one generation batch.
type Manifest struct {
	results []Result
}

// Add appends a result to the manifest.
func (m *Manifest) Add(r Result) {
	m.results = append(m.results, r)
}

// Results returns all results in generation order.
func (m *Manifest) Results() []Result {
	return m.results
}

// Failed returns only the failed results.
func (m *Manifest) Failed() []Result {
	var failed []Result
	for _, r := range m.results {
		if r.Failed() {
			failed = append(failed, r)
		}
	}
	return failed
}

// Merge appends all of other's results.
func (m *Manifest) Merge(other *Manifest) {
	m.results = append(m.results, other.results...)
}

// Log prints one line per result, successes and failures alike.
func (m *Manifest) Log(logger golog.Logger) {
	for _, r := range m.results {
		if r.Failed() {
			logger.Errorw("✗ failed", "fixture", r.Name, "path", r.Path, "error", r.Err)
			continue
		}
		logger.Infow("✓ created", "fixture", r.Name, "path", r.Path, "bytes", r.Size)
	}
}

// Write creates dir/name, runs the encoder against it, and returns the
// outcome as a Result. Errors are captured, never propagated, so callers can
// keep going with the rest of a batch.
func Write(dir, name, filename string, encode func(io.Writer) error) Result {
	res := Result{Name: name, Path: filepath.Join(dir, filename)}

	//nolint:gosec
	f, err := os.Create(res.Path)
	if err != nil {
		res.Err = errors.Wrap(err, "cannot create fixture file")
		return res
	}

	w := bufio.NewWriter(f)
	err = encode(w)
	if err == nil {
		err = w.Flush()
	}
	err = multierr.Combine(err, f.Close())
	if err != nil {
		res.Err = err
		return res
	}

	info, err := os.Stat(res.Path)
	if err != nil {
		res.Err = errors.Wrap(err, "cannot stat fixture file")
		return res
	}
	res.Size = info.Size()
	return res
}

// WriteFile wraps path-based encoders (libraries that insist on writing to
// disk themselves) into a Result like Write does for streaming encoders.
func WriteFile(dir, name, filename string, save func(path string) error) Result {
	res := Result{Name: name, Path: filepath.Join(dir, filename)}
	if err := save(res.Path); err != nil {
		res.Err = err
		return res
	}
	info, err := os.Stat(res.Path)
	if err != nil {
		res.Err = errors.Wrap(err, "cannot stat fixture file")
		return res
	}
	res.Size = info.Size()
	return res
}
