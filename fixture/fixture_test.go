package fixture

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"go.viam.com/test"
)

func TestWriteSuccess(t *testing.T) {
	dir := t.TempDir()
	res := Write(dir, "hello fixture", "hello.txt", func(w io.Writer) error {
		_, err := w.Write([]byte("hello"))
		return err
	})
	test.That(t, res.Failed(), test.ShouldBeFalse)
	test.That(t, res.Size, test.ShouldEqual, 5)
	test.That(t, res.Path, test.ShouldEqual, filepath.Join(dir, "hello.txt"))

	data, err := os.ReadFile(res.Path)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, string(data), test.ShouldEqual, "hello")
}

func TestWriteEncoderFailure(t *testing.T) {
	dir := t.TempDir()
	res := Write(dir, "broken fixture", "broken.bin", func(io.Writer) error {
		return errors.New("boom")
	})
	test.That(t, res.Failed(), test.ShouldBeTrue)
	test.That(t, res.Err.Error(), test.ShouldContainSubstring, "boom")
}

func TestWriteBadDir(t *testing.T) {
	res := Write(filepath.Join(t.TempDir(), "nope"), "unwritable", "x.bin", func(io.Writer) error {
		return nil
	})
	test.That(t, res.Failed(), test.ShouldBeTrue)
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	res := WriteFile(dir, "path based", "direct.bin", func(path string) error {
		return os.WriteFile(path, []byte("abc"), 0o600)
	})
	test.That(t, res.Failed(), test.ShouldBeFalse)
	test.That(t, res.Size, test.ShouldEqual, 3)
}

func TestManifest(t *testing.T) {
	var m Manifest
	m.Add(Result{Name: "good"})
	m.Add(Result{Name: "bad", Err: errors.New("nope")})

	test.That(t, m.Results(), test.ShouldHaveLength, 2)
	test.That(t, m.Failed(), test.ShouldHaveLength, 1)
	test.That(t, m.Failed()[0].Name, test.ShouldEqual, "bad")

	var other Manifest
	other.Add(Result{Name: "more"})
	m.Merge(&other)
	test.That(t, m.Results(), test.ShouldHaveLength, 3)
}
