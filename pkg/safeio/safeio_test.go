package safeio

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadFileContained(t *testing.T) {
	base := t.TempDir()
	sub := filepath.Join(base, "latest", "guide")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	inside := filepath.Join(sub, "index.html")
	if err := os.WriteFile(inside, []byte("<html></html>"), 0o644); err != nil {
		t.Fatal(err)
	}

	outside := filepath.Join(t.TempDir(), "escape.html")
	if err := os.WriteFile(outside, []byte("nope"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Run("inside base", func(t *testing.T) {
		data, err := ReadFileContained(base, inside)
		if err != nil {
			t.Fatalf("ReadFileContained() error: %v", err)
		}
		if string(data) != "<html></html>" {
			t.Errorf("unexpected content: %q", data)
		}
	})

	t.Run("outside base", func(t *testing.T) {
		if _, err := ReadFileContained(base, outside); err == nil {
			t.Error("expected error for file outside base directory")
		}
	})

	t.Run("traversal", func(t *testing.T) {
		if _, err := ReadFileContained(sub, filepath.Join(sub, "..", "..", "..", "etc", "passwd")); err == nil {
			t.Error("expected error for traversal path")
		}
	})
}

func TestWriteFilePreservePerms(t *testing.T) {
	dir := t.TempDir()

	t.Run("new file gets default mode", func(t *testing.T) {
		p := filepath.Join(dir, "new.html")
		if err := WriteFilePreservePerms(p, []byte("x")); err != nil {
			t.Fatal(err)
		}
		st, err := os.Stat(p)
		if err != nil {
			t.Fatal(err)
		}
		if st.Mode()&0o777 != 0o644 {
			t.Errorf("mode = %o, expected 644", st.Mode()&0o777)
		}
	})

	t.Run("existing mode preserved", func(t *testing.T) {
		p := filepath.Join(dir, "exec.html")
		if err := os.WriteFile(p, []byte("x"), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := WriteFilePreservePerms(p, []byte("y")); err != nil {
			t.Fatal(err)
		}
		st, err := os.Stat(p)
		if err != nil {
			t.Fatal(err)
		}
		if st.Mode()&0o777 != 0o755 {
			t.Errorf("mode = %o, expected 755", st.Mode()&0o777)
		}
		data, _ := os.ReadFile(p)
		if string(data) != "y" {
			t.Errorf("content = %q, expected %q", data, "y")
		}
	})
}
