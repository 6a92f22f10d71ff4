package adapter

import (
	"os"
	"path/filepath"
	"testing"

	m "gooze.dev/pkg/checksyntax/internal/model"
)

func TestLocalSourceFSAdapter_Walk(t *testing.T) {
	t.Run("visits nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "main.c"), "int main(void) {}\n")
		child := filepath.Join(root, "nested", "child.c")
		writeTestFile(t, child, "void child(void);\n")

		var visited []string
		err := adapter.Walk(m.Path(root), func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		if err != nil {
			t.Fatalf("Walk() error = %v", err)
		}

		if !containsPath(visited, child) {
			t.Fatalf("Walk() did not visit nested file, visited %v", visited)
		}
	})

	t.Run("skip dir prunes the subtree", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		skipped := filepath.Join(root, "skip")
		writeTestFile(t, filepath.Join(skipped, "hidden.c"), "")

		var visited []string
		err := adapter.Walk(m.Path(root), func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() && path == skipped {
				return filepath.SkipDir
			}
			visited = append(visited, path)
			return nil
		})
		if err != nil {
			t.Fatalf("Walk() error = %v", err)
		}

		if containsPath(visited, filepath.Join(skipped, "hidden.c")) {
			t.Fatalf("Walk() visited a file under a skipped directory")
		}
	})
}

func TestLocalSourceFSAdapter_ReadFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	path := filepath.Join(t.TempDir(), "main.c")
	content := "int main(void) {\n  return 0;\n}\n"
	writeTestFile(t, path, content)

	got, err := adapter.ReadFile(m.Path(path))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if string(got) != content {
		t.Fatalf("ReadFile() = %q, want %q", string(got), content)
	}

	if _, err := adapter.ReadFile(m.Path(filepath.Join(t.TempDir(), "missing.c"))); err == nil {
		t.Fatalf("ReadFile() expected error for missing file")
	}
}

func TestLocalSourceFSAdapter_FileInfo(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	info, err := adapter.FileInfo(m.Path(root))
	if err != nil {
		t.Fatalf("FileInfo() error = %v", err)
	}

	if !info.IsDir() {
		t.Fatalf("FileInfo() IsDir = false for %s", root)
	}
}

func TestLocalSourceFSAdapter_ExecutableDir(t *testing.T) {
	dir, err := NewLocalSourceFSAdapter().ExecutableDir()
	if err != nil {
		t.Fatalf("ExecutableDir() error = %v", err)
	}

	info, err := os.Stat(string(dir))
	if err != nil {
		t.Fatalf("stat executable dir: %v", err)
	}

	if !info.IsDir() {
		t.Fatalf("ExecutableDir() = %s, not a directory", dir)
	}
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func containsPath(paths []string, target string) bool {
	for _, p := range paths {
		if filepath.Clean(p) == filepath.Clean(target) {
			return true
		}
	}

	return false
}
