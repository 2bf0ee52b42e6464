package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	m "routefinder.dev/pkg/routefinder/internal/model"
)

func TestLocalSourceFSAdapter_ListFilesMatching(t *testing.T) {
	t.Run("matches nested files in lexical order", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		mustMkdirAll(t, filepath.Join(root, "lib", "app"))
		mustMkdirAll(t, filepath.Join(root, "lib", "generated"))
		writeTestFile(t, filepath.Join(root, "lib", "routes.gr.dart"), "")
		writeTestFile(t, filepath.Join(root, "lib", "app", "routes.gr.dart"), "")
		writeTestFile(t, filepath.Join(root, "lib", "generated", "routes.gr.dart"), "")
		writeTestFile(t, filepath.Join(root, "lib", "main.dart"), "")

		got, err := adapter.ListFilesMatching(m.Path(root), "**/routes.gr.dart", nil, 0)
		if err != nil {
			t.Fatalf("ListFilesMatching() error = %v", err)
		}

		want := []m.Path{
			m.Path(filepath.Join(root, "lib", "app", "routes.gr.dart")),
			m.Path(filepath.Join(root, "lib", "generated", "routes.gr.dart")),
			m.Path(filepath.Join(root, "lib", "routes.gr.dart")),
		}

		if len(got) != len(want) {
			t.Fatalf("ListFilesMatching() = %v, want %v", got, want)
		}

		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("ListFilesMatching()[%d] = %s, want %s", i, got[i], want[i])
			}
		}
	})

	t.Run("matches a file at the root", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "routes.gr.dart"), "")

		got, err := adapter.ListFilesMatching(m.Path(root), "**/routes.gr.dart", nil, 0)
		if err != nil {
			t.Fatalf("ListFilesMatching() error = %v", err)
		}

		if len(got) != 1 || got[0] != m.Path(filepath.Join(root, "routes.gr.dart")) {
			t.Fatalf("ListFilesMatching() = %v, want the root manifest", got)
		}
	})

	t.Run("skips excluded directories", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		for _, dir := range []string{"lib", "build", ".dart_tool/flutter_build", "packages/node_modules/pkg"} {
			mustMkdirAll(t, filepath.Join(root, filepath.FromSlash(dir)))
			writeTestFile(t, filepath.Join(root, filepath.FromSlash(dir), "routes.gr.dart"), "")
		}

		exclude := []string{"**/node_modules/**", "**/.dart_tool/**", "**/build/**"}

		got, err := adapter.ListFilesMatching(m.Path(root), "**/routes.gr.dart", exclude, 0)
		if err != nil {
			t.Fatalf("ListFilesMatching() error = %v", err)
		}

		if len(got) != 1 || got[0] != m.Path(filepath.Join(root, "lib", "routes.gr.dart")) {
			t.Fatalf("ListFilesMatching() = %v, want only lib/routes.gr.dart", got)
		}
	})

	t.Run("stops at max results", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		for _, dir := range []string{"a", "b", "c"} {
			mustMkdirAll(t, filepath.Join(root, dir))
			writeTestFile(t, filepath.Join(root, dir, "routes.gr.dart"), "")
		}

		got, err := adapter.ListFilesMatching(m.Path(root), "**/routes.gr.dart", nil, 2)
		if err != nil {
			t.Fatalf("ListFilesMatching() error = %v", err)
		}

		if len(got) != 2 {
			t.Fatalf("ListFilesMatching() returned %d paths, want 2", len(got))
		}
	})

	t.Run("rejects invalid patterns", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		if _, err := adapter.ListFilesMatching(m.Path(t.TempDir()), "[", nil, 0); err == nil {
			t.Fatalf("ListFilesMatching() expected error for invalid pattern")
		}

		if _, err := adapter.ListFilesMatching(m.Path(t.TempDir()), "**/*.dart", []string{"{"}, 0); err == nil {
			t.Fatalf("ListFilesMatching() expected error for invalid exclude")
		}
	})

	t.Run("missing root is a scan error", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		missing := filepath.Join(t.TempDir(), "missing")
		if _, err := adapter.ListFilesMatching(m.Path(missing), "**/*.dart", nil, 0); err == nil {
			t.Fatalf("ListFilesMatching() expected error for missing root")
		}
	})
}

func TestLocalSourceFSAdapter_ListDirs(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	mustMkdirAll(t, filepath.Join(root, "lib", "screens"))
	mustMkdirAll(t, filepath.Join(root, "build", "cache"))
	mustMkdirAll(t, filepath.Join(root, "packages", "shop", "build"))
	writeTestFile(t, filepath.Join(root, "lib", "routes.gr.dart"), "")

	got, err := adapter.ListDirs(m.Path(root), []string{"**/build/**"})
	if err != nil {
		t.Fatalf("ListDirs() error = %v", err)
	}

	want := []m.Path{
		m.Path(root),
		m.Path(filepath.Join(root, "lib")),
		m.Path(filepath.Join(root, "lib", "screens")),
		m.Path(filepath.Join(root, "packages")),
		m.Path(filepath.Join(root, "packages", "shop")),
	}

	if len(got) != len(want) {
		t.Fatalf("ListDirs() = %v, want %v", got, want)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ListDirs()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestDirExcluded(t *testing.T) {
	root := m.Path("/project")
	exclude := []string{"**/build/**", "**/.dart_tool/**"}

	tests := []struct {
		dir  string
		want bool
	}{
		{filepath.Join("/project", "build"), true},
		{filepath.Join("/project", "packages", "shop", ".dart_tool"), true},
		{filepath.Join("/project", "packages", "new"), false},
		{"/project", false},
		{filepath.Join("/elsewhere", "build"), false},
	}

	for _, tt := range tests {
		if got := DirExcluded(root, m.Path(tt.dir), exclude); got != tt.want {
			t.Errorf("DirExcluded(%q) = %v, want %v", tt.dir, got, tt.want)
		}
	}
}

func TestLocalSourceFSAdapter_Exists(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	file := filepath.Join(root, "home_screen.dart")
	writeTestFile(t, file, "class HomeScreen {}\n")

	if !adapter.Exists(m.Path(file)) {
		t.Fatalf("Exists(%s) = false, want true", file)
	}

	if adapter.Exists(m.Path(root)) {
		t.Fatalf("Exists(dir) = true, want false")
	}

	if adapter.Exists(m.Path(filepath.Join(root, "missing.dart"))) {
		t.Fatalf("Exists(missing) = true, want false")
	}

	if adapter.Exists("") {
		t.Fatalf("Exists(\"\") = true, want false")
	}
}

func TestLocalSourceFSAdapter_ReadFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "routes.gr.dart")
	writeTestFile(t, path, "import 'a.dart';\n")

	data, err := adapter.ReadFile(m.Path(path))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if string(data) != "import 'a.dart';\n" {
		t.Fatalf("ReadFile() = %q", data)
	}

	if _, err := adapter.ReadFile(m.Path(filepath.Join(root, "missing"))); err == nil {
		t.Fatalf("ReadFile() expected error for missing file")
	}
}

func TestLocalSourceFSAdapter_FindProjectRoot(t *testing.T) {
	t.Run("walks up to pubspec.yaml", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "pubspec.yaml"), "name: app\n")

		nested := filepath.Join(root, "lib", "screens")
		mustMkdirAll(t, nested)
		file := filepath.Join(nested, "home_screen.dart")
		writeTestFile(t, file, "")

		for _, start := range []string{nested, file} {
			got, err := adapter.FindProjectRoot(m.Path(start))
			if err != nil {
				t.Fatalf("FindProjectRoot(%s) error = %v", start, err)
			}

			if got != m.Path(root) {
				t.Fatalf("FindProjectRoot(%s) = %s, want %s", start, got, root)
			}
		}
	})

	t.Run("falls back to the git worktree", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		if _, err := git.PlainInit(root, false); err != nil {
			t.Fatalf("git init: %v", err)
		}

		nested := filepath.Join(root, "lib")
		mustMkdirAll(t, nested)

		got, err := adapter.FindProjectRoot(m.Path(nested))
		if err != nil {
			t.Fatalf("FindProjectRoot() error = %v", err)
		}

		if resolved(t, string(got)) != resolved(t, root) {
			t.Fatalf("FindProjectRoot() = %s, want %s", got, root)
		}
	})
}

func TestLocalSourceFSAdapter_PathHelpers(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	joined := adapter.JoinPath("root", "lib", "routes.gr.dart")
	if joined != m.Path(filepath.Join("root", "lib", "routes.gr.dart")) {
		t.Fatalf("JoinPath() = %s", joined)
	}

	rel, err := adapter.RelPath(m.Path("root"), joined)
	if err != nil {
		t.Fatalf("RelPath() error = %v", err)
	}

	if rel != m.Path(filepath.Join("lib", "routes.gr.dart")) {
		t.Fatalf("RelPath() = %s", rel)
	}
}

func TestStaticWorkspace(t *testing.T) {
	ws := NewStaticWorkspace("", "/a", "", "/b")

	folders := ws.Folders()
	if len(folders) != 2 || folders[0] != "/a" || folders[1] != "/b" {
		t.Fatalf("Folders() = %v, want [/a /b]", folders)
	}

	if len(NewStaticWorkspace().Folders()) != 0 {
		t.Fatalf("empty workspace has folders")
	}
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func mustMkdirAll(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("failed to create dir %s: %v", path, err)
	}
}

func resolved(t *testing.T, path string) string {
	t.Helper()

	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatalf("failed to resolve %s: %v", path, err)
	}

	return target
}
