package domain

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"routefinder.dev/pkg/routefinder/internal/adapter"
	adaptermocks "routefinder.dev/pkg/routefinder/internal/adapter/mocks"
	"routefinder.dev/pkg/routefinder/internal/domain/mocks"
	m "routefinder.dev/pkg/routefinder/internal/model"
)

func newTestResolver(root string, opts ...ResolverOption) (Resolver, Locator) {
	locator := newTestLocator(root)

	return NewResolver(locator, adapter.NewLocalSourceFSAdapter(), opts...), locator
}

func TestResolver_ResolvesPackageImport(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, "lib/routes.gr.dart",
		"import 'package:auto_route/auto_route.dart';\n"+
			"import 'package:app/features/home/home_screen.dart';\n")
	want := writeProjectFile(t, root, "lib/features/home/home_screen.dart", "class HomeScreen extends StatelessWidget {}\n")

	resolver, _ := newTestResolver(root)

	got, ok := resolver.ResolveEntityPath("HomeScreen")
	require.True(t, ok)
	assert.Equal(t, want, got)
	assert.True(t, filepath.IsAbs(string(got)))
}

func TestResolver_NoProjectRoot(t *testing.T) {
	resolver, _ := newTestResolver("")

	_, ok := resolver.ResolveEntityPath("HomeScreen")
	assert.False(t, ok)

	_, err := resolver.Diagnose("HomeScreen")
	assert.ErrorIs(t, err, ErrNoProjectRoot)
}

func TestResolver_ManifestNotFound(t *testing.T) {
	resolver, _ := newTestResolver(t.TempDir())

	_, err := resolver.Diagnose("HomeScreen")
	assert.ErrorIs(t, err, ErrManifestNotFound)
}

func TestResolver_ManifestWithoutImports(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, "lib/routes.gr.dart", "class HomeRoute extends PageRouteInfo {}\n")
	writeProjectFile(t, root, "lib/home_screen.dart", "")

	resolver, _ := newTestResolver(root)

	_, ok := resolver.ResolveEntityPath("HomeScreen")
	assert.False(t, ok)

	_, err := resolver.Diagnose("HomeScreen")
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestResolver_IgnoresUntrackedFiles(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, "lib/routes.gr.dart", "import 'package:app/settings/settings_screen.dart';\n")
	writeProjectFile(t, root, "lib/settings/settings_screen.dart", "")
	writeProjectFile(t, root, "lib/home/home_screen.dart", "")

	resolver, _ := newTestResolver(root)

	_, ok := resolver.ResolveEntityPath("HomeScreen")
	assert.False(t, ok)
}

func TestResolver_FirstMatchingImportWins(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, "lib/routes.gr.dart",
		"import 'package:app/a/home_screen.dart';\n"+
			"import 'package:app/b/home_screen.dart';\n")
	want := writeProjectFile(t, root, "lib/a/home_screen.dart", "")
	writeProjectFile(t, root, "lib/b/home_screen.dart", "")

	resolver, _ := newTestResolver(root)

	got, ok := resolver.ResolveEntityPath("HomeScreen")
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestResolver_MatchIsSubstring(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, "lib/routes.gr.dart", "import 'package:app/my_home_screen_v2.dart';\n")
	want := writeProjectFile(t, root, "lib/my_home_screen_v2.dart", "")

	resolver, _ := newTestResolver(root)

	got, ok := resolver.ResolveEntityPath("HomeScreen")
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestResolver_SkipsMatchesWithoutFile(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, "lib/routes.gr.dart",
		"import 'package:app/old/home_screen.dart';\n"+
			"import 'screens/home_screen.dart';\n")
	want := writeProjectFile(t, root, "lib/screens/home_screen.dart", "")

	resolver, _ := newTestResolver(root)

	got, ok := resolver.ResolveEntityPath("HomeScreen")
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestResolver_ProceedsToLaterManifest(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, "lib/routes.gr.dart", "import 'package:app/old/home_screen.dart';\n")
	writeProjectFile(t, root, "modules/shop/routes.gr.dart", "import './home_screen.dart';\n")
	want := writeProjectFile(t, root, "modules/shop/home_screen.dart", "")

	resolver, locator := newTestResolver(root)
	require.Len(t, locator.IndexManifests(), 2)

	got, ok := resolver.ResolveEntityPath("HomeScreen")
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestResolver_ResolvesImportVariants(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
		specLine string
		file     string
	}{
		{"relative", "lib/app/routes.gr.dart", `import "../screens/home_screen.dart";`, "lib/screens/home_screen.dart"},
		{"lib prefixed", "lib/routes.gr.dart", `import 'lib/screens/home_screen.dart';`, "lib/screens/home_screen.dart"},
		{"bare", "lib/routes.gr.dart", `import 'screens/home_screen.dart' as _i3;`, "lib/screens/home_screen.dart"},
		{"deferred alias", "lib/routes.gr.dart", `import 'package:app/home_screen.dart' deferred as home;`, "lib/home_screen.dart"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeProjectFile(t, root, tt.manifest, tt.specLine+"\n")
			want := writeProjectFile(t, root, tt.file, "")

			resolver, _ := newTestResolver(root)

			got, ok := resolver.ResolveEntityPath("HomeScreen")
			require.True(t, ok)
			assert.Equal(t, want, got)
		})
	}
}

func TestResolver_EmptyEntity(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, "lib/routes.gr.dart", "import 'package:app/home_screen.dart';\n")
	writeProjectFile(t, root, "lib/home_screen.dart", "")

	resolver, _ := newTestResolver(root)

	path, err := resolver.Diagnose("")
	assert.ErrorIs(t, err, ErrNoMatch)
	assert.Empty(t, path)

	_, ok := resolver.ResolveEntityPath("")
	assert.False(t, ok)
}

func TestResolver_ReadsManifestsLazily(t *testing.T) {
	locator := mocks.NewMockLocator(t)
	fsAdapter := adaptermocks.NewMockSourceFSAdapter(t)

	root := m.Path("/project")
	first := m.Path("/project/lib/routes.gr.dart")
	second := m.Path("/project/modules/routes.gr.dart")
	screen := m.Path(filepath.Join("/project", "lib", "home_screen.dart"))

	locator.On("ProjectRoot").Return(root, true)
	locator.On("Candidates").Return([]m.Path{first, second})
	fsAdapter.On("ReadFile", first).Return([]byte("import 'package:app/home_screen.dart';\n"), nil)
	fsAdapter.On("Exists", screen).Return(true)

	resolver := NewResolver(locator, fsAdapter)

	got, ok := resolver.ResolveEntityPath("HomeScreen")
	require.True(t, ok)
	assert.Equal(t, screen, got)
	fsAdapter.AssertNotCalled(t, "ReadFile", second)
}

func TestResolver_SkipsUnreadableManifests(t *testing.T) {
	locator := mocks.NewMockLocator(t)
	fsAdapter := adaptermocks.NewMockSourceFSAdapter(t)

	root := m.Path("/project")
	broken := m.Path("/project/lib/routes.gr.dart")
	good := m.Path("/project/modules/routes.gr.dart")
	screen := m.Path(filepath.Join("/project", "lib", "home_screen.dart"))

	locator.On("ProjectRoot").Return(root, true)
	locator.On("Candidates").Return([]m.Path{broken, good})
	fsAdapter.On("ReadFile", broken).Return(nil, errors.New("permission denied"))
	fsAdapter.On("ReadFile", good).Return([]byte("import 'package:app/home_screen.dart';\n"), nil)
	fsAdapter.On("Exists", screen).Return(true)

	resolver := NewResolver(locator, fsAdapter)

	got, err := resolver.Diagnose("HomeScreen")
	require.NoError(t, err)
	assert.Equal(t, screen, got)
}

func TestResolver_AllManifestsUnreadable(t *testing.T) {
	locator := mocks.NewMockLocator(t)
	fsAdapter := adaptermocks.NewMockSourceFSAdapter(t)

	manifest := m.Path("/project/lib/routes.gr.dart")

	locator.On("ProjectRoot").Return(m.Path("/project"), true)
	locator.On("Candidates").Return([]m.Path{manifest})
	fsAdapter.On("ReadFile", manifest).Return(nil, errors.New("permission denied"))

	resolver := NewResolver(locator, fsAdapter)

	_, err := resolver.Diagnose("HomeScreen")
	assert.ErrorIs(t, err, ErrManifestUnreadable)

	_, ok := resolver.ResolveEntityPath("HomeScreen")
	assert.False(t, ok)
}

func TestResolver_FallbackHeuristics(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		file   string
		entity string
	}{
		{"trailing comment names entity", "import 'package:app/views/dashboard.dart'; // HomeScreen", "lib/views/dashboard.dart", "HomeScreen"},
		{"suffix stripped", "import 'package:app/views/home_view.dart';", "lib/views/home_view.dart", "HomeScreen"},
		{"lowercase name", "import 'package:app/views/homescreen.dart';", "lib/views/homescreen.dart", "HomeScreen"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeProjectFile(t, root, "lib/routes.gr.dart", tt.line+"\n")
			want := writeProjectFile(t, root, tt.file, "")

			strict, _ := newTestResolver(root)
			_, ok := strict.ResolveEntityPath(tt.entity)
			assert.False(t, ok, "fallback passes are off by default")

			lenient, _ := newTestResolver(root, WithFallbackHeuristics(true))
			got, ok := lenient.ResolveEntityPath(tt.entity)
			require.True(t, ok)
			assert.Equal(t, want, got)
		})
	}
}

func TestResolver_PrimaryPassBeatsFallback(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, "lib/routes.gr.dart",
		"import 'package:app/views/dashboard.dart'; // HomeScreen\n"+
			"import 'package:app/views/home_screen.dart';\n")
	writeProjectFile(t, root, "lib/views/dashboard.dart", "")
	want := writeProjectFile(t, root, "lib/views/home_screen.dart", "")

	resolver, _ := newTestResolver(root, WithFallbackHeuristics(true))

	got, ok := resolver.ResolveEntityPath("HomeScreen")
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestResolver_ResolveInManifest(t *testing.T) {
	root := t.TempDir()
	want := writeProjectFile(t, root, "lib/home/home_screen.dart", "")
	manifest := m.Path(filepath.Join(root, "lib", "routes.gr.dart"))

	resolver, _ := newTestResolver("")

	got, ok := resolver.ResolveInManifest(m.Path(root), manifest, "import 'package:app/home/home_screen.dart';", "HomeScreen")
	require.True(t, ok)
	assert.Equal(t, want, got)

	_, ok = resolver.ResolveInManifest("", manifest, "import 'package:app/home/home_screen.dart';", "HomeScreen")
	assert.False(t, ok)

	_, ok = resolver.ResolveInManifest(m.Path(root), manifest, "", "HomeScreen")
	assert.False(t, ok)
}
