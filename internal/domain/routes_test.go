package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"routefinder.dev/pkg/routefinder/internal/adapter"
	"routefinder.dev/pkg/routefinder/internal/domain/mocks"
	m "routefinder.dev/pkg/routefinder/internal/model"
)

func TestManifestRoutes(t *testing.T) {
	root := t.TempDir()
	first := writeProjectFile(t, root, "lib/routes.gr.dart",
		"class HomeRoute extends PageRouteInfo {}\nclass SettingsRoute extends PageRouteInfo {}\n")
	second := writeProjectFile(t, root, "modules/routes.gr.dart",
		"class HomeRoute extends PageRouteInfo {}\nclass CartRoute extends PageRouteInfo {}\n")

	routes, err := ManifestRoutes(adapter.NewLocalSourceFSAdapter(), []m.Path{first, second}, DefaultNaming())
	require.NoError(t, err)

	names := make([]string, 0, len(routes))
	for _, route := range routes {
		names = append(names, route.Route)
	}

	assert.Equal(t, []string{"HomeRoute", "SettingsRoute", "CartRoute"}, names)
}

func TestManifestRoutes_Errors(t *testing.T) {
	fsAdapter := adapter.NewLocalSourceFSAdapter()

	_, err := ManifestRoutes(fsAdapter, nil, DefaultNaming())
	assert.ErrorIs(t, err, ErrManifestNotFound)

	_, err = ManifestRoutes(fsAdapter, []m.Path{m.Path(t.TempDir() + "/missing.gr.dart")}, DefaultNaming())
	assert.ErrorIs(t, err, ErrManifestUnreadable)
}

func TestResolveRoutes(t *testing.T) {
	resolver := mocks.NewMockResolver(t)
	resolver.On("Diagnose", "HomeScreen").Return(m.Path("/project/lib/home_screen.dart"), nil)
	resolver.On("Diagnose", "CartScreen").Return(m.Path(""), errors.New("no matching import"))

	got := ResolveRoutes(resolver, []m.RouteDeclaration{
		{Route: "HomeRoute", Widget: "HomeScreen"},
		{Route: "CartRoute", Widget: "CartScreen"},
	})

	require.Len(t, got, 2)
	assert.Equal(t, m.Resolution{Entity: "HomeScreen", Route: "HomeRoute", Path: "/project/lib/home_screen.dart", Found: true}, got[0])
	assert.False(t, got[1].Found)
	assert.Equal(t, "no matching import", got[1].Reason)
}
