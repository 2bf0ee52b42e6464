package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "routefinder.dev/pkg/routefinder/internal/model"
)

func TestManifestsCmd_IndexesAndSkipsBuildOutput(t *testing.T) {
	cmd, out, _ := newTestRootCmd(t, newManifestsCmd())
	cmd.SetArgs([]string{"manifests", "--root", modularExample, "--format", "json"})

	require.NoError(t, cmd.Execute())

	var set m.ManifestSet
	require.NoError(t, json.Unmarshal(out.Bytes(), &set))

	primary := m.Path(examplePath(t, modularExample, "lib", "routes.gr.dart"))
	shop := m.Path(examplePath(t, modularExample, "packages", "shop", "lib", "routes.gr.dart"))

	assert.Equal(t, m.Path(examplePath(t, modularExample)), set.Root)
	assert.Equal(t, primary, set.Primary)
	assert.Equal(t, []m.Path{primary, shop}, set.Indexed)
}

func TestManifestsCmd_Text(t *testing.T) {
	cmd, out, _ := newTestRootCmd(t, newManifestsCmd())
	cmd.SetArgs([]string{"manifests", "--root", basicExample})

	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "Indexed: 1\n")
	assert.Contains(t, out.String(), "  lib/routes.gr.dart\n")
}
