package cli

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm/domcmp/internal/config"
	"github.com/pthm/domcmp/lib/dom"
)

func golden(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestRunTextTrace(t *testing.T) {
	out, _, err := execute(t, config.Config{}, "run", "testdata/cart.yaml")
	require.NoError(t, err)
	golden(t).Assert(t, "run", []byte(out))
}

func TestRunJSONTrace(t *testing.T) {
	out, _, err := execute(t, config.Config{}, "--format", "json", "run", "testdata/unselected.yaml")
	require.NoError(t, err)
	golden(t).Assert(t, "run_json", []byte(out))
}

func TestRunStrictRejectsUnselectedRoot(t *testing.T) {
	out, _, err := execute(t, config.Config{}, "run", "--strict", "testdata/unselected.yaml")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "floating")
	assert.Equal(t, "enable cart\n", out)
}

func TestRunStepFailureKeepsTrace(t *testing.T) {
	out, _, err := execute(t, config.Config{}, "run", "testdata/broken.yaml")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.ErrorIs(t, err, dom.ErrNoMatch)
	assert.Equal(t, "enable cart\n", out)
}

func TestRunPageOverride(t *testing.T) {
	out, _, err := execute(t, config.Config{}, "run", "--page", "testdata/missing.html", "testdata/cart.yaml")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Empty(t, out)
}

func TestRunMissingManifest(t *testing.T) {
	_, _, err := execute(t, config.Config{}, "run", "testdata/absent.yaml")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestRunVerboseLogs(t *testing.T) {
	_, errOut, err := execute(t, config.Config{}, "-v", "run", "testdata/unselected.yaml")
	require.NoError(t, err)
	assert.Contains(t, errOut, "playing manifest")
	assert.Contains(t, errOut, "component enabled")
}
