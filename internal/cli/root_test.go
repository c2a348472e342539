package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm/domcmp/internal/config"
)

// execute runs the root command with args and returns stdout, stderr and
// the command error.
func execute(t *testing.T, env config.Config, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand(env)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand(config.Config{})
	require.NotNil(t, cmd)
	assert.Equal(t, "domcmp", cmd.Use)
	assert.True(t, cmd.SilenceUsage)
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand(config.Config{})
	for _, name := range []string{"run", "attrs", "version"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand(config.Config{})

	verbose := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)
	assert.Equal(t, "false", verbose.DefValue)

	format := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, format)
	assert.Equal(t, "text", format.DefValue)
}

func TestFormatDefaultFromEnv(t *testing.T) {
	cmd := NewRootCommand(config.Config{Format: "json"})
	assert.Equal(t, "json", cmd.PersistentFlags().Lookup("format").DefValue)
}

func TestInvalidFormat(t *testing.T) {
	_, _, err := execute(t, config.Config{}, "--format", "xml", "version")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), `invalid format "xml"`)
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, config.Config{}, "version")
	require.NoError(t, err)
	assert.Equal(t, "domcmp version "+Version+"\n", out)
}

func TestLogLevel(t *testing.T) {
	opts := &RootOptions{env: config.Config{LogLevel: "error"}}
	assert.Equal(t, config.Config{LogLevel: "error"}.Level(), opts.logLevel())

	opts.Verbose = true
	assert.Equal(t, "DEBUG", opts.logLevel().String())
}
