// -- cmd/cmd_test.go --
package cmd

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xkilldash9x/formpilot-cli/api/schemas"
)

func TestNormalizeTargets(t *testing.T) {
	got := normalizeTargets([]string{
		"example.com/survey",
		"http://plain.test",
		"https://secure.test/form",
	})
	assert.Equal(t, []string{
		"https://example.com/survey",
		"http://plain.test",
		"https://secure.test/form",
	}, got)
}

func newFlaggedCmd(in *profileInput) *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	profileFlags(cmd, in)
	return cmd
}

func TestProfileInput_ApplyOnlyChangedFlags(t *testing.T) {
	var in profileInput
	cmd := newFlaggedCmd(&in)
	require.NoError(t, cmd.Flags().Set("email", "new@example.com"))

	p := &schemas.Profile{Name: "Jordan Reyes", Email: "old@example.com", Phone: "555"}
	require.NoError(t, in.apply(cmd, p))

	assert.Equal(t, "new@example.com", p.Email)
	assert.Equal(t, "Jordan Reyes", p.Name, "untouched attributes must survive an edit")
	assert.Equal(t, "555", p.Phone)
}

func TestProfileInput_ApplyCustomFields(t *testing.T) {
	var in profileInput
	cmd := newFlaggedCmd(&in)
	require.NoError(t, cmd.Flags().Set("custom", "Employee ID=E-7"))
	require.NoError(t, cmd.Flags().Set("custom", "Badge=12"))

	p := &schemas.Profile{}
	require.NoError(t, in.apply(cmd, p))

	require.Len(t, p.CustomFields, 2)
	assert.Equal(t, "Employee ID", p.CustomFields[0].Name)
	assert.Equal(t, "E-7", p.CustomFields[0].Value)
}

func TestProfileInput_ApplyRejectsMalformedCustom(t *testing.T) {
	var in profileInput
	cmd := newFlaggedCmd(&in)
	require.NoError(t, cmd.Flags().Set("custom", "no-equals-sign"))

	err := in.apply(cmd, &schemas.Profile{})
	assert.ErrorContains(t, err, "invalid --custom value")
}

func TestRootCommandWiring(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"fill", "extract", "profile"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}
