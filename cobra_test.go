package colorfulversion

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func newTestRoot() *cobra.Command {
	return &cobra.Command{
		Use: "demo",
		RunE: func(*cobra.Command, []string) error {
			return nil
		},
	}
}

// TestAttachVersionFlag checks that --version prints the rendered line
// and short-circuits command execution.
func TestAttachVersionFlag(t *testing.T) {
	withColorOutput(t, false)

	info := New("demo", "1.2.3", "Dev")
	root := newTestRoot()
	AttachVersionFlag(root, info)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"--version"})

	require.NoError(t, root.Execute())
	require.Equal(t, "demo v1.2.3 by Dev\n", out.String())
}

// TestAttachVersionFlagColored ensures the flag output keeps the escape
// sequences when color is enabled at attach time.
func TestAttachVersionFlagColored(t *testing.T) {
	withColorOutput(t, true)

	info := New("demo", "1.2.3", "Dev")
	root := newTestRoot()
	AttachVersionFlag(root, info)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"--version"})

	require.NoError(t, root.Execute())
	require.Contains(t, out.String(), "\x1b[")
	require.Equal(t, "demo v1.2.3 by Dev\n", stripANSI(out.String()))
}

// TestAttachVersionCommand checks the `version` subcommand writes to the
// command's output stream.
func TestAttachVersionCommand(t *testing.T) {
	withColorOutput(t, false)

	info := New("demo", "1.2.3", "Dev")
	root := newTestRoot()
	AttachVersionCommand(root, info)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	require.Equal(t, "demo v1.2.3 by Dev\n", out.String())
}
