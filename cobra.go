package colorfulversion

import "github.com/spf13/cobra"

// AttachVersionFlag enables cobra's --version flag on root and replaces
// the default version template with the colored rendering of info, so
// `app --version` prints the branded line and returns without running
// the command. The rendering is captured when the flag is attached;
// color capability is therefore decided at startup, which is when cobra
// applications configure their output anyway.
func AttachVersionFlag(root *cobra.Command, info *Info) {
	root.Version = info.Version()
	root.SetVersionTemplate(info.ColoredString() + "\n")
}

// AttachVersionCommand adds a `version` subcommand to root that prints
// the colored rendering of info to the command's output stream.
func AttachVersionCommand(root *cobra.Command, info *Info) {
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information.",
		Long: "Print the application name, version, and author on one line " +
			"with the configured color scheme. Output degrades to plain text " +
			"when the terminal does not support color.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return info.Fprintln(cmd.OutOrStdout())
		},
	})
}
