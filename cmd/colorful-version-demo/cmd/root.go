// Package cmd implements the colorful-version-demo CLI: a small greeter
// showing the full library integration, from metadata passing through
// color customization to the version flag and subcommand.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	colorfulversion "github.com/oshokin/colorful-version"
	"github.com/oshokin/colorful-version/internal/logger"
)

// Application metadata lives in the application's own package, never
// inside the library, and can be overridden at build time:
//
//	go build -ldflags "-X github.com/oshokin/colorful-version/cmd/colorful-version-demo/cmd.appVersion=1.2.3"
var (
	appName    = "colorful-version-demo"
	appVersion = "0.1.0"
	appAuthor  = "Oleg Shokin"
)

var (
	// userName is the name to greet.
	userName string
	// userAge is the optional age included in the greeting.
	userAge uint32
	// debugMode enables flag dump logging.
	debugMode bool
	// logLevelName is the requested logging level.
	logLevelName string
	// disableColor forces plain output regardless of terminal support.
	disableColor bool

	// Hex color overrides for the version banner.
	nameFgHex  string
	nameBgHex  string
	versionHex string
	authorHex  string

	// info describes this application for version output.
	info *colorfulversion.Info

	// rootCmd represents the base greeter command.
	rootCmd = &cobra.Command{
		Use:   "colorful-version-demo",
		Short: "Greet someone and show off colorized version output.",
		Long: `A demonstration CLI for the colorful-version library.

The application passes its own name, version, and author to the library
(overridable via ldflags) and wires them into the --version flag and the
version subcommand. The four banner colors can be replaced with the
--name-fg, --name-bg, --version-color, and --author-color flags; invalid
hex values fail the command instead of being silently defaulted.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			level, ok := logger.ParseLogLevel(logLevelName)
			if !ok {
				return fmt.Errorf("unknown log level %q", logLevelName)
			}

			logger.SetLevel(level)

			if disableColor {
				color.NoColor = true
			}

			flags := cmd.Flags()
			if flags.Changed("name-fg") || flags.Changed("name-bg") ||
				flags.Changed("version-color") || flags.Changed("author-color") {
				if _, err := info.WithHexColors(nameFgHex, nameBgHex, versionHex, authorHex); err != nil {
					return fmt.Errorf("configure banner colors: %w", err)
				}
			}

			if err := info.Print(); err != nil {
				return err
			}

			if debugMode {
				logger.Debugf(ctx, "flags: name=%q, age=%d, log-level=%s", userName, userAge, logLevelName)
			}

			fmt.Printf("Hello, %s!\n", userName)

			if userAge > 0 {
				fmt.Printf("You are %d years old.\n", userAge)
			}

			return nil
		},
	}
)

// Execute runs the demo CLI and exits with non-zero status on error.
func Execute() {
	ctx := logger.ToContext(context.Background(), logger.Logger())

	info = colorfulversion.New(appName, appVersion, appAuthor)
	colorfulversion.AttachVersionFlag(rootCmd, info)
	colorfulversion.AttachVersionCommand(rootCmd, info)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger.Errorf(ctx, "command failed: %v", err)
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&userName, "name", "n", "", "name to greet")
	rootCmd.Flags().Uint32Var(&userAge, "age", 0, "age to include in the greeting")
	rootCmd.Flags().BoolVarP(&debugMode, "debug", "d", false, "log parsed flags at debug level")
	rootCmd.Flags().StringVar(&logLevelName, "log-level", "info", "logging level (debug, info, warn, error)")
	rootCmd.Flags().BoolVar(&disableColor, "no-color", false, "disable colored output")

	rootCmd.Flags().StringVar(&nameFgHex, "name-fg", "#FFFFFF", "hex color for the application name")
	rootCmd.Flags().StringVar(&nameBgHex, "name-bg", "#AA00FF", "hex background color behind the application name")
	rootCmd.Flags().StringVar(&versionHex, "version-color", "#FFFF00", "hex color for the version text")
	rootCmd.Flags().StringVar(&authorHex, "author-color", "#00FFFF", "hex color for the author text")

	_ = rootCmd.MarkFlagRequired("name")
}
