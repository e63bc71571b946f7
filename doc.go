// Package colorfulversion renders an application's name, version, and
// author as a single colorized line ("myapp v1.0.0 by John Doe") and
// wires that rendering into cobra's --version flag and a `version`
// subcommand.
//
// Colors are configured per field (name foreground, name background,
// version text, author text) from hex strings or RGB values. ANSI output
// and terminal capability detection (NO_COLOR, TTY checks) are delegated
// to github.com/fatih/color; when color is unsupported the rendering
// degrades to plain text with identical content.
//
// # Supplying metadata
//
// The library never guesses which application is calling it: there is no
// constructor that reads "the current project's" metadata on the
// caller's behalf, because a library function has no way to know whose
// binary it was linked into at its own definition site. The consuming
// application owns its metadata and passes it in explicitly, in one of
// three ways:
//
//   - literal strings: New("myapp", "1.0.0", "John Doe");
//   - package-level variables in the application's own package,
//     overridden at build time, e.g.
//     go build -ldflags "-X main.version=1.2.3";
//   - the application reads its own build information and hands it over:
//     bi, _ := debug.ReadBuildInfo()
//     info := colorfulversion.NewFromBuildInfo(bi, "John Doe")
//
// Either way the metadata is resolved in the caller's compilation unit,
// so two applications embedding this library always report their own
// names and versions.
package colorfulversion
