package colorfulversion

import (
	"fmt"
	"io"
	"os"
	"path"
	"runtime/debug"

	"github.com/fatih/color"
)

// Default color scheme: white name on purple, yellow version, cyan author.
var (
	defaultNameForeground = Color{R: 255, G: 255, B: 255} // #FFFFFF
	defaultNameBackground = Color{R: 170, G: 0, B: 255}   // #AA00FF
	defaultVersionColor   = Color{R: 255, G: 255, B: 0}   // #FFFF00
	defaultAuthorColor    = Color{R: 0, G: 255, B: 255}   // #00FFFF
)

// Fallbacks for NewFromBuildInfo when the build information carries no
// usable module path or version (local `go run`, test binaries).
const (
	unknownName    = "unknown"
	develVersion   = "dev"
	develBuildMark = "(devel)"
)

// Info describes an application for version output: its name, version,
// and author, plus the color applied to each field. The three text
// fields are fixed at construction; colors may be replaced wholesale
// through WithHexColors or WithRGBColors.
type Info struct {
	name    string
	version string
	author  string

	nameForeground Color
	nameBackground Color
	versionColor   Color
	authorColor    Color
}

// New builds an Info with the default color scheme. It accepts any
// strings and never fails.
func New(name, version, author string) *Info {
	return &Info{
		name:           name,
		version:        version,
		author:         author,
		nameForeground: defaultNameForeground,
		nameBackground: defaultNameBackground,
		versionColor:   defaultVersionColor,
		authorColor:    defaultAuthorColor,
	}
}

// NewFromBuildInfo builds an Info from build information the caller read
// itself, typically via runtime/debug.ReadBuildInfo. The name is the
// base element of the main module path and the version is the main
// module version. Build information has no author field, so the author
// is passed explicitly.
func NewFromBuildInfo(bi *debug.BuildInfo, author string) *Info {
	name, version := unknownName, develVersion

	if bi != nil {
		if bi.Main.Path != "" {
			name = path.Base(bi.Main.Path)
		}

		if bi.Main.Version != "" && bi.Main.Version != develBuildMark {
			version = bi.Main.Version
		}
	}

	return New(name, version, author)
}

// WithHexColors replaces all four colors from hex strings (see ParseHex
// for accepted forms). The update is all-or-nothing: every string is
// parsed before any field is assigned, so a failed call leaves the
// receiver's colors exactly as they were and returns the parse error.
func (i *Info) WithHexColors(nameFg, nameBg, versionColor, authorColor string) (*Info, error) {
	fg, err := ParseHex(nameFg)
	if err != nil {
		return nil, err
	}

	bg, err := ParseHex(nameBg)
	if err != nil {
		return nil, err
	}

	vc, err := ParseHex(versionColor)
	if err != nil {
		return nil, err
	}

	ac, err := ParseHex(authorColor)
	if err != nil {
		return nil, err
	}

	i.nameForeground, i.nameBackground, i.versionColor, i.authorColor = fg, bg, vc, ac

	return i, nil
}

// WithRGBColors replaces all four colors. It never fails since Color
// values are valid by construction.
func (i *Info) WithRGBColors(nameFg, nameBg, versionColor, authorColor Color) *Info {
	i.nameForeground = nameFg
	i.nameBackground = nameBg
	i.versionColor = versionColor
	i.authorColor = authorColor

	return i
}

// Name returns the application name.
func (i *Info) Name() string {
	return i.name
}

// Version returns the version string.
func (i *Info) Version() string {
	return i.version
}

// Author returns the author string.
func (i *Info) Author() string {
	return i.author
}

// NameForeground returns the color applied to the name text.
func (i *Info) NameForeground() Color {
	return i.nameForeground
}

// NameBackground returns the background color behind the name text.
func (i *Info) NameBackground() Color {
	return i.nameBackground
}

// VersionColor returns the color applied to the version text.
func (i *Info) VersionColor() Color {
	return i.versionColor
}

// AuthorColor returns the color applied to the author text.
func (i *Info) AuthorColor() Color {
	return i.authorColor
}

// PlainString renders "{name} v{version} by {author}" with no escape
// sequences.
func (i *Info) PlainString() string {
	return fmt.Sprintf("%s v%s by %s", i.name, i.version, i.author)
}

// String implements fmt.Stringer and is equivalent to PlainString.
func (i *Info) String() string {
	return i.PlainString()
}

// ColoredString renders the same content as PlainString with 24-bit ANSI
// sequences applied per field. When color output is disabled (NO_COLOR,
// a non-terminal stream, or color.NoColor set by hand) the result equals
// PlainString byte for byte.
func (i *Info) ColoredString() string {
	name := rgb(i.nameForeground).
		AddBgRGB(int(i.nameBackground.R), int(i.nameBackground.G), int(i.nameBackground.B)).
		Sprint(i.name)

	version := rgb(i.versionColor).Sprintf(" v%s", i.version)
	author := rgb(i.authorColor).Sprintf(" by %s", i.author)

	return name + version + author
}

// Fprintln writes the colored rendering plus a trailing newline to w.
func (i *Info) Fprintln(w io.Writer) error {
	if _, err := fmt.Fprintln(w, i.ColoredString()); err != nil {
		return fmt.Errorf("write version: %w", err)
	}

	return nil
}

// Print writes the colored rendering plus a trailing newline to standard
// output through color.Output, which keeps ANSI handling correct on
// Windows consoles.
func (i *Info) Print() error {
	return i.Fprintln(color.Output)
}

// PrintAndExit prints the version line and terminates the process with
// exit code 0. A write failure is reported to standard error before
// exiting. This is the only function in the package that does not
// return to its caller.
func (i *Info) PrintAndExit() {
	if err := i.Print(); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	os.Exit(0)
}

// rgb builds a truecolor foreground attribute for c.
func rgb(c Color) *color.Color {
	return color.RGB(int(c.R), int(c.G), int(c.B))
}
