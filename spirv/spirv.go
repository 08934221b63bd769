package spirv

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/spvgen/ir"
)

// Version represents a SPIR-V version.
type Version struct {
	Major uint8
	Minor uint8
}

// Common SPIR-V versions
var (
	Version1_0 = Version{1, 0}
	Version1_1 = Version{1, 1}
	Version1_2 = Version{1, 2}
	Version1_3 = Version{1, 3}
	Version1_4 = Version{1, 4}
	Version1_5 = Version{1, 5}
	Version1_6 = Version{1, 6}
)

// String returns the version as "major.minor".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// AtLeast reports whether v is the same as or newer than o.
func (v Version) AtLeast(o Version) bool {
	if v.Major != o.Major {
		return v.Major > o.Major
	}
	return v.Minor >= o.Minor
}

// ParseVersion parses "1.5" style version strings.
func ParseVersion(s string) (Version, error) {
	var v Version
	if _, err := fmt.Sscanf(s, "%d.%d", &v.Major, &v.Minor); err != nil {
		return Version{}, fmt.Errorf("spirv: invalid version %q", s)
	}
	if v.Major != 1 || v.Minor > 6 {
		return Version{}, fmt.Errorf("spirv: unsupported version %s", v)
	}
	return v, nil
}

// Options configures SPIR-V generation.
type Options struct {
	// Version is the SPIR-V version to target. From 1.4 on, the entry
	// point interface lists every global variable, not only inputs and
	// outputs.
	Version Version

	// StreamOutput describes transform feedback captures, if any.
	StreamOutput *ir.StreamOutput

	// Debug emits OpName for variables and types.
	Debug bool

	// Logger receives debug events. Nil discards them.
	Logger *slog.Logger
}

// DefaultOptions returns sensible default options.
func DefaultOptions() Options {
	return Options{
		Version: Version1_3,
		Debug:   false,
	}
}

// SPIR-V magic number and constants
const (
	MagicNumber = 0x07230203
	GeneratorID = 0x00000000 // Unregistered generator
)
