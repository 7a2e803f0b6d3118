package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Target is one of the deployable output forms the orchestrator can build.
// Exactly one target is selected per invocation.
type Target int

const (
	// TargetDesktopConsole is a host-platform console executable.
	TargetDesktopConsole Target = iota
	// TargetDesktopBundled is a macOS .app bundle with embedded frameworks.
	TargetDesktopBundled
	// TargetBrowser is the Emscripten/WebAssembly output plus HTML loader.
	TargetBrowser
	// TargetIOS produces static libraries and XCFrameworks consumed by an
	// Xcode host project.
	TargetIOS
	// TargetAndroid produces dynamic libraries placed into a Gradle host
	// project's jniLibs tree.
	TargetAndroid
)

// Targets lists every supported target in declaration order.
func Targets() []Target {
	return []Target{
		TargetDesktopConsole,
		TargetDesktopBundled,
		TargetBrowser,
		TargetIOS,
		TargetAndroid,
	}
}

// ParseTarget normalizes a command-line target selector. The mobile targets
// additionally accept the generic mobile-a/mobile-b aliases.
func ParseTarget(s string) (Target, error) {
	switch strings.ToLower(s) {
	case "desktop-console":
		return TargetDesktopConsole, nil
	case "desktop-bundled":
		return TargetDesktopBundled, nil
	case "browser", "web":
		return TargetBrowser, nil
	case "ios", "mobile-a":
		return TargetIOS, nil
	case "android", "mobile-b":
		return TargetAndroid, nil
	default:
		return 0, zerr.With(ErrUnknownTarget, "target", s)
	}
}

// ID returns the canonical selector, which doubles as the target home
// directory name under the project root.
func (t Target) ID() string {
	switch t {
	case TargetDesktopBundled:
		return "desktop-bundled"
	case TargetBrowser:
		return "browser"
	case TargetIOS:
		return "ios"
	case TargetAndroid:
		return "android"
	default:
		return "desktop-console"
	}
}

// String implements fmt.Stringer.
func (t Target) String() string {
	return t.ID()
}
