package utils

import "strings"

// SourceRootMarker is the Maven/Gradle source root every Java tool export
// roots its file paths under.
const SourceRootMarker = "/java/"

const javaExtension = ".java"

// CanonicalClassName converts a tool-specific file path into the dotted class
// identifier used to join records produced by different tools, e.g.
// "/ci/project/src/main/java/com/foo/Bar.java" becomes "com.foo.Bar".
//
// Inputs that do not contain the source root marker are returned unchanged,
// which covers the already-dotted class names of the CK export. Only the first
// occurrence of the marker is used.
func CanonicalClassName(path string) string {
	slashed := strings.ReplaceAll(path, `\`, "/")
	_, rest, found := strings.Cut(slashed, SourceRootMarker)
	if !found {
		return path
	}
	rest = strings.TrimSuffix(rest, javaExtension)
	return strings.ReplaceAll(rest, "/", ".")
}
