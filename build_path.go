package buildmap

import (
	"path"
	"strings"
)

// projectPath normalizes p into a project-relative path that carries the
// "./" marker. The project root itself is ".".
func projectPath(p string) string {
	p = path.Clean(strings.TrimPrefix(p, "/"))
	if p == "." {
		return p
	}
	return "./" + p
}

// joinPath joins ps under the project root. Duplicate or trailing
// separators in any element do not matter.
func joinPath(ps ...string) string {
	var parts []string
	for _, p := range ps {
		parts = append(parts, strings.TrimPrefix(p, "/"))
	}
	return projectPath(path.Join(parts...))
}

// trimProjectPath strips the "./" marker so that a glob or a file name can
// be compared with the other side in canonical form.
func trimProjectPath(p string) string {
	p = path.Clean(strings.TrimPrefix(p, "/"))
	return strings.TrimPrefix(p, "./")
}
