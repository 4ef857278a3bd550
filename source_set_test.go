package buildmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourceSetMatch(t *testing.T) {
	s := newSourceSet("./app/**/*.{ts,tsx}").without("./app/**/*.d.ts")

	for _, name := range []string{
		"app/main.ts",
		"./app/main.ts",
		"app/views/list.tsx",
	} {
		assert.True(t, s.Match(name), name)
	}
	for _, name := range []string{
		"app/typings/lib.d.ts",
		"app/main.js",
		"node_modules/x/index.ts",
		"main.ts",
	} {
		assert.False(t, s.Match(name), name)
	}
}

func TestSourceSetGlobs(t *testing.T) {
	s := newSourceSet("./app/**/*").without("./app/**/*.html")
	assert.Equal(t, []string{"./app/**/*", "!./app/**/*.html"}, s.Globs())

	// without does not write through to the receiver.
	base := newSourceSet("./a/**/*")
	base.Exclude = make([]string, 0, 4)
	a := base.without("x")
	b := base.without("y")
	assert.Equal(t, []string{"x"}, a.Exclude)
	assert.Equal(t, []string{"y"}, b.Exclude)
}

func TestSourceSetSelect(t *testing.T) {
	s := newSourceSet("./app/**/*.css")
	got := s.Select([]string{"app/b.css", "app/a.css", "app/a.js", "app/b.css"})
	assert.Equal(t, []string{"app/a.css", "app/b.css"}, got)
	assert.Empty(t, s.Select([]string{"dist/a.css"}))
}
