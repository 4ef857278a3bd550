package buildmap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExcludeFor(t *testing.T) {
	c := newComposer(DefaultVocabulary())
	got := c.excludeFor(JavaScript, TypeScript)
	require.Nil(t, c.errList.Errs())

	assert.Equal(t, []string{
		"./node_modules/**/*.js",
		"./jspm_packages/**/*.js",
		"./node_modules/**/*.{ts,tsx}",
		"./jspm_packages/**/*.{ts,tsx}",
	}, got)
}

func TestIgnoreAnchoring(t *testing.T) {
	c := newComposer(DefaultVocabulary())
	ig := c.ignore()
	require.Nil(t, c.errList.Errs())

	assert.Len(t, ig.Images, len(imageTypes))
	assert.Equal(t, []string{
		"./node_modules/**/*.map",
		"./jspm_packages/**/*.map",
	}, ig.SourceMaps[SourceMap])

	for _, set := range []IgnoreSet{
		ig.Scripts, ig.Styles, ig.Images, ig.HTML, ig.SourceMaps,
	} {
		for typ, globs := range set {
			require.Len(t, globs, len(dependencyFolders), typ)
			for _, g := range globs {
				assert.True(t, strings.HasPrefix(g, "./"), g)
			}
		}
	}
}
