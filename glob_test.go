package buildmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeImages(t *testing.T) {
	c := newComposer(DefaultVocabulary())
	got := c.compose(Images, PNG, JPG, JPEG, GIF, SVG)
	require.Nil(t, c.errList.Errs())
	assert.Equal(t, "./images/**/*.{png,jpg,jpeg,gif,svg}", got)

	// Same input, same output.
	assert.Equal(t, got, c.compose(Images, imageTypes...))
}

func TestComposeSuffix(t *testing.T) {
	c := newComposer(DefaultVocabulary())
	for _, test := range []struct {
		types []AssetType
		want  string
	}{
		{[]AssetType{JavaScript}, ".js"},
		{[]AssetType{TypeScript}, ".{ts,tsx}"},
		{[]AssetType{Sass, CSS}, ".{scss,css}"},
		{[]AssetType{TypeScript, JavaScript}, ".{ts,tsx,js}"},
		{[]AssetType{CSS, CSS}, ".css"},
	} {
		assert.Equal(t, test.want, c.suffix(test.types...), "%v", test.types)
	}
	require.Nil(t, c.errList.Errs())
}

func TestComposeFolderSeparators(t *testing.T) {
	v := DefaultVocabulary()
	v.Folders[App] = "./app/"
	v.Folders[Dist] = "dist//"
	c := newComposer(v)

	assert.Equal(t, "./app/**/*.js", c.compose(App, JavaScript))
	assert.Equal(t, "./dist/**/*.html", c.compose(Dist, HTML))
	assert.Equal(t, "./**/*.map", c.compose(Root, SourceMap))
	require.Nil(t, c.errList.Errs())
}

func TestComposeUndefined(t *testing.T) {
	v := DefaultVocabulary()
	delete(v.Extensions, SVG)
	delete(v.Folders, Images)
	c := newComposer(v)

	c.compose(Images, imageTypes...)
	c.compose(Images, SVG)

	errs := c.errList.Errs()
	require.Len(t, errs, 2, "each defect is reported once")
	assert.Contains(t, errs[0].Err.Error(), `"images"`)
	assert.Contains(t, errs[1].Err.Error(), `"svg"`)
}

func TestSplitSuffix(t *testing.T) {
	for _, test := range []struct {
		s    string
		want []string
	}{
		{".js", []string{"js"}},
		{".{ts,tsx}", []string{"ts", "tsx"}},
		{".d.ts", []string{"d.ts"}},
	} {
		got, err := splitSuffix(test.s)
		require.NoError(t, err, test.s)
		assert.Equal(t, test.want, got, test.s)
	}

	for _, bad := range []string{
		"", ".", "js", ".{ts,tsx", ".{}", ".{ts,}", ".{a,{b}}",
		".j*s", "./js",
	} {
		_, err := splitSuffix(bad)
		assert.Error(t, err, "%q", bad)
	}
}

func TestGlobs(t *testing.T) {
	c := newComposer(DefaultVocabulary())
	g := c.globs()
	require.Nil(t, c.errList.Errs())

	assert.Equal(t, &Globs{
		Any: "**/*",
		Scripts: ScriptGlobs{
			JavaScript: "**/*.js",
			TypeScript: "**/*.{ts,tsx}",
		},
		Styles: StyleGlobs{
			CSS:        "**/*.css",
			Sass:       "**/*.scss",
			Vendor:     "./styles/vendor.{scss,css}",
			VendorTree: "./styles/vendor/**/*.{scss,css}",
		},
		Images:     "./images/**/*.{png,jpg,jpeg,gif,svg}",
		HTML:       "**/*.html",
		SourceMaps: "**/*.map",
	}, g)
}

func TestJoinPath(t *testing.T) {
	for _, test := range []struct {
		parts []string
		want  string
	}{
		{[]string{"."}, "."},
		{[]string{".", "package.json"}, "./package.json"},
		{[]string{".", "/package.json"}, "./package.json"},
		{[]string{"./app", "**/*.js"}, "./app/**/*.js"},
		{[]string{"./app/", "/**/*.js"}, "./app/**/*.js"},
		{[]string{"./dist", "./images"}, "./dist/images"},
		{[]string{"app", "./images/**/*.png"}, "./app/images/**/*.png"},
	} {
		assert.Equal(t, test.want, joinPath(test.parts...), "%v", test.parts)
	}
}
