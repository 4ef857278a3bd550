package buildmap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"shanhu.io/text/lexing"
)

func TestComposeDefault(t *testing.T) {
	d, errs := Compose(nil)
	require.Nil(t, errs)
	require.NotNil(t, d)

	assert.Equal(t, DefaultVocabulary().Extensions, d.Extensions)
	assert.Equal(t, DefaultVocabulary().Folders, d.Folders)
	assert.Equal(t, &Files{
		Any:                   "*",
		PackageJSON:           "./package.json",
		TypeScriptDefinitions: "./typings/**/*.{ts,tsx}",
		SystemJSConfigDefault: "jspm.conf.js",
	}, d.Files)
	assert.Equal(t, &WebServerNames{Dev: "MDW_DEV", Dist: "MDW_DIST"}, d.WebServerNames)
	assert.Equal(t, &MinifyCSS{KeepSpecialComments: true}, d.MinifyCSS)
	assert.Len(t, d.AutoprefixerBrowsers, 9)
	assert.Equal(t, "ie >= 10", d.AutoprefixerBrowsers[0])
	assert.Equal(t, "bb >= 10", d.AutoprefixerBrowsers[8])
}

func TestComposeTotal(t *testing.T) {
	d := Default()
	for _, g := range d.allGlobs() {
		assert.NotContains(t, g.glob, "..", g.label)
		assert.True(t, strings.HasPrefix(g.glob, "./") ||
			strings.HasPrefix(g.glob, "**/"), "%s: %q", g.label, g.glob)
	}
	for _, r := range []FolderRole{
		Root, Dist, Temp, App, Styles, Scripts, Images, Typings,
		NodeModules, JSPMPackages,
	} {
		assert.Contains(t, d.Folders, r)
	}
	for _, typ := range []AssetType{
		JavaScript, TypeScript, CSS, Sass, HTML, SourceMap,
		PNG, JPG, JPEG, GIF, SVG,
	} {
		assert.Contains(t, d.Extensions, typ)
	}
}

func TestComposeIdempotent(t *testing.T) {
	d1 := Default()
	d2 := Default()
	require.Equal(t, d1, d2)

	d1.Copy.Src.Exclude[0] = "changed"
	d1.WebServerFolders.Dev[0] = "changed"
	d1.Folders[App] = "changed"
	d1.Extensions[CSS] = "changed"
	d1.AutoprefixerBrowsers[0] = "changed"
	d1.Ignore.Scripts[JavaScript][0] = "changed"

	d3 := Default()
	assert.Equal(t, d2, d3)
	assert.Equal(t, "./app/**/*.html", d3.Copy.Src.Exclude[0])
	assert.Equal(t, ".", d3.WebServerFolders.Dev[0])
	assert.Equal(t, "./app", d3.Folders[App])
}

func TestDescriptorClone(t *testing.T) {
	d := Default()
	c := d.Clone()
	require.Equal(t, d, c)

	c.Styles.SrcWithoutVendor.Exclude[0] = "changed"
	c.Images.Src.Include[0] = "changed"
	c.Ignore.Images[PNG][1] = "changed"
	c.MinifyCSS.AggressiveMerging = true
	c.WebServerNames.Dev = "changed"

	assert.Equal(t, Default(), d)
}

func TestComposeConfig(t *testing.T) {
	d, errs := Compose(&Config{
		Extensions: map[AssetType]string{Sass: ".{scss,sass}"},
		Folders: map[FolderRole]string{
			Dist: "./build/",
			App:  "src",
		},
		Bundles: &Bundles{
			JavaScript: "app.min.js",
			VendorCSS:  "third-party.min.css",
		},
		AutoprefixerBrowsers: []string{"last 2 versions"},
		WebServerNames:       &WebServerNames{Dev: "DEV"},
		SystemJSConfig:       "config.js",
	})
	require.Nil(t, errs)

	assert.Equal(t, []string{
		"./src/**/*.css", "./src/**/*.{scss,sass}",
	}, d.Styles.Src.Include)
	assert.Equal(t, []string{
		"./src/styles/vendor.{scss,sass,css}",
		"./src/styles/vendor/**/*.{scss,sass,css}",
	}, d.Styles.SrcVendorOnly.Include)
	assert.Equal(t, "./build/app.min.js", d.JavaScript.DestDist)
	assert.Equal(t, "bundle.min.css", d.Styles.FinalCSSBundleFilename)
	assert.Equal(t, "third-party.min.css", d.Styles.FinalVendorCSSBundlePath)
	assert.Equal(t, "./build/images", d.Images.Dest)
	assert.Equal(t, []string{"./build"}, d.WebServerFolders.Dist)
	assert.Equal(t, []string{".", "./.tmp", "./src"}, d.WebServerFolders.Dev)
	assert.Equal(t, []string{"last 2 versions"}, d.AutoprefixerBrowsers)
	assert.Equal(t, &WebServerNames{Dev: "DEV", Dist: "MDW_DIST"}, d.WebServerNames)
	assert.Equal(t, "config.js", d.Files.SystemJSConfigDefault)
	assert.Contains(t, d.Copy.Src.Exclude, "./src/**/*.{scss,sass}")
}

func TestIsSubPath(t *testing.T) {
	for _, p := range []string{"core/boot.js", "./boot.js", "a/../b.js"} {
		assert.True(t, isSubPath(p), p)
	}
	for _, p := range []string{
		"../x.js", "a/../../x.js", "/x.js", ".", "..", "core/*.js",
	} {
		assert.False(t, isSubPath(p), p)
	}
}

func errStrings(errs []*lexing.Error) []string {
	var ret []string
	for _, e := range errs {
		ret = append(ret, e.Err.Error())
	}
	return ret
}

func TestComposeDefects(t *testing.T) {
	for _, test := range []struct {
		name   string
		config *Config
		want   string
	}{{
		name: "malformed suffix",
		config: &Config{
			Extensions: map[AssetType]string{Sass: ".{scss"},
		},
		want: `asset type "sass"`,
	}, {
		name: "absolute folder",
		config: &Config{
			Folders: map[FolderRole]string{Dist: "/var/www"},
		},
		want: `folder role "dist" has absolute path`,
	}, {
		name: "glob in folder",
		config: &Config{
			Folders: map[FolderRole]string{App: "./app*"},
		},
		want: `folder role "app" has glob characters`,
	}, {
		name:   "bundle path",
		config: &Config{Bundles: &Bundles{CSS: "css/bundle.css"}},
		want:   "not a file name",
	}, {
		name:   "entry escapes temp",
		config: &Config{Bundles: &Bundles{Entry: "../../../etc/x.js"}},
		want:   `boot entry "../../../etc/x.js" is not a path inside`,
	}, {
		name:   "absolute entry",
		config: &Config{Bundles: &Bundles{Entry: "/boot.js"}},
		want:   `boot entry "/boot.js" is not a path inside`,
	}, {
		name:   "entry is temp itself",
		config: &Config{Bundles: &Bundles{Entry: "core/.."}},
		want:   "is not a path inside",
	}, {
		name:   "shared bundle name",
		config: &Config{Bundles: &Bundles{VendorCSS: "bundle.min.css"}},
		want:   "share the name",
	}, {
		name:   "aggressive merging",
		config: &Config{MinifyCSS: &MinifyCSS{AggressiveMerging: true}},
		want:   "aggressiveMerging must be off",
	}} {
		d, errs := Compose(test.config)
		assert.Nil(t, d, test.name)
		require.NotEmpty(t, errs, test.name)
		assert.Contains(
			t, strings.Join(errStrings(errs), "\n"), test.want, test.name,
		)
	}
}

func TestComposeMissingVocabulary(t *testing.T) {
	v := DefaultVocabulary()
	delete(v.Extensions, JPEG)
	delete(v.Folders, Temp)

	d, errs := compose(v, nil)
	assert.Nil(t, d)
	msgs := errStrings(errs)
	assert.Contains(t, msgs, `asset type "jpeg" is not defined`)
	assert.Contains(t, msgs, `folder role "temp" is not defined`)
}

func TestMustComposePanics(t *testing.T) {
	assert.Panics(t, func() {
		MustCompose(&Config{Folders: map[FolderRole]string{Root: "/"}})
	})
	assert.NotPanics(t, func() { Default() })
}
