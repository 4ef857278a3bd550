// Copyright (C) 2022  Shanhu Tech Inc.
//
// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the
// Free Software Foundation, either version 3 of the License, or (at your
// option) any later version.
//
// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU Affero General Public License
// for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package buildmap

import (
	"shanhu.io/text/lexing"
)

// Files are fully resolved paths that the orchestrator uses as is.
type Files struct {
	Any                   string `json:"any" yaml:"any"`
	PackageJSON           string `json:"packageJSON" yaml:"packageJSON"`
	TypeScriptDefinitions string `json:"typeScriptDefinitions" yaml:"typeScriptDefinitions"`
	SystemJSConfigDefault string `json:"systemjsConfigDefault" yaml:"systemjsConfigDefault"`
}

const (
	packageJSON           = "package.json"
	defaultSystemJSConfig = "jspm.conf.js"
)

func (c *composer) files(g *Globs, loaderConfig string) *Files {
	if loaderConfig == "" {
		c.errorf("module loader config file name is empty")
	}
	return &Files{
		Any:                   "*",
		PackageJSON:           joinPath(c.folder(Root), packageJSON),
		TypeScriptDefinitions: g.Scripts.TypeScript.under(c.folder(Typings)),
		SystemJSConfigDefault: loaderConfig,
	}
}

// Descriptor is the build topology handed to the build orchestrator. It is
// built once by Compose and must be treated as read-only afterwards; it is
// then safe to share between goroutines. Use Clone to get a copy that can
// be changed.
type Descriptor struct {
	Extensions map[AssetType]string  `json:"extensions" yaml:"extensions"`
	Folders    map[FolderRole]string `json:"folders" yaml:"folders"`

	Globs  *Globs  `json:"globs" yaml:"globs"`
	Ignore *Ignore `json:"ignore" yaml:"ignore"`
	Files  *Files  `json:"files" yaml:"files"`

	WebServerFolders *WebServerFolders `json:"webServerFolders" yaml:"webServerFolders"`
	WebServerNames   *WebServerNames   `json:"webServerNames" yaml:"webServerNames"`

	JavaScript *JavaScriptPipeline `json:"javascript" yaml:"javascript"`
	TypeScript *TypeScriptPipeline `json:"typescript" yaml:"typescript"`
	Styles     *StylesPipeline     `json:"styles" yaml:"styles"`
	Images     *ImagesPipeline     `json:"images" yaml:"images"`
	HTML       *HTMLPipeline       `json:"html" yaml:"html"`
	Copy       *CopyPipeline       `json:"copy" yaml:"copy"`

	AutoprefixerBrowsers []string   `json:"autoprefixerBrowsers" yaml:"autoprefixerBrowsers"`
	MinifyCSS            *MinifyCSS `json:"minifyCss" yaml:"minifyCss"`
}

// Compose builds a descriptor from the built-in vocabulary with the
// overrides of config applied. A nil config composes the defaults.
//
// Any configuration defect aborts the composition: all defects found are
// returned and the descriptor is nil.
func Compose(config *Config) (*Descriptor, []*lexing.Error) {
	return compose(DefaultVocabulary(), config)
}

// compose builds a descriptor on top of vocab, which it takes over.
func compose(vocab *Vocabulary, config *Config) (*Descriptor, []*lexing.Error) {
	if config == nil {
		config = new(Config)
	}

	vocab.merge(&Vocabulary{
		Extensions: config.Extensions,
		Folders:    config.Folders,
	})

	bundles := defaultBundles()
	bundles.merge(config.Bundles)

	minify := defaultMinifyCSS()
	if config.MinifyCSS != nil {
		cp := *config.MinifyCSS
		minify = &cp
	}

	browsers := defaultAutoprefixerBrowsers()
	if config.AutoprefixerBrowsers != nil {
		browsers = cloneStrings(config.AutoprefixerBrowsers)
	}

	names := defaultWebServerNames()
	if n := config.WebServerNames; n != nil {
		if n.Dev != "" {
			names.Dev = n.Dev
		}
		if n.Dist != "" {
			names.Dist = n.Dist
		}
	}

	loaderConfig := defaultSystemJSConfig
	if config.SystemJSConfig != "" {
		loaderConfig = config.SystemJSConfig
	}

	c := newComposer(vocab)
	c.checkBundles(bundles)

	globs := c.globs()
	ps := c.pipelines(globs, bundles)
	d := &Descriptor{
		Extensions: vocab.Extensions,
		Folders:    vocab.Folders,

		Globs:  globs,
		Ignore: c.ignore(),
		Files:  c.files(globs, loaderConfig),

		WebServerFolders: c.webServerFolders(),
		WebServerNames:   names,

		JavaScript: ps.JavaScript,
		TypeScript: ps.TypeScript,
		Styles:     ps.Styles,
		Images:     ps.Images,
		HTML:       ps.HTML,
		Copy:       ps.Copy,

		AutoprefixerBrowsers: browsers,
		MinifyCSS:            minify,
	}
	if errs := c.errList.Errs(); errs != nil {
		return nil, errs
	}

	if errs := Check(d); errs != nil {
		return nil, errs
	}
	return d, nil
}

// MustCompose is like Compose but panics on configuration defects.
func MustCompose(config *Config) *Descriptor {
	d, errs := Compose(config)
	if errs != nil {
		panic(errs[0])
	}
	return d
}

// Default returns a descriptor of the built-in vocabulary.
func Default() *Descriptor { return MustCompose(nil) }

// Clone returns a deep copy of the descriptor.
func (d *Descriptor) Clone() *Descriptor {
	vocab := (&Vocabulary{
		Extensions: d.Extensions,
		Folders:    d.Folders,
	}).Clone()

	ret := &Descriptor{
		Extensions:           vocab.Extensions,
		Folders:              vocab.Folders,
		AutoprefixerBrowsers: cloneStrings(d.AutoprefixerBrowsers),
	}
	if d.Globs != nil {
		g := *d.Globs
		ret.Globs = &g
	}
	if d.Ignore != nil {
		ret.Ignore = &Ignore{
			Scripts:    d.Ignore.Scripts.clone(),
			Styles:     d.Ignore.Styles.clone(),
			Images:     d.Ignore.Images.clone(),
			HTML:       d.Ignore.HTML.clone(),
			SourceMaps: d.Ignore.SourceMaps.clone(),
		}
	}
	if d.Files != nil {
		f := *d.Files
		ret.Files = &f
	}
	if d.WebServerFolders != nil {
		ret.WebServerFolders = &WebServerFolders{
			Dev:  cloneStrings(d.WebServerFolders.Dev),
			Dist: cloneStrings(d.WebServerFolders.Dist),
		}
	}
	if d.WebServerNames != nil {
		n := *d.WebServerNames
		ret.WebServerNames = &n
	}
	if d.JavaScript != nil {
		p := *d.JavaScript
		p.Src = p.Src.clone()
		ret.JavaScript = &p
	}
	if d.TypeScript != nil {
		p := *d.TypeScript
		p.SrcAppOnly = p.SrcAppOnly.clone()
		ret.TypeScript = &p
	}
	if d.Styles != nil {
		p := *d.Styles
		p.Src = p.Src.clone()
		p.SrcVendorOnly = p.SrcVendorOnly.clone()
		p.SrcWithoutVendor = p.SrcWithoutVendor.clone()
		ret.Styles = &p
	}
	if d.Images != nil {
		p := *d.Images
		p.Src = p.Src.clone()
		ret.Images = &p
	}
	if d.HTML != nil {
		p := *d.HTML
		p.Src = p.Src.clone()
		ret.HTML = &p
	}
	if d.Copy != nil {
		p := *d.Copy
		p.Src = p.Src.clone()
		ret.Copy = &p
	}
	if d.MinifyCSS != nil {
		m := *d.MinifyCSS
		ret.MinifyCSS = &m
	}
	return ret
}

func (s IgnoreSet) clone() IgnoreSet {
	if s == nil {
		return nil
	}
	ret := make(IgnoreSet, len(s))
	for t, globs := range s {
		ret[t] = cloneStrings(globs)
	}
	return ret
}
