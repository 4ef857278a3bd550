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

// JavaScriptPipeline describes plain script handling. In development the
// scripts land in the temp folder; in production the emitted boot entry is
// bundled into a single file under dist.
type JavaScriptPipeline struct {
	Src               SourceSet `json:"src" yaml:"src"`
	SrcDist           string    `json:"srcDist" yaml:"srcDist"`
	Dest              string    `json:"dest" yaml:"dest"`
	DestDist          string    `json:"destDist" yaml:"destDist"`
	FinalJsBundlePath string    `json:"finalJsBundlePath" yaml:"finalJsBundlePath"`
}

// TypeScriptPipeline describes script transpiling. Only app sources are
// selected; dependency trees are handled outside of this build.
type TypeScriptPipeline struct {
	SrcAppOnly SourceSet `json:"srcAppOnly" yaml:"srcAppOnly"`
	Dest       string    `json:"dest" yaml:"dest"`
}

// StylesPipeline describes stylesheet handling. Vendor stylesheets are
// bundled apart from application stylesheets so that their license
// comments survive and rules are not merged across them.
type StylesPipeline struct {
	Src              SourceSet `json:"src" yaml:"src"`
	SrcVendorOnly    SourceSet `json:"srcVendorOnly" yaml:"srcVendorOnly"`
	SrcWithoutVendor SourceSet `json:"srcWithoutVendor" yaml:"srcWithoutVendor"`

	Dest      string `json:"dest" yaml:"dest"`           // development
	DestFiles string `json:"destFiles" yaml:"destFiles"` // development
	DestDist  string `json:"destDist" yaml:"destDist"`   // production

	FinalCSSBundleFilename       string `json:"finalCssBundleFilename" yaml:"finalCssBundleFilename"`
	FinalCSSBundlePath           string `json:"finalCssBundlePath" yaml:"finalCssBundlePath"`
	FinalVendorCSSBundleFilename string `json:"finalVendorCssBundleFilename" yaml:"finalVendorCssBundleFilename"`
	FinalVendorCSSBundlePath     string `json:"finalVendorCssBundlePath" yaml:"finalVendorCssBundlePath"`
}

// ImagesPipeline describes image optimization.
type ImagesPipeline struct {
	Src  SourceSet `json:"src" yaml:"src"`
	Dest string    `json:"dest" yaml:"dest"`
}

// HTMLPipeline describes markup handling. Markup goes straight to dist; it
// is reloaded in place during development.
type HTMLPipeline struct {
	Src  SourceSet `json:"src" yaml:"src"`
	Dest string    `json:"dest" yaml:"dest"`
}

// CopyPipeline copies everything under the app folder that no other
// pipeline claims.
type CopyPipeline struct {
	Src  SourceSet `json:"src" yaml:"src"`
	Dest string    `json:"dest" yaml:"dest"`
}

func (p *JavaScriptPipeline) claims() []string { return p.Src.Include }
func (p *TypeScriptPipeline) claims() []string { return p.SrcAppOnly.Include }
func (p *StylesPipeline) claims() []string { return p.Src.Include }
func (p *ImagesPipeline) claims() []string { return p.Src.Include }
func (p *HTMLPipeline) claims() []string { return p.Src.Include }

// claimer is a pipeline that takes files away from the copy pipeline.
type claimer interface {
	// claims returns the source globs of the files the pipeline handles.
	claims() []string
}

// pipelineRegistry keeps the processing pipelines in registration order.
// The copy pipeline excludes whatever the registered pipelines claim, so a
// new pipeline only has to be registered to stay out of verbatim copies.
type pipelineRegistry struct {
	c     *composer
	names []string
	m     map[string]claimer
}

func newPipelineRegistry(c *composer) *pipelineRegistry {
	return &pipelineRegistry{
		c: c,
		m: make(map[string]claimer),
	}
}

func (r *pipelineRegistry) register(name string, p claimer) {
	if name == "" {
		r.c.errorf("pipeline name is empty")
		return
	}
	if _, ok := r.m[name]; ok {
		r.c.errorf("pipeline %q redeclared", name)
		return
	}
	r.names = append(r.names, name)
	r.m[name] = p
}

// claimed returns every claimed glob, in registration order, without
// repeats.
func (r *pipelineRegistry) claimed() []string {
	seen := make(map[string]bool)
	var ret []string
	for _, name := range r.names {
		for _, g := range r.m[name].claims() {
			if seen[g] {
				continue
			}
			seen[g] = true
			ret = append(ret, g)
		}
	}
	return ret
}

// pipelineSet holds the per-pipeline descriptors of one composition.
type pipelineSet struct {
	JavaScript *JavaScriptPipeline
	TypeScript *TypeScriptPipeline
	Styles     *StylesPipeline
	Images     *ImagesPipeline
	HTML       *HTMLPipeline
	Copy       *CopyPipeline
}

// Pipeline names, as used for registration and in the exported descriptor.
const (
	pipelineJavaScript = "javascript"
	pipelineTypeScript = "typescript"
	pipelineStyles     = "styles"
	pipelineImages     = "images"
	pipelineHTML       = "html"
	pipelineCopy       = "copy"
)

func (c *composer) pipelines(g *Globs, b *Bundles) *pipelineSet {
	app := c.folder(App)
	temp := c.folder(Temp)
	dist := c.folder(Dist)
	under := func(f GlobFragment) string { return f.under(app) }

	js := &JavaScriptPipeline{
		Src:               newSourceSet(under(g.Scripts.JavaScript)),
		SrcDist:           joinPath(temp, b.Entry),
		Dest:              temp,
		DestDist:          joinPath(dist, b.JavaScript),
		FinalJsBundlePath: b.JavaScript,
	}

	ts := &TypeScriptPipeline{
		SrcAppOnly: newSourceSet(under(g.Scripts.TypeScript)),
		Dest:       temp,
	}

	allStyles := newSourceSet(under(g.Styles.CSS), under(g.Styles.Sass))
	vendor := []string{under(g.Styles.Vendor), under(g.Styles.VendorTree)}
	styles := &StylesPipeline{
		Src:              allStyles,
		SrcVendorOnly:    newSourceSet(vendor...),
		SrcWithoutVendor: allStyles.clone().without(vendor...),

		Dest:      temp,
		DestFiles: g.Styles.CSS.under(temp),
		DestDist:  dist,

		FinalCSSBundleFilename:       b.CSS,
		FinalCSSBundlePath:           b.CSS,
		FinalVendorCSSBundleFilename: b.VendorCSS,
		FinalVendorCSSBundlePath:     b.VendorCSS,
	}

	images := &ImagesPipeline{
		Src:  newSourceSet(under(g.Images)),
		Dest: joinPath(dist, c.folder(Images)),
	}

	html := &HTMLPipeline{
		Src:  newSourceSet(under(g.HTML)),
		Dest: dist,
	}

	reg := newPipelineRegistry(c)
	reg.register(pipelineHTML, html)
	reg.register(pipelineStyles, styles)
	reg.register(pipelineJavaScript, js)
	reg.register(pipelineTypeScript, ts)
	reg.register(pipelineImages, images)

	cp := &CopyPipeline{
		Src:  newSourceSet(under(g.Any)).without(reg.claimed()...),
		Dest: dist,
	}

	return &pipelineSet{
		JavaScript: js,
		TypeScript: ts,
		Styles:     styles,
		Images:     images,
		HTML:       html,
		Copy:       cp,
	}
}
