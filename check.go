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
	"github.com/bmatcuk/doublestar/v4"
	"shanhu.io/misc/strutil"
	"shanhu.io/text/lexing"
)

type labeledGlob struct {
	label string
	glob  string
}

func (d *Descriptor) sourceSets() map[string]SourceSet {
	m := make(map[string]SourceSet)
	if p := d.JavaScript; p != nil {
		m["javascript.src"] = p.Src
	}
	if p := d.TypeScript; p != nil {
		m["typescript.srcAppOnly"] = p.SrcAppOnly
	}
	if p := d.Styles; p != nil {
		m["styles.src"] = p.Src
		m["styles.srcVendorOnly"] = p.SrcVendorOnly
		m["styles.srcWithoutVendor"] = p.SrcWithoutVendor
	}
	if p := d.Images; p != nil {
		m["images.src"] = p.Src
	}
	if p := d.HTML; p != nil {
		m["html.src"] = p.Src
	}
	if p := d.Copy; p != nil {
		m["copy.src"] = p.Src
	}
	return m
}

func (s IgnoreSet) globs(label string) []*labeledGlob {
	var ret []*labeledGlob
	for t, globs := range s {
		for _, g := range globs {
			ret = append(ret, &labeledGlob{
				label: label + "." + string(t),
				glob:  g,
			})
		}
	}
	return ret
}

// allGlobs lists every glob pattern a descriptor hands out.
func (d *Descriptor) allGlobs() []*labeledGlob {
	var ret []*labeledGlob
	add := func(label, g string) {
		ret = append(ret, &labeledGlob{label: label, glob: g})
	}

	sets := d.sourceSets()
	for _, name := range sortedKeys(sets) {
		s := sets[name]
		for _, g := range s.Include {
			add(name+".include", g)
		}
		for _, g := range s.Exclude {
			add(name+".exclude", g)
		}
	}

	if g := d.Globs; g != nil {
		for _, f := range []struct {
			label string
			frag  GlobFragment
		}{
			{"globs.any", g.Any},
			{"globs.scripts.javascript", g.Scripts.JavaScript},
			{"globs.scripts.typescript", g.Scripts.TypeScript},
			{"globs.styles.css", g.Styles.CSS},
			{"globs.styles.sass", g.Styles.Sass},
			{"globs.styles.vendor", g.Styles.Vendor},
			{"globs.styles.vendorTree", g.Styles.VendorTree},
			{"globs.images", g.Images},
			{"globs.html", g.HTML},
			{"globs.sourcemaps", g.SourceMaps},
		} {
			add(f.label, string(f.frag))
		}
	}
	if i := d.Ignore; i != nil {
		ret = append(ret, i.Scripts.globs("ignore.scripts")...)
		ret = append(ret, i.Styles.globs("ignore.styles")...)
		ret = append(ret, i.Images.globs("ignore.images")...)
		ret = append(ret, i.HTML.globs("ignore.html")...)
		ret = append(ret, i.SourceMaps.globs("ignore.sourcemaps")...)
	}
	if f := d.Files; f != nil {
		add("files.typeScriptDefinitions", f.TypeScriptDefinitions)
	}
	return ret
}

func sortedKeys(m map[string]SourceSet) []string {
	keys := make(map[string]bool)
	for k := range m {
		keys[k] = true
	}
	return strutil.SortedList(keys)
}

// claimers returns the pipelines other than copy, keyed by name.
func (d *Descriptor) claimers() map[string]claimer {
	m := make(map[string]claimer)
	if d.JavaScript != nil {
		m[pipelineJavaScript] = d.JavaScript
	}
	if d.TypeScript != nil {
		m[pipelineTypeScript] = d.TypeScript
	}
	if d.Styles != nil {
		m[pipelineStyles] = d.Styles
	}
	if d.Images != nil {
		m[pipelineImages] = d.Images
	}
	if d.HTML != nil {
		m[pipelineHTML] = d.HTML
	}
	return m
}

// Check verifies the invariants that hold across parts of a descriptor:
// every glob is well formed, the copy pipeline excludes every glob another
// pipeline claims, compiled output shadows app sources when serving in
// development, and CSS minification keeps rule merging off.
//
// Compose runs Check before returning, so it matters for descriptors that
// were edited or read back from a file.
func Check(d *Descriptor) []*lexing.Error {
	errList := lexing.NewErrorList()

	for _, g := range d.allGlobs() {
		if !doublestar.ValidatePattern(trimProjectPath(g.glob)) {
			errList.Errorf(nil, "%s: bad glob %q", g.label, g.glob)
		}
	}

	if d.Copy == nil {
		errList.Errorf(nil, "%s pipeline missing", pipelineCopy)
	} else {
		excluded := strutil.MakeSet(d.Copy.Src.Exclude)
		claimers := d.claimers()
		var names []string
		for name := range claimers {
			names = append(names, name)
		}
		for _, name := range strutil.SortedList(strutil.MakeSet(names)) {
			for _, g := range claimers[name].claims() {
				if !excluded[g] {
					errList.Errorf(
						nil, "%s pipeline does not exclude %s glob %q",
						pipelineCopy, name, g,
					)
				}
			}
		}
	}

	if f := d.WebServerFolders; f == nil {
		errList.Errorf(nil, "web server folders missing")
	} else {
		checkPrecedence(errList, d, f)
	}

	if m := d.MinifyCSS; m != nil && m.AggressiveMerging {
		errList.Errorf(
			nil, "minifyCss.aggressiveMerging must be off; "+
				"it breaks vendor stylesheets",
		)
	}

	return errList.Errs()
}

func checkPrecedence(
	errList *lexing.ErrorList, d *Descriptor, f *WebServerFolders,
) {
	if len(f.Dist) == 0 {
		errList.Errorf(nil, "no %s web server folders", ServeDist)
	}

	index := func(r FolderRole) int {
		p, ok := d.Folders[r]
		if !ok {
			return -1
		}
		p = projectPath(p)
		for i, dir := range f.Dev {
			if dir == p {
				return i
			}
		}
		return -1
	}
	temp, app := index(Temp), index(App)
	if temp < 0 || app < 0 {
		errList.Errorf(
			nil, "%s web server folders must list both temp and app",
			ServeDev,
		)
	} else if temp > app {
		errList.Errorf(
			nil, "%s web server folders list app before temp", ServeDev,
		)
	}
}
