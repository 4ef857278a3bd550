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
	"fmt"
	"path"
	"strings"

	"shanhu.io/text/lexing"
)

const anyFiles = "**/*"

// GlobFragment is a glob pattern relative to a folder that is chosen where
// the fragment is used.
type GlobFragment string

// under binds the fragment to a folder.
func (f GlobFragment) under(dir string) string {
	return joinPath(dir, string(f))
}

// composer derives every glob of a descriptor from a vocabulary. Lookups
// never fail on the spot; defects are collected in errList and the caller
// discards the whole composition if there is any.
type composer struct {
	vocab   *Vocabulary
	errList *lexing.ErrorList

	exts     map[AssetType][]string
	reported map[string]bool
}

func newComposer(v *Vocabulary) *composer {
	return &composer{
		vocab:    v,
		errList:  lexing.NewErrorList(),
		exts:     make(map[AssetType][]string),
		reported: make(map[string]bool),
	}
}

// errorf records a defect. Each distinct message is reported once.
func (c *composer) errorf(f string, args ...interface{}) {
	msg := fmt.Sprintf(f, args...)
	if c.reported[msg] {
		return
	}
	c.reported[msg] = true
	c.errList.Errorf(nil, "%s", msg)
}

func (c *composer) folder(r FolderRole) string {
	p, ok := c.vocab.Folders[r]
	if !ok {
		c.errorf("folder role %q is not defined", r)
		return "."
	}
	if p == "" {
		c.errorf("folder role %q has an empty path", r)
		return "."
	}
	if path.IsAbs(p) {
		c.errorf("folder role %q has absolute path %q", r, p)
		return "."
	}
	if strings.ContainsAny(p, "*?[]{}!\\") {
		c.errorf("folder role %q has glob characters in %q", r, p)
		return "."
	}
	return projectPath(p)
}

func (c *composer) extsOf(t AssetType) []string {
	if exts, ok := c.exts[t]; ok {
		return exts
	}
	s, ok := c.vocab.Extensions[t]
	if !ok {
		c.errorf("asset type %q is not defined", t)
		c.exts[t] = nil
		return nil
	}
	exts, err := splitSuffix(s)
	if err != nil {
		c.errorf("asset type %q: %s", t, err)
	}
	c.exts[t] = exts
	return exts
}

// suffix returns the suffix pattern matching all given asset types. Several
// types fold into one brace group, keeping argument order and dropping
// repeated extensions.
func (c *composer) suffix(types ...AssetType) string {
	if len(types) == 0 {
		c.errorf("composing a suffix of no asset types")
		return ""
	}

	seen := make(map[string]bool)
	var exts []string
	for _, t := range types {
		for _, ext := range c.extsOf(t) {
			if seen[ext] {
				continue
			}
			seen[ext] = true
			exts = append(exts, ext)
		}
	}
	if len(exts) == 0 {
		return ""
	}
	return joinSuffix(exts)
}

// fragment returns the folder-independent pattern of files of the given
// types, at any depth.
func (c *composer) fragment(types ...AssetType) GlobFragment {
	return GlobFragment(anyFiles + c.suffix(types...))
}

// compose joins a folder with the fragment of the given types.
func (c *composer) compose(r FolderRole, types ...AssetType) string {
	return c.fragment(types...).under(c.folder(r))
}

// Globs are the reusable glob fragments. The pipelines join all of them
// under the app folder; images and vendor fragments already carry their
// folder inside the app tree.
type Globs struct {
	Any        GlobFragment `json:"any" yaml:"any"`
	Scripts    ScriptGlobs  `json:"scripts" yaml:"scripts"`
	Styles     StyleGlobs   `json:"styles" yaml:"styles"`
	Images     GlobFragment `json:"images" yaml:"images"`
	HTML       GlobFragment `json:"html" yaml:"html"`
	SourceMaps GlobFragment `json:"sourcemaps" yaml:"sourcemaps"`
}

// ScriptGlobs are the script fragments.
type ScriptGlobs struct {
	JavaScript GlobFragment `json:"javascript" yaml:"javascript"`
	TypeScript GlobFragment `json:"typescript" yaml:"typescript"`
}

// StyleGlobs are the stylesheet fragments. Vendor is the vendor entry
// stylesheet in the styles folder, and VendorTree the stylesheets in the
// vendor directory next to it.
type StyleGlobs struct {
	CSS        GlobFragment `json:"css" yaml:"css"`
	Sass       GlobFragment `json:"sass" yaml:"sass"`
	Vendor     GlobFragment `json:"vendor" yaml:"vendor"`
	VendorTree GlobFragment `json:"vendorTree" yaml:"vendorTree"`
}

const vendorName = "vendor"

func (c *composer) globs() *Globs {
	styles := c.folder(Styles)
	return &Globs{
		Any: anyFiles,
		Scripts: ScriptGlobs{
			JavaScript: c.fragment(JavaScript),
			TypeScript: c.fragment(TypeScript),
		},
		Styles: StyleGlobs{
			CSS:  c.fragment(CSS),
			Sass: c.fragment(Sass),
			Vendor: GlobFragment(joinPath(
				styles, vendorName+c.suffix(Sass, CSS),
			)),
			VendorTree: GlobFragment(
				c.fragment(Sass, CSS).under(joinPath(styles, vendorName)),
			),
		},
		Images:     GlobFragment(c.compose(Images, imageTypes...)),
		HTML:       c.fragment(HTML),
		SourceMaps: c.fragment(SourceMap),
	}
}
