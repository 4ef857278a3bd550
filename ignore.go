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

// IgnoreSet maps an asset type to the globs that keep its files under
// dependency folders out of processing.
type IgnoreSet map[AssetType][]string

// Ignore holds the ignore sets, grouped like Globs.
//
// Every ignore glob is anchored at the project root and carries the same
// "./" marker as the other globs, for example "./node_modules/**/*.js".
type Ignore struct {
	Scripts    IgnoreSet `json:"scripts" yaml:"scripts"`
	Styles     IgnoreSet `json:"styles" yaml:"styles"`
	Images     IgnoreSet `json:"images" yaml:"images"`
	HTML       IgnoreSet `json:"html" yaml:"html"`
	SourceMaps IgnoreSet `json:"sourcemaps" yaml:"sourcemaps"`
}

// excludeFor returns, for each asset type in order, one glob per dependency
// folder.
func (c *composer) excludeFor(types ...AssetType) []string {
	var ret []string
	for _, t := range types {
		frag := c.fragment(t)
		for _, dep := range dependencyFolders {
			ret = append(ret, frag.under(c.folder(dep)))
		}
	}
	return ret
}

func (c *composer) ignoreSet(types ...AssetType) IgnoreSet {
	s := make(IgnoreSet)
	for _, t := range types {
		s[t] = c.excludeFor(t)
	}
	return s
}

func (c *composer) ignore() *Ignore {
	return &Ignore{
		Scripts:    c.ignoreSet(JavaScript, TypeScript),
		Styles:     c.ignoreSet(CSS, Sass),
		Images:     c.ignoreSet(imageTypes...),
		HTML:       c.ignoreSet(HTML),
		SourceMaps: c.ignoreSet(SourceMap),
	}
}
