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
)

// SourceSet selects a set of project files: everything matched by one of
// the Include globs and by none of the Exclude globs.
type SourceSet struct {
	// Selects a set of source files.
	Include []string `json:"include" yaml:"include"`

	// Ignores a set of source files after selection.
	Exclude []string `json:"exclude,omitempty" yaml:"exclude,omitempty"`
}

func newSourceSet(include ...string) SourceSet {
	return SourceSet{Include: include}
}

func (s SourceSet) without(exclude ...string) SourceSet {
	s.Exclude = append(cloneStrings(s.Exclude), exclude...)
	return s
}

// Globs returns the selection in task-runner form: the include globs,
// followed by every exclude glob negated with a leading "!".
func (s SourceSet) Globs() []string {
	ret := make([]string, 0, len(s.Include)+len(s.Exclude))
	ret = append(ret, s.Include...)
	for _, e := range s.Exclude {
		ret = append(ret, "!"+e)
	}
	return ret
}

func matchAny(globs []string, name string) bool {
	for _, g := range globs {
		if doublestar.MatchUnvalidated(trimProjectPath(g), name) {
			return true
		}
	}
	return false
}

// Match reports whether a project-relative file name is selected. The name
// may carry a leading "./". Globs are assumed valid; a composed descriptor
// only holds validated globs.
func (s SourceSet) Match(name string) bool {
	name = trimProjectPath(name)
	if !matchAny(s.Include, name) {
		return false
	}
	return !matchAny(s.Exclude, name)
}

// Select returns the sorted subset of names that the set matches. It works
// on the given names only and never lists a directory.
func (s SourceSet) Select(names []string) []string {
	m := make(map[string]bool)
	for _, name := range names {
		if s.Match(name) {
			m[name] = true
		}
	}
	return strutil.SortedList(m)
}

func (s SourceSet) clone() SourceSet {
	return SourceSet{
		Include: cloneStrings(s.Include),
		Exclude: cloneStrings(s.Exclude),
	}
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	ret := make([]string, len(s))
	copy(ret, s)
	return ret
}
