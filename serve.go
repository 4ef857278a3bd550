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
	"path"

	"shanhu.io/misc/errcode"
)

// ServeMode selects a serving context.
type ServeMode string

// Serving contexts.
const (
	ServeDev  ServeMode = "dev"
	ServeDist ServeMode = "dist"
)

// precedence lists the folder roles tried for each mode, first match wins.
//
// In dev mode the project root comes first so that package metadata and
// dependency trees are served without a copy step, then the temp folder so
// that compiled code shadows same-named sources in the app folder.
var precedence = map[ServeMode][]FolderRole{
	ServeDev:  {Root, Temp, App},
	ServeDist: {Dist},
}

// BuildPrecedence returns the folder roles tried in the given mode, in
// order. The returned slice is the caller's to keep.
func BuildPrecedence(mode ServeMode) ([]FolderRole, error) {
	roles, ok := precedence[mode]
	if !ok {
		return nil, errcode.InvalidArgf("unknown serve mode %q", mode)
	}
	ret := make([]FolderRole, len(roles))
	copy(ret, roles)
	return ret, nil
}

func (c *composer) buildPrecedence(mode ServeMode) []string {
	roles, err := BuildPrecedence(mode)
	if err != nil {
		c.errorf("%s", err)
		return nil
	}
	var ret []string
	for _, r := range roles {
		ret = append(ret, c.folder(r))
	}
	return ret
}

// WebServerFolders are the ordered directory lists for each mode.
type WebServerFolders struct {
	Dev  []string `json:"dev" yaml:"dev"`
	Dist []string `json:"dist" yaml:"dist"`
}

func (c *composer) webServerFolders() *WebServerFolders {
	return &WebServerFolders{
		Dev:  c.buildPrecedence(ServeDev),
		Dist: c.buildPrecedence(ServeDist),
	}
}

func (f *WebServerFolders) of(mode ServeMode) ([]string, error) {
	switch mode {
	case ServeDev:
		return f.Dev, nil
	case ServeDist:
		return f.Dist, nil
	}
	return nil, errcode.InvalidArgf("unknown serve mode %q", mode)
}

// Resolve finds the folder that answers a logical path in the given mode.
// Folders are tried in precedence order with exists, which receives the
// project-relative file path; the first hit wins. It returns the resolved
// file path.
func (f *WebServerFolders) Resolve(
	mode ServeMode, name string, exists func(p string) (bool, error),
) (string, error) {
	folders, err := f.of(mode)
	if err != nil {
		return "", err
	}

	clean := path.Clean("/" + name)
	if clean == "/" {
		return "", errcode.InvalidArgf("bad logical path %q", name)
	}

	for _, dir := range folders {
		p := joinPath(dir, clean)
		ok, err := exists(p)
		if err != nil {
			return "", errcode.Annotatef(err, "check %q", p)
		}
		if ok {
			return p, nil
		}
	}
	return "", errcode.NotFoundf("%q not found in %s folders", name, mode)
}
