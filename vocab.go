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

// AssetType is a logical category of source file, identified by a file name
// suffix pattern.
type AssetType string

// Asset types known to the default vocabulary.
const (
	JavaScript AssetType = "javascript"
	TypeScript AssetType = "typescript"
	CSS        AssetType = "css"
	Sass       AssetType = "sass"
	HTML       AssetType = "html"
	SourceMap  AssetType = "sourcemap"
	PNG        AssetType = "png"
	JPG        AssetType = "jpg"
	JPEG       AssetType = "jpeg"
	GIF        AssetType = "gif"
	SVG        AssetType = "svg"
)

// FolderRole is a logical directory purpose mapped to a relative path.
type FolderRole string

// Folder roles known to the default vocabulary.
const (
	Root         FolderRole = "root"
	Dist         FolderRole = "dist"
	Temp         FolderRole = "temp"
	App          FolderRole = "app"
	Styles       FolderRole = "styles"
	Scripts      FolderRole = "scripts"
	Images       FolderRole = "images"
	Typings      FolderRole = "typings"
	NodeModules  FolderRole = "nodeModules"
	JSPMPackages FolderRole = "jspmPackages"
)

// imageTypes are the raster and vector types handled by the images
// pipeline, in brace-group order.
var imageTypes = []AssetType{PNG, JPG, JPEG, GIF, SVG}

// dependencyFolders are the package manager trees kept out of processing.
var dependencyFolders = []FolderRole{NodeModules, JSPMPackages}

// Vocabulary holds the two fixed mappings every glob is derived from.
type Vocabulary struct {
	Extensions map[AssetType]string  `json:"extensions" yaml:"extensions"`
	Folders    map[FolderRole]string `json:"folders" yaml:"folders"`
}

// DefaultVocabulary returns a fresh copy of the built-in vocabulary.
func DefaultVocabulary() *Vocabulary {
	return &Vocabulary{
		Extensions: map[AssetType]string{
			JavaScript: ".js",
			TypeScript: ".{ts,tsx}",
			CSS:        ".css",
			Sass:       ".scss",
			HTML:       ".html",
			SourceMap:  ".map",
			PNG:        ".png",
			JPG:        ".jpg",
			JPEG:       ".jpeg",
			GIF:        ".gif",
			SVG:        ".svg",
		},
		Folders: map[FolderRole]string{
			Root:         ".",
			Dist:         "./dist",
			Temp:         "./.tmp",
			App:          "./app",
			Styles:       "./styles",
			Scripts:      "./scripts",
			Images:       "./images",
			Typings:      "./typings",
			NodeModules:  "./node_modules",
			JSPMPackages: "./jspm_packages",
		},
	}
}

// Clone returns a deep copy of the vocabulary.
func (v *Vocabulary) Clone() *Vocabulary {
	ret := &Vocabulary{
		Extensions: make(map[AssetType]string, len(v.Extensions)),
		Folders:    make(map[FolderRole]string, len(v.Folders)),
	}
	for k, s := range v.Extensions {
		ret.Extensions[k] = s
	}
	for k, p := range v.Folders {
		ret.Folders[k] = p
	}
	return ret
}

// merge overlays non-empty entries of o on top of v.
func (v *Vocabulary) merge(o *Vocabulary) {
	if o == nil {
		return
	}
	for k, s := range o.Extensions {
		if s != "" {
			v.Extensions[k] = s
		}
	}
	for k, p := range o.Folders {
		if p != "" {
			v.Folders[k] = p
		}
	}
}
