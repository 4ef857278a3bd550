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
	"shanhu.io/misc/errcode"
	"shanhu.io/misc/jsonx"
)

// ConfigFile is the default name of the descriptor configuration file.
const ConfigFile = "buildmap.jsonx"

// Config is the structure of the buildmap.jsonx file. Every field is an
// override on top of the built-in descriptor; zero values keep the
// defaults.
type Config struct {
	// Extensions replaces suffix patterns of asset types, e.g.
	// {sass: ".{scss,sass}"}.
	Extensions map[AssetType]string `json:",omitempty"`

	// Folders replaces paths of folder roles, e.g. {dist: "./build"}.
	Folders map[FolderRole]string `json:",omitempty"`

	Bundles *Bundles `json:",omitempty"`

	// MinifyCSS replaces the minifier options as a whole.
	MinifyCSS *MinifyCSS `json:",omitempty"`

	// AutoprefixerBrowsers replaces the browser target list as a whole.
	AutoprefixerBrowsers []string `json:",omitempty"`

	WebServerNames *WebServerNames `json:",omitempty"`

	// SystemJSConfig is the default module loader config file name.
	SystemJSConfig string `json:",omitempty"`
}

// ReadConfig reads in a descriptor configuration file.
func ReadConfig(f string) (*Config, error) {
	c := new(Config)
	if err := jsonx.ReadFile(f, c); err != nil {
		return nil, errcode.Annotatef(err, "read config %q", f)
	}
	return c, nil
}
