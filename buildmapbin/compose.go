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

package buildmapbin

import (
	"os"

	"shanhu.io/buildmap"
	"shanhu.io/misc/errcode"
	"shanhu.io/misc/osutil"
	"shanhu.io/text/lexing"
)

// readConfig reads the configuration file. A missing default file means
// the built-in descriptor.
func readConfig(f string) (*buildmap.Config, error) {
	if f == "" {
		return nil, nil
	}
	ok, err := osutil.IsRegular(f)
	if err != nil {
		return nil, errcode.Annotatef(err, "check %q", f)
	}
	if !ok {
		if f == buildmap.ConfigFile {
			return nil, nil
		}
		return nil, errcode.NotFoundf("config file %q not found", f)
	}
	return buildmap.ReadConfig(f)
}

func printErrs(errs []*lexing.Error) {
	wd, err := os.Getwd()
	if err != nil {
		wd = ""
	}
	lexing.FprintErrs(os.Stderr, errs, wd)
}

func composeDescriptor(configFile string) (*buildmap.Descriptor, error) {
	config, err := readConfig(configFile)
	if err != nil {
		return nil, err
	}
	d, errs := buildmap.Compose(config)
	if errs != nil {
		printErrs(errs)
		return nil, errcode.InvalidArgf(
			"compose descriptor got %d errors", len(errs),
		)
	}
	return d, nil
}
