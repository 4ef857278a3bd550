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
	"fmt"
	"path/filepath"

	"shanhu.io/buildmap"
	"shanhu.io/misc/errcode"
	"shanhu.io/misc/osutil"
)

func cmdResolve(args []string) error {
	flags := cmdFlags.New()
	configFile := declareConfigFlag(flags)
	mode := flags.String("mode", string(buildmap.ServeDev), "dev or dist")
	root := flags.String("root", ".", "project root directory")
	names := flags.ParseArgs(args)

	if len(names) == 0 {
		return errcode.InvalidArgf("no file to resolve")
	}

	d, err := composeDescriptor(*configFile)
	if err != nil {
		return err
	}

	exists := func(p string) (bool, error) {
		return osutil.IsRegular(filepath.Join(*root, filepath.FromSlash(p)))
	}
	for _, name := range names {
		p, err := d.WebServerFolders.Resolve(
			buildmap.ServeMode(*mode), name, exists,
		)
		if err != nil {
			return errcode.Annotatef(err, "resolve %q", name)
		}
		fmt.Printf("%s -> %s\n", name, p)
	}
	return nil
}
