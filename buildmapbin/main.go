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
	"shanhu.io/misc/subcmd"
)

func cmd() *subcmd.List {
	c := subcmd.New()
	c.Add("dump", "prints the composed build descriptor", cmdDump)
	c.Add("check", "checks a build descriptor", cmdCheck)
	c.Add("resolve", "resolves files through web server folders", cmdResolve)
	return c
}

// Main is the entrance for the buildmap binary.
func Main() { cmd().Main() }
