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
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// splitSuffix parses a suffix pattern of the form ".ext" or ".{a,b,...}" and
// returns the bare extensions in order.
func splitSuffix(s string) ([]string, error) {
	if !strings.HasPrefix(s, ".") || len(s) == 1 {
		return nil, fmt.Errorf("suffix %q must be a dot and an extension", s)
	}
	body := s[1:]

	var exts []string
	if strings.HasPrefix(body, "{") {
		if !strings.HasSuffix(body, "}") {
			return nil, fmt.Errorf("suffix %q has an unclosed brace group", s)
		}
		exts = strings.Split(body[1:len(body)-1], ",")
	} else {
		exts = []string{body}
	}

	for _, ext := range exts {
		if ext == "" {
			return nil, fmt.Errorf("suffix %q has an empty extension", s)
		}
		if strings.ContainsAny(ext, "/{},*?[]!\\") {
			return nil, fmt.Errorf("suffix %q has a bad extension %q", s, ext)
		}
	}
	if !doublestar.ValidatePattern("*" + s) {
		return nil, fmt.Errorf("suffix %q is not a valid glob", s)
	}
	return exts, nil
}

// joinSuffix renders extensions as one suffix. More than one extension
// becomes a single brace group.
func joinSuffix(exts []string) string {
	if len(exts) == 1 {
		return "." + exts[0]
	}
	return ".{" + strings.Join(exts, ",") + "}"
}
