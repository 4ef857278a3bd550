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
	"encoding/json"

	"gopkg.in/yaml.v3"
	"shanhu.io/misc/errcode"
	"shanhu.io/misc/jsonutil"
)

// Export is the form in which a descriptor is handed to the orchestrator:
// the descriptor's keys plus a digest of its content.
type Export struct {
	Descriptor `yaml:",inline"`

	Checksum string `json:"digest" yaml:"digest"`
}

// NewExport wraps a descriptor for export.
func NewExport(d *Descriptor) (*Export, error) {
	digest, err := d.Digest()
	if err != nil {
		return nil, errcode.Annotate(err, "digest")
	}
	return &Export{Descriptor: *d, Checksum: digest}, nil
}

// JSON returns the indented JSON encoding of the export.
func (e *Export) JSON() ([]byte, error) {
	return json.MarshalIndent(e, "", "  ")
}

// YAML returns the YAML encoding of the export.
func (e *Export) YAML() ([]byte, error) {
	return yaml.Marshal(e)
}

// WriteFile writes the export into a JSON file.
func (e *Export) WriteFile(f string) error {
	return jsonutil.WriteFile(f, e)
}

// ReadExportFile reads in a descriptor exported in JSON. When the file
// carries a digest, it must match the content.
func ReadExportFile(f string) (*Descriptor, error) {
	e := new(Export)
	if err := jsonutil.ReadFile(f, e); err != nil {
		return nil, errcode.Annotatef(err, "read descriptor %q", f)
	}
	d := &e.Descriptor
	if e.Checksum != "" {
		digest, err := d.Digest()
		if err != nil {
			return nil, errcode.Annotate(err, "digest")
		}
		if digest != e.Checksum {
			return nil, errcode.InvalidArgf(
				"%q digest mismatch: file says %s, content is %s",
				f, e.Checksum, digest,
			)
		}
	}
	return d, nil
}
