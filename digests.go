package buildmap

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"shanhu.io/misc/errcode"
)

const digestVersion = "buildmap.v1"

// Digest returns a checksum of the descriptor's content. Two descriptors
// have the same digest if and only if they encode to the same JSON, so an
// orchestrator can use it to drop cached build output when the topology
// changes.
func (d *Descriptor) Digest() (string, error) {
	buf := new(bytes.Buffer)
	fmt.Fprintln(buf, digestVersion)
	bs, err := json.Marshal(d)
	if err != nil {
		return "", errcode.Annotate(err, "json marshal")
	}
	buf.Write(bs)
	sum := sha256.Sum256(buf.Bytes())
	return "sha256:" + hex.EncodeToString(sum[:]), nil
}
