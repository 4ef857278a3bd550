package buildmapbin

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"shanhu.io/buildmap"
	"shanhu.io/misc/errcode"
)

func TestReadConfig(t *testing.T) {
	c, err := readConfig("")
	require.NoError(t, err)
	assert.Nil(t, c)

	dir := t.TempDir()
	_, err = readConfig(filepath.Join(dir, "missing.jsonx"))
	assert.True(t, errcode.IsNotFound(err))

	f := filepath.Join(dir, buildmap.ConfigFile)
	content := []byte(`{"Folders": {"dist": "./public"}}`)
	require.NoError(t, os.WriteFile(f, content, 0644))

	c, err = readConfig(f)
	require.NoError(t, err)
	assert.Equal(t, "./public", c.Folders[buildmap.Dist])
}

func TestComposeDescriptor(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, buildmap.ConfigFile)
	content := []byte(`{"Folders": {"dist": "/var/www"}}`)
	require.NoError(t, os.WriteFile(f, content, 0644))

	_, err := composeDescriptor(f)
	assert.True(t, errcode.IsInvalidArg(err))
}
