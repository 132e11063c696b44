package datapack

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nathoo/jaklogic/config"
	"github.com/nathoo/jaklogic/content"
	"github.com/nathoo/jaklogic/types"
	"github.com/nathoo/jaklogic/world"
)

func testWorld(t *testing.T) *world.World {
	t.Helper()
	defs, err := content.Defs()
	require.NoError(t, err)
	w, err := world.Build(defs, config.Defaults(), 1)
	require.NoError(t, err)
	return w
}

func TestExportImport(t *testing.T) {
	w := testWorld(t)

	for _, compress := range []bool{false, true} {
		var buf bytes.Buffer
		require.NoError(t, Export(&buf, w, Options{Compress: compress}))
		assert.Equal(t, compress, bytes.HasPrefix(buf.Bytes(), zstdMagic))

		p, err := Import(&buf)
		require.NoError(t, err)
		assert.Equal(t, Game, p.Game)
		assert.Equal(t, 1, p.Player)
		assert.Equal(t, w.Options, p.Options)
		assert.Equal(t, int64(741000000), p.ItemNameToID["Power Cell"])
		assert.Equal(t, w.LocationNameToID(), p.LocationNameToID)

		id, ok := p.NativeLocation(types.CategoryCache, 10344)
		require.True(t, ok)
		want, _ := w.Defs.NativeLocation(types.CategoryCache, 10344)
		assert.Equal(t, want, id)
	}
}

func TestExportCompressesSmaller(t *testing.T) {
	w := testWorld(t)
	var raw, packed bytes.Buffer
	require.NoError(t, Export(&raw, w, Options{}))
	require.NoError(t, Export(&packed, w, Options{Compress: true}))
	assert.Less(t, packed.Len(), raw.Len())
}

func TestBuildNativeCategories(t *testing.T) {
	p := Build(testWorld(t))
	for _, cat := range nativeCategories {
		assert.NotEmpty(t, p.Native[cat], cat)
	}
}

func TestImportRejectsOtherGames(t *testing.T) {
	_, err := Import(strings.NewReader(`{"game": "Jak II", "version": 1}`))
	assert.ErrorIs(t, err, ErrGame)
}

func TestImportRejectsVersion(t *testing.T) {
	_, err := Import(strings.NewReader(`{"game": "` + Game + `", "version": 9}`))
	assert.ErrorIs(t, err, ErrVersion)
}

func TestImportBadJSON(t *testing.T) {
	_, err := Import(strings.NewReader("{"))
	assert.Error(t, err)
}
