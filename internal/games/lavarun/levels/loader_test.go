package levels_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/lavarun/internal/games/lavarun/levels"
)

func TestEmbeddedPack(t *testing.T) {
	ids, err := levels.NewEmbeddedLoader().ListIDs()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"01-first-coin",
		"02-lava-pit",
		"03-patrol",
		"04-rainfall",
		"05-tower",
		"classic-01",
		"classic-02",
	}, ids)
}

func TestLoadByID(t *testing.T) {
	l := levels.NewEmbeddedLoader()

	lvl, err := l.LoadByID("01-first-coin")
	require.NoError(t, err)
	assert.Equal(t, "First Coin", lvl.Name)
	assert.Equal(t, "R*20", lvl.Script)
	assert.Equal(t, levels.ExpectWon, lvl.Expect)
	assert.Equal(t, "builtin/01-first-coin.yaml", lvl.FilePath)

	w, h := lvl.Size()
	assert.Equal(t, 8, w)
	assert.Equal(t, 3, h)

	_, err = l.LoadByID("missing")
	assert.ErrorContains(t, err, "level not found")
}

func TestLoadAllSkipsInvalidFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"b.yaml":         {Data: []byte("id: b\nplan: [\" @o\", \"xxx\"]\n")},
		"nested/a.yml":   {Data: []byte("id: a\nname: Alpha\nplan: [\"@o\"]\n")},
		"broken.yaml":    {Data: []byte("id: [unterminated\n")},
		"noplan.yaml":    {Data: []byte("id: c\n")},
		"zdup.yaml":      {Data: []byte("id: a\nplan: [\"@\"]\n")},
		"readme.txt":     {Data: []byte("not a level")},
		"set/pack.json":  {Data: []byte(`[["@o","xx"],["o@","xx"]]`)},
		"set/empty.json": {Data: []byte(`[]`)},
	}

	var skipped []string
	l := &levels.Loader{
		FS:     fsys,
		Root:   "mem",
		OnSkip: func(p string, _ error) { skipped = append(skipped, p) },
	}

	lvls, err := l.LoadAll()
	require.NoError(t, err)

	ids := make([]string, len(lvls))
	for i, lvl := range lvls {
		ids[i] = lvl.ID
	}
	assert.Equal(t, []string{"a", "b", "pack-01", "pack-02"}, ids)
	assert.Equal(t, "Alpha", lvls[0].Name)
	assert.Equal(t, "b", lvls[1].Name)
	assert.Equal(t, "mem/nested/a.yml", lvls[0].FilePath)

	assert.ElementsMatch(t, []string{"broken.yaml", "noplan.yaml", "zdup.yaml", "set/empty.json"}, skipped)
}

func TestLoadFilePlanCollection(t *testing.T) {
	l := levels.NewEmbeddedLoader()

	lvls, err := l.LoadFile("classic.json")
	require.NoError(t, err)
	require.Len(t, lvls, 2)
	assert.Equal(t, "classic-01", lvls[0].ID)
	assert.Equal(t, "classic #1", lvls[0].Name)
	assert.Empty(t, lvls[0].Script)
}

func TestNewLoaderMissingDir(t *testing.T) {
	_, err := levels.NewLoader(t.TempDir() + "/nope").LoadAll()
	assert.Error(t, err)
}
