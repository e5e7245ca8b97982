package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCorpus(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "passages.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadValidCorpus(t *testing.T) {
	path := writeCorpus(t, `[
		{"id": "ma_001", "text": "quote one", "author": "Marcus Aurelius", "contexts": ["morning"], "quotability": 8},
		{"id": "ep_002", "text": "quote two", "author": "Epictetus", "time_of_day_affinity": "any"}
	]`)

	passages, err := Load(path)
	require.NoError(t, err)
	require.Len(t, passages, 2)
	assert.Equal(t, "ma_001", passages[0].Id)
	assert.Equal(t, 8, passages[0].Quotability)
	assert.Equal(t, AffinityAny, passages[1].TimeOfDayAffinity)
}

func TestLoadSkipsInvalidEntries(t *testing.T) {
	path := writeCorpus(t, `[
		{"id": "", "text": "no id", "author": "Nobody"},
		{"id": "ma_001", "text": "", "author": "Marcus Aurelius"},
		{"id": "ok_001", "text": "fine", "author": "Seneca"},
		{"id": "ok_001", "text": "duplicate id", "author": "Seneca"}
	]`)

	passages, err := Load(path)
	require.NoError(t, err)
	require.Len(t, passages, 1)
	assert.Equal(t, "fine", passages[0].Text)
}

func TestLoadMissingFile(t *testing.T) {
	passages, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
	assert.Nil(t, passages)
}

func TestLoadCorruptFile(t *testing.T) {
	path := writeCorpus(t, `{not json`)
	passages, err := Load(path)
	assert.Error(t, err)
	assert.Nil(t, passages)
}

func TestBuiltinNeverEmpty(t *testing.T) {
	builtin := Builtin()
	require.NotEmpty(t, builtin)
	for _, p := range builtin {
		assert.NotEmpty(t, p.Id)
		assert.NotEmpty(t, p.Text)
		assert.NotEmpty(t, p.Author)
	}
}

func TestHasContext(t *testing.T) {
	p := Passage{Contexts: []string{"control", "stress"}}
	assert.True(t, p.HasContext("stress"))
	assert.False(t, p.HasContext("morning"))
}
