package sectors

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_BuiltinsOnly(t *testing.T) {
	r, err := Load("")
	require.NoError(t, err)

	s, ok := r.Get("vestuario")
	require.True(t, ok)
	assert.Equal(t, "Vestuário e Uniformes", s.Name)
	assert.Contains(t, s.Keywords, "uniforme")
	assert.NotEmpty(t, s.Synonyms["uniforme"])
}

func TestLoad_OverlayMergesOverBuiltin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sectors.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
sectors:
  - id: vestuario
    keywords: [uniforme, epi, bota]
  - id: mobiliario
    name: Mobiliário
    keywords: [mesa, cadeira, armário]
`), 0o600))

	r, err := Load(path)
	require.NoError(t, err)

	// Overridden field wins, untouched fields inherit.
	s, ok := r.Get("vestuario")
	require.True(t, ok)
	assert.Equal(t, []string{"uniforme", "epi", "bota"}, s.Keywords)
	assert.Equal(t, "Vestuário e Uniformes", s.Name)
	assert.NotEmpty(t, s.Synonyms)

	novo, ok := r.Get("mobiliario")
	require.True(t, ok)
	assert.Equal(t, "Mobiliário", novo.Name)
}

func TestLoad_RejectsSectorWithoutID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sectors.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sectors:\n  - name: Sem ID\n    keywords: [x]\n"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_RejectsNewSectorWithoutKeywords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sectors.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sectors:\n  - id: vazio\n    name: Vazio\n"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestRegistry_IDsSorted(t *testing.T) {
	r, err := Load("")
	require.NoError(t, err)

	ids := r.IDs()
	assert.Equal(t, r.Len(), len(ids))
	assert.IsIncreasing(t, ids)
}
