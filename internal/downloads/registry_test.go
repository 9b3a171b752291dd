package downloads

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupByNameCaseInsensitive(t *testing.T) {
	r := NewRegistry(defaultEntries)

	e, ok := r.LookupByName("blood money")
	require.True(t, ok)
	assert.Equal(t, "https://cdn.joedankbeats.com/beats/blood-money.zip", e.URL)

	e, ok = r.LookupByName("  BLOOD MONEY  ")
	require.True(t, ok)
	assert.Equal(t, "beat-001", e.ProductID)
}

func TestLookupByID(t *testing.T) {
	r := NewRegistry(defaultEntries)

	e, ok := r.LookupByID("dk-001")
	require.True(t, ok)
	assert.Equal(t, "INFERNO 808 KIT", e.Name)
}

func TestLookupMissIsNotAnError(t *testing.T) {
	r := NewRegistry(defaultEntries)

	_, ok := r.LookupByName("DEALER TEE") // le merch n'a pas de lien
	assert.False(t, ok)

	_, ok = r.LookupByID("m-002")
	assert.False(t, ok)
}

func TestDeliveryURLPassthrough(t *testing.T) {
	r := NewRegistry(defaultEntries)
	e, _ := r.LookupByID("beat-001")

	url, err := r.DeliveryURL(context.Background(), e)
	require.NoError(t, err)
	assert.Equal(t, e.URL, url)
}

func TestDeliveryURLSignsMinioEntries(t *testing.T) {
	old := presign
	defer func() { presign = old }()

	var gotKey string
	presign = func(_ context.Context, key string) (string, error) {
		gotKey = key
		return "https://minio.local/signed/" + key, nil
	}

	r := NewRegistry(defaultEntries)
	e, _ := r.LookupByID("dk-001")

	url, err := r.DeliveryURL(context.Background(), e)
	require.NoError(t, err)
	assert.Equal(t, "kits/inferno-808-kit.zip", gotKey)
	assert.Equal(t, "https://minio.local/signed/kits/inferno-808-kit.zip", url)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "downloads.json")
	content := `[{"product_id":"beat-099","name":"TEST DRIVE","url":"https://cdn.example.com/test.zip"}]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	t.Setenv("DOWNLOADS_FILE", path)
	r := Load()

	e, ok := r.LookupByName("test drive")
	require.True(t, ok)
	assert.Equal(t, "beat-099", e.ProductID)

	// Le registre fichier remplace les entrées par défaut
	_, ok = r.LookupByID("beat-001")
	assert.False(t, ok)
}
