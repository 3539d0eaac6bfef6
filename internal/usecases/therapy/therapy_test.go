package therapy

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbautistacode/etheria/internal/domain"
	"github.com/vbautistacode/etheria/internal/usecases/numerology"
)

type fakeStore struct {
	keys   []string
	signed string
	err    error
}

func (s *fakeStore) PutObject(context.Context, string, []byte, string) error { return nil }

func (s *fakeStore) GetObject(context.Context, string) ([]byte, error) { return nil, nil }

func (s *fakeStore) ListObjects(_ context.Context, prefix string) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []string
	for _, k := range s.keys {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			out = append(out, k)
		}
	}
	return out, nil
}

func (s *fakeStore) GetPresignedURL(_ context.Context, key string, _ time.Duration) (string, error) {
	s.signed = key
	return "https://example.test/" + key, nil
}

func newService(store *fakeStore) *Service {
	log := slog.Default()
	if store == nil {
		return New(numerology.New(log), nil, log)
	}
	return New(numerology.New(log), store, log)
}

func TestContent(t *testing.T) {
	svc := newService(nil)

	sheet, err := svc.Content(domain.TherapyColor)
	require.NoError(t, err)
	assert.Equal(t, "Cromoterapia", sheet.Title)
	assert.Len(t, sheet.Items, 6)
	assert.Contains(t, sheet.Items[0], "Azul Claro")

	prana, err := svc.Content(domain.TherapyPrana)
	require.NoError(t, err)
	assert.Contains(t, prana.Description, "prana (energia vital)")
	assert.Len(t, prana.Items, 7)
}

func TestContentUnknownKind(t *testing.T) {
	svc := newService(nil)

	_, err := svc.Content(domain.TherapyKind("reiki"))
	var berr *domain.BusinessError
	assert.ErrorAs(t, err, &berr)
}

func TestKinds(t *testing.T) {
	svc := newService(nil)

	kinds := svc.Kinds()
	require.Len(t, kinds, 5)
	assert.Equal(t, domain.TherapyCrystal, kinds[0])
	for _, kind := range kinds {
		_, err := svc.Content(kind)
		assert.NoError(t, err)
	}
}

func TestChakraByNumber(t *testing.T) {
	svc := newService(nil)

	panel, err := svc.ChakraByNumber(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, "Anahata", panel.Name)
	assert.Equal(t, "10-12 — Energias Mentais", panel.Quadrant)
	assert.Equal(t, "Abro meu coração.", panel.Short)

	_, err = svc.ChakraByNumber(context.Background(), 8)
	var berr *domain.BusinessError
	assert.ErrorAs(t, err, &berr)
}

func TestChakraPanelFor(t *testing.T) {
	store := &fakeStore{keys: []string{"chakras/manipura.png"}}
	svc := newService(store)

	// "Ana Lima" has 7 letters; 7 sits in the Manipura quadrant.
	panel, err := svc.ChakraPanelFor(context.Background(), "Ana Lima")
	require.NoError(t, err)
	assert.Equal(t, 3, panel.Number)
	assert.Equal(t, "Manipura", panel.Name)
	assert.Equal(t, "7-9", panel.Quadrant)
	assert.NotEmpty(t, panel.Short)
	assert.NotEmpty(t, panel.Long)
	assert.Equal(t, "chakras/manipura.png", panel.ImageKey)
	assert.Equal(t, "https://example.test/chakras/manipura.png", panel.ImageURL)
}

func TestChakraPanelForEmptyName(t *testing.T) {
	svc := newService(nil)

	_, err := svc.ChakraPanelFor(context.Background(), "   ")
	assert.ErrorIs(t, err, domain.ErrEmptyName)
}

func TestChakraPanelForWithoutStore(t *testing.T) {
	svc := newService(nil)

	panel, err := svc.ChakraPanelFor(context.Background(), "Ana Lima")
	require.NoError(t, err)
	assert.Empty(t, panel.ImageKey)
	assert.Empty(t, panel.ImageURL)
}

func TestResolveImagePrefersPNG(t *testing.T) {
	store := &fakeStore{keys: []string{"chakras/anahata.webp", "chakras/anahata.png"}}
	svc := newService(store)

	panel, err := svc.ChakraByNumber(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, "chakras/anahata.png", panel.ImageKey)
}
