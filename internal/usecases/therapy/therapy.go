package therapy

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/vbautistacode/etheria/internal/domain"
	storageport "github.com/vbautistacode/etheria/internal/ports/storage"
	"github.com/vbautistacode/etheria/internal/usecases/numerology"
)

const presignExpiry = 15 * time.Minute

var imageExtensions = []string{"png", "jpg", "jpeg", "webp"}

// Service serves the complementary therapy sheets and the chakra panels.
// The object store is optional; without it panels carry no image.
type Service struct {
	numerology *numerology.Service
	store      storageport.ObjectStore
	log        *slog.Logger
}

func New(num *numerology.Service, store storageport.ObjectStore, log *slog.Logger) *Service {
	return &Service{numerology: num, store: store, log: log}
}

// Kinds lists the supported therapies in presentation order.
func (s *Service) Kinds() []domain.TherapyKind {
	return []domain.TherapyKind{
		domain.TherapyCrystal,
		domain.TherapyColor,
		domain.TherapyAroma,
		domain.TherapyMusic,
		domain.TherapyPrana,
	}
}

// Content returns the sheet for one therapy kind.
func (s *Service) Content(kind domain.TherapyKind) (domain.TherapyContent, error) {
	sheet, ok := sheets[kind]
	if !ok {
		return domain.TherapyContent{}, domain.BusinessErrorf("unknown therapy: %s", kind)
	}
	return sheet, nil
}

// ChakraByNumber returns the panel for chakras 1..7.
func (s *Service) ChakraByNumber(ctx context.Context, number int) (domain.ChakraPanel, error) {
	for _, c := range chakras {
		if c.Number == number {
			panel := domain.ChakraPanel{
				Number:   c.Number,
				Name:     c.Name,
				Quadrant: c.Quadrant + " — " + c.Theme,
				Short:    c.Affirmation,
			}
			s.resolveImage(ctx, &panel)
			return panel, nil
		}
	}
	return domain.ChakraPanel{}, domain.BusinessErrorf("unknown chakra: %d", number)
}

// ChakraPanelFor derives a person's chakra panel from the annual influence
// of their full name.
func (s *Service) ChakraPanelFor(ctx context.Context, name string) (domain.ChakraPanel, error) {
	if strings.TrimSpace(name) == "" {
		return domain.ChakraPanel{}, domain.ErrEmptyName
	}

	infl := s.numerology.AnnualInfluence(name)
	panel := domain.ChakraPanel{
		Name:     infl.Chakra,
		Quadrant: infl.Quadrant,
		Short:    infl.Short,
		Long:     infl.Long,
	}
	for _, c := range chakras {
		if strings.EqualFold(c.Name, infl.Chakra) {
			panel.Number = c.Number
			if panel.Short == "" {
				panel.Short = c.Affirmation
			}
			break
		}
	}
	s.resolveImage(ctx, &panel)
	return panel, nil
}

// resolveImage looks for a stored chakra image under chakras/<name>.<ext>
// and attaches a presigned URL when one exists.
func (s *Service) resolveImage(ctx context.Context, panel *domain.ChakraPanel) {
	if s.store == nil || panel.Name == "" {
		return
	}

	base := "chakras/" + strings.ReplaceAll(strings.ToLower(strings.TrimSpace(panel.Name)), " ", "_")
	keys, err := s.store.ListObjects(ctx, base+".")
	if err != nil {
		s.log.WarnContext(ctx, "list chakra images failed", "prefix", base, "error", err)
		return
	}

	for _, ext := range imageExtensions {
		key := base + "." + ext
		for _, found := range keys {
			if found != key {
				continue
			}
			panel.ImageKey = key
			url, err := s.store.GetPresignedURL(ctx, key, presignExpiry)
			if err != nil {
				s.log.WarnContext(ctx, "presign chakra image failed", "key", key, "error", err)
				return
			}
			panel.ImageURL = url
			return
		}
	}
}
