package generator

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"google.golang.org/genai"

	"github.com/vbautistacode/etheria/internal/domain"
	"github.com/vbautistacode/etheria/internal/pkg/metrics"
	cacheport "github.com/vbautistacode/etheria/internal/ports/cache"
	"github.com/vbautistacode/etheria/internal/usecases/astro"
)

type Config struct {
	APIKey      string        `envconfig:"API_KEY"`
	Model       string        `envconfig:"MODEL" default:"gemini-1.5-flash"`
	CacheTTL    time.Duration `envconfig:"CACHE_TTL" default:"300s"`
	MinInterval time.Duration `envconfig:"RATE_MIN_INTERVAL" default:"500ms"`
}

// Service produces the chart narrative through the generative model, with a
// cache in front and a minimum interval between upstream calls. Without an
// API key it degrades to the local template.
type Service struct {
	cfg   Config
	cache cacheport.Cache
	log   *slog.Logger

	generate func(ctx context.Context, prompt string) (string, error)

	mu       sync.Mutex
	lastCall time.Time
}

func New(ctx context.Context, cfg Config, cache cacheport.Cache, log *slog.Logger) (*Service, error) {
	s := &Service{cfg: cfg, cache: cache, log: log}
	if cfg.APIKey == "" {
		log.WarnContext(ctx, "generator api key not set, narratives use the local template")
		return s, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.APIKey})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	s.generate = func(ctx context.Context, prompt string) (string, error) {
		resp, err := client.Models.GenerateContent(ctx, cfg.Model, genai.Text(prompt), nil)
		if err != nil {
			return "", err
		}
		return resp.Text(), nil
	}
	return s, nil
}

// Generate returns the interpretive narrative for a chart summary.
func (s *Service) Generate(ctx context.Context, name string, summary *domain.ChartSummary) (string, error) {
	if summary == nil {
		return "", domain.NewBusinessError("chart summary is required")
	}

	prompt := astro.BuildPrompt(summary)
	key := s.cacheKey(prompt)

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, key); err == nil && cached != "" {
			metrics.NarrativeRequests.WithLabelValues("cached").Inc()
			return cached, nil
		}
	}

	if s.generate == nil {
		metrics.NarrativeRequests.WithLabelValues("fallback").Inc()
		return fallbackNarrative(name, summary), nil
	}

	s.throttle()

	text, err := s.generate(ctx, prompt)
	if err != nil {
		metrics.NarrativeRequests.WithLabelValues("error").Inc()
		s.log.WarnContext(ctx, "narrative generation failed, using local template", "error", err)
		return fallbackNarrative(name, summary), nil
	}
	text = strings.TrimSpace(text)
	if text == "" {
		metrics.NarrativeRequests.WithLabelValues("fallback").Inc()
		return fallbackNarrative(name, summary), nil
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, text, s.cfg.CacheTTL); err != nil {
			s.log.WarnContext(ctx, "cache narrative failed", "error", err)
		}
	}
	metrics.NarrativeRequests.WithLabelValues("generated").Inc()
	return text, nil
}

func (s *Service) cacheKey(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return fmt.Sprintf("ai_text:%s:%s", s.cfg.Model, hex.EncodeToString(sum[:]))
}

// throttle enforces the minimum interval between upstream calls.
func (s *Service) throttle() {
	if s.cfg.MinInterval <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if wait := s.cfg.MinInterval - time.Since(s.lastCall); wait > 0 {
		time.Sleep(wait)
	}
	s.lastCall = time.Now()
}

// fallbackNarrative renders a deterministic reading from the summary alone.
func fallbackNarrative(name string, summary *domain.ChartSummary) string {
	who := strings.TrimSpace(name)
	if who == "" {
		who = "Consulente"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s, seu mapa é um palco: cada planeta é um ator e cada casa, um cenário.\n\n", who)

	if summary.Ascendant != nil {
		fmt.Fprintf(&b, "O Ascendente em %s abre a cortina: é a máscara com que você entra em cena.\n\n", summary.Ascendant.Sign)
	}

	interpreter := astro.New(slog.Default())
	for _, p := range summary.Planets {
		if p.Planet != "Sun" && p.Planet != "Moon" {
			continue
		}
		interp := interpreter.InterpretPosition(p.Planet, p.Sign, &p.Degree, p.House, nil, "")
		b.WriteString(interp.Short)
		b.WriteString("\n")
	}

	b.WriteString("\nObserve como essas energias dialogam no dia a dia; pequenas escolhas conscientes dão direção ao enredo.")
	return b.String()
}
