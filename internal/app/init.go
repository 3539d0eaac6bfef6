package app

import (
	"context"
	"fmt"
	"net/http"

	server "github.com/vbautistacode/etheria/internal/adapters/primary/http"
	arcanaController "github.com/vbautistacode/etheria/internal/adapters/primary/http/controllers/arcana"
	chartsController "github.com/vbautistacode/etheria/internal/adapters/primary/http/controllers/charts"
	cyclesController "github.com/vbautistacode/etheria/internal/adapters/primary/http/controllers/cycles"
	healthcheckController "github.com/vbautistacode/etheria/internal/adapters/primary/http/controllers/healthcheck"
	influencesController "github.com/vbautistacode/etheria/internal/adapters/primary/http/controllers/influences"
	metricsController "github.com/vbautistacode/etheria/internal/adapters/primary/http/controllers/metrics"
	numerologyController "github.com/vbautistacode/etheria/internal/adapters/primary/http/controllers/numerology"
	readingsController "github.com/vbautistacode/etheria/internal/adapters/primary/http/controllers/readings"
	therapiesController "github.com/vbautistacode/etheria/internal/adapters/primary/http/controllers/therapies"
	ephemerisAdapter "github.com/vbautistacode/etheria/internal/adapters/secondary/ephemeris"
	geocoderAdapter "github.com/vbautistacode/etheria/internal/adapters/secondary/geocoder"
	kafkaAdapter "github.com/vbautistacode/etheria/internal/adapters/secondary/kafka"
	minioAdapter "github.com/vbautistacode/etheria/internal/adapters/secondary/storage/minio"
	"github.com/vbautistacode/etheria/internal/adapters/secondary/storage/pg"
	redisAdapter "github.com/vbautistacode/etheria/internal/adapters/secondary/storage/redis"
	"github.com/vbautistacode/etheria/internal/ports/cache"
	kafkaport "github.com/vbautistacode/etheria/internal/ports/kafka"
	"github.com/vbautistacode/etheria/internal/ports/repository"
	"github.com/vbautistacode/etheria/internal/ports/service"
	storageport "github.com/vbautistacode/etheria/internal/ports/storage"
	readingRepo "github.com/vbautistacode/etheria/internal/repository/reading"
	generatorService "github.com/vbautistacode/etheria/internal/services/generator"
	jobScheduler "github.com/vbautistacode/etheria/internal/services/jobs"
	arcanaUsecase "github.com/vbautistacode/etheria/internal/usecases/arcana"
	astroUsecase "github.com/vbautistacode/etheria/internal/usecases/astro"
	cyclesUsecase "github.com/vbautistacode/etheria/internal/usecases/cycles"
	influencesUsecase "github.com/vbautistacode/etheria/internal/usecases/influences"
	numerologyUsecase "github.com/vbautistacode/etheria/internal/usecases/numerology"
	readingUsecase "github.com/vbautistacode/etheria/internal/usecases/reading"
	therapyUsecase "github.com/vbautistacode/etheria/internal/usecases/therapy"
	"github.com/jmoiron/sqlx"
)

type Dependencies struct {
	DB            *sqlx.DB
	HTTPServer    *http.Server
	Cache         cache.Cache
	KafkaProducer *kafkaAdapter.Producer
	JobScheduler  *jobScheduler.Scheduler
}

func (a *App) initDependencies(ctx context.Context) (*Dependencies, error) {
	db, err := a.initPostgres()
	if err != nil {
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	readings := readingRepo.New(pg.NewDB(db), a.Log)
	external := a.initExternalServices(ctx)

	usecases := a.initUseCases(readings, external)
	httpServer := a.initHTTP(db, usecases, external)
	scheduler := a.initJobScheduler(usecases.Astro, external)

	return &Dependencies{
		DB:            db,
		HTTPServer:    httpServer,
		Cache:         external.Cache,
		KafkaProducer: external.Producer,
		JobScheduler:  scheduler,
	}, nil
}

// externalServices holds the optional outbound adapters. A missing one
// degrades the affected feature instead of failing startup.
type externalServices struct {
	Cache     cache.Cache
	Store     storageport.ObjectStore
	Ephemeris service.Ephemeris
	Geocoder  service.Geocoder
	Generator service.NarrativeGenerator
	Producer  *kafkaAdapter.Producer
}

func (a *App) initExternalServices(ctx context.Context) *externalServices {
	services := &externalServices{}

	// Redis cache - optional
	if a.Cfg.Redis != nil {
		redisClient, err := a.Cfg.Redis.NewConnection()
		if err != nil {
			a.Log.Warn("failed to init redis cache, continuing without cache", "error", err)
		} else {
			services.Cache = redisAdapter.NewClient(redisClient)
			a.Log.Info("redis cache connected successfully")
		}
	}

	// Object storage - optional, serves chart SVGs and chakra assets
	if a.Cfg.Minio != nil && a.Cfg.Minio.Enabled() {
		minioClient, err := a.Cfg.Minio.NewClient()
		if err != nil {
			a.Log.Warn("failed to init object storage, continuing without it", "error", err)
		} else {
			services.Store = minioAdapter.NewClient(minioClient, a.Cfg.Minio.Bucket, a.Log)
			a.Log.Info("object storage connected successfully", "bucket", a.Cfg.Minio.Bucket)
		}
	}

	// Ephemeris service - natal charts need it
	if a.Cfg.Ephemeris == nil {
		a.Log.Warn("ephemeris configuration is missing, natal charts disabled")
	} else {
		services.Ephemeris = ephemerisAdapter.NewClient(a.Cfg.Ephemeris, a.Log)
	}

	// Geocoder - optional, resolves birth places into coordinates
	if a.Cfg.Geocoder != nil {
		services.Geocoder = geocoderAdapter.NewClient(a.Cfg.Geocoder, services.Cache, a.Log)
	}

	// Narrative generator - falls back to local templates without an API key
	if a.Cfg.Generator != nil {
		gen, err := generatorService.New(ctx, *a.Cfg.Generator, services.Cache, a.Log)
		if err != nil {
			a.Log.Warn("failed to init narrative generator, continuing without it", "error", err)
		} else {
			services.Generator = gen
		}
	}

	// Kafka producer - optional, publishes reading creation events
	if a.Cfg.Kafka != nil && a.Cfg.Kafka.Enabled() {
		producer, err := kafkaAdapter.NewProducer(a.Cfg.Kafka, a.Log)
		if err != nil {
			a.Log.Warn("failed to create kafka producer, continuing without events", "error", err)
		} else {
			services.Producer = producer
		}
	}

	return services
}

// useCases holds the initialized domain services.
type useCases struct {
	Numerology *numerologyUsecase.Service
	Cycles     *cyclesUsecase.Service
	Influences *influencesUsecase.Service
	Arcana     *arcanaUsecase.Service
	Astro      *astroUsecase.Service
	Therapy    *therapyUsecase.Service
	Reading    *readingUsecase.Service
}

func (a *App) initUseCases(readings repository.ReadingRepo, external *externalServices) *useCases {
	numerology := numerologyUsecase.New(a.Log)
	cycles := cyclesUsecase.New(a.Cfg.Cycles, a.Log)
	influences := influencesUsecase.New(a.Log)
	arcana := arcanaUsecase.New(a.Log)
	astro := astroUsecase.New(a.Log)

	reading := readingUsecase.New(readingUsecase.Deps{
		Numerology: numerology,
		Cycles:     cycles,
		Influences: influences,
		Arcana:     arcana,
		Astro:      astro,
		Repo:       readings,
		Ephemeris:  external.Ephemeris,
		Geocoder:   external.Geocoder,
		Generator:  external.Generator,
		Producer:   producerOrNil(external.Producer),
		Store:      external.Store,
	}, a.Log)

	return &useCases{
		Numerology: numerology,
		Cycles:     cycles,
		Influences: influences,
		Arcana:     arcana,
		Astro:      astro,
		Therapy:    therapyUsecase.New(numerology, external.Store, a.Log),
		Reading:    reading,
	}
}

func (a *App) initHTTP(db *sqlx.DB, usecases *useCases, external *externalServices) *http.Server {
	controllers := []server.Controller{
		healthcheckController.New(db, a.Log),
		readingsController.New(usecases.Reading, a.Log),
		numerologyController.New(usecases.Numerology, a.Log),
		cyclesController.New(usecases.Cycles, a.Log),
		influencesController.New(usecases.Influences, a.Log),
		chartsController.New(usecases.Astro, external.Ephemeris, external.Cache, a.Log),
		arcanaController.New(usecases.Arcana, a.Log),
		therapiesController.New(usecases.Therapy, a.Log),
		metricsController.New(),
	}

	return server.NewHTTPServer(a.Cfg.Server, a.Log, controllers...)
}

func (a *App) initJobScheduler(astro *astroUsecase.Service, external *externalServices) *jobScheduler.Scheduler {
	scheduler := jobScheduler.NewScheduler(a.Log)

	if external.Cache != nil && external.Ephemeris != nil {
		positionsUpdater := jobScheduler.NewPositionsUpdater(astro, external.Ephemeris, external.Cache, a.Log)
		scheduler.Register(positionsUpdater)
		a.Log.Info("positions updater job registered")
	}

	return scheduler
}

func (a *App) initPostgres() (*sqlx.DB, error) {
	db, err := a.Cfg.Postgres.NewConnection()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	a.Log.Info("postgres connected successfully")

	if err := pg.RunMigrations(db, a.Log); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

// producerOrNil avoids storing a typed nil behind the Producer port.
func producerOrNil(p *kafkaAdapter.Producer) kafkaport.Producer {
	if p == nil {
		return nil
	}
	return p
}
