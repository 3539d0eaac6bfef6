package app

import (
	server "github.com/vbautistacode/etheria/internal/adapters/primary/http"
	ephemerisAdapter "github.com/vbautistacode/etheria/internal/adapters/secondary/ephemeris"
	geocoderAdapter "github.com/vbautistacode/etheria/internal/adapters/secondary/geocoder"
	kafkaAdapter "github.com/vbautistacode/etheria/internal/adapters/secondary/kafka"
	minioAdapter "github.com/vbautistacode/etheria/internal/adapters/secondary/storage/minio"
	"github.com/vbautistacode/etheria/internal/adapters/secondary/storage/pg"
	redisAdapter "github.com/vbautistacode/etheria/internal/adapters/secondary/storage/redis"
	"github.com/vbautistacode/etheria/internal/pkg/logger"
	generatorService "github.com/vbautistacode/etheria/internal/services/generator"
	cyclesUsecase "github.com/vbautistacode/etheria/internal/usecases/cycles"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Postgres  *pg.Config               `envconfig:"POSTGRES"`
	Log       *logger.Config           `envconfig:"LOG"`
	Server    *server.Config           `envconfig:"APISERVER"`
	Redis     *redisAdapter.Config     `envconfig:"REDIS"`
	Minio     *minioAdapter.Config     `envconfig:"MINIO"`
	Kafka     *kafkaAdapter.Config     `envconfig:"KAFKA"`
	Ephemeris *ephemerisAdapter.Config `envconfig:"EPHEMERIS"`
	Geocoder  *geocoderAdapter.Config  `envconfig:"GEOCODER"`
	Generator *generatorService.Config `envconfig:"GENERATOR"`
	Cycles    cyclesUsecase.Config     `envconfig:"CYCLES"`
}

func NewEnvConfig(envPrefix string) (*Config, error) {
	cfg := &Config{}

	_ = godotenv.Load("deployments/local/.env")

	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
