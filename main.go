package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/jessevdk/go-flags"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"

	"letgonow/gateway"
	"letgonow/service"
	"letgonow/tracing"
)

type config struct {
	HTTPAddr             string `long:"http-addr" env:"HTTP_ADDR" default:":8080" description:"HTTP listen address"`
	PostgresURL          string `long:"postgres-url" env:"POSTGRES_URL" required:"true" description:"Postgres connection string"`
	RedisAddr            string `long:"redis-addr" env:"REDIS_ADDR" required:"true" description:"Redis address"`
	AviationStackAPIKey  string `long:"aviationstack-api-key" env:"AVIATIONSTACK_API_KEY" description:"AviationStack access key (empty key falls back to fixture flights)"`
	JaegerEndpoint       string `long:"jaeger-endpoint" env:"JAEGER_ENDPOINT" description:"Jaeger collector endpoint"`
	OpenTelemetryGateway string `long:"otel-gateway" env:"GATEWAY_ADDR" description:"Gateway address used to derive the Jaeger endpoint when not set directly"`
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var cfg config
	if _, err := flags.Parse(&cfg); err != nil {
		os.Exit(1)
	}

	tp := tracing.ConfigureTraceProvider(cfg.JaegerEndpoint, cfg.OpenTelemetryGateway)
	defer func() {
		_ = tp.Shutdown(context.Background())
	}()

	traceDB, err := otelsql.Open("postgres", cfg.PostgresURL,
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
	)
	if err != nil {
		panic(err)
	}
	dbconn := sqlx.NewDb(traceDB, "postgres")
	defer dbconn.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer redisClient.Close()

	flightsProvider := gateway.NewAviationStackClient(cfg.AviationStackAPIKey)

	err = service.New(
		cfg.HTTPAddr,
		dbconn,
		redisClient,
		flightsProvider,
	).Run(ctx)
	if err != nil {
		log.FromContext(ctx).WithError(err).Error("service stopped with error")
		os.Exit(1)
	}
}
