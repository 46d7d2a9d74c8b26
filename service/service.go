package service

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"letgonow/booking"
	"letgonow/db"
	"letgonow/db/bookings"
	"letgonow/db/data_lake"
	"letgonow/db/read_model_ops_bookings"
	"letgonow/db/yachts"
	"letgonow/draftstore"
	"letgonow/entity"
	"letgonow/http"
	"letgonow/pubsub"
	"letgonow/pubsub/bus"
	"letgonow/pubsub/command"
	"letgonow/pubsub/event"
	"letgonow/pubsub/outbox"
	"letgonow/search"
)

func init() {
	log.Init(logrus.InfoLevel)
}

type Service struct {
	db              *sqlx.DB
	yachtsRepo      *yachts.PostgresRepository
	watermillRouter *message.Router
	httpServer      *http.Server
}

func New(
	addr string,
	db *sqlx.DB,
	redisClient *redis.Client,
	flightsProvider search.FlightsProvider,
) Service {
	bookingsRepo := bookings.NewPostgresRepository(db)
	yachtsRepo := yachts.NewPostgresRepository(db)
	opsReadModel := read_model_ops_bookings.NewOpsBookingReadModel(db)
	dataLake := data_lake.NewDataLake(db)

	draftStore := draftstore.NewRedisStore(redisClient)
	flow := booking.NewFlow(draftStore)
	submitter := booking.NewSubmitter(draftStore, bookingsRepo)
	flightsSearch := search.NewService(flightsProvider, search.NewCarrierBandPolicy())

	watermillLogger := log.NewWatermill(log.FromContext(context.Background()))

	var redisPublisher message.Publisher
	redisPublisher = pubsub.NewRedisPublisher(redisClient, watermillLogger)
	redisPublisher = log.CorrelationPublisherDecorator{Publisher: redisPublisher}

	commandBus, err := bus.NewCommandBus(redisPublisher)
	if err != nil {
		panic(fmt.Errorf("failed to create command bus: %w", err))
	}

	eventsHandler := event.NewHandler()
	commandsHandler := command.NewHandler(bookingsRepo)

	postgresSubscriber := outbox.NewPostgresSubscriber(db.DB, watermillLogger)
	eventProcessorConfig := event.NewProcessorConfig(redisClient, watermillLogger)
	commandProcessorConfig := command.NewProcessorConfig(redisClient, watermillLogger)

	redisSubscriber, err := redisstream.NewSubscriber(redisstream.SubscriberConfig{
		Client:        redisClient,
		ConsumerGroup: "svc-letgonow.events",
	}, watermillLogger)
	if err != nil {
		panic(fmt.Errorf("failed to create redis subscriber: %w", err))
	}

	watermillRouter, err := pubsub.NewWatermillRouter(
		postgresSubscriber,
		redisPublisher,
		redisSubscriber,
		eventProcessorConfig,
		eventsHandler,
		commandProcessorConfig,
		commandsHandler,
		opsReadModel,
		dataLake,
		watermillLogger,
	)
	if err != nil {
		panic(fmt.Errorf("failed to create watermill router: %w", err))
	}

	httpServer := http.NewServer(
		addr,
		commandBus,
		flightsSearch,
		yachtsRepo,
		flow,
		submitter,
		opsReadModel,
	)

	return Service{
		db,
		yachtsRepo,
		watermillRouter,
		httpServer,
	}
}

func (s Service) Run(ctx context.Context) error {
	if err := db.InitializeDatabaseSchema(s.db); err != nil {
		return fmt.Errorf("failed to initialize database schema: %w", err)
	}

	if err := s.seedYachts(ctx); err != nil {
		return fmt.Errorf("failed to seed yachts: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.watermillRouter.Run(ctx)
	})

	g.Go(func() error {
		// we don't want to start HTTP server before Watermill router (so service won't be healthy before it's ready)
		<-s.watermillRouter.Running()

		err := s.httpServer.Run(ctx)
		if err != nil {
			return err
		}

		return nil
	})

	return g.Wait()
}

// seedYachts loads the charter catalog. Store is idempotent, so restarting
// the service doesn't duplicate entries.
func (s Service) seedYachts(ctx context.Context) error {
	for _, yacht := range fixtureYachts() {
		if err := s.yachtsRepo.Store(ctx, yacht); err != nil {
			return err
		}
	}
	return nil
}

func fixtureYachts() []entity.Yacht {
	return []entity.Yacht{
		{
			YachtID:     "ambassador-cruise",
			Name:        "Ambassador Cruise",
			Description: "Five-star day cruise with a sun deck and panoramic dining hall.",
			Location:    "Ha Long Bay",
			Rooms: []entity.Room{
				{RoomID: "ambassador-suite", Name: "Ambassador Suite", Area: 45, MaxGuests: 4, Price: 3_000_000},
				{RoomID: "deluxe-balcony", Name: "Deluxe Balcony", Area: 28, MaxGuests: 2, Price: 1_500_000},
				{RoomID: "premium-window", Name: "Premium Window", Area: 24, MaxGuests: 2, Price: 1_200_000},
			},
		},
		{
			YachtID:     "paradise-elegance",
			Name:        "Paradise Elegance",
			Description: "Overnight steel cruiser with private balconies on every cabin.",
			Location:    "Ha Long Bay",
			Rooms: []entity.Room{
				{RoomID: "elegance-terrace", Name: "Elegance Terrace Suite", Area: 38, MaxGuests: 3, Price: 2_600_000},
				{RoomID: "elegance-deluxe", Name: "Elegance Deluxe", Area: 26, MaxGuests: 2, Price: 1_400_000},
			},
		},
	}
}
