package cmd

import (
	"fmt"
	"os"

	httpin "orders/internal/adapters/in/http"
	kafkain "orders/internal/adapters/in/kafka"
	"orders/internal/adapters/out/clients"
	kafkaout "orders/internal/adapters/out/kafka"
	"orders/internal/adapters/out/postgres"
	"orders/internal/adapters/out/postgres/outboxrepo"
	"orders/internal/core/application/messaging"
	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/events"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/ports"
	"orders/internal/jobs"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters, the capture pipeline, and use case handlers
// together. It is the only place that knows concrete types.
type CompositionRoot struct {
	config Config
	gormDB *gorm.DB
	log    *zap.Logger

	uowFactory ports.UnitOfWorkFactory
	pipeline   *messaging.Pipeline

	parcelsClient  ports.ParcelsClient
	vehiclesClient ports.VehiclesClient
	pricingClient  ports.PricingClient
}

// NewCompositionRoot builds the object graph on top of an open database
// connection.
func NewCompositionRoot(config Config, gormDB *gorm.DB, log *zap.Logger) (*CompositionRoot, error) {
	parcelsClient, err := clients.NewParcelsClient(config.ParcelsServiceURL)
	if err != nil {
		return nil, fmt.Errorf("parcels client: %w", err)
	}
	vehiclesClient, err := clients.NewVehiclesClient(config.VehiclesServiceURL)
	if err != nil {
		return nil, fmt.Errorf("vehicles client: %w", err)
	}
	pricingClient, err := clients.NewPricingClient(config.PricingServiceURL)
	if err != nil {
		return nil, fmt.Errorf("pricing client: %w", err)
	}

	uowFactory := postgres.NewGormUnitOfWorkFactory(gormDB)
	pipeline := messaging.NewPipeline(uowFactory, messaging.NewEventMapper(), log)

	return &CompositionRoot{
		config:         config,
		gormDB:         gormDB,
		log:            log,
		uowFactory:     uowFactory,
		pipeline:       pipeline,
		parcelsClient:  parcelsClient,
		vehiclesClient: vehiclesClient,
		pricingClient:  pricingClient,
	}, nil
}

// CreateHTTPServer builds the REST server with all command and query
// handlers.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		commands.NewCreateOrderCommandHandler(c.pipeline),
		commands.NewAddParcelToOrderCommandHandler(c.pipeline, c.parcelsClient),
		commands.NewDeleteParcelFromOrderCommandHandler(c.pipeline),
		commands.NewApproveOrderCommandHandler(c.pipeline),
		commands.NewCancelOrderCommandHandler(c.pipeline),
		commands.NewDeleteOrderCommandHandler(c.pipeline),
		commands.NewAssignVehicleCommandHandler(c.pipeline, c.vehiclesClient, c.pricingClient),
		queries.NewGetOrderQueryHandler(c.gormDB),
		queries.NewGetCustomerOrdersQueryHandler(c.gormDB),
	)
}

// CreateConsumer builds the inbound Kafka consumer with its event handlers.
func (c *CompositionRoot) CreateConsumer() *kafkain.Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: c.config.KafkaBrokers(),
		GroupID: c.config.KafkaConsumerGroup,
		Topic:   c.config.KafkaInboundTopic,
	})

	handlers := kafkain.Handlers{
		Commands: kafkain.CommandHandlers{
			CreateOrder:   commands.NewCreateOrderCommandHandler(c.pipeline),
			AddParcel:     commands.NewAddParcelToOrderCommandHandler(c.pipeline, c.parcelsClient),
			DeleteParcel:  commands.NewDeleteParcelFromOrderCommandHandler(c.pipeline),
			Approve:       commands.NewApproveOrderCommandHandler(c.pipeline),
			Cancel:        commands.NewCancelOrderCommandHandler(c.pipeline),
			Delete:        commands.NewDeleteOrderCommandHandler(c.pipeline),
			AssignVehicle: commands.NewAssignVehicleCommandHandler(c.pipeline, c.vehiclesClient, c.pricingClient),
		},
		Delivery:        events.NewDeliveryEventsHandler(c.pipeline, c.log),
		Resources:       events.NewResourceEventsHandler(c.pipeline),
		ParcelDeleted:   events.NewParcelDeletedEventHandler(c.pipeline, c.log),
		CustomerCreated: events.NewCustomerCreatedEventHandler(c.pipeline),
	}

	return kafkain.NewConsumer(reader, handlers, c.log)
}

// CreateJobManager builds the background jobs around the outbox dispatcher.
// Each process instance claims messages under its own owner id, so several
// replicas can drain the outbox concurrently.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	// No fixed Topic on the writer: the publisher resolves the destination
	// per message type.
	writer := &kafka.Writer{
		Addr:         kafka.TCP(c.config.KafkaBrokers()...),
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
	}
	publisher := kafkaout.NewPublisher(writer, c.config.KafkaOrderEventsTopic, nil, c.log)

	hostname, err := os.Hostname()
	if err != nil {
		hostname = "orders"
	}
	owner := fmt.Sprintf("%s-%s", hostname, uuid.NewString()[:8])

	dispatcher := messaging.NewDispatcher(
		outboxrepo.NewGormOutboxRepository(c.gormDB),
		publisher,
		owner,
		c.config.DispatcherBatchSize,
		c.config.DispatcherMaxAttempts,
		c.log,
	)

	return jobs.NewJobManager(dispatcher, c.log)
}
