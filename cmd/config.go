package cmd

import "strings"

// Config carries the environment configuration of the service.
type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	KafkaHost             string
	KafkaConsumerGroup    string
	KafkaOrderEventsTopic string
	KafkaInboundTopic     string

	ParcelsServiceURL  string
	VehiclesServiceURL string
	PricingServiceURL  string

	DispatcherBatchSize   int
	DispatcherMaxAttempts int
}

// KafkaBrokers splits the comma-separated broker list.
func (c Config) KafkaBrokers() []string {
	return strings.Split(c.KafkaHost, ",")
}
