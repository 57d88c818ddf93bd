package kafka_config

import "time"

const (
	DefaultKafkaEnabled    = false
	DefaultKafkaBrokers    = "localhost:9092"
	DefaultKafkaLeadsTopic = "booking-leads"
	DefaultKafkaClientID   = "transferbook"

	// One attempt keeps lead delivery at-most-once; the visitor retries by
	// submitting again.
	DefaultProducerMaxAttempts  = 1
	DefaultProducerBatchTimeout = 10 * time.Millisecond
	DefaultProducerWriteTimeout = 5 * time.Second
	DefaultProducerRequireAcks  = -1 // Require all replicas
	DefaultProducerCompression  = "snappy"

	DefaultEnableMiddleware = true
)
