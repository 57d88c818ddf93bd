package kafka_config

const (
	EnvKafkaEnabled    = "KAFKA_ENABLED"
	EnvKafkaBrokers    = "KAFKA_BROKERS"
	EnvKafkaLeadsTopic = "KAFKA_LEADS_TOPIC"
	EnvKafkaClientID   = "KAFKA_CLIENT_ID"

	// Producer configuration
	EnvKafkaProducerMaxAttempts  = "KAFKA_PRODUCER_MAX_ATTEMPTS"
	EnvKafkaProducerBatchTimeout = "KAFKA_PRODUCER_BATCH_TIMEOUT"
	EnvKafkaProducerWriteTimeout = "KAFKA_PRODUCER_WRITE_TIMEOUT"
	EnvKafkaProducerRequireAcks  = "KAFKA_PRODUCER_REQUIRE_ACKS"
	EnvKafkaProducerCompression  = "KAFKA_PRODUCER_COMPRESSION"

	EnvKafkaEnableMiddleware = "KAFKA_ENABLE_MIDDLEWARE"
)
