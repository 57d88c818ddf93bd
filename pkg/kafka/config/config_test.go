package kafka_config

import (
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(EnvKafkaBrokers, "")
	cfg := Load()

	if cfg.Enabled {
		t.Error("kafka should be disabled by default")
	}
	if cfg.ProducerMaxAttempts != 1 {
		t.Errorf("expected a single producer attempt, got %d", cfg.ProducerMaxAttempts)
	}
	if len(cfg.Brokers) != 1 || cfg.Brokers[0] != "localhost:9092" {
		t.Errorf("unexpected brokers: %v", cfg.Brokers)
	}
}

func TestLoad_BrokerList(t *testing.T) {
	t.Setenv(EnvKafkaBrokers, " kafka-1:9092, ,kafka-2:9092 ")
	cfg := Load()

	if len(cfg.Brokers) != 2 || cfg.Brokers[1] != "kafka-2:9092" {
		t.Errorf("unexpected brokers: %v", cfg.Brokers)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantError string
	}{
		{
			name: "disabled config is always valid",
			cfg:  Config{Enabled: false},
		},
		{
			name: "valid enabled config",
			cfg: Config{
				Enabled: true, Brokers: []string{"k:9092"}, LeadsTopic: "leads",
				ProducerMaxAttempts: 1, ProducerBatchTimeout: 1, ProducerWriteTimeout: 1,
				ProducerRequireAcks: -1, ProducerCompression: "snappy",
			},
		},
		{
			name: "bad compression and acks",
			cfg: Config{
				Enabled: true, Brokers: []string{"k:9092"}, LeadsTopic: "leads",
				ProducerMaxAttempts: 1, ProducerBatchTimeout: 1, ProducerWriteTimeout: 1,
				ProducerRequireAcks: 3, ProducerCompression: "brotli",
			},
			wantError: "2. ProducerRequireAcks",
		},
		{
			name:      "missing brokers",
			cfg:       Config{Enabled: true, LeadsTopic: "leads", ProducerMaxAttempts: 1, ProducerBatchTimeout: 1, ProducerWriteTimeout: 1, ProducerCompression: "none"},
			wantError: "At least one Kafka broker",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantError == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantError) {
				t.Errorf("expected error containing %q, got %v", tt.wantError, err)
			}
		})
	}
}
