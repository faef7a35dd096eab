package publisher

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/LavaJover/shvark-club-ledger/internal/domain"
	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl"
	"github.com/segmentio/kafka-go/sasl/plain"
	"github.com/segmentio/kafka-go/sasl/scram"
)

type KafkaConfig struct {
	Brokers    []string
	Topic      string
	Username   string
	Password   string
	Mechanism  string
	TLSEnabled bool
}

type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(cfg KafkaConfig) (*KafkaPublisher, error) {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(cfg.Brokers...),
		Topic:    cfg.Topic,
		Balancer: &kafka.LeastBytes{},
	}

	if cfg.Username != "" || cfg.TLSEnabled {
		transport := &kafka.Transport{}
		if cfg.Username != "" {
			mechanism, err := saslMechanism(cfg)
			if err != nil {
				return nil, err
			}
			transport.SASL = mechanism
		}
		if cfg.TLSEnabled {
			transport.TLS = &tls.Config{}
		}
		writer.Transport = transport
	}

	return &KafkaPublisher{writer: writer}, nil
}

func saslMechanism(cfg KafkaConfig) (sasl.Mechanism, error) {
	switch strings.ToUpper(cfg.Mechanism) {
	case "", "PLAIN":
		return plain.Mechanism{Username: cfg.Username, Password: cfg.Password}, nil
	case "SCRAM-SHA-256":
		return scram.Mechanism(scram.SHA256, cfg.Username, cfg.Password)
	case "SCRAM-SHA-512":
		return scram.Mechanism(scram.SHA512, cfg.Username, cfg.Password)
	default:
		return nil, fmt.Errorf("unsupported sasl mechanism: %s", cfg.Mechanism)
	}
}

// PublishLedgerEvent emits the single domain event of a committed ledger
// operation, keyed by member so per-member ordering survives partitioning.
func (k *KafkaPublisher) PublishLedgerEvent(event domain.LedgerEvent) error {
	value, err := json.Marshal(toLedgerEventMessage(event))
	if err != nil {
		return err
	}

	return k.writer.WriteMessages(context.Background(), kafka.Message{
		Key:   []byte(event.MemberID),
		Value: value,
		Time:  event.Timestamp,
	})
}

func (k *KafkaPublisher) Close() error {
	return k.writer.Close()
}
