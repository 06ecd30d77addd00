package kafka

import (
	"github.com/IBM/sarama"
)

// Config holds configuration for the Kafka producer.
type Config struct {
	Brokers []string
	Topic   string
}

// ConsumerConfig holds configuration for a Kafka consumer group.
type ConsumerConfig struct {
	Brokers []string
	GroupID string
}

// producerImpl implements IProducer using a sarama sync producer.
type producerImpl struct {
	producer sarama.SyncProducer
	topic    string
}

// consumerImpl implements IConsumer wrapping a sarama consumer group.
type consumerImpl struct {
	group sarama.ConsumerGroup
}
