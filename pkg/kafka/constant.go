package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

const (
	// ProducerRetryMax is the maximum number of publish retries.
	ProducerRetryMax = 3
	// ProducerTimeout bounds a single publish.
	ProducerTimeout = 10 * time.Second
)

// KafkaVersion is the protocol version used by producers and consumers.
var KafkaVersion = sarama.V2_6_0_0
