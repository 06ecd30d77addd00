package kafka

const (
	// Consumer Topics
	TopicEngagementSync = "engagement.sync"

	// Producer Topics
	TopicEngagementAudit = "engagement.audit"
)

const (
	ConsumerGroupEngagementSync = "engagement-consumer-sync"
)
