package orderpublisher

// NewKafkaPublisherWithWriter lets tests capture messages instead of sending them.
func NewKafkaPublisherWithWriter(writer messageWriter, topic string) *KafkaPublisher {
	return &KafkaPublisher{writer: writer, topic: topic}
}
