package kafka

import (
	"fmt"

	"invest-service/src/pkg/log"

	k "gopkg.in/confluentinc/confluent-kafka-go.v1/kafka"
)

type producer struct {
	producer *k.Producer
	log      log.Log
}

func NewProducer(config *k.ConfigMap, logger log.Log) (Producer, error) {
	p, err := k.NewProducer(config)
	if err != nil {
		logger.Error("kafka-producer", err.Error(), "NewProducer", "")
		return nil, err
	}

	// drain delivery reports so the internal queue does not fill up
	go func() {
		for e := range p.Events() {
			if m, ok := e.(*k.Message); ok && m.TopicPartition.Error != nil {
				logger.Error("kafka-producer", m.TopicPartition.Error.Error(), "delivery", *m.TopicPartition.Topic)
			}
		}
	}()

	return &producer{producer: p, log: logger}, nil
}

func (p *producer) Publish(message *k.Message) error {
	err := p.producer.Produce(message, nil)
	if err != nil {
		p.log.Error("kafka-producer", err.Error(), "Publish", utilTopic(message))
		return err
	}
	return nil
}

func (p *producer) PublishChannel(topic string, message []byte) {
	p.producer.ProduceChannel() <- &k.Message{
		TopicPartition: k.TopicPartition{Topic: &topic, Partition: k.PartitionAny},
		Value:          message,
	}
}

func utilTopic(message *k.Message) string {
	if message == nil || message.TopicPartition.Topic == nil {
		return ""
	}
	return fmt.Sprintf("topic: %s", *message.TopicPartition.Topic)
}
