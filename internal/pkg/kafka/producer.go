package kafka

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/ds124wfegd/WB_L3/6/internal/entity"
)

type Producer interface {
	SendTask(topic string, task entity.GenerateTask) error
	Close() error
}

type kafkaProducer struct {
	writer *kafka.Writer
}

func NewProducer(brokers, topic string) Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	log.Printf("Kafka producer configured for brokers: %s", brokers)

	// Проверяем подключение и создаем топик
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn, err := kafka.DialContext(ctx, "tcp", brokers)
	if err != nil {
		log.Printf("Kafka connection failed: %v", err)
		log.Printf("Using mock producer instead")
		return &mockProducer{}
	}
	defer conn.Close()

	topicConfigs := []kafka.TopicConfig{
		{
			Topic:             topic,
			NumPartitions:     1,
			ReplicationFactor: 1,
		},
	}

	if err := conn.CreateTopics(topicConfigs...); err != nil {
		log.Printf("Could not create topic (might already exist): %v", err)
	} else {
		log.Printf("Created topic: %s", topic)
	}

	log.Printf("Connected to Kafka at %s", brokers)
	return &kafkaProducer{writer: writer}
}

func (p *kafkaProducer) SendTask(topic string, task entity.GenerateTask) error {
	taskBytes, err := json.Marshal(task)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(task.BatchID),
		Value: taskBytes,
		Time:  time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		log.Printf("Failed to write task to Kafka: %v", err)
		return err
	}

	log.Printf("Generation task for batch %s sent to topic: %s", task.BatchID, topic)
	return nil
}

func (p *kafkaProducer) Close() error {
	return p.writer.Close()
}

// Mock producer для работы без Kafka
type mockProducer struct{}

func (m *mockProducer) SendTask(topic string, task entity.GenerateTask) error {
	log.Printf("MOCK: Task to topic %s: %+v", topic, task)
	return nil
}

func (m *mockProducer) Close() error {
	return nil
}
