package processor

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/ds124wfegd/WB_L3/6/internal/database"
	"github.com/ds124wfegd/WB_L3/6/internal/entity"
	"github.com/ds124wfegd/WB_L3/6/internal/pkg/compositor"
)

// GenerationWorker runs queued brand-asset generation batches.
type GenerationWorker interface {
	Run(task entity.GenerateTask) error
}

type generationWorker struct {
	repo      database.BatchRepository
	generator *compositor.Generator
}

func NewGenerationWorker(repo database.BatchRepository, generator *compositor.Generator) GenerationWorker {
	return &generationWorker{repo: repo, generator: generator}
}

func (w *generationWorker) Run(task entity.GenerateTask) error {
	log.Printf("Generating assets for batch: %s", task.BatchID)

	// Загружаем сохраненные оригиналы
	photoData, err := w.repo.ReadOriginal(task.BatchID, "photo")
	if err != nil {
		return w.fail(task.BatchID, "profile photo is missing: "+err.Error())
	}
	logoData, err := w.repo.ReadOriginal(task.BatchID, "logo")
	if err != nil {
		return w.fail(task.BatchID, "logo is missing: "+err.Error())
	}

	var assets []entity.GeneratedImage
	if task.Type == "" {
		assets, err = w.generator.GenerateBatch(photoData, logoData, task.Caption)
	} else {
		assets, err = w.generator.GenerateSelection(photoData, logoData, task.Type, task.Variant, task.Caption)
	}
	if err != nil {
		return w.fail(task.BatchID, err.Error())
	}

	for _, asset := range assets {
		if err := w.repo.SaveAsset(asset.ID, asset.PNG); err != nil {
			log.Printf("Failed to save asset %s: %v", asset.ID, err)
		}
	}

	batch := &entity.Batch{
		ID:     task.BatchID,
		Status: "completed",
		Assets: assets,
	}
	if err := w.repo.SaveBatch(batch); err != nil {
		return err
	}

	log.Printf("Completed batch %s: %d assets", task.BatchID, len(assets))
	return nil
}

func (w *generationWorker) fail(batchID, reason string) error {
	log.Printf("Batch %s failed: %s", batchID, reason)
	return w.repo.SaveBatch(&entity.Batch{
		ID:     batchID,
		Status: "failed",
		Error:  reason,
	})
}

// StartGenerationConsumer reads generation tasks from Kafka and executes
// them; each task runs in its own goroutine.
func StartGenerationConsumer(brokers []string, topic, groupID string, worker GenerationWorker) {

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		Topic:          topic,
		GroupID:        groupID,
		MinBytes:       10e3, // 10KB
		MaxBytes:       10e6, // 10MB
		CommitInterval: time.Second,
		StartOffset:    kafka.FirstOffset,
	})

	defer reader.Close()

	log.Println("Asset generation consumer started...")
	log.Printf("Connected to Kafka brokers: %s", brokers)

	for {
		ctx := context.Background()
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			log.Printf("Error reading message from Kafka: %v", err)
			continue
		}

		log.Printf("Received message from topic %s [partition %d, offset %d]: %s\n",
			msg.Topic, msg.Partition, msg.Offset, string(msg.Value))

		var task entity.GenerateTask
		if err := json.Unmarshal(msg.Value, &task); err != nil {
			log.Printf("Failed to parse task: %v\n", err)
			continue
		}

		go func(t entity.GenerateTask) {
			if err := worker.Run(t); err != nil {
				log.Printf("Generation failed for batch %s: %v\n", t.BatchID, err)
			} else {
				log.Printf("Successfully processed batch: %s", t.BatchID)
			}
		}(task)
	}
}
