package main

import (
	"github.com/ds124wfegd/WB_L3/6/config"
	"github.com/ds124wfegd/WB_L3/6/internal/database"
	"github.com/ds124wfegd/WB_L3/6/internal/pkg/compositor"
	"github.com/ds124wfegd/WB_L3/6/internal/pkg/processor"
	"github.com/ds124wfegd/WB_L3/6/internal/pkg/storage"
)

func main() {
	fileStorage := storage.NewFileStorage(config.GetEnv("STORAGE_PATH", "./storage"))
	batchRepo := database.NewBatchRepository(fileStorage)
	generator := compositor.NewGenerator(config.GetEnv("DEFAULT_CAPTION", "Your Brand"))
	worker := processor.NewGenerationWorker(batchRepo, generator)

	processor.StartGenerationConsumer(
		config.GetEnvList("KAFKA_BROKERS", "localhost:9094"),
		config.GetEnv("KAFKA_TOPIC", "asset-generation"),
		config.GetEnv("KAFKA_GROUP_ID", "asset-generator-service"),
		worker,
	)
}
