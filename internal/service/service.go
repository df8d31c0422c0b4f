package service

import (
	"mime/multipart"

	"github.com/ds124wfegd/WB_L3/6/internal/database"
	"github.com/ds124wfegd/WB_L3/6/internal/entity"
	"github.com/ds124wfegd/WB_L3/6/internal/pkg/compositor"
	"github.com/ds124wfegd/WB_L3/6/internal/pkg/kafka"
)

type AssetService interface {
	GenerateSync(id string, photo, logo *multipart.FileHeader, req entity.GenerateTask) (*entity.Batch, error)
	GenerateAsync(id string, photo, logo *multipart.FileHeader, req entity.GenerateTask) (*entity.Batch, error)
	GetBatch(id string) (*entity.Batch, error)
	AssetPath(id string) (string, bool)
	DeleteBatch(id string) error
}

type assetService struct {
	repo      database.BatchRepository
	producer  kafka.Producer
	generator *compositor.Generator
	topic     string
}

func NewAssetService(repo database.BatchRepository, producer kafka.Producer, generator *compositor.Generator, topic string) AssetService {
	return &assetService{
		repo:      repo,
		producer:  producer,
		generator: generator,
		topic:     topic,
	}
}
