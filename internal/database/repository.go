package database

import (
	"io"

	"github.com/ds124wfegd/WB_L3/6/internal/entity"
	"github.com/ds124wfegd/WB_L3/6/internal/pkg/storage"
)

type BatchRepository interface {
	SaveBatch(batch *entity.Batch) error
	FindByID(id string) (*entity.Batch, error)
	DeleteBatch(id string) error
	SaveOriginal(batchID, kind string, data io.Reader) error
	ReadOriginal(batchID, kind string) ([]byte, error)
	SaveAsset(assetID string, png []byte) error
	AssetExists(assetID string) bool
	AssetPath(assetID string) string
}

type fileBatchRepository struct {
	storage storage.FileStorage
}
