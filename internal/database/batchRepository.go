package database

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/ds124wfegd/WB_L3/6/internal/entity"
	"github.com/ds124wfegd/WB_L3/6/internal/pkg/storage"
)

func NewBatchRepository(storage storage.FileStorage) BatchRepository {
	return &fileBatchRepository{storage: storage}
}

func (r *fileBatchRepository) SaveBatch(batch *entity.Batch) error {
	data, err := json.Marshal(batch)
	if err != nil {
		return err
	}
	return r.storage.Save(r.metadataPath(batch.ID), bytes.NewReader(data))
}

func (r *fileBatchRepository) FindByID(id string) (*entity.Batch, error) {
	reader, err := r.storage.Get(r.metadataPath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer reader.Close()

	var batch entity.Batch
	if err := json.NewDecoder(reader).Decode(&batch); err != nil {
		return nil, err
	}
	return &batch, nil
}

func (r *fileBatchRepository) DeleteBatch(id string) error {
	batch, err := r.FindByID(id)
	if err != nil {
		return err
	}

	// удаляем файлы ассетов, оригиналы и метаданные
	if batch != nil {
		for _, asset := range batch.Assets {
			if err := r.storage.Delete(r.assetRelPath(asset.ID)); err != nil && !os.IsNotExist(err) {
				return err
			}
		}
	}
	if err := r.storage.Delete(filepath.Join("originals", id)); err != nil && !os.IsNotExist(err) {
		return err
	}
	if err := r.storage.Delete(r.metadataPath(id)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (r *fileBatchRepository) SaveOriginal(batchID, kind string, data io.Reader) error {
	return r.storage.Save(filepath.Join("originals", batchID, kind), data)
}

func (r *fileBatchRepository) ReadOriginal(batchID, kind string) ([]byte, error) {
	return r.storage.ReadAll(filepath.Join("originals", batchID, kind))
}

func (r *fileBatchRepository) SaveAsset(assetID string, png []byte) error {
	return r.storage.SaveBytes(r.assetRelPath(assetID), png)
}

func (r *fileBatchRepository) AssetExists(assetID string) bool {
	return r.storage.Exists(r.assetRelPath(assetID))
}

func (r *fileBatchRepository) AssetPath(assetID string) string {
	return r.storage.FullPath(r.assetRelPath(assetID))
}

func (r *fileBatchRepository) assetRelPath(assetID string) string {
	return filepath.Join("assets", assetID+".png")
}

func (r *fileBatchRepository) metadataPath(id string) string {
	return filepath.Join("metadata", id+".json")
}
