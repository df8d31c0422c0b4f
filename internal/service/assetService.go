package service

import (
	"errors"
	"io"
	"mime/multipart"

	"github.com/ds124wfegd/WB_L3/6/internal/entity"
)

func (s *assetService) GenerateSync(id string, photo, logo *multipart.FileHeader, req entity.GenerateTask) (*entity.Batch, error) {
	photoData, err := readUpload(photo)
	if err != nil {
		return nil, err
	}
	logoData, err := readUpload(logo)
	if err != nil {
		return nil, err
	}

	var assets []entity.GeneratedImage
	if req.Type == "" {
		assets, err = s.generator.GenerateBatch(photoData, logoData, req.Caption)
	} else {
		assets, err = s.generator.GenerateSelection(photoData, logoData, req.Type, req.Variant, req.Caption)
	}
	if err != nil {
		return nil, err
	}

	// Сохраняем готовые PNG и метаданные батча
	for _, asset := range assets {
		if err := s.repo.SaveAsset(asset.ID, asset.PNG); err != nil {
			return nil, err
		}
	}

	batch := &entity.Batch{
		ID:     id,
		Status: "completed",
		Assets: assets,
	}
	if err := s.repo.SaveBatch(batch); err != nil {
		return nil, err
	}
	return batch, nil
}

func (s *assetService) GenerateAsync(id string, photo, logo *multipart.FileHeader, req entity.GenerateTask) (*entity.Batch, error) {
	// Сохраняем оригиналы, генерация произойдет в консьюмере
	if err := s.saveOriginal(id, "photo", photo); err != nil {
		return nil, err
	}
	if err := s.saveOriginal(id, "logo", logo); err != nil {
		return nil, err
	}

	batch := &entity.Batch{
		ID:     id,
		Status: "processing",
	}
	if err := s.repo.SaveBatch(batch); err != nil {
		return nil, err
	}

	req.BatchID = id
	if err := s.producer.SendTask(s.topic, req); err != nil {
		return nil, err
	}
	return batch, nil
}

func (s *assetService) GetBatch(id string) (*entity.Batch, error) {
	batch, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, errors.New("batch not found")
	}
	return batch, nil
}

func (s *assetService) AssetPath(id string) (string, bool) {
	if !s.repo.AssetExists(id) {
		return "", false
	}
	return s.repo.AssetPath(id), true
}

func (s *assetService) DeleteBatch(id string) error {
	batch, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if batch == nil {
		return errors.New("batch not found")
	}
	return s.repo.DeleteBatch(id)
}

func (s *assetService) saveOriginal(id, kind string, file *multipart.FileHeader) error {
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()
	return s.repo.SaveOriginal(id, kind, src)
}

func readUpload(file *multipart.FileHeader) ([]byte, error) {
	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return io.ReadAll(src)
}
