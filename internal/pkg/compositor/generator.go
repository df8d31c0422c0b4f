package compositor

import (
	"errors"
	"fmt"
	"image"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ds124wfegd/WB_L3/6/internal/entity"
)

// Generator runs compositing batches over a pair of decoded source rasters.
// The sources and the once-computed matted logo are shared read-only by all
// concurrent tasks; every task draws on its own canvas.
type Generator struct {
	defaultCaption string
}

func NewGenerator(defaultCaption string) *Generator {
	if defaultCaption == "" {
		defaultCaption = "Your Brand"
	}
	return &Generator{defaultCaption: defaultCaption}
}

type renderTask struct {
	assetType entity.AssetType
	variant   entity.Variant
	name      string
	render    func() (*image.NRGBA, error)
}

// GenerateBatch produces all profile variants plus both banner layouts.
// Individual task failures are logged and skipped; the batch fails only
// when an input cannot be decoded or nothing at all was produced.
func (g *Generator) GenerateBatch(photoData, logoData []byte, caption string) ([]entity.GeneratedImage, error) {
	return g.generate(photoData, logoData, caption, func(renderTask) bool { return true })
}

// GenerateSelection produces a subset: one profile variant (or all of them
// when variant is empty), or both banner layouts.
func (g *Generator) GenerateSelection(photoData, logoData []byte, assetType entity.AssetType, variant entity.Variant, caption string) ([]entity.GeneratedImage, error) {
	if assetType == entity.TypeProfile && variant != "" && !variant.Valid() {
		return nil, fmt.Errorf("unknown variant %q", variant)
	}
	return g.generate(photoData, logoData, caption, func(t renderTask) bool {
		if t.assetType != assetType {
			return false
		}
		if assetType == entity.TypeProfile && variant != "" {
			return t.variant == variant
		}
		return true
	})
}

func (g *Generator) generate(photoData, logoData []byte, caption string, keep func(renderTask) bool) ([]entity.GeneratedImage, error) {
	photo, err := Decode(photoData)
	if err != nil {
		return nil, fmt.Errorf("profile photo: %w", err)
	}
	logo, err := Decode(logoData)
	if err != nil {
		return nil, fmt.Errorf("logo: %w", err)
	}
	if caption == "" {
		caption = g.defaultCaption
	}

	// matte считаем один раз, дальше только чтение из всех задач
	matted := ExtractMatte(logo)

	all := make([]renderTask, 0, len(entity.AllVariants)+2)
	for _, v := range entity.AllVariants {
		v := v
		all = append(all, renderTask{
			assetType: entity.TypeProfile,
			variant:   v,
			name:      v.DisplayName() + " Profile",
			render: func() (*image.NRGBA, error) {
				return ComposeVariant(v, photo, matted)
			},
		})
	}
	all = append(all, renderTask{
		assetType: entity.TypeBanner,
		name:      "Banner Layout A",
		render: func() (*image.NRGBA, error) {
			return ComposeBannerA(photo, logo, caption)
		},
	})
	all = append(all, renderTask{
		assetType: entity.TypeBanner,
		name:      "Banner Layout B",
		render: func() (*image.NRGBA, error) {
			return ComposeBannerB(photo, matted, caption)
		},
	})

	tasks := make([]renderTask, 0, len(all))
	for _, t := range all {
		if keep(t) {
			tasks = append(tasks, t)
		}
	}
	if len(tasks) == 0 {
		return nil, errors.New("nothing to generate for the requested type")
	}

	results := make(chan entity.GeneratedImage, len(tasks))
	var wg sync.WaitGroup
	for _, t := range tasks {
		wg.Add(1)
		go func(t renderTask) {
			defer wg.Done()
			img, err := t.render()
			if err != nil {
				logrus.Warnf("failed to generate %s: %v", t.name, err)
				return
			}
			uri, png, err := EncodeDataURI(img)
			if err != nil {
				logrus.Warnf("failed to encode %s: %v", t.name, err)
				return
			}
			results <- entity.GeneratedImage{
				ID:   uuid.New().String(),
				URL:  uri,
				Type: t.assetType,
				Name: t.name,
				PNG:  png,
			}
		}(t)
	}
	wg.Wait()
	close(results)

	// порядок — порядок завершения задач, вызывающий код на него не опирается
	out := make([]entity.GeneratedImage, 0, len(tasks))
	for r := range results {
		out = append(out, r)
	}
	if len(out) == 0 {
		return nil, errors.New("no assets could be generated")
	}
	return out, nil
}
