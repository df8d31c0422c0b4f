package entity

// Variant — стиль генерируемой аватарки
type Variant string

const (
	VariantProfessional Variant = "professional"
	VariantArtistic     Variant = "artistic"
	VariantMinimal      Variant = "minimal"
	VariantBold         Variant = "bold"
	VariantGradient     Variant = "gradient"
	VariantDuotone      Variant = "duotone"
	VariantVintage      Variant = "vintage"
	VariantMonochrome   Variant = "monochrome"
)

var AllVariants = []Variant{
	VariantProfessional,
	VariantArtistic,
	VariantMinimal,
	VariantBold,
	VariantGradient,
	VariantDuotone,
	VariantVintage,
	VariantMonochrome,
}

func (v Variant) Valid() bool {
	for _, known := range AllVariants {
		if v == known {
			return true
		}
	}
	return false
}

// DisplayName возвращает имя варианта для галереи
func (v Variant) DisplayName() string {
	names := map[Variant]string{
		VariantProfessional: "Professional",
		VariantArtistic:     "Artistic",
		VariantMinimal:      "Minimal",
		VariantBold:         "Bold",
		VariantGradient:     "Gradient",
		VariantDuotone:      "Duotone",
		VariantVintage:      "Vintage",
		VariantMonochrome:   "Monochrome",
	}
	return names[v]
}

type AssetType string

const (
	TypeProfile AssetType = "profile"
	TypeBanner  AssetType = "banner"
)

// GeneratedImage — один готовый ассет батча.
// URL содержит PNG как data URI, PNG — сырые байты для сохранения в storage.
type GeneratedImage struct {
	ID   string    `json:"id"`
	URL  string    `json:"url"`
	Type AssetType `json:"type"`
	Name string    `json:"name"`
	PNG  []byte    `json:"-"`
}

type Batch struct {
	ID     string           `json:"id"`
	Status string           `json:"status"`
	Assets []GeneratedImage `json:"assets,omitempty"`
	Error  string           `json:"error,omitempty"`
}

// GenerateTask — задача для асинхронной генерации через Kafka
type GenerateTask struct {
	BatchID string    `json:"batch_id"`
	Type    AssetType `json:"type,omitempty"`
	Variant Variant   `json:"variant,omitempty"`
	Caption string    `json:"caption,omitempty"`
}

type GenerateResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type BatchResponse struct {
	ID     string           `json:"id"`
	Status string           `json:"status"`
	Assets []GeneratedImage `json:"assets,omitempty"`
	Error  string           `json:"error,omitempty"`
}
