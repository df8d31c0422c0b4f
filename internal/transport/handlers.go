package transport

import (
	"github.com/ds124wfegd/WB_L3/6/internal/service"
)

type AssetHandler struct {
	service service.AssetService
}

func NewAssetHandler(service service.AssetService) *AssetHandler {
	return &AssetHandler{service: service}
}
