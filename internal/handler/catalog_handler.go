package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"spicysmp_store/internal/catalog"
	"spicysmp_store/internal/models"
)

type CatalogHandler struct {
	logger  *log.Logger
	catalog *catalog.Catalog
}

func NewCatalogHandler(logger *log.Logger, cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{
		logger:  logger,
		catalog: cat,
	}
}

type CatalogResponsePayload struct {
	Ranks         []models.Rank     `json:"ranks"`
	Keys          []models.Key      `json:"keys"`
	LifestealKeys []models.Key      `json:"lifesteal_keys"`
	Currencies    []models.Currency `json:"currencies"`
}

func (h *CatalogHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.logger.Printf("Method not allowed for /catalog: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	resp := CatalogResponsePayload{
		Ranks:         h.catalog.Ranks(),
		Keys:          h.catalog.Keys(models.SectionSMP),
		LifestealKeys: h.catalog.Keys(models.SectionLifesteal),
		Currencies:    h.catalog.Currencies(),
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Printf("Error encoding catalog response: %v", err)
	}
}
