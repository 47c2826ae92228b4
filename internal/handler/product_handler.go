package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"spicysmp_store/internal/catalog"
	"spicysmp_store/internal/models"
	"spicysmp_store/internal/pricing"
	"spicysmp_store/internal/service"
)

type ProductHandler struct {
	logger          *log.Logger
	checkoutService *service.CheckoutService
}

func NewProductHandler(logger *log.Logger, checkoutService *service.CheckoutService) *ProductHandler {
	return &ProductHandler{
		logger:          logger,
		checkoutService: checkoutService,
	}
}

type ProductResponsePayload struct {
	Product models.Product `json:"product"`
	Kind    string         `json:"kind"`
	Quote   pricing.Quote  `json:"quote"`
}

type NotFoundResponsePayload struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	BackTo  string `json:"back_to"`
}

func productKind(p models.Product) string {
	switch p.(type) {
	case models.Rank:
		return "rank"
	case models.Key:
		return "key"
	case models.Currency:
		return "currency"
	default:
		return "unknown"
	}
}

// ServeHTTP handles GET /products/{id}?duration=&quantity= and returns
// the product with a quote for the selected configuration.
func (h *ProductHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.logger.Printf("Method not allowed for /products: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	productID := strings.TrimPrefix(r.URL.Path, "/products/")
	if productID == "" || strings.Contains(productID, "/") {
		http.Error(w, "product id is required", http.StatusBadRequest)
		return
	}

	sel := pricing.Selection{Quantity: 1}
	if v := r.URL.Query().Get("duration"); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "Invalid duration index format", http.StatusBadRequest)
			return
		}
		sel.DurationIndex = i
	}
	if v := r.URL.Query().Get("quantity"); v != "" {
		q, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "Invalid quantity format", http.StatusBadRequest)
			return
		}
		sel.Quantity = q
	}

	product, quote, err := h.checkoutService.Quote(productID, sel)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			// Terminal state: the client renders "Product Not Found" with a
			// single way back to the catalogue, no retry or suggestions.
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(NotFoundResponsePayload{
				Status:  "not_found",
				Message: "Product Not Found",
				BackTo:  "/catalog",
			})
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp := ProductResponsePayload{Product: product, Kind: productKind(product), Quote: quote}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Printf("Error encoding product response: %v", err)
	}
}
