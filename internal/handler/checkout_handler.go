package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"spicysmp_store/internal/catalog"
	"spicysmp_store/internal/models"
	"spicysmp_store/internal/service"
)

// Screenshots are phone camera captures; 10 MiB covers them with room
// to spare.
const maxScreenshotBytes = 10 << 20

type CheckoutHandler struct {
	logger          *log.Logger
	checkoutService *service.CheckoutService
}

func NewCheckoutHandler(logger *log.Logger, checkoutService *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		logger:          logger,
		checkoutService: checkoutService,
	}
}

type CheckoutResponsePayload struct {
	Status  string               `json:"status"`
	Message string               `json:"message,omitempty"`
	Receipt *models.OrderReceipt `json:"receipt,omitempty"`
}

// ServeHTTP handles POST /checkout/{id} with a multipart form carrying
// minecraft_username, custom_name, transfer_id, duration, quantity and
// the screenshot file.
func (h *CheckoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.logger.Printf("Method not allowed for /checkout: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	productID := strings.TrimPrefix(r.URL.Path, "/checkout/")
	if productID == "" || strings.Contains(productID, "/") {
		http.Error(w, "product id is required", http.StatusBadRequest)
		return
	}

	if err := r.ParseMultipartForm(maxScreenshotBytes); err != nil {
		http.Error(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	session := h.checkoutService.NewSession(productID)
	session.Update(func(req *models.OrderRequest) {
		req.MinecraftUsername = r.FormValue("minecraft_username")
		req.CustomName = r.FormValue("custom_name")
		req.TransferID = r.FormValue("transfer_id")
		if v := r.FormValue("duration"); v != "" {
			if i, err := strconv.Atoi(v); err == nil {
				req.DurationIndex = i
			}
		}
		if v := r.FormValue("quantity"); v != "" {
			if q, err := strconv.Atoi(v); err == nil {
				req.Quantity = q
			}
		}
	})

	file, header, err := r.FormFile("screenshot")
	if err == nil {
		data, readErr := io.ReadAll(file)
		file.Close()
		if readErr != nil {
			http.Error(w, "Failed to read screenshot", http.StatusBadRequest)
			return
		}
		session.Update(func(req *models.OrderRequest) {
			req.Screenshot = data
			req.ScreenshotName = header.Filename
		})
	}

	receipt, err := session.Submit(r.Context())
	if err != nil {
		var statusCode int
		switch {
		case errors.Is(err, catalog.ErrProductNotFound):
			statusCode = http.StatusNotFound
		case errors.Is(err, service.ErrUsernameRequired),
			errors.Is(err, service.ErrCustomNameRequired),
			errors.Is(err, service.ErrTransferIDRequired),
			errors.Is(err, service.ErrScreenshotRequired):
			statusCode = http.StatusBadRequest
		case errors.Is(err, service.ErrAlreadySubmitted):
			statusCode = http.StatusConflict
		case errors.Is(err, service.ErrSubmitFailed):
			statusCode = http.StatusBadGateway
		default:
			statusCode = http.StatusBadRequest
		}

		resp := CheckoutResponsePayload{Status: "failed", Message: err.Error()}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		json.NewEncoder(w).Encode(resp)
		return
	}

	resp := CheckoutResponsePayload{
		Status:  "success",
		Message: "Purchase request submitted successfully!",
		Receipt: receipt,
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Printf("Error encoding checkout response: %v", err)
	}
}
