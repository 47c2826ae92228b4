package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"spicysmp_store/internal/catalog"
	"spicysmp_store/internal/handler"
	"spicysmp_store/internal/pricing"
	"spicysmp_store/internal/service"
	"spicysmp_store/internal/webhook"
)

var testPolicy = pricing.Policy{
	Rate: 0.10,
	End:  time.Date(2026, 1, 20, 23, 59, 59, 0, time.UTC),
}

var duringWindow = time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

type fakeNotifier struct {
	embeds int
	files  int
	fail   bool
}

func (f *fakeNotifier) SendEmbed(context.Context, webhook.Embed) error {
	if f.fail {
		return errors.New("connection reset")
	}
	f.embeds++
	return nil
}

func (f *fakeNotifier) SendFile(context.Context, string, io.Reader, string) error {
	if f.fail {
		return errors.New("connection reset")
	}
	f.files++
	return nil
}

func newCheckoutHandler(t *testing.T, notifier service.Notifier) *handler.CheckoutHandler {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	logger := log.New(io.Discard, "", 0)
	svc := service.NewCheckoutService(logger, cat, notifier, testPolicy, func() time.Time { return duringWindow })
	return handler.NewCheckoutHandler(logger, svc)
}

type formOpts struct {
	username   string
	customName string
	transferID string
	duration   string
	quantity   string
	screenshot bool
}

func checkoutRequest(t *testing.T, productID string, opts formOpts) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("minecraft_username", opts.username))
	require.NoError(t, mw.WriteField("custom_name", opts.customName))
	require.NoError(t, mw.WriteField("transfer_id", opts.transferID))
	if opts.duration != "" {
		require.NoError(t, mw.WriteField("duration", opts.duration))
	}
	if opts.quantity != "" {
		require.NoError(t, mw.WriteField("quantity", opts.quantity))
	}
	if opts.screenshot {
		part, err := mw.CreateFormFile("screenshot", "payment.png")
		require.NoError(t, err)
		_, err = part.Write([]byte("fake-png-bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/checkout/"+productID, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func validForm() formOpts {
	return formOpts{username: "Steve", transferID: "TX12345", screenshot: true}
}

func TestCheckoutSuccess(t *testing.T) {
	notifier := &fakeNotifier{}
	h := newCheckoutHandler(t, notifier)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, checkoutRequest(t, "pro", validForm()))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Status  string `json:"status"`
		Receipt struct {
			Reference  string `json:"reference"`
			Product    string `json:"product"`
			Descriptor string `json:"descriptor"`
			PricePaid  int    `json:"price_paid"`
		} `json:"receipt"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Equal(t, "success", resp.Status)
	require.NotEmpty(t, resp.Receipt.Reference)
	require.Equal(t, "PRO RANK", resp.Receipt.Product)
	require.Equal(t, 27, resp.Receipt.PricePaid)
	require.Equal(t, 1, notifier.embeds)
	require.Equal(t, 1, notifier.files)
}

func TestCheckoutSelectionForwarded(t *testing.T) {
	notifier := &fakeNotifier{}
	h := newCheckoutHandler(t, notifier)

	form := validForm()
	form.quantity = "3"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, checkoutRequest(t, "purple-key", form))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Receipt struct {
			PricePaid  int    `json:"price_paid"`
			Descriptor string `json:"descriptor"`
		} `json:"receipt"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Equal(t, 81, resp.Receipt.PricePaid)
	require.Equal(t, "3x", resp.Receipt.Descriptor)
}

func TestCheckoutValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		mutate func(*formOpts)
	}{
		{"missing username", "pro", func(f *formOpts) { f.username = " " }},
		{"missing custom name", "elite", func(f *formOpts) {}},
		{"missing transfer id", "pro", func(f *formOpts) { f.transferID = "" }},
		{"missing screenshot", "pro", func(f *formOpts) { f.screenshot = false }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			notifier := &fakeNotifier{}
			h := newCheckoutHandler(t, notifier)

			form := validForm()
			tc.mutate(&form)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, checkoutRequest(t, tc.id, form))
			require.Equal(t, http.StatusBadRequest, rec.Code)

			var resp struct {
				Status  string `json:"status"`
				Message string `json:"message"`
			}
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			require.Equal(t, "failed", resp.Status)
			require.NotEmpty(t, resp.Message)
			require.Zero(t, notifier.embeds, "validation failure must not hit the webhook")
		})
	}
}

func TestCheckoutUnknownProduct(t *testing.T) {
	h := newCheckoutHandler(t, &fakeNotifier{})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, checkoutRequest(t, "nonexistent", validForm()))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCheckoutWebhookFailure(t *testing.T) {
	h := newCheckoutHandler(t, &fakeNotifier{fail: true})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, checkoutRequest(t, "pro", validForm()))
	require.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestCheckoutMethodNotAllowed(t *testing.T) {
	h := newCheckoutHandler(t, &fakeNotifier{})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/checkout/pro", nil))
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
