package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"spicysmp_store/internal/catalog"
	"spicysmp_store/internal/models"
	"spicysmp_store/internal/pricing"
	"spicysmp_store/internal/webhook"
)

// Error values double as the user-facing form messages. Validation is
// fail-fast: the first missing field wins and nothing else is checked.
var (
	ErrUsernameRequired   = errors.New("please enter your Minecraft username")
	ErrCustomNameRequired = errors.New("please enter your custom rank name")
	ErrTransferIDRequired = errors.New("please enter your Transfer ID")
	ErrScreenshotRequired = errors.New("please upload a payment screenshot")
	ErrSubmitFailed       = errors.New("failed to submit purchase request")
	ErrAlreadySubmitted   = errors.New("purchase request already submitted")
)

// Notifier is the outbound side of a submission. *webhook.Client is the
// production implementation.
type Notifier interface {
	SendEmbed(ctx context.Context, embed webhook.Embed) error
	SendFile(ctx context.Context, filename string, file io.Reader, caption string) error
}

// CheckoutService validates order submissions and forwards them to the
// store's Discord webhook.
type CheckoutService struct {
	catalog  *catalog.Catalog
	notifier Notifier
	policy   pricing.Policy
	logger   *log.Logger
	now      func() time.Time
}

func NewCheckoutService(logger *log.Logger, cat *catalog.Catalog, notifier Notifier, policy pricing.Policy, now func() time.Time) *CheckoutService {
	if now == nil {
		now = time.Now
	}
	return &CheckoutService{
		catalog:  cat,
		notifier: notifier,
		policy:   policy,
		logger:   logger,
		now:      now,
	}
}

// Quote prices the current selection for a product without submitting
// anything.
func (s *CheckoutService) Quote(productID string, sel pricing.Selection) (models.Product, pricing.Quote, error) {
	product, err := s.catalog.Lookup(productID)
	if err != nil {
		return nil, pricing.Quote{}, err
	}
	q, err := pricing.QuoteFor(product, sel, s.policy, s.now())
	if err != nil {
		return nil, pricing.Quote{}, err
	}
	return product, q, nil
}

func validate(product models.Product, req *models.OrderRequest) error {
	if strings.TrimSpace(req.MinecraftUsername) == "" {
		return ErrUsernameRequired
	}
	if r, ok := product.(models.Rank); ok && r.CustomName {
		if strings.TrimSpace(req.CustomName) == "" {
			return ErrCustomNameRequired
		}
	}
	if strings.TrimSpace(req.TransferID) == "" {
		return ErrTransferIDRequired
	}
	if len(req.Screenshot) == 0 {
		return ErrScreenshotRequired
	}
	return nil
}

// submit performs the two webhook calls for an already validated request.
// The two POSTs are deliberately non-atomic: if the screenshot call fails
// after the embed call succeeded, the embed stays delivered at the
// destination and the caller sees an error. A manual resubmit may then
// duplicate the embed; that mirrors the source behavior and is accepted.
func (s *CheckoutService) submit(ctx context.Context, product models.Product, req *models.OrderRequest, q pricing.Quote, reference string) error {
	price := fmt.Sprintf("₹%d", q.Final)
	if q.Free {
		price = "FREE"
	}

	fields := []webhook.Field{
		{Name: "📦 Product", Value: product.DisplayName(), Inline: true},
		{Name: "💰 Price", Value: price, Inline: true},
		{Name: "⏱️ Duration", Value: q.Descriptor, Inline: true},
		{Name: "🎯 Minecraft Username", Value: req.MinecraftUsername, Inline: true},
		{Name: "🔢 Transfer ID", Value: req.TransferID, Inline: true},
	}
	if r, ok := product.(models.Rank); ok && r.CustomName {
		fields = append(fields, webhook.Field{Name: "✨ Custom Name", Value: req.CustomName, Inline: true})
	}

	embed := webhook.Embed{
		Title:     "🎮 New Purchase Request!",
		Color:     0x00ff00,
		Fields:    fields,
		Timestamp: s.now().UTC().Format(time.RFC3339),
		Footer:    &webhook.Footer{Text: "SPICYSMP Store • " + reference},
	}

	if err := s.notifier.SendEmbed(ctx, embed); err != nil {
		s.logger.Printf("Order %s: embed delivery failed: %v", reference, err)
		return fmt.Errorf("%w: %v", ErrSubmitFailed, err)
	}

	caption := fmt.Sprintf("📸 Payment Screenshot for **%s** (Transfer ID: %s)", req.MinecraftUsername, req.TransferID)
	if err := s.notifier.SendFile(ctx, req.ScreenshotName, bytes.NewReader(req.Screenshot), caption); err != nil {
		s.logger.Printf("Order %s: screenshot delivery failed after embed was delivered: %v", reference, err)
		return fmt.Errorf("%w: %v", ErrSubmitFailed, err)
	}

	return nil
}

// Submit runs one full checkout attempt: lookup, validation, price
// recomputation from the current selection, then the two webhook calls.
func (s *CheckoutService) Submit(ctx context.Context, req *models.OrderRequest) (*models.OrderReceipt, error) {
	product, err := s.catalog.Lookup(req.ProductID)
	if err != nil {
		return nil, err
	}

	if err := validate(product, req); err != nil {
		return nil, err
	}

	sel := pricing.Selection{DurationIndex: req.DurationIndex, Quantity: req.Quantity}
	q, err := pricing.QuoteFor(product, sel, s.policy, s.now())
	if err != nil {
		return nil, err
	}

	reference := uuid.NewString()
	if err := s.submit(ctx, product, req, q, reference); err != nil {
		return nil, err
	}

	s.logger.Printf("Order %s submitted: %s %s for %s (₹%d)",
		reference, product.DisplayName(), q.Descriptor, req.MinecraftUsername, q.Final)

	return &models.OrderReceipt{
		Reference:   reference,
		Product:     product.DisplayName(),
		Descriptor:  q.Descriptor,
		PricePaid:   q.Final,
		SubmittedAt: s.now(),
	}, nil
}
