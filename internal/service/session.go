package service

import (
	"context"
	"sync"

	"spicysmp_store/internal/models"
)

// SessionState is the lifecycle of one checkout attempt.
type SessionState int

const (
	StateIdle SessionState = iota
	StateValidating
	StateSubmitting
	StateSubmitted
)

func (s SessionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateSubmitting:
		return "submitting"
	case StateSubmitted:
		return "submitted"
	default:
		return "unknown"
	}
}

// Session owns one checkout form's submission lifecycle:
//
//	Idle -> Validating -> Idle (field error)
//	                   -> Submitting -> Submitted (terminal)
//	                                 -> Idle (transport error, fields kept)
//
// While Submitting or once Submitted, further Submit calls fail with
// ErrAlreadySubmitted, so a double click cannot fire the webhook twice.
// Each checkout view owns its session exclusively; the mutex only guards
// against the double-submit race on the trigger itself.
type Session struct {
	svc *CheckoutService

	mu      sync.Mutex
	state   SessionState
	request models.OrderRequest
	receipt *models.OrderReceipt
}

// NewSession starts an idle session for one product.
func (s *CheckoutService) NewSession(productID string) *Session {
	return &Session{
		svc:     s,
		request: models.OrderRequest{ProductID: productID, Quantity: 1},
	}
}

// State reports the current lifecycle state.
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Receipt returns the submission receipt once the session is Submitted.
func (s *Session) Receipt() *models.OrderReceipt {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.receipt
}

// Request returns a copy of the current form state. Field values survive
// failed attempts; nothing is cleared on error.
func (s *Session) Request() models.OrderRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.request
}

// Update edits the form while the session is editable. Edits during
// Submitting or after Submitted are dropped.
func (s *Session) Update(fn func(*models.OrderRequest)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateSubmitting || s.state == StateSubmitted {
		return
	}
	fn(&s.request)
}

// Submit runs one submission attempt through the service. On a
// validation or transport error the session returns to Idle with all
// entered values preserved; on success it reaches the terminal
// Submitted state.
func (s *Session) Submit(ctx context.Context) (*models.OrderReceipt, error) {
	s.mu.Lock()
	if s.state == StateSubmitting || s.state == StateSubmitted {
		s.mu.Unlock()
		return nil, ErrAlreadySubmitted
	}
	s.state = StateValidating
	product, err := s.svc.catalog.Lookup(s.request.ProductID)
	if err == nil {
		err = validate(product, &s.request)
	}
	if err != nil {
		s.state = StateIdle
		s.mu.Unlock()
		return nil, err
	}
	s.state = StateSubmitting
	req := s.request
	s.mu.Unlock()

	receipt, err := s.svc.Submit(ctx, &req)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = StateIdle
		return nil, err
	}
	s.state = StateSubmitted
	s.receipt = receipt
	return receipt, nil
}
