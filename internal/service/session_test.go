package service_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"spicysmp_store/internal/models"
	"spicysmp_store/internal/service"
)

func fillValid(s *service.Session) {
	s.Update(func(r *models.OrderRequest) {
		r.MinecraftUsername = "Steve"
		r.TransferID = "TX12345"
		r.ScreenshotName = "payment.png"
		r.Screenshot = []byte("fake-png-bytes")
	})
}

func TestSessionLifecycle(t *testing.T) {
	notifier := &fakeNotifier{}
	svc := newService(t, notifier)

	s := svc.NewSession("pro")
	require.Equal(t, service.StateIdle, s.State())

	// Validation failure returns to Idle and preserves entered values.
	s.Update(func(r *models.OrderRequest) { r.MinecraftUsername = "Steve" })
	_, err := s.Submit(context.Background())
	require.ErrorIs(t, err, service.ErrTransferIDRequired)
	require.Equal(t, service.StateIdle, s.State())
	require.Equal(t, "Steve", s.Request().MinecraftUsername)
	require.Empty(t, notifier.embeds)

	fillValid(s)
	receipt, err := s.Submit(context.Background())
	require.NoError(t, err)
	require.Equal(t, service.StateSubmitted, s.State())
	require.Equal(t, receipt, s.Receipt())
	require.Len(t, notifier.embeds, 1)
}

func TestSessionRejectsDoubleSubmit(t *testing.T) {
	notifier := &fakeNotifier{}
	svc := newService(t, notifier)

	s := svc.NewSession("pro")
	fillValid(s)

	_, err := s.Submit(context.Background())
	require.NoError(t, err)

	_, err = s.Submit(context.Background())
	require.ErrorIs(t, err, service.ErrAlreadySubmitted)
	require.Len(t, notifier.embeds, 1, "second submit must not fire the webhook again")

	// Terminal state also drops edits.
	s.Update(func(r *models.OrderRequest) { r.MinecraftUsername = "Alex" })
	require.Equal(t, "Steve", s.Request().MinecraftUsername)
}

func TestSessionConcurrentSubmitFiresOnce(t *testing.T) {
	notifier := &fakeNotifier{}
	svc := newService(t, notifier)

	s := svc.NewSession("pro")
	fillValid(s)

	const clicks = 8
	var wg sync.WaitGroup
	errs := make([]error, clicks)
	for i := 0; i < clicks; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.Submit(context.Background())
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			require.ErrorIs(t, err, service.ErrAlreadySubmitted)
		}
	}
	require.Equal(t, 1, succeeded)
	require.Len(t, notifier.embeds, 1)
	require.Len(t, notifier.files, 1)
}

func TestSessionTransportFailureKeepsFields(t *testing.T) {
	notifier := &fakeNotifier{failNext: "embed"}
	svc := newService(t, notifier)

	s := svc.NewSession("pro")
	fillValid(s)

	_, err := s.Submit(context.Background())
	require.ErrorIs(t, err, service.ErrSubmitFailed)
	require.Equal(t, service.StateIdle, s.State())
	require.Equal(t, "Steve", s.Request().MinecraftUsername)
	require.Equal(t, "TX12345", s.Request().TransferID)
	require.NotEmpty(t, s.Request().Screenshot)

	// A fresh manual retry succeeds once the transport recovers.
	notifier.failNext = ""
	_, err = s.Submit(context.Background())
	require.NoError(t, err)
	require.Equal(t, service.StateSubmitted, s.State())
}
