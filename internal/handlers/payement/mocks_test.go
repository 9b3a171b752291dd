package payement

import (
	"context"
	"errors"
	"sync"

	"joedank_back_end/internal/models"

	"github.com/stripe/stripe-go/v83"
)

type stubSessionAPI struct {
	mu         sync.Mutex
	lastParams *stripe.CheckoutSessionParams
	createErr  error

	lineItems   []*stripe.LineItem
	listErr     error
	listedCalls int
}

func (s *stubSessionAPI) CreateSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastParams = params
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &stripe.CheckoutSession{
		ID:  "cs_test_1",
		URL: "https://checkout.stripe.com/c/pay/cs_test_1",
	}, nil
}

func (s *stubSessionAPI) ListLineItems(string) ([]*stripe.LineItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listedCalls++
	return s.lineItems, s.listErr
}

type sentMail struct {
	To      string
	Subject string
	HTML    string
}

type stubMailer struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (m *stubMailer) Send(to, subject, htmlBody string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, HTML: htmlBody})
	return nil
}

func (m *stubMailer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

type memEventStore struct {
	mu   sync.Mutex
	seen map[string]bool
}

func newMemEventStore() *memEventStore {
	return &memEventStore{seen: make(map[string]bool)}
}

func (s *memEventStore) MarkProcessed(_ context.Context, eventID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seen[eventID] {
		return false, nil
	}
	s.seen[eventID] = true
	return true, nil
}

type memCartStore struct {
	mu    sync.Mutex
	carts map[string][]models.CartItem
	err   error
}

func newMemCartStore() *memCartStore {
	return &memCartStore{carts: make(map[string][]models.CartItem)}
}

func (s *memCartStore) GetCart(_ context.Context, cartID string) ([]models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	items, ok := s.carts[cartID]
	if !ok {
		return []models.CartItem{}, nil
	}
	return items, nil
}

func (s *memCartStore) SaveCart(_ context.Context, cartID string, items []models.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.carts[cartID] = items
	return nil
}

func (s *memCartStore) DeleteCart(_ context.Context, cartID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	delete(s.carts, cartID)
	return nil
}

var errStripeDown = errors.New("stripe: something went wrong")
