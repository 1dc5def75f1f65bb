package api

import (
	"context"

	"github.com/google/uuid"

	"github.com/davrell/storefront-api/internal/domain"
	"github.com/davrell/storefront-api/internal/service/auth"
	"github.com/davrell/storefront-api/internal/store"
)

// In-memory store implementations backing handler tests. Each mirrors
// the sentinel error contract of its interface so handlers can be
// exercised without a database.

type mockUserStore struct {
	users     map[string]*domain.User
	createErr error
}

var _ store.UserStore = (*mockUserStore)(nil)

func newMockUserStore() *mockUserStore {
	return &mockUserStore{users: make(map[string]*domain.User)}
}

func (s *mockUserStore) Create(_ context.Context, user *domain.User) error {
	if s.createErr != nil {
		return s.createErr
	}
	if _, exists := s.users[user.Username]; exists {
		return store.ErrUsernameExists
	}
	s.users[user.Username] = user
	return nil
}

func (s *mockUserStore) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	for _, user := range s.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, store.ErrUserNotFound
}

func (s *mockUserStore) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	user, ok := s.users[username]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}

type mockItemStore struct {
	items []domain.Item
}

var _ store.ItemStore = (*mockItemStore)(nil)

func (s *mockItemStore) GetAll(_ context.Context) ([]domain.Item, error) {
	return s.items, nil
}

func (s *mockItemStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Item, error) {
	for i := range s.items {
		if s.items[i].ID == id {
			item := s.items[i]
			return &item, nil
		}
	}
	return nil, store.ErrItemNotFound
}

func (s *mockItemStore) GetByName(_ context.Context, name string) ([]domain.Item, error) {
	var matches []domain.Item
	for _, item := range s.items {
		if item.Name == name {
			matches = append(matches, item)
		}
	}
	if len(matches) == 0 {
		return nil, store.ErrItemNotFound
	}
	return matches, nil
}

type mockCartStore struct {
	carts   map[string]*domain.Cart
	saveErr error
}

var _ store.CartStore = (*mockCartStore)(nil)

func newMockCartStore() *mockCartStore {
	return &mockCartStore{carts: make(map[string]*domain.Cart)}
}

func (s *mockCartStore) Create(_ context.Context, cart *domain.Cart) error {
	if _, exists := s.carts[cart.Username]; exists {
		return store.ErrDuplicate
	}
	s.carts[cart.Username] = cart
	return nil
}

func (s *mockCartStore) GetByUsername(_ context.Context, username string) (*domain.Cart, error) {
	cart, ok := s.carts[username]
	if !ok {
		return nil, store.ErrCartNotFound
	}
	// Hand out a copy so the handler's load-mutate-save cycle is honest.
	items := make([]domain.Item, len(cart.Items))
	copy(items, cart.Items)
	return &domain.Cart{
		ID:         cart.ID,
		Username:   cart.Username,
		Items:      items,
		TotalCents: cart.TotalCents,
	}, nil
}

func (s *mockCartStore) Save(_ context.Context, cart *domain.Cart) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	if _, ok := s.carts[cart.Username]; !ok {
		return store.ErrCartNotFound
	}
	s.carts[cart.Username] = cart
	return nil
}

type mockOrderStore struct {
	orders    map[string][]domain.Order
	createErr error
}

var _ store.OrderStore = (*mockOrderStore)(nil)

func newMockOrderStore() *mockOrderStore {
	return &mockOrderStore{orders: make(map[string][]domain.Order)}
}

func (s *mockOrderStore) Create(_ context.Context, order *domain.Order) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.orders[order.Username] = append([]domain.Order{*order}, s.orders[order.Username]...)
	return nil
}

func (s *mockOrderStore) GetByUsername(_ context.Context, username string) ([]domain.Order, error) {
	return s.orders[username], nil
}

// mockCredentialVerifier accepts a single fixed username/password pair.
type mockCredentialVerifier struct {
	username string
	password string
	err      error
}

var _ auth.CredentialVerifier = (*mockCredentialVerifier)(nil)

func (v *mockCredentialVerifier) Verify(_ context.Context, username, password string) (string, error) {
	if v.err != nil {
		return "", v.err
	}
	if username == v.username && password == v.password {
		return v.username, nil
	}
	return "", auth.ErrInvalidCredentials
}

// mockTokenService mints a fixed token string.
type mockTokenService struct {
	token       string
	generateErr error
}

var _ auth.TokenService = (*mockTokenService)(nil)

func (s *mockTokenService) GenerateToken(_ context.Context, username string) (string, error) {
	if s.generateErr != nil {
		return "", s.generateErr
	}
	return s.token, nil
}

func (s *mockTokenService) ValidateToken(_ context.Context, token string) (string, error) {
	if token == s.token {
		return "subject", nil
	}
	return "", auth.ErrInvalidToken
}
