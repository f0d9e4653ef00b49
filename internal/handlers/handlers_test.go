package handlers

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"avoska-api/internal/middleware"
	"avoska-api/internal/models"
	"avoska-api/internal/session"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// In-memory fakes for the store and session interfaces, shared by the
// handler tests in this package.

type memSessionStore struct {
	entries map[string]string
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{entries: map[string]string{}}
}

func (s *memSessionStore) Set(ctx context.Context, token, userID string) error {
	s.entries[token] = userID
	return nil
}

func (s *memSessionStore) Get(ctx context.Context, token string) (string, error) {
	v, ok := s.entries[token]
	if !ok {
		return "", session.ErrNotFound
	}
	return v, nil
}

func (s *memSessionStore) only(t *testing.T) string {
	t.Helper()
	require.Len(t, s.entries, 1)
	for _, v := range s.entries {
		return v
	}
	return ""
}

type fakeUserStore struct {
	nextID int64
	users  map[string]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*models.User{}}
}

func (f *fakeUserStore) Create(ctx context.Context, fullName, phone, email, login, passwordHash string) (int64, error) {
	if _, exists := f.users[login]; exists {
		return 0, errors.New("Duplicate entry '" + login + "' for key 'users.login'")
	}
	f.nextID++
	f.users[login] = &models.User{
		ID:           int(f.nextID),
		FullName:     fullName,
		Login:        login,
		PasswordHash: passwordHash,
	}
	return f.nextID, nil
}

func (f *fakeUserStore) GetByLogin(ctx context.Context, login string) (*models.User, error) {
	user, ok := f.users[login]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return user, nil
}

type storedOrder struct {
	id      int64
	userID  int
	address string
	status  string
}

type storedItem struct {
	orderID   int64
	productID int
	quantity  int
}

type fakeOrderStore struct {
	nextID        int64
	orders        []storedOrder
	items         []storedItem
	productNames  map[int]string
	failProductID int
	adminRows     []models.AdminOrderRow
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{productNames: map[int]string{}}
}

func (f *fakeOrderStore) Insert(ctx context.Context, userID int, deliveryAddress string) (int64, error) {
	f.nextID++
	f.orders = append(f.orders, storedOrder{id: f.nextID, userID: userID, address: deliveryAddress, status: "новый"})
	return f.nextID, nil
}

func (f *fakeOrderStore) InsertItem(ctx context.Context, orderID int64, productID, quantity int) error {
	if productID == f.failProductID {
		return errors.New("foreign key constraint fails")
	}
	f.items = append(f.items, storedItem{orderID: orderID, productID: productID, quantity: quantity})
	return nil
}

func (f *fakeOrderStore) Delete(ctx context.Context, orderID int64) error {
	kept := f.orders[:0]
	for _, o := range f.orders {
		if o.id != orderID {
			kept = append(kept, o)
		}
	}
	f.orders = kept
	return nil
}

func (f *fakeOrderStore) ListByUser(ctx context.Context, sessionUserID string) ([]models.Order, error) {
	result := []models.Order{}
	for _, o := range f.orders {
		if strconv.Itoa(o.userID) == sessionUserID {
			result = append(result, models.Order{ID: int(o.id), DeliveryAddress: o.address, Status: o.status})
		}
	}
	return result, nil
}

func (f *fakeOrderStore) ListItems(ctx context.Context, orderID int) ([]models.OrderItem, error) {
	result := []models.OrderItem{}
	for _, item := range f.items {
		if item.orderID == int64(orderID) {
			result = append(result, models.OrderItem{
				ProductName: f.productNames[item.productID],
				Quantity:    item.quantity,
			})
		}
	}
	return result, nil
}

func (f *fakeOrderStore) ListAllJoined(ctx context.Context) ([]models.AdminOrderRow, error) {
	return f.adminRows, nil
}

func (f *fakeOrderStore) UpdateStatus(ctx context.Context, orderID, status string) error {
	for i := range f.orders {
		if strconv.FormatInt(f.orders[i].id, 10) == orderID {
			f.orders[i].status = status
		}
	}
	return nil
}

type fakeProductStore struct {
	products []models.Product
	err      error
}

func (f *fakeProductStore) List(ctx context.Context) ([]models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.products, nil
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

var testSecret = []byte("test-secret")

const testCookie = "session_id"

// withSessionUser stamps the request context the way the session
// middleware would after resolving a valid cookie.
func withSessionUser(req *http.Request, userID string) *http.Request {
	ctx := context.WithValue(req.Context(), middleware.SessionUserKey, userID)
	return req.WithContext(ctx)
}

func doJSON(t *testing.T, handler http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}
