package selection

import (
	"sync"

	"github.com/google/uuid"

	"github.com/rishitrebant/SoleConnect/catalog"
)

// DefaultProductID is the product a view falls back to when no id is
// supplied, matching the detail page's ?id= default.
const DefaultProductID = 1

// Manager holds the live product-view sessions for the process, keyed by
// session id.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	catalog  *catalog.Store
	cart     CartWriter
	wishlist WishlistWriter
}

func NewManager(store *catalog.Store, cart CartWriter, wishlist WishlistWriter) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		catalog:  store,
		cart:     cart,
		wishlist: wishlist,
	}
}

// Open starts a session against the identified product. A zero id falls
// back to the default product. Returns catalog.ErrProductNotFound when the
// id resolves to nothing; the caller owns the not-found policy.
func (m *Manager) Open(productID int) (*Session, error) {
	if productID == 0 {
		productID = DefaultProductID
	}
	p, err := m.catalog.GetByID(productID)
	if err != nil {
		return nil, err
	}

	s := NewSession(p, m.cart, m.wishlist)
	s.ID = uuid.NewString()

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s, nil
}

// Get looks up an open session.
func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Close discards a session. Only committed cart and wishlist entries
// survive the view.
func (m *Manager) Close(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}
