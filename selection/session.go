package selection

import (
	"errors"
	"sync"
	"time"

	"github.com/rishitrebant/SoleConnect/models"
)

// Step is the position in the size → vendor → cart progression.
type Step int

const (
	StepAwaitingSize Step = iota
	StepAwaitingVendor
	StepReady
)

func (s Step) String() string {
	switch s {
	case StepAwaitingSize:
		return "awaiting_size"
	case StepAwaitingVendor:
		return "awaiting_vendor"
	case StepReady:
		return "ready"
	}
	return "unknown"
}

var (
	// ErrInvalidSize rejects a size the product is not stocked in.
	ErrInvalidSize = errors.New("size not available for this product")
	// ErrUnknownVendor rejects a vendor name the product has no offer from.
	ErrUnknownVendor = errors.New("unknown vendor")
	// ErrPreconditionNotMet rejects vendor selection or wishlist toggles
	// before a size has been chosen.
	ErrPreconditionNotMet = errors.New("select a size first")
	// ErrIncompleteSelection rejects a cart commit before both size and
	// vendor are chosen.
	ErrIncompleteSelection = errors.New("complete all selection steps first")
)

// CartWriter and WishlistWriter are the slices of the persistence gateway
// the state machine commits through.
type CartWriter interface {
	Add(models.CartEntry) error
}

type WishlistWriter interface {
	Add(models.WishlistEntry) error
	Remove(productID, size int) error
}

// Session tracks one product view's selection progress. Every transition
// is all-or-nothing: a rejected call leaves both the session and storage
// exactly as they were.
type Session struct {
	ID      string
	Product *models.Product

	mu             sync.Mutex
	step           Step
	selectedSize   int
	sizeChosen     bool
	selectedVendor *models.Vendor
	bestPrice      bool
	wishlisted     bool

	cart     CartWriter
	wishlist WishlistWriter
}

// NewSession opens a selection session against a loaded product.
func NewSession(p *models.Product, cart CartWriter, wishlist WishlistWriter) *Session {
	return &Session{
		Product:  p,
		step:     StepAwaitingSize,
		cart:     cart,
		wishlist: wishlist,
	}
}

// State is an immutable view of the session for the presentation layer.
type State struct {
	SessionID    string
	ProductID    int
	Step         Step
	Size         int
	SizeChosen   bool
	Vendor       string
	VendorChosen bool
	BestPrice    bool
	Wishlisted   bool
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := State{
		SessionID:  s.ID,
		ProductID:  s.Product.ID,
		Step:       s.step,
		Size:       s.selectedSize,
		SizeChosen: s.sizeChosen,
		Wishlisted: s.wishlisted,
	}
	if s.selectedVendor != nil {
		st.Vendor = s.selectedVendor.Name
		st.VendorChosen = true
		st.BestPrice = s.bestPrice
	}
	return st
}

// SelectSize records the shopper's size choice. Progression is monotonic:
// re-selecting a size later in the flow updates the size but neither
// regresses the step nor clears an already chosen vendor.
func (s *Session) SelectSize(size int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.Product.IsSizeAvailable(size) {
		return ErrInvalidSize
	}
	s.selectedSize = size
	s.sizeChosen = true
	if s.step == StepAwaitingSize {
		s.step = StepAwaitingVendor
	}
	return nil
}

// SelectVendor resolves the named vendor within the product's offers and
// completes the selection. Requires a size to have been chosen first.
func (s *Session) SelectVendor(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.sizeChosen {
		return ErrPreconditionNotMet
	}
	v, ok := s.Product.VendorByName(name)
	if !ok {
		return ErrUnknownVendor
	}
	s.selectedVendor = v
	s.bestPrice = v.Price.Equal(s.Product.LowestVendorPrice())
	s.step = StepReady
	return nil
}

// ToggleWishlist flips the wishlist flag for the currently selected size
// and mirrors the flip into storage, so toggling twice leaves the stored
// list exactly as it started. The flag only flips after the write lands.
func (s *Session) ToggleWishlist() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.sizeChosen {
		return false, ErrPreconditionNotMet
	}
	if s.wishlisted {
		if err := s.wishlist.Remove(s.Product.ID, s.selectedSize); err != nil {
			return s.wishlisted, err
		}
		s.wishlisted = false
		return false, nil
	}
	entry := models.WishlistEntry{
		ProductSnapshot: models.SnapshotOf(s.Product),
		Size:            s.selectedSize,
		AddedAt:         time.Now(),
	}
	if err := s.wishlist.Add(entry); err != nil {
		return s.wishlisted, err
	}
	s.wishlisted = true
	return true, nil
}

// CommitToCart appends a snapshot of the completed selection. Each call
// appends a fresh entry: quantity is modeled as repetition, not a counter.
// The session stays ready so the shopper can add again.
func (s *Session) CommitToCart() (models.CartEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.step != StepReady {
		return models.CartEntry{}, ErrIncompleteSelection
	}
	v := s.selectedVendor
	entry := models.CartEntry{
		ProductSnapshot: models.SnapshotOf(s.Product),
		Size:            s.selectedSize,
		Vendor: models.VendorSnapshot{
			Name:     v.Name,
			Price:    v.Price,
			Rating:   v.Rating,
			Verified: v.Verified,
		},
		Price:       v.Price,
		IsBestPrice: s.bestPrice,
		AddedAt:     time.Now(),
	}
	if err := s.cart.Add(entry); err != nil {
		return models.CartEntry{}, err
	}
	return entry, nil
}
