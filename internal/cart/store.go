// Package cart holds the per-session shopping cart: line items, derived
// totals, and the auto-show/hide presentation state of the cart panel.
package cart

import (
	"errors"
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/AhmedAbdoRH/perfume-ambassador-backend/internal/whatsapp"
)

// ErrEmptyCart is returned when an order message is requested for a cart with
// no items. It is a user-facing warning, not a failure.
var ErrEmptyCart = errors.New("cart is empty")

// Store owns the line items of one browsing session. It is constructed
// explicitly and injected where needed; there is no shared singleton.
// All operations are atomic from the caller's perspective: the mutex makes
// the single-writer model hold even though HTTP handlers run concurrently.
type Store struct {
	mu            sync.Mutex
	items         []Item
	isOpen        bool
	isAutoShowing bool
	hideTimer     *time.Timer

	shippingFee   float64
	autoHideAfter time.Duration
}

// NewStore creates an empty cart. shippingFee is added once per order,
// autoHideAfter bounds how long an auto-shown panel stays open.
func NewStore(shippingFee float64, autoHideAfter time.Duration) *Store {
	return &Store{
		shippingFee:   shippingFee,
		autoHideAfter: autoHideAfter,
	}
}

// AddItem merges the candidate into the cart. A line item with the same title
// gets its quantity incremented and keeps its first-seen price and metadata;
// otherwise a new line item with quantity 1 is appended. Adding always
// auto-shows the panel and re-arms the hide countdown.
func (s *Store) AddItem(c Candidate) Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	numeric := c.Price.Numeric
	if numeric < 0 {
		numeric = 0
	}

	var added Item
	found := false
	for i := range s.items {
		if s.items[i].Title == c.Title {
			s.items[i].Quantity++
			added = s.items[i]
			found = true
			break
		}
	}
	if !found {
		added = Item{
			ID:           uuid.NewString(),
			Title:        c.Title,
			DisplayPrice: c.Price.Display,
			NumericPrice: numeric,
			Quantity:     1,
			ImageURL:     c.ImageURL,
			ProductID:    c.ProductID,
		}
		s.items = append(s.items, added)
	}

	s.showTemporarilyLocked()
	return added
}

// RemoveItem deletes the line item with the given id. Removing the last item
// while the panel is auto-showing force-closes it.
func (s *Store) RemoveItem(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeLocked(id)
}

func (s *Store) removeLocked(id string) bool {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			if len(s.items) == 0 && s.isAutoShowing {
				s.closeLocked()
			}
			return true
		}
	}
	return false
}

// SetQuantity replaces the line item's quantity. Anything below 1 removes the
// item instead, so quantity >= 1 always holds.
func (s *Store) SetQuantity(id string, quantity int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity < 1 {
		return s.removeLocked(id)
	}
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = quantity
			return true
		}
	}
	return false
}

// Clear empties the cart. Presentation state is left alone.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// Toggle sets the panel visibility. A nil open flips the current state.
// An explicit toggle supersedes a pending auto-hide countdown, and closing
// always clears the auto-showing flag.
func (s *Store) Toggle(open *bool) Presentation {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopTimerLocked()

	next := !s.isOpen
	if open != nil {
		next = *open
	}
	s.isOpen = next
	if !next {
		s.isAutoShowing = false
	}
	return Presentation{IsOpen: s.isOpen, IsAutoShowing: s.isAutoShowing}
}

// Items returns the line items in insertion order.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.itemsLocked()
}

func (s *Store) itemsLocked() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// ItemCount is the sum of quantities over all line items.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.itemCountLocked()
}

func (s *Store) itemCountLocked() int {
	n := 0
	for _, it := range s.items {
		n += it.Quantity
	}
	return n
}

// Subtotal is the sum of price×quantity as a 2-decimal fixed string,
// recomputed on every call.
func (s *Store) Subtotal() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fixed2(s.subtotalLocked())
}

// Total is subtotal plus the shipping fee, as a 2-decimal fixed string.
func (s *Store) Total() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fixed2(s.totalLocked())
}

func (s *Store) subtotalLocked() float64 {
	sum := 0.0
	for _, it := range s.items {
		sum += it.NumericPrice * float64(it.Quantity)
	}
	return round2(sum)
}

func (s *Store) totalLocked() float64 {
	return round2(s.subtotalLocked() + s.shippingFee)
}

// Presentation reports the current panel visibility state.
func (s *Store) Presentation() Presentation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Presentation{IsOpen: s.isOpen, IsAutoShowing: s.isAutoShowing}
}

// Snapshot captures items, derived totals, and presentation in one read.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		Items:        s.itemsLocked(),
		ItemCount:    s.itemCountLocked(),
		Subtotal:     fixed2(s.subtotalLocked()),
		ShippingFee:  s.shippingFee,
		Total:        fixed2(s.totalLocked()),
		Presentation: Presentation{IsOpen: s.isOpen, IsAutoShowing: s.isAutoShowing},
	}
}

// WhatsAppOrder formats the cart into an order message and the wa.me deep
// link for it. An empty cart returns ErrEmptyCart and emits nothing. On
// success the panel is closed; the composer performs no network I/O.
func (s *Store) WhatsAppOrder(c *whatsapp.Composer) (message, link string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.items) == 0 {
		return "", "", ErrEmptyCart
	}

	lines := make([]whatsapp.Line, 0, len(s.items))
	for _, it := range s.items {
		lines = append(lines, whatsapp.Line{
			Title:        it.Title,
			Quantity:     it.Quantity,
			DisplayPrice: it.DisplayPrice,
		})
	}

	message = c.Compose(lines, fixed2(s.subtotalLocked()), fixed2(s.shippingFee), fixed2(s.totalLocked()))
	link = c.Link(message)

	s.stopTimerLocked()
	s.closeLocked()
	return message, link, nil
}

// showTemporarilyLocked opens the panel and (re-)arms the auto-hide countdown.
// Each new trigger resets an in-flight timer so the panel never closes in the
// middle of a burst of adds.
func (s *Store) showTemporarilyLocked() {
	s.isOpen = true
	s.isAutoShowing = true

	s.stopTimerLocked()
	if s.autoHideAfter <= 0 {
		return
	}
	s.hideTimer = time.AfterFunc(s.autoHideAfter, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.isAutoShowing {
			s.closeLocked()
		}
	})
}

func (s *Store) closeLocked() {
	s.isOpen = false
	s.isAutoShowing = false
}

func (s *Store) stopTimerLocked() {
	if s.hideTimer != nil {
		s.hideTimer.Stop()
		s.hideTimer = nil
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func fixed2(v float64) string {
	return strconv.FormatFloat(round2(v), 'f', 2, 64)
}
