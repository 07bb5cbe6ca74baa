package selectioncontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rishitrebant/SoleConnect/catalog"
	"github.com/rishitrebant/SoleConnect/selection"
)

type startInput struct {
	ProductID int `json:"product_id"`
}

type sizeInput struct {
	Size int `json:"size" binding:"required"`
}

type vendorInput struct {
	Vendor string `json:"vendor" binding:"required"`
}

// statePayload is what every session endpoint answers with: the current
// step, the selections made so far, and which affordances are enabled.
func statePayload(st selection.State) gin.H {
	payload := gin.H{
		"session_id":        st.SessionID,
		"product_id":        st.ProductID,
		"step":              st.Step.String(),
		"wishlisted":        st.Wishlisted,
		"can_select_vendor": st.Step != selection.StepAwaitingSize,
		"can_add_to_cart":   st.Step == selection.StepReady,
	}
	if st.SizeChosen {
		payload["selected_size"] = st.Size
	}
	if st.VendorChosen {
		payload["selected_vendor"] = st.Vendor
		payload["is_best_price"] = st.BestPrice
	}
	return payload
}

// StartSession opens a product-view session.
// POST /session
func StartSession(m *selection.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input startInput
		// An empty body means the default product, like an absent ?id=.
		_ = c.ShouldBindJSON(&input)

		s, err := m.Open(input.ProductID)
		if err != nil {
			if errors.Is(err, catalog.ErrProductNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start session"})
			}
			return
		}
		c.JSON(http.StatusCreated, statePayload(s.State()))
	}
}

// GetSession reports the current step and selections.
// GET /session/:id
func GetSession(m *selection.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := m.Get(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}
		c.JSON(http.StatusOK, statePayload(s.State()))
	}
}

// SelectSize records the size choice.
// POST /session/:id/size
func SelectSize(m *selection.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := m.Get(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}

		var input sizeInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := s.SelectSize(input.Size); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Size not available for this product"})
			return
		}
		c.JSON(http.StatusOK, statePayload(s.State()))
	}
}

// SelectVendor resolves the vendor and completes the selection.
// POST /session/:id/vendor
func SelectVendor(m *selection.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := m.Get(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}

		var input vendorInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := s.SelectVendor(input.Vendor); err != nil {
			switch {
			case errors.Is(err, selection.ErrPreconditionNotMet):
				c.JSON(http.StatusConflict, gin.H{"error": "Please select a size first"})
			case errors.Is(err, selection.ErrUnknownVendor):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown vendor"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to select vendor"})
			}
			return
		}
		c.JSON(http.StatusOK, statePayload(s.State()))
	}
}

// ToggleWishlist flips the wishlist flag for the selected size.
// POST /session/:id/wishlist
func ToggleWishlist(m *selection.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := m.Get(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}

		wishlisted, err := s.ToggleWishlist()
		if err != nil {
			if errors.Is(err, selection.ErrPreconditionNotMet) {
				c.JSON(http.StatusConflict, gin.H{"error": "Please select a size first"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update wishlist"})
			}
			return
		}

		payload := statePayload(s.State())
		if wishlisted {
			payload["message"] = "Added to wishlist!"
		} else {
			payload["message"] = "Removed from wishlist!"
		}
		c.JSON(http.StatusOK, payload)
	}
}

// AddToCart commits the completed selection. Repeatable: every call
// appends another entry.
// POST /session/:id/cart
func AddToCart(m *selection.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := m.Get(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
			return
		}

		entry, err := s.CommitToCart()
		if err != nil {
			if errors.Is(err, selection.ErrIncompleteSelection) {
				c.JSON(http.StatusConflict, gin.H{"error": "Please complete all selection steps"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to cart"})
			}
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"entry": entry,
			"state": statePayload(s.State()),
		})
	}
}

// CloseSession discards the view session. Committed entries survive it.
// DELETE /session/:id
func CloseSession(m *selection.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		m.Close(c.Param("id"))
		c.JSON(http.StatusOK, gin.H{"message": "Session closed"})
	}
}
