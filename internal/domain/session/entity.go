// internal/domain/session/entity.go
package session

// User represents the authenticated identity held by a browser session
type User struct {
	UserID      int64  `json:"user_id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	// AuthToken is the JWT issued by the auth service, forwarded on
	// calls to the orders service.
	AuthToken string `json:"auth_token"`
	// BenefitPercent is the profile-level general discount granted at
	// registration (senior, institutional email or promo code).
	BenefitPercent int `json:"benefit_percent"`
}

// Item is a single cart line. UnitPrice already includes the profile-level
// general discount; Quantity never drops below 1.
type Item struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	ImageRef  string `json:"image_ref,omitempty"`
}

// Cart is an ordered sequence of items keyed by product ID
type Cart []Item

// ItemCount returns the number of distinct products in the cart
func (c Cart) ItemCount() int {
	return len(c)
}

// TotalQuantity returns the sum of all line quantities
func (c Cart) TotalQuantity() int {
	total := 0
	for _, item := range c {
		total += item.Quantity
	}
	return total
}

// Find returns the index of the item with the given product ID, or -1
func (c Cart) Find(productID int64) int {
	for i := range c {
		if c[i].ProductID == productID {
			return i
		}
	}
	return -1
}
