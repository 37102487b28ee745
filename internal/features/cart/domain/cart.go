package domain

// Item represents one line in the cart.
type Item struct {
	// ID is unique within the cart collection.
	ID int `json:"id"`
	// Name is the dish display name.
	Name string `json:"name"`
	// Restaurant is the name of the restaurant serving the dish.
	Restaurant string `json:"restaurant"`
	// Price is the unit price in the smallest currency unit.
	Price int `json:"price"`
	// Quantity is the chosen quantity, never below 1.
	Quantity int `json:"quantity"`
	// Image is the dish image URL.
	Image string `json:"image"`
	// Tags are free-text badges shown on the line.
	Tags []string `json:"tags"`
	// DeliveryTime is the estimated delivery range (e.g. "25-30 min").
	DeliveryTime string `json:"deliveryTime"`
}

// Subtotal is the line subtotal (unit price times quantity).
func (i Item) Subtotal() int {
	return i.Price * i.Quantity
}

// Pricing holds the fee constants applied to every summary.
type Pricing struct {
	DeliveryFee int
	PlatformFee int
	Discount    int
}

// Summary is the aggregate block rendered next to the cart.
type Summary struct {
	ItemCount   int `json:"itemCount"`
	Subtotal    int `json:"subtotal"`
	DeliveryFee int `json:"deliveryFee"`
	PlatformFee int `json:"platformFee"`
	Discount    int `json:"discount"`
	// Total is subtotal + fees - discount. The discount is subtracted
	// unconditionally, so a small cart can surface a negative total.
	Total int `json:"total"`
	// Savings mirrors the discount for the savings card.
	Savings int `json:"savings"`
}

// Summarize computes the aggregate block for the given lines. The delivery
// fee is waived on an empty cart; the platform fee and discount always apply.
func Summarize(items []Item, p Pricing) Summary {
	subtotal := 0
	for _, item := range items {
		subtotal += item.Subtotal()
	}

	deliveryFee := 0
	if len(items) > 0 {
		deliveryFee = p.DeliveryFee
	}

	return Summary{
		ItemCount:   len(items),
		Subtotal:    subtotal,
		DeliveryFee: deliveryFee,
		PlatformFee: p.PlatformFee,
		Discount:    p.Discount,
		Total:       subtotal + deliveryFee + p.PlatformFee - p.Discount,
		Savings:     p.Discount,
	}
}

// Address is the delivery address block shown above the cart.
type Address struct {
	Label             string `json:"label"`
	Street            string `json:"street"`
	ETA               string `json:"eta"`
	FreeDeliveryAbove int    `json:"freeDeliveryAbove"`
}

// Recommended is a cross-sell suggestion shown under the cart items.
type Recommended struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
	Image string `json:"image"`
}

// Coupon is an advertised coupon code.
type Coupon struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}
