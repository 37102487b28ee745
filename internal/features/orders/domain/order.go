package domain

// Status is an order's lifecycle state.
type Status string

const (
	StatusPreparing Status = "preparing"
	StatusOnTheWay  Status = "on_the_way"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

// transitions encodes the order lifecycle. Delivered and cancelled are
// terminal.
var transitions = map[Status][]Status{
	StatusPreparing: {StatusOnTheWay, StatusCancelled},
	StatusOnTheWay:  {StatusDelivered, StatusCancelled},
	StatusDelivered: {},
	StatusCancelled: {},
}

// Valid reports whether s is a known lifecycle state.
func (s Status) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// Terminal reports whether no further transition is possible from s.
func (s Status) Terminal() bool {
	return len(transitions[s]) == 0
}

// CanTransitionTo reports whether the lifecycle permits moving from s to next.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Active reports whether the order still needs attention from the kitchen or
// a rider.
func (s Status) Active() bool {
	return s == StatusPreparing || s == StatusOnTheWay
}

// Style is the presentation hint attached to a status.
type Style struct {
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

var styles = map[Status]Style{
	StatusDelivered: {Color: "#22c55e", Icon: "check"},
	StatusPreparing: {Color: "#f97316", Icon: "chef-hat"},
	StatusOnTheWay:  {Color: "#3b82f6", Icon: "truck"},
	StatusCancelled: {Color: "#ef4444", Icon: "x"},
}

// StatusStyle returns the color and icon for a status. Unknown statuses get
// the neutral package style.
func StatusStyle(s Status) Style {
	if style, ok := styles[s]; ok {
		return style
	}
	return Style{Color: "#64748b", Icon: "package"}
}

// ProgressStep is one stage of the delivery progress strip.
type ProgressStep struct {
	Label string `json:"label"`
	State string `json:"state"` // "completed", "active" or "pending"
}

// Progress derives the three-step progress strip for an active order.
// Cancelled and delivered orders have no strip.
func Progress(s Status) []ProgressStep {
	if !s.Active() {
		return nil
	}
	steps := []ProgressStep{
		{Label: "Order Placed", State: "completed"},
		{Label: "Preparing", State: "pending"},
		{Label: "On The Way", State: "pending"},
	}
	switch s {
	case StatusPreparing:
		steps[1].State = "active"
	case StatusOnTheWay:
		steps[1].State = "completed"
		steps[2].State = "active"
	}
	return steps
}

// Line is one ordered item.
type Line struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    int    `json:"price"`
}

// Subtotal is the line price times quantity.
func (l Line) Subtotal() int {
	return l.Price * l.Quantity
}

// Order is one order record, past or in flight.
type Order struct {
	ID                string `json:"id"`
	Restaurant        string `json:"restaurant"`
	Status            Status `json:"status"`
	StatusText        string `json:"statusText"`
	Date              string `json:"date"`
	Time              string `json:"time"`
	Items             []Line `json:"items"`
	TotalAmount       int    `json:"totalAmount"`
	DeliveryAddress   string `json:"deliveryAddress"`
	RiderName         string `json:"riderName,omitempty"`
	RiderPhone        string `json:"riderPhone,omitempty"`
	PaymentMethod     string `json:"paymentMethod"`
	EstimatedDelivery string `json:"estimatedDelivery"`
	ActualDelivery    string `json:"actualDelivery,omitempty"`
	Rating            int    `json:"rating,omitempty"`
	CanReorder        bool   `json:"canReorder"`
}

// ItemsTotal sums the line subtotals.
func (o Order) ItemsTotal() int {
	total := 0
	for _, line := range o.Items {
		total += line.Subtotal()
	}
	return total
}

// Rated reports whether the order has already been rated.
func (o Order) Rated() bool {
	return o.Rating > 0
}
