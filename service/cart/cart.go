package cart

import (
	"fmt"
	"sync"
	"time"

	"mbs.GO/config"
	catalogEntity "mbs.GO/model/entity/catalog"
	orderEntity "mbs.GO/model/entity/order"
	orderRepo "mbs.GO/model/repository/order"
	catalogService "mbs.GO/service/catalog"
	orderService "mbs.GO/service/order"
)

// Cart accumulates line items for one session. Lines merge by synthesized
// id, so adding the same variant twice bumps its quantity.
type Cart struct {
	mu    sync.Mutex
	items []orderEntity.LineItem
}

func NewCart() *Cart {
	return &Cart{}
}

// LineID synthesizes the cart line id for a product variant. Products
// without a color selection get the "default" suffix.
func LineID(productID, colorID string) string {
	if colorID == "" {
		colorID = "default"
	}
	return productID + "-" + colorID
}

// LineFromColor builds a line for a color variant. The unit price is the
// variant price at the bulk tier matching qty; the name carries the variant.
func LineFromColor(p catalogEntity.Product, c catalogEntity.Color, tiers []catalogEntity.BulkTier, qty int) orderEntity.LineItem {
	qty = catalogService.ClampQuantity(qty)
	return orderEntity.LineItem{
		ID:       LineID(p.ID, c.ID),
		Name:     fmt.Sprintf("%s - %s", p.Name, c.Name),
		Price:    catalogService.UnitPrice(c.Price, catalogService.BulkTierFor(tiers, qty)),
		Image:    p.Image,
		Quantity: qty,
	}
}

// LineFromProduct builds a line for a product sold without a color
// selection, priced at its starting price.
func LineFromProduct(p catalogEntity.Product, tiers []catalogEntity.BulkTier, qty int) orderEntity.LineItem {
	qty = catalogService.ClampQuantity(qty)
	return orderEntity.LineItem{
		ID:       LineID(p.ID, ""),
		Name:     p.Name,
		Price:    catalogService.UnitPrice(p.StartingPrice, catalogService.BulkTierFor(tiers, qty)),
		Image:    p.Image,
		Quantity: qty,
	}
}

// LineFromDirect builds a line for a direct product.
func LineFromDirect(p catalogEntity.DirectProduct, tiers []catalogEntity.BulkTier, qty int) orderEntity.LineItem {
	qty = catalogService.ClampQuantity(qty)
	return orderEntity.LineItem{
		ID:       LineID(p.ID, ""),
		Name:     p.Name,
		Price:    catalogService.UnitPrice(p.Price, catalogService.BulkTierFor(tiers, qty)),
		Image:    p.Image,
		Quantity: qty,
	}
}

// AddItem merges a line into the cart by id. A merged line keeps the
// incoming unit price, matching what the latest quantity priced at.
func (c *Cart) AddItem(item orderEntity.LineItem) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ID == item.ID {
			c.items[i].Quantity += item.Quantity
			c.items[i].Price = item.Price
			return
		}
	}
	c.items = append(c.items, item)
}

// RemoveItem drops a line by id.
func (c *Cart) RemoveItem(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	next := c.items[:0]
	for _, it := range c.items {
		if it.ID != id {
			next = append(next, it)
		}
	}
	c.items = next
}

// Items returns a copy of the cart lines.
func (c *Cart) Items() []orderEntity.LineItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]orderEntity.LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// TotalItems sums line quantities.
func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

// Subtotal sums price times quantity over all lines.
func (c *Cart) Subtotal() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	sum := 0.0
	for _, it := range c.items {
		sum += it.Price * float64(it.Quantity)
	}
	return sum
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// CheckoutInput carries the customer-entered checkout fields.
type CheckoutInput struct {
	CustomerName string                   `json:"customerName"`
	Company      string                   `json:"company"`
	DeliveryDate string                   `json:"deliveryDate"`
	DeliveryType orderEntity.DeliveryType `json:"deliveryType"`
	DeliveryInfo orderEntity.DeliveryInfo `json:"deliveryInfo"`
}

// Checkout turns the cart into a pending order, persists it and clears the
// cart. Tax applies the configured rate to the subtotal; the delivery fee
// comes from the fixed per-type lookup.
func Checkout(c *Cart, in CheckoutInput, orders *orderRepo.Store) (orderEntity.Order, error) {
	items := c.Items()
	if len(items) == 0 {
		return orderEntity.Order{}, fmt.Errorf("cart is empty")
	}
	if in.DeliveryType != orderEntity.DeliveryAirdrop {
		in.DeliveryType = orderEntity.DeliveryGround
	}

	subtotal := c.Subtotal()
	tax := subtotal * config.LoadAppConfig().TaxRate
	fee := orderService.DeliveryFeeFor(in.DeliveryType)

	o := orderEntity.Order{
		ID:           fmt.Sprintf("ORD-%d", time.Now().UnixMilli()),
		CustomerName: in.CustomerName,
		Company:      in.Company,
		OrderDate:    time.Now().Format("2006-01-02"),
		DeliveryDate: in.DeliveryDate,
		DeliveryType: in.DeliveryType,
		Status:       orderEntity.StatusPending,
		Items:        items,
		Subtotal:     subtotal,
		Tax:          tax,
		DeliveryFee:  fee,
		Total:        subtotal + tax + fee,
		DeliveryInfo: in.DeliveryInfo,
	}
	if err := orders.Append(o); err != nil {
		return orderEntity.Order{}, err
	}
	c.Clear()
	return o, nil
}

// Manager hands out per-session carts keyed by a client token.
type Manager struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewManager() *Manager {
	return &Manager{carts: make(map[string]*Cart)}
}

// Get returns the cart for a token, creating it on first use.
func (m *Manager) Get(token string) *Cart {
	if token == "" {
		token = "default"
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.carts[token]
	if !ok {
		c = NewCart()
		m.carts[token] = c
	}
	return c
}

// Drop discards a session cart.
func (m *Manager) Drop(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, token)
}
