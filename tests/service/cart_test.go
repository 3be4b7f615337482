package servicetest

import (
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	orderEntity "mbs.GO/model/entity/order"
	orderRepo "mbs.GO/model/repository/order"
	storeRepo "mbs.GO/model/repository/store"
	cartService "mbs.GO/service/cart"
)

func testOrders(t *testing.T) *orderRepo.Store {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	kv := storeRepo.NewKVRepository(db)
	if err := kv.Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	s := orderRepo.NewStore(kv)
	s.Load()
	return s
}

func TestCart_AddItemMergesByID(t *testing.T) {
	c := cartService.NewCart()
	c.AddItem(orderEntity.LineItem{ID: "pinnacle-charcoal-black", Name: "Pinnacle - Charcoal Black", Price: 135.99, Quantity: 2})
	c.AddItem(orderEntity.LineItem{ID: "pinnacle-charcoal-black", Name: "Pinnacle - Charcoal Black", Price: 129.19, Quantity: 3})
	c.AddItem(orderEntity.LineItem{ID: "15lb-felt-default", Name: "15lb Felt", Price: 35.99, Quantity: 1})

	items := c.Items()
	if len(items) != 2 {
		t.Fatalf("lines = %d, want 2", len(items))
	}
	if items[0].Quantity != 5 {
		t.Errorf("merged quantity = %d, want 5", items[0].Quantity)
	}
	if items[0].Price != 129.19 {
		t.Errorf("merged price = %v, want latest 129.19", items[0].Price)
	}
	if c.TotalItems() != 6 {
		t.Errorf("TotalItems = %d, want 6", c.TotalItems())
	}
}

func TestCart_RemoveAndClear(t *testing.T) {
	c := cartService.NewCart()
	c.AddItem(orderEntity.LineItem{ID: "a", Quantity: 1})
	c.AddItem(orderEntity.LineItem{ID: "b", Quantity: 2})

	c.RemoveItem("a")
	if len(c.Items()) != 1 || c.Items()[0].ID != "b" {
		t.Errorf("items after remove = %+v", c.Items())
	}
	c.Clear()
	if c.TotalItems() != 0 {
		t.Errorf("TotalItems after clear = %d", c.TotalItems())
	}
}

func TestLineID(t *testing.T) {
	if got := cartService.LineID("pinnacle", "charcoal-black"); got != "pinnacle-charcoal-black" {
		t.Errorf("LineID = %q", got)
	}
	if got := cartService.LineID("15lb-felt", ""); got != "15lb-felt-default" {
		t.Errorf("LineID without color = %q", got)
	}
}

func TestCheckout_BuildsPendingOrder(t *testing.T) {
	orders := testOrders(t)
	c := cartService.NewCart()
	// Subtotal 500: 100*2 + 150*2.
	c.AddItem(orderEntity.LineItem{ID: "a", Name: "A", Price: 100, Quantity: 2})
	c.AddItem(orderEntity.LineItem{ID: "b", Name: "B", Price: 150, Quantity: 2})

	o, err := cartService.Checkout(c, cartService.CheckoutInput{
		CustomerName: "Jo Builder",
		Company:      "Builder Co",
		DeliveryType: orderEntity.DeliveryAirdrop,
	}, orders)
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}

	if o.Status != orderEntity.StatusPending {
		t.Errorf("Status = %s", o.Status)
	}
	if !strings.HasPrefix(o.ID, "ORD-") {
		t.Errorf("ID = %q", o.ID)
	}
	if o.Subtotal != 500 {
		t.Errorf("Subtotal = %v", o.Subtotal)
	}
	if o.Tax != 40 { // 8% of 500
		t.Errorf("Tax = %v, want 40", o.Tax)
	}
	if o.DeliveryFee != 150 || o.Total != 690 {
		t.Errorf("fee/total = %v/%v, want 150/690", o.DeliveryFee, o.Total)
	}

	// Persisted and the cart emptied.
	if len(orders.List()) != 1 {
		t.Errorf("persisted orders = %d", len(orders.List()))
	}
	if c.TotalItems() != 0 {
		t.Errorf("cart not cleared: %d items", c.TotalItems())
	}
}

func TestCheckout_EmptyCart(t *testing.T) {
	orders := testOrders(t)
	if _, err := cartService.Checkout(cartService.NewCart(), cartService.CheckoutInput{}, orders); err == nil {
		t.Fatal("empty cart checkout succeeded")
	}
}

func TestCheckout_DefaultsToGround(t *testing.T) {
	orders := testOrders(t)
	c := cartService.NewCart()
	c.AddItem(orderEntity.LineItem{ID: "a", Price: 100, Quantity: 1})

	o, err := cartService.Checkout(c, cartService.CheckoutInput{DeliveryType: "teleport"}, orders)
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}
	if o.DeliveryType != orderEntity.DeliveryGround || o.DeliveryFee != 75 {
		t.Errorf("type=%s fee=%v, want ground/75", o.DeliveryType, o.DeliveryFee)
	}
}

func TestManager_SessionIsolation(t *testing.T) {
	m := cartService.NewManager()
	m.Get("alpha").AddItem(orderEntity.LineItem{ID: "a", Quantity: 1})

	if got := m.Get("beta").TotalItems(); got != 0 {
		t.Errorf("beta cart items = %d", got)
	}
	if got := m.Get("alpha").TotalItems(); got != 1 {
		t.Errorf("alpha cart items = %d", got)
	}
	m.Drop("alpha")
	if got := m.Get("alpha").TotalItems(); got != 0 {
		t.Errorf("alpha cart after drop = %d", got)
	}
}
