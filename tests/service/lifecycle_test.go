package servicetest

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	orderEntity "mbs.GO/model/entity/order"
	catalogRepo "mbs.GO/model/repository/catalog"
	orderRepo "mbs.GO/model/repository/order"
	storeRepo "mbs.GO/model/repository/store"
	orderService "mbs.GO/service/order"
)

func testLifecycle(t *testing.T) (*orderService.Service, *orderRepo.Store) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	kv := storeRepo.NewKVRepository(db)
	if err := kv.Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	catalog := catalogRepo.NewStore(kv, nil)
	catalog.Refresh()
	orders := orderRepo.NewStore(kv)
	orders.Load()
	return orderService.NewService(orders, catalog), orders
}

func seedOrder(t *testing.T, orders *orderRepo.Store, o orderEntity.Order) {
	t.Helper()
	if err := orders.Append(o); err != nil {
		t.Fatalf("Append: %v", err)
	}
}

func TestAdvance_ForwardPath(t *testing.T) {
	steps := []orderEntity.Status{
		orderEntity.StatusPending,
		orderEntity.StatusAccepted,
		orderEntity.StatusProcessing,
		orderEntity.StatusDelivering,
		orderEntity.StatusDelivered,
	}
	for i := 0; i < len(steps)-1; i++ {
		if got := orderService.Advance(steps[i]); got != steps[i+1] {
			t.Errorf("Advance(%s) = %s, want %s", steps[i], got, steps[i+1])
		}
	}
	if got := orderService.Advance(orderEntity.StatusDelivered); got != orderEntity.StatusDelivered {
		t.Errorf("Advance(delivered) = %s", got)
	}
	if got := orderService.Advance(orderEntity.StatusCancelled); got != orderEntity.StatusCancelled {
		t.Errorf("Advance(cancelled) = %s", got)
	}
}

func TestCancelOrder_FromEveryNonTerminal(t *testing.T) {
	for _, from := range []orderEntity.Status{
		orderEntity.StatusPending,
		orderEntity.StatusAccepted,
		orderEntity.StatusProcessing,
		orderEntity.StatusDelivering,
	} {
		svc, orders := testLifecycle(t)
		seedOrder(t, orders, orderEntity.Order{ID: "ORD-1", Status: from})

		o, ok := svc.CancelOrder("ORD-1")
		if !ok || o.Status != orderEntity.StatusCancelled {
			t.Errorf("CancelOrder from %s = %s, %v", from, o.Status, ok)
		}
	}
}

func TestCancelOrder_TerminalUnchanged(t *testing.T) {
	svc, orders := testLifecycle(t)
	seedOrder(t, orders, orderEntity.Order{ID: "ORD-1", Status: orderEntity.StatusDelivered})

	o, ok := svc.CancelOrder("ORD-1")
	if !ok || o.Status != orderEntity.StatusDelivered {
		t.Errorf("CancelOrder on delivered = %s, %v", o.Status, ok)
	}
}

func TestSetStatus_AdminOverride(t *testing.T) {
	svc, orders := testLifecycle(t)
	seedOrder(t, orders, orderEntity.Order{ID: "ORD-1", Status: orderEntity.StatusDelivered})

	// Direct assignment skips the forward path, terminal or not.
	o, ok := svc.SetStatus("ORD-1", orderEntity.StatusPending)
	if !ok || o.Status != orderEntity.StatusPending {
		t.Errorf("SetStatus = %s, %v", o.Status, ok)
	}
	if _, ok := svc.SetStatus("ORD-1", orderEntity.Status("bogus")); ok {
		t.Error("SetStatus accepted unknown status")
	}
}

func TestSetDeliveryType_RecomputesTotals(t *testing.T) {
	svc, orders := testLifecycle(t)
	seedOrder(t, orders, orderEntity.Order{
		ID:           "ORD-1",
		Status:       orderEntity.StatusPending,
		DeliveryType: orderEntity.DeliveryGround,
		Subtotal:     500,
		Tax:          40,
		DeliveryFee:  75,
		Total:        615,
	})

	o, ok := svc.SetDeliveryType("ORD-1", orderEntity.DeliveryAirdrop)
	if !ok {
		t.Fatal("SetDeliveryType not found")
	}
	if o.DeliveryFee != 150 || o.Total != 690 {
		t.Errorf("airdrop: fee=%v total=%v, want 150/690", o.DeliveryFee, o.Total)
	}
	if o.Subtotal != 500 || o.Tax != 40 {
		t.Errorf("subtotal/tax changed: %v/%v", o.Subtotal, o.Tax)
	}

	o, _ = svc.SetDeliveryType("ORD-1", orderEntity.DeliveryGround)
	if o.DeliveryFee != 75 || o.Total != 615 {
		t.Errorf("ground: fee=%v total=%v, want 75/615", o.DeliveryFee, o.Total)
	}

	if _, ok := svc.SetDeliveryType("ORD-1", orderEntity.DeliveryType("carrier-pigeon")); ok {
		t.Error("unknown delivery type accepted")
	}

	// The write is visible through the store, not just the return value.
	persisted, _ := orders.Get("ORD-1")
	if persisted.Total != 615 {
		t.Errorf("persisted total = %v", persisted.Total)
	}
}

func TestEditDeliveryInfo_DoesNotTouchTotals(t *testing.T) {
	svc, orders := testLifecycle(t)
	seedOrder(t, orders, orderEntity.Order{
		ID: "ORD-1", Status: orderEntity.StatusPending,
		Subtotal: 500, Tax: 40, DeliveryFee: 75, Total: 615,
		DeliveryInfo: orderEntity.DeliveryInfo{City: "Youngstown"},
	})

	o, ok := svc.EditDeliveryInfo("ORD-1", map[string]interface{}{
		"address":      "1 Main St",
		"contactPhone": "330-555-0101",
	})
	if !ok {
		t.Fatal("EditDeliveryInfo not found")
	}
	if o.DeliveryInfo.Address != "1 Main St" || o.DeliveryInfo.ContactPhone != "330-555-0101" {
		t.Errorf("DeliveryInfo = %+v", o.DeliveryInfo)
	}
	if o.DeliveryInfo.City != "Youngstown" {
		t.Errorf("unpatched field changed: %q", o.DeliveryInfo.City)
	}
	if o.Total != 615 || o.Subtotal != 500 {
		t.Errorf("totals changed: %v/%v", o.Subtotal, o.Total)
	}
}

func TestRecomputeTotals(t *testing.T) {
	o := orderEntity.Order{Subtotal: 500, Tax: 40, DeliveryFee: 150}
	if got := orderService.RecomputeTotals(o).Total; got != 690 {
		t.Errorf("Total = %v, want 690", got)
	}
}

func TestComputeStats(t *testing.T) {
	svc, orders := testLifecycle(t)
	seedOrder(t, orders, orderEntity.Order{ID: "ORD-1", Status: orderEntity.StatusPending, Total: 100})
	seedOrder(t, orders, orderEntity.Order{ID: "ORD-2", Status: orderEntity.StatusDelivered, Total: 200})
	seedOrder(t, orders, orderEntity.Order{ID: "ORD-3", Status: orderEntity.StatusCancelled, Total: 400})

	st := svc.ComputeStats()
	if st.PendingOrders != 1 {
		t.Errorf("PendingOrders = %d", st.PendingOrders)
	}
	if st.TotalRevenue != 300 {
		t.Errorf("TotalRevenue = %v, want 300 (cancelled excluded)", st.TotalRevenue)
	}
	if st.TotalProducts == 0 {
		t.Error("TotalProducts = 0")
	}
}
