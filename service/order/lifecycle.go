package order

import (
	"github.com/mitchellh/mapstructure"

	orderEntity "mbs.GO/model/entity/order"
	catalogRepo "mbs.GO/model/repository/catalog"
	orderRepo "mbs.GO/model/repository/order"
)

// Fixed delivery fees by type.
const (
	GroundFee  float64 = 75
	AirdropFee float64 = 150
)

// DeliveryFeeFor maps a delivery type to its flat fee. Unknown types fall
// back to ground.
func DeliveryFeeFor(t orderEntity.DeliveryType) float64 {
	if t == orderEntity.DeliveryAirdrop {
		return AirdropFee
	}
	return GroundFee
}

// Advance moves a status one step along the forward path. Terminal states
// stay put.
func Advance(s orderEntity.Status) orderEntity.Status {
	switch s {
	case orderEntity.StatusPending:
		return orderEntity.StatusAccepted
	case orderEntity.StatusAccepted:
		return orderEntity.StatusProcessing
	case orderEntity.StatusProcessing:
		return orderEntity.StatusDelivering
	case orderEntity.StatusDelivering:
		return orderEntity.StatusDelivered
	}
	return s
}

// RecomputeTotals returns the order with Total rebuilt from its parts.
// Subtotal and Tax are never derived here; they were fixed at checkout.
func RecomputeTotals(o orderEntity.Order) orderEntity.Order {
	o.Total = o.Subtotal + o.Tax + o.DeliveryFee
	return o
}

// Service mutates persisted orders under the lifecycle rules.
type Service struct {
	orders  *orderRepo.Store
	catalog *catalogRepo.Store
}

func NewService(orders *orderRepo.Store, catalog *catalogRepo.Store) *Service {
	return &Service{orders: orders, catalog: catalog}
}

// AdvanceOrder steps an order forward. Advancing a terminal order persists
// nothing and returns the order unchanged.
func (s *Service) AdvanceOrder(id string) (orderEntity.Order, bool) {
	o, ok := s.orders.Get(id)
	if !ok {
		return orderEntity.Order{}, false
	}
	next := Advance(o.Status)
	if next == o.Status {
		return o, true
	}
	o.Status = next
	s.orders.Replace(o)
	return o, true
}

// CancelOrder moves any non-terminal order to cancelled. Terminal orders
// are left as they are.
func (s *Service) CancelOrder(id string) (orderEntity.Order, bool) {
	o, ok := s.orders.Get(id)
	if !ok {
		return orderEntity.Order{}, false
	}
	if o.Status.Terminal() {
		return o, true
	}
	o.Status = orderEntity.StatusCancelled
	s.orders.Replace(o)
	return o, true
}

// SetStatus assigns a status directly, bypassing the forward path. This is
// an administrative correction hook, not a modeled transition; callers gate
// it behind edit mode.
func (s *Service) SetStatus(id string, status orderEntity.Status) (orderEntity.Order, bool) {
	if !status.Valid() {
		return orderEntity.Order{}, false
	}
	o, ok := s.orders.Get(id)
	if !ok {
		return orderEntity.Order{}, false
	}
	o.Status = status
	s.orders.Replace(o)
	return o, true
}

// SetDeliveryType changes the delivery type and rebuilds fee and total in
// the same write, so no reader sees the type without the matching totals.
func (s *Service) SetDeliveryType(id string, t orderEntity.DeliveryType) (orderEntity.Order, bool) {
	if t != orderEntity.DeliveryGround && t != orderEntity.DeliveryAirdrop {
		return orderEntity.Order{}, false
	}
	o, ok := s.orders.Get(id)
	if !ok {
		return orderEntity.Order{}, false
	}
	o.DeliveryType = t
	o.DeliveryFee = DeliveryFeeFor(t)
	o = RecomputeTotals(o)
	s.orders.Replace(o)
	return o, true
}

// EditDeliveryInfo replaces delivery fields from an untyped patch. Totals
// are untouched.
func (s *Service) EditDeliveryInfo(id string, patch map[string]interface{}) (orderEntity.Order, bool) {
	o, ok := s.orders.Get(id)
	if !ok {
		return orderEntity.Order{}, false
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &o.DeliveryInfo,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return orderEntity.Order{}, false
	}
	if err := dec.Decode(patch); err != nil {
		return orderEntity.Order{}, false
	}
	s.orders.Replace(o)
	return o, true
}

// Stats summarizes the dashboard counters.
type Stats struct {
	TotalProducts int     `json:"totalProducts"`
	LowStockItems int     `json:"lowStockItems"`
	PendingOrders int     `json:"pendingOrders"`
	TotalRevenue  float64 `json:"totalRevenue"`
}

const lowStockThreshold = 15

// ComputeStats counts catalog inventory and order aggregates. Cancelled
// orders do not contribute revenue.
func (s *Service) ComputeStats() Stats {
	var st Stats
	for _, c := range s.catalog.Categories() {
		if c.HasSubcategories {
			for _, b := range s.catalog.BrandsFor(c.ID) {
				for _, p := range s.catalog.ProductsFor(b.ID, c.ID) {
					st.TotalProducts++
					for _, col := range s.catalog.ColorsFor(p.ID) {
						if col.Stock <= lowStockThreshold {
							st.LowStockItems++
						}
					}
				}
			}
			continue
		}
		for _, p := range s.catalog.DirectProductsFor(c.ID) {
			st.TotalProducts++
			if p.Stock <= lowStockThreshold {
				st.LowStockItems++
			}
		}
	}
	for _, o := range s.orders.List() {
		if o.Status == orderEntity.StatusPending {
			st.PendingOrders++
		}
		if o.Status != orderEntity.StatusCancelled {
			st.TotalRevenue += o.Total
		}
	}
	return st
}
