package resolvers

import (
	"context"

	gqlmodels "mbs.GO/graphql/models"
	catalogRepo "mbs.GO/model/repository/catalog"
	orderRepo "mbs.GO/model/repository/order"
	catalogService "mbs.GO/service/catalog"
	orderService "mbs.GO/service/order"
)

// Resolver answers storefront queries from the in-memory stores.
type Resolver struct {
	Catalog   *catalogRepo.Store
	Orders    *orderRepo.Store
	Lifecycle *orderService.Service
}

func NewResolver(catalog *catalogRepo.Store, orders *orderRepo.Store, lifecycle *orderService.Service) *Resolver {
	return &Resolver{Catalog: catalog, Orders: orders, Lifecycle: lifecycle}
}

func (r *Resolver) Categories() []*gqlmodels.Category {
	return mapCategories(r.Catalog.Categories())
}

func (r *Resolver) Category(id string) *gqlmodels.Category {
	c, ok := r.Catalog.CategoryByID(id)
	if !ok {
		return nil
	}
	return mapCategory(c)
}

func (r *Resolver) Brands(categoryID string) []*gqlmodels.Brand {
	return mapBrands(r.Catalog.BrandsFor(categoryID))
}

func (r *Resolver) Products(categoryID, brandID string) []*gqlmodels.Product {
	return mapProducts(r.Catalog.ProductsFor(brandID, categoryID))
}

func (r *Resolver) Colors(productID string) []*gqlmodels.Color {
	return mapColors(r.Catalog.ColorsFor(productID))
}

func (r *Resolver) DirectProducts(categoryID string) []*gqlmodels.DirectProduct {
	return mapDirectProducts(r.Catalog.DirectProductsFor(categoryID))
}

func (r *Resolver) BulkTiers(categoryID string) []*gqlmodels.BulkTier {
	return mapTiers(r.Catalog.TiersFor(categoryID))
}

// View resolves a navigation position, breadcrumbs included.
func (r *Resolver) View(state catalogService.NavState) *gqlmodels.View {
	view := catalogService.DeriveView(state, r.Catalog)
	crumbs := catalogService.Breadcrumbs(state, r.Catalog)
	return mapView(view, crumbs)
}

// Search delegates to the search service; index errors degrade to an empty
// result rather than a query error.
func (r *Resolver) Search(ctx context.Context, query string, sort *string) []*gqlmodels.SearchHit {
	hits, err := catalogService.GetSearchService().Search(ctx, r.Catalog, query)
	if err != nil {
		return []*gqlmodels.SearchHit{}
	}
	if sort != nil {
		catalogService.SortHits(hits, catalogService.SortOption(*sort))
	}
	return mapHits(hits)
}

func (r *Resolver) Locations() []*gqlmodels.StockLocation {
	return mapLocations(r.Catalog.Locations())
}

func (r *Resolver) OrderList(status *string) []*gqlmodels.Order {
	list := r.Orders.List()
	out := make([]*gqlmodels.Order, 0, len(list))
	for _, o := range list {
		if status != nil && *status != "" && string(o.Status) != *status {
			continue
		}
		out = append(out, mapOrder(o))
	}
	return out
}

func (r *Resolver) Order(id string) *gqlmodels.Order {
	o, ok := r.Orders.Get(id)
	if !ok {
		return nil
	}
	return mapOrder(o)
}

func (r *Resolver) Stats() *gqlmodels.Stats {
	st := r.Lifecycle.ComputeStats()
	return &gqlmodels.Stats{
		TotalProducts: int32(st.TotalProducts),
		LowStockItems: int32(st.LowStockItems),
		PendingOrders: int32(st.PendingOrders),
		TotalRevenue:  st.TotalRevenue,
	}
}
