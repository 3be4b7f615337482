package graphqlserver

import (
	"context"
	"encoding/json"

	gql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"

	"mbs.GO/graphql"
	gqlmodels "mbs.GO/graphql/models"
	"mbs.GO/graphql/registry"
	"mbs.GO/graphql/resolvers"
	catalogRepo "mbs.GO/model/repository/catalog"
	orderRepo "mbs.GO/model/repository/order"
	catalogService "mbs.GO/service/catalog"
	orderService "mbs.GO/service/order"
)

// RootResolver is the root for graphql-go.
type RootResolver struct {
	Catalog   *catalogRepo.Store
	Orders    *orderRepo.Store
	Lifecycle *orderService.Service
}

// Query returns the query resolver.
func (r *RootResolver) Query() *QueryResolver {
	return &QueryResolver{res: resolvers.NewResolver(r.Catalog, r.Orders, r.Lifecycle)}
}

// QueryResolver implements Query fields. Delegates to the resolvers package.
type QueryResolver struct {
	res *resolvers.Resolver
}

func (r *QueryResolver) Categories() []*gqlmodels.Category {
	return r.res.Categories()
}

type categoryArgs struct {
	ID string
}

func (r *QueryResolver) Category(args categoryArgs) *gqlmodels.Category {
	return r.res.Category(args.ID)
}

type brandsArgs struct {
	CategoryID string
}

func (r *QueryResolver) Brands(args brandsArgs) []*gqlmodels.Brand {
	return r.res.Brands(args.CategoryID)
}

type productsArgs struct {
	CategoryID string
	BrandID    string
}

func (r *QueryResolver) Products(args productsArgs) []*gqlmodels.Product {
	return r.res.Products(args.CategoryID, args.BrandID)
}

type colorsArgs struct {
	ProductID string
}

func (r *QueryResolver) Colors(args colorsArgs) []*gqlmodels.Color {
	return r.res.Colors(args.ProductID)
}

type directProductsArgs struct {
	CategoryID string
}

func (r *QueryResolver) DirectProducts(args directProductsArgs) []*gqlmodels.DirectProduct {
	return r.res.DirectProducts(args.CategoryID)
}

type bulkTiersArgs struct {
	CategoryID string
}

func (r *QueryResolver) BulkTiers(args bulkTiersArgs) []*gqlmodels.BulkTier {
	return r.res.BulkTiers(args.CategoryID)
}

type viewArgs struct {
	CategoryID *string
	BrandID    *string
	ProductID  *string
	ColorID    *string
}

func (r *QueryResolver) View(args viewArgs) *gqlmodels.View {
	state := catalogService.NavState{}
	if args.CategoryID != nil {
		state.CategoryID = *args.CategoryID
	}
	if args.BrandID != nil {
		state.BrandID = *args.BrandID
	}
	if args.ProductID != nil {
		state.ProductID = *args.ProductID
	}
	if args.ColorID != nil {
		state.ColorID = *args.ColorID
	}
	return r.res.View(state)
}

type searchArgs struct {
	Query string
	Sort  *string
}

func (r *QueryResolver) Search(ctx context.Context, args searchArgs) []*gqlmodels.SearchHit {
	return r.res.Search(ctx, args.Query, args.Sort)
}

func (r *QueryResolver) Locations() []*gqlmodels.StockLocation {
	return r.res.Locations()
}

type ordersArgs struct {
	Status *string
}

func (r *QueryResolver) Orders(args ordersArgs) []*gqlmodels.Order {
	return r.res.OrderList(args.Status)
}

type orderArgs struct {
	ID string
}

func (r *QueryResolver) Order(args orderArgs) *gqlmodels.Order {
	return r.res.Order(args.ID)
}

func (r *QueryResolver) Stats() *gqlmodels.Stats {
	return r.res.Stats()
}

// ExtensionArgs for extension(name, args).
type ExtensionArgs struct {
	Name string
	Args *string
}

func (r *QueryResolver) Extension(ctx context.Context, args ExtensionArgs) (*string, error) {
	var m map[string]interface{}
	if args.Args != nil && *args.Args != "" {
		_ = json.Unmarshal([]byte(*args.Args), &m)
	}
	if m == nil {
		m = make(map[string]interface{})
	}
	out, err := registry.Resolve(ctx, args.Name, m)
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}

// NewSchema parses the schema and returns a graphql-go Schema.
func NewSchema(catalog *catalogRepo.Store, orders *orderRepo.Store, lifecycle *orderService.Service) (*gql.Schema, error) {
	root := &RootResolver{Catalog: catalog, Orders: orders, Lifecycle: lifecycle}
	return gql.ParseSchema(graphql.Schema(), root, gql.UseFieldResolvers())
}

// Handler returns an http.Handler for GraphQL (relay format).
func Handler(schema *gql.Schema) *relay.Handler {
	return &relay.Handler{Schema: schema}
}
