package models

// GraphQL-facing shapes. Ints are int32 because graphql-go maps Int to
// int32; mappers in the resolvers package convert from entity types.

type Category struct {
	ID               string
	Name             string
	HasSubcategories bool
	Image            string
}

type Brand struct {
	ID    string
	Name  string
	Image string
	Logo  *string
}

type Product struct {
	ID            string
	Name          string
	Image         string
	StartingPrice float64
	HasColors     bool
}

type Color struct {
	ID        string
	Name      string
	Hex       string
	Price     float64
	Stock     int32
	StockText string
}

type DirectProduct struct {
	ID         string
	Name       string
	Image      string
	Price      float64
	Stock      int32
	StockText  string
	HasOptions bool
}

type BulkTier struct {
	MinQty   int32
	Discount float64
	Label    string
}

type StockLocation struct {
	ID     string
	Name   string
	IsMain bool
}

type Breadcrumb struct {
	Label      string
	CategoryID *string
	BrandID    *string
	ProductID  *string
	Current    bool
}

type View struct {
	Kind           string
	Category       *Category
	Brand          *Brand
	Product        *Product
	Categories     *[]*Category
	Brands         *[]*Brand
	Products       *[]*Product
	DirectProducts *[]*DirectProduct
	Colors         *[]*Color
	SelectedColor  *Color
	BulkTiers      *[]*BulkTier
	Breadcrumbs    []*Breadcrumb
}

type SearchHit struct {
	Kind       string
	ID         string
	Name       string
	Image      string
	Price      float64
	CategoryID string
	BrandID    *string
}

type LineItem struct {
	ID       string
	Name     string
	Price    float64
	Image    string
	Quantity int32
}

type DeliveryInfo struct {
	Address             string
	City                string
	State               string
	ZipCode             string
	ContactName         string
	ContactPhone        string
	Notes               string
	PurchaseOrderNumber string
	OrderType           string
	JobSiteName         string
	JobSiteAddress      string
	CreditTerms         string
}

type Order struct {
	ID           string
	CustomerName string
	Company      string
	OrderDate    string
	DeliveryDate string
	DeliveryType string
	Status       string
	Items        []*LineItem
	Subtotal     float64
	Tax          float64
	DeliveryFee  float64
	Total        float64
	DeliveryInfo *DeliveryInfo
}

type Stats struct {
	TotalProducts int32
	LowStockItems int32
	PendingOrders int32
	TotalRevenue  float64
}
