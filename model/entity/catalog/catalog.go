package catalog

// Kind tags discriminate catalog node types when records travel through
// generic JSON documents (edit payloads, graphql extensions).
type Kind string

const (
	KindCategory      Kind = "category"
	KindBrand         Kind = "brand"
	KindProduct       Kind = "product"
	KindColor         Kind = "color"
	KindDirectProduct Kind = "directProduct"
)

// Category is a top-level catalog node. HasSubcategories=true routes
// navigation through brand/product/color; false routes to the flat
// direct-product list.
type Category struct {
	ID               string `json:"id" mapstructure:"id"`
	Name             string `json:"name" mapstructure:"name"`
	HasSubcategories bool   `json:"hasSubcategories" mapstructure:"hasSubcategories"`
	Image            string `json:"image" mapstructure:"image"`
}

// Brand is scoped per category.
type Brand struct {
	ID    string `json:"id" mapstructure:"id"`
	Name  string `json:"name" mapstructure:"name"`
	Image string `json:"image" mapstructure:"image"`
	Logo  string `json:"logo,omitempty" mapstructure:"logo"`
}

// Product is scoped per (brand, category). HasColors=true means the product
// has no directly purchasable price/stock; it defers to its Colors.
type Product struct {
	ID            string  `json:"id" mapstructure:"id"`
	Name          string  `json:"name" mapstructure:"name"`
	Image         string  `json:"image" mapstructure:"image"`
	StartingPrice float64 `json:"startingPrice" mapstructure:"startingPrice"`
	HasColors     bool    `json:"hasColors" mapstructure:"hasColors"`
}

// Color is a purchasable variant of a product.
type Color struct {
	ID    string  `json:"id" mapstructure:"id"`
	Name  string  `json:"name" mapstructure:"name"`
	Hex   string  `json:"hex" mapstructure:"hex"`
	Price float64 `json:"price" mapstructure:"price"`
	Stock int     `json:"stock" mapstructure:"stock"`
}

// DirectProduct is used when the owning category has no subcategories.
type DirectProduct struct {
	ID         string  `json:"id" mapstructure:"id"`
	Name       string  `json:"name" mapstructure:"name"`
	Image      string  `json:"image" mapstructure:"image"`
	Price      float64 `json:"price" mapstructure:"price"`
	Stock      int     `json:"stock" mapstructure:"stock"`
	HasOptions bool    `json:"hasOptions" mapstructure:"hasOptions"`
}

// BulkTier is one bulk-pricing threshold. Tiers for a category are kept
// sorted ascending by MinQty; the highest threshold not exceeding the
// requested quantity wins.
type BulkTier struct {
	MinQty   int     `json:"minQty" mapstructure:"minQty"`
	Discount float64 `json:"discount" mapstructure:"discount"`
	Label    string  `json:"label" mapstructure:"label"`
}

// StockLocation is an informational warehouse entry.
type StockLocation struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	IsMain bool   `json:"isMain"`
}
