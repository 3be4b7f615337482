package config

// GetAuthSkipperPaths returns a list of paths to skip authentication for
func GetAuthSkipperPaths() []string {
	// Public storefront paths (catalog reads and quoting need no credentials)
	return []string{
		"/api/catalog/view",
		"/api/catalog/categories",
		"/api/catalog/brands",
		"/api/catalog/products",
		"/api/catalog/colors",
		"/api/catalog/direct-products",
		"/api/catalog/locations",
		"/api/catalog/search",
		"/api/catalog/pricing",
		"/api/cart",
		"/api/cart/items",
		"/api/cart/items/:id",
		"/api/cart/checkout",
		"/api/quote",
		"/graphql",
	}
}
