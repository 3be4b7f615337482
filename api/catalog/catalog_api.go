package catalog

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mbs.GO/api"
	catalogService "mbs.GO/service/catalog"
)

func init() {
	api.RegisterModule(RegisterCatalogRoutes)
}

// navStateFromQuery reads the navigation position from query params.
func navStateFromQuery(c echo.Context) catalogService.NavState {
	return catalogService.NavState{
		CategoryID: c.QueryParam("category"),
		BrandID:    c.QueryParam("brand"),
		ProductID:  c.QueryParam("product"),
		ColorID:    c.QueryParam("color"),
	}
}

func RegisterCatalogRoutes(apiGroup *echo.Group, deps *api.Deps) {
	g := apiGroup.Group("/catalog")

	// GET /api/catalog/view?category=&brand=&product=&color=
	// Resolves a navigation position to its render model plus breadcrumbs.
	// Unknown ids fall back to the nearest valid ancestor level.
	g.GET("/view", func(c echo.Context) error {
		state := navStateFromQuery(c)
		return c.JSON(http.StatusOK, echo.Map{
			"state":       state,
			"view":        catalogService.DeriveView(state, deps.Catalog),
			"breadcrumbs": catalogService.Breadcrumbs(state, deps.Catalog),
		})
	})

	g.GET("/categories", func(c echo.Context) error {
		return c.JSON(http.StatusOK, deps.Catalog.Categories())
	})

	g.GET("/brands", func(c echo.Context) error {
		categoryID := c.QueryParam("category")
		if categoryID == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "category required"})
		}
		return c.JSON(http.StatusOK, deps.Catalog.BrandsFor(categoryID))
	})

	g.GET("/products", func(c echo.Context) error {
		categoryID := c.QueryParam("category")
		brandID := c.QueryParam("brand")
		if categoryID == "" || brandID == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "category and brand required"})
		}
		return c.JSON(http.StatusOK, deps.Catalog.ProductsFor(brandID, categoryID))
	})

	g.GET("/colors", func(c echo.Context) error {
		productID := c.QueryParam("product")
		if productID == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "product required"})
		}
		return c.JSON(http.StatusOK, deps.Catalog.ColorsFor(productID))
	})

	g.GET("/direct-products", func(c echo.Context) error {
		categoryID := c.QueryParam("category")
		if categoryID == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "category required"})
		}
		return c.JSON(http.StatusOK, deps.Catalog.DirectProductsFor(categoryID))
	})

	g.GET("/locations", func(c echo.Context) error {
		return c.JSON(http.StatusOK, deps.Catalog.Locations())
	})

	// GET /api/catalog/pricing?category=&qty=
	// Returns the tier list and, when qty is given, the resolved tier.
	g.GET("/pricing", func(c echo.Context) error {
		categoryID := c.QueryParam("category")
		if categoryID == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "category required"})
		}
		tiers := deps.Catalog.TiersFor(categoryID)
		resp := echo.Map{"tiers": tiers}
		if rawQty := c.QueryParam("qty"); rawQty != "" {
			qty := catalogService.NormalizeQuantity(rawQty)
			resp["quantity"] = qty
			resp["tier"] = catalogService.BulkTierFor(tiers, qty)
		}
		return c.JSON(http.StatusOK, resp)
	})

	// GET /api/catalog/search?q=&sort=
	g.GET("/search", func(c echo.Context) error {
		hits, err := catalogService.GetSearchService().Search(c.Request().Context(), deps.Catalog, c.QueryParam("q"))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		catalogService.SortHits(hits, catalogService.SortOption(c.QueryParam("sort")))
		if hits == nil {
			hits = []catalogService.SearchHit{}
		}
		return c.JSON(http.StatusOK, echo.Map{"hits": hits, "count": len(hits)})
	})

	registerEditRoutes(g, deps)
}

// registerEditRoutes wires the edit-mode overrides. These paths are not in
// the auth skipper, so the group middleware gates them.
func registerEditRoutes(g *echo.Group, deps *api.Deps) {
	// PUT /api/catalog/categories/:id
	g.PUT("/categories/:id", func(c echo.Context) error {
		patch, err := bindPatch(c)
		if err != nil {
			return err
		}
		updated, ok := deps.Catalog.OverrideCategory(c.Param("id"), patch)
		if !ok {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "category not found"})
		}
		return c.JSON(http.StatusOK, updated)
	})

	// PUT /api/catalog/brands/:categoryId/:id
	g.PUT("/brands/:categoryId/:id", func(c echo.Context) error {
		patch, err := bindPatch(c)
		if err != nil {
			return err
		}
		updated, ok := deps.Catalog.OverrideBrand(c.Param("categoryId"), c.Param("id"), patch)
		if !ok {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "brand not found"})
		}
		return c.JSON(http.StatusOK, updated)
	})

	// PUT /api/catalog/products/:brandId/:categoryId/:id
	g.PUT("/products/:brandId/:categoryId/:id", func(c echo.Context) error {
		patch, err := bindPatch(c)
		if err != nil {
			return err
		}
		updated, ok := deps.Catalog.OverrideProduct(c.Param("brandId"), c.Param("categoryId"), c.Param("id"), patch)
		if !ok {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
		}
		return c.JSON(http.StatusOK, updated)
	})

	// PUT /api/catalog/colors/:productId/:id
	g.PUT("/colors/:productId/:id", func(c echo.Context) error {
		patch, err := bindPatch(c)
		if err != nil {
			return err
		}
		updated, ok := deps.Catalog.OverrideColor(c.Param("productId"), c.Param("id"), patch)
		if !ok {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "color not found"})
		}
		return c.JSON(http.StatusOK, updated)
	})

	// PUT /api/catalog/direct-products/:categoryId/:id
	g.PUT("/direct-products/:categoryId/:id", func(c echo.Context) error {
		patch, err := bindPatch(c)
		if err != nil {
			return err
		}
		updated, ok := deps.Catalog.OverrideDirectProduct(c.Param("categoryId"), c.Param("id"), patch)
		if !ok {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "direct product not found"})
		}
		return c.JSON(http.StatusOK, updated)
	})
}

func bindPatch(c echo.Context) (map[string]interface{}, error) {
	var patch map[string]interface{}
	if err := c.Bind(&patch); err != nil {
		return nil, err
	}
	if len(patch) == 0 {
		return nil, errEmptyPatch
	}
	return patch, nil
}

var errEmptyPatch = echo.NewHTTPError(http.StatusBadRequest, "empty patch")
