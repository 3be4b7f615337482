package cart

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"mbs.GO/api"
	catalogService "mbs.GO/service/catalog"
	cartService "mbs.GO/service/cart"
)

func init() {
	api.RegisterModule(RegisterCartRoutes)
}

// cartToken identifies the session cart. Absent tokens share the default
// cart, which matches single-user usage.
func cartToken(c echo.Context) string {
	return c.Request().Header.Get("X-Cart-Token")
}

type addItemRequest struct {
	CategoryID string      `json:"categoryId"`
	BrandID    string      `json:"brandId"`
	ProductID  string      `json:"productId"`
	ColorID    string      `json:"colorId"`
	Quantity   interface{} `json:"quantity"`
}

// normalizeQuantity accepts numeric or string quantity payloads. Anything
// unparseable or below 1 becomes 1.
func normalizeQuantity(v interface{}) int {
	switch q := v.(type) {
	case float64:
		return catalogService.ClampQuantity(int(q))
	case string:
		return catalogService.NormalizeQuantity(q)
	case nil:
		return 1
	default:
		return catalogService.NormalizeQuantity(fmt.Sprint(q))
	}
}

func RegisterCartRoutes(apiGroup *echo.Group, deps *api.Deps) {
	g := apiGroup.Group("/cart")

	g.GET("", func(c echo.Context) error {
		cart := deps.Carts.Get(cartToken(c))
		return c.JSON(http.StatusOK, echo.Map{
			"items":      cart.Items(),
			"totalItems": cart.TotalItems(),
			"subtotal":   cart.Subtotal(),
		})
	})

	g.DELETE("", func(c echo.Context) error {
		deps.Carts.Get(cartToken(c)).Clear()
		return c.NoContent(http.StatusNoContent)
	})

	// POST /api/cart/items resolves the catalog record, prices the line at
	// the bulk tier for its quantity and merges it into the cart.
	g.POST("/items", func(c echo.Context) error {
		var req addItemRequest
		if err := c.Bind(&req); err != nil {
			return err
		}
		qty := normalizeQuantity(req.Quantity)
		tiers := deps.Catalog.TiersFor(req.CategoryID)
		cart := deps.Carts.Get(cartToken(c))

		if req.BrandID != "" {
			product, ok := deps.Catalog.ProductByID(req.BrandID, req.CategoryID, req.ProductID)
			if !ok {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
			}
			if req.ColorID == "" && !product.HasColors {
				cart.AddItem(cartService.LineFromProduct(product, tiers, qty))
			} else {
				color, ok := deps.Catalog.ColorByID(product.ID, req.ColorID)
				if !ok {
					return c.JSON(http.StatusNotFound, echo.Map{"error": "color not found"})
				}
				cart.AddItem(cartService.LineFromColor(product, color, tiers, qty))
			}
		} else {
			product, ok := deps.Catalog.DirectProductByID(req.CategoryID, req.ProductID)
			if !ok {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
			}
			cart.AddItem(cartService.LineFromDirect(product, tiers, qty))
		}

		return c.JSON(http.StatusOK, echo.Map{
			"items":      cart.Items(),
			"totalItems": cart.TotalItems(),
			"subtotal":   cart.Subtotal(),
		})
	})

	g.DELETE("/items/:id", func(c echo.Context) error {
		cart := deps.Carts.Get(cartToken(c))
		cart.RemoveItem(c.Param("id"))
		return c.JSON(http.StatusOK, echo.Map{
			"items":      cart.Items(),
			"totalItems": cart.TotalItems(),
		})
	})

	// POST /api/cart/checkout writes a pending order and empties the cart.
	g.POST("/checkout", func(c echo.Context) error {
		var in cartService.CheckoutInput
		if err := c.Bind(&in); err != nil {
			return err
		}
		cart := deps.Carts.Get(cartToken(c))
		order, err := cartService.Checkout(cart, in, deps.Orders)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, order)
	})
}
