package quote

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"mbs.GO/api"
	"mbs.GO/config"
	orderEntity "mbs.GO/model/entity/order"
	catalogService "mbs.GO/service/catalog"
	orderService "mbs.GO/service/order"
)

func init() {
	api.RegisterModule(RegisterQuoteRoutes)
}

type quoteLineRequest struct {
	CategoryID string `json:"categoryId"`
	BrandID    string `json:"brandId"`
	ProductID  string `json:"productId"`
	ColorID    string `json:"colorId"`
	Quantity   int    `json:"quantity"`
}

type quoteLine struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	TierLabel string  `json:"tierLabel"`
	Discount  float64 `json:"discount"`
	LineTotal float64 `json:"lineTotal"`
	Found     bool    `json:"found"`
}

// RegisterQuoteRoutes exposes the public bulk quote calculator. Lines are
// priced concurrently; unknown ids come back with Found=false rather than
// failing the whole quote.
func RegisterQuoteRoutes(apiGroup *echo.Group, deps *api.Deps) {
	// POST /api/quote
	apiGroup.POST("/quote", func(c echo.Context) error {
		start := time.Now()

		var body struct {
			DeliveryType orderEntity.DeliveryType `json:"deliveryType"`
			Items        []quoteLineRequest       `json:"items"`
		}
		if err := c.Bind(&body); err != nil {
			return err
		}
		if len(body.Items) == 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "items array is required and must not be empty"})
		}

		lines := make([]quoteLine, len(body.Items))
		eg := new(errgroup.Group)
		for i, req := range body.Items {
			i, req := i, req
			eg.Go(func() error {
				lines[i] = priceLine(deps, req)
				return nil
			})
		}
		_ = eg.Wait()

		subtotal := 0.0
		for _, l := range lines {
			subtotal += l.LineTotal
		}
		tax := subtotal * config.LoadAppConfig().TaxRate
		fee := orderService.DeliveryFeeFor(body.DeliveryType)

		duration := time.Since(start).Milliseconds()
		c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))

		return c.JSON(http.StatusOK, echo.Map{
			"lines":       lines,
			"subtotal":    subtotal,
			"tax":         tax,
			"deliveryFee": fee,
			"total":       subtotal + tax + fee,
		})
	})
}

func priceLine(deps *api.Deps, req quoteLineRequest) quoteLine {
	qty := catalogService.ClampQuantity(req.Quantity)
	tiers := deps.Catalog.TiersFor(req.CategoryID)
	tier := catalogService.BulkTierFor(tiers, qty)

	line := quoteLine{
		ProductID: req.ProductID,
		Quantity:  qty,
		TierLabel: tier.Label,
		Discount:  tier.Discount,
	}

	var base float64
	switch {
	case req.BrandID != "" && req.ColorID != "":
		p, ok := deps.Catalog.ProductByID(req.BrandID, req.CategoryID, req.ProductID)
		if !ok {
			return line
		}
		color, ok := deps.Catalog.ColorByID(p.ID, req.ColorID)
		if !ok {
			return line
		}
		line.Name = p.Name + " - " + color.Name
		base = color.Price
	case req.BrandID != "":
		p, ok := deps.Catalog.ProductByID(req.BrandID, req.CategoryID, req.ProductID)
		if !ok {
			return line
		}
		line.Name = p.Name
		base = p.StartingPrice
	default:
		p, ok := deps.Catalog.DirectProductByID(req.CategoryID, req.ProductID)
		if !ok {
			return line
		}
		line.Name = p.Name
		base = p.Price
	}

	line.Found = true
	line.UnitPrice = catalogService.UnitPrice(base, tier)
	line.LineTotal = line.UnitPrice * float64(qty)
	return line
}
