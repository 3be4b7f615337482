package orders

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mbs.GO/api"
	orderEntity "mbs.GO/model/entity/order"
)

func init() {
	api.RegisterModule(RegisterOrderRoutes)
}

// RegisterOrderRoutes wires the admin order dashboard. Every route here is
// auth-gated by the /api group middleware.
func RegisterOrderRoutes(apiGroup *echo.Group, deps *api.Deps) {
	g := apiGroup.Group("/orders")

	// GET /api/orders?status=pending
	g.GET("", func(c echo.Context) error {
		list := deps.Orders.List()
		if status := c.QueryParam("status"); status != "" {
			filtered := make([]orderEntity.Order, 0, len(list))
			for _, o := range list {
				if o.Status == orderEntity.Status(status) {
					filtered = append(filtered, o)
				}
			}
			list = filtered
		}
		return c.JSON(http.StatusOK, list)
	})

	g.GET("/stats", func(c echo.Context) error {
		return c.JSON(http.StatusOK, deps.Lifecycle.ComputeStats())
	})

	// POST /api/orders/refresh re-reads the persisted collection, same as
	// the cron poll but on demand.
	g.POST("/refresh", func(c echo.Context) error {
		deps.Orders.Refresh()
		return c.JSON(http.StatusOK, echo.Map{"orders": len(deps.Orders.List())})
	})

	g.GET("/:id", func(c echo.Context) error {
		o, ok := deps.Orders.Get(c.Param("id"))
		if !ok {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "order not found"})
		}
		return c.JSON(http.StatusOK, o)
	})

	// POST /api/orders/:id/advance steps the forward path; terminal orders
	// come back unchanged.
	g.POST("/:id/advance", func(c echo.Context) error {
		o, ok := deps.Lifecycle.AdvanceOrder(c.Param("id"))
		if !ok {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "order not found"})
		}
		return c.JSON(http.StatusOK, o)
	})

	g.POST("/:id/cancel", func(c echo.Context) error {
		o, ok := deps.Lifecycle.CancelOrder(c.Param("id"))
		if !ok {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "order not found"})
		}
		return c.JSON(http.StatusOK, o)
	})

	// PUT /api/orders/:id/status assigns a status directly. Administrative
	// correction hook; skips the forward-path rule.
	g.PUT("/:id/status", func(c echo.Context) error {
		var body struct {
			Status orderEntity.Status `json:"status"`
		}
		if err := c.Bind(&body); err != nil {
			return err
		}
		if !body.Status.Valid() {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown status"})
		}
		o, ok := deps.Lifecycle.SetStatus(c.Param("id"), body.Status)
		if !ok {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "order not found"})
		}
		return c.JSON(http.StatusOK, o)
	})

	g.PUT("/:id/delivery-type", func(c echo.Context) error {
		var body struct {
			DeliveryType orderEntity.DeliveryType `json:"deliveryType"`
		}
		if err := c.Bind(&body); err != nil {
			return err
		}
		o, ok := deps.Lifecycle.SetDeliveryType(c.Param("id"), body.DeliveryType)
		if !ok {
			if _, exists := deps.Orders.Get(c.Param("id")); !exists {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "order not found"})
			}
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown delivery type"})
		}
		return c.JSON(http.StatusOK, o)
	})

	g.PUT("/:id/delivery-info", func(c echo.Context) error {
		var patch map[string]interface{}
		if err := c.Bind(&patch); err != nil {
			return err
		}
		o, ok := deps.Lifecycle.EditDeliveryInfo(c.Param("id"), patch)
		if !ok {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "order not found"})
		}
		return c.JSON(http.StatusOK, o)
	})
}
