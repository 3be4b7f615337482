// Standalone GraphQL server — run with: go run ./cmd/graphql
package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"mbs.GO/api"
	graphqlApi "mbs.GO/api/graphql"
	"mbs.GO/config"
	catalogRepo "mbs.GO/model/repository/catalog"
	orderRepo "mbs.GO/model/repository/order"
	storeRepo "mbs.GO/model/repository/store"
	cartService "mbs.GO/service/cart"
	orderService "mbs.GO/service/order"
)

func main() {
	_ = godotenv.Load()
	config.LoadAppConfig()

	db, err := config.NewDB()
	if err != nil {
		log.Fatal("db:", err)
	}
	kv := storeRepo.NewKVRepository(db)
	if err := kv.Migrate(); err != nil {
		log.Fatal("migrate:", err)
	}
	catalog := catalogRepo.NewStore(kv, nil)
	catalog.Load()
	orders := orderRepo.NewStore(kv)
	orders.Load()

	deps := &api.Deps{
		DB:        db,
		Catalog:   catalog,
		Orders:    orders,
		Lifecycle: orderService.NewService(orders, catalog),
		Carts:     cartService.NewManager(),
	}

	e := echo.New()
	graphqlApi.RegisterGraphQLRoutes(e, deps)

	// ASCII banner on start (random font each run)
	gqlFonts := []string{"banner", "big", "block", "slant", "standard", "small", "shadow", "speed", "thick", "univers", "doom", "larry3d", "puffy", "rectangles", "bigchief", "cosmic"}
	fig := figure.NewFigure("MBS GQL ->", gqlFonts[rand.Intn(len(gqlFonts))], true)
	fig.Print()
	fmt.Println("Standalone GraphQL server")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("GraphQL at http://localhost:%s/graphql  Playground at http://localhost:%s/playground", port, port)
	e.Logger.Fatal(e.Start(":" + port))
}
