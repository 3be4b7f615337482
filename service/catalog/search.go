package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/elastic/go-elasticsearch/v8"

	catalogRepo "mbs.GO/model/repository/catalog"
)

// SortOption orders a product listing.
type SortOption string

const (
	SortSales     SortOption = "sales"
	SortPriceLow  SortOption = "price-low"
	SortPriceHigh SortOption = "price-high"
)

// SearchHit is a catalog record matched by a search, with enough ancestry
// to navigate to it.
type SearchHit struct {
	Kind       string  `json:"kind"` // product | directProduct
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Image      string  `json:"image"`
	Price      float64 `json:"price"`
	CategoryID string  `json:"categoryId"`
	BrandID    string  `json:"brandId,omitempty"`
}

var (
	searchServiceInstance *SearchService
	searchServiceOnce     sync.Once
)

// GetSearchService returns singleton SearchService.
func GetSearchService() *SearchService {
	searchServiceOnce.Do(func() {
		searchServiceInstance = NewSearchService()
	})
	return searchServiceInstance
}

// SearchService matches catalog records by name. When Elasticsearch is
// configured it queries the index; otherwise it scans the in-memory
// catalog, which is small enough that the scan is the common path.
type SearchService struct {
	client *elasticsearch.Client
	prefix string
}

func NewSearchService() *SearchService {
	host := os.Getenv("ELASTICSEARCH_HOST")
	prefix := os.Getenv("ELASTICSEARCH_INDEX_PREFIX")
	if prefix == "" {
		prefix = "mbs"
	}
	if host == "" {
		return &SearchService{prefix: prefix}
	}

	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{host},
	})
	if err != nil {
		return &SearchService{prefix: prefix}
	}
	return &SearchService{client: client, prefix: prefix}
}

// Search returns catalog hits for a query. Empty queries return nothing.
func (s *SearchService) Search(ctx context.Context, store *catalogRepo.Store, query string) ([]SearchHit, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	if s.client != nil {
		hits, err := s.searchIndex(ctx, store, query)
		if err == nil {
			return hits, nil
		}
		// Index unreachable; the catalog scan still answers.
	}
	return scanCatalog(store, query), nil
}

// searchIndex queries the mbs_catalog index and resolves hit ids against
// the live catalog so stale index entries drop out.
func (s *SearchService) searchIndex(ctx context.Context, store *catalogRepo.Store, query string) ([]SearchHit, error) {
	body := map[string]interface{}{
		"size": 50,
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  query,
				"fields": []string{"name^3", "category", "brand"},
			},
		},
	}
	bodyBytes, _ := json.Marshal(body)

	res, err := s.client.Search(
		s.client.Search.WithContext(ctx),
		s.client.Search.WithIndex(s.prefix+"_catalog"),
		s.client.Search.WithBody(bytes.NewReader(bodyBytes)),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("elasticsearch error: %s", res.String())
	}

	var esResp struct {
		Hits struct {
			Hits []struct {
				Source struct {
					ID         string `json:"id"`
					CategoryID string `json:"categoryId"`
					BrandID    string `json:"brandId"`
				} `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&esResp); err != nil {
		return nil, err
	}

	hits := make([]SearchHit, 0, len(esResp.Hits.Hits))
	for _, h := range esResp.Hits.Hits {
		src := h.Source
		if src.BrandID != "" {
			if p, ok := store.ProductByID(src.BrandID, src.CategoryID, src.ID); ok {
				hits = append(hits, SearchHit{
					Kind: "product", ID: p.ID, Name: p.Name, Image: p.Image,
					Price: p.StartingPrice, CategoryID: src.CategoryID, BrandID: src.BrandID,
				})
			}
			continue
		}
		if p, ok := store.DirectProductByID(src.CategoryID, src.ID); ok {
			hits = append(hits, SearchHit{
				Kind: "directProduct", ID: p.ID, Name: p.Name, Image: p.Image,
				Price: p.Price, CategoryID: src.CategoryID,
			})
		}
	}
	return hits, nil
}

// scanCatalog walks every listing and matches names case-insensitively.
func scanCatalog(store *catalogRepo.Store, query string) []SearchHit {
	q := strings.ToLower(query)
	var hits []SearchHit
	for _, c := range store.Categories() {
		if c.HasSubcategories {
			for _, b := range store.BrandsFor(c.ID) {
				for _, p := range store.ProductsFor(b.ID, c.ID) {
					if strings.Contains(strings.ToLower(p.Name), q) {
						hits = append(hits, SearchHit{
							Kind: "product", ID: p.ID, Name: p.Name, Image: p.Image,
							Price: p.StartingPrice, CategoryID: c.ID, BrandID: b.ID,
						})
					}
				}
			}
			continue
		}
		for _, p := range store.DirectProductsFor(c.ID) {
			if strings.Contains(strings.ToLower(p.Name), q) {
				hits = append(hits, SearchHit{
					Kind: "directProduct", ID: p.ID, Name: p.Name, Image: p.Image,
					Price: p.Price, CategoryID: c.ID,
				})
			}
		}
	}
	return hits
}

// SortHits orders a hit list in place. Unknown options keep catalog order,
// which stands in for sales rank.
func SortHits(hits []SearchHit, opt SortOption) {
	switch opt {
	case SortPriceLow:
		sort.SliceStable(hits, func(i, j int) bool { return hits[i].Price < hits[j].Price })
	case SortPriceHigh:
		sort.SliceStable(hits, func(i, j int) bool { return hits[i].Price > hits[j].Price })
	}
}
