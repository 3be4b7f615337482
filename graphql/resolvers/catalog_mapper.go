package resolvers

import (
	gqlmodels "mbs.GO/graphql/models"
	catalogEntity "mbs.GO/model/entity/catalog"
	catalogService "mbs.GO/service/catalog"
)

func mapCategory(c catalogEntity.Category) *gqlmodels.Category {
	return &gqlmodels.Category{
		ID:               c.ID,
		Name:             c.Name,
		HasSubcategories: c.HasSubcategories,
		Image:            c.Image,
	}
}

func mapCategories(in []catalogEntity.Category) []*gqlmodels.Category {
	out := make([]*gqlmodels.Category, 0, len(in))
	for _, c := range in {
		out = append(out, mapCategory(c))
	}
	return out
}

func mapBrand(b catalogEntity.Brand) *gqlmodels.Brand {
	m := &gqlmodels.Brand{ID: b.ID, Name: b.Name, Image: b.Image}
	if b.Logo != "" {
		logo := b.Logo
		m.Logo = &logo
	}
	return m
}

func mapBrands(in []catalogEntity.Brand) []*gqlmodels.Brand {
	out := make([]*gqlmodels.Brand, 0, len(in))
	for _, b := range in {
		out = append(out, mapBrand(b))
	}
	return out
}

func mapProduct(p catalogEntity.Product) *gqlmodels.Product {
	return &gqlmodels.Product{
		ID:            p.ID,
		Name:          p.Name,
		Image:         p.Image,
		StartingPrice: p.StartingPrice,
		HasColors:     p.HasColors,
	}
}

func mapProducts(in []catalogEntity.Product) []*gqlmodels.Product {
	out := make([]*gqlmodels.Product, 0, len(in))
	for _, p := range in {
		out = append(out, mapProduct(p))
	}
	return out
}

func mapColor(c catalogEntity.Color) *gqlmodels.Color {
	return &gqlmodels.Color{
		ID:        c.ID,
		Name:      c.Name,
		Hex:       c.Hex,
		Price:     c.Price,
		Stock:     int32(c.Stock),
		StockText: catalogService.StockText(c.Stock),
	}
}

func mapColors(in []catalogEntity.Color) []*gqlmodels.Color {
	out := make([]*gqlmodels.Color, 0, len(in))
	for _, c := range in {
		out = append(out, mapColor(c))
	}
	return out
}

func mapDirectProduct(p catalogEntity.DirectProduct) *gqlmodels.DirectProduct {
	return &gqlmodels.DirectProduct{
		ID:         p.ID,
		Name:       p.Name,
		Image:      p.Image,
		Price:      p.Price,
		Stock:      int32(p.Stock),
		StockText:  catalogService.StockText(p.Stock),
		HasOptions: p.HasOptions,
	}
}

func mapDirectProducts(in []catalogEntity.DirectProduct) []*gqlmodels.DirectProduct {
	out := make([]*gqlmodels.DirectProduct, 0, len(in))
	for _, p := range in {
		out = append(out, mapDirectProduct(p))
	}
	return out
}

func mapTiers(in []catalogEntity.BulkTier) []*gqlmodels.BulkTier {
	out := make([]*gqlmodels.BulkTier, 0, len(in))
	for _, t := range in {
		out = append(out, &gqlmodels.BulkTier{
			MinQty:   int32(t.MinQty),
			Discount: t.Discount,
			Label:    t.Label,
		})
	}
	return out
}

func mapLocations(in []catalogEntity.StockLocation) []*gqlmodels.StockLocation {
	out := make([]*gqlmodels.StockLocation, 0, len(in))
	for _, l := range in {
		out = append(out, &gqlmodels.StockLocation{ID: l.ID, Name: l.Name, IsMain: l.IsMain})
	}
	return out
}

func mapHits(in []catalogService.SearchHit) []*gqlmodels.SearchHit {
	out := make([]*gqlmodels.SearchHit, 0, len(in))
	for _, h := range in {
		m := &gqlmodels.SearchHit{
			Kind:       h.Kind,
			ID:         h.ID,
			Name:       h.Name,
			Image:      h.Image,
			Price:      h.Price,
			CategoryID: h.CategoryID,
		}
		if h.BrandID != "" {
			brandID := h.BrandID
			m.BrandID = &brandID
		}
		out = append(out, m)
	}
	return out
}

func mapView(v catalogService.View, crumbs []catalogService.Breadcrumb) *gqlmodels.View {
	out := &gqlmodels.View{Kind: string(v.Kind)}
	if v.Category != nil {
		out.Category = mapCategory(*v.Category)
	}
	if v.Brand != nil {
		out.Brand = mapBrand(*v.Brand)
	}
	if v.Product != nil {
		out.Product = mapProduct(*v.Product)
	}
	if v.Categories != nil {
		list := mapCategories(v.Categories)
		out.Categories = &list
	}
	if v.Brands != nil {
		list := mapBrands(v.Brands)
		out.Brands = &list
	}
	if v.Products != nil {
		list := mapProducts(v.Products)
		out.Products = &list
	}
	if v.DirectProducts != nil {
		list := mapDirectProducts(v.DirectProducts)
		out.DirectProducts = &list
	}
	if v.Colors != nil {
		list := mapColors(v.Colors)
		out.Colors = &list
	}
	if v.SelectedColor != nil {
		out.SelectedColor = mapColor(*v.SelectedColor)
	}
	if v.BulkTiers != nil {
		list := mapTiers(v.BulkTiers)
		out.BulkTiers = &list
	}
	out.Breadcrumbs = mapBreadcrumbs(crumbs)
	return out
}

func mapBreadcrumbs(in []catalogService.Breadcrumb) []*gqlmodels.Breadcrumb {
	out := make([]*gqlmodels.Breadcrumb, 0, len(in))
	for _, c := range in {
		m := &gqlmodels.Breadcrumb{Label: c.Label, Current: c.Target == nil}
		if c.Target != nil {
			if c.Target.CategoryID != "" {
				id := c.Target.CategoryID
				m.CategoryID = &id
			}
			if c.Target.BrandID != "" {
				id := c.Target.BrandID
				m.BrandID = &id
			}
			if c.Target.ProductID != "" {
				id := c.Target.ProductID
				m.ProductID = &id
			}
		}
		out = append(out, m)
	}
	return out
}
