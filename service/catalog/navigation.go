package catalog

import (
	catalogEntity "mbs.GO/model/entity/catalog"
	catalogRepo "mbs.GO/model/repository/catalog"
)

// NavState is the catalog navigation position as a set of selected ids.
// Deeper levels are only meaningful when every ancestor is set; any
// transition to a level clears everything below it, including the color
// selection.
type NavState struct {
	CategoryID string `json:"categoryId,omitempty"`
	BrandID    string `json:"brandId,omitempty"`
	ProductID  string `json:"productId,omitempty"`
	ColorID    string `json:"colorId,omitempty"`
}

// AtRoot reports whether no category is selected.
func (s NavState) AtRoot() bool {
	return s.CategoryID == ""
}

// NavigateToCategory enters a category and drops brand, product and color.
func (s NavState) NavigateToCategory(id string) NavState {
	return NavState{CategoryID: id}
}

// NavigateToBrand enters a brand within the current category.
func (s NavState) NavigateToBrand(id string) NavState {
	return NavState{CategoryID: s.CategoryID, BrandID: id}
}

// NavigateToProduct enters a product within the current brand.
func (s NavState) NavigateToProduct(id string) NavState {
	return NavState{CategoryID: s.CategoryID, BrandID: s.BrandID, ProductID: id}
}

// SelectColor marks a variant on the current product without changing level.
func (s NavState) SelectColor(id string) NavState {
	s.ColorID = id
	return s
}

// Back pops exactly one level. At the root it is a no-op.
func (s NavState) Back() NavState {
	switch {
	case s.ProductID != "":
		return NavState{CategoryID: s.CategoryID, BrandID: s.BrandID}
	case s.BrandID != "":
		return NavState{CategoryID: s.CategoryID}
	default:
		return NavState{}
	}
}

// ResetToRoot returns to the category grid.
func (s NavState) ResetToRoot() NavState {
	return NavState{}
}

// ViewKind names what the current navigation position displays.
type ViewKind string

const (
	ViewCategories     ViewKind = "categories"
	ViewBrands         ViewKind = "brands"
	ViewDirectProducts ViewKind = "directProducts"
	ViewProducts       ViewKind = "products"
	ViewProductDetail  ViewKind = "productDetail"
)

// View is the fully resolved render model for a navigation position.
// Only the fields relevant to Kind are populated.
type View struct {
	Kind ViewKind `json:"kind"`

	Category *catalogEntity.Category `json:"category,omitempty"`
	Brand    *catalogEntity.Brand    `json:"brand,omitempty"`
	Product  *catalogEntity.Product  `json:"product,omitempty"`

	Categories     []catalogEntity.Category      `json:"categories,omitempty"`
	Brands         []catalogEntity.Brand         `json:"brands,omitempty"`
	Products       []catalogEntity.Product       `json:"products,omitempty"`
	DirectProducts []catalogEntity.DirectProduct `json:"directProducts,omitempty"`
	Colors         []catalogEntity.Color         `json:"colors,omitempty"`
	SelectedColor  *catalogEntity.Color          `json:"selectedColor,omitempty"`
	BulkTiers      []catalogEntity.BulkTier      `json:"bulkTiers,omitempty"`
}

// DeriveView resolves a navigation state against the catalog. Unknown ids
// fail soft: the view falls back to the nearest resolvable ancestor level
// rather than erroring.
func DeriveView(state NavState, store *catalogRepo.Store) View {
	if state.CategoryID == "" {
		return View{Kind: ViewCategories, Categories: store.Categories()}
	}

	category, ok := store.CategoryByID(state.CategoryID)
	if !ok {
		return View{Kind: ViewCategories, Categories: store.Categories()}
	}

	if !category.HasSubcategories {
		return View{
			Kind:           ViewDirectProducts,
			Category:       &category,
			DirectProducts: store.DirectProductsFor(category.ID),
			BulkTiers:      store.TiersFor(category.ID),
		}
	}

	if state.BrandID == "" {
		return View{Kind: ViewBrands, Category: &category, Brands: store.BrandsFor(category.ID)}
	}
	brand, ok := store.BrandByID(category.ID, state.BrandID)
	if !ok {
		return View{Kind: ViewBrands, Category: &category, Brands: store.BrandsFor(category.ID)}
	}

	if state.ProductID == "" {
		return View{
			Kind:     ViewProducts,
			Category: &category,
			Brand:    &brand,
			Products: store.ProductsFor(brand.ID, category.ID),
		}
	}
	product, ok := store.ProductByID(brand.ID, category.ID, state.ProductID)
	if !ok {
		return View{
			Kind:     ViewProducts,
			Category: &category,
			Brand:    &brand,
			Products: store.ProductsFor(brand.ID, category.ID),
		}
	}

	view := View{
		Kind:      ViewProductDetail,
		Category:  &category,
		Brand:     &brand,
		Product:   &product,
		Colors:    store.ColorsFor(product.ID),
		BulkTiers: store.TiersFor(category.ID),
	}
	if state.ColorID != "" {
		for i := range view.Colors {
			if view.Colors[i].ID == state.ColorID {
				view.SelectedColor = &view.Colors[i]
				break
			}
		}
	}
	return view
}

// Breadcrumb is one trail entry. Target is the state navigating to that
// entry restores; it is nil on the final (current) crumb.
type Breadcrumb struct {
	Label  string    `json:"label"`
	Target *NavState `json:"target,omitempty"`
}

// Breadcrumbs builds the Home > category > brand > product trail for a
// state. Levels whose id no longer resolves terminate the trail early.
func Breadcrumbs(state NavState, store *catalogRepo.Store) []Breadcrumb {
	crumbs := []Breadcrumb{{Label: "Home", Target: &NavState{}}}

	if state.CategoryID == "" {
		return finishTrail(crumbs)
	}
	category, ok := store.CategoryByID(state.CategoryID)
	if !ok {
		return finishTrail(crumbs)
	}
	crumbs = append(crumbs, Breadcrumb{
		Label:  category.Name,
		Target: &NavState{CategoryID: category.ID},
	})

	if state.BrandID == "" {
		return finishTrail(crumbs)
	}
	brand, ok := store.BrandByID(category.ID, state.BrandID)
	if !ok {
		return finishTrail(crumbs)
	}
	crumbs = append(crumbs, Breadcrumb{
		Label:  brand.Name,
		Target: &NavState{CategoryID: category.ID, BrandID: brand.ID},
	})

	if state.ProductID == "" {
		return finishTrail(crumbs)
	}
	product, ok := store.ProductByID(brand.ID, category.ID, state.ProductID)
	if !ok {
		return finishTrail(crumbs)
	}
	crumbs = append(crumbs, Breadcrumb{Label: product.Name})

	return finishTrail(crumbs)
}

// finishTrail nils out the last crumb's target so the current level is not
// a link.
func finishTrail(crumbs []Breadcrumb) []Breadcrumb {
	crumbs[len(crumbs)-1].Target = nil
	return crumbs
}
