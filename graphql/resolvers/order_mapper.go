package resolvers

import (
	gqlmodels "mbs.GO/graphql/models"
	orderEntity "mbs.GO/model/entity/order"
)

func mapOrder(o orderEntity.Order) *gqlmodels.Order {
	items := make([]*gqlmodels.LineItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, &gqlmodels.LineItem{
			ID:       it.ID,
			Name:     it.Name,
			Price:    it.Price,
			Image:    it.Image,
			Quantity: int32(it.Quantity),
		})
	}
	return &gqlmodels.Order{
		ID:           o.ID,
		CustomerName: o.CustomerName,
		Company:      o.Company,
		OrderDate:    o.OrderDate,
		DeliveryDate: o.DeliveryDate,
		DeliveryType: string(o.DeliveryType),
		Status:       string(o.Status),
		Items:        items,
		Subtotal:     o.Subtotal,
		Tax:          o.Tax,
		DeliveryFee:  o.DeliveryFee,
		Total:        o.Total,
		DeliveryInfo: mapDeliveryInfo(o.DeliveryInfo),
	}
}

func mapDeliveryInfo(d orderEntity.DeliveryInfo) *gqlmodels.DeliveryInfo {
	return &gqlmodels.DeliveryInfo{
		Address:             d.Address,
		City:                d.City,
		State:               d.State,
		ZipCode:             d.ZipCode,
		ContactName:         d.ContactName,
		ContactPhone:        d.ContactPhone,
		Notes:               d.Notes,
		PurchaseOrderNumber: d.PurchaseOrderNumber,
		OrderType:           d.OrderType,
		JobSiteName:         d.JobSiteName,
		JobSiteAddress:      d.JobSiteAddress,
		CreditTerms:         d.CreditTerms,
	}
}
