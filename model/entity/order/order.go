package order

// Status is the order lifecycle state.
type Status string

const (
	StatusPending    Status = "pending"
	StatusAccepted   Status = "accepted"
	StatusProcessing Status = "processing"
	StatusDelivering Status = "delivering"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

// Terminal reports whether no further automatic transitions apply.
func (s Status) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Valid reports whether s is a known status value.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusProcessing, StatusDelivering, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// DeliveryType selects the fixed delivery fee.
type DeliveryType string

const (
	DeliveryGround  DeliveryType = "ground"
	DeliveryAirdrop DeliveryType = "airdrop"
)

// LineItem is a cart line. ID is synthesized as productID-colorID (or
// productID-default) to disambiguate variants of the same base product.
type LineItem struct {
	ID       string  `json:"id" mapstructure:"id"`
	Name     string  `json:"name" mapstructure:"name"`
	Price    float64 `json:"price" mapstructure:"price"`
	Image    string  `json:"image" mapstructure:"image"`
	Quantity int     `json:"quantity" mapstructure:"quantity"`
}

// DeliveryInfo carries free-form delivery fields. Editing these never
// affects totals.
type DeliveryInfo struct {
	Address             string `json:"address" mapstructure:"address"`
	City                string `json:"city" mapstructure:"city"`
	State               string `json:"state" mapstructure:"state"`
	ZipCode             string `json:"zipCode" mapstructure:"zipCode"`
	ContactName         string `json:"contactName" mapstructure:"contactName"`
	ContactPhone        string `json:"contactPhone" mapstructure:"contactPhone"`
	Notes               string `json:"notes" mapstructure:"notes"`
	PurchaseOrderNumber string `json:"purchaseOrderNumber" mapstructure:"purchaseOrderNumber"`
	OrderType           string `json:"orderType" mapstructure:"orderType"` // purchase | quote
	JobSiteName         string `json:"jobSiteName" mapstructure:"jobSiteName"`
	JobSiteAddress      string `json:"jobSiteAddress" mapstructure:"jobSiteAddress"`
	CreditTerms         string `json:"creditTerms" mapstructure:"creditTerms"` // net30 | cod | credit-card
}

// Order as persisted under the mbs-orders key.
// Invariant: Total == Subtotal + Tax + DeliveryFee after any mutation of
// DeliveryType or line items; recomputed eagerly, never lazily.
type Order struct {
	ID           string       `json:"id"`
	CustomerName string       `json:"customerName"`
	Company      string       `json:"company"`
	OrderDate    string       `json:"orderDate"`
	DeliveryDate string       `json:"deliveryDate"`
	DeliveryType DeliveryType `json:"deliveryType"`
	Status       Status       `json:"status"`
	Items        []LineItem   `json:"items"`
	Subtotal     float64      `json:"subtotal"`
	Tax          float64      `json:"tax"`
	DeliveryFee  float64      `json:"deliveryFee"`
	Total        float64      `json:"total"`
	DeliveryInfo DeliveryInfo `json:"deliveryInfo"`
}
