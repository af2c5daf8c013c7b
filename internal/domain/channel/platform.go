package channel

// ---------------------------------------------------------------------------
// PlatformCode represents the type of marketplace platform
// ---------------------------------------------------------------------------

// PlatformCode represents the type of marketplace platform
type PlatformCode string

const (
	// PlatformCodeShopee represents the Shopee marketplace
	PlatformCodeShopee PlatformCode = "SHOPEE"
	// PlatformCodeLazada represents the Lazada marketplace
	PlatformCodeLazada PlatformCode = "LAZADA"
	// PlatformCodeTokopedia represents the Tokopedia marketplace
	PlatformCodeTokopedia PlatformCode = "TOKOPEDIA"
	// PlatformCodeBukalapak represents the Bukalapak marketplace
	PlatformCodeBukalapak PlatformCode = "BUKALAPAK"
	// PlatformCodeBlibli represents the Blibli marketplace
	PlatformCodeBlibli PlatformCode = "BLIBLI"
)

// IsValid returns true if the platform code is valid
func (c PlatformCode) IsValid() bool {
	switch c {
	case PlatformCodeShopee, PlatformCodeLazada, PlatformCodeTokopedia,
		PlatformCodeBukalapak, PlatformCodeBlibli:
		return true
	default:
		return false
	}
}

// String returns the string representation of PlatformCode
func (c PlatformCode) String() string {
	return string(c)
}

// DisplayName returns a human-readable name for the platform
func (c PlatformCode) DisplayName() string {
	switch c {
	case PlatformCodeShopee:
		return "Shopee"
	case PlatformCodeLazada:
		return "Lazada"
	case PlatformCodeTokopedia:
		return "Tokopedia"
	case PlatformCodeBukalapak:
		return "Bukalapak"
	case PlatformCodeBlibli:
		return "Blibli"
	default:
		return string(c)
	}
}

// AllPlatformCodes returns every supported platform code
func AllPlatformCodes() []PlatformCode {
	return []PlatformCode{
		PlatformCodeShopee,
		PlatformCodeLazada,
		PlatformCodeTokopedia,
		PlatformCodeBukalapak,
		PlatformCodeBlibli,
	}
}

// ---------------------------------------------------------------------------
// OrderStatus represents the status of an order, locally or on a platform
// ---------------------------------------------------------------------------

// OrderStatus represents the status of an order. The same status vocabulary
// is used for the local order record and for the platform-reported state so
// the two can be compared directly during conflict detection.
type OrderStatus string

const (
	// OrderStatusPending indicates the order is pending payment
	OrderStatusPending OrderStatus = "PENDING"
	// OrderStatusPaid indicates payment received, pending fulfilment
	OrderStatusPaid OrderStatus = "PAID"
	// OrderStatusPacked indicates the order has been packed for pickup
	OrderStatusPacked OrderStatus = "PACKED"
	// OrderStatusShipped indicates the order has been shipped
	OrderStatusShipped OrderStatus = "SHIPPED"
	// OrderStatusDelivered indicates the order was delivered
	OrderStatusDelivered OrderStatus = "DELIVERED"
	// OrderStatusCompleted indicates the order completed (buyer confirmed)
	OrderStatusCompleted OrderStatus = "COMPLETED"
	// OrderStatusCancelled indicates the order was cancelled
	OrderStatusCancelled OrderStatus = "CANCELLED"
	// OrderStatusRefunding indicates a refund is in progress
	OrderStatusRefunding OrderStatus = "REFUNDING"
	// OrderStatusRefunded indicates the order was refunded
	OrderStatusRefunded OrderStatus = "REFUNDED"
)

// IsValid returns true if the status is valid
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusPacked, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCompleted, OrderStatusCancelled,
		OrderStatusRefunding, OrderStatusRefunded:
		return true
	default:
		return false
	}
}

// String returns the string representation of OrderStatus
func (s OrderStatus) String() string {
	return string(s)
}

// IsFinal returns true if the status is a final (terminal) state
func (s OrderStatus) IsFinal() bool {
	switch s {
	case OrderStatusCompleted, OrderStatusCancelled, OrderStatusRefunded:
		return true
	default:
		return false
	}
}

// AffectsPayment returns true if the status carries financial consequences
func (s OrderStatus) AffectsPayment() bool {
	switch s {
	case OrderStatusRefunding, OrderStatusRefunded, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// AffectsShipping returns true if the status is part of the fulfilment flow
func (s OrderStatus) AffectsShipping() bool {
	switch s {
	case OrderStatusPacked, OrderStatusShipped, OrderStatusDelivered:
		return true
	default:
		return false
	}
}
