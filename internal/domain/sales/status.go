package sales

// SalesOrderStatus represents the fulfillment state of a sales order
type SalesOrderStatus string

const (
	SalesOrderStatusReceived       SalesOrderStatus = "RECEIVED"
	SalesOrderStatusShipInstructed SalesOrderStatus = "SHIP_INSTRUCTED"
	SalesOrderStatusShipping       SalesOrderStatus = "SHIPPING"
	SalesOrderStatusDelivered      SalesOrderStatus = "DELIVERED"
	SalesOrderStatusCancelled      SalesOrderStatus = "CANCELLED"
)

// IsValid checks if the status is valid
func (s SalesOrderStatus) IsValid() bool {
	switch s {
	case SalesOrderStatusReceived, SalesOrderStatusShipInstructed, SalesOrderStatusShipping,
		SalesOrderStatusDelivered, SalesOrderStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation
func (s SalesOrderStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if a transition to the target status is allowed
func (s SalesOrderStatus) CanTransitionTo(target SalesOrderStatus) bool {
	switch s {
	case SalesOrderStatusReceived:
		return target == SalesOrderStatusShipInstructed || target == SalesOrderStatusCancelled
	case SalesOrderStatusShipInstructed:
		return target == SalesOrderStatusShipping || target == SalesOrderStatusCancelled
	case SalesOrderStatusShipping:
		return target == SalesOrderStatusDelivered
	default:
		return false
	}
}

// CanShip returns true while shipping instructions can still be issued
func (s SalesOrderStatus) CanShip() bool {
	return s == SalesOrderStatusReceived || s == SalesOrderStatusShipInstructed
}

// SalesReturnStatus represents the processing state of a customer return
type SalesReturnStatus string

const (
	SalesReturnStatusReceived   SalesReturnStatus = "RECEIVED"
	SalesReturnStatusInspecting SalesReturnStatus = "INSPECTING"
	SalesReturnStatusRestocked  SalesReturnStatus = "RESTOCKED"
	SalesReturnStatusScrapped   SalesReturnStatus = "SCRAPPED"
	SalesReturnStatusRefunded   SalesReturnStatus = "REFUNDED"
)

// IsValid checks if the status is valid
func (s SalesReturnStatus) IsValid() bool {
	switch s {
	case SalesReturnStatusReceived, SalesReturnStatusInspecting, SalesReturnStatusRestocked,
		SalesReturnStatusScrapped, SalesReturnStatusRefunded:
		return true
	}
	return false
}

// String returns the string representation
func (s SalesReturnStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if a transition to the target status is allowed
func (s SalesReturnStatus) CanTransitionTo(target SalesReturnStatus) bool {
	switch s {
	case SalesReturnStatusReceived:
		return target == SalesReturnStatusInspecting
	case SalesReturnStatusInspecting:
		return target == SalesReturnStatusRestocked || target == SalesReturnStatusScrapped
	case SalesReturnStatusRestocked, SalesReturnStatusScrapped:
		return target == SalesReturnStatusRefunded
	default:
		return false
	}
}
