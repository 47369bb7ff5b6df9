package procurement

// PurchaseRequestStatus represents the approval state of a purchase request
type PurchaseRequestStatus string

const (
	PurchaseRequestStatusPending  PurchaseRequestStatus = "PENDING_APPROVAL"
	PurchaseRequestStatusApproved PurchaseRequestStatus = "APPROVED"
	PurchaseRequestStatusRejected PurchaseRequestStatus = "REJECTED"
)

// IsValid checks if the status is valid
func (s PurchaseRequestStatus) IsValid() bool {
	switch s {
	case PurchaseRequestStatusPending, PurchaseRequestStatusApproved, PurchaseRequestStatusRejected:
		return true
	}
	return false
}

// String returns the string representation
func (s PurchaseRequestStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if a transition to the target status is allowed.
// Approval and rejection are terminal.
func (s PurchaseRequestStatus) CanTransitionTo(target PurchaseRequestStatus) bool {
	switch s {
	case PurchaseRequestStatusPending:
		return target == PurchaseRequestStatusApproved || target == PurchaseRequestStatusRejected
	default:
		return false
	}
}

// QuotationStatus represents the review state of a supplier quotation
type QuotationStatus string

const (
	QuotationStatusUnderReview QuotationStatus = "UNDER_REVIEW"
	QuotationStatusSelected    QuotationStatus = "SELECTED"
	QuotationStatusRejected    QuotationStatus = "REJECTED"
	QuotationStatusExpired     QuotationStatus = "EXPIRED"
)

// IsValid checks if the status is valid
func (s QuotationStatus) IsValid() bool {
	switch s {
	case QuotationStatusUnderReview, QuotationStatusSelected, QuotationStatusRejected, QuotationStatusExpired:
		return true
	}
	return false
}

// String returns the string representation
func (s QuotationStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if a transition to the target status is allowed
func (s QuotationStatus) CanTransitionTo(target QuotationStatus) bool {
	switch s {
	case QuotationStatusUnderReview:
		return target == QuotationStatusSelected || target == QuotationStatusRejected || target == QuotationStatusExpired
	default:
		return false
	}
}

// PurchaseOrderStatus represents the delivery state of a purchase order
type PurchaseOrderStatus string

const (
	PurchaseOrderStatusOrdered            PurchaseOrderStatus = "ORDERED"
	PurchaseOrderStatusPartiallyDelivered PurchaseOrderStatus = "PARTIALLY_DELIVERED"
	PurchaseOrderStatusFullyReceived      PurchaseOrderStatus = "FULLY_RECEIVED"
	PurchaseOrderStatusCancelled          PurchaseOrderStatus = "CANCELLED"
)

// IsValid checks if the status is valid
func (s PurchaseOrderStatus) IsValid() bool {
	switch s {
	case PurchaseOrderStatusOrdered, PurchaseOrderStatusPartiallyDelivered,
		PurchaseOrderStatusFullyReceived, PurchaseOrderStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation
func (s PurchaseOrderStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if a transition to the target status is allowed.
// FULLY_RECEIVED is only reachable through receiving, never set directly.
func (s PurchaseOrderStatus) CanTransitionTo(target PurchaseOrderStatus) bool {
	switch s {
	case PurchaseOrderStatusOrdered:
		return target == PurchaseOrderStatusPartiallyDelivered ||
			target == PurchaseOrderStatusFullyReceived ||
			target == PurchaseOrderStatusCancelled
	case PurchaseOrderStatusPartiallyDelivered:
		return target == PurchaseOrderStatusFullyReceived
	default:
		return false
	}
}

// CanReceive returns true if goods can still be received against this order
func (s PurchaseOrderStatus) CanReceive() bool {
	return s == PurchaseOrderStatusOrdered || s == PurchaseOrderStatusPartiallyDelivered
}

// VerificationDisposition is the user-chosen outcome of a three-way match.
// It is recorded independently of the automatic match suggestion.
type VerificationDisposition string

const (
	DispositionVerifying        VerificationDisposition = "VERIFYING"
	DispositionMatchedApproved  VerificationDisposition = "MATCHED_APPROVED"
	DispositionMismatchHold     VerificationDisposition = "MISMATCH_HOLD"
	DispositionMismatchRejected VerificationDisposition = "MISMATCH_REJECTED"
)

// IsValid checks if the disposition is valid
func (d VerificationDisposition) IsValid() bool {
	switch d {
	case DispositionVerifying, DispositionMatchedApproved, DispositionMismatchHold, DispositionMismatchRejected:
		return true
	}
	return false
}

// String returns the string representation
func (d VerificationDisposition) String() string {
	return string(d)
}

// PaymentStatus represents the state of a scheduled payment
type PaymentStatus string

const (
	PaymentStatusScheduled PaymentStatus = "SCHEDULED"
	PaymentStatusPaid      PaymentStatus = "PAID"
)

// IsValid checks if the status is valid
func (s PaymentStatus) IsValid() bool {
	return s == PaymentStatusScheduled || s == PaymentStatusPaid
}

// String returns the string representation
func (s PaymentStatus) String() string {
	return string(s)
}
