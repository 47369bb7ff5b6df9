package shared

import (
	"fmt"
	"math/rand"
	"time"
)

// Document number prefixes used across the document flow. The readable
// number is a display key only; the UUID on BaseEntity stays the primary key.
const (
	PrefixPurchaseRequest   = "PR"
	PrefixQuotation         = "QT"
	PrefixPurchaseOrder     = "PO"
	PrefixGoodsReceipt      = "GR"
	PrefixInvoiceVerify     = "IV"
	PrefixTaxInvoice        = "TI"
	PrefixPaymentSchedule   = "PAY"
	PrefixSupplierEval      = "SE"
	PrefixSalesOrder        = "SO"
	PrefixDelivery          = "DL"
	PrefixSalesReturn       = "RT"
	PrefixSalesInvoice      = "SI"
	PrefixStockMovement     = "MV"
	PrefixQualityInspection = "QI"
	PrefixNonconformance    = "NC"
	PrefixDisposal          = "DSP"
	PrefixProductionPlan    = "PP"
	PrefixMRPRequest        = "MRP"
	PrefixImportDeclaration = "ID"
	PrefixExportDeclaration = "ED"
	PrefixCommercialInvoice = "CI"
	PrefixBillOfLading      = "BL"
)

// NewDocumentNumber builds a readable document number of the form
// PREFIX-YYYYMMDDHHMMSS-NNNN. The random suffix keeps two documents
// generated within the same second from colliding.
func NewDocumentNumber(prefix string) string {
	return fmt.Sprintf("%s-%s-%04d", prefix, time.Now().Format("20060102150405"), rand.Intn(10000))
}
