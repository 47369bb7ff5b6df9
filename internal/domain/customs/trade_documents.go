package customs

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/scm/backend/internal/domain/shared"
)

// CommercialInvoice is the seller's invoice opening the CI -> B/L ->
// import declaration link chain.
type CommercialInvoice struct {
	shared.BaseAggregateRoot
	InvoiceNumber string          `gorm:"uniqueIndex;size:40;not null"`
	SellerName    string          `gorm:"size:200;not null"`
	BuyerName     string          `gorm:"size:200;not null"`
	ItemName      string          `gorm:"size:200;not null"`
	HSCode        string          `gorm:"size:12;index"`
	Quantity      decimal.Decimal `gorm:"type:decimal(15,3);not null"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Currency      string          `gorm:"size:3;not null"`
	Incoterms     string          `gorm:"size:10"`
	IssueDate     time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (CommercialInvoice) TableName() string {
	return "commercial_invoices"
}

// NewCommercialInvoice registers a commercial invoice
func NewCommercialInvoice(sellerName, buyerName, itemName, hsCode string, quantity, amount decimal.Decimal, currency, incoterms string, issueDate time.Time) (*CommercialInvoice, error) {
	if sellerName == "" || buyerName == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "seller and buyer are required")
	}
	if amount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "amount cannot be negative")
	}
	if currency == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "currency is required")
	}

	return &CommercialInvoice{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		InvoiceNumber:     shared.NewDocumentNumber(shared.PrefixCommercialInvoice),
		SellerName:        sellerName,
		BuyerName:         buyerName,
		ItemName:          itemName,
		HSCode:            hsCode,
		Quantity:          quantity,
		Amount:            amount,
		Currency:          currency,
		Incoterms:         incoterms,
		IssueDate:         issueDate,
	}, nil
}

// BillOfLading is the carrier's transport document linked to a commercial
// invoice.
type BillOfLading struct {
	shared.BaseAggregateRoot
	BLNumber            string     `gorm:"uniqueIndex;size:40;not null"`
	CommercialInvoiceID *uuid.UUID `gorm:"type:uuid;index"`
	Carrier             string     `gorm:"size:200"`
	VesselName          string     `gorm:"size:200"`
	PortOfLoading       string     `gorm:"size:100"`
	PortOfDischarge     string     `gorm:"size:100"`
	OnBoardDate         *time.Time
}

// TableName returns the table name for GORM
func (BillOfLading) TableName() string {
	return "bills_of_lading"
}

// NewBillOfLading registers a transport document
func NewBillOfLading(ciID *uuid.UUID, carrier, vesselName, portOfLoading, portOfDischarge string, onBoardDate *time.Time) (*BillOfLading, error) {
	if carrier == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "carrier is required")
	}

	return &BillOfLading{
		BaseAggregateRoot:   shared.NewBaseAggregateRoot(),
		BLNumber:            shared.NewDocumentNumber(shared.PrefixBillOfLading),
		CommercialInvoiceID: ciID,
		Carrier:             carrier,
		VesselName:          vesselName,
		PortOfLoading:       portOfLoading,
		PortOfDischarge:     portOfDischarge,
		OnBoardDate:         onBoardDate,
	}, nil
}

// ExportDeclaration files an outbound shipment, carrying the strategic
// screening verdict for the destination.
type ExportDeclaration struct {
	shared.BaseAggregateRoot
	DeclarationNumber  string          `gorm:"uniqueIndex;size:40;not null"`
	ItemName           string          `gorm:"size:200;not null"`
	HSCode             string          `gorm:"size:12;not null;index"`
	DestinationCountry string          `gorm:"size:2;not null"`
	Amount             decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Currency           string          `gorm:"size:3;not null"`
	StrategicMatch     bool            `gorm:"not null;default:false"`
	SanctionLevel      SanctionLevel   `gorm:"size:20;not null"`
	Recommendation     Recommendation  `gorm:"size:30;not null"`
	ScreeningSource    string          `gorm:"size:30"`
	FiledAt            time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ExportDeclaration) TableName() string {
	return "export_declarations"
}

// NewExportDeclaration files an export with its screening result. A full
// embargo destination cannot be filed at all.
func NewExportDeclaration(itemName, hsCode, destinationCountry string, amount decimal.Decimal, currency string, screening ScreeningResult) (*ExportDeclaration, error) {
	if itemName == "" || hsCode == "" || destinationCountry == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "item, HS code and destination are required")
	}
	if screening.Recommendation == RecommendationProhibited {
		return nil, shared.NewDomainError("INVALID_STATE", "destination is under full embargo")
	}

	return &ExportDeclaration{
		BaseAggregateRoot:  shared.NewBaseAggregateRoot(),
		DeclarationNumber:  shared.NewDocumentNumber(shared.PrefixExportDeclaration),
		ItemName:           itemName,
		HSCode:             hsCode,
		DestinationCountry: destinationCountry,
		Amount:             amount,
		Currency:           currency,
		StrategicMatch:     screening.StrategicMatch,
		SanctionLevel:      screening.SanctionLevel,
		Recommendation:     screening.Recommendation,
		ScreeningSource:    screening.Provenance,
		FiledAt:            time.Now(),
	}, nil
}
