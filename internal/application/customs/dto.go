package customs

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/scm/backend/internal/domain/customs"
)

// RegisterCommercialInvoiceRequest is the payload for registering a CI
type RegisterCommercialInvoiceRequest struct {
	SellerName string          `json:"seller_name" binding:"required"`
	BuyerName  string          `json:"buyer_name" binding:"required"`
	ItemName   string          `json:"item_name"`
	HSCode     string          `json:"hs_code"`
	Quantity   decimal.Decimal `json:"quantity"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	Currency   string          `json:"currency" binding:"required"`
	Incoterms  string          `json:"incoterms"`
	IssueDate  time.Time       `json:"issue_date"`
}

// RegisterBillOfLadingRequest is the payload for registering a B/L
type RegisterBillOfLadingRequest struct {
	CommercialInvoiceID *uuid.UUID `json:"commercial_invoice_id"`
	Carrier             string     `json:"carrier" binding:"required"`
	VesselName          string     `json:"vessel_name"`
	PortOfLoading       string     `json:"port_of_loading"`
	PortOfDischarge     string     `json:"port_of_discharge"`
	OnBoardDate         *time.Time `json:"on_board_date"`
}

// QuoteLandedCostRequest asks for the tax breakdown of a prospective import
type QuoteLandedCostRequest struct {
	HSCode         string          `json:"hs_code" binding:"required"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	Currency       string          `json:"currency" binding:"required"`
	FTAAgreementID *uuid.UUID      `json:"fta_agreement_id"`
}

// LandedCostQuote is the computed breakdown, with the FTA comparison when an
// agreement was chosen
type LandedCostQuote struct {
	HSCode       string                  `json:"hs_code"`
	ExchangeRate decimal.Decimal         `json:"exchange_rate"`
	Cost         customs.LandedCost      `json:"cost"`
	FTA          *customs.FTAComparison  `json:"fta,omitempty"`
	FTAName      string                  `json:"fta_name,omitempty"`
}

// FileImportDeclarationRequest files an import declaration
type FileImportDeclarationRequest struct {
	CommercialInvoiceID *uuid.UUID      `json:"commercial_invoice_id"`
	BillOfLadingID      *uuid.UUID      `json:"bill_of_lading_id"`
	HSCode              string          `json:"hs_code" binding:"required"`
	OriginCountry       string          `json:"origin_country" binding:"required"`
	Amount              decimal.Decimal `json:"amount" binding:"required"`
	Currency            string          `json:"currency" binding:"required"`
	FTAAgreementID      *uuid.UUID      `json:"fta_agreement_id"`
}

// ScreenExportRequest checks a shipment against export controls
type ScreenExportRequest struct {
	HSCode  string `json:"hs_code" binding:"required"`
	Country string `json:"country" binding:"required"`
}

// FileExportDeclarationRequest files an export declaration
type FileExportDeclarationRequest struct {
	ItemName           string          `json:"item_name" binding:"required"`
	HSCode             string          `json:"hs_code" binding:"required"`
	DestinationCountry string          `json:"destination_country" binding:"required"`
	Amount             decimal.Decimal `json:"amount"`
	Currency           string          `json:"currency"`
}

// AppendRateRequest records a manual exchange rate quote
type AppendRateRequest struct {
	Currency  string          `json:"currency" binding:"required"`
	RateToKRW decimal.Decimal `json:"rate_to_krw" binding:"required"`
	RateDate  time.Time       `json:"rate_date"`
}

// RefreshRatesResult reports the outcome of a rate refresh
type RefreshRatesResult struct {
	Appended int    `json:"appended"`
	Source   string `json:"source"`
}
