package customs

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/scm/backend/internal/domain/customs"
	"github.com/scm/backend/internal/domain/shared"
)

// TariffClient looks a tariff line up at the customs service when it is not
// cached locally
type TariffClient interface {
	// FetchTariff returns the tariff parameters of an HS code
	FetchTariff(ctx context.Context, hsCode string) (*customs.HSCode, error)
}

// ScreeningClient checks export controls at the remote screening service
type ScreeningClient interface {
	// Screen classifies an HS code / destination pair
	Screen(ctx context.Context, hsCode, country string) (customs.ScreeningResult, error)
}

// DeclarationService covers the trade compliance chain: trade documents,
// landed cost quoting, FTA comparison, export screening and the import and
// export declarations themselves.
type DeclarationService struct {
	rateRepo        customs.ExchangeRateRepository
	hsRepo          customs.HSCodeRepository
	ftaRepo         customs.FTAAgreementRepository
	ciRepo          customs.CommercialInvoiceRepository
	blRepo          customs.BillOfLadingRepository
	importRepo      customs.ImportDeclarationRepository
	exportRepo      customs.ExportDeclarationRepository
	tariffClient    TariffClient
	screeningClient ScreeningClient
	logger          *zap.Logger
}

// NewDeclarationService creates a new DeclarationService
func NewDeclarationService(
	rateRepo customs.ExchangeRateRepository,
	hsRepo customs.HSCodeRepository,
	ftaRepo customs.FTAAgreementRepository,
	ciRepo customs.CommercialInvoiceRepository,
	blRepo customs.BillOfLadingRepository,
	importRepo customs.ImportDeclarationRepository,
	exportRepo customs.ExportDeclarationRepository,
	logger *zap.Logger,
) *DeclarationService {
	return &DeclarationService{
		rateRepo:   rateRepo,
		hsRepo:     hsRepo,
		ftaRepo:    ftaRepo,
		ciRepo:     ciRepo,
		blRepo:     blRepo,
		importRepo: importRepo,
		exportRepo: exportRepo,
		logger:     logger,
	}
}

// SetTariffClient wires the remote tariff lookup. Without one, only locally
// registered HS codes resolve.
func (s *DeclarationService) SetTariffClient(client TariffClient) {
	s.tariffClient = client
}

// SetScreeningClient wires the remote screening service. Without one, or when
// it fails, the local control tables answer instead.
func (s *DeclarationService) SetScreeningClient(client ScreeningClient) {
	s.screeningClient = client
}

// RegisterCommercialInvoice registers a seller's invoice
func (s *DeclarationService) RegisterCommercialInvoice(ctx context.Context, req RegisterCommercialInvoiceRequest) (*customs.CommercialInvoice, error) {
	issueDate := req.IssueDate
	if issueDate.IsZero() {
		issueDate = time.Now()
	}

	ci, err := customs.NewCommercialInvoice(req.SellerName, req.BuyerName, req.ItemName, req.HSCode,
		req.Quantity, req.Amount, req.Currency, req.Incoterms, issueDate)
	if err != nil {
		return nil, err
	}
	if err := s.ciRepo.Save(ctx, ci); err != nil {
		return nil, err
	}
	return ci, nil
}

// RegisterBillOfLading registers a transport document, linked to its CI when
// one is given
func (s *DeclarationService) RegisterBillOfLading(ctx context.Context, req RegisterBillOfLadingRequest) (*customs.BillOfLading, error) {
	if req.CommercialInvoiceID != nil {
		if _, err := s.ciRepo.FindByID(ctx, *req.CommercialInvoiceID); err != nil {
			return nil, err
		}
	}

	bl, err := customs.NewBillOfLading(req.CommercialInvoiceID, req.Carrier, req.VesselName,
		req.PortOfLoading, req.PortOfDischarge, req.OnBoardDate)
	if err != nil {
		return nil, err
	}
	if err := s.blRepo.Save(ctx, bl); err != nil {
		return nil, err
	}
	return bl, nil
}

// QuoteLandedCost computes the tax breakdown of a prospective import. When an
// FTA agreement is chosen the quote carries the normal/preferential
// comparison; the agreement is never auto-selected.
func (s *DeclarationService) QuoteLandedCost(ctx context.Context, req QuoteLandedCostRequest) (*LandedCostQuote, error) {
	hs, err := s.resolveHSCode(ctx, req.HSCode)
	if err != nil {
		return nil, err
	}

	rates, err := s.loadRateTable(ctx)
	if err != nil {
		return nil, err
	}
	rate, err := rates.LatestRate(req.Currency)
	if err != nil {
		return nil, err
	}

	cost, err := customs.ComputeLandedCost(req.Amount, req.Currency, rates, hs.DutyRate, hs.VATRate)
	if err != nil {
		return nil, err
	}

	quote := &LandedCostQuote{
		HSCode:       hs.Code,
		ExchangeRate: rate,
		Cost:         cost,
	}

	if req.FTAAgreementID != nil {
		agreement, err := s.ftaRepo.FindByID(ctx, *req.FTAAgreementID)
		if err != nil {
			return nil, err
		}
		comparison, err := customs.ApplyFTA(cost, agreement)
		if err != nil {
			return nil, err
		}
		quote.FTA = &comparison
		quote.FTAName = agreement.Name
	}
	return quote, nil
}

// FileImportDeclaration computes the landed cost and files the declaration.
// With an FTA agreement chosen, the preferential cost is declared and the
// agreement recorded on the document.
func (s *DeclarationService) FileImportDeclaration(ctx context.Context, req FileImportDeclarationRequest) (*customs.ImportDeclaration, error) {
	quote, err := s.QuoteLandedCost(ctx, QuoteLandedCostRequest{
		HSCode:         req.HSCode,
		Amount:         req.Amount,
		Currency:       req.Currency,
		FTAAgreementID: req.FTAAgreementID,
	})
	if err != nil {
		return nil, err
	}

	cost := quote.Cost
	ftaName := ""
	if quote.FTA != nil {
		cost = quote.FTA.Preferential
		ftaName = quote.FTAName
	}

	d, err := customs.NewImportDeclaration(req.CommercialInvoiceID, req.BillOfLadingID,
		req.HSCode, req.OriginCountry, req.Amount, req.Currency, quote.ExchangeRate, cost, ftaName)
	if err != nil {
		return nil, err
	}
	if err := s.importRepo.Save(ctx, d); err != nil {
		return nil, err
	}

	s.logger.Info("import declaration filed",
		zap.String("declaration_number", d.DeclarationNumber),
		zap.String("hs_code", d.HSCode),
		zap.Bool("fta_applied", d.FTAApplied))
	return d, nil
}

// StartImportScreening moves a filed declaration into screening
func (s *DeclarationService) StartImportScreening(ctx context.Context, id uuid.UUID) (*customs.ImportDeclaration, error) {
	return s.transitionImport(ctx, id, (*customs.ImportDeclaration).StartScreening)
}

// ClearImport releases a declaration through customs
func (s *DeclarationService) ClearImport(ctx context.Context, id uuid.UUID) (*customs.ImportDeclaration, error) {
	return s.transitionImport(ctx, id, (*customs.ImportDeclaration).Clear)
}

// HoldImport puts a screening declaration on hold
func (s *DeclarationService) HoldImport(ctx context.Context, id uuid.UUID) (*customs.ImportDeclaration, error) {
	return s.transitionImport(ctx, id, (*customs.ImportDeclaration).Hold)
}

// RejectImport rejects a held or screening declaration
func (s *DeclarationService) RejectImport(ctx context.Context, id uuid.UUID) (*customs.ImportDeclaration, error) {
	return s.transitionImport(ctx, id, (*customs.ImportDeclaration).Reject)
}

func (s *DeclarationService) transitionImport(ctx context.Context, id uuid.UUID, fn func(*customs.ImportDeclaration) error) (*customs.ImportDeclaration, error) {
	d, err := s.importRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(d); err != nil {
		return nil, err
	}
	if err := s.importRepo.Save(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// ScreenExport classifies a shipment against export controls. The remote
// service answers when wired and reachable; otherwise the local control
// tables do, and the result says which one produced it.
func (s *DeclarationService) ScreenExport(ctx context.Context, req ScreenExportRequest) (customs.ScreeningResult, error) {
	if s.screeningClient != nil {
		result, err := s.screeningClient.Screen(ctx, req.HSCode, req.Country)
		if err == nil {
			return result, nil
		}
		s.logger.Warn("remote screening unavailable, using local tables",
			zap.String("hs_code", req.HSCode),
			zap.String("country", req.Country),
			zap.Error(err))
	}
	return customs.ScreenStrategicGoods(req.HSCode, req.Country), nil
}

// FileExportDeclaration screens the shipment and files the declaration.
// A full-embargo destination refuses to file.
func (s *DeclarationService) FileExportDeclaration(ctx context.Context, req FileExportDeclarationRequest) (*customs.ExportDeclaration, error) {
	screening, err := s.ScreenExport(ctx, ScreenExportRequest{HSCode: req.HSCode, Country: req.DestinationCountry})
	if err != nil {
		return nil, err
	}

	d, err := customs.NewExportDeclaration(req.ItemName, req.HSCode, req.DestinationCountry,
		req.Amount, req.Currency, screening)
	if err != nil {
		return nil, err
	}
	if err := s.exportRepo.Save(ctx, d); err != nil {
		return nil, err
	}

	s.logger.Info("export declaration filed",
		zap.String("declaration_number", d.DeclarationNumber),
		zap.String("destination", d.DestinationCountry),
		zap.String("recommendation", string(d.Recommendation)))
	return d, nil
}

// RegisterHSCode stores a tariff line locally
func (s *DeclarationService) RegisterHSCode(ctx context.Context, code, description string, dutyRate, vatRate decimal.Decimal, unit string) (*customs.HSCode, error) {
	hs, err := customs.NewHSCode(code, description, dutyRate, vatRate, unit)
	if err != nil {
		return nil, err
	}
	if err := s.hsRepo.Save(ctx, hs); err != nil {
		return nil, err
	}
	return hs, nil
}

// RegisterFTAAgreement stores a preferential rate
func (s *DeclarationService) RegisterFTAAgreement(ctx context.Context, name, partnerCountry, hsCode string, preferentialRate decimal.Decimal, originCriteria string) (*customs.FTAAgreement, error) {
	f, err := customs.NewFTAAgreement(name, partnerCountry, hsCode, preferentialRate, originCriteria)
	if err != nil {
		return nil, err
	}
	if err := s.ftaRepo.Save(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

// resolveHSCode loads a tariff line, fetching and caching it from the remote
// tariff service on a local miss
func (s *DeclarationService) resolveHSCode(ctx context.Context, code string) (*customs.HSCode, error) {
	hs, err := s.hsRepo.FindByCode(ctx, code)
	if err == nil {
		return hs, nil
	}
	if !errors.Is(err, shared.ErrNotFound) || s.tariffClient == nil {
		return nil, err
	}

	hs, err = s.tariffClient.FetchTariff(ctx, code)
	if err != nil {
		return nil, err
	}
	if err := s.hsRepo.Save(ctx, hs); err != nil {
		return nil, err
	}
	return hs, nil
}

// loadRateTable snapshots the latest stored rate per currency
func (s *DeclarationService) loadRateTable(ctx context.Context) (customs.RateTable, error) {
	records, err := s.rateRepo.FindLatest(ctx)
	if err != nil {
		return nil, err
	}

	table := make(customs.RateTable, len(records))
	for _, r := range records {
		table[r.Currency] = r.RateToKRW
	}
	return table, nil
}
