package customs

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/scm/backend/internal/domain/customs"
	"github.com/scm/backend/internal/domain/shared"
)

// MockExchangeRateRepository is a mock implementation of ExchangeRateRepository
type MockExchangeRateRepository struct {
	mock.Mock
}

func (m *MockExchangeRateRepository) Append(ctx context.Context, record *customs.ExchangeRateRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockExchangeRateRepository) FindLatest(ctx context.Context) ([]customs.ExchangeRateRecord, error) {
	args := m.Called(ctx)
	return args.Get(0).([]customs.ExchangeRateRecord), args.Error(1)
}

func (m *MockExchangeRateRepository) FindLatestByCurrency(ctx context.Context, currency string) (*customs.ExchangeRateRecord, error) {
	args := m.Called(ctx, currency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customs.ExchangeRateRecord), args.Error(1)
}

func (m *MockExchangeRateRepository) FindHistory(ctx context.Context, currency string, filter shared.Filter) ([]customs.ExchangeRateRecord, error) {
	args := m.Called(ctx, currency, filter)
	return args.Get(0).([]customs.ExchangeRateRecord), args.Error(1)
}

// MockHSCodeRepository is a mock implementation of HSCodeRepository
type MockHSCodeRepository struct {
	mock.Mock
}

func (m *MockHSCodeRepository) FindByCode(ctx context.Context, code string) (*customs.HSCode, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customs.HSCode), args.Error(1)
}

func (m *MockHSCodeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]customs.HSCode, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]customs.HSCode), args.Error(1)
}

func (m *MockHSCodeRepository) Save(ctx context.Context, hs *customs.HSCode) error {
	args := m.Called(ctx, hs)
	return args.Error(0)
}

// MockFTAAgreementRepository is a mock implementation of FTAAgreementRepository
type MockFTAAgreementRepository struct {
	mock.Mock
}

func (m *MockFTAAgreementRepository) FindByID(ctx context.Context, id uuid.UUID) (*customs.FTAAgreement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customs.FTAAgreement), args.Error(1)
}

func (m *MockFTAAgreementRepository) FindActiveByHSCode(ctx context.Context, hsCode string) ([]customs.FTAAgreement, error) {
	args := m.Called(ctx, hsCode)
	return args.Get(0).([]customs.FTAAgreement), args.Error(1)
}

func (m *MockFTAAgreementRepository) FindAll(ctx context.Context, filter shared.Filter) ([]customs.FTAAgreement, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]customs.FTAAgreement), args.Error(1)
}

func (m *MockFTAAgreementRepository) Save(ctx context.Context, f *customs.FTAAgreement) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

// MockCommercialInvoiceRepository is a mock implementation of CommercialInvoiceRepository
type MockCommercialInvoiceRepository struct {
	mock.Mock
}

func (m *MockCommercialInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*customs.CommercialInvoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customs.CommercialInvoice), args.Error(1)
}

func (m *MockCommercialInvoiceRepository) FindAll(ctx context.Context, filter shared.Filter) ([]customs.CommercialInvoice, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]customs.CommercialInvoice), args.Error(1)
}

func (m *MockCommercialInvoiceRepository) Save(ctx context.Context, ci *customs.CommercialInvoice) error {
	args := m.Called(ctx, ci)
	return args.Error(0)
}

// MockBillOfLadingRepository is a mock implementation of BillOfLadingRepository
type MockBillOfLadingRepository struct {
	mock.Mock
}

func (m *MockBillOfLadingRepository) FindByID(ctx context.Context, id uuid.UUID) (*customs.BillOfLading, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customs.BillOfLading), args.Error(1)
}

func (m *MockBillOfLadingRepository) FindByCommercialInvoice(ctx context.Context, ciID uuid.UUID) ([]customs.BillOfLading, error) {
	args := m.Called(ctx, ciID)
	return args.Get(0).([]customs.BillOfLading), args.Error(1)
}

func (m *MockBillOfLadingRepository) FindAll(ctx context.Context, filter shared.Filter) ([]customs.BillOfLading, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]customs.BillOfLading), args.Error(1)
}

func (m *MockBillOfLadingRepository) Save(ctx context.Context, bl *customs.BillOfLading) error {
	args := m.Called(ctx, bl)
	return args.Error(0)
}

// MockImportDeclarationRepository is a mock implementation of ImportDeclarationRepository
type MockImportDeclarationRepository struct {
	mock.Mock
}

func (m *MockImportDeclarationRepository) FindByID(ctx context.Context, id uuid.UUID) (*customs.ImportDeclaration, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customs.ImportDeclaration), args.Error(1)
}

func (m *MockImportDeclarationRepository) FindByStatus(ctx context.Context, status customs.ImportDeclarationStatus, filter shared.Filter) ([]customs.ImportDeclaration, error) {
	args := m.Called(ctx, status, filter)
	return args.Get(0).([]customs.ImportDeclaration), args.Error(1)
}

func (m *MockImportDeclarationRepository) FindAll(ctx context.Context, filter shared.Filter) ([]customs.ImportDeclaration, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]customs.ImportDeclaration), args.Error(1)
}

func (m *MockImportDeclarationRepository) Save(ctx context.Context, d *customs.ImportDeclaration) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

// MockExportDeclarationRepository is a mock implementation of ExportDeclarationRepository
type MockExportDeclarationRepository struct {
	mock.Mock
}

func (m *MockExportDeclarationRepository) FindByID(ctx context.Context, id uuid.UUID) (*customs.ExportDeclaration, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customs.ExportDeclaration), args.Error(1)
}

func (m *MockExportDeclarationRepository) FindAll(ctx context.Context, filter shared.Filter) ([]customs.ExportDeclaration, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]customs.ExportDeclaration), args.Error(1)
}

func (m *MockExportDeclarationRepository) Save(ctx context.Context, d *customs.ExportDeclaration) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

// MockExchangeRateClient is a mock implementation of ExchangeRateClient
type MockExchangeRateClient struct {
	mock.Mock
}

func (m *MockExchangeRateClient) FetchRates(ctx context.Context) ([]RateQuote, string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]RateQuote), args.String(1), args.Error(2)
}

// MockTariffClient is a mock implementation of TariffClient
type MockTariffClient struct {
	mock.Mock
}

func (m *MockTariffClient) FetchTariff(ctx context.Context, hsCode string) (*customs.HSCode, error) {
	args := m.Called(ctx, hsCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customs.HSCode), args.Error(1)
}

// MockScreeningClient is a mock implementation of ScreeningClient
type MockScreeningClient struct {
	mock.Mock
}

func (m *MockScreeningClient) Screen(ctx context.Context, hsCode, country string) (customs.ScreeningResult, error) {
	args := m.Called(ctx, hsCode, country)
	return args.Get(0).(customs.ScreeningResult), args.Error(1)
}
