package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/rmirandadev06/dashboard-braseiro/internal/core/domain"
	portssvc "github.com/rmirandadev06/dashboard-braseiro/internal/core/ports/services"
	"github.com/rmirandadev06/dashboard-braseiro/internal/core/services"
)

// --- Test Suite ---
type ExportServiceTestSuite struct {
	suite.Suite
	mockRepo *MockDashboardRepository
	service  portssvc.ExportSvcFacade
}

func (suite *ExportServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockDashboardRepository)
	suite.service = services.NewExportService(suite.mockRepo)
}

func exportRows() []domain.Transaction {
	return []domain.Transaction{
		{
			TransactionID: "txn-1",
			Type:          domain.Entrada,
			Date:          time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC),
			Amount:        decimal.RequireFromString("1500.50"),
			Description:   "Vendas do dia",
			Category:      domain.CategorySales,
			PaymentMethod: domain.MethodCash,
		},
		{
			TransactionID: "txn-2",
			Type:          domain.Saida,
			Date:          time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC),
			Amount:        decimal.NewFromInt(200),
			Description:   `Fornecedor; carne "premium"`,
			Category:      domain.CategoryButchery,
			PaymentMethod: domain.MethodPix,
		},
	}
}

func (suite *ExportServiceTestSuite) TestBuildCSV() {
	filter := testFilter()
	suite.mockRepo.On("FindTransactionsForExport", mock.Anything, filter).Return(exportRows(), nil).Once()

	payload, err := suite.service.BuildCSV(context.Background(), filter)

	suite.Require().NoError(err)
	text := string(payload)

	// UTF-8 byte-order marker so spreadsheet tools detect the encoding.
	suite.True(strings.HasPrefix(text, "\uFEFF"))

	lines := strings.Split(strings.TrimPrefix(text, "\uFEFF"), "\n")
	suite.Require().Len(lines, 3)
	suite.Equal("ID;Data;Tipo;Descricao;Categoria;Metodo;Valor", lines[0])

	// Dates DD/MM/YYYY, labels instead of codes, comma decimal separator.
	suite.Equal("txn-1;05/06/2025;Entrada;Vendas do dia;Vendas (Salão);Dinheiro;1500,50", lines[1])

	// Values containing the delimiter or quotes are wrapped and quotes doubled.
	suite.Contains(lines[2], `"Fornecedor; carne ""premium"""`)
	suite.Contains(lines[2], "Açougue")
	suite.True(strings.HasSuffix(lines[2], "200,00"))
}

func (suite *ExportServiceTestSuite) TestBuildCSV_NoRows() {
	filter := testFilter()
	suite.mockRepo.On("FindTransactionsForExport", mock.Anything, filter).Return([]domain.Transaction{}, nil).Once()

	payload, err := suite.service.BuildCSV(context.Background(), filter)

	suite.Require().NoError(err)
	suite.Equal("\uFEFFID;Data;Tipo;Descricao;Categoria;Metodo;Valor\n", string(payload))
}

func (suite *ExportServiceTestSuite) TestBuildCSV_RepoError() {
	filter := testFilter()
	expectedErr := assert.AnError
	suite.mockRepo.On("FindTransactionsForExport", mock.Anything, filter).Return(nil, expectedErr).Once()

	payload, err := suite.service.BuildCSV(context.Background(), filter)

	suite.Require().Error(err)
	suite.Nil(payload)
	suite.ErrorIs(err, expectedErr)
}

func (suite *ExportServiceTestSuite) TestBuildPDF() {
	filter := testFilter()
	suite.mockRepo.On("FindTransactionsForExport", mock.Anything, filter).Return(exportRows(), nil).Once()

	payload, err := suite.service.BuildPDF(context.Background(), filter)

	suite.Require().NoError(err)
	suite.NotEmpty(payload)
	suite.True(strings.HasPrefix(string(payload), "%PDF-"))
}

func (suite *ExportServiceTestSuite) TestBuildPDF_RepoError() {
	filter := testFilter()
	expectedErr := assert.AnError
	suite.mockRepo.On("FindTransactionsForExport", mock.Anything, filter).Return(nil, expectedErr).Once()

	payload, err := suite.service.BuildPDF(context.Background(), filter)

	suite.Require().Error(err)
	suite.Nil(payload)
	suite.ErrorIs(err, expectedErr)
}

// --- Run Suite ---
func TestExportService(t *testing.T) {
	suite.Run(t, new(ExportServiceTestSuite))
}
