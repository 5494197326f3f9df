package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"jimpitan-be-svc/internal/models"
	"jimpitan-be-svc/internal/repository"
	"jimpitan-be-svc/pkg/logger"

	"github.com/xuri/excelize/v2"
)

// ReceiptService defines the interface for receipt operations
type ReceiptService interface {
	GetReceipt(ctx context.Context, id string) (*models.Receipt, error)
	ExportReceipts(ctx context.Context, filter repository.ReceiptFilter) ([]byte, string, error)
}

// receiptService implements ReceiptService
type receiptService struct {
	receiptRepo repository.ReceiptRepository
	logger      *logger.Logger
	now         func() time.Time
}

// NewReceiptService creates a new receipt service
func NewReceiptService(receiptRepo repository.ReceiptRepository, logger *logger.Logger) ReceiptService {
	return &receiptService{
		receiptRepo: receiptRepo,
		logger:      logger,
		now:         time.Now,
	}
}

// GetReceipt retrieves a receipt by id
func (s *receiptService) GetReceipt(ctx context.Context, id string) (*models.Receipt, error) {
	return s.receiptRepo.GetByID(ctx, id)
}

var receiptHeaders = []string{
	"No", "Receipt ID", "Resident", "Recorded At", "Source", "Channel",
	"Gross Amount", "Applied", "Credit Used", "Credit Added", "Credit Balance", "Periods",
}

var lineHeaders = []string{"Receipt ID", "Resident", "Period", "Label", "Amount Applied", "Status"}

// ExportReceipts renders the matching receipts as an xlsx workbook with a receipts sheet
// and a per-period lines sheet
func (s *receiptService) ExportReceipts(ctx context.Context, filter repository.ReceiptFilter) ([]byte, string, error) {
	receipts, err := s.receiptRepo.ListForExport(ctx, filter)
	if err != nil {
		s.logger.WithError(err).Error("Failed to load receipts for export")
		return nil, "", err
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.WithError(err).Warn("Failed to close Excel file")
		}
	}()

	const receiptSheet = "Receipts"
	const lineSheet = "Lines"

	index, err := f.NewSheet(receiptSheet)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if _, err := f.NewSheet(lineSheet); err != nil {
		return nil, "", fmt.Errorf("failed to create sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#D3D3D3"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to create header style: %w", err)
	}

	if err := writeHeader(f, receiptSheet, receiptHeaders, headerStyle); err != nil {
		return nil, "", err
	}
	if err := writeHeader(f, lineSheet, lineHeaders, headerStyle); err != nil {
		return nil, "", err
	}

	lineRow := 2
	for i, receipt := range receipts {
		keys := make([]string, 0, len(receipt.Lines))
		for _, line := range receipt.Lines {
			keys = append(keys, line.PeriodKey)

			values := []interface{}{receipt.ID, receipt.ResidentID, line.PeriodKey, line.Label, line.AmountApplied, string(line.ResultingStatus)}
			if err := writeRow(f, lineSheet, lineRow, values); err != nil {
				return nil, "", err
			}
			lineRow++
		}

		values := []interface{}{
			i + 1,
			receipt.ID,
			receipt.ResidentID,
			receipt.RecordedAt.Format("2006-01-02 15:04:05"),
			string(receipt.PaymentSource),
			receipt.Channel,
			receipt.GrossAmount,
			receipt.TotalApplied(),
			receipt.CreditConsumed,
			receipt.CreditAdded,
			receipt.NewCreditBalance,
			strings.Join(keys, ", "),
		}
		if err := writeRow(f, receiptSheet, i+2, values); err != nil {
			return nil, "", err
		}
	}

	for i := 1; i <= len(receiptHeaders); i++ {
		col, _ := excelize.ColumnNumberToName(i)
		_ = f.SetColWidth(receiptSheet, col, col, 16)
	}

	if f.GetSheetName(0) == "Sheet1" {
		_ = f.DeleteSheet("Sheet1")
	}

	filename := fmt.Sprintf("receipts_export_%s.xlsx", s.now().Format("20060102_150405"))

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to write Excel file: %w", err)
	}

	s.logger.WithField("receipts", len(receipts)).Info("Receipts exported")
	return buffer.Bytes(), filename, nil
}

func writeHeader(f *excelize.File, sheet string, headers []string, style int) error {
	if err := writeRow(f, sheet, 1, toInterfaces(headers)); err != nil {
		return err
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	return f.SetCellStyle(sheet, "A1", last, style)
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d of %s: %w", row, sheet, err)
	}
	return nil
}

func toInterfaces(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
