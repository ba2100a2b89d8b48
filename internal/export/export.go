package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/writer"

	"github.com/bhukkad-app/bhukkad/internal/cloudwriter"
	"github.com/bhukkad-app/bhukkad/internal/models"
)

const (
	FormatCSV     = "csv"
	FormatJSON    = "json"
	FormatParquet = "parquet"
)

var csvHeader = []string{
	"id", "amount", "category", "meal_type", "cuisine", "vendor",
	"note", "spent_at", "split_total", "split_party_size", "split_share",
}

// WriteCSV renders the expense list as delimited rows, one per expense.
func WriteCSV(w io.Writer, expenses []models.Expense) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, e := range expenses {
		row := []string{
			e.ID,
			strconv.FormatFloat(e.Amount, 'f', 2, 64),
			e.Category,
			e.MealType,
			e.Cuisine,
			e.Vendor,
			e.Note,
			e.SpentAt.Format(time.RFC3339),
			"", "", "",
		}
		if e.Split != nil {
			row[8] = strconv.FormatFloat(e.Split.Total, 'f', 2, 64)
			row[9] = strconv.Itoa(e.Split.PartySize)
			row[10] = strconv.FormatFloat(e.Split.Share, 'f', 2, 64)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON renders the expense list as one JSON document.
func WriteJSON(w io.Writer, expenses []models.Expense) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(expenses)
}

// ExpenseRow is the flat parquet schema for one expense.
type ExpenseRow struct {
	ID             string  `parquet:"name=id, type=BYTE_ARRAY, convertedtype=UTF8"`
	Amount         float64 `parquet:"name=amount, type=DOUBLE"`
	Category       string  `parquet:"name=category, type=BYTE_ARRAY, convertedtype=UTF8"`
	MealType       string  `parquet:"name=meal_type, type=BYTE_ARRAY, convertedtype=UTF8"`
	Cuisine        string  `parquet:"name=cuisine, type=BYTE_ARRAY, convertedtype=UTF8"`
	Vendor         string  `parquet:"name=vendor, type=BYTE_ARRAY, convertedtype=UTF8"`
	Note           string  `parquet:"name=note, type=BYTE_ARRAY, convertedtype=UTF8"`
	SpentAt        int64   `parquet:"name=spent_at, type=INT64, convertedtype=TIMESTAMP_MILLIS"`
	SplitTotal     float64 `parquet:"name=split_total, type=DOUBLE"`
	SplitPartySize int32   `parquet:"name=split_party_size, type=INT32"`
	SplitShare     float64 `parquet:"name=split_share, type=DOUBLE"`
}

func toRow(e models.Expense) ExpenseRow {
	row := ExpenseRow{
		ID:       e.ID,
		Amount:   e.Amount,
		Category: e.Category,
		MealType: e.MealType,
		Cuisine:  e.Cuisine,
		Vendor:   e.Vendor,
		Note:     e.Note,
		SpentAt:  e.SpentAt.UnixMilli(),
	}
	if e.Split != nil {
		row.SplitTotal = e.Split.Total
		row.SplitPartySize = int32(e.Split.PartySize)
		row.SplitShare = e.Split.Share
	}
	return row
}

func writeParquet(fw source.ParquetFile, expenses []models.Expense) error {
	pw, err := writer.NewParquetWriter(fw, new(ExpenseRow), 4)
	if err != nil {
		return fmt.Errorf("failed to create ParquetWriter: %w", err)
	}
	for _, e := range expenses {
		if err := pw.Write(toRow(e)); err != nil {
			return fmt.Errorf("failed to write expense row: %w", err)
		}
	}
	if err := pw.WriteStop(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return fw.Close()
}

// Exporter writes expense exports under Folder, and uploads them to cloud
// storage when a factory is configured.
type Exporter struct {
	Folder  string
	Factory cloudwriter.CloudWriterFactory
	Bucket  string
}

// NewExporter builds an exporter from config; S3 upload is wired only when
// enabled and reachable.
func NewExporter(cfg *models.Config) *Exporter {
	x := &Exporter{Folder: cfg.ExportFolder}
	if x.Folder == "" {
		x.Folder = "exports"
	}
	if cfg.S3.Enabled {
		factory, err := cloudwriter.NewS3WriterFactory(cfg.S3.Region)
		if err != nil {
			log.Printf("s3 disabled, could not build client: %v", err)
		} else {
			x.Factory = factory
			x.Bucket = cfg.S3.Bucket
		}
	}
	return x
}

func contentTypeFor(format string) string {
	switch format {
	case FormatCSV:
		return "text/csv"
	case FormatJSON:
		return "application/json"
	default:
		return "application/octet-stream"
	}
}

// Export writes the expenses in the given format and returns the local path.
func (x *Exporter) Export(format string, expenses []models.Expense, now time.Time) (string, error) {
	if err := os.MkdirAll(x.Folder, 0o755); err != nil {
		return "", err
	}
	name := fmt.Sprintf("expenses_%s.%s", now.Format("20060102_150405"), format)
	path := filepath.Join(x.Folder, name)

	switch format {
	case FormatCSV, FormatJSON:
		file, err := os.Create(path)
		if err != nil {
			return "", err
		}
		if format == FormatCSV {
			err = WriteCSV(file, expenses)
		} else {
			err = WriteJSON(file, expenses)
		}
		if cerr := file.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return "", err
		}

	case FormatParquet:
		fw, err := local.NewLocalFileWriter(path)
		if err != nil {
			return "", fmt.Errorf("failed to create local file writer: %w", err)
		}
		if err := writeParquet(fw, expenses); err != nil {
			return "", err
		}

	default:
		return "", fmt.Errorf("unsupported export format: %s", format)
	}

	if x.Factory != nil {
		if err := x.upload(path, name, format); err != nil {
			return path, fmt.Errorf("export written to %s but upload failed: %w", path, err)
		}
	}
	return path, nil
}

func (x *Exporter) upload(path, name, format string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	w, err := x.Factory.NewWriter(x.Bucket, filepath.Join("exports", name), contentTypeFor(format))
	if err != nil {
		return fmt.Errorf("failed to create cloud writer: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	return w.Close()
}
