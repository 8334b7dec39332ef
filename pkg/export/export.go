// Package export renders the asset register as an Excel workbook. Column
// order and headers come from a YAML mapping file so ops can reshape the
// report without a rebuild.
package export

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tealeg/xlsx/v3"
	"gopkg.in/yaml.v3"
)

// Column maps a query field to a spreadsheet header.
type Column struct {
	Field  string `yaml:"field"`
	Header string `yaml:"header"`
}

// MappingConfig is the YAML layout for the export mapping file.
type MappingConfig struct {
	Version int      `yaml:"version"`
	Sheet   string   `yaml:"sheet"`
	Columns []Column `yaml:"columns"`
}

// DefaultMapping is used when no mapping file is present.
var DefaultMapping = MappingConfig{
	Version: 1,
	Sheet:   "Assets",
	Columns: []Column{
		{Field: "serial_number", Header: "Serial Number"},
		{Field: "name", Header: "Asset Name"},
		{Field: "category", Header: "Category"},
		{Field: "brand", Header: "Brand"},
		{Field: "location", Header: "Location"},
		{Field: "status", Header: "Status"},
		{Field: "assigned_to", Header: "Assigned To"},
		{Field: "ram", Header: "RAM"},
		{Field: "storage", Header: "Storage"},
		{Field: "processor", Header: "Processor"},
		{Field: "created_at", Header: "Registered At"},
	},
}

// LoadMapping reads the mapping file; a missing file falls back to
// DefaultMapping.
func LoadMapping(path string) (MappingConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultMapping, nil
		}
		return MappingConfig{}, fmt.Errorf("failed to read mapping file: %w", err)
	}

	var cfg MappingConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return MappingConfig{}, fmt.Errorf("failed to parse mapping file: %w", err)
	}
	if cfg.Sheet == "" {
		cfg.Sheet = DefaultMapping.Sheet
	}
	if len(cfg.Columns) == 0 {
		cfg.Columns = DefaultMapping.Columns
	}
	return cfg, nil
}

// Exporter streams the active asset register as xlsx.
type Exporter struct {
	Pool    *pgxpool.Pool
	Mapping MappingConfig
}

func NewExporter(pool *pgxpool.Pool, mapping MappingConfig) *Exporter {
	return &Exporter{Pool: pool, Mapping: mapping}
}

const assetRegisterQuery = `
	SELECT a.serial_number,
	       a.name,
	       COALESCE(c.name, '') AS category,
	       COALESCE(b.name, '') AS brand,
	       COALESCE(l.name, '') AS location,
	       a.status,
	       COALESCE(u.full_name, '') AS assigned_to,
	       COALESCE(a.ram, '') AS ram,
	       COALESCE(a.storage, '') AS storage,
	       COALESCE(a.processor, '') AS processor,
	       a.created_at
	FROM assets a
	LEFT JOIN categories c ON c.id = a.category_id
	LEFT JOIN brands b ON b.id = a.brand_id
	LEFT JOIN locations l ON l.id = a.location_id
	LEFT JOIN users u ON u.id = a.assigned_to_user_id
	WHERE a.is_active = true
	ORDER BY a.id`

// WriteAssets queries the active assets and writes one workbook row each.
func (e *Exporter) WriteAssets(ctx context.Context, w io.Writer) error {
	rows, err := e.Pool.Query(ctx, assetRegisterQuery)
	if err != nil {
		return fmt.Errorf("failed to query assets: %w", err)
	}
	defer rows.Close()

	// Index the query's columns by name so the mapping picks what it needs.
	fields := rows.FieldDescriptions()
	index := make(map[string]int, len(fields))
	for i, fd := range fields {
		index[string(fd.Name)] = i
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet(e.Mapping.Sheet)
	if err != nil {
		return fmt.Errorf("failed to add sheet: %w", err)
	}

	header := sheet.AddRow()
	for _, col := range e.Mapping.Columns {
		header.AddCell().SetString(col.Header)
	}

	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return fmt.Errorf("failed to read asset row: %w", err)
		}

		row := sheet.AddRow()
		for _, col := range e.Mapping.Columns {
			cell := row.AddCell()
			i, ok := index[col.Field]
			if !ok {
				cell.SetString("")
				continue
			}
			switch v := values[i].(type) {
			case nil:
				cell.SetString("")
			case string:
				cell.SetString(v)
			case time.Time:
				cell.SetString(v.Format(time.RFC3339))
			default:
				cell.SetString(fmt.Sprintf("%v", v))
			}
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate assets: %w", err)
	}

	return file.Write(w)
}
