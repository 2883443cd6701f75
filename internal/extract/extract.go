package extract

import (
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/f3rmion/chartable/internal/chartable"
	"github.com/f3rmion/chartable/internal/docx"
	"github.com/f3rmion/chartable/internal/pinyin"
)

// Extractor runs the row heuristic over document tables.
type Extractor struct {
	logger *slog.Logger
}

// New creates an Extractor. A nil logger discards all records.
func New(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Extractor{logger: logger}
}

// Result is the outcome of extracting one document.
type Result struct {
	Items       []chartable.CharItem // Items of the selected table, deduplicated
	TableIndex  int                  // 0-based index of the selected table
	TableCounts []int                // Item count per table, in document order
}

// FromFile reads the .docx at path and extracts the items of its best table.
func (x *Extractor) FromFile(path string) (*Result, error) {
	tables, err := docx.ReadTables(path)
	if err != nil {
		return nil, err
	}

	x.logger.Debug("document parsed", slog.String("doc", path), slog.Int("tables", len(tables)))

	return x.SelectTable(tables)
}

// SelectTable extracts items from every table and keeps the table with the
// most items. Ties go to the earliest table.
func (x *Extractor) SelectTable(tables []chartable.Table) (*Result, error) {
	if len(tables) == 0 {
		return nil, &chartable.ExtractionError{Reason: "no tables found"}
	}

	result := &Result{TableIndex: -1, TableCounts: make([]int, len(tables))}

	for i, tbl := range tables {
		items := x.TableItems(tbl)
		result.TableCounts[i] = len(items)

		x.logger.Debug("table scanned",
			slog.Int("table", i),
			slog.Int("rows", len(tbl.Rows)),
			slog.Int("items", len(items)))

		if len(items) > len(result.Items) {
			result.Items = items
			result.TableIndex = i
		}
	}

	if len(result.Items) == 0 {
		return nil, &chartable.ExtractionError{Reason: "failed to extract any char items"}
	}

	x.logger.Debug("table selected",
		slog.Int("table", result.TableIndex),
		slog.Int("items", len(result.Items)))

	return result, nil
}

// TableItems returns the deduplicated items of every row of tbl.
func (x *Extractor) TableItems(tbl chartable.Table) []chartable.CharItem {
	var items []chartable.CharItem
	for r, row := range tbl.Rows {
		log := x.logger.With(slog.Int("table", tbl.Index), slog.Int("row", r))
		items = append(items, parseRow(row, log)...)
	}
	return Dedupe(items)
}

// ParseRow scans a row left to right for (hanzi, pinyin, words) triples.
func (x *Extractor) ParseRow(row chartable.Row) []chartable.CharItem {
	return parseRow(row, x.logger)
}

// parseRow tries a full triple at the cursor, then a pair without words,
// and otherwise skips one cell.
func parseRow(row chartable.Row, log *slog.Logger) []chartable.CharItem {
	var items []chartable.CharItem

	i := 0
	for i+1 < len(row) {
		words := ""
		if i+2 < len(row) {
			words = row[i+2]
		}

		if item, ok := ParseTriple(row[i], row[i+1], words); ok {
			items = append(items, item)
			i += 3
			continue
		}

		if item, ok := ParseTriple(row[i], row[i+1], ""); ok {
			items = append(items, item)
			i += 2
			continue
		}

		flagUnknownToneMarks(row[i], row[i+1], log)
		i++
	}

	return items
}

// flagUnknownToneMarks warns when a pair was rejected only because its
// pinyin uses tone marks outside the accepted set.
func flagUnknownToneMarks(hanzi, py string, log *slog.Logger) {
	h := strings.TrimSpace(hanzi)
	if utf8.RuneCountInString(h) != 1 {
		return
	}

	p := strings.TrimSpace(py)
	marks := pinyin.UnknownToneMarks(p)
	if len(marks) == 0 {
		return
	}

	log.Warn("unsupported tone mark in pinyin",
		slog.String("hanzi", h),
		slog.String("pinyin", p),
		slog.String("marks", string(marks)))
}

// Dedupe drops items whose (hanzi, pinyin) pair was already seen, keeping
// input order.
func Dedupe(items []chartable.CharItem) []chartable.CharItem {
	seen := make(map[chartable.Key]bool, len(items))
	uniq := make([]chartable.CharItem, 0, len(items))

	for _, it := range items {
		key := it.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		uniq = append(uniq, it)
	}

	return uniq
}
