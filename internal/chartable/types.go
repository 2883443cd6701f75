// Package chartable provides the core types shared by the extraction pipeline.
package chartable

// CharItem is one validated learning entry: a single hanzi, its pinyin
// reading and example words.
type CharItem struct {
	Hanzi  string   `json:"hanzi"`  // Exactly one character
	Pinyin string   `json:"pinyin"` // Tone-marked pinyin (e.g., "hǎo")
	Words  []string `json:"words"`  // Example words, never nil
}

// Key identifies an item for deduplication.
type Key struct {
	Hanzi  string
	Pinyin string
}

// Key returns the (hanzi, pinyin) pair of the item.
func (c CharItem) Key() Key {
	return Key{Hanzi: c.Hanzi, Pinyin: c.Pinyin}
}

// Row is the ordered, non-empty cell texts of one table row.
type Row []string

// Table is one candidate table from the source document.
type Table struct {
	Index int   // 0-based position in document order
	Rows  []Row // Rows with empty cells already dropped
}
