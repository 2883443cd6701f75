package extract

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/chartable/internal/chartable"
	"github.com/f3rmion/chartable/internal/docx/docxtest"
	"github.com/f3rmion/chartable/internal/pinyin"
)

func item(hanzi, py string, words ...string) chartable.CharItem {
	if words == nil {
		words = []string{}
	}
	return chartable.CharItem{Hanzi: hanzi, Pinyin: py, Words: words}
}

func TestParseTriple(t *testing.T) {
	tests := []struct {
		name   string
		hanzi  string
		pinyin string
		words  string
		want   chartable.CharItem
		ok     bool
	}{
		{"full triple", "好", "hǎo", "好人", item("好", "hǎo", "好人"), true},
		{"trimmed fields", " 好 ", "\thǎo\n", " 好人 ", item("好", "hǎo", "好人"), true},
		{"no words", "二", "èr", "", item("二", "èr"), true},
		{"blank words", "二", "èr", "   ", item("二", "èr"), true},
		{"two hanzi", "你好", "nǐhǎo", "", chartable.CharItem{}, false},
		{"empty hanzi", "", "hǎo", "", chartable.CharItem{}, false},
		{"empty pinyin", "好", "", "好人", chartable.CharItem{}, false},
		{"digits in pinyin", "好", "123", "xyz", chartable.CharItem{}, false},
		{"tone number", "好", "hao3", "", chartable.CharItem{}, false},
		{"pinyin with space", "好", "hǎo rén", "", chartable.CharItem{}, false},
		{"hanzi in pinyin cell", "好", "好人", "", chartable.CharItem{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseTriple(tt.hanzi, tt.pinyin, tt.words)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTripleInvariant(t *testing.T) {
	cells := []string{"好", "hǎo", "你好", "123", "", " 一 ", "yī", "lǜ", "x", "hao3", "（高兴）", "ê"}

	for _, h := range cells {
		for _, p := range cells {
			got, ok := ParseTriple(h, p, "")
			if !ok {
				continue
			}
			assert.Equal(t, 1, utf8.RuneCountInString(got.Hanzi), "hanzi %q", got.Hanzi)
			assert.True(t, pinyin.Valid(got.Pinyin), "pinyin %q", got.Pinyin)
			assert.NotNil(t, got.Words)
		}
	}
}

func TestNormalizeWords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", []string{}},
		{"single", "好人", []string{"好人"}},
		{"ascii comma", "一个, 一些", []string{"一个", "一些"}},
		{"full-width parens and semicolon", "（高兴；快乐）", []string{"高兴", "快乐"}},
		{"ascii parens", "(大人,大小)", []string{"大人", "大小"}},
		{"ideographic comma", "红花、红色", []string{"红花", "红色"}},
		{"full-width comma", "白天，白云", []string{"白天", "白云"}},
		{"semicolon", "上下;上学", []string{"上下", "上学"}},
		{"whitespace runs", "  山水 \t 山口  ", []string{"山水", "山口"}},
		{"ideographic space", "山水　山口", []string{"山水", "山口"}},
		{"empty fragments dropped", "，，好人；；、好事，", []string{"好人", "好事"}},
		{"duplicates kept", "好人 好人", []string{"好人", "好人"}},
		{"inner parens kept", "好人(好事)", []string{"好人(好事)"}},
		{"only outer pair stripped", "(好人)(好事)", []string{"好人)(好事"}},
		{"separators only", "、，;", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeWords(tt.input))
		})
	}
}

func TestParseRow(t *testing.T) {
	x := New(nil)

	tests := []struct {
		name string
		row  chartable.Row
		want []chartable.CharItem
	}{
		{
			name: "fallback to pair at row end",
			row:  chartable.Row{"一", "yī", "一个, 一些", "二", "èr"},
			want: []chartable.CharItem{
				item("一", "yī", "一个", "一些"),
				item("二", "èr"),
			},
		},
		{
			name: "back to back triples",
			row:  chartable.Row{"上", "shàng", "上下", "下", "xià", "下雨"},
			want: []chartable.CharItem{
				item("上", "shàng", "上下"),
				item("下", "xià", "下雨"),
			},
		},
		{
			name: "header cells skipped",
			row:  chartable.Row{"序号", "1", "好", "hǎo", "好人"},
			want: []chartable.CharItem{item("好", "hǎo", "好人")},
		},
		{
			name: "words cell holding next hanzi",
			row:  chartable.Row{"一", "yī", "二", "èr"},
			want: []chartable.CharItem{
				item("一", "yī", "二"),
			},
		},
		{
			name: "rejected pinyin",
			row:  chartable.Row{"好", "123", "xyz"},
			want: nil,
		},
		{
			name: "single cell",
			row:  chartable.Row{"好"},
			want: nil,
		},
		{
			name: "empty row",
			row:  nil,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, x.ParseRow(tt.row))
		})
	}
}

func TestParseRowFlagsUnknownToneMarks(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	x := New(logger)

	items := x.ParseRow(chartable.Row{"呣", "\u1e3f", "", "好", "hǎo"})

	assert.Equal(t, []chartable.CharItem{item("好", "hǎo")}, items)
	assert.Contains(t, buf.String(), "unsupported tone mark")
	assert.Contains(t, buf.String(), "hanzi=呣")
}

func TestParseRowNoFlagForOrdinaryRejects(t *testing.T) {
	var buf bytes.Buffer
	x := New(slog.New(slog.NewTextHandler(&buf, nil)))

	assert.Empty(t, x.ParseRow(chartable.Row{"好", "123", "xyz"}))
	assert.Empty(t, buf.String())
}

func TestDedupe(t *testing.T) {
	items := []chartable.CharItem{
		item("好", "hǎo", "好人"),
		item("好", "hào", "爱好"),
		item("一", "yī"),
		item("好", "hǎo", "好事"),
		item("一", "yī", "一个"),
	}

	got := Dedupe(items)

	assert.Equal(t, []chartable.CharItem{
		item("好", "hǎo", "好人"),
		item("好", "hào", "爱好"),
		item("一", "yī"),
	}, got)

	seen := make(map[chartable.Key]bool)
	for _, it := range got {
		assert.False(t, seen[it.Key()], "duplicate %v", it.Key())
		seen[it.Key()] = true
	}
}

func TestDedupeEmpty(t *testing.T) {
	assert.Empty(t, Dedupe(nil))
}

func tableOf(index, n int) chartable.Table {
	chars := []string{"一", "二", "三", "四", "五", "六"}
	pys := []string{"yī", "èr", "sān", "sì", "wǔ", "liù"}

	tbl := chartable.Table{Index: index}
	for i := 0; i < n; i++ {
		tbl.Rows = append(tbl.Rows, chartable.Row{chars[i], pys[i]})
	}
	return tbl
}

func TestSelectTable(t *testing.T) {
	x := New(nil)

	t.Run("larger table wins after smaller", func(t *testing.T) {
		res, err := x.SelectTable([]chartable.Table{tableOf(0, 3), tableOf(1, 5)})
		require.NoError(t, err)
		assert.Equal(t, 1, res.TableIndex)
		assert.Len(t, res.Items, 5)
		assert.Equal(t, []int{3, 5}, res.TableCounts)
	})

	t.Run("larger table wins before smaller", func(t *testing.T) {
		res, err := x.SelectTable([]chartable.Table{tableOf(0, 5), tableOf(1, 3)})
		require.NoError(t, err)
		assert.Equal(t, 0, res.TableIndex)
		assert.Len(t, res.Items, 5)
	})

	t.Run("tie goes to first", func(t *testing.T) {
		res, err := x.SelectTable([]chartable.Table{tableOf(0, 0), tableOf(1, 4), tableOf(2, 4)})
		require.NoError(t, err)
		assert.Equal(t, 1, res.TableIndex)
	})

	t.Run("counts use deduplicated items", func(t *testing.T) {
		dup := chartable.Table{Index: 0, Rows: []chartable.Row{
			{"一", "yī"}, {"一", "yī"}, {"一", "yī"}, {"一", "yī"},
		}}
		res, err := x.SelectTable([]chartable.Table{dup, tableOf(1, 2)})
		require.NoError(t, err)
		assert.Equal(t, 1, res.TableIndex)
		assert.Equal(t, []int{1, 2}, res.TableCounts)
	})
}

func TestSelectTableErrors(t *testing.T) {
	x := New(nil)

	tests := []struct {
		name   string
		tables []chartable.Table
	}{
		{"no tables", nil},
		{"no valid items", []chartable.Table{
			{Index: 0, Rows: []chartable.Row{{"好", "123", "xyz"}}},
			{Index: 1, Rows: []chartable.Row{{"字", "拼音"}}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := x.SelectTable(tt.tables)
			assert.Nil(t, res)

			var extractErr *chartable.ExtractionError
			require.ErrorAs(t, err, &extractErr)
		})
	}
}

func TestFromFile(t *testing.T) {
	path := docxtest.WriteTables(t,
		docxtest.Table{
			{"课文", "页码"},
			{"一", "yī"},
		},
		docxtest.Table{
			{"字", "拼音", "组词", "字", "拼音", "组词"},
			{"好", "hǎo", "好人", "上", "shàng", "上下"},
			{"下", "", "xià", "（下雨，下面）"},
			{"好", "hǎo", "好事"},
		},
	)

	res, err := New(nil).FromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 1, res.TableIndex)
	assert.Equal(t, []int{1, 3}, res.TableCounts)
	assert.Equal(t, []chartable.CharItem{
		item("好", "hǎo", "好人"),
		item("上", "shàng", "上下"),
		item("下", "xià", "下雨", "下面"),
	}, res.Items)
}

func TestFromFileNoTables(t *testing.T) {
	path := docxtest.WriteTables(t)

	_, err := New(nil).FromFile(path)

	var extractErr *chartable.ExtractionError
	require.ErrorAs(t, err, &extractErr)
	assert.Equal(t, "extraction error: no tables found", err.Error())
}

func TestFromFileMissing(t *testing.T) {
	_, err := New(nil).FromFile(filepath.Join(t.TempDir(), "missing.docx"))

	var inputErr *chartable.InputError
	assert.ErrorAs(t, err, &inputErr)
}
