package label

import (
	"github.com/BurntSushi/toml"

	"github.com/agilomatrix/racklabel/pkg/errors"
	"github.com/agilomatrix/racklabel/pkg/render"
)

// Variant selects one of the two built-in label layouts.
type Variant string

// Built-in layout variants.
const (
	// VariantMulti renders two part rows per block ("multiple parts").
	VariantMulti Variant = "v1"

	// VariantSingle renders one larger part row per block ("single part").
	VariantSingle Variant = "v2"
)

// ValidVariants is the set of supported layout variants.
var ValidVariants = map[Variant]bool{
	VariantMulti:  true,
	VariantSingle: true,
}

// ValidateVariant checks that a variant identifier is valid.
func ValidateVariant(v Variant) error {
	if !ValidVariants[v] {
		return errors.New(errors.ErrCodeInvalidVariant, "invalid variant: %q (must be v1 or v2)", string(v))
	}
	return nil
}

// PartNumberStyle controls the dual-size rendering of part numbers.
type PartNumberStyle struct {
	PrefixSize float64 `toml:"prefix_size"` // points, leading characters
	SuffixSize float64 `toml:"suffix_size"` // points, trailing SuffixLen characters
	SuffixLen  int     `toml:"suffix_len"`
}

// SizeBucket maps a maximum text length to a font size.
type SizeBucket struct {
	MaxLen int     `toml:"max_len"`
	Size   float64 `toml:"size"`
}

// DescriptionStyle controls description sizing. When FixedSize is set the
// buckets are ignored and the text wraps at one size; otherwise the first
// bucket whose MaxLen covers the text length wins, falling back to MinSize
// with truncation at TruncateAt characters.
type DescriptionStyle struct {
	FixedSize  float64      `toml:"fixed_size"`
	Buckets    []SizeBucket `toml:"buckets"`
	MinSize    float64      `toml:"min_size"`
	TruncateAt int          `toml:"truncate_at"`
}

// LayoutStyle holds the physical dimensions of a label block, all in
// centimeters unless noted.
type LayoutStyle struct {
	LabelColWidth   float64            `toml:"label_col_width"` // fixed left column ("Part No", "Part Location")
	BodyWidth       float64            `toml:"body_width"`      // remainder shared by the value cells
	LocationWeights [FieldCount]float64 `toml:"location_weights"`

	PartRowHeight     float64 `toml:"part_row_height"`
	DescRowHeight     float64 `toml:"desc_row_height"`
	LocationRowHeight float64 `toml:"location_row_height"`

	BlockGap    float64 `toml:"block_gap"`    // gap between stacked part tables
	TrailingGap float64 `toml:"trailing_gap"` // gap after the location strip

	LabelFontSize    float64 `toml:"label_font_size"`    // left-hand label cells
	LocationFontSize float64 `toml:"location_font_size"` // location field cells

	Palette [FieldCount]string `toml:"palette"` // "#RRGGBB" per location cell
}

// StyleSet is the full immutable style configuration for one variant.
// Construct with DefaultStyles or LoadStyles and pass by value.
type StyleSet struct {
	PartNumber  PartNumberStyle  `toml:"part_number"`
	Description DescriptionStyle `toml:"description"`
	Layout      LayoutStyle      `toml:"layout"`
}

// defaultPalette is the cyclic background palette for the seven location
// cells: salmon, light blue, light green, gold, then repeats.
var defaultPalette = [FieldCount]string{
	"#E9967A", "#ADD8E6", "#90EE90", "#FFD700", "#ADD8E6", "#E9967A", "#90EE90",
}

// DefaultStyles returns the built-in style configuration for a variant.
func DefaultStyles(v Variant) StyleSet {
	switch v {
	case VariantSingle:
		return StyleSet{
			PartNumber: PartNumberStyle{PrefixSize: 34, SuffixSize: 40, SuffixLen: 5},
			Description: DescriptionStyle{
				FixedSize: 20,
			},
			Layout: LayoutStyle{
				LabelColWidth:     4,
				BodyWidth:         11,
				LocationWeights:   [FieldCount]float64{1.7, 2.9, 1.3, 1.2, 1.3, 1.3, 1.3},
				PartRowHeight:     1.9,
				DescRowHeight:     2.1,
				LocationRowHeight: 0.9,
				BlockGap:          0.3,
				TrailingGap:       0.2,
				LabelFontSize:     16,
				LocationFontSize:  16,
				Palette:           defaultPalette,
			},
		}
	default: // VariantMulti
		return StyleSet{
			PartNumber: PartNumberStyle{PrefixSize: 17, SuffixSize: 22, SuffixLen: 5},
			Description: DescriptionStyle{
				Buckets: []SizeBucket{
					{MaxLen: 30, Size: 15},
					{MaxLen: 50, Size: 13},
					{MaxLen: 70, Size: 11},
					{MaxLen: 90, Size: 10},
				},
				MinSize:    9,
				TruncateAt: 100,
			},
			Layout: LayoutStyle{
				LabelColWidth:     4,
				BodyWidth:         11,
				LocationWeights:   [FieldCount]float64{1.8, 2.7, 1.3, 1.3, 1.3, 1.3, 1.3},
				PartRowHeight:     1.3,
				DescRowHeight:     0.8,
				LocationRowHeight: 0.8,
				BlockGap:          0.3,
				TrailingGap:       0.2,
				LabelFontSize:     16,
				LocationFontSize:  14,
				Palette:           defaultPalette,
			},
		}
	}
}

// stylesFile is the on-disk TOML layout: one optional section per variant.
type stylesFile struct {
	V1 *StyleSet `toml:"v1"`
	V2 *StyleSet `toml:"v2"`
}

// LoadStyles reads a TOML style overlay and returns the configuration for
// the given variant. Sections and fields not present in the file keep
// their defaults, so a partial overlay only tunes what it names.
func LoadStyles(path string, v Variant) (StyleSet, error) {
	st := DefaultStyles(v)

	var file stylesFile
	file.V1 = cloneStyles(DefaultStyles(VariantMulti))
	file.V2 = cloneStyles(DefaultStyles(VariantSingle))

	if _, err := toml.DecodeFile(path, &file); err != nil {
		return st, errors.Wrap(errors.ErrCodeInvalidStyles, err, "decode styles %s", path)
	}

	switch v {
	case VariantSingle:
		if file.V2 != nil {
			st = *file.V2
		}
	default:
		if file.V1 != nil {
			st = *file.V1
		}
	}

	if err := validateStyles(st); err != nil {
		return DefaultStyles(v), err
	}
	return st, nil
}

func cloneStyles(st StyleSet) *StyleSet {
	c := st
	c.Description.Buckets = append([]SizeBucket(nil), st.Description.Buckets...)
	return &c
}

// validateStyles rejects overlays that would make blocks unrenderable.
func validateStyles(st StyleSet) error {
	if st.Layout.LabelColWidth <= 0 || st.Layout.BodyWidth <= 0 {
		return errors.New(errors.ErrCodeInvalidStyles, "column widths must be positive")
	}
	if st.Layout.PartRowHeight <= 0 || st.Layout.DescRowHeight <= 0 || st.Layout.LocationRowHeight <= 0 {
		return errors.New(errors.ErrCodeInvalidStyles, "row heights must be positive")
	}
	var sum float64
	for _, w := range st.Layout.LocationWeights {
		if w < 0 {
			return errors.New(errors.ErrCodeInvalidStyles, "location weights must not be negative")
		}
		sum += w
	}
	if sum <= 0 {
		return errors.New(errors.ErrCodeInvalidStyles, "location weights must sum to a positive value")
	}
	return nil
}

// locationColors resolves the palette strings into colors once per block
// build. Unparseable entries come out black rather than failing the run.
func (l LayoutStyle) locationColors() [FieldCount]render.Color {
	var colors [FieldCount]render.Color
	for i, hex := range l.Palette {
		colors[i] = render.Hex(hex)
	}
	return colors
}

// locationWidths splits BodyWidth across the seven location cells by the
// configured proportional weights.
func (l LayoutStyle) locationWidths() [FieldCount]float64 {
	var total float64
	for _, w := range l.LocationWeights {
		total += w
	}
	var widths [FieldCount]float64
	if total <= 0 {
		return widths
	}
	for i, w := range l.LocationWeights {
		widths[i] = w * l.BodyWidth / total
	}
	return widths
}
