package label

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/agilomatrix/racklabel/pkg/errors"
)

func TestValidateVariant(t *testing.T) {
	tests := []struct {
		name    string
		variant Variant
		wantErr bool
	}{
		{name: "multi", variant: VariantMulti},
		{name: "single", variant: VariantSingle},
		{name: "unknown", variant: Variant("v3"), wantErr: true},
		{name: "empty", variant: Variant(""), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateVariant(tt.variant)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateVariant(%q) error = %v, wantErr %v", tt.variant, err, tt.wantErr)
			}
			if err != nil && errors.GetCode(err) != errors.ErrCodeInvalidVariant {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidVariant)
			}
		})
	}
}

func TestDefaultStyles(t *testing.T) {
	multi := DefaultStyles(VariantMulti)
	if multi.PartNumber.PrefixSize != 17 || multi.PartNumber.SuffixSize != 22 {
		t.Errorf("multi part sizes = %v/%v, want 17/22", multi.PartNumber.PrefixSize, multi.PartNumber.SuffixSize)
	}
	if len(multi.Description.Buckets) != 4 || multi.Description.TruncateAt != 100 {
		t.Errorf("unexpected multi description style: %+v", multi.Description)
	}

	single := DefaultStyles(VariantSingle)
	if single.PartNumber.PrefixSize != 34 || single.PartNumber.SuffixSize != 40 {
		t.Errorf("single part sizes = %v/%v, want 34/40", single.PartNumber.PrefixSize, single.PartNumber.SuffixSize)
	}
	if single.Description.FixedSize != 20 {
		t.Errorf("single description size = %v, want 20", single.Description.FixedSize)
	}

	for _, st := range []StyleSet{multi, single} {
		if err := validateStyles(st); err != nil {
			t.Errorf("default styles fail validation: %v", err)
		}
		if st.Layout.LabelColWidth != 4 || st.Layout.BodyWidth != 11 {
			t.Errorf("column widths = %v/%v, want 4/11", st.Layout.LabelColWidth, st.Layout.BodyWidth)
		}
	}
}

func TestLocationWidths(t *testing.T) {
	l := DefaultStyles(VariantMulti).Layout

	widths := l.locationWidths()
	var sum float64
	for _, w := range widths {
		sum += w
	}
	if math.Abs(sum-l.BodyWidth) > 1e-9 {
		t.Errorf("widths sum to %v, want %v", sum, l.BodyWidth)
	}

	// Weights are proportional: the widest cell carries the largest weight.
	if widths[1] <= widths[0] {
		t.Errorf("cell 1 (%v) should be wider than cell 0 (%v)", widths[1], widths[0])
	}
}

func TestLoadStyles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "styles.toml")
	content := `
[v1.part_number]
prefix_size = 12.0
suffix_size = 30.0
suffix_len = 4

[v2.layout]
part_row_height = 2.5
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	v1, err := LoadStyles(path, VariantMulti)
	if err != nil {
		t.Fatalf("LoadStyles(v1) error: %v", err)
	}
	if v1.PartNumber.PrefixSize != 12 || v1.PartNumber.SuffixLen != 4 {
		t.Errorf("overlay not applied: %+v", v1.PartNumber)
	}
	// Untouched sections keep their defaults.
	if v1.Layout.PartRowHeight != 1.3 {
		t.Errorf("v1 part row height = %v, want default 1.3", v1.Layout.PartRowHeight)
	}

	v2, err := LoadStyles(path, VariantSingle)
	if err != nil {
		t.Fatalf("LoadStyles(v2) error: %v", err)
	}
	if v2.Layout.PartRowHeight != 2.5 {
		t.Errorf("v2 part row height = %v, want 2.5", v2.Layout.PartRowHeight)
	}
	if v2.PartNumber.PrefixSize != 34 {
		t.Errorf("v2 prefix size = %v, want default 34", v2.PartNumber.PrefixSize)
	}
}

func TestLoadStylesErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadStyles(filepath.Join(dir, "nope.toml"), VariantMulti)
		if errors.GetCode(err) != errors.ErrCodeInvalidStyles {
			t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidStyles)
		}
	})

	t.Run("invalid overlay rejected", func(t *testing.T) {
		path := filepath.Join(dir, "bad.toml")
		content := `
[v1.layout]
body_width = -1.0
`
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := LoadStyles(path, VariantMulti)
		if errors.GetCode(err) != errors.ErrCodeInvalidStyles {
			t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidStyles)
		}
	})
}
