package pipeline

import (
	"testing"

	"github.com/agilomatrix/racklabel/pkg/errors"
	"github.com/agilomatrix/racklabel/pkg/label"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{format: "pdf"},
		{format: "json"},
		{format: "png", wantErr: true},
		{format: "", wantErr: true},
		{format: "PDF", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			err := ValidateFormat(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
		})
	}
}

func TestOptionsValidateAndSetDefaults(t *testing.T) {
	t.Run("defaults applied", func(t *testing.T) {
		var opts Options
		if err := opts.ValidateAndSetDefaults(); err != nil {
			t.Fatalf("ValidateAndSetDefaults() error: %v", err)
		}
		if opts.Variant != DefaultVariant {
			t.Errorf("variant = %q, want %q", opts.Variant, DefaultVariant)
		}
		if len(opts.Formats) != 1 || opts.Formats[0] != FormatPDF {
			t.Errorf("formats = %v, want [pdf]", opts.Formats)
		}
		if opts.Logger == nil {
			t.Error("logger not defaulted")
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		opts := Options{Formats: []string{FormatJSON}}
		if err := opts.ValidateAndSetDefaults(); err != nil {
			t.Fatal(err)
		}
		if err := opts.ValidateAndSetDefaults(); err != nil {
			t.Fatal(err)
		}
		if len(opts.Formats) != 1 || opts.Formats[0] != FormatJSON {
			t.Errorf("formats changed on revalidation: %v", opts.Formats)
		}
	})

	t.Run("invalid variant", func(t *testing.T) {
		opts := Options{Variant: "v9"}
		err := opts.ValidateAndSetDefaults()
		if errors.GetCode(err) != errors.ErrCodeInvalidVariant {
			t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidVariant)
		}
	})

	t.Run("invalid format", func(t *testing.T) {
		opts := Options{Formats: []string{"pdf", "docx"}}
		err := opts.ValidateAndSetDefaults()
		if errors.GetCode(err) != errors.ErrCodeInvalidFormat {
			t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidFormat)
		}
	})
}

func TestOptionsStyleSet(t *testing.T) {
	opts := Options{Variant: label.VariantSingle}
	if got := opts.StyleSet(); got.Description.FixedSize != 20 {
		t.Errorf("default styles for v2 not resolved: %+v", got.Description)
	}

	custom := label.DefaultStyles(label.VariantSingle)
	custom.PartNumber.SuffixLen = 3
	opts.Styles = &custom
	if got := opts.StyleSet(); got.PartNumber.SuffixLen != 3 {
		t.Errorf("style override ignored: %+v", got.PartNumber)
	}
}

func TestStyleHashChangesWithStyles(t *testing.T) {
	a := Options{Variant: label.VariantMulti}
	b := Options{Variant: label.VariantMulti}

	if a.styleHash() != b.styleHash() {
		t.Error("identical styles must hash identically")
	}

	custom := label.DefaultStyles(label.VariantMulti)
	custom.Layout.BlockGap = 0.5
	b.Styles = &custom
	if a.styleHash() == b.styleHash() {
		t.Error("different styles must hash differently")
	}
}
