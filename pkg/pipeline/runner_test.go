package pipeline

import (
	"bytes"
	"context"
	"testing"

	"github.com/agilomatrix/racklabel/pkg/cache"
	"github.com/agilomatrix/racklabel/pkg/tabular"
)

func testTable() tabular.Table {
	return tabular.Table{
		Columns: []string{"Part No", "Description", "Location"},
		Rows: []tabular.Row{
			{"Part No": "AB12345", "Description": "Hex bolt M8", "Location": "12M R 0 2 A 1"},
			{"Part No": "CD67890", "Description": "Washer", "Location": "12M R 0 2 A 1"},
			{"Part No": "EF11111", "Description": "Nut", "Location": "14M_R_1_3_B_2"},
		},
	}
}

func TestRunnerExecute(t *testing.T) {
	r := NewRunner(cache.NewNullCache(), nil, nil)

	result, err := r.Execute(context.Background(), testTable(), Options{
		Formats: []string{FormatPDF, FormatJSON},
	})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	if result.Document == nil {
		t.Fatal("got nil document")
	}
	if result.Stats.Rows != 3 || result.Stats.Groups != 2 || result.Stats.Pages != 1 {
		t.Errorf("stats = %+v, want 3 rows, 2 groups, 1 page", result.Stats)
	}

	pdf := result.Artifacts[FormatPDF]
	if !bytes.HasPrefix(pdf, []byte("%PDF-")) {
		t.Errorf("pdf artifact does not start with %%PDF- header")
	}
	if len(result.Artifacts[FormatJSON]) == 0 {
		t.Error("json artifact missing")
	}
	if result.CacheInfo.RenderHit {
		t.Error("first run cannot be a cache hit")
	}
}

func TestRunnerExecuteEmptyTable(t *testing.T) {
	r := NewRunner(nil, nil, nil)

	result, err := r.Execute(context.Background(), tabular.Table{Columns: []string{"A"}}, Options{})
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if result.Document != nil {
		t.Error("empty table produced a document")
	}
	if len(result.Artifacts) != 0 {
		t.Errorf("empty table produced artifacts: %v", result.Artifacts)
	}
}

func TestRunnerExecuteCacheHit(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(fc, nil, nil)
	defer r.Close()

	opts := Options{Formats: []string{FormatJSON}}

	first, err := r.Execute(context.Background(), testTable(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if first.CacheInfo.RenderHit {
		t.Error("first run reported a cache hit")
	}

	second, err := r.Execute(context.Background(), testTable(), Options{Formats: []string{FormatJSON}})
	if err != nil {
		t.Fatal(err)
	}
	if !second.CacheInfo.RenderHit {
		t.Error("second run should be served from cache")
	}
	if !bytes.Equal(first.Artifacts[FormatJSON], second.Artifacts[FormatJSON]) {
		t.Error("cached artifact differs from the original")
	}

	// Refresh bypasses the cache.
	third, err := r.Execute(context.Background(), testTable(), Options{Formats: []string{FormatJSON}, Refresh: true})
	if err != nil {
		t.Fatal(err)
	}
	if third.CacheInfo.RenderHit {
		t.Error("refresh run must not be a cache hit")
	}
}

func TestRunnerExecuteInvalidOptions(t *testing.T) {
	r := NewRunner(nil, nil, nil)

	if _, err := r.Execute(context.Background(), testTable(), Options{Variant: "v9"}); err == nil {
		t.Error("invalid variant must fail")
	}
	if _, err := r.Execute(context.Background(), testTable(), Options{Formats: []string{"docx"}}); err == nil {
		t.Error("invalid format must fail")
	}
}

func TestRunnerProgressForwarded(t *testing.T) {
	r := NewRunner(nil, nil, nil)

	var calls int
	opts := Options{
		Progress: func(index, total int, location string) { calls++ },
	}
	if _, err := r.Execute(context.Background(), testTable(), opts); err != nil {
		t.Fatal(err)
	}
	if calls != 2 {
		t.Errorf("progress called %d times, want 2", calls)
	}
}
