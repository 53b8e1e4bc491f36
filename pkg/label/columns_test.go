package label

import "testing"

func TestResolveColumns(t *testing.T) {
	tests := []struct {
		name  string
		names []string
		want  Columns
	}{
		{
			name:  "keyword headers",
			names: []string{"Part Number", "Description", "Location"},
			want:  Columns{PartNumber: "Part Number", Description: "Description", Location: "Location"},
		},
		{
			name:  "case insensitive",
			names: []string{"part no.", "DESC.", "Storage Position"},
			want:  Columns{PartNumber: "part no.", Description: "DESC.", Location: "Storage Position"},
		},
		{
			name:  "hash counts as number hint",
			names: []string{"Item", "Part #", "Desc", "Loc"},
			want:  Columns{PartNumber: "Part #", Description: "Desc", Location: "Loc"},
		},
		{
			name: "no desc keyword falls back to the second column",
			// "Details" carries no DESC keyword, so the positional
			// fallback picks the second column even though it already
			// serves as the part column.
			names: []string{"Item", "Part #", "Details", "Loc"},
			want:  Columns{PartNumber: "Part #", Description: "Part #", Location: "Loc"},
		},
		{
			name:  "exact part form without number hint",
			names: []string{"Qty", "Part", "Item Description", "Aisle Pos"},
			want:  Columns{PartNumber: "Part", Description: "Item Description", Location: "Aisle Pos"},
		},
		{
			name:  "first match wins",
			names: []string{"PartNo A", "PartNo B", "Desc 1", "Desc 2", "Loc 1", "Loc 2"},
			want:  Columns{PartNumber: "PartNo A", Description: "Desc 1", Location: "Loc 1"},
		},
		{
			name:  "positional fallback",
			names: []string{"A", "B", "C", "D"},
			want:  Columns{PartNumber: "A", Description: "B", Location: "C"},
		},
		{
			name:  "two columns collapse location onto description",
			names: []string{"A", "B"},
			want:  Columns{PartNumber: "A", Description: "B", Location: "B"},
		},
		{
			name:  "single column serves every role",
			names: []string{"Only"},
			want:  Columns{PartNumber: "Only", Description: "Only", Location: "Only"},
		},
		{
			name:  "no columns",
			names: nil,
			want:  Columns{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveColumns(tt.names); got != tt.want {
				t.Errorf("ResolveColumns(%v) = %+v, want %+v", tt.names, got, tt.want)
			}
		})
	}
}

func TestResolveColumnsDegenerate(t *testing.T) {
	// A single header matching several keywords resolves every role to
	// the same column without error.
	got := ResolveColumns([]string{"Part No / Desc / Loc"})
	want := Columns{
		PartNumber:  "Part No / Desc / Loc",
		Description: "Part No / Desc / Loc",
		Location:    "Part No / Desc / Loc",
	}
	if got != want {
		t.Errorf("ResolveColumns() = %+v, want %+v", got, want)
	}
}
