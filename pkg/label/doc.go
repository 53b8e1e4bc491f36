// Package label implements the label layout engine.
//
// The engine turns tabular inventory records (part number, description,
// storage location) into a render-ready document of printable label blocks.
// Processing follows a fixed sequence:
//
//  1. ResolveColumns infers which columns hold part number, description
//     and location from the column names (keyword heuristics with
//     positional fallback).
//  2. Rows are grouped by the exact raw value of the location column, in
//     the order locations first appear.
//  3. For each group, ParseLocation splits the location code into seven
//     positional fields, the typography rules pick font sizes that fit
//     the fixed label cells, and BuildBlock assembles one label block.
//  4. The Paginator places blocks onto pages, four per page.
//
// Two layout variants exist: VariantMulti ("v1") renders two part rows
// per block, VariantSingle ("v2") renders one larger part row. All
// cosmetic tuning (column weights, row heights, palette, font sizes)
// lives in immutable StyleSet values constructed at configuration time;
// see DefaultStyles and LoadStyles.
package label
