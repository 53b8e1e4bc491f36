package label

import (
	"strings"
	"unicode"
)

// FieldCount is the fixed number of positional fields in a location code.
const FieldCount = 7

// LocationFields holds the positional segments of a parsed location code
// (site, rack, aisle and so on). Always exactly FieldCount entries; an
// empty string marks an absent field.
type LocationFields [FieldCount]string

// ParseLocation splits a raw location code into its positional fields.
//
// The input is trimmed, then tokenized: a token is any maximal run of
// characters that are neither whitespace nor underscores. The first seven
// tokens fill the fields in order; missing fields stay empty and extra
// tokens are discarded. Both space-delimited codes ("12M R 0 2 A 1") and
// underscore-delimited codes ("12M_ST-140_R_0_2_A_1") parse with this one
// rule. An empty input yields all-empty fields.
func ParseLocation(raw string) LocationFields {
	var fields LocationFields

	tokens := strings.FieldsFunc(strings.TrimSpace(raw), func(r rune) bool {
		return r == '_' || unicode.IsSpace(r)
	})

	for i, tok := range tokens {
		if i == FieldCount {
			break
		}
		fields[i] = tok
	}
	return fields
}
