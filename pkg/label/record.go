package label

// PartRecord is one inventory row reduced to the three fields a label
// needs. Values are carried verbatim as loaded; the engine never mutates
// a record after creation.
type PartRecord struct {
	PartNumber  string `json:"part_number"`
	Description string `json:"description"`
	LocationRaw string `json:"location"`
}
