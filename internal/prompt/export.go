package prompt

// List names the persisted collection a record was exported from.
type List string

const (
	ListHistory   List = "history"
	ListFavorites List = "favorites"
)

// ExportHeader is the first line of a JSONL export file.
type ExportHeader struct {
	PolishExport  bool   `json:"_polish_export"`
	SchemaVersion string `json:"schema_version"`
	ExportedAt    int64  `json:"exported_at"`
}

// ExportRecord is one record line in a JSONL export file.
type ExportRecord struct {
	List List `json:"list"`
	Record
}

// ToExportRecord tags r with the list it was read from.
func ToExportRecord(list List, r Record) ExportRecord {
	return ExportRecord{List: list, Record: r}
}
