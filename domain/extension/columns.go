package extension

import (
	"strings"

	"extproc/domain/core"
)

// ResolveColumns maps each logical field onto its physical column index in
// the header. Matching is a case-sensitive exact comparison against the
// configured header text, after trimming surrounding whitespace from the
// header cell (Windows exports leave a carriage return on the last cell).
//
// Any logical field absent from the header is fatal for the whole run; the
// returned error names every missing field.
func ResolveColumns(header []string, cfg ColumnConfig) (ColumnIndices, error) {
	find := func(name string) int {
		for i, cell := range header {
			if strings.TrimSpace(cell) == name {
				return i
			}
		}
		return -1
	}

	idx := ColumnIndices{
		Email:      find(cfg.Email),
		Name:       find(cfg.Name),
		Assignment: find(cfg.Assignment),
		Date:       find(cfg.Date),
	}

	var missing []string
	if idx.Email < 0 {
		missing = append(missing, "email")
	}
	if idx.Name < 0 {
		missing = append(missing, "name")
	}
	if idx.Assignment < 0 {
		missing = append(missing, "assignment")
	}
	if idx.Date < 0 {
		missing = append(missing, "date")
	}
	if len(missing) > 0 {
		return ColumnIndices{}, core.NewMissingColumnsError(missing)
	}

	return idx, nil
}
