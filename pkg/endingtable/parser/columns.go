package parser

import "github.com/ukaji3/endingtable-go/pkg/endingtable/models"

// ResolveColumns maps each required column to the header that carries it,
// accepting the canonical name or its localized alias. Missing columns are
// returned in models.RequiredColumns order.
func ResolveColumns(headers []string) (map[string]string, []string) {
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		if h != "" {
			present[h] = true
		}
	}

	resolved := make(map[string]string, len(models.RequiredColumns))
	var missing []string
	for _, column := range models.RequiredColumns {
		switch {
		case present[column]:
			resolved[column] = column
		case present[models.ColumnAliases[column]]:
			resolved[column] = models.ColumnAliases[column]
		default:
			missing = append(missing, column)
		}
	}
	return resolved, missing
}
