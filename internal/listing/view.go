package listing

import (
	"regexp"
	"sort"
	"strings"

	"github.com/umalmyha/clientes/internal/model"
)

var searchFields = []Field{FieldRUC, FieldRazonSocial}

// View filters records by term against RUC and razon social ignoring case,
// then sorts them stably by field. Records with empty key always go last.
func View(records []*model.Cliente, term string, field Field, order SortOrder) []*model.Cliente {
	view := Filter(records, term)
	if field != "" {
		sortStable(view, field, order)
	}
	return view
}

// Filter returns new slice even when term is empty
func Filter(records []*model.Cliente, term string) []*model.Cliente {
	filtered := make([]*model.Cliente, 0, len(records))
	if term == "" {
		return append(filtered, records...)
	}

	needle := strings.ToLower(term)
	for _, c := range records {
		for _, f := range searchFields {
			if strings.Contains(strings.ToLower(fieldValue(c, f)), needle) {
				filtered = append(filtered, c)
				break
			}
		}
	}
	return filtered
}

func sortStable(records []*model.Cliente, field Field, order SortOrder) {
	sort.SliceStable(records, func(i, j int) bool {
		a := strings.ToLower(fieldValue(records[i], field))
		b := strings.ToLower(fieldValue(records[j], field))

		switch {
		case a == "" || b == "":
			return a != "" && b == ""
		case order == Desc:
			return a > b
		default:
			return a < b
		}
	})
}

// Highlight wraps every case-insensitive occurrence of term in text with mark
func Highlight(text, term string, mark func(string) string) string {
	if text == "" || term == "" {
		return text
	}

	re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(term))
	return re.ReplaceAllStringFunc(text, mark)
}
