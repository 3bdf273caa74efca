package core

import "strings"

// Keyword sets used to classify spreadsheet columns by header text.
// Headers are lowercased before matching; keywords must be lowercase.
var (
	PriceKeywords = []string{"preço", "preco", "valor", "unitário", "unitario", "price", "cost", "vlr"}
	NameKeywords  = []string{"medicamento", "produto", "descrição", "descricao", "nome", "item"}
	LabKeywords   = []string{"laboratorio", "laboratório", "marca", "fabricante", "lab"}
)

// Columns names the classified columns of a Table by header.
// An empty Price or Lab means the column was not found.
type Columns struct {
	Name  string
	Lab   string
	Price string
}

// FindColumnIndex returns the index of the last header containing any of
// the keywords, or NoColumn. Later matches overwrite earlier ones.
func FindColumnIndex(headers, keywords []string) int {
	idx := NoColumn
	for i, h := range headers {
		if containsAny(strings.ToLower(h), keywords) {
			idx = i
		}
	}
	return idx
}

// ClassifyColumns locates the name, lab and price columns of a parsed table.
// The name column falls back to the first header when no keyword matches.
func ClassifyColumns(t *Table) Columns {
	var cols Columns
	if t == nil || len(t.Headers) == 0 {
		return cols
	}

	if i := FindColumnIndex(t.Headers, NameKeywords); i != NoColumn {
		cols.Name = t.Headers[i]
	} else {
		cols.Name = t.Headers[0]
	}
	if i := FindColumnIndex(t.Headers, LabKeywords); i != NoColumn {
		cols.Lab = t.Headers[i]
	}
	cols.Price = t.PriceHeader()

	return cols
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
