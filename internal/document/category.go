package document

import "strings"

// CategoryGeneral is assigned when no keyword matches the filename.
const CategoryGeneral = "Général"

// Category maps a document category to the filename keywords that select it.
type Category struct {
	Name     string
	Keywords []string
}

// DefaultCategories is the table for the corpus this assistant was built
// around. Order matters: earlier categories win on ambiguous filenames.
var DefaultCategories = []Category{
	{Name: "ISO", Keywords: []string{"ISO", "norme", "standard"}},
	{Name: "RH", Keywords: []string{"RH", "formation", "FOR-RH"}},
	{Name: "Procédure", Keywords: []string{"PCD", "procédure", "procedure"}},
}

// ResolveCategory matches the filename against the table, case-insensitively,
// first match wins.
func ResolveCategory(filename string, table []Category) string {
	upper := strings.ToUpper(filename)
	for _, cat := range table {
		for _, kw := range cat.Keywords {
			if strings.Contains(upper, strings.ToUpper(kw)) {
				return cat.Name
			}
		}
	}
	return CategoryGeneral
}
