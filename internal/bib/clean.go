package bib

import "strings"

// Clean repairs field values that would break downstream BibTeX
// consumers: values with an uneven number of curly braces lose all
// braces, and "@" is replaced with " at ". Returns the names of fields
// whose braces were stripped so the caller can warn about them.
func Clean(e *Entry) []string {
	var repaired []string
	for _, name := range e.FieldNames() {
		value := e.Get(name)

		if strings.Count(value, "{") != strings.Count(value, "}") {
			value = strings.ReplaceAll(value, "{", "")
			value = strings.ReplaceAll(value, "}", "")
			repaired = append(repaired, name)
		}

		value = strings.ReplaceAll(value, "@", " at ")
		e.Set(name, value)
	}
	return repaired
}
