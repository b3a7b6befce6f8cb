package docstring

import (
	"fmt"
	"strings"
)

// Renderer turns one parsed [Item] into output lines, prefixed with the
// section's original indentation.
type Renderer func(item Item, indent string) []string

// RenderArgument renders a parameter item as a pair of field-list
// entries:
//
//	:param term:
//	    description
//	:type term: classifier or classifier
//
// The type entry is omitted when the item has no classifiers.
func RenderArgument(item Item, indent string) []string {
	term := escapeStars(item.Term)

	out := []string{indent + ":param " + term + ":"}
	out = append(out, indentLines(item.Description, indent+"    ")...)

	if len(item.Classifiers) > 0 {
		out = append(out, indent+":type "+term+": "+strings.Join(item.Classifiers, " or "))
	}

	return out
}

// RenderListItem renders an item as one bullet of a definition list:
//
//	- **term** (*classifier* or *classifier*) -- description
//	  continuation lines indented under the bullet
func RenderListItem(item Item, indent string) []string {
	head := indent + "- **" + escapeStars(item.Term) + "**"

	if len(item.Classifiers) > 0 {
		emphasized := make([]string, len(item.Classifiers))
		for i, c := range item.Classifiers {
			emphasized[i] = "*" + c + "*"
		}

		head += " (" + strings.Join(emphasized, " or ") + ")"
	}

	desc := item.Description
	if len(desc) > 0 && desc[0] != "" {
		head += " -- " + desc[0]
		desc = desc[1:]
	}

	out := []string{head}
	for _, line := range desc {
		if line == "" {
			out = append(out, "")
		} else {
			out = append(out, indent+"  "+line)
		}
	}

	return out
}

// RenderAttribute renders an attribute item as an attribute directive:
//
//	.. attribute:: term
//	    :annotation: = classifier
//
//	    description
func RenderAttribute(item Item, indent string) []string {
	out := []string{indent + ".. attribute:: " + escapeStars(item.Term)}

	if len(item.Classifiers) > 0 {
		out = append(out, indent+"    :annotation: = "+strings.Join(item.Classifiers, " or "))
	}

	if len(item.Description) > 0 && item.Description[0] != "" {
		out = append(out, "")
		out = append(out, indentLines(item.Description, indent+"    ")...)
	}

	return out
}

// renderMethodTable renders method items as a two-column rST grid table
// of signature references and single-line summaries. Column widths come
// from the longest cell in each column.
func renderMethodTable(items []Item, indent string) []string {
	if len(items) == 0 {
		return nil
	}

	rows := make([][2]string, len(items))
	for i, item := range items {
		rows[i] = [2]string{methodRef(item.Term), summaryOf(item.Description)}
	}

	methodWidth := len("Method")
	descWidth := len("Description")

	for _, row := range rows {
		methodWidth = max(methodWidth, len(row[0]))
		descWidth = max(descWidth, len(row[1]))
	}

	border := indent + strings.Repeat("=", methodWidth) + " " + strings.Repeat("=", descWidth)
	pad := func(method, desc string) string {
		return strings.TrimRight(fmt.Sprintf("%s%-*s %s", indent, methodWidth, method, desc), " ")
	}

	out := []string{border, pad("Method", "Description"), border}
	for _, row := range rows {
		out = append(out, pad(row[0], row[1]))
	}

	return append(out, border)
}

// methodRef formats a method signature as a :meth: reference to the bare
// method name.
func methodRef(signature string) string {
	name := signature
	if i := strings.IndexByte(signature, '('); i >= 0 {
		name = signature[:i]
	}

	return ":meth:`" + name + "` " + signature[len(name):]
}

// summaryOf collapses description lines into a single-line summary.
func summaryOf(desc []string) string {
	var parts []string

	for _, line := range desc {
		line = strings.TrimSpace(line)
		if line != "" {
			parts = append(parts, line)
		}
	}

	return strings.Join(parts, " ")
}
