package docstring

// FunctionSections returns the registry used for function and method
// docstrings: Returns, Raises, and Yields render as definition lists,
// Arguments and Parameters as field-list entries, and Notes as a note
// block quote. Any other recognized header falls back to a rubric.
func FunctionSections() Registry {
	return Registry{
		"Returns":    ItemList{Render: RenderListItem},
		"Raises":     ItemList{Render: RenderListItem},
		"Yields":     ItemList{Render: RenderListItem},
		"Arguments":  ItemList{Render: RenderArgument},
		"Parameters": ItemList{Render: RenderArgument},
		"Notes":      Paragraph{},
	}
}

// ClassSections returns the registry used for class docstrings:
// Attributes render as attribute directives, Methods as a summary table,
// and Notes as a note block quote.
func ClassSections() Registry {
	return Registry{
		"Attributes": ItemList{Render: RenderAttribute},
		"Methods":    MethodTable{},
		"Notes":      Paragraph{},
	}
}
