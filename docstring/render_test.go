package docstring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.jacobcolvin.com/sectiondoc/docstring"
)

func TestRenderArgument(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		item   docstring.Item
		indent string
		want   []string
	}{
		"term with classifier": {
			item: docstring.Item{
				Term:        "x",
				Classifiers: []string{"int"},
				Description: []string{"The x value."},
			},
			want: []string{
				":param x:",
				"    The x value.",
				":type x: int",
			},
		},
		"no classifier": {
			item: docstring.Item{
				Term:        "x",
				Description: []string{"The x value."},
			},
			want: []string{
				":param x:",
				"    The x value.",
			},
		},
		"two classifiers": {
			item: docstring.Item{
				Term:        "x",
				Classifiers: []string{"int", "float"},
				Description: []string{""},
			},
			want: []string{
				":param x:",
				"",
				":type x: int or float",
			},
		},
		"starred term is escaped": {
			item: docstring.Item{
				Term:        "**kwargs",
				Classifiers: []string{"dict"},
				Description: []string{"Extra options."},
			},
			want: []string{
				`:param \*\*kwargs:`,
				"    Extra options.",
				`:type \*\*kwargs: dict`,
			},
		},
		"indented": {
			item: docstring.Item{
				Term:        "x",
				Classifiers: []string{"int"},
				Description: []string{"The x value."},
			},
			indent: "    ",
			want: []string{
				"    :param x:",
				"        The x value.",
				"    :type x: int",
			},
		},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, docstring.RenderArgument(tc.item, tc.indent))
		})
	}
}

func TestRenderListItem(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		item   docstring.Item
		indent string
		want   []string
	}{
		"single line": {
			item: docstring.Item{
				Term:        "result",
				Classifiers: []string{"list"},
				Description: []string{"The result."},
			},
			want: []string{
				"- **result** (*list*) -- The result.",
			},
		},
		"continuation lines": {
			item: docstring.Item{
				Term:        "result",
				Classifiers: []string{"list"},
				Description: []string{
					"The result of the call,",
					"in insertion order.",
				},
			},
			want: []string{
				"- **result** (*list*) -- The result of the call,",
				"  in insertion order.",
			},
		},
		"two classifiers": {
			item: docstring.Item{
				Term:        "value",
				Classifiers: []string{"int", "float"},
				Description: []string{"The value."},
			},
			want: []string{
				"- **value** (*int* or *float*) -- The value.",
			},
		},
		"no classifiers": {
			item: docstring.Item{
				Term:        "ValueError",
				Description: []string{"When x is negative."},
			},
			want: []string{
				"- **ValueError** -- When x is negative.",
			},
		},
		"empty description": {
			item: docstring.Item{
				Term:        "done",
				Description: []string{""},
			},
			want: []string{
				"- **done**",
				"",
			},
		},
		"indented": {
			item: docstring.Item{
				Term:        "result",
				Classifiers: []string{"list"},
				Description: []string{
					"The result.",
					"Second line.",
				},
			},
			indent: "    ",
			want: []string{
				"    - **result** (*list*) -- The result.",
				"      Second line.",
			},
		},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, docstring.RenderListItem(tc.item, tc.indent))
		})
	}
}

func TestRenderAttribute(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		item   docstring.Item
		indent string
		want   []string
	}{
		"annotation and description": {
			item: docstring.Item{
				Term:        "color",
				Classifiers: []string{"str"},
				Description: []string{"The display color."},
			},
			indent: "    ",
			want: []string{
				"    .. attribute:: color",
				"        :annotation: = str",
				"",
				"        The display color.",
			},
		},
		"no annotation": {
			item: docstring.Item{
				Term:        "color",
				Description: []string{"The display color."},
			},
			want: []string{
				".. attribute:: color",
				"",
				"    The display color.",
			},
		},
		"no description": {
			item: docstring.Item{
				Term:        "color",
				Classifiers: []string{"str"},
				Description: []string{""},
			},
			want: []string{
				".. attribute:: color",
				"    :annotation: = str",
			},
		},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, docstring.RenderAttribute(tc.item, tc.indent))
		})
	}
}
