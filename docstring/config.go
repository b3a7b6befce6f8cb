package docstring

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Strategy names accepted in section config files and the --style flag.
const (
	StrategyRubric     = "rubric"
	StrategyArguments  = "arguments"
	StrategyAttributes = "attributes"
	StrategyList       = "list"
	StrategyMethods    = "methods"
	StrategyParagraph  = "paragraph"
)

// Styles maps style names to their registry constructors.
var styles = map[string]func() Registry{
	"function": FunctionSections,
	"class":    ClassSections,
}

// Flags holds CLI flag names for transformer configuration, allowing
// callers to customize flag names while keeping sensible defaults.
type Flags struct {
	Style    string
	Sections string
}

// Config holds CLI flag values for transformer configuration.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewRegistry] to resolve the flags
// into a [Registry].
type Config struct {
	Flags    Flags
	Style    string
	Sections string
}

// NewConfig returns a new [Config] with default flag names.
func NewConfig() *Config {
	return &Config{
		Flags: Flags{
			Style:    "style",
			Sections: "sections",
		},
	}
}

// RegisterFlags adds transformer flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&c.Style, c.Flags.Style, "s", "function",
		"docstring style, one of: function, class")
	flags.StringVar(&c.Sections, c.Flags.Sections, "",
		"YAML file mapping section headers to strategies (overrides --style)")
}

// RegisterCompletions registers shell completions for transformer flags
// on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.Style,
		cobra.FixedCompletions([]string{"function", "class"}, cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Style, err)
	}

	return nil
}

// NewRegistry resolves the configured style, and section config file if
// any, into a [Registry].
func (c *Config) NewRegistry() (Registry, error) {
	if c.Sections != "" {
		data, err := os.ReadFile(c.Sections)
		if err != nil {
			return nil, fmt.Errorf("reading sections config: %w", err)
		}

		return ParseSections(data)
	}

	constructor, ok := styles[c.Style]
	if !ok {
		return nil, fmt.Errorf("%w: unknown style %q", ErrUnknownStrategy, c.Style)
	}

	return constructor(), nil
}

// sectionsFile is the YAML shape of a section config file:
//
//	sections:
//	  Parameters: arguments
//	  Returns: list
//	  Notes: paragraph
type sectionsFile struct {
	Sections map[string]string `yaml:"sections"`
}

// ParseSections parses a YAML section config into a [Registry]. Strategy
// names map onto the closed variant set; an unrecognized name is a
// configuration error ([ErrUnknownStrategy]), caught here rather than at
// dispatch time.
func ParseSections(data []byte) (Registry, error) {
	var file sectionsFile

	err := yaml.Unmarshal(data, &file)
	if err != nil {
		return nil, fmt.Errorf("parsing sections config: %w", err)
	}

	registry := make(Registry, len(file.Sections))

	for header, name := range file.Sections {
		strategy, err := strategyByName(name)
		if err != nil {
			return nil, fmt.Errorf("section %q: %w", header, err)
		}

		registry[header] = strategy
	}

	return registry, nil
}

// strategyByName maps a strategy name to its variant.
func strategyByName(name string) (Strategy, error) {
	switch name {
	case StrategyRubric:
		return GenericDirective{}, nil

	case StrategyArguments:
		return ItemList{Render: RenderArgument}, nil

	case StrategyAttributes:
		return ItemList{Render: RenderAttribute}, nil

	case StrategyList:
		return ItemList{Render: RenderListItem}, nil

	case StrategyMethods:
		return MethodTable{}, nil

	case StrategyParagraph:
		return Paragraph{}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}
