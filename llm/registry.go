// Provider registry.
//
// Maps provider identifiers to constructor closures so backends can be
// added without touching call sites. The fallback decorator composes two
// registered providers behind the same Provider interface.

package llm

import (
	"fmt"
	"sort"
	"strings"
)

// Options holds the per-provider construction parameters.
type Options struct {
	APIKey      string
	Model       string
	MaxTokens   uint32
	Temperature float32
}

// Constructor builds a provider from options.
type Constructor func(opts Options) Provider

// Registry maps provider identifiers to constructors.
type Registry struct {
	constructors map[string]Constructor
}

// NewRegistry creates a registry preloaded with the built-in providers.
func NewRegistry() *Registry {
	return &Registry{
		constructors: map[string]Constructor{
			"openai": func(o Options) Provider {
				return NewOpenAIProvider(o.APIKey, o.Model, o.MaxTokens, o.Temperature)
			},
			"anthropic": func(o Options) Provider {
				return NewAnthropicProvider(o.APIKey, o.Model, o.MaxTokens, o.Temperature)
			},
			"deepseek": func(o Options) Provider {
				return NewDeepSeekProvider(o.APIKey, o.Model, o.MaxTokens, o.Temperature)
			},
			"gemini": func(o Options) Provider {
				return NewGeminiProvider(o.APIKey, o.Model, o.MaxTokens, o.Temperature)
			},
		},
	}
}

// Register adds a constructor under the given identifier.
// Returns an error if the identifier is already taken.
func (r *Registry) Register(name string, ctor Constructor) error {
	name = strings.ToLower(name)
	if _, exists := r.constructors[name]; exists {
		return fmt.Errorf("provider %q already registered", name)
	}
	r.constructors[name] = ctor
	return nil
}

// New builds a provider by identifier.
func (r *Registry) New(name string, opts Options) (Provider, error) {
	ctor, ok := r.constructors[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown provider: %q (supported: %s)",
			name, strings.Join(r.Names(), ", "))
	}
	if opts.MaxTokens == 0 {
		opts.MaxTokens = 4096
	}
	return ctor(opts), nil
}

// Validate checks that every identifier resolves to a constructor.
// Called at startup so a misconfigured provider name fails fast instead of
// at first model call.
func (r *Registry) Validate(names ...string) error {
	for _, name := range names {
		if name == "" {
			continue
		}
		if _, ok := r.constructors[strings.ToLower(name)]; !ok {
			return fmt.Errorf("unknown provider: %q (supported: %s)",
				name, strings.Join(r.Names(), ", "))
		}
	}
	return nil
}

// Names returns registered provider identifiers in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.constructors))
	for name := range r.constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
