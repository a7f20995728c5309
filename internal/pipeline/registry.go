// File: registry.go
// Title: Operation Registry
// Description: Named string operations with parameter declarations,
//              aliases and lookup by normalized name.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-05
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-05 v0.1.0: Initial registry with builtin operations
// - 2026-10-16 v0.2.0: Aliases, examples for help output

package pipeline

import (
	"sort"
	"strings"
	"sync"

	strexterror "github.com/msto63/strext/core/error"
	strexterrors "github.com/msto63/strext/core/errors"
	"github.com/msto63/strext/core/log"
	"github.com/msto63/strext/utils/stringx"
)

// Func applies an operation to source with already converted arguments
type Func func(source string, args Args) string

// Definition describes one named operation
type Definition struct {
	Name        string
	Description string
	Params      []Param
	// Example holds arguments used for demonstrations
	Example []string
	Func    Func
}

// Usage renders the operation name followed by its parameters
func (d *Definition) Usage() string {
	parts := []string{d.Name}
	for _, p := range d.Params {
		parts = append(parts, p.Usage())
	}
	return strings.Join(parts, " ")
}

// Options configures a Registry
type Options struct {
	Logger *log.Logger
	// Empty skips registration of the builtin operations
	Empty bool
}

// Registry maps operation names to definitions
type Registry struct {
	definitions map[string]*Definition
	aliases     map[string]string
	logger      *log.Logger
	mutex       sync.RWMutex
}

// NewRegistry creates a registry holding the builtin operations
func NewRegistry(opts Options) *Registry {
	if opts.Logger == nil {
		opts.Logger = log.GetDefault()
	}

	r := &Registry{
		definitions: make(map[string]*Definition),
		aliases:     make(map[string]string),
		logger:      opts.Logger.WithField("component", "op-registry"),
	}

	if !opts.Empty {
		r.registerBuiltins()
		r.logger.Debug("operation registry initialized", log.Fields{
			"operations": len(r.definitions),
			"aliases":    len(r.aliases),
		})
	}

	return r
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	return NewRegistry(Options{Logger: log.Discard()})
})

// DefaultRegistry returns a shared registry with the builtin operations
func DefaultRegistry() *Registry {
	return defaultRegistry()
}

// Register adds def under its normalized name
func (r *Registry) Register(def *Definition) error {
	if def == nil || def.Func == nil {
		return strexterrors.InvalidInput(strexterrors.ModulePipeline, "Register", def, "definition with a Func")
	}
	if stringx.IsBlank(def.Name) {
		return strexterror.New("operation name cannot be empty").
			WithCode(strexterror.CodeRequiredField).
			WithOperation("pipeline.Register")
	}

	for i, p := range def.Params {
		if p.Type.variadic() && i != len(def.Params)-1 {
			return strexterrors.InvalidInput(strexterrors.ModulePipeline, "Register", p.Name,
				"variadic parameter in last position").
				WithDetail("op", def.Name)
		}
	}

	name := normalizeName(def.Name)

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.definitions[name]; exists {
		return strexterror.New("operation " + name + " already registered").
			WithCode(strexterror.CodeValidationFailed).
			WithOperation("pipeline.Register").
			WithDetail("op", name)
	}
	if _, exists := r.aliases[name]; exists {
		return strexterror.New("operation " + name + " conflicts with an alias").
			WithCode(strexterror.CodeValidationFailed).
			WithOperation("pipeline.Register").
			WithDetail("op", name)
	}

	def.Name = name
	r.definitions[name] = def
	return nil
}

// RegisterAlias makes alias resolve to the registered operation name
func (r *Registry) RegisterAlias(alias, name string) error {
	if stringx.IsBlank(alias) {
		return strexterror.New("alias name cannot be empty").
			WithCode(strexterror.CodeRequiredField).
			WithOperation("pipeline.RegisterAlias")
	}

	alias = normalizeName(alias)
	name = normalizeName(name)

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.definitions[name]; !exists {
		return strexterrors.UnknownOperation(name)
	}
	if _, exists := r.definitions[alias]; exists {
		return strexterror.New("alias " + alias + " shadows an operation").
			WithCode(strexterror.CodeValidationFailed).
			WithOperation("pipeline.RegisterAlias").
			WithDetail("alias", alias)
	}

	r.aliases[alias] = name
	return nil
}

// Lookup resolves name, or an alias of it, to a definition. Names are
// matched case-insensitively and underscores or spaces count as hyphens.
func (r *Registry) Lookup(name string) (*Definition, error) {
	key := normalizeName(name)

	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if target, ok := r.aliases[key]; ok {
		key = target
	}
	def, ok := r.definitions[key]
	if !ok {
		return nil, strexterrors.UnknownOperation(name)
	}
	return def, nil
}

// Has reports whether name resolves to an operation
func (r *Registry) Has(name string) bool {
	_, err := r.Lookup(name)
	return err == nil
}

// Names returns the registered operation names in sorted order
func (r *Registry) Names() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	names := make([]string, 0, len(r.definitions))
	for name := range r.definitions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Definitions returns all definitions sorted by name
func (r *Registry) Definitions() []*Definition {
	names := r.Names()

	r.mutex.RLock()
	defer r.mutex.RUnlock()

	defs := make([]*Definition, len(names))
	for i, name := range names {
		defs[i] = r.definitions[name]
	}
	return defs
}

// Aliases returns a copy of the alias table
func (r *Registry) Aliases() map[string]string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	out := make(map[string]string, len(r.aliases))
	for k, v := range r.aliases {
		out[k] = v
	}
	return out
}

// AliasesOf returns the aliases pointing at name, sorted
func (r *Registry) AliasesOf(name string) []string {
	name = normalizeName(name)

	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var out []string
	for alias, target := range r.aliases {
		if target == name {
			out = append(out, alias)
		}
	}
	sort.Strings(out)
	return out
}

func normalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer("_", "-", " ", "-").Replace(name)
}
