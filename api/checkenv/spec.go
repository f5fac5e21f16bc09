package checkenv

import (
	"os"
	"strings"
)

const (
	// DefaultProductionVar is the discriminator consulted for unsafe checks.
	DefaultProductionVar = "NODE_ENV"
	// DefaultProductionValue activates unsafe checks.
	DefaultProductionValue = "production"
)

// Env is an environment snapshot. A name is set iff it maps to a non-empty value.
type Env map[string]string

// IsSet reports whether name has a non-empty value.
func (e Env) IsSet(name string) bool { return e[name] != "" }

// Environ snapshots the process environment.
func Environ() Env {
	pairs := os.Environ()
	env := make(Env, len(pairs))
	for _, kv := range pairs {
		k, v, _ := strings.Cut(kv, "=")
		env[k] = v
	}
	return env
}

//go:generate mockgen -destination=mocks/mock_reporter.go -package=mocks github.com/tbeaudouin05/checkenv/api/checkenv Reporter

// Reporter receives one call per offending name.
type Reporter interface {
	Missing(name string)
	Optional(name string)
	Unsafe(name string)
}

// Spec declares which variables to check and how to report them.
// Nil callbacks fall back to DisplayMissing, DisplayOptional and DisplayUnsafe.
type Spec struct {
	Required NameList
	// Optional names are reported when unset but never fail the check.
	Optional NameList
	// Unsafe names must not be set while ProductionVar equals ProductionValue.
	Unsafe NameList

	// NoThrow suppresses the returned error. Callbacks still run.
	NoThrow bool

	ProductionVar   string
	ProductionValue string

	LogMissing  func(name string)
	LogOptional func(name string)
	LogUnsafe   func(name string)
}

// Use routes all callbacks to r.
func (s *Spec) Use(r Reporter) {
	s.LogMissing = r.Missing
	s.LogOptional = r.Optional
	s.LogUnsafe = r.Unsafe
}

// IsEmpty reports whether no names are declared in any category.
func (s Spec) IsEmpty() bool {
	return len(s.Required.Normalize()) == 0 &&
		len(s.Optional.Normalize()) == 0 &&
		len(s.Unsafe.Normalize()) == 0
}

// Production reports whether the discriminator in env selects production.
func (s Spec) Production(env Env) bool {
	key, want := s.ProductionVar, s.ProductionValue
	if key == "" {
		key = DefaultProductionVar
	}
	if want == "" {
		want = DefaultProductionValue
	}
	return env[key] == want
}

// Result lists the offending names per category in declaration order.
type Result struct {
	Required []string
	Optional []string
	Unsafe   []string
}

// OK reports whether nothing would fail the check.
func (r Result) OK() bool { return len(r.Required) == 0 && len(r.Unsafe) == 0 }
