package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tbeaudouin05/checkenv/api/checkenv"
)

// Manifest is the YAML form of a checkenv.Spec.
//
//	productionVar: APP_ENV
//	required:
//	  - DATABASE_URL
//	  - name: SENTRY_DSN
//	    productionOnly: true
//	optional: [LOG_LEVEL]
//	unsafe: [INSECURE_COOKIES]
type Manifest struct {
	ProductionVar   string  `yaml:"productionVar"`
	ProductionValue string  `yaml:"productionValue"`
	NoThrow         bool    `yaml:"noThrow"`
	Required        []Entry `yaml:"required"`
	Optional        []Entry `yaml:"optional"`
	Unsafe          []Entry `yaml:"unsafe"`
}

// Entry is a variable name, optionally only checked in production.
type Entry struct {
	Name           string `yaml:"name"`
	ProductionOnly bool   `yaml:"productionOnly"`
}

// UnmarshalYAML accepts either a bare name or a {name, productionOnly} mapping.
func (e *Entry) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var name string
		if err := value.Decode(&name); err != nil {
			return err
		}
		*e = Entry{Name: name}
	case yaml.MappingNode:
		type plain Entry
		var p plain
		if err := decodeStrict(value, &p); err != nil {
			return err
		}
		*e = Entry(p)
	default:
		return fmt.Errorf("line %d: entry must be a name or a mapping", value.Line)
	}
	if e.Name == "" {
		return fmt.Errorf("line %d: entry has no name", value.Line)
	}
	return nil
}

// decodeStrict rejects unknown keys inside an entry mapping.
func decodeStrict(node *yaml.Node, out any) error {
	for i := 0; i+1 < len(node.Content); i += 2 {
		switch key := node.Content[i].Value; key {
		case "name", "productionOnly":
		default:
			return fmt.Errorf("line %d: unknown entry field %q", node.Content[i].Line, key)
		}
	}
	return node.Decode(out)
}

// ParseManifest decodes a manifest, rejecting unknown top-level keys.
func ParseManifest(data []byte) (Manifest, error) {
	var m Manifest
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return Manifest{}, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return m, nil
}

// LoadManifest reads and parses the manifest at path.
func LoadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("failed to read manifest: %w", err)
	}
	m, err := ParseManifest(data)
	if err != nil {
		return Manifest{}, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Spec resolves the manifest against env. Production-only entries become
// placeholders when env is not in production.
func (m Manifest) Spec(env checkenv.Env) checkenv.Spec {
	spec := checkenv.Spec{
		NoThrow:         m.NoThrow,
		ProductionVar:   m.ProductionVar,
		ProductionValue: m.ProductionValue,
	}
	prod := spec.Production(env)
	spec.Required = resolve(m.Required, prod)
	spec.Optional = resolve(m.Optional, prod)
	spec.Unsafe = resolve(m.Unsafe, prod)
	return spec
}

func resolve(entries []Entry, prod bool) checkenv.NameList {
	list := make(checkenv.NameList, 0, len(entries))
	for _, e := range entries {
		list = append(list, checkenv.When(!e.ProductionOnly || prod, e.Name))
	}
	return list
}
