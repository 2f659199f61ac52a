//go:build ignore

// gen_schema.go generates a JSON schema for game2048.yaml from the
// environment config types.
//
// Usage:
//
//	go run gen_schema.go [output-path]
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"time"

	"github.com/invopop/jsonschema"
	"github.com/kadirariklar/game-2048-for-k8s/pkg/apis/environment/v1alpha1"
)

const (
	dirPermissions  = 0o750
	filePermissions = 0o600
)

func main() {
	if err := run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	reflector := &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
		FieldNameTag:              "mapstructure",
		Mapper:                    customTypeMapper,
	}
	schema := reflector.Reflect(&v1alpha1.Environment{})

	customizeSchema(schema)

	schemaJSON, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}

	outputPath := "game2048-config.schema.json"
	if len(args) > 1 {
		outputPath = args[1]
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), dirPermissions); err != nil {
		return fmt.Errorf("create directory for %s: %w", outputPath, err)
	}

	if err := os.WriteFile(outputPath, schemaJSON, filePermissions); err != nil {
		return fmt.Errorf("write schema to %s: %w", outputPath, err)
	}

	fmt.Printf("gen_schema: wrote %s (%d bytes)\n", outputPath, len(schemaJSON))

	return nil
}

func customizeSchema(schema *jsonschema.Schema) {
	schema.ID = ""
	schema.Title = "game2048 Environment Configuration"
	schema.Description = "JSON schema for the 2048 demo environment configuration (game2048.yaml)"

	// Every key has a default, so nothing is required.
	walkSchema(schema, func(s *jsonschema.Schema) {
		s.Required = nil
	})

	defaults := v1alpha1.NewEnvironment()
	setDefault(schema, defaults.Readiness.Interval.String(), "readiness", "interval")
	setDefault(schema, defaults.Readiness.NodeTimeout.String(), "readiness", "nodeTimeout")
	setDefault(schema, defaults.Readiness.PodTimeout.String(), "readiness", "podTimeout")
	setDefault(schema, defaults.Cluster.Name, "cluster", "name")
	setDefault(schema, defaults.Hosts.Hostname, "hosts", "hostname")
}

func setDefault(schema *jsonschema.Schema, value any, path ...string) {
	current := schema
	for _, key := range path {
		if current == nil || current.Properties == nil {
			return
		}

		next, ok := current.Properties.Get(key)
		if !ok {
			return
		}

		current = next
	}

	if current != nil {
		current.Default = value
	}
}

// walkSchema traverses the schema tree and calls fn on each node.
func walkSchema(schema *jsonschema.Schema, fn func(*jsonschema.Schema)) {
	if schema == nil {
		return
	}

	fn(schema)

	if schema.Properties != nil {
		for pair := schema.Properties.Oldest(); pair != nil; pair = pair.Next() {
			walkSchema(pair.Value, fn)
		}
	}

	if schema.Items != nil {
		walkSchema(schema.Items, fn)
	}

	if schema.AdditionalProperties != nil {
		walkSchema(schema.AdditionalProperties, fn)
	}
}

// customTypeMapper renders durations the way the config loader parses them.
func customTypeMapper(t reflect.Type) *jsonschema.Schema {
	if t == reflect.TypeFor[time.Duration]() {
		return &jsonschema.Schema{
			Type:    "string",
			Pattern: "^([0-9]+(\\.[0-9]+)?(ns|us|µs|ms|s|m|h))+$",
		}
	}

	return nil
}
