package throttle

import (
	"github.com/invopop/jsonschema"
)

// ConfigSchema returns the JSON schema for Config, for validating config
// files in editors and CI pipelines.
func ConfigSchema() *jsonschema.Schema {
	reflector := &jsonschema.Reflector{
		ExpandedStruct: true,
		DoNotReference: true,
	}
	return reflector.Reflect(&Config{})
}
