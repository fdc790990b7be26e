package display

import (
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/dongsukag/morse-code/errors"
)

// Output formats accepted by Marshal
const (
	FormatTOML = "toml"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Marshal renders v in the named format
func Marshal(format string, v interface{}) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := MarshalJSON(v)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal JSON")
		}
		return append(data, '\n'), nil

	case FormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal YAML")
		}
		return data, nil

	case FormatTOML:
		data, err := toml.Marshal(v)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal TOML")
		}
		return data, nil

	default:
		return nil, errors.WithHintf(
			errors.NewInvalidRequestError("unsupported format %q", format),
			"supported: %s, %s, %s", FormatTOML, FormatJSON, FormatYAML)
	}
}
