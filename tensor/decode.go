package tensor

import (
	"encoding/json"
	"fmt"

	"github.com/amikos-tech/pure-shape/shape"
	"gopkg.in/yaml.v3"
)

// DecodeJSON decodes a JSON document of nested arrays into a tensor,
// e.g. `[[1, 2], [3, 4]]`.
func DecodeJSON[T any](data []byte, opts ...shape.Option) (*Tensor[T], error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode JSON tensor: %w", err)
	}
	return FromNested[T](doc, opts...)
}

// DecodeYAML decodes a YAML document of nested sequences into a tensor.
func DecodeYAML[T any](data []byte, opts ...shape.Option) (*Tensor[T], error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode YAML tensor: %w", err)
	}
	return FromNested[T](doc, opts...)
}
