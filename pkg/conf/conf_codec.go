package conf

import (
	"github.com/pelletier/go-toml/v2"
)

/**
 * @file: conf_codec.go
 * @description: toml codec
 */

const Name = "toml"

// Marshal renders v as TOML.
func Marshal(v any) ([]byte, error) {
	return toml.Marshal(v)
}

func Unmarshal(data []byte, v any) error {
	return toml.Unmarshal(data, v)
}
