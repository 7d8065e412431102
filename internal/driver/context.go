package driver

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/vmihailenco/msgpack/v5"
)

// LoadContext reads a render context mapping from disk, dispatching on
// the file extension: .toml, .json, or .msgpack.
func LoadContext(path string) (map[string]any, error) {
	// #nosec G304 -- path is provided by the caller
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	ctx := map[string]any{}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &ctx); err != nil {
			return nil, fmt.Errorf("%s: failed to parse TOML context: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &ctx); err != nil {
			return nil, fmt.Errorf("%s: failed to parse JSON context: %w", path, err)
		}
	case ".msgpack":
		if err := msgpack.Unmarshal(data, &ctx); err != nil {
			return nil, fmt.Errorf("%s: failed to parse msgpack context: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%s: unsupported context format %q (want .toml, .json, or .msgpack)", path, ext)
	}
	return ctx, nil
}
