package jpick

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// Load reads the named JSON file from dir and decodes it as an ordered
// document list. The base directory is an explicit parameter; Load never
// consults the process working directory on its own.
//
// Failure modes are distinguishable with errors.Is: ErrNotFound when the
// file is missing or unreadable, ErrInvalidJSON when its contents do not
// parse, ErrNotList when the top-level value is not an array.
func Load(dir, name string) (A, error) {
	path := filepath.Join(dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
	}

	var v any
	err = json.Unmarshal(data, &v,
		json.WithUnmarshalers(Unmarshalers()),
		jsontext.AllowDuplicateNames(true))
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", path, ErrInvalidJSON, err)
	}

	list, ok := v.(A)
	if !ok {
		return nil, fmt.Errorf("%s: got %T: %w", path, v, ErrNotList)
	}
	return list, nil
}
