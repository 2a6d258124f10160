package jpick

import "fmt"

// Project reduces every record in the list to the keys named by the KeySpec,
// in KeySpec order. The whole batch is validated fail-fast: the first element
// that is not an object, or that lacks a requested key, aborts the run with
// no partial result.
//
// If a source object carries duplicate keys, the first occurrence wins. If
// the KeySpec carries duplicate keys, the projected document repeats the
// entry.
func Project(records A, keys KeySpec) ([]D, error) {
	out := make([]D, 0, len(records))
	for i, rec := range records {
		doc, ok := rec.(D)
		if !ok {
			return nil, fmt.Errorf("record %d: got %T: %w", i, rec, ErrNotObject)
		}
		proj := make(D, 0, len(keys))
		for _, key := range keys {
			v, ok := doc.Value(key)
			if !ok {
				return nil, fmt.Errorf("record %d: key %q: %w", i, key, ErrMissingKey)
			}
			proj = append(proj, E{Key: key, Value: v})
		}
		out = append(out, proj)
	}
	return out, nil
}
