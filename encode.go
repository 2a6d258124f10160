package jpick

import (
	"fmt"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// Marshalers returns the jpick marshalers. A D marshals as a JSON object
// replaying its entries in order, so field order (and duplicate keys, when
// the encoder permits them) is written exactly as held in the document.
// A needs no custom marshaler; it encodes as a plain array, and nested D
// values inside it are still routed here.
func Marshalers() *json.Marshalers {
	return json.JoinMarshalers(marshalDocument())
}

func marshalDocument() *json.Marshalers {
	return json.MarshalToFunc(func(enc *jsontext.Encoder, doc D) error {
		if err := enc.WriteToken(jsontext.BeginObject); err != nil {
			return fmt.Errorf("write object open: %w", err)
		}
		for _, e := range doc {
			if err := enc.WriteToken(jsontext.String(e.Key)); err != nil {
				return fmt.Errorf("write object key %q: %w", e.Key, err)
			}
			if err := json.MarshalEncode(enc, e.Value); err != nil {
				return fmt.Errorf("write object value for key %q: %w", e.Key, err)
			}
		}
		if err := enc.WriteToken(jsontext.EndObject); err != nil {
			return fmt.Errorf("write object close: %w", err)
		}
		return nil
	})
}
