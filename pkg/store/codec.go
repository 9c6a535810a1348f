package store

import "encoding/json"

// Codec converts a collection to and from the textual blob the backend
// persists. The default is JSON, matching the shape the browser app wrote to
// localStorage, so existing exports stay readable.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, dest any) error
}

// JSONCodec is the default Codec.
type JSONCodec struct{}

func (JSONCodec) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

func (JSONCodec) Unmarshal(data []byte, dest any) error { return json.Unmarshal(data, dest) }
