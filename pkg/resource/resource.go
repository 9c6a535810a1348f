// Package resource shapes API output. A Transformer decides exactly which
// fields of a model leave the server, so endpoints like the user list never
// leak password hashes no matter what the model carries.
//
//	type UserResource struct{ resource.Base }
//	func (UserResource) ToArray(v any) resource.Map {
//	    u := v.(models.User)
//	    return resource.Map{"id": u.ID, "name": u.Name, "email": u.Email}
//	}
//
//	resource.New(UserResource{}, user).Respond(w)
//	resource.CollectionOf(UserResource{}, users).Respond(w)
package resource

import (
	"encoding/json"
	"net/http"
)

// Map is the output shape of ToArray.
type Map = map[string]any

// Transformer converts one model instance into its public representation.
type Transformer interface {
	ToArray(v any) Map
}

// Base can be embedded in a resource to pick up future shared behavior.
type Base struct{}

// Resource pairs a single model with its transformer.
type Resource struct {
	transformer Transformer
	data        any
}

// New creates a Resource for a single model instance.
func New(t Transformer, data any) *Resource {
	return &Resource{transformer: t, data: data}
}

// MarshalJSON lets a Resource nest inside another JSON payload.
func (r *Resource) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.transformer.ToArray(r.data))
}

// Respond writes {"data": <transformed>} with status 200.
func (r *Resource) Respond(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, Map{"data": r.transformer.ToArray(r.data)})
}

// Collection pairs a slice of models with a transformer.
type Collection struct {
	transformer Transformer
	items       any
}

// CollectionOf creates a Collection. items should be a []SomeModel; the
// store also hands over []map[string]any for raw collection documents, and
// transformers handle both.
func CollectionOf(t Transformer, items any) *Collection {
	return &Collection{transformer: t, items: items}
}

// Respond writes {"data": [<transformed>...]} with status 200.
func (c *Collection) Respond(w http.ResponseWriter) {
	// A JSON round-trip walks the slice without reflection on the element
	// type. These are admin list endpoints; the extra marshal is cheap
	// relative to reading the collection blob.
	raw, _ := json.Marshal(c.items)
	var rawSlice []json.RawMessage
	_ = json.Unmarshal(raw, &rawSlice)

	result := make([]any, 0, len(rawSlice))
	for _, item := range rawSlice {
		var v any
		_ = json.Unmarshal(item, &v)
		result = append(result, c.transformer.ToArray(v))
	}

	writeJSON(w, http.StatusOK, Map{"data": result})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
