package repositories

import (
	"encoding/json"
	"fmt"
	gohttp "net/http"
	"time"

	"github.com/shashiranjanraj/bizdesk/pkg/http"
	"github.com/shashiranjanraj/bizdesk/pkg/store"
)

// Remote proxies CRUD calls to an upstream BizDesk API. Useful when this
// process is a thin edge in front of a central instance.
type Remote[T store.Record] struct {
	base  string // e.g. http://host:8080/api
	path  string // resource segment, e.g. "inventory"
	token string
}

func NewRemote[T store.Record](base, path, token string) *Remote[T] {
	return &Remote[T]{base: base, path: path, token: token}
}

// apiEnvelope mirrors the response package's wire shape.
type apiEnvelope struct {
	Status int               `json:"status"`
	Data   json.RawMessage   `json:"data"`
	Errors map[string]string `json:"errors"`
}

func (r *Remote[T]) url(parts ...any) string {
	u := r.base + "/" + r.path
	for _, p := range parts {
		u += fmt.Sprintf("/%v", p)
	}
	return u
}

func (r *Remote[T]) send(req *http.Request) (*apiEnvelope, error) {
	if r.token != "" {
		req = req.Bearer(r.token)
	}
	resp, err := req.Timeout(10 * time.Second).Retry(3, 500*time.Millisecond).Send()
	if err != nil {
		return nil, err
	}

	var env apiEnvelope
	if err := resp.JSON(&env); err != nil {
		return nil, err
	}

	switch {
	case resp.StatusCode == gohttp.StatusNotFound:
		return nil, store.ErrNotFound
	case resp.StatusCode == gohttp.StatusUnprocessableEntity:
		return nil, &store.ValidationError{Fields: env.Errors}
	case !resp.OK():
		return nil, resp.Throw()
	}
	return &env, nil
}

func (r *Remote[T]) All() ([]T, error) {
	env, err := r.send(http.Get(r.url()))
	if err != nil {
		return nil, err
	}
	var recs []T
	if err := json.Unmarshal(env.Data, &recs); err != nil {
		return nil, fmt.Errorf("remote %s: decode list: %w", r.path, err)
	}
	return recs, nil
}

func (r *Remote[T]) Find(id int64) (T, error) {
	var zero T
	env, err := r.send(http.Get(r.url(id)))
	if err != nil {
		return zero, err
	}
	return r.decodeOne(env.Data)
}

func (r *Remote[T]) Count() (int, error) {
	recs, err := r.All()
	if err != nil {
		return 0, err
	}
	return len(recs), nil
}

func (r *Remote[T]) Create(rec T) (T, error) {
	var zero T
	env, err := r.send(http.Post(r.url()).Body(rec))
	if err != nil {
		return zero, err
	}
	return r.decodeOne(env.Data)
}

func (r *Remote[T]) Update(id int64, rec T) (T, error) {
	var zero T
	env, err := r.send(http.Put(r.url(id)).Body(rec))
	if err != nil {
		return zero, err
	}
	return r.decodeOne(env.Data)
}

func (r *Remote[T]) Delete(id int64) error {
	_, err := r.send(http.Delete(r.url(id)))
	return err
}

func (r *Remote[T]) decodeOne(raw json.RawMessage) (T, error) {
	rec := newRecord[T]()
	if err := json.Unmarshal(raw, rec); err != nil {
		var zero T
		return zero, fmt.Errorf("remote %s: decode record: %w", r.path, err)
	}
	return rec, nil
}
