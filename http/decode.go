package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/pkg/errors"
)

// decodeBody decodes a single JSON value keeping numbers as json.Number. An
// empty body decodes as an empty object; anything after the value other than
// whitespace is an error.
func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	if err := dec.Decode(&json.RawMessage{}); !errors.Is(err, io.EOF) {
		return errors.New("unexpected data after JSON body")
	}
	return nil
}
