/*
Package req provides helper functions for HTTP request parsing and data binding.

It encapsulates strict JSON body decoding with unified error handling so
handlers only deal with well-formed input structs.
*/
package req

import (
	"encoding/json"
	"net/http"
	"strings"

	"hpzbot/internal/pkg/errs"
)

// MaxBodySize limits chat request bodies. The frontend sends short JSON
// messages; anything near this limit is hostile.
const MaxBodySize int64 = 10 << 20 // 10 MB

// BindJSON binds the JSON request body to the destination struct dst.
// Unknown fields are tolerated (the frontend ships extra context keys),
// but trailing content and malformed JSON are rejected.
func BindJSON(r *http.Request, dst any) *errs.CustomError {
	contentType := r.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "application/json") {
		return errs.NewError(errs.ErrUnsupportedMediaType)
	}

	decoder := json.NewDecoder(http.MaxBytesReader(nil, r.Body, MaxBodySize))

	if err := decoder.Decode(dst); err != nil {
		return errs.NewError(errs.ErrInvalidJSONFormat)
	}

	if decoder.More() {
		return errs.NewError(errs.ErrExtraContentInBody)
	}

	return nil
}
