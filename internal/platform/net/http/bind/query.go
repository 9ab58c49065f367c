package bind

import (
	"errors"
	"maps"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"sync"

	perr "scorebook/internal/platform/errors"

	"github.com/go-playground/form/v4"
)

var (
	queryOnce sync.Once
	queryDec  *form.Decoder
)

func queryDecoder() *form.Decoder {
	queryOnce.Do(func() {
		queryDec = form.NewDecoder()
		queryDec.SetTagName("query")
	})
	return queryDec
}

// ParseQuery decodes the `query`-tagged fields of T from the URL query and validates it.
// Blank parameters leave the zero value.
func ParseQuery[T any](r *http.Request) (T, error) {
	var dst T
	vals := url.Values{}
	for k, vs := range r.URL.Query() {
		for _, v := range vs {
			if v = strings.TrimSpace(v); v != "" {
				vals.Add(k, v)
			}
		}
	}
	if err := queryDecoder().Decode(&dst, vals); err != nil {
		var derrs form.DecodeErrors
		if errors.As(err, &derrs) {
			names := slices.Sorted(maps.Keys(derrs))
			return dst, perr.WithField(perr.Validationf("%s has an invalid value", names[0]), names[0])
		}
		return dst, perr.Internalf("bind: decode query: %v", err)
	}
	return dst, Validate(dst)
}
