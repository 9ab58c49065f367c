package swaggerkit

import (
	_ "embed"
	"net/http"
	"strconv"
)

//go:embed openapi.json
var doc []byte

func serveDocJSON(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(doc)))
	_, _ = w.Write(doc)
}
