package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"piptrade/internal/platform/config"
	perr "piptrade/internal/platform/errors"
	"piptrade/internal/platform/logger"

	docs "piptrade/internal/services/api/docs"
)

// oasVersion is the newest OpenAPI the bundled UI renders
const oasVersion = "3.0.3"

const wireSchema = "#/components/schemas/ErrorResponse"

// SpecMutator edits the decoded document before it is served
type SpecMutator func(map[string]any)

var (
	mutators []SpecMutator

	// swapped in tests
	docReader = func() string { return docs.SwaggerInfo.ReadDoc() }
)

// Register queues m for every doc.json request, nil is ignored
func Register(m SpecMutator) {
	if m != nil {
		mutators = append(mutators, m)
	}
}

// fallbacks are attached to operations that do not document the status
var fallbacks = []struct {
	status  int
	code    perr.ErrorCode
	example string
}{
	{http.StatusBadRequest, perr.ErrorCodeValidation, "intensity must be 0 or greater"},
	{http.StatusInternalServerError, perr.ErrorCodePanic, "panic recovered"},
}

func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		var spec map[string]any
		if err := json.Unmarshal([]byte(docReader()), &spec); err != nil {
			logger.Named("swagger").Error().Err(err).Msg("embedded doc is not JSON")
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}

		normalize(spec)
		if sfx := config.New().Prefix("CORE_API_").MayString("DOCS_TITLE_SUFFIX", ""); sfx != "" {
			if info, ok := spec["info"].(map[string]any); ok {
				info["title"] = strings.TrimSpace(str(info["title"]) + " " + sfx)
			}
		}
		child(child(spec, "components"), "schemas")["ErrorResponse"] = errorSchema()
		for _, op := range operations(spec) {
			resps := child(op, "responses")
			for _, f := range fallbacks {
				key := strconv.Itoa(f.status)
				if _, ok := resps[key]; !ok {
					resps[key] = errorResponse(f.status, f.code, f.example)
				}
			}
		}
		for _, m := range mutators {
			m(spec)
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}

// normalize pins the document to oasVersion and a root server, the
// legacy /alldata route sits outside /api/v1
func normalize(spec map[string]any) {
	delete(spec, "swagger")
	if v := str(spec["openapi"]); v == "" || strings.HasPrefix(v, "3.1") {
		spec["openapi"] = oasVersion
	}
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{map[string]any{"url": "/"}}
	}
}

func operations(spec map[string]any) []map[string]any {
	paths, _ := spec["paths"].(map[string]any)
	var ops []map[string]any
	for _, p := range paths {
		node, _ := p.(map[string]any)
		for _, o := range node {
			if op, ok := o.(map[string]any); ok {
				ops = append(ops, op)
			}
		}
	}
	return ops
}

// child returns m[key] as an object, creating it when absent
func child(m map[string]any, key string) map[string]any {
	if c, ok := m[key].(map[string]any); ok {
		return c
	}
	c := map[string]any{}
	m[key] = c
	return c
}

func str(v any) string {
	s, _ := v.(string)
	return s
}

func errorSchema() map[string]any {
	prop := func(t string) map[string]any { return map[string]any{"type": t} }
	return map[string]any{
		"type":        "object",
		"description": "Envelope returned by /api/v1 on failure",
		"properties": map[string]any{
			"status_code": prop("integer"),
			"status":      prop("string"),
			"code":        prop("integer"),
			"error":       prop("string"),
			"field":       prop("string"),
			"request_id":  prop("string"),
		},
		"required": []any{"status_code", "status"},
	}
}

func errorResponse(status int, code perr.ErrorCode, msg string) map[string]any {
	return map[string]any{
		"description": http.StatusText(status),
		"content": map[string]any{
			"application/json": map[string]any{
				"schema": map[string]any{"$ref": wireSchema},
				"example": map[string]any{
					"status_code": status,
					"status":      http.StatusText(status),
					"code":        int(code),
					"error":       msg,
				},
			},
		},
	}
}
