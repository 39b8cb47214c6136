package graphql

import (
	"encoding/json"
	"log/slog"
	"net/http"

	graphqlgo "github.com/graph-gophers/graphql-go"
	gqlerrors "github.com/graph-gophers/graphql-go/errors"
)

// NewHandler serves POSTed query documents. When playground is enabled, a
// GET on the same path returns the GraphiQL page instead.
func NewHandler(schema *graphqlgo.Schema, playground bool, logger *slog.Logger) http.Handler {
	if schema == nil {
		panic("graphql schema cannot be nil")
	}
	return &handler{
		schema:     schema,
		playground: playground,
		logger:     logger.With("component", "GraphQLHandler"),
	}
}

type handler struct {
	schema     *graphqlgo.Schema
	playground bool
	logger     *slog.Logger
}

type queryRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

func (h *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.serveQuery(w, r)
	case http.MethodGet:
		if !h.playground {
			w.Header().Set("Allow", http.MethodPost)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		h.logger.DebugContext(r.Context(), "Serving GraphQL playground")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(playgroundPage)
	default:
		allow := http.MethodPost
		if h.playground {
			allow = "GET, POST"
		}
		w.Header().Set("Allow", allow)
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}
}

func (h *handler) serveQuery(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(r.Context(), "Undecodable GraphQL request body", slog.Any("error", err))
		writeResponse(w, http.StatusBadRequest, &graphqlgo.Response{
			Errors: []*gqlerrors.QueryError{gqlerrors.Errorf("request body is not a valid JSON query document: %s", err)},
		})
		return
	}

	resp := h.schema.Exec(r.Context(), req.Query, req.OperationName, req.Variables)
	if len(resp.Errors) > 0 {
		h.logger.DebugContext(r.Context(), "GraphQL query returned errors", slog.Int("errors", len(resp.Errors)))
	}
	writeResponse(w, http.StatusOK, resp)
}

func writeResponse(w http.ResponseWriter, status int, resp *graphqlgo.Response) {
	body, err := json.Marshal(resp)
	if err != nil {
		http.Error(w, `{"errors":[{"message":"failed to encode response"}]}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
