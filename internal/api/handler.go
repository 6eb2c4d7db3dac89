package api

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/bfhlabs/bfhl-api-go/internal/classify"
	"github.com/bfhlabs/bfhl-api-go/internal/generate"
	"github.com/bfhlabs/bfhl-api-go/internal/signer"
)

//go:embed index.html
var indexHTML []byte

// Identity holds the static fields echoed on every successful
// classification response.
type Identity struct {
	UserName   string
	Email      string
	RollNumber string
}

// Handler implements all HTTP endpoints.
type Handler struct {
	identity Identity
	signer   *signer.Signer // nil when response signing is disabled
	maxGen   int
}

// New creates a Handler. Pass a non-nil signer to enable response signing.
func New(id Identity, s *signer.Signer, generateMaxCount int) *Handler {
	return &Handler{
		identity: id,
		signer:   s,
		maxGen:   generateMaxCount,
	}
}

// Register mounts routes on the given mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.health)
	mux.HandleFunc("POST /bfhl", h.classify)
	mux.HandleFunc("GET /bfhl", h.info)
	mux.HandleFunc("GET /bfhl/generate", h.generate)
	mux.HandleFunc("GET /", h.serveUI)
}

// ---------- endpoints ----------

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":   "healthy",
		"message":  "classification API is running",
		"endpoint": "/bfhl",
		"method":   http.MethodPost,
	})
}

// classifyResponse is the success payload for POST /bfhl.
type classifyResponse struct {
	IsSuccess  bool   `json:"is_success"`
	UserID     string `json:"user_id"`
	Email      string `json:"email"`
	RollNumber string `json:"roll_number"`
	classify.Result
}

func (h *Handler) classify(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if len(req.Data) == 0 {
		writeFailure(w, http.StatusBadRequest, "missing 'data' field in request")
		return
	}

	// Decode with UseNumber so numeric scalars keep their wire literal.
	var values []any
	dec := json.NewDecoder(bytes.NewReader(req.Data))
	dec.UseNumber()
	if err := dec.Decode(&values); err != nil {
		writeFailure(w, http.StatusBadRequest, "'data' must be an array")
		return
	}
	if values == nil { // "data": null
		writeFailure(w, http.StatusBadRequest, "'data' must be an array")
		return
	}

	result, err := classify.Process(classify.Stringify(values))
	if err != nil {
		slog.Error("classification failed", "err", err)
		writeFailure(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := classifyResponse{
		IsSuccess:  true,
		UserID:     h.identity.UserName + "_" + time.Now().Format("02012006"),
		Email:      h.identity.Email,
		RollNumber: h.identity.RollNumber,
		Result:     result,
	}

	body, err := json.Marshal(resp)
	if err != nil {
		writeFailure(w, http.StatusInternalServerError, "encode response: "+err.Error())
		return
	}

	if h.signer != nil {
		sig, err := h.signer.Sign(body)
		if err != nil {
			slog.Error("response signing failed", "err", err)
		} else {
			w.Header().Set("X-Signature", sig)
			w.Header().Set("X-Signer-Address", h.signer.Address())
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func (h *Handler) info(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "token classification API",
		"usage":   "Send POST request with JSON body containing 'data' array",
		"examples": map[string][]string{
			"basic":            {"a", "1", "334", "4", "R", "$"},
			"mixed":            {"2", "a", "y", "4", "&", "-", "*", "5", "92", "b"},
			"alphabets_only":   {"A", "ABcD", "DOE"},
			"numbers_only":     {"1", "2", "3", "4", "5"},
			"special_chars":    {"@", "#", "$", "%", "&"},
			"negative_numbers": {"-1", "2", "a", "B", "&"},
			"empty":            {},
		},
		"endpoint":        "/bfhl",
		"method":          http.MethodPost,
		"generate_data":   "/bfhl/generate",
		"method_generate": http.MethodGet,
	})
}

func (h *Handler) generate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	dataType := q.Get("type")
	if dataType == "" {
		dataType = "random"
	}
	count, err := intParam(q, "count", 10)
	if err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid 'count': "+err.Error())
		return
	}
	minLen, err := intParam(q, "min_length", 1)
	if err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid 'min_length': "+err.Error())
		return
	}
	maxLen, err := intParam(q, "max_length", 5)
	if err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid 'max_length': "+err.Error())
		return
	}

	if count > h.maxGen {
		count = h.maxGen
	}
	data := generate.Generate(generate.Options{
		Type:     dataType,
		Count:    count,
		MinLen:   minLen,
		MaxLen:   maxLen,
		MaxCount: h.maxGen,
	})

	writeJSON(w, http.StatusOK, map[string]any{
		"is_success":     true,
		"generated_data": data,
		"parameters": map[string]any{
			"type":       dataType,
			"count":      count,
			"min_length": minLen,
			"max_length": maxLen,
		},
		"usage":           "Use this data in POST /bfhl endpoint",
		"example_request": map[string]any{"data": data},
	})
}

func (h *Handler) serveUI(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(indexHTML)
}

// ---------- helpers ----------

func intParam(q url.Values, name string, def int) (int, error) {
	raw := q.Get(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeFailure(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{
		"is_success": false,
		"error":      msg,
	})
}
