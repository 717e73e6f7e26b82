package oauth

import (
	"encoding/json"
	"log/slog"
	"mime"
	"net/http"

	"github.com/getmockd/hrmockd/pkg/logging"
)

const invalidRequestDescription = "Invalid grant_type or missing credentials"

// Handler provides the token endpoint.
type Handler struct {
	provider *Provider
	log      *slog.Logger
}

// NewHandler creates the token endpoint handler. A nil logger discards output.
func NewHandler(provider *Provider, log *slog.Logger) *Handler {
	if log == nil {
		log = logging.Nop()
	}
	return &Handler{provider: provider, log: log}
}

// HandleToken handles POST /oauth/token.
func (h *Handler) HandleToken(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.errorResponse(w, http.StatusMethodNotAllowed, ErrInvalidRequest, "method not allowed")
		return
	}

	req, ok := h.decode(r)
	if !ok {
		h.errorResponse(w, http.StatusBadRequest, ErrInvalidRequest, invalidRequestDescription)
		return
	}

	// Client credentials from the Authorization header win over the body.
	if id, secret, basic := r.BasicAuth(); basic {
		req.ClientID, req.ClientSecret = id, secret
	}

	h.log.Debug("token request", "grant_type", req.GrantType, "client_id", req.ClientID)

	if !req.Valid() {
		h.errorResponse(w, http.StatusBadRequest, ErrInvalidRequest, invalidRequestDescription)
		return
	}

	resp, err := h.provider.Issue(req.ClientID, req.Scope)
	if err != nil {
		h.log.Error("failed to issue token", "client_id", req.ClientID, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, ErrServerError, "failed to generate access token")
		return
	}
	h.jsonResponse(w, http.StatusOK, resp)
}

// decode reads a JSON or form-encoded body.
func (h *Handler) decode(r *http.Request) (TokenRequest, bool) {
	var req TokenRequest

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		if r.Body == nil || r.ContentLength == 0 {
			return req, true
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return req, false
		}
		return req, true
	}

	if err := r.ParseForm(); err != nil {
		return req, false
	}
	req.GrantType = r.PostFormValue("grant_type")
	req.ClientID = r.PostFormValue("client_id")
	req.ClientSecret = r.PostFormValue("client_secret")
	req.Scope = r.PostFormValue("scope")
	return req, true
}

func (h *Handler) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (h *Handler) errorResponse(w http.ResponseWriter, status int, errorCode, description string) {
	h.jsonResponse(w, status, &ErrorResponse{
		Error:            errorCode,
		ErrorDescription: description,
	})
}
