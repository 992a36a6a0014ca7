package serve

import (
	"encoding/json"
	"encoding/xml"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"fjacquet/financas/cmd/common"
	"fjacquet/financas/internal/logging"
)

// maxBodyBytes caps webhook payloads; chat messages are short.
const maxBodyBytes = 64 << 10

// testUsage is what GET /teste answers.
const testUsage = `Envie POST com {"mensagem": "seu comando"}`

// twimlResponse is the minimal TwiML document carrying one reply.
type twimlResponse struct {
	XMLName xml.Name `xml:"Response"`
	Message string   `xml:"Message"`
}

type testRequest struct {
	Message string `json:"mensagem"`
}

type testResponse struct {
	Reply string `json:"resposta"`
}

type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"mensagem"`
}

type errorResponse struct {
	Error string `json:"erro"`
}

// NewHandler routes the WhatsApp webhook, the JSON test endpoint and a
// health probe to p.
func NewHandler(p common.Processor, webhookPath string, log logging.Logger) http.Handler {
	if log == nil {
		log = logging.Discard()
	}
	h := &handler{processor: p, log: log}

	mux := http.NewServeMux()
	mux.HandleFunc("POST "+webhookPath, h.handleWebhook)
	mux.HandleFunc("GET /teste", h.handleTestStatus)
	mux.HandleFunc("POST /teste", h.handleTestMessage)
	mux.HandleFunc("GET /healthz", handleHealth)
	return h.withRequestLog(mux)
}

type handler struct {
	processor common.Processor
	log       logging.Logger
}

func (h *handler) handleWebhook(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}

	reply, err := h.processor.Process(r.Context(), r.PostForm.Get("Body"))
	if err != nil {
		h.log.WithError(err).Error("Failed to process webhook message")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	out, err := xml.Marshal(twimlResponse{Message: reply})
	if err != nil {
		h.log.WithError(err).Error("Failed to encode TwiML")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write([]byte(xml.Header))
	_, _ = w.Write(out)
}

func (h *handler) handleTestStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{Status: "ok", Message: testUsage})
}

func (h *handler) handleTestMessage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req testRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "mensagem muito grande"})
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "JSON inválido"})
		return
	}

	reply, err := h.processor.Process(r.Context(), req.Message)
	if err != nil {
		h.log.WithError(err).Error("Failed to process test message")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "erro interno"})
		return
	}
	writeJSON(w, http.StatusOK, testResponse{Reply: reply})
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// withRequestLog logs every request with its status and duration.
func (h *handler) withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()
		w.Header().Set("X-Request-Id", requestID)
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		h.log.Debug("Request completed",
			logging.F(logging.FieldRequestID, requestID),
			logging.F(logging.FieldMethod, r.Method),
			logging.F(logging.FieldPath, r.URL.Path),
			logging.F(logging.FieldStatus, rw.statusCode),
			logging.F(logging.FieldDuration, time.Since(start).Milliseconds()),
			logging.F(logging.FieldRemote, r.RemoteAddr))
	})
}

// responseWriter captures the status code for logging.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
