package http

import (
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"freelancernow/internal/domain/document"
	"freelancernow/internal/shared/messages"
)

var (
	documentMeter          = otel.Meter("freelancernow/document")
	documentValidations, _ = documentMeter.Int64Counter("document.validations",
		metric.WithDescription("Document validations by type and outcome"),
	)
)

type DocumentHandler struct {
	catalog *messages.Catalog
	log     *zap.Logger
}

func NewDocumentHandler(catalog *messages.Catalog, log *zap.Logger) *DocumentHandler {
	return &DocumentHandler{catalog: catalog, log: log}
}

type DocumentRequest struct {
	Value string `json:"value"`
}

type FormatResponse struct {
	Formatted    string        `json:"formatted"`
	DocumentType document.Type `json:"documentType"`
}

// HandleFormat masks a partially typed CPF or CNPJ. The form calls it on
// every keystroke, so it never rejects the value itself.
func (h *DocumentHandler) HandleFormat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req DocumentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.log.Debug("invalid format request", zap.Error(err))
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, FormatResponse{
		Formatted:    document.Format(req.Value),
		DocumentType: document.TypeOf(req.Value),
	})
}

// HandleValidate returns the validation result with its message in the
// language negotiated from Accept-Language.
func (h *DocumentHandler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req DocumentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.log.Debug("invalid validate request", zap.Error(err))
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	res := h.catalog.Localize(document.Validate(req.Value), r.Header.Get("Accept-Language"))

	documentValidations.Add(r.Context(), 1, metric.WithAttributes(
		attribute.String("document.type", string(res.Type)),
		attribute.Bool("document.valid", res.Valid),
	))

	writeJSON(w, http.StatusOK, res)
}
