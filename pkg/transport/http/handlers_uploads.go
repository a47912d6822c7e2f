package http

import (
	"net/http"

	"github.com/profkom/profkom-backend/pkg/api"
	"github.com/profkom/profkom-backend/pkg/observability"
	"github.com/profkom/profkom-backend/pkg/transport"
)

// maxUploadSize bounds a single multipart upload.
const maxUploadSize = 10 << 20 // 10 MB

// uploadResponse is the body returned after a successful upload.
type uploadResponse struct {
	URL string `json:"url"`
}

// upload stores one multipart file under the "file" form field and
// returns its public URL.
func (h *Handlers) upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	file, header, err := r.FormFile("file")
	if err != nil {
		observability.UploadsTotal.WithLabelValues("error").Inc()
		transport.WriteAPIError(w, api.NewInvalidRequestError("file", "multipart field \"file\" is required"))
		return
	}
	defer file.Close()

	url, err := h.saver.Save(header.Filename, file)
	if err != nil {
		observability.UploadsTotal.WithLabelValues("error").Inc()
		h.logger.Error("storing upload", "filename", header.Filename, "error", err)
		transport.WriteError(w, err)
		return
	}

	observability.UploadsTotal.WithLabelValues("ok").Inc()
	h.logger.Info("file uploaded", "filename", header.Filename, "url", url)
	h.writeJSON(w, http.StatusCreated, uploadResponse{URL: url})
}
