package v1

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/rescuenet_portal/internal/gateway"
	"github.com/shenikar/rescuenet_portal/internal/service"
	"github.com/sirupsen/logrus"
)

// maxImageBytes - предельный размер фото инцидента
const maxImageBytes = 10 << 20

const analysisFailedMessage = "Image analysis failed. Please try again."

var errImageTooLarge = fmt.Errorf("image exceeds %d bytes: %w", maxImageBytes, service.ErrValidation)

// @Summary Get incident report state
// @Tags Reports
// @Produce json
// @Param X-Session-ID header string false "Session ID"
// @Success 200 {object} models.ReportSnapshot
// @Router /reports [get]
func (h *Handler) getReport(c *gin.Context) {
	c.JSON(http.StatusOK, currentSession(c).Reporting.Snapshot())
}

// @Summary Get incident photo
// @Description Returns the loaded photo with its detected content type
// @Tags Reports
// @Produce png,jpeg,octet-stream
// @Param X-Session-ID header string false "Session ID"
// @Success 200 {file} file "Photo bytes"
// @Failure 404 {object} map[string]string "No image loaded"
// @Router /reports/image [get]
func (h *Handler) getReportImage(c *gin.Context) {
	data, mimeType, err := currentSession(c).Reporting.Image()
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no image loaded"})
		return
	}
	c.Data(http.StatusOK, mimeType, data)
}

// @Summary Upload incident photo
// @Description Accepts a multipart "image" file or JSON with a base64 payload or data URI. The type is sniffed from content.
// @Tags Reports
// @Accept json,mpfd
// @Produce json
// @Param X-Session-ID header string false "Session ID"
// @Param image formData file false "Photo"
// @Param upload body UploadImageRequest false "Base64 photo"
// @Success 200 {object} models.ReportSnapshot
// @Failure 400 {object} map[string]string "Not an image or invalid payload"
// @Router /reports/image [post]
func (h *Handler) uploadImage(c *gin.Context) {
	log := h.logger.WithField("method", "uploadImage")

	data, declared, ok := h.readImage(c, log)
	if !ok {
		return
	}

	snapshot, err := currentSession(c).Reporting.LoadImage(data, declared)
	if err != nil {
		h.respondError(c, log, err, "")
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// @Summary Remove incident photo
// @Tags Reports
// @Produce json
// @Param X-Session-ID header string false "Session ID"
// @Success 200 {object} models.ReportSnapshot
// @Router /reports/image [delete]
func (h *Handler) removeImage(c *gin.Context) {
	c.JSON(http.StatusOK, currentSession(c).Reporting.RemoveImage())
}

// @Summary Analyze incident photo
// @Description Sends the loaded photo for a severity assessment. On failure the photo stays loaded and the analysis is cleared.
// @Tags Reports
// @Produce json
// @Param X-Session-ID header string false "Session ID"
// @Success 200 {object} models.ReportSnapshot
// @Failure 400 {object} map[string]string "No image loaded"
// @Failure 409 {object} map[string]string "Analysis in progress or superseded"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 502 {object} map[string]any "Analysis failed"
// @Router /reports/analyze [post]
func (h *Handler) analyzeImage(c *gin.Context) {
	log := h.logger.WithField("method", "analyzeImage")

	snapshot, err := currentSession(c).Reporting.Analyze(c.Request.Context())
	if err != nil {
		if errors.Is(err, gateway.ErrServiceFailure) || errors.Is(err, gateway.ErrMalformedResponse) {
			log.WithError(err).Error("Incident image analysis failed")
			c.JSON(http.StatusBadGateway, gin.H{"error": analysisFailedMessage, "report": snapshot})
			return
		}
		h.respondError(c, log, err, analysisFailedMessage)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// readImage достает байты фото из multipart-формы или JSON. При ошибке сам отвечает клиенту.
func (h *Handler) readImage(c *gin.Context, log *logrus.Entry) ([]byte, string, bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, 2*maxImageBytes)

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		file, err := c.FormFile("image")
		if err != nil {
			log.WithError(err).Warn("Missing image form file")
			c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
			return nil, "", false
		}
		f, err := file.Open()
		if err != nil {
			h.respondError(c, log, err, "")
			return nil, "", false
		}
		defer f.Close()

		data, err := io.ReadAll(io.LimitReader(f, maxImageBytes+1))
		if err != nil {
			h.respondError(c, log, err, "")
			return nil, "", false
		}
		if len(data) > maxImageBytes {
			h.respondError(c, log, errImageTooLarge, "")
			return nil, "", false
		}
		return data, file.Header.Get("Content-Type"), true
	}

	var input UploadImageRequest
	if !h.bindJSON(c, log, &input) {
		return nil, "", false
	}
	data, mimeType, err := decodeImagePayload(input.Image)
	if err != nil {
		h.respondError(c, log, err, "")
		return nil, "", false
	}
	if len(data) > maxImageBytes {
		h.respondError(c, log, errImageTooLarge, "")
		return nil, "", false
	}
	if mimeType == "" {
		mimeType = input.MIMEType
	}
	return data, mimeType, true
}

// decodeImagePayload принимает data URI или голый base64
func decodeImagePayload(payload string) ([]byte, string, error) {
	raw := []byte(strings.TrimSpace(payload))
	if bytes.HasPrefix(raw, []byte("data:")) {
		return gateway.StripDataURI(raw)
	}

	data, err := base64.StdEncoding.DecodeString(string(raw))
	if err != nil {
		return nil, "", fmt.Errorf("invalid base64 image payload: %w", service.ErrValidation)
	}
	return data, "", nil
}
