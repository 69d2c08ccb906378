package httpserver

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"TextHumanizer/internal/domain"
	"TextHumanizer/internal/ports"
	"TextHumanizer/internal/sanitize"
)

const maxTextChars = 50_000

// Generic per-route failure messages. Internal error detail never reaches
// the caller.
const (
	paraphraseErrorMessage = "Failed to rewrite the text. Please try again."
	detectErrorMessage     = "Failed to analyze the text. Please try again."
	extractErrorMessage    = "Failed to read the uploaded file."
)

// Handlers owns the route implementations.
type Handlers struct {
	humanizer ports.Humanizer
	detector  ports.Detector
	extractor ports.Extractor
	maxUpload int64
	logger    *slog.Logger
}

// NewHandlers wires the usecases into the HTTP surface.
func NewHandlers(humanizer ports.Humanizer, detector ports.Detector, extractor ports.Extractor, maxUpload int64, logger *slog.Logger) *Handlers {
	if maxUpload <= 0 {
		maxUpload = 10 << 20
	}
	return &Handlers{
		humanizer: humanizer,
		detector:  detector,
		extractor: extractor,
		maxUpload: maxUpload,
		logger:    logger,
	}
}

type styleParamsRequest struct {
	Intensity   *float64 `json:"intensity"`
	Creativity  *float64 `json:"creativity"`
	Naturalness *float64 `json:"naturalness"`
	Complexity  *float64 `json:"complexity"`
}

type humanizeRequest struct {
	Text   string              `json:"text"`
	Mode   string              `json:"mode"`
	Params *styleParamsRequest `json:"params"`
}

type humanizeResponse struct {
	Result    string `json:"result"`
	AIScore   *int   `json:"aiScore"`
	RequestID string `json:"requestId"`
}

// Humanize rewrites the posted text toward the requested style.
// @Summary      Humanize text
// @Description  Rewrite text toward a target style and an AI-likelihood below threshold
// @Tags         humanize
// @Accept       json
// @Produce      json
// @Param        request body humanizeRequest true "Text, mode, and style parameters"
// @Success      200 {object} humanizeResponse
// @Failure      400 {object} object
// @Failure      429 {object} object
// @Failure      502 {object} object
// @Router       /humanize [post]
func (h *Handlers) Humanize(c *gin.Context) {
	var req humanizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "request body must be valid JSON with text, mode, and numeric params")
		return
	}

	if len(req.Text) > maxTextChars {
		badRequest(c, "text exceeds the 50000 character limit")
		return
	}
	text := sanitize.Clean(req.Text)
	if text == "" {
		badRequest(c, "text must not be empty")
		return
	}

	mode, err := domain.ParseMode(req.Mode)
	if err != nil {
		badRequest(c, "unknown mode")
		return
	}

	params, ok := resolveParams(mode, req.Params)
	if !ok {
		badRequest(c, "params must be numbers between 0 and 1")
		return
	}

	style, err := domain.NewRewriteStyle(mode, params)
	if err != nil {
		badRequest(c, "unknown mode")
		return
	}

	result, err := h.humanizer.Run(c.Request.Context(), text, style)
	if err != nil {
		// A superseded/aborted request gets no response body; the client
		// is gone and its state must not observe success or error.
		if c.Request.Context().Err() != nil {
			c.Abort()
			return
		}
		h.logError(c, "humanize pipeline failed", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": paraphraseErrorMessage})
		return
	}

	c.JSON(http.StatusOK, humanizeResponse{
		Result:    result.Text,
		AIScore:   result.AIScore,
		RequestID: requestID(c),
	})
}

// resolveParams fills missing dimensions from the mode defaults and
// rejects out-of-range values. Clamping still happens at the domain
// boundary; the HTTP contract is stricter.
func resolveParams(mode domain.Mode, req *styleParamsRequest) (domain.StyleParams, bool) {
	params := domain.DefaultParams(mode)
	if req == nil {
		return params, true
	}

	for _, dim := range []struct {
		value  *float64
		target *float64
	}{
		{req.Intensity, &params.Intensity},
		{req.Creativity, &params.Creativity},
		{req.Naturalness, &params.Naturalness},
		{req.Complexity, &params.Complexity},
	} {
		if dim.value == nil {
			continue
		}
		if *dim.value < 0 || *dim.value > 1 {
			return domain.StyleParams{}, false
		}
		*dim.target = *dim.value
	}
	return params, true
}

type detectRequest struct {
	Text string `json:"text"`
}

type detectResponse struct {
	AIScore    int      `json:"aiScore"`
	HumanScore int      `json:"humanScore"`
	Confidence string   `json:"confidence"`
	Patterns   []string `json:"patterns"`
	Verdict    string   `json:"verdict"`
	RequestID  string   `json:"requestId"`
}

// Detect scores the posted text for AI likelihood.
// @Summary      Detect AI-generated text
// @Description  Estimate the probability the text was AI-generated
// @Tags         detect
// @Accept       json
// @Produce      json
// @Param        request body detectRequest true "Text to analyze"
// @Success      200 {object} detectResponse
// @Failure      400 {object} object
// @Failure      429 {object} object
// @Failure      502 {object} object
// @Router       /detect [post]
func (h *Handlers) Detect(c *gin.Context) {
	var req detectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "request body must be valid JSON with a text field")
		return
	}

	if len(req.Text) > maxTextChars {
		badRequest(c, "text exceeds the 50000 character limit")
		return
	}
	text := sanitize.Clean(req.Text)
	if text == "" {
		badRequest(c, "text must not be empty")
		return
	}

	verdict := h.detector.Detect(c.Request.Context(), text)
	if verdict.Failed() {
		if c.Request.Context().Err() != nil {
			c.Abort()
			return
		}
		h.logError(c, "detection failed", errors.New("detector returned failure sentinel"))
		c.JSON(http.StatusBadGateway, gin.H{"error": detectErrorMessage})
		return
	}

	c.JSON(http.StatusOK, detectResponse{
		AIScore:    verdict.AIScore,
		HumanScore: verdict.HumanScore,
		Confidence: string(verdict.Confidence),
		Patterns:   verdict.Patterns,
		Verdict:    string(verdict.Label),
		RequestID:  requestID(c),
	})
}

type extractResponse struct {
	Text       string `json:"text"`
	Characters int    `json:"characters"`
	RequestID  string `json:"requestId"`
}

// Extract converts an uploaded document to plain text.
// @Summary      Extract text from an upload
// @Description  Convert an uploaded PDF, HTML, DOCX, or text file to plain text
// @Tags         extract
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "Document to convert"
// @Success      200 {object} extractResponse
// @Failure      400 {object} object
// @Failure      429 {object} object
// @Router       /extract [post]
func (h *Handlers) Extract(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		badRequest(c, "multipart field 'file' is required")
		return
	}
	if file.Size > h.maxUpload {
		badRequest(c, "file is too large")
		return
	}

	opened, err := file.Open()
	if err != nil {
		h.logError(c, "open upload failed", err)
		badRequest(c, extractErrorMessage)
		return
	}
	defer opened.Close()

	data := make([]byte, file.Size)
	if _, err := io.ReadFull(opened, data); err != nil {
		h.logError(c, "read upload failed", err)
		badRequest(c, extractErrorMessage)
		return
	}

	text, err := h.extractor.FromUpload(file.Filename, data)
	if err != nil {
		h.logError(c, "extract upload failed", err)
		badRequest(c, extractErrorMessage)
		return
	}

	text = sanitize.Clean(text)
	c.JSON(http.StatusOK, extractResponse{
		Text:       text,
		Characters: len(text),
		RequestID:  requestID(c),
	})
}

func badRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": message})
}

func (h *Handlers) logError(c *gin.Context, msg string, err error) {
	if h.logger != nil {
		h.logger.Error(msg, "request_id", requestID(c), "path", c.FullPath(), "error", err)
	}
}
