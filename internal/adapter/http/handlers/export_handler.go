package handlers

import (
	"errors"
	"log"
	"net/http"

	request "mwonto_studio/internal/adapter/http/dto/request"
	response "mwonto_studio/internal/adapter/http/dto/response"
	"mwonto_studio/internal/render"
	"mwonto_studio/internal/usecase"
	"mwonto_studio/pkg"

	"github.com/gin-gonic/gin"
)

// ExportHandler serves rendered PDFs and email dispatch for stored
// documents. Both operations re-render from the persisted record, so a
// failed download or send can simply be retried.

type ExportHandler struct {
	exporter usecase.IExportUseCase
	sender   usecase.ISendUseCase
}

func NewExportHandler(exporter usecase.IExportUseCase, sender usecase.ISendUseCase) *ExportHandler {
	return &ExportHandler{exporter: exporter, sender: sender}
}

// DownloadPDF streams the rendered document as an attachment.
func (h *ExportHandler) DownloadPDF(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[export][handler] download start id=%s", id)

	res, err := h.exporter.ExportPDF(c.Request.Context(), id)
	if err != nil {
		log.Printf("[export][handler] download failed id=%s err=%v", id, err)
		appErr := mapExportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[export][handler] download success id=%s file=%s bytes=%d", id, res.Filename, len(res.Data))

	c.Header("Content-Disposition", `attachment; filename="`+res.Filename+`"`)
	c.Data(http.StatusOK, "application/pdf", res.Data)
}

// SendDocument emails the rendered PDF to the recipient in the payload.
func (h *ExportHandler) SendDocument(c *gin.Context) {
	id := c.Param("id")

	var payload request.SendDocumentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_SEND_INPUT", "Invalid send payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if err := h.sender.SendDocument(c.Request.Context(), id, payload.RecipientEmail); err != nil {
		log.Printf("[export][handler] send failed id=%s to=%s err=%v", id, payload.RecipientEmail, err)
		appErr := mapExportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[export][handler] send success id=%s to=%s", id, payload.RecipientEmail)

	c.JSON(http.StatusOK, response.SendDocumentResponse{
		ID:        id,
		Recipient: payload.RecipientEmail,
	})
}

func mapExportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDocumentID), errors.Is(err, usecase.ErrInvalidRecipient):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDocumentNotFound):
		return pkg.NewDomainErrorSimple("DOCUMENT_NOT_FOUND", "Document not found", http.StatusNotFound)
	case errors.Is(err, render.ErrNothingToRender):
		return pkg.NewDomainErrorSimple("NOTHING_TO_RENDER", "Document has no content to render", http.StatusUnprocessableEntity)
	case errors.Is(err, render.ErrRenderTimeout):
		return pkg.NewDomainErrorSimple("RENDER_TIMEOUT", "Rendering timed out", http.StatusGatewayTimeout)
	case errors.Is(err, render.ErrAssetLoad):
		return pkg.NewDomainErrorSimple("ASSET_LOAD_FAILED", "A referenced asset could not be loaded", http.StatusBadGateway)
	case errors.Is(err, render.ErrPackaging):
		return pkg.NewDomainError("PACKAGING_FAILED", "Failed to package the rendered document", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
