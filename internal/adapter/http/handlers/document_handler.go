package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	request "mwonto_studio/internal/adapter/http/dto/request"
	response "mwonto_studio/internal/adapter/http/dto/response"
	"mwonto_studio/internal/usecase"
	"mwonto_studio/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidDocumentPayload = pkg.NewDomainErrorSimple("INVALID_DOCUMENT_INPUT", "Invalid document payload", http.StatusBadRequest)
)

// DocumentHandler handles HTTP requests for billing documents: quotations,
// invoices and receipts.

type DocumentHandler struct {
	usecase usecase.IDocumentUseCase
}

func NewDocumentHandler(uc usecase.IDocumentUseCase) *DocumentHandler {
	return &DocumentHandler{usecase: uc}
}

// CreateDocument saves a composed document as one immutable record. The
// caller's session token travels in the Authorization header.
func (h *DocumentHandler) CreateDocument(c *gin.Context) {
	var payload request.DocumentCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDocumentPayload.HTTPStatus, errInvalidDocumentPayload.ToHTTPError())
		return
	}

	doc, err := h.usecase.Save(c.Request.Context(), bearerToken(c), payload.ToEntity())
	if err != nil {
		log.Printf("[document][handler] create failed kind=%s err=%v", payload.Kind, err)
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[document][handler] create success id=%s number=%s", doc.ID, doc.Number)

	c.JSON(http.StatusCreated, response.FromDocument(doc))
}

// ListDocuments returns stored records newest-first. Supported query
// filters: kind, status, date (exact) and range (7, 30 or 90 days).
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	filter := usecase.ListFilter{
		Kind:   c.Query("kind"),
		Status: c.Query("status"),
		Date:   c.Query("date"),
	}
	if raw := c.Query("range"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil {
			appErr := mapDocumentError(usecase.ErrInvalidRangeDays)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		filter.RangeDays = days
	}

	docs, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		log.Printf("[document][handler] list failed filter=%+v err=%v", filter, err)
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDocuments(docs))
}

// GetDocument fetches one record by id.
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	id := c.Param("id")

	doc, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDocument(doc))
}

// DeleteDocument removes one record. Deletion must be confirmed with
// ?confirm=true; unconfirmed requests are rejected before any store call.
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	id := c.Param("id")
	confirmed := strings.EqualFold(c.Query("confirm"), "true")

	if err := h.usecase.Delete(c.Request.Context(), id, confirmed); err != nil {
		log.Printf("[document][handler] delete failed id=%s confirmed=%t err=%v", id, confirmed, err)
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[document][handler] delete success id=%s", id)

	c.Status(http.StatusNoContent)
}

// bearerToken strips the "Bearer " scheme from the Authorization header.
// Missing or malformed headers yield an empty token; session validation
// happens in the use case.
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return strings.TrimSpace(header)
}

func mapDocumentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnauthenticated):
		return pkg.NewDomainErrorSimple("UNAUTHENTICATED", "No active session", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidKind),
		errors.Is(err, usecase.ErrInvalidStatus),
		errors.Is(err, usecase.ErrMissingClientName),
		errors.Is(err, usecase.ErrMissingDate),
		errors.Is(err, usecase.ErrInvalidDocumentID),
		errors.Is(err, usecase.ErrInvalidRangeDays):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDeleteNotConfirmed):
		return pkg.NewDomainErrorSimple("DELETE_NOT_CONFIRMED", "Deletion requires confirmation", http.StatusPreconditionRequired)
	case errors.Is(err, usecase.ErrDocumentNotFound):
		return pkg.NewDomainErrorSimple("DOCUMENT_NOT_FOUND", "Document not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
