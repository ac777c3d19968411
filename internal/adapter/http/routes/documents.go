package routes

import (
	"mwonto_studio/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathDocuments = "/documents"
)

func addDocumentRoutes(rg *gin.RouterGroup, documentHandler *handlers.DocumentHandler, exportHandler *handlers.ExportHandler) {
	documents := rg.Group(PathDocuments)
	{
		documents.POST("", documentHandler.CreateDocument)
		documents.GET("", documentHandler.ListDocuments)
		documents.GET("/:id", documentHandler.GetDocument)
		documents.DELETE("/:id", documentHandler.DeleteDocument)

		// Export and dispatch render from the stored record, so both can be
		// retried by id.
		documents.GET("/:id/pdf", exportHandler.DownloadPDF)
		documents.POST("/:id/send", exportHandler.SendDocument)
	}
}
