package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adilkhanov/hrdoc-backend/internal/http/handlers/common"
	"github.com/adilkhanov/hrdoc-backend/internal/service"
)

// PreviewHandler отдаёт предпросмотр текстов договора и допсоглашений.
type PreviewHandler struct {
	documents *service.DocumentService
	previews  *service.PreviewService
}

// NewPreviewHandler создаёт хэндлер.
func NewPreviewHandler(documents *service.DocumentService, previews *service.PreviewService) *PreviewHandler {
	return &PreviewHandler{documents: documents, previews: previews}
}

// DocumentPreview обрабатывает GET /api/documents/:id/preview.
// Возвращает двуязычный текст изменяемого пункта с наложенными новыми значениями.
func (h *PreviewHandler) DocumentPreview(c *gin.Context) {
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.documents.Get(c.Request.Context(), id, nil)
	if err != nil {
		c.Error(err)
		return
	}

	preview, err := h.previews.RenderAmendment(c.Request.Context(), result.Document)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"preview": previewResponse(preview, c.Query("lang"))})
}

// ContractPreview обрабатывает GET /api/contracts/:id/preview?section=.
// Без параметра section рендерит все пункты договора.
func (h *PreviewHandler) ContractPreview(c *gin.Context) {
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lang := c.Query("lang")

	if section := c.Query("section"); section != "" {
		preview, err := h.previews.RenderClause(c.Request.Context(), id, section)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"preview": previewResponse(preview, lang)})
		return
	}

	previews, err := h.previews.RenderContract(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	responses := make([]interface{}, 0, len(previews))
	for i := range previews {
		responses = append(responses, previewResponse(&previews[i], lang))
	}
	c.JSON(http.StatusOK, gin.H{"previews": responses})
}

// previewResponse сужает двуязычный предпросмотр до запрошенного языка.
// Без параметра lang возвращаются оба текста.
func previewResponse(preview *service.ClausePreview, lang string) interface{} {
	switch lang {
	case "ru":
		return gin.H{"section_number": preview.SectionNumber, "content": preview.ContentRu}
	case "kk":
		return gin.H{"section_number": preview.SectionNumber, "content": preview.ContentKk}
	default:
		return preview
	}
}
