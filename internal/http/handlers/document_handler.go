package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/adilkhanov/hrdoc-backend/internal/http/handlers/common"
	"github.com/adilkhanov/hrdoc-backend/internal/models"
	"github.com/adilkhanov/hrdoc-backend/internal/service"
	"github.com/adilkhanov/hrdoc-backend/internal/storage"
	"github.com/adilkhanov/hrdoc-backend/internal/workflow"
)

// DocumentHandler предоставляет HTTP слой для работы с кадровыми документами.
type DocumentHandler struct {
	documents *service.DocumentService
	files     *storage.DocumentStorage
}

// NewDocumentHandler создаёт хэндлер.
func NewDocumentHandler(documents *service.DocumentService, files *storage.DocumentStorage) *DocumentHandler {
	return &DocumentHandler{documents: documents, files: files}
}

// List обрабатывает GET /api/documents?kind=&status=.
func (h *DocumentHandler) List(c *gin.Context) {
	kind := models.DocumentKind(c.Query("kind"))
	status := models.DocumentStatus(c.Query("status"))

	if kind != "" && kind != models.KindAmendment && kind != models.KindResignation {
		c.JSON(http.StatusBadRequest, gin.H{"error": "неизвестный вид документа"})
		return
	}
	if status != "" && kind != "" && !status.IsValidFor(kind) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "статус недопустим для этого вида документа"})
		return
	}

	limit, offset := common.GetPagination(c)

	docs, err := h.documents.List(c.Request.Context(), kind, status, limit, offset)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"documents": docs, "count": len(docs)})
}

// Create обрабатывает POST /api/documents. Документ создаётся в статусе draft.
func (h *DocumentHandler) Create(c *gin.Context) {
	var req struct {
		Kind          string                  `json:"kind" binding:"required"`
		WorkerID      string                  `json:"worker_id" binding:"required"`
		ContractID    *string                 `json:"contract_id"`
		EffectiveDate *string                 `json:"effective_date"`
		ClauseSection *string                 `json:"clause_section"`
		OldValues     *models.AmendmentValues `json:"old_values"`
		NewValues     *models.AmendmentValues `json:"new_values"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "некорректное тело запроса"})
		return
	}

	workerID, err := uuid.Parse(req.WorkerID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "невалидный worker_id"})
		return
	}

	in := service.CreateInput{
		Kind:          models.DocumentKind(req.Kind),
		WorkerID:      workerID,
		ClauseSection: req.ClauseSection,
		OldValues:     req.OldValues,
		NewValues:     req.NewValues,
	}

	if req.ContractID != nil {
		contractID, err := uuid.Parse(*req.ContractID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "невалидный contract_id"})
			return
		}
		in.ContractID = &contractID
	}

	if req.EffectiveDate != nil {
		date, err := time.Parse("2006-01-02", *req.EffectiveDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "effective_date должна быть в формате ГГГГ-ММ-ДД"})
			return
		}
		in.EffectiveDate = &date
	}

	doc, err := h.documents.Create(c.Request.Context(), in)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"document": doc})
}

// Get обрабатывает GET /api/documents/:id?in_flight=action1,action2.
// Возвращает документ вместе со списком доступных действий.
func (h *DocumentHandler) Get(c *gin.Context) {
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.documents.Get(c.Request.Context(), id, parseInFlight(c.Query("in_flight")))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Action обрабатывает POST /api/documents/:id/actions.
// Действия загрузки сканов принимают multipart/form-data с полями action и file,
// остальные действия — JSON тело.
func (h *DocumentHandler) Action(c *gin.Context) {
	id, err := common.ParseUUIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var in service.ActionInput
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		in, err = h.uploadInput(c, id)
	} else {
		in, err = actionInputFromJSON(c)
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc, err := h.documents.ApplyAction(c.Request.Context(), id, in)
	if err != nil {
		c.Error(err)
		return
	}

	// Удаление возвращает пустой успех без документа.
	if doc == nil {
		c.JSON(http.StatusOK, gin.H{"deleted": true})
		return
	}

	c.JSON(http.StatusOK, gin.H{"document": doc})
}

// uploadInput читает multipart форму с PDF сканом и сохраняет файл.
func (h *DocumentHandler) uploadInput(c *gin.Context, id uuid.UUID) (service.ActionInput, error) {
	var in service.ActionInput

	action := workflow.ActionName(c.PostForm("action"))
	if action != workflow.ActionUploadApplication && action != workflow.ActionUploadOrder {
		return in, errors.New("multipart поддерживается только для загрузки сканов")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return in, errors.New("файл обязателен")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return in, errors.New("не удалось прочитать файл")
	}
	defer file.Close()

	path, _, err := h.files.SavePDF(c.Request.Context(), id, string(action), file)
	if err != nil {
		if errors.Is(err, storage.ErrNotPDF) {
			return in, errors.New("принимаются только PDF файлы")
		}
		return in, err
	}

	in.Action = action
	in.PDFPath = &path
	return in, nil
}

// actionInputFromJSON разбирает JSON тело действия.
func actionInputFromJSON(c *gin.Context) (service.ActionInput, error) {
	var in service.ActionInput

	var req struct {
		Action        string  `json:"action" binding:"required"`
		Resolution    *string `json:"resolution"`
		ReviewNote    *string `json:"review_note"`
		EffectiveDate *string `json:"effective_date"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		return in, errors.New("поле action обязательно")
	}

	in.Action = workflow.ActionName(req.Action)
	in.ReviewNote = req.ReviewNote

	if req.Resolution != nil {
		resolution := models.ApprovalResolution(*req.Resolution)
		in.Resolution = &resolution
	}

	if req.EffectiveDate != nil {
		date, err := time.Parse("2006-01-02", *req.EffectiveDate)
		if err != nil {
			return in, errors.New("effective_date должна быть в формате ГГГГ-ММ-ДД")
		}
		in.EffectiveDate = &date
	}

	return in, nil
}

// parseInFlight разбирает список действий, мутация которых сейчас выполняется
// на клиенте. Соответствующие кнопки возвращаются выключенными.
func parseInFlight(raw string) workflow.InFlight {
	if raw == "" {
		return nil
	}

	inFlight := make(workflow.InFlight)
	for _, name := range strings.Split(raw, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			inFlight[workflow.ActionName(name)] = true
		}
	}
	return inFlight
}
