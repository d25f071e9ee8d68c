package handlers

import (
	"errors"
	"net/http"

	"conversationLogger/internal/errs"
	"conversationLogger/internal/logger"
	"conversationLogger/internal/models"
	"conversationLogger/internal/msgs"
	"conversationLogger/internal/services"
	"conversationLogger/internal/validators"

	"github.com/gin-gonic/gin"
)

type RestHandler struct {
	logService *services.ConversationLogService
}

func NewRestHandler(logService *services.ConversationLogService) *RestHandler {
	return &RestHandler{
		logService: logService,
	}
}

// CreateConversationLog godoc
// @Summary      Store a conversation log entry
// @Description  Persist one chatbot message and return it with its id and timestamp
// @Tags         conversations
// @Accept       json
// @Produce      json
// @Param        log  body      models.CreateConversationLogRequest  true  "Conversation log"
// @Success      200  {object}  models.ConversationLog
// @Failure      400  {object}  models.Response
// @Failure      500  {object}  models.Response
// @Router       /api/conversations [post]
func (rh *RestHandler) CreateConversationLog(ctx *gin.Context) {
	var request models.CreateConversationLogRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		logger.L.Debug("conversation log json binding failed", "error", err)
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrInvalidRequestBody},
		})
		return
	}

	log, createErrs := rh.logService.CreateLog(ctx.Request.Context(), &request)
	if len(createErrs) > 0 {
		status := statusForErrors(createErrs)
		if status == http.StatusInternalServerError {
			logger.L.Error("failed to store conversation log", "errors", createErrs)
		}
		ctx.AbortWithStatusJSON(status, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  createErrs,
		})
		return
	}

	ctx.JSON(http.StatusOK, log)
}

// GetConversationLogs godoc
// @Summary      List conversation log entries
// @Description  Newest first, optionally narrowed by conversation or user
// @Tags         conversations
// @Produce      json
// @Param        conversation_id  query     string  false  "Conversation ID"
// @Param        user_id          query     string  false  "User ID"
// @Param        limit            query     int     false  "Maximum entries (default 100)"
// @Success      200  {array}   models.ConversationLog
// @Failure      400  {object}  models.Response
// @Failure      500  {object}  models.Response
// @Router       /api/conversations [get]
func (rh *RestHandler) GetConversationLogs(ctx *gin.Context) {
	limit, err := validators.ParseLimit(ctx.Query("limit"))
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{err},
		})
		return
	}

	logs, getErrs := rh.logService.GetLogs(models.ConversationLogFilter{
		ConversationID: ctx.Query("conversation_id"),
		UserID:         ctx.Query("user_id"),
		Limit:          limit,
	})
	if len(getErrs) > 0 {
		status := statusForErrors(getErrs)
		if status == http.StatusInternalServerError {
			logger.L.Error("failed to list conversation logs", "errors", getErrs)
		}
		ctx.AbortWithStatusJSON(status, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  getErrs,
		})
		return
	}

	ctx.JSON(http.StatusOK, logs)
}

// Health godoc
// @Summary      Liveness check
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /healthz [get]
func (rh *RestHandler) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// statusForErrors maps request errors (errs sentinels) to 400 and anything else to 500.
func statusForErrors(errorList []error) int {
	for _, err := range errorList {
		var requestErr errs.Error
		if !errors.As(err, &requestErr) {
			return http.StatusInternalServerError
		}
	}
	return http.StatusBadRequest
}
