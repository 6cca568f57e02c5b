package handlers

import (
	"net/http"

	"jobhunt_backend/internal/services"
	"jobhunt_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type InterviewHandler struct {
	*BaseHandler
	interviewService services.InterviewService
}

func NewInterviewHandler(base *BaseHandler, interviewService services.InterviewService) *InterviewHandler {
	return &InterviewHandler{
		BaseHandler:      base,
		interviewService: interviewService,
	}
}

// Interviews live under their job; every route re-checks that the caller
// owns the job chain.
func (h *InterviewHandler) RegisterRoutes(rg *gin.RouterGroup) {
	interviews := rg.Group("/jobs/:id/interviews")
	{
		interviews.GET("", h.ListInterviews)
		interviews.POST("", h.CreateInterview)
		interviews.GET("/:interviewId", h.GetInterview)
		interviews.PUT("/:interviewId", h.UpdateInterview)
		interviews.DELETE("/:interviewId", h.DeleteInterview)
	}
}

func (h *InterviewHandler) ListInterviews(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	jobID, ok := h.RequireParam(c, "id")
	if !ok {
		return
	}

	db := h.GetDB(c)

	interviews, err := h.interviewService.ListInterviews(db, jobID, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, interviews)
}

func (h *InterviewHandler) CreateInterview(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	jobID, ok := h.RequireParam(c, "id")
	if !ok {
		return
	}

	var req dto.CreateInterviewRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	interview, err := h.interviewService.CreateInterview(db, jobID, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, interview)
}

func (h *InterviewHandler) GetInterview(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	interviewID, ok := h.RequireParam(c, "interviewId")
	if !ok {
		return
	}

	db := h.GetDB(c)

	interview, err := h.interviewService.GetInterview(db, interviewID, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, interview)
}

func (h *InterviewHandler) UpdateInterview(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	interviewID, ok := h.RequireParam(c, "interviewId")
	if !ok {
		return
	}

	var req dto.UpdateInterviewRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	interview, err := h.interviewService.UpdateInterview(db, interviewID, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, interview)
}

func (h *InterviewHandler) DeleteInterview(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	interviewID, ok := h.RequireParam(c, "interviewId")
	if !ok {
		return
	}

	db := h.GetDB(c)

	if err := h.interviewService.DeleteInterview(db, interviewID, userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Interview deleted"})
}
