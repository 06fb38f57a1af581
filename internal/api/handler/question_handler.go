package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/peerpath/internal/api/middleware"
	"github.com/d60-Lab/peerpath/internal/model"
	"github.com/d60-Lab/peerpath/internal/service"
	"github.com/d60-Lab/peerpath/pkg/response"
)

type draftRequest struct {
	Text string `json:"text" binding:"required,max=4000"`
}

type askRequest struct {
	Title          string               `json:"title" binding:"max=200"`
	Text           string               `json:"text" binding:"required,max=4000"`
	Category       string               `json:"category" binding:"max=64"`
	CustomCategory string               `json:"custom_category" binding:"max=64"`
	Tags           []string             `json:"tags" binding:"max=10"`
	UseAI          bool                 `json:"use_ai"`
	Clarification  *model.Clarification `json:"clarification"`
}

// ListQuestions 问题流
// @Summary 问题列表（新到旧）
// @Description category 为空或 All 返回全部；Others 返回所有非标准分类
// @Tags 问题
// @Produce json
// @Param category query string false "分类"
// @Success 200 {object} response.Response{data=[]model.Question}
// @Router /api/v1/questions [get]
func (h *Handler) ListQuestions(c *gin.Context) {
	response.Success(c, h.forum.Feed(c.Query("category")))
}

// GetQuestion 问题详情
// @Summary 问题及按点赞排序的回答
// @Tags 问题
// @Produce json
// @Param id path string true "问题ID"
// @Success 200 {object} response.Response{data=service.Thread}
// @Failure 404 {object} response.Response
// @Router /api/v1/questions/{id} [get]
func (h *Handler) GetQuestion(c *gin.Context) {
	th, err := h.forum.Thread(c.Param("id"))
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Success(c, th)
}

// Draft AI 预检
// @Summary AI 改写问题并查找相似问题（不落库）
// @Tags 问题
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body draftRequest true "问题原文"
// @Success 200 {object} response.Response{data=service.Draft}
// @Failure 400 {object} response.Response
// @Failure 429 {object} response.Response
// @Router /api/v1/questions/draft [post]
func (h *Handler) Draft(c *gin.Context) {
	var req draftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	d, err := h.forum.Draft(c.Request.Context(), middleware.UserID(c), req.Text)
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Success(c, d)
}

// AskQuestion 提问
// @Summary 发布问题
// @Description clarification 为 draft 接口返回的结果；use_ai 为 true 且未提供时由服务端生成
// @Tags 问题
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body askRequest true "问题"
// @Success 201 {object} response.Response{data=model.Question}
// @Failure 400 {object} response.Response
// @Failure 429 {object} response.Response
// @Router /api/v1/questions [post]
func (h *Handler) AskQuestion(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	q, err := h.forum.AskQuestion(c.Request.Context(), middleware.UserID(c), service.AskInput{
		Title:          req.Title,
		Text:           req.Text,
		Category:       req.Category,
		CustomCategory: req.CustomCategory,
		Tags:           req.Tags,
		UseAI:          req.UseAI,
		Clarification:  req.Clarification,
	})
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Created(c, q)
}

// Summarize 讨论总结
// @Summary AI 总结回答（至少两个回答）
// @Tags 问题
// @Produce json
// @Security BearerAuth
// @Param id path string true "问题ID"
// @Success 200 {object} response.Response{data=model.ThreadSummary}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 503 {object} response.Response
// @Router /api/v1/questions/{id}/summary [post]
func (h *Handler) Summarize(c *gin.Context) {
	sum, err := h.forum.Summarize(c.Request.Context(), c.Param("id"))
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Success(c, sum)
}
