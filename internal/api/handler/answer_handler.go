package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/peerpath/internal/api/middleware"
	"github.com/d60-Lab/peerpath/internal/service"
	"github.com/d60-Lab/peerpath/pkg/response"
)

type answerRequest struct {
	ShortAnswer string   `json:"short_answer" binding:"required,max=2000"`
	Pros        []string `json:"pros" binding:"max=10"`
	Cons        []string `json:"cons" binding:"max=10"`
	ActionPlan  []string `json:"action_plan" binding:"max=10"`
}

type commentRequest struct {
	Text string `json:"text" binding:"required,max=1000"`
}

// PostAnswer 结构化回答
// @Summary 学长学姐/校友发布结构化回答
// @Tags 回答
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "问题ID"
// @Param request body answerRequest true "回答"
// @Success 201 {object} response.Response{data=model.StructuredAnswer}
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/questions/{id}/answers [post]
func (h *Handler) PostAnswer(c *gin.Context) {
	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	a, err := h.forum.PostAnswer(middleware.UserID(c), c.Param("id"), service.AnswerInput{
		ShortAnswer: req.ShortAnswer,
		Pros:        req.Pros,
		Cons:        req.Cons,
		ActionPlan:  req.ActionPlan,
	})
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Created(c, a)
}

// Comment 评论
// @Summary 在回答下评论（会提醒回答者）
// @Tags 回答
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "回答ID"
// @Param request body commentRequest true "评论"
// @Success 201 {object} response.Response{data=model.Comment}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/answers/{id}/comments [post]
func (h *Handler) Comment(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	cm, err := h.forum.Comment(middleware.UserID(c), c.Param("id"), req.Text)
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Created(c, cm)
}

// Upvote 点赞/取消点赞
// @Summary 切换点赞
// @Tags 回答
// @Produce json
// @Security BearerAuth
// @Param id path string true "回答ID"
// @Success 200 {object} response.Response{data=model.StructuredAnswer}
// @Failure 404 {object} response.Response
// @Router /api/v1/answers/{id}/upvote [post]
func (h *Handler) Upvote(c *gin.Context) {
	a, err := h.forum.ToggleUpvote(middleware.UserID(c), c.Param("id"))
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Success(c, a)
}

// Helped 标记/取消“对我有帮助”
// @Summary 切换 helped
// @Tags 回答
// @Produce json
// @Security BearerAuth
// @Param id path string true "回答ID"
// @Success 200 {object} response.Response{data=model.StructuredAnswer}
// @Failure 404 {object} response.Response
// @Router /api/v1/answers/{id}/helped [post]
func (h *Handler) Helped(c *gin.Context) {
	a, err := h.forum.ToggleHelped(middleware.UserID(c), c.Param("id"))
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Success(c, a)
}
