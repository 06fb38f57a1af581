package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/peerpath/internal/api/middleware"
	"github.com/d60-Lab/peerpath/internal/model"
	"github.com/d60-Lab/peerpath/internal/service"
	"github.com/d60-Lab/peerpath/pkg/response"
)

type signupRequest struct {
	Email       string   `json:"email" binding:"required,campus_email"`
	Role        string   `json:"role" binding:"omitempty,oneof=junior senior alumni"`
	DisplayName string   `json:"display_name" binding:"max=64"`
	Branch      string   `json:"branch" binding:"max=32"`
	Batch       string   `json:"batch" binding:"omitempty,numeric,len=4"`
	Interests   []string `json:"interests" binding:"max=20"`
}

type loginRequest struct {
	Email string `json:"email" binding:"required,campus_email"`
}

// updateProfileRequest 资料修改；邮箱与角色在注册后不可改
type updateProfileRequest struct {
	DisplayName *string  `json:"display_name" binding:"omitempty,max=64"`
	Branch      *string  `json:"branch" binding:"omitempty,max=32"`
	Batch       *string  `json:"batch" binding:"omitempty,numeric,len=4"`
	Interests   []string `json:"interests" binding:"omitempty,max=20"`
}

type authResponse struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// profileView 公开资料，不含邮箱
type profileView struct {
	ID          string      `json:"id"`
	Role        model.Role  `json:"role"`
	DisplayName string      `json:"display_name"`
	Branch      string      `json:"branch"`
	Batch       string      `json:"batch"`
	Interests   []string    `json:"interests"`
	Stats       model.Stats `json:"stats"`
	Reputation  int         `json:"reputation"`
	CreatedAt   time.Time   `json:"created_at"`
}

func newProfileView(u model.User) profileView {
	return profileView{
		ID:          u.ID,
		Role:        u.Role,
		DisplayName: u.DisplayName,
		Branch:      u.Branch,
		Batch:       u.Batch,
		Interests:   u.Interests,
		Stats:       u.Stats,
		Reputation:  model.Reputation(u.Stats),
		CreatedAt:   u.CreatedAt,
	}
}

// Signup 注册
// @Summary 使用学校邮箱注册
// @Tags 用户
// @Accept json
// @Produce json
// @Param request body signupRequest true "注册信息"
// @Success 201 {object} response.Response{data=authResponse}
// @Failure 400 {object} response.Response
// @Router /api/v1/auth/signup [post]
func (h *Handler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	u, err := h.forum.Signup(service.SignupInput{
		Email:       req.Email,
		Role:        req.Role,
		DisplayName: req.DisplayName,
		Branch:      req.Branch,
		Batch:       req.Batch,
		Interests:   req.Interests,
	})
	if err != nil {
		serviceError(c, err)
		return
	}
	h.issue(c, u, true)
}

// Login 登录
// @Summary 邮箱登录
// @Tags 用户
// @Accept json
// @Produce json
// @Param request body loginRequest true "登录信息"
// @Success 200 {object} response.Response{data=authResponse}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	u, err := h.forum.Login(req.Email)
	if err != nil {
		serviceError(c, err)
		return
	}
	h.issue(c, u, false)
}

func (h *Handler) issue(c *gin.Context, u model.User, created bool) {
	token, err := h.tokens.Issue(u.ID, string(u.Role))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if created {
		response.Created(c, authResponse{Token: token, User: u})
		return
	}
	response.Success(c, authResponse{Token: token, User: u})
}

// GetUser 查询公开资料
// @Summary 用户公开资料与声望
// @Tags 用户
// @Produce json
// @Param id path string true "用户ID"
// @Success 200 {object} response.Response{data=profileView}
// @Failure 404 {object} response.Response
// @Router /api/v1/users/{id} [get]
func (h *Handler) GetUser(c *gin.Context) {
	u, err := h.forum.GetUser(c.Param("id"))
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Success(c, newProfileView(u))
}

// UpdateMe 修改个人资料
// @Summary 修改当前用户资料
// @Tags 用户
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body updateProfileRequest true "需要修改的字段"
// @Success 200 {object} response.Response{data=model.User}
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /api/v1/users/me [patch]
func (h *Handler) UpdateMe(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	u, err := h.forum.UpdateProfile(middleware.UserID(c), model.UserPatch{
		DisplayName: req.DisplayName,
		Branch:      req.Branch,
		Batch:       req.Batch,
		Interests:   req.Interests,
	})
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Success(c, u)
}

// Dashboard 个人面板
// @Summary 声望、进度与提醒
// @Tags 用户
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=service.Dashboard}
// @Failure 401 {object} response.Response
// @Router /api/v1/me/dashboard [get]
func (h *Handler) Dashboard(c *gin.Context) {
	d, err := h.forum.Dashboard(middleware.UserID(c))
	if err != nil {
		serviceError(c, err)
		return
	}
	response.Success(c, d)
}

// Mentions 提醒列表
// @Summary 当前用户收到的提醒（新到旧）
// @Tags 用户
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=[]model.Mention}
// @Router /api/v1/me/mentions [get]
func (h *Handler) Mentions(c *gin.Context) {
	response.Success(c, h.forum.Mentions(middleware.UserID(c)))
}

// MarkMentionsRead 全部标为已读
// @Summary 将提醒全部标为已读
// @Tags 用户
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=map[string]int}
// @Router /api/v1/me/mentions/read [post]
func (h *Handler) MarkMentionsRead(c *gin.Context) {
	n := h.forum.MarkMentionsRead(middleware.UserID(c))
	response.Success(c, gin.H{"marked": n})
}
