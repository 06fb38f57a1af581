package handler

import (
	"errors"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/d60-Lab/peerpath/internal/service"
	"github.com/d60-Lab/peerpath/pkg/auth"
	"github.com/d60-Lab/peerpath/pkg/response"
)

// Handler 聚合所有 HTTP 处理函数
type Handler struct {
	forum  service.ForumService
	tokens *auth.TokenManager
}

func NewHandler(forum service.ForumService, tokens *auth.TokenManager) *Handler {
	return &Handler{forum: forum, tokens: tokens}
}

var registerOnce sync.Once

// RegisterValidators adds the custom binding tags (campus_email) to gin's
// validator. Safe to call more than once.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = errors.New("gin validator engine is not validator/v10")
			return
		}
		err = v.RegisterValidation("campus_email", func(fl validator.FieldLevel) bool {
			return service.IsCampusEmail(fl.Field().String())
		})
	})
	return err
}

// bindError reports a request body that failed binding.
func bindError(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			if fe.Tag() == "campus_email" {
				response.BadRequest(c, service.ErrInvalidEmail.Error())
				return
			}
		}
	}
	response.BadRequest(c, err.Error())
}

// serviceError maps service sentinel errors onto HTTP statuses.
func serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrQuestionNotFound),
		errors.Is(err, service.ErrAnswerNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrMentorOnly):
		response.Forbidden(c, err.Error())
	case errors.Is(err, service.ErrAssistUnavailable):
		response.ServiceUnavailable(c, err.Error())
	case errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrInvalidRole),
		errors.Is(err, service.ErrProfileIncomplete),
		errors.Is(err, service.ErrEmptyText),
		errors.Is(err, service.ErrCategoryRequired),
		errors.Is(err, service.ErrEmptyInsight),
		errors.Is(err, service.ErrNotEnoughAnswers):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c, err)
	}
}
