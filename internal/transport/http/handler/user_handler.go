package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-service-market/internal/domain"
	"go-service-market/internal/transport/http/response"
)

type UserHandler struct {
	repo domain.UserRepository
}

func NewUserHandler(repo domain.UserRepository) *UserHandler {
	return &UserHandler{repo: repo}
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.repo.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "internal error")
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) Create(c *gin.Context) {
	var u domain.User
	if err := c.ShouldBindJSON(&u); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	u.ID = 0 // id 由存储层分配
	if err := h.repo.Create(c.Request.Context(), &u); err != nil {
		response.Error(c, http.StatusInternalServerError, "internal error")
		return
	}
	c.Status(http.StatusCreated)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	u, err := h.repo.Get(c.Request.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		response.Error(c, http.StatusNotFound, "user not found")
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "internal error")
		return
	}
	c.JSON(http.StatusOK, u)
}

// 整行替换：所有字段必填（指针 + required，零值放行）
type updateUserReq struct {
	FirstName *string `json:"first_name" binding:"required"`
	LastName  *string `json:"last_name" binding:"required"`
	Age       *int    `json:"age" binding:"required"`
	Email     *string `json:"email" binding:"required"`
	Role      *string `json:"role" binding:"required"`
	Phone     *string `json:"phone" binding:"required"`
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var in updateUserReq
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	u := domain.User{
		ID:        id,
		FirstName: *in.FirstName,
		LastName:  *in.LastName,
		Age:       *in.Age,
		Email:     *in.Email,
		Role:      *in.Role,
		Phone:     *in.Phone,
	}
	err := h.repo.Update(c.Request.Context(), &u)
	if errors.Is(err, domain.ErrNotFound) {
		response.Error(c, http.StatusNotFound, "user not found")
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "internal error")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	err := h.repo.Delete(c.Request.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		response.Error(c, http.StatusNotFound, "user not found")
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "internal error")
		return
	}
	c.Status(http.StatusNoContent)
}
