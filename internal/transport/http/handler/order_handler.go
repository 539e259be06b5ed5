package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"go-service-market/internal/domain"
	"go-service-market/internal/transport/http/response"
)

const dateLayout = "2006-01-02"

type OrderHandler struct {
	repo domain.OrderRepository
}

func NewOrderHandler(repo domain.OrderRepository) *OrderHandler {
	return &OrderHandler{repo: repo}
}

func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.repo.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "internal error")
		return
	}
	c.JSON(http.StatusOK, orders)
}

// Create 日期字段不做转换，body 里给什么存什么。
// 和 Update 的强制 ISO 解析不对称，刻意保留（见 DESIGN.md）。
func (h *OrderHandler) Create(c *gin.Context) {
	var o domain.Order
	if err := c.ShouldBindJSON(&o); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	o.ID = 0
	if err := h.repo.Create(c.Request.Context(), &o); err != nil {
		response.Error(c, http.StatusInternalServerError, "internal error")
		return
	}
	c.Status(http.StatusCreated)
}

func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	o, err := h.repo.Get(c.Request.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		response.Error(c, http.StatusNotFound, "order not found")
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "internal error")
		return
	}
	c.JSON(http.StatusOK, o)
}

type updateOrderReq struct {
	Name        *string `json:"name" binding:"required"`
	Description *string `json:"description" binding:"required"`
	StartDate   *string `json:"start_date" binding:"required"`
	EndDate     *string `json:"end_date" binding:"required"`
	Address     *string `json:"address" binding:"required"`
	Price       *int    `json:"price" binding:"required"`
	CustomerID  *uint   `json:"customer_id" binding:"required"`
	ExecutorID  *uint   `json:"executor_id" binding:"required"`
}

func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var in updateOrderReq
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	start, err := parseDate(*in.StartDate)
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	end, err := parseDate(*in.EndDate)
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	o := domain.Order{
		ID:          id,
		Name:        *in.Name,
		Description: *in.Description,
		StartDate:   start,
		EndDate:     end,
		Address:     *in.Address,
		Price:       *in.Price,
		CustomerID:  *in.CustomerID,
		ExecutorID:  *in.ExecutorID,
	}
	err = h.repo.Update(c.Request.Context(), &o)
	if errors.Is(err, domain.ErrNotFound) {
		response.Error(c, http.StatusNotFound, "order not found")
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "internal error")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	err := h.repo.Delete(c.Request.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		response.Error(c, http.StatusNotFound, "order not found")
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "internal error")
		return
	}
	c.Status(http.StatusNoContent)
}

func parseDate(s string) (string, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return t.Format(dateLayout), nil
}
