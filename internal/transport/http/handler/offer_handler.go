package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-service-market/internal/domain"
	"go-service-market/internal/transport/http/response"
)

type OfferHandler struct {
	repo domain.OfferRepository
}

func NewOfferHandler(repo domain.OfferRepository) *OfferHandler {
	return &OfferHandler{repo: repo}
}

func (h *OfferHandler) List(c *gin.Context) {
	offers, err := h.repo.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "internal error")
		return
	}
	c.JSON(http.StatusOK, offers)
}

func (h *OfferHandler) Create(c *gin.Context) {
	var o domain.Offer
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

func (h *OfferHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	o, err := h.repo.Get(c.Request.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		response.Error(c, http.StatusNotFound, "offer not found")
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "internal error")
		return
	}
	c.JSON(http.StatusOK, o)
}

type updateOfferReq struct {
	OrderID    *uint `json:"order_id" binding:"required"`
	ExecutorID *uint `json:"executor_id" binding:"required"`
}

func (h *OfferHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var in updateOfferReq
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	o := domain.Offer{
		ID:         id,
		OrderID:    *in.OrderID,
		ExecutorID: *in.ExecutorID,
	}
	err := h.repo.Update(c.Request.Context(), &o)
	if errors.Is(err, domain.ErrNotFound) {
		response.Error(c, http.StatusNotFound, "offer not found")
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "internal error")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *OfferHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	err := h.repo.Delete(c.Request.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		response.Error(c, http.StatusNotFound, "offer not found")
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "internal error")
		return
	}
	c.Status(http.StatusNoContent)
}
