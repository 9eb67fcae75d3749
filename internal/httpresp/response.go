package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

type PageResponse[T any] struct {
	Appointments []T   `json:"appointments"`
	Total        int64 `json:"total"`
	Page         int   `json:"page"`
	TotalPages   int   `json:"total_pages"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func List[T any](c *gin.Context, data []T) {
	c.JSON(http.StatusOK, ListResponse[T]{
		Data:  data,
		Total: len(data),
	})
}

func Page[T any](c *gin.Context, data []T, total int64, page, totalPages int) {
	c.JSON(http.StatusOK, PageResponse[T]{
		Appointments: data,
		Total:        total,
		Page:         page,
		TotalPages:   totalPages,
	})
}
