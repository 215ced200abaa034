package apis

import (
	"github.com/gin-gonic/gin"
	"github.com/supakorn-kn/go-catalog/errors"
	"github.com/supakorn-kn/go-catalog/models"
)

type Response struct {
	Result any               `json:"result,omitempty"`
	Error  *errors.BaseError `json:"error,omitempty"`
}

// ReadAPI serves a read-only collection.
type ReadAPI[Item any] interface {
	ReadOne(itemID string, ctx *gin.Context) (*Item, error)
	Read(ctx *gin.Context) (*models.PaginationData[Item], error)
}

var OKResponse = Response{Result: map[string]any{"status": "OK"}}
