package apis

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/supakorn-kn/go-catalog/errors"
	"github.com/supakorn-kn/go-catalog/metrics"
)

func RegisterReadAPI[Item any](api ReadAPI[Item], group *gin.RouterGroup) {

	group.GET(":id", func(ctx *gin.Context) {

		itemID := ctx.Param("id")

		item, err := api.ReadOne(itemID, ctx)
		if err != nil {
			WriteErrorJSON(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, Response{Result: item})
	})

	group.GET("", func(ctx *gin.Context) {

		paginateResult, err := api.Read(ctx)
		if err != nil {
			WriteErrorJSON(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, Response{Result: paginateResult})
	})
}

// RegisterOperations mounts /metrics and /healthz.
func RegisterOperations(g *gin.Engine) {

	g.GET("/metrics", gin.WrapH(promhttp.Handler()))
	g.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, OKResponse)
	})
}

// Metrics records request count and latency by route.
func Metrics() gin.HandlerFunc {

	return func(ctx *gin.Context) {

		start := time.Now()
		ctx.Next()

		path := ctx.FullPath()
		if path == "" {
			path = "unmatched"
		}

		metrics.HttpRequestsTotal.WithLabelValues(ctx.Request.Method, path, strconv.Itoa(ctx.Writer.Status())).Inc()
		metrics.HttpRequestDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
	}
}

func WriteErrorJSON(ctx *gin.Context, err error) {

	assertedError, ok := errors.TryAssertError(err)
	if !ok {
		unknown := errors.UnknownError.New(err)
		ctx.JSON(http.StatusInternalServerError, Response{Error: &unknown})
		return
	}

	var statusCode int
	var errorResponse = Response{Error: &assertedError}

	switch assertedError.Code {
	case errors.ObjectIDNotFoundErrorCode:
		statusCode = http.StatusNotFound
	case errors.UnknownErrorCode:
		statusCode = http.StatusInternalServerError
	default:
		statusCode = http.StatusBadRequest
	}

	ctx.JSON(statusCode, errorResponse)
}
