package books

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/supakorn-kn/go-catalog/apis"
	"github.com/supakorn-kn/go-catalog/errors"
	"github.com/supakorn-kn/go-catalog/metrics"
	"github.com/supakorn-kn/go-catalog/models"
	"github.com/supakorn-kn/go-catalog/objects"
	"github.com/supakorn-kn/go-catalog/render"
)

type BooksAPI struct {
	store     models.BookStore
	storeName string
}

func NewBooksAPI(store models.BookStore, storeName string) *BooksAPI {
	return &BooksAPI{store: store, storeName: storeName}
}

// Register mounts the JSON API under /api and the rendered page at /books.
func (api *BooksAPI) Register(g *gin.Engine) {

	apis.RegisterReadAPI[objects.Book](api, g.Group("api/books"))

	directory := g.Group("api")
	directory.GET("authors", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, apis.Response{Result: api.store.Directory().AuthorEntries()})
	})
	directory.GET("genres", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, apis.Response{Result: api.store.Directory().GenreEntries()})
	})

	g.GET("books", api.Page)
}

func (api *BooksAPI) ReadOne(itemID string, ctx *gin.Context) (*objects.Book, error) {

	book, err := api.store.GetByID(ctx.Request.Context(), itemID)
	if err != nil {
		return nil, err
	}

	return &book, nil
}

func (api *BooksAPI) Read(ctx *gin.Context) (*models.PaginationData[objects.Book], error) {

	opt, err := bindSearchOption(ctx)
	if err != nil {
		return nil, err
	}

	paginationData, err := api.search(ctx, opt)
	if err != nil {
		return nil, err
	}

	return &paginationData, nil
}

// Page renders a search page in the format named by the format query parameter.
func (api *BooksAPI) Page(ctx *gin.Context) {

	renderer, err := render.ForFormat(ctx.Query("format"))
	if err != nil {
		apis.WriteErrorJSON(ctx, err)
		return
	}

	opt, err := bindSearchOption(ctx)
	if err != nil {
		apis.WriteErrorJSON(ctx, err)
		return
	}

	paginationData, err := api.search(ctx, opt)
	if err != nil {
		apis.WriteErrorJSON(ctx, err)
		return
	}

	ctx.Header("Content-Type", renderer.ContentType())
	ctx.Status(http.StatusOK)

	view := render.NewView(paginationData, api.store.Directory(), opt)
	if err := renderer.Render(ctx.Writer, view); err != nil {
		_ = ctx.Error(err)
	}
}

func (api *BooksAPI) search(ctx *gin.Context, opt models.SearchOption) (models.PaginationData[objects.Book], error) {

	paginationData, err := api.store.Search(ctx.Request.Context(), opt)
	if err != nil {
		return paginationData, err
	}

	metrics.SearchesTotal.WithLabelValues(api.storeName).Inc()
	if paginationData.Count == 0 {
		metrics.EmptySearchesTotal.WithLabelValues(api.storeName).Inc()
	}

	return paginationData, nil
}

func bindSearchOption(ctx *gin.Context) (models.SearchOption, error) {

	var opt models.SearchOption
	if err := ctx.ShouldBindQuery(&opt); err != nil {
		return opt, errors.DataValidationFailedError.New(err.Error())
	}

	return opt, nil
}
