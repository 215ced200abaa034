package models

import (
	"context"
	"errors"

	serverError "github.com/supakorn-kn/go-catalog/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type BaseSearchOptions struct {
	CurrentPage int
	Pipeline    mongo.Pipeline
}

// BaseModel is the read side shared by collection-backed stores.
type BaseModel[T Item] struct {
	SearchLenLimit int

	Coll      *mongo.Collection
	ItemIDKey string
}

func (m *BaseModel[T]) Inject(coll *mongo.Collection, searchLenLimit int, itemIDKey string) error {

	if searchLenLimit < 1 {
		return serverError.PageSizeInvalidError.New()
	}

	m.Coll = coll
	m.SearchLenLimit = searchLenLimit
	m.ItemIDKey = itemIDKey

	return nil
}

func (m BaseModel[T]) Insert(ctx context.Context, item any) error {

	_, err := m.Coll.InsertOne(ctx, item)
	if err != nil {

		if mongo.IsDuplicateKeyError(err) {
			return serverError.DuplicatedObjectIDError.New(m.idOf(item))
		}

		return err
	}

	return nil
}

func (m BaseModel[T]) GetByID(ctx context.Context, itemID string) (item T, err error) {

	result := m.Coll.FindOne(ctx, bson.D{{Key: m.ItemIDKey, Value: itemID}})

	err = result.Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		err = serverError.ObjectIDNotFoundError.New(itemID)
		return
	}

	return
}

// Search runs a pipeline whose last stage projects an AggregatedResult and windows it into a page.
func (m BaseModel[T]) Search(ctx context.Context, opt BaseSearchOptions, pageSize int) (paginationData PaginationData[T], paginateErr error) {

	var currentPage = opt.CurrentPage
	if currentPage < 1 {
		paginateErr = serverError.CurrentPageInvalidError.New()
		return
	}

	if pageSize < 1 {
		pageSize = m.SearchLenLimit
	}

	var cur *mongo.Cursor
	cur, paginateErr = m.Coll.Aggregate(ctx, opt.Pipeline)
	if paginateErr != nil {
		return
	}

	var aggResultList []AggregatedResult[T]
	paginateErr = cur.All(ctx, &aggResultList)
	if paginateErr != nil {
		return
	}

	var aggResult AggregatedResult[T]
	if len(aggResultList) > 0 {
		aggResult = aggResultList[0]
	}

	data := aggResult.Data
	if data == nil {
		data = []T{}
	}

	paginationData = PaginationData[T]{
		Page:       currentPage,
		TotalPages: TotalPages(aggResult.Total, pageSize),
		Count:      aggResult.Total,
		Remaining:  remaining(aggResult.Total, currentPage, pageSize),
		Data:       data,
	}

	return
}

func (m BaseModel[T]) idOf(item any) string {

	if withID, ok := item.(Item); ok {
		return withID.GetID()
	}

	return ""
}
