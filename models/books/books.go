package books

import (
	"context"
	"fmt"
	"slices"

	serverError "github.com/supakorn-kn/go-catalog/errors"
	"github.com/supakorn-kn/go-catalog/models"
	"github.com/supakorn-kn/go-catalog/mongodb"
	"github.com/supakorn-kn/go-catalog/objects"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	collectionName          = "books_catalog"
	bookIDIndex             = "book_id_1"
	authorAndGenreIndexName = "author_id_1_genre_ids_1"
	yearIndexName           = "published_year_1_position_1"
)

// document is the stored form of a book. Position keeps the catalog load order.
type document struct {
	objects.Book  `bson:",inline"`
	Position      int `bson:"position"`
	PublishedYear int `bson:"published_year"`
}

// BooksModel serves the catalog from a MongoDB collection.
type BooksModel struct {
	models.BaseModel[objects.Book]
	directory objects.Directory
}

var _ models.BookStore = (*BooksModel)(nil)

func NewBooksModel(ctx context.Context, conn *mongodb.MongoDBConn, directory objects.Directory, paginateSize ...int) (*BooksModel, error) {

	var searchSize = 10
	var paginateSizeLen = len(paginateSize)
	if paginateSizeLen > 1 {
		return nil, serverError.DataValidationFailedError.New("PaginateSize can have only one elements")
	} else if paginateSizeLen == 1 {
		searchSize = paginateSize[0]
	}

	var model = &BooksModel{directory: directory}

	coll, err := model.createCollection(ctx, conn)
	if err != nil {
		return nil, err
	}

	err = model.createIndexes(ctx, coll)
	if err != nil {
		return nil, err
	}

	err = model.Inject(coll, searchSize, "book_id")
	if err != nil {
		return nil, err
	}

	return model, nil
}

func (BooksModel) GetCollectionName() string {
	return collectionName
}

func (m *BooksModel) Directory() objects.Directory {
	return m.directory
}

func (m BooksModel) createCollection(ctx context.Context, conn *mongodb.MongoDBConn) (*mongo.Collection, error) {

	catalogDB := conn.GetDatabase()
	collectionName := m.GetCollectionName()

	collectionNameList, err := catalogDB.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, err
	}

	validator := bson.D{
		{
			Key: "$jsonSchema", Value: bson.M{
				"bsonType": "object",
				"required": []string{"book_id", "title", "author_id", "genre_ids", "position"},
				"properties": bson.M{
					"book_id": bson.M{
						"bsonType":    "string",
						"minLength":   1,
						"description": "Book ID must not be empty",
					},
					"title": bson.M{
						"bsonType":    "string",
						"minLength":   1,
						"description": "Title must not be empty",
					},
					"author_id": bson.M{
						"bsonType":    "string",
						"minLength":   1,
						"description": "Author ID must not be empty",
					},
					"genre_ids": bson.M{
						"bsonType":    "array",
						"uniqueItems": true,
						"items": bson.M{
							"bsonType": "string",
						},
						"description": "Genre IDs must contains unique string elements",
					},
					"published_date": bson.M{
						"bsonType":    "date",
						"description": "Published date must be a date",
					},
					"position": bson.M{
						"bsonType":    []string{"int", "long"},
						"minimum":     0,
						"description": "Position must be a non-negative integer",
					},
				},
			},
		},
	}

	if slices.Contains(collectionNameList, collectionName) {

		cmd := bson.D{
			{Key: "collMod", Value: collectionName},
			{Key: "validator", Value: validator},
			{Key: "validationLevel", Value: "strict"},
		}

		if err := catalogDB.RunCommand(ctx, cmd).Err(); err != nil {
			return nil, err
		}

		return catalogDB.Collection(collectionName), nil
	}

	collectionOption := options.CreateCollection()
	collectionOption.SetValidator(validator)
	collectionOption.SetValidationLevel("strict")

	if err := catalogDB.CreateCollection(ctx, collectionName, collectionOption); err != nil {
		return nil, err
	}

	return catalogDB.Collection(collectionName), nil
}

func (m BooksModel) createIndexes(ctx context.Context, coll *mongo.Collection) error {

	cur, err := coll.Indexes().List(ctx)
	if err != nil {
		return err
	}

	var indexes []bson.M
	if err := cur.All(ctx, &indexes); err != nil {
		return err
	}

	indexModels := []struct {
		name   string
		keys   bson.D
		unique bool
	}{
		{name: bookIDIndex, keys: bson.D{{Key: "book_id", Value: 1}}, unique: true},
		{name: authorAndGenreIndexName, keys: bson.D{{Key: "author_id", Value: 1}, {Key: "genre_ids", Value: 1}}},
		{name: yearIndexName, keys: bson.D{{Key: "published_year", Value: 1}, {Key: "position", Value: 1}}},
	}

	for _, index := range indexModels {

		contains := slices.ContainsFunc(indexes, func(m bson.M) bool {
			return m["name"] == index.name
		})

		if contains {
			continue
		}

		indexModelOption := options.Index()
		indexModelOption.SetName(index.name)
		if index.unique {
			indexModelOption.SetUnique(true)
		}

		indexModel := mongo.IndexModel{
			Keys:    index.keys,
			Options: indexModelOption,
		}

		if _, err := coll.Indexes().CreateOne(ctx, indexModel); err != nil {
			return err
		}
	}

	return nil
}

// Seed stores books in catalog order. Books already present are left untouched.
// It returns how many books were inserted.
func (m BooksModel) Seed(ctx context.Context, books []objects.Book) (int, error) {

	var inserted int
	for i, book := range books {

		if book.GenreIDs == nil {
			book.GenreIDs = []string{}
		}

		doc := document{Book: book, Position: i, PublishedYear: book.PublishedYear()}

		err := m.Insert(ctx, doc)
		if serverError.DuplicatedObjectIDError.IsEqual(err) {
			continue
		}

		if err != nil {
			return inserted, fmt.Errorf("seed book %s: %w", book.BookID, err)
		}

		inserted++
	}

	return inserted, nil
}

func (m BooksModel) Search(ctx context.Context, opt models.SearchOption) (b models.PaginationData[objects.Book], paginateErr error) {

	if opt.CurrentPage < 1 {
		paginateErr = serverError.CurrentPageInvalidError.New()
		return
	}

	pageSize := opt.PageSize
	if pageSize < 0 {
		paginateErr = serverError.PageSizeInvalidError.New()
		return
	}

	if pageSize == 0 {
		pageSize = m.SearchLenLimit
	}

	var sortStage bson.D
	switch opt.SortBy {
	case models.SortNone:
		sortStage = bson.D{{Key: "position", Value: 1}}
	case models.SortByYear:
		sortStage = bson.D{{Key: "published_year", Value: 1}, {Key: "position", Value: 1}}
	default:
		paginateErr = serverError.DataValidationFailedError.New(fmt.Sprintf("sort %q is unsupported", opt.SortBy))
		return
	}

	matchConditions, err := models.CriteriaMatchBson(opt.Criteria())
	if err != nil {
		paginateErr = err
		return
	}

	matchStage := bson.D{
		{
			Key: "$match", Value: bson.D{
				{Key: "$and", Value: matchConditions},
			},
		},
	}

	paginateResultQuery := bson.A{
		bson.D{{Key: "$sort", Value: sortStage}},
		bson.D{{Key: "$skip", Value: int64(opt.CurrentPage-1) * int64(pageSize)}},
		bson.D{{Key: "$limit", Value: pageSize}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "data", Value: bson.D{{Key: "$push", Value: "$$ROOT"}}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	matchResultQuery := bson.A{
		bson.D{{Key: "$count", Value: "total"}},
	}

	facetStage := bson.D{
		{
			Key: "$facet", Value: bson.D{
				{Key: "paginate_result", Value: paginateResultQuery},
				{Key: "match_result", Value: matchResultQuery},
			},
		},
	}

	projectStage := bson.D{
		{
			Key: "$project", Value: bson.D{
				{Key: "count", Value: bson.D{{Key: "$first", Value: "$paginate_result.count"}}},
				{Key: "total", Value: bson.D{{Key: "$first", Value: "$match_result.total"}}},
				{Key: "data", Value: bson.D{{Key: "$first", Value: "$paginate_result.data"}}},
			},
		},
	}

	return m.BaseModel.Search(ctx, models.BaseSearchOptions{
		CurrentPage: opt.CurrentPage,
		Pipeline:    mongo.Pipeline{matchStage, facetStage, projectStage},
	}, pageSize)
}
