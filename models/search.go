package models

import (
	"fmt"
	"regexp"

	"github.com/supakorn-kn/go-catalog/errors"
	"go.mongodb.org/mongo-driver/bson"
)

type AggregatedResult[T any] struct {
	Count int `bson:"count"`
	Total int `bson:"total"`
	Data  []T `bson:"data"`
}

type MatchType uint8

const (
	EqualMatchType     = 0
	PartialMatchType   = 1
	StartWithMatchType = 2
	EndWithMatchType   = 3
)

func CreateMatchBson(key string, value any, matchType MatchType) (bson.D, error) {

	switch matchType {

	case EqualMatchType:
		return EqualMatchBson(key, value), nil

	case PartialMatchType:
		return PartialMatchBson(key, value), nil

	case StartWithMatchType:
		return StartWithMatchBson(key, value), nil

	case EndWithMatchType:
		return EndWithMatchBson(key, value), nil

	default:
		return nil, errors.MatchTypeInvalidError.New(matchType)
	}
}

// EqualMatchBson creates BSON for equal search (Case-sensitive). On an array field it matches any element.
func EqualMatchBson(key string, value any) bson.D {
	return bson.D{{Key: key, Value: value}}
}

// PartialMatchBson creates BSON for partial search (Case-insensitive)
func PartialMatchBson(key string, value any) bson.D {
	return bson.D{{Key: key, Value: bson.M{"$regex": value, "$options": "i"}}}
}

// StartWithMatchBson creates BSON for start with keyword search (Case-insensitive)
func StartWithMatchBson(key string, value any) bson.D {
	format := fmt.Sprintf("^%s", value)
	return bson.D{{Key: key, Value: bson.M{"$regex": format, "$options": "im"}}}
}

// EndWithMatchBson creates BSON for end with keyword search (Case-insensitive)
func EndWithMatchBson(key string, value any) bson.D {
	format := fmt.Sprintf("%s$", value)
	return bson.D{{Key: key, Value: bson.M{"$regex": format, "$options": "im"}}}
}

// CriteriaMatchBson translates criteria into the $and conditions of a $match stage.
// The title query is matched literally.
func CriteriaMatchBson(criteria FilterCriteria) (bson.A, error) {

	matchConditions := bson.A{}

	if criteria.HasTitle() {

		matchBson, err := CreateMatchBson("title", regexp.QuoteMeta(criteria.TitleQuery), PartialMatchType)
		if err != nil {
			return nil, err
		}

		matchConditions = append(matchConditions, matchBson)
	}

	if criteria.HasAuthor() {

		matchBson, err := CreateMatchBson("author_id", criteria.AuthorID, EqualMatchType)
		if err != nil {
			return nil, err
		}

		matchConditions = append(matchConditions, matchBson)
	}

	if criteria.HasGenre() {

		matchBson, err := CreateMatchBson("genre_ids", criteria.GenreID, EqualMatchType)
		if err != nil {
			return nil, err
		}

		matchConditions = append(matchConditions, matchBson)
	}

	if len(matchConditions) == 0 {
		matchConditions = append(matchConditions, bson.D{})
	}

	return matchConditions, nil
}
