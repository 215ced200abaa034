package errors

const (
	CurrentPageInvalidErrorCode   = 200_001
	ObjectIDNotFoundErrorCode     = 200_002
	DuplicatedObjectIDErrorCode   = 200_003
	MatchTypeInvalidErrorCode     = 200_004
	PageSizeInvalidErrorCode      = 200_005
	DataValidationFailedErrorCode = 200_006
)

// CurrentPageInvalidError indicates user gives invalid current page when searching items
var CurrentPageInvalidError = new(CurrentPageInvalidErrorCode, "CurrentPageInvalid", "Current page can be only positive integer")

// ObjectIDNotFoundError indicates user gives invalid item ID
var ObjectIDNotFoundError = new(ObjectIDNotFoundErrorCode, "ObjectIDNotFound", "Item with ID %s is not exist")

// DuplicatedObjectIDError indicates the catalog holds the same item ID more than once
var DuplicatedObjectIDError = new(DuplicatedObjectIDErrorCode, "DuplicatedObjectID", "item ID %s is already used")

// MatchTypeInvalidError indicates user give invalid or unsupported match type when user search items
var MatchTypeInvalidError = new(MatchTypeInvalidErrorCode, "MatchTypeInvalid", "Match type %d is invalid or unsupported")

// PageSizeInvalidError indicates a page window was requested with a non-positive size
var PageSizeInvalidError = new(PageSizeInvalidErrorCode, "PageSizeInvalid", "Page size can be only positive integer")

// DataValidationFailedError indicates a record or request body does not satisfy the data model
var DataValidationFailedError = new(DataValidationFailedErrorCode, "DataValidationFailed", "data validation failed: %s")
