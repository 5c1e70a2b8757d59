package article

import "errors"

var (
	ErrArticleNotFound    = errors.New("article not found")
	ErrNoBlocks           = errors.New("article must have at least one content block")
	ErrInvalidCategory    = errors.New("unknown category")
	ErrInvalidSubcategory = errors.New("subcategory does not belong to category")
	ErrInvalidBlockType   = errors.New("invalid block type")
)
