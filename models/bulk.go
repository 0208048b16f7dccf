package models

// BulkDeleteRequest carries the id list for a bulk delete. Unknown ids are
// skipped, not failed; an empty list is rejected before the store is
// touched.
type BulkDeleteRequest struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}

// BulkDeleteByCategoryRequest deletes every product whose denormalized
// category name matches.
type BulkDeleteByCategoryRequest struct {
	CategoryName string `json:"categoryName" binding:"required"`
}
