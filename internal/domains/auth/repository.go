package auth

import "context"

// EditorRepository là persistence contract cho bảng editors
type EditorRepository interface {
	// FindByEmail → ErrEditorNotFound nếu không tồn tại
	FindByEmail(ctx context.Context, email string) (*Editor, error)
}
