package auth

import "errors"

var (
	// ErrInvalidCredentials dùng chung cho cả email không tồn tại lẫn sai password
	// để không leak editor nào tồn tại
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrEditorNotFound = errors.New("editor not found")
)
