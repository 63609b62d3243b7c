package repository

import "errors"

// 通用的存储库错误
var (
	// ErrOutOfBounds 表示行列坐标超出画板范围
	ErrOutOfBounds = errors.New("repository: coordinate out of bounds")
)
