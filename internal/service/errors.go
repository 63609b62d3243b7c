package service

import (
	"errors"

	"babysquares/internal/repository"
)

var (
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrInternalServer    = errors.New("internal server error")
)

// mapRepoError 将仓库层的错误映射到服务层定义的错误。
func mapRepoError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repository.ErrOutOfBounds) {
		return ErrInvalidCoordinate
	}
	// 默认返回内部服务器错误
	return ErrInternalServer
}
