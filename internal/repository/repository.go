package repository

import (
	"errors"

	"gorm.io/gorm"
)

// takeOne 查询单条记录，不存在时返回 (nil, nil)
func takeOne[T any](q *gorm.DB) (*T, error) {
	var v T
	err := q.Take(&v).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func exists(q *gorm.DB) (bool, error) {
	var cnt int64
	if err := q.Limit(1).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}
