package models

import (
	"gorm.io/gorm"

	"github.com/hatcher/taskboard/pkg/logs"
)

func Count(tx *gorm.DB) (int64, error) {
	var cnt int64
	err := tx.Count(&cnt).Error
	return cnt, err
}

func Exists(tx *gorm.DB) (bool, error) {
	num, err := Count(tx)
	return num > 0, err
}

func Insert(tx *gorm.DB, obj interface{}) error {
	return tx.Create(obj).Error
}

func Update(tx *gorm.DB, obj interface{}) error {
	return tx.Save(obj).Error
}

func Delete(tx *gorm.DB, obj interface{}) error {
	return tx.Delete(obj).Error
}

type Pageable struct {
	PageNo   int `json:"pageNo"`
	PageSize int `json:"pageSize"`
}

func PageRequest(pageNo, pageSize int) Pageable {
	if pageNo <= 0 {
		pageNo = 1
	}
	if pageSize <= 0 {
		pageSize = 10
	}
	return Pageable{
		PageNo:   pageNo,
		PageSize: pageSize,
	}
}

func (pa *Pageable) Offset() int {
	if pa.PageNo <= 0 {
		pa.PageNo = 1
	}
	if pa.PageSize <= 0 {
		pa.PageSize = 10
	}
	return (pa.PageNo - 1) * pa.PageSize
}

// PageQuery 分页查询，order为完整排序表达式
func PageQuery[T interface{}](tx *gorm.DB, pageable Pageable, order string, where string, args ...interface{}) ([]T, int64, error) {
	var lst []T
	var total int64
	query := tx.Model(new(T))
	if where != "" {
		query = query.Where(where, args...)
	}
	e := query.Count(&total).Error
	if e != nil {
		logs.Errorf("Page 统计失败: %v", e)
		return nil, 0, e
	}
	if order != "" {
		query = query.Order(order)
	}
	err := query.Offset(pageable.Offset()).
		Limit(pageable.PageSize).
		Find(&lst).
		Error
	if err != nil {
		logs.Errorf("Page 查询失败: %v", err)
		return nil, 0, err
	}
	return lst, total, nil
}
