package util

import (
	"github.com/google/uuid"
)

// NewUUID 生成uuid字符串主键
func NewUUID() string {
	return uuid.New().String()
}

// IsUUID 校验是否为合法uuid
func IsUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
