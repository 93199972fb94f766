package hertzx

import (
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"
)

// DefaultQueryInt 获取int参数，缺省时返回默认值
func DefaultQueryInt(c *app.RequestContext, paramName string, defaultValue int) (int, error) {
	pv := c.DefaultQuery(paramName, "")
	if pv == "" {
		return defaultValue, nil
	}
	return strconv.Atoi(pv)
}
