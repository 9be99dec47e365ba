package utils

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
)

// QueryInt parses an integer query parameter, falling back to def when it is
// missing or malformed.
func QueryInt(c *gin.Context, key string, def int) int {
	v := c.Query(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// QueryFloat parses a required float query parameter. NaN and infinities
// are rejected.
func QueryFloat(c *gin.Context, key string) (float64, bool) {
	v, ok := c.GetQuery(key)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
