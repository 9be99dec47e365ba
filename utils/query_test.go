package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func queryContext(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestQueryFloat(t *testing.T) {
	tests := []struct {
		query string
		want  float64
		ok    bool
	}{
		{"v=41.0351", 41.0351, true},
		{"v=-28.5", -28.5, true},
		{"", 0, false},
		{"v=abc", 0, false},
		{"v=NaN", 0, false},
		{"v=nan", 0, false},
		{"v=Inf", 0, false},
		{"v=-Inf", 0, false},
		{"v=1e400", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, ok := QueryFloat(queryContext(tt.query), "v")
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQueryInt(t *testing.T) {
	assert.Equal(t, 5, QueryInt(queryContext("n=5"), "n", 3))
	assert.Equal(t, 3, QueryInt(queryContext("n=five"), "n", 3))
	assert.Equal(t, 3, QueryInt(queryContext(""), "n", 3))
}
