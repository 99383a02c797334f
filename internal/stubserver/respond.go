package stubserver

import (
	"sort"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/savasana-dev/yogabook/internal/validation"
)

// The contract's error shape is a bare {"message": ...} body, matching
// what the original backend sends. No response envelope.

func respondMessage(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

func abortMessage(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, gin.H{"message": message})
}

// bindErrorMessage flattens a binding/validation error into one
// message string, fields in stable order.
func bindErrorMessage(err error) string {
	fields := validation.TranslateErrors(err)
	parts := make([]string, 0, len(fields))
	for name, msg := range fields {
		parts = append(parts, name+": "+msg)
	}
	sort.Strings(parts)
	return strings.Join(parts, "; ")
}
