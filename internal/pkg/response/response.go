package response

import "github.com/gin-gonic/gin"

// Success and Error write the envelope every handler in this service
// uses. Error messages must stay generic for auth failures so a
// caller cannot tell which half of a credential pair was wrong.

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}
