package api

import "github.com/gin-gonic/gin" // Gin web framework

// respondError writes the shared error envelope {success:false, error:{code, message}}
func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   gin.H{"code": code, "message": message},
	})
}

// respondData writes a success envelope with a data payload
func respondData(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

// respondMessage writes a success envelope with a human-readable message
// and an optional data payload
func respondMessage(c *gin.Context, status int, message string, data any) {
	resp := gin.H{"success": true, "message": message}
	if data != nil {
		resp["data"] = data
	}
	c.JSON(status, resp)
}
