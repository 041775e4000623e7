package utils

import "github.com/gin-gonic/gin"

// JSONSuccess writes the catalog CRUD success envelope.
func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

// JSONError writes the catalog CRUD error envelope. The ledger endpoints use
// their own coded error shape instead.
func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}
