package public

import (
	handlershared "github.com/storefront-next/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
)

func getOwnerID(c *gin.Context) (string, bool) {
	return handlershared.GetContextString(c, "owner_id", "session required")
}
