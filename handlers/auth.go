package handlers

import (
	"net/http"
	"time"

	"planbuilder/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// guestTokenTTL is how long an anonymous drafting session stays valid.
const guestTokenTTL = 24 * time.Hour

// GuestTokenHandler issues an anonymous owner id plus the JWT that scopes
// all draft operations to it.
func GuestTokenHandler(c *gin.Context) {
	ownerID := uuid.New().String()
	token, err := utils.GenerateToken(ownerID, guestTokenTTL)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to issue guest token", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ownerId":   ownerID,
		"token":     token,
		"expiresIn": int(guestTokenTTL.Seconds()),
	})
}
