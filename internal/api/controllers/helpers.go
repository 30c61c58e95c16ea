package controllers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"skillswap/internal/models/request_models"
	"skillswap/pkg/middleware"
	"skillswap/pkg/utils"
)

// currentUserID returns the public id from the verified claim set. It answers
// 401 itself when the claims are missing.
func currentUserID(c *gin.Context) (string, bool) {
	claims, ok := middleware.CurrentClaims(c)
	if !ok || claims.UserID == "" {
		utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
		return "", false
	}
	return claims.UserID, true
}

func respondBindError(c *gin.Context, err error) {
	utils.RespondError(c, http.StatusBadRequest, utils.BindErrorMessage(err))
}

// rejectUnknownFormFields answers 400 when a form body carries a field the
// request struct does not bind. JSON bodies are already strict.
func rejectUnknownFormFields(c *gin.Context, request interface{}) bool {
	var keys []string
	if form := c.Request.MultipartForm; form != nil {
		for k := range form.Value {
			keys = append(keys, k)
		}
		for k := range form.File {
			keys = append(keys, k)
		}
	} else {
		for k := range c.Request.PostForm {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	allowed := request_models.FormFieldNames(request)
	for _, k := range keys {
		if !allowed[k] {
			utils.RespondError(c, http.StatusBadRequest, `Request contains unknown field "`+k+`"`)
			return true
		}
	}
	return false
}
