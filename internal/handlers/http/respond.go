package handlers

import (
	"github.com/gin-gonic/gin"

	"sweaters/internal/models"
)

func respond(c *gin.Context, status int, resp models.APIResponse) {
	resp.StatusCode = status
	c.Set(messageKey, resp.Message)
	c.JSON(status, resp)
}

// fail traduz o erro do domínio em status HTTP e envelope.
func fail(c *gin.Context, err error) {
	kind := models.KindOf(err)
	data := map[string]any{"error": string(kind)}
	for k, v := range models.MetadataOf(err) {
		data[k] = v
	}
	respond(c, kind.HTTPStatus(), models.APIResponse{Message: err.Error(), Data: data})
}

func invalid(c *gin.Context, err error) {
	fail(c, models.NewError(models.KindInvalidRequest, err.Error(), nil))
}
