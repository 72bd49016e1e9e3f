package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vahanbazar/internal/repositories/interfaces"
	"vahanbazar/internal/services"
	"vahanbazar/internal/utils"
	"vahanbazar/pkg/logger"
)

// listingSortFields are the orderings the public listing endpoints accept.
var listingSortFields = map[string]bool{
	"price":      true,
	"created_at": true,
	"updated_at": true,
}

func currentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		utils.UnauthorizedResponse(c)
		return primitive.NilObjectID, false
	}

	userID, ok := value.(primitive.ObjectID)
	if !ok {
		utils.UnauthorizedResponse(c)
		return primitive.NilObjectID, false
	}

	return userID, true
}

// pageFrom converts query pagination into a repository page. Sort fields
// outside the allow list fall back to newest first.
func pageFrom(params *utils.PaginationParams, allowed map[string]bool) interfaces.Page {
	page := interfaces.Page{
		Skip:  int64(params.GetSkip()),
		Limit: int64(params.GetLimit()),
	}
	if allowed[params.Sort] {
		page.SortField = params.Sort
		page.SortAsc = params.Order == "asc"
	}
	return page
}

// respondServiceError translates service errors into API responses. Domain
// errors map by kind; anything else is a 500 with the detail kept server side.
func respondServiceError(c *gin.Context, log *logger.Logger, err error) {
	var de *services.DomainError
	if errors.As(err, &de) {
		status := http.StatusInternalServerError
		switch de.Kind {
		case services.KindValidation:
			status = http.StatusBadRequest
		case services.KindNotFound:
			status = http.StatusNotFound
		case services.KindAuthorization:
			status = http.StatusForbidden
		case services.KindConflict:
			status = http.StatusConflict
		}

		if de.Field != "" {
			utils.ErrorResponseWithDetails(c, status, de.Code, de.Message, map[string]string{de.Field: de.Message})
			return
		}
		utils.ErrorResponse(c, status, de.Code, de.Message)
		return
	}

	log.WithError(err).WithField("path", c.FullPath()).Error("request failed")
	utils.InternalServerErrorResponse(c)
}
