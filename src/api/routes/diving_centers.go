package routes

import (
	"net/http"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
)

const divingCentersRoute = "/api/diving-centers"

func RegisterDivingCenterRoutes(router *Router) {
	router.routes.GET(divingCentersRoute, router.GetDivingCenters)
}

// @Summary Get diving centers
// @Description Get the full list of diving centers.
// @Produce json
// @Success 200 {array} DivingCenter
// @Failure 500 {object} ErrorResponse "error message"
// @Router /api/diving-centers [get]
func (r *Router) GetDivingCenters(context *gin.Context) {
	records, err := r.storage.ListDivingCenters()
	if err != nil {
		log.WithError(err).Error("list diving centers")
		context.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch diving centers"})
		return
	}

	centers := make([]*DivingCenter, 0, len(records))
	for _, record := range records {
		centers = append(centers, &DivingCenter{
			ID:        record.ID,
			Name:      record.Name,
			Latitude:  record.Latitude,
			Longitude: record.Longitude,
		})
	}

	context.JSON(http.StatusOK, centers)
}
