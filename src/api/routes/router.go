package routes

import (
	"net/http"

	_ "diving-backend/src/api/docs"
	"diving-backend/src/storage"

	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Router struct {
	routes  *gin.Engine
	storage *storage.Storage
}

func NewRouter(storage *storage.Storage) *Router {
	r := &Router{
		routes:  gin.Default(),
		storage: storage,
	}

	RegisterDivingCenterRoutes(r)
	RegisterFishRoutes(r)
	RegisterSensorRoutes(r)

	r.routes.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))

	return r
}

func (r *Router) Run(addr string) error {
	return r.routes.Run(addr)
}

func (r *Router) Handler() http.Handler {
	return r.routes
}
