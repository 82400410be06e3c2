package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kbajaj/emissions-backend-go/internal/config"
	"github.com/kbajaj/emissions-backend-go/internal/handler"
	"github.com/kbajaj/emissions-backend-go/internal/middleware"
	"github.com/kbajaj/emissions-backend-go/internal/service"
	"github.com/kbajaj/emissions-backend-go/internal/store"
)

// SetupRouter wires middleware, handlers and routes
func SetupRouter(cfg *config.Config, st *store.Store, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger(log))
	r.Use(middleware.RateLimit(cfg.RateLimit, time.Minute))

	// CORS: the dashboard front-end is served from another origin
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	datasets := service.NewDatasetService(st)
	emissions := service.NewEmissionsService(datasets)
	flows := service.NewFlowService(datasets)
	reference := service.NewReferenceService(datasets)

	seriesHandler := handler.NewSeriesHandler(emissions)
	rankingHandler := handler.NewRankingHandler(emissions)
	mapHandler := handler.NewMapHandler(emissions)
	flowHandler := handler.NewFlowHandler(flows)
	referenceHandler := handler.NewReferenceHandler(reference, datasets)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Emissions Backend API is running",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	{
		api.GET("/series/:dataset/:entity", seriesHandler.GetSeries)

		api.GET("/rankings/:dataset", rankingHandler.GetRankings)
		api.GET("/rankings/:dataset/:entity", rankingHandler.GetRankOf)
		api.GET("/share/:dataset", rankingHandler.GetInternationalShare)

		api.GET("/map/:dataset", mapHandler.GetChoropleth)

		api.GET("/flows", flowHandler.GetFlows)
		api.GET("/partners/:iso3", flowHandler.GetPartners)

		api.GET("/factors/:commodity", referenceHandler.GetFactors)
		api.GET("/datasets", referenceHandler.GetDatasetStatuses)

		global := api.Group("/global")
		{
			global.GET("/timeseries", referenceHandler.GetGlobalTimeseries)
			global.GET("/modes", referenceHandler.GetGlobalByMode)
		}

		meta := api.Group("/meta")
		{
			meta.GET("/countries", referenceHandler.GetCountries)
			meta.GET("/dropdowns", referenceHandler.GetDropdowns)
		}
	}

	return r
}
