package routes

import (
	"codestreak/controllers"

	"github.com/gin-gonic/gin"
)

func GetStatisticsRouteHandler(c *gin.Context) {
	controllers.GetStatistics(c)
}

func GetStatisticsActivityRouteHandler(c *gin.Context) {
	controllers.GetStatisticsActivity(c)
}

func GetReportRouteHandler(c *gin.Context) {
	controllers.GetReport(c)
}
