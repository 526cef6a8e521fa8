package routes

import (
	"codestreak/controllers"

	"github.com/gin-gonic/gin"
)

func UpdateUserRouteHandler(c *gin.Context) {
	controllers.UpdateUser(c)
}

func GetUserActivityRouteHandler(c *gin.Context) {
	controllers.GetUserActivity(c)
}

func PurchaseThemeRouteHandler(c *gin.Context) {
	controllers.PurchaseTheme(c)
}
