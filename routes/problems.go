package routes

import (
	"codestreak/controllers"

	"github.com/gin-gonic/gin"
)

// SetupProblemRoutes registers the problem catalog and submission routes.
func SetupProblemRoutes(router *gin.Engine) {
	problems := router.Group("/problems")
	{
		problems.GET("", controllers.GetProblems)
		problems.GET("/:id", controllers.GetProblem)
		problems.POST("/random", controllers.RandomProblem)
		problems.POST("/submit", controllers.SubmitProblem)
	}
}
