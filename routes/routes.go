package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Jeffrey-mu/weight-loss/controllers"
	"github.com/Jeffrey-mu/weight-loss/middlewares"
	"github.com/Jeffrey-mu/weight-loss/services"
	"github.com/Jeffrey-mu/weight-loss/utils"
)

type Deps struct {
	Auth     *controllers.AuthController
	User     *controllers.UserController
	Weight   *controllers.WeightController
	Diet     *controllers.DietController
	Exercise *controllers.ExerciseController
	Stats    *controllers.StatsController
	Admin    *controllers.AdminController

	Tokens *utils.TokenManager
	Users  *services.UserService
	Policy *services.AdminPolicy
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = []string{"Content-Type", "Authorization", "X-Requested-With"}
	r.Use(cors.New(corsCfg))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Weight Loss API is running")
	})

	authRequired := middlewares.AuthRequired(d.Tokens)
	adminRequired := middlewares.AdminRequired(d.Users, d.Policy)

	auth := r.Group("/auth")
	{
		auth.POST("/register", d.Auth.Register)
		auth.POST("/login", d.Auth.Login)
		auth.GET("/me", authRequired, d.Auth.Me)
	}

	user := r.Group("/user", authRequired)
	{
		user.PUT("/profile", d.User.UpdateProfile)
		user.POST("/avatar", d.User.UploadAvatar)
	}

	weight := r.Group("/weight", authRequired)
	{
		weight.GET("", d.Weight.List)
		weight.POST("", d.Weight.Create)
		weight.PUT("/:id", d.Weight.Update)
		weight.DELETE("/:id", d.Weight.Delete)
	}

	diet := r.Group("/diet", authRequired)
	{
		diet.GET("", d.Diet.List)
		diet.POST("", d.Diet.Create)
		diet.PUT("/:id", d.Diet.Update)
		diet.DELETE("/:id", d.Diet.Delete)
	}

	exercise := r.Group("/exercise", authRequired)
	{
		exercise.GET("", d.Exercise.List)
		exercise.POST("", d.Exercise.Create)
		exercise.PUT("/:id", d.Exercise.Update)
		exercise.DELETE("/:id", d.Exercise.Delete)
	}

	stats := r.Group("/stats", authRequired)
	{
		stats.GET("/today", d.Stats.Today)
	}

	admin := r.Group("/admin", authRequired, adminRequired)
	{
		admin.GET("/overview", d.Admin.Overview)
		admin.GET("/users", d.Admin.ListUsers)
		admin.PATCH("/users/:id/role", d.Admin.UpdateRole)
		admin.DELETE("/users/:id", d.Admin.DeleteUser)
	}

	return r
}
