package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/rushikeshbylinelearning/HRMS-sub005/config"
	attendancecontroller "github.com/rushikeshbylinelearning/HRMS-sub005/controllers/attendance"
	authcontroller "github.com/rushikeshbylinelearning/HRMS-sub005/controllers/auth"
	holidaycontroller "github.com/rushikeshbylinelearning/HRMS-sub005/controllers/holiday"
	leavecontroller "github.com/rushikeshbylinelearning/HRMS-sub005/controllers/leave"
	shiftcontroller "github.com/rushikeshbylinelearning/HRMS-sub005/controllers/shift"
	"github.com/rushikeshbylinelearning/HRMS-sub005/engine"
	"github.com/rushikeshbylinelearning/HRMS-sub005/middlewares"
	"github.com/rushikeshbylinelearning/HRMS-sub005/models"
)

func main() {
	if err := config.Load(); err != nil {
		log.Fatal(err)
	}

	db, err := models.Connect()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if err := models.Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	clock := engine.SystemClock{}

	authH := authcontroller.New(db)
	attendanceH := attendancecontroller.New(db, clock)
	shiftH := shiftcontroller.New(db)
	leaveH := leavecontroller.New(db)
	holidayH := holidaycontroller.New(db)

	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	v1 := router.Group("/v1")
	{
		v1.POST("/login", authH.Login)
		v1.GET("/logout", authH.Logout)

		api := v1.Group("/api")
		api.Use(middlewares.AuthMiddleware(db))
		{
			api.POST("/attendance/clock-in", attendanceH.ClockIn)
			api.PUT("/attendance/clock-out", attendanceH.ClockOut)
			api.POST("/attendance/break/start", attendanceH.StartBreak)
			api.PUT("/attendance/break/end", attendanceH.EndBreak)
			api.GET("/attendance/today", attendanceH.Today)
			api.GET("/attendance/history", attendanceH.History)
			api.GET("/attendance/predict", attendanceH.PredictLogout)
			api.PUT("/attendance/:id/override", attendanceH.Override)

			api.GET("/shifts", shiftH.List)
			api.POST("/shifts", shiftH.Create)

			api.POST("/leaves", leaveH.Create)
			api.GET("/leaves", leaveH.History)
			api.PUT("/leaves/:id/status", leaveH.UpdateStatus)

			api.GET("/holidays", holidayH.List)
			api.POST("/holidays", holidayH.Create)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server is running on port %s\n", port)

	if err := router.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
