package main

import (
	handler "school-hub/biz/adaptor/controller"
	"school-hub/biz/adaptor/controller/api"

	"github.com/cloudwego/hertz/pkg/app/server"
)

// customizeRegister registers customize routers.
func customizedRegister(r *server.Hertz) {
	r.GET("/ping", handler.Ping)

	apiGroup := r.Group("/api")
	{
		apiGroup.POST("/register", api.Register)
		apiGroup.POST("/login", api.Login)

		attendance := apiGroup.Group("/attendance")
		{
			attendance.GET("/:studentId", api.ListAttendance)
			attendance.POST("/:studentId", api.CreateAttendance)
			attendance.PUT("/:studentId", api.UpdateAttendance)
		}

		records := apiGroup.Group("/records")
		{
			records.GET("/:studentId", api.GetRecord)
			records.POST("/:studentId", api.CreateRecord)
			records.PUT("/:studentId", api.UpdateRecord)
		}

		reportcards := apiGroup.Group("/reportcards")
		{
			reportcards.GET("/:studentId", api.ListReportCards)
			reportcards.POST("/:studentId", api.CreateReportCard)
			reportcards.PUT("/:studentId", api.UpdateReportCard)
		}
	}
}
