package main

import (
	"fmt"
	"net/http"

	"github.com/flosclinic/attendance-bot/internal/config"
	appHTTP "github.com/flosclinic/attendance-bot/internal/handler/http"
	"github.com/flosclinic/attendance-bot/internal/pkg/database"
	"github.com/flosclinic/attendance-bot/internal/pkg/line"
	"github.com/flosclinic/attendance-bot/internal/repository/postgresql"
	attendanceService "github.com/flosclinic/attendance-bot/internal/service/attendance"
	bookingService "github.com/flosclinic/attendance-bot/internal/service/booking"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	orgRepo := postgresql.NewOrganizationRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	lineClient := line.NewClient(cfg.Line.ChannelAccessToken)

	attendanceSvc := attendanceService.NewAttendanceService(
		orgRepo,
		employeeRepo,
		attendanceRepo,
		lineClient,
		cfg.Admin.AuthCode,
	)
	bookingSvc := bookingService.NewBookingService(lineClient)

	healthHandler := appHTTP.NewHealthHandler()
	webhookHandler := appHTTP.NewWebhookHandler(attendanceSvc)
	bookingHandler := appHTTP.NewBookingHandler(bookingSvc)

	router := appHTTP.NewRouter(
		cfg.Line.ChannelSecret,
		cfg.App.Env,
		healthHandler,
		webhookHandler,
		bookingHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
