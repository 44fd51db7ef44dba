package main

import (
	"fmt"
	"net/http"

	"github.com/cmlabs-hris/attendance-report-go/internal/config"
	appHTTP "github.com/cmlabs-hris/attendance-report-go/internal/handler/http"
	"github.com/cmlabs-hris/attendance-report-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-report-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/attendance-report-go/internal/repository/postgresql"
	reportService "github.com/cmlabs-hris/attendance-report-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	reportSvc := reportService.NewReportService(employeeRepo, attendanceRepo, leaveRepo)

	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(JWTService, reportHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
