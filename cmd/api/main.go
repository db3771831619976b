package main

import (
	"fmt"
	"net/http"

	"github.com/PriyankaGowda2005/FWC-HRMS-sub004/internal/config"
	appHTTP "github.com/PriyankaGowda2005/FWC-HRMS-sub004/internal/handler/http"
	"github.com/PriyankaGowda2005/FWC-HRMS-sub004/internal/pkg/cron"
	"github.com/PriyankaGowda2005/FWC-HRMS-sub004/internal/pkg/database"
	"github.com/PriyankaGowda2005/FWC-HRMS-sub004/internal/pkg/jwt"
	"github.com/PriyankaGowda2005/FWC-HRMS-sub004/internal/repository/postgresql"
	attendanceService "github.com/PriyankaGowda2005/FWC-HRMS-sub004/internal/service/attendance"
	leaveService "github.com/PriyankaGowda2005/FWC-HRMS-sub004/internal/service/leave"
	payrollService "github.com/PriyankaGowda2005/FWC-HRMS-sub004/internal/service/payroll"
	reportService "github.com/PriyankaGowda2005/FWC-HRMS-sub004/internal/service/report"
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
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveTypeRepo := postgresql.NewLeaveTypeRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	leaveBalanceRepo := postgresql.NewLeaveBalanceRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	reportRepo := postgresql.NewReportRepository(db)
	txManager := postgresql.NewTxManager(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	leaveSvc := leaveService.NewLeaveService(leaveTypeRepo, leaveRequestRepo, leaveBalanceRepo, employeeRepo, txManager)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, attendanceRepo, leaveRequestRepo, employeeRepo)
	reportSvc := reportService.NewReportService(reportRepo)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceSvc).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		JWTService,
		attendanceHandler,
		leaveHandler,
		payrollHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
