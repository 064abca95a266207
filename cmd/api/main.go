package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/wintararaj-cmd/Attendance/internal/config"
	appHTTP "github.com/wintararaj-cmd/Attendance/internal/handler/http"
	"github.com/wintararaj-cmd/Attendance/internal/pkg/cron"
	"github.com/wintararaj-cmd/Attendance/internal/pkg/database"
	"github.com/wintararaj-cmd/Attendance/internal/pkg/jwt"
	"github.com/wintararaj-cmd/Attendance/internal/repository/postgresql"
	attendanceService "github.com/wintararaj-cmd/Attendance/internal/service/attendance"
	authService "github.com/wintararaj-cmd/Attendance/internal/service/auth"
	employeeService "github.com/wintararaj-cmd/Attendance/internal/service/employee"
	payrollService "github.com/wintararaj-cmd/Attendance/internal/service/payroll"
	salaryService "github.com/wintararaj-cmd/Attendance/internal/service/salary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.Database.DSN())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	loc, err := time.LoadLocation(cfg.Payroll.Timezone)
	if err != nil {
		log.Fatal("Invalid PAYROLL_TIMEZONE: ", err)
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	structureRepo := postgresql.NewSalaryStructureRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, structureRepo)
	salarySvc := salaryService.NewStructureService(structureRepo, employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(
		attendanceRepo, employeeRepo, structureRepo,
		loc, attendanceService.OvertimePolicy(cfg.Payroll.OvertimePolicy),
	)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, employeeRepo, structureRepo, attendanceRepo, loc)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	salaryHandler := appHTTP.NewSalaryHandler(salarySvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(
		jwtService,
		cfg.App.AllowedOrigins,
		authHandler,
		employeeHandler,
		salaryHandler,
		attendanceHandler,
		payrollHandler,
	)

	// Scheduled recompute keeps the hour figures of recent closed records
	// honest after status overrides or policy changes.
	scheduler := cron.NewScheduler()
	scheduler.AddJob(
		"overtime-recompute",
		time.Duration(cfg.Payroll.RecomputeIntervalHours)*time.Hour,
		func(ctx context.Context) error {
			to := time.Now().In(loc)
			from := to.AddDate(0, 0, -cfg.Payroll.RecomputeWindowDays)
			_, err := attendanceSvc.RecomputeHours(ctx, from, to)
			return err
		},
	)
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
