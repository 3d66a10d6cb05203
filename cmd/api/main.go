package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/neeraj5696/magnum-attendance-go/internal/config"
	appHTTP "github.com/neeraj5696/magnum-attendance-go/internal/handler/http"
	"github.com/neeraj5696/magnum-attendance-go/internal/pkg/cron"
	"github.com/neeraj5696/magnum-attendance-go/internal/pkg/database"
	"github.com/neeraj5696/magnum-attendance-go/internal/pkg/jwt"
	"github.com/neeraj5696/magnum-attendance-go/internal/repository/postgresql"
	attendanceService "github.com/neeraj5696/magnum-attendance-go/internal/service/attendance"
	serviceAuth "github.com/neeraj5696/magnum-attendance-go/internal/service/auth"
	"github.com/neeraj5696/magnum-attendance-go/internal/service/derivation"
	punchService "github.com/neeraj5696/magnum-attendance-go/internal/service/punch"
	regularizationService "github.com/neeraj5696/magnum-attendance-go/internal/service/regularization"
	reportService "github.com/neeraj5696/magnum-attendance-go/internal/service/report"
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

	engine, err := derivation.NewEngine(derivation.Config{
		InDevices:  cfg.Devices.InDevices,
		OutDevices: cfg.Devices.OutDevices,
	})
	if err != nil {
		log.Fatal("Invalid device configuration: ", err)
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)
	regularizationRepo := postgresql.NewRegularizationRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	authSvc := serviceAuth.NewAuthService(userRepo, JWTService)
	punchSvc := punchService.NewPunchService(punchRepo, engine)
	attendanceSvc := attendanceService.NewAttendanceService(punchRepo, employeeRepo, regularizationRepo, engine)
	regularizationSvc := regularizationService.NewRegularizationService(regularizationRepo, employeeRepo)
	reportSvc := reportService.NewReportService(punchRepo, employeeRepo, engine)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	punchHandler := appHTTP.NewPunchHandler(punchSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	regularizationHandler := appHTTP.NewRegularizationHandler(regularizationSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	scheduler := cron.NewScheduler()
	digestJobs := cron.NewDigestJobs(punchRepo, employeeRepo, engine, engine.MonitoredDevices())
	digestJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		punchHandler,
		attendanceHandler,
		regularizationHandler,
		reportHandler,
		cfg.App.FrontendURL,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
