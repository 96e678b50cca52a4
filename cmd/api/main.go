package main

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"mikopo-backoffice/internal/audit"
	"mikopo-backoffice/internal/config"
	"mikopo-backoffice/internal/infrastructure/cache"
	"mikopo-backoffice/internal/infrastructure/db"
	"mikopo-backoffice/internal/infrastructure/objstore"
	"mikopo-backoffice/internal/schedule"

	httpadp "mikopo-backoffice/internal/adapter/http"
	idemp "mikopo-backoffice/internal/adapter/middleware"
	"mikopo-backoffice/internal/adapter/repository/mysql"

	applicationUC "mikopo-backoffice/internal/usecase/application"
	cashflowUC "mikopo-backoffice/internal/usecase/cashflow"
	repaymentUC "mikopo-backoffice/internal/usecase/repayment"
	reportUC "mikopo-backoffice/internal/usecase/report"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	strategy, err := schedule.ParseStrategy(cfg.ScheduleStrategy)
	if err != nil {
		log.WithError(err).Fatal("invalid schedule strategy")
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.WithError(err).Fatal("mysql connection failed")
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.WithError(err).Fatal("redis connection failed")
	}

	store, err := objstore.New(objstore.Config{
		Endpoint:        cfg.S3Endpoint,
		AccessKeyID:     cfg.S3AccessKey,
		SecretAccessKey: cfg.S3SecretKey,
		Bucket:          cfg.S3Bucket,
		UseSSL:          cfg.S3UseSSL,
		Region:          cfg.S3Region,
		Prefix:          cfg.S3Prefix,
	})
	if err != nil {
		log.WithError(err).Fatal("object store setup failed")
	}

	appRepo := mysql.NewApplicationRepository(gdb)
	instRepo := mysql.NewInstallmentRepository(gdb)
	cfRepo := mysql.NewCashFlowRepository(gdb)
	docRepo := mysql.NewDocumentRepository(gdb)
	auditRepo := mysql.NewAuditRepository(gdb)
	tx := mysql.NewGormUoW(gdb)

	sink := audit.NewLogger(auditRepo, log)

	appUC := applicationUC.NewUsecase(appRepo, instRepo, docRepo, store, tx, strategy, log)
	cfUC := cashflowUC.NewUsecase(cfRepo)
	repUC := repaymentUC.NewUsecase(instRepo, tx)
	rptUC := reportUC.NewUsecase(appRepo, cfRepo)

	h := httpadp.NewHandler()
	appH := httpadp.NewApplicationHandler(appUC, sink)
	cfH := httpadp.NewCashFlowHandler(cfUC, sink)
	repH := httpadp.NewRepaymentHandler(repUC, sink, time.Duration(cfg.DueSoonDays)*24*time.Hour)
	rptH := httpadp.NewReportHandler(rptUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())

	e.GET("/health", h.Health)

	api := e.Group("/api")
	api.Use(idemp.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second, log))

	api.GET("/loan-applications", appH.List)
	api.POST("/loan-applications", appH.Submit)
	api.GET("/loan-applications/:id", appH.Get)
	api.GET("/loan-applications/:id/schedule", appH.Schedule)
	api.PUT("/loan-applications/:id/status", appH.Transition)
	api.DELETE("/loan-applications/:id", appH.Delete)

	api.GET("/repayments", repH.List)
	api.POST("/repayments/:id/pay", repH.MarkPaid)

	api.GET("/cash-flow", cfH.List)
	api.POST("/cash-flow", cfH.Append)
	api.PUT("/cash-flow/:id", cfH.Update)
	api.DELETE("/cash-flow/:id", cfH.Delete)

	api.GET("/dashboard", rptH.Dashboard)
	api.GET("/reports/cash-flow", rptH.CashFlow)
	api.GET("/reports/loan-applications", rptH.LoanStatus)
	api.GET("/reports/loan-repayments", rptH.LoanRepayments)

	addr := ":" + cfg.AppPort
	log.WithField("addr", addr).Info("listening")
	if err := e.Start(addr); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
