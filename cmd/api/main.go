package main

import (
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	httpadp "sacco-backend/internal/adapter/http"
	mw "sacco-backend/internal/adapter/middleware"
	"sacco-backend/internal/adapter/repository/mysql"
	"sacco-backend/internal/audit"
	"sacco-backend/internal/config"
	activityDomain "sacco-backend/internal/domain/activity"
	contribDomain "sacco-backend/internal/domain/contribution"
	loanDomain "sacco-backend/internal/domain/loan"
	memberDomain "sacco-backend/internal/domain/member"
	paymentDomain "sacco-backend/internal/domain/payment"
	"sacco-backend/internal/infrastructure/cache"
	"sacco-backend/internal/infrastructure/db"
	contribUC "sacco-backend/internal/usecase/contribution"
	limitUC "sacco-backend/internal/usecase/limit"
	loanUC "sacco-backend/internal/usecase/loan"
	memberUC "sacco-backend/internal/usecase/member"
	paymentUC "sacco-backend/internal/usecase/payment"
)

func main() {
	log := logrus.New()
	if os.Getenv("APP_ENV") == "production" {
		log.SetFormatter(new(logrus.JSONFormatter))
	}

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("load config")
	}
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("invalid config")
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.WithError(err).Fatal("open mysql")
	}
	if err := gdb.AutoMigrate(
		&memberDomain.Member{},
		&contribDomain.Contribution{},
		&loanDomain.Loan{},
		&paymentDomain.Payment{},
		&activityDomain.Activity{},
	); err != nil {
		log.WithError(err).Fatal("migrate schema")
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.WithError(err).Fatal("open redis")
	}

	annualRate, _ := cfg.AnnualRate()
	multiplier, _ := cfg.LimitMultiplier()

	members := mysql.NewMemberRepository(gdb)
	contributions := mysql.NewContributionRepository(gdb)
	loans := mysql.NewLoanRepository(gdb)
	payments := mysql.NewPaymentRepository(gdb)
	activities := mysql.NewActivityRepository(gdb)
	guow := mysql.NewGormUoW(gdb)

	recorder := audit.NewRecorder(activities, log)

	contribUsecase := contribUC.NewUsecase(contributions, members, guow, recorder)
	limitUsecase := limitUC.NewUsecase(contribUsecase, loans, multiplier)
	loanUsecase := loanUC.NewUsecase(loans, members, limitUsecase, guow, recorder, loanUC.Policy{
		AnnualRate:  annualRate,
		DueInterval: cfg.DueInterval(),
	})
	paymentUsecase := paymentUC.NewUsecase(payments, guow, recorder)
	memberUsecase := memberUC.NewUsecase(members)

	h := httpadp.NewHandler()
	memberHandler := httpadp.NewMemberHandler(memberUsecase, limitUsecase)
	contribHandler := httpadp.NewContributionHandler(contribUsecase)
	loanHandler := httpadp.NewLoanHandler(loanUsecase)
	paymentHandler := httpadp.NewPaymentHandler(paymentUsecase)
	activityHandler := httpadp.NewActivityHandler(activities)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())

	idemp := mw.Idempotency(rdb, cfg.IdempTTL(), log)

	e.GET("/health", h.Health)

	e.POST("/members", memberHandler.RegisterMember)
	e.GET("/members/:member_id", memberHandler.GetMember)
	e.GET("/members/:member_id/limit", memberHandler.GetMemberLimit)
	e.GET("/members/:member_id/contributions", contribHandler.ListMemberContributions)
	e.GET("/members/:member_id/loans", loanHandler.ListMemberLoans)
	e.GET("/members/:member_id/payments", paymentHandler.ListMemberPayments)

	e.POST("/contributions", contribHandler.CreateContribution, idemp)
	e.POST("/contributions/:contribution_id/verify", contribHandler.VerifyContribution, idemp)
	e.POST("/contributions/:contribution_id/reject", contribHandler.RejectContribution, idemp)

	e.POST("/loans", loanHandler.RequestLoan, idemp)
	e.GET("/loans", loanHandler.ListLoans)
	e.GET("/loans/:loan_id", loanHandler.GetLoan)
	e.POST("/loans/:loan_id/approve", loanHandler.ApproveLoan, idemp)
	e.POST("/loans/:loan_id/reject", loanHandler.RejectLoan, idemp)
	e.POST("/loans/:loan_id/payments", paymentHandler.RecordPayment, idemp)
	e.GET("/loans/:loan_id/payments", paymentHandler.ListLoanPayments)

	e.GET("/activities", activityHandler.ListActivities)

	addr := ":" + cfg.AppPort
	log.WithField("addr", addr).Info("listening")
	if err := e.Start(addr); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
