package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	database "github.com/sebuszqo/FinanceTracker/db"
	"github.com/sebuszqo/FinanceTracker/internal/auth"
	"github.com/sebuszqo/FinanceTracker/internal/finance/application"
	"github.com/sebuszqo/FinanceTracker/internal/finance/infrastructure"
	"github.com/sebuszqo/FinanceTracker/internal/finance/interfaces"
	"github.com/sebuszqo/FinanceTracker/internal/user"
)

type Response struct {
	Message string `json:"message"`
}

func loggingMiddleware(logger *logrus.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start).String(),
		}).Info("request completed")
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	})
}

type Server struct {
	router             *http.ServeMux
	dbService          *database.DBService
	authHandler        *auth.Handler
	authService        auth.Service
	userHandler        *user.Handler
	transactionHandler *interfaces.TransactionHandler
	analyticsHandler   *interfaces.AnalyticsHandler
}

func NewServer(
	dbService *database.DBService,
	authHandler *auth.Handler,
	authService auth.Service,
	userHandler *user.Handler,
	transactionHandler *interfaces.TransactionHandler,
	analyticsHandler *interfaces.AnalyticsHandler,
) *Server {
	return &Server{
		router:             http.NewServeMux(),
		dbService:          dbService,
		authHandler:        authHandler,
		authService:        authService,
		userHandler:        userHandler,
		transactionHandler: transactionHandler,
		analyticsHandler:   analyticsHandler,
	}
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(Response{Message: "Path not found"})
}

func checkConfiguration() error {
	err := godotenv.Load()
	if err != nil {
		logrus.Warn("Error loading .env file, continuing with system environment variables")
	}

	if os.Getenv("JWT_SECRET") == "" {
		return errors.New("no JWT_SECRET Provided")
	}
	return nil
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, s.dbService.Health())
}

func (s *Server) RegisterRoutes() {
	sessionRequired := s.authService.JWTSessionMiddleware()

	mainRouter := http.NewServeMux()

	// Public routes
	mainRouter.Handle("POST /api/auth/register", http.HandlerFunc(s.userHandler.HandleRegister))
	mainRouter.Handle("POST /api/auth/login", http.HandlerFunc(s.authHandler.HandleLogin))
	mainRouter.Handle("POST /api/auth/logout", http.HandlerFunc(s.authHandler.HandleLogout))
	mainRouter.Handle("GET /api/ready", http.HandlerFunc(s.handleReady))

	// Profile
	mainRouter.Handle("GET /api/auth/profile", sessionRequired(http.HandlerFunc(s.userHandler.HandleGetProfile)))
	mainRouter.Handle("PUT /api/auth/update", sessionRequired(http.HandlerFunc(s.userHandler.HandleUpdateProfile)))

	// Transactions
	mainRouter.Handle("POST /api/transactions", sessionRequired(http.HandlerFunc(s.transactionHandler.CreateTransaction)))
	mainRouter.Handle("GET /api/transactions", sessionRequired(http.HandlerFunc(s.transactionHandler.GetUserTransactions)))
	mainRouter.Handle("GET /api/transactions/{transactionID}", sessionRequired(http.HandlerFunc(s.transactionHandler.GetTransaction)))
	mainRouter.Handle("PUT /api/transactions/{transactionID}", sessionRequired(http.HandlerFunc(s.transactionHandler.UpdateTransaction)))
	mainRouter.Handle("DELETE /api/transactions/{transactionID}", sessionRequired(http.HandlerFunc(s.transactionHandler.DeleteTransaction)))

	// Analytics
	mainRouter.Handle("GET /api/analytics/summary", sessionRequired(http.HandlerFunc(s.analyticsHandler.GetSummary)))
	mainRouter.Handle("GET /api/analytics/monthly", sessionRequired(http.HandlerFunc(s.analyticsHandler.GetMonthlyReport)))
	mainRouter.Handle("GET /api/analytics/categories", sessionRequired(http.HandlerFunc(s.analyticsHandler.GetCategoryReport)))

	mainRouter.Handle("/", http.HandlerFunc(notFoundHandler))

	s.router = mainRouter
}

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if err := checkConfiguration(); err != nil {
		logger.Fatalf("Missing configuration, update to start server: %v", err)
	}

	dbService, err := database.NewDBService()
	if err != nil {
		logger.Fatalf("Could not initialize database: %v", err)
	}
	defer dbService.Close()

	userRepo := user.NewUserRepository(dbService.DB)
	userService := user.NewUserService(userRepo)
	userHandler := user.NewHandler(userService)

	jwtManager := auth.NewJWTManager()
	authService := auth.NewAuthService(userService, jwtManager)
	authHandler := auth.NewHandler(authService)

	transactionRepo := infrastructure.NewTransactionRepository(dbService.DB)
	transactionService := application.NewTransactionService(transactionRepo)
	transactionHandler := interfaces.NewTransactionHandler(transactionService, respondJSON, respondError)

	analyticsService := application.NewAnalyticsService(transactionRepo, userService)
	analyticsHandler := interfaces.NewAnalyticsHandler(analyticsService, respondJSON, respondError)

	server := NewServer(dbService, authHandler, authService, userHandler, transactionHandler, analyticsHandler)
	server.RegisterRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	httpServer := &http.Server{
		Addr:         ":" + port,
		Handler:      loggingMiddleware(logger, server.router),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	logger.Infof("Server starting on port %s...", port)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatalf("Server failed to start: %v", err)
	}
}
