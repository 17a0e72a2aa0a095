package main

import (
	"log"
	"time"

	_ "SeniorCompanion_Backend/docs"
	"SeniorCompanion_Backend/internal/auth"
	"SeniorCompanion_Backend/internal/chat"
	"SeniorCompanion_Backend/internal/chatbot"
	"SeniorCompanion_Backend/internal/config"
	"SeniorCompanion_Backend/internal/handler"
	"SeniorCompanion_Backend/internal/logger"
	"SeniorCompanion_Backend/internal/mailer"
	"SeniorCompanion_Backend/internal/middleware"
	"SeniorCompanion_Backend/internal/models"
	"SeniorCompanion_Backend/internal/recommend"
	"SeniorCompanion_Backend/internal/scheduler"
	"SeniorCompanion_Backend/internal/seed"
	"SeniorCompanion_Backend/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// dbStore adapts the package-level storage functions to the
// interfaces the assistant engine and the scheduler consume.
type dbStore struct{}

func (dbStore) ListRulesByPriority() ([]models.LogicRule, error) {
	return storage.ListRulesByPriority()
}
func (dbStore) LogUnansweredQuery(text string, userID *int) error {
	return storage.LogUnansweredQuery(text, userID)
}
func (dbStore) DueReminders(timeOfDay, today string) ([]models.DueReminder, error) {
	return storage.DueReminders(timeOfDay, today)
}
func (dbStore) MarkReminderSent(reminderID int, today string) error {
	return storage.MarkReminderSent(reminderID, today)
}
func (dbStore) PoliciesExpiringOn(date string) ([]models.ExpiringPolicy, error) {
	return storage.PoliciesExpiringOn(date)
}

// @title           Senior Companion API
// @version         1.0
// @description     Support backend for senior citizens: profiles, companions, chat, reminders, insurance and local resources.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load configuration: ", err)
	}

	zlog, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatal("failed to build logger: ", err)
	}
	defer zlog.Sync()

	auth.SetKey(cfg.JWT.Secret)

	storage.InitDB(cfg.Database.Path)
	defer storage.CloseDB()

	if err := seed.Rules(zlog); err != nil {
		log.Fatal("failed to seed assistant rules: ", err)
	}

	handler.Assistant = chatbot.NewEngine(dbStore{}, zlog)
	handler.ChatHub = chat.NewHub(zlog)

	// A missing weights file degrades the recommend endpoint, it
	// does not take the rest of the service down.
	model, err := recommend.LoadModel(cfg.Recommend.ModelPath)
	if err != nil {
		zlog.Warn("recommendation model not loaded, suggestions disabled",
			zap.String("path", cfg.Recommend.ModelPath),
			zap.Error(err))
	} else {
		handler.Recommender = model
	}

	loc, err := time.LoadLocation(cfg.Scheduler.TimeZone)
	if err != nil {
		log.Fatal("invalid scheduler time zone: ", err)
	}
	sched := scheduler.New(dbStore{}, mailer.NewSMTPMailer(&cfg.Email), loc, zlog)
	if err := sched.Start(); err != nil {
		log.Fatal("failed to start scheduler: ", err)
	}
	defer sched.Stop()

	router := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.POST("/signup", handler.Signup)
	router.POST("/login", middleware.RateLimitByIP(1, 5), handler.Login)
	router.POST("/chatbot/query",
		middleware.RateLimitByIP(2, 10),
		middleware.OptionalAuthMiddleware(),
		handler.ChatbotQuery)

	router.GET("/ws/chat/:user1/:user2", handler.HandleChatConnection)

	protected := router.Group("/api", middleware.AuthMiddleware())
	{
		protected.GET("/profile", handler.GetProfile)
		protected.PUT("/profile", handler.UpdateProfile)
		protected.GET("/hobbies", handler.ListHobbies)
		protected.GET("/home", handler.HomeFeed)

		protected.GET("/companions", handler.ListCompanions)
		protected.POST("/companions/:id", handler.AddCompanion)
		protected.DELETE("/companions/:id", handler.RemoveCompanion)

		protected.GET("/medications", handler.ListMedications)
		protected.POST("/medications", handler.CreateMedication)
		protected.DELETE("/medications/:id", handler.DeleteMedication)
		protected.POST("/medications/:id/reminders", handler.AddReminder)
		protected.DELETE("/reminders/:id", handler.DeleteReminder)

		protected.GET("/hospitals", handler.ListHospitals)
		protected.GET("/hospitals/:id", handler.GetHospital)
		protected.GET("/doctors/:id", handler.GetDoctor)
		protected.GET("/places", handler.ListPlaces)
		protected.GET("/places/:id", handler.GetPlace)

		protected.GET("/learning", handler.ListLearning)
		protected.POST("/learning/:id/progress", handler.SetLearningProgress)
		protected.GET("/events", handler.ListEvents)

		protected.GET("/games", handler.ListGames)
		protected.POST("/games/sessions", handler.RecordGameSession)

		protected.GET("/insurance/hub", handler.InsuranceHub)
		protected.POST("/insurance/policies", handler.CreatePolicy)
		protected.DELETE("/insurance/policies/:id", handler.DeletePolicy)
		protected.POST("/insurance/recommend", handler.RecommendInsurance)
	}

	staff := router.Group("/api/staff", middleware.AuthMiddleware(), middleware.StaffOnly())
	{
		staff.GET("/unanswered", handler.ListUnanswered)
		staff.POST("/unanswered/:id/resolve", handler.ResolveUnanswered)
		staff.GET("/rules", handler.ListRules)
		staff.POST("/rules", handler.CreateRule)
		staff.DELETE("/rules/:id", handler.DeleteRule)

		staff.POST("/hospitals", handler.CreateHospital)
		staff.DELETE("/hospitals/:id", handler.DeleteHospital)
		staff.GET("/doctors", handler.ListDoctors)
		staff.POST("/doctors", handler.CreateDoctor)
		staff.DELETE("/doctors/:id", handler.DeleteDoctor)
		staff.POST("/places", handler.CreatePlace)
		staff.DELETE("/places/:id", handler.DeletePlace)
		staff.POST("/learning", handler.CreateLearningResource)
		staff.DELETE("/learning/:id", handler.DeleteLearningResource)
		staff.POST("/events", handler.CreateEvent)
		staff.DELETE("/events/:id", handler.DeleteEvent)
		staff.POST("/games", handler.CreateGame)
		staff.DELETE("/games/:id", handler.DeleteGame)
		staff.POST("/hobbies", handler.CreateHobby)
		staff.POST("/catalog", handler.CreateCatalogPolicy)
		staff.DELETE("/catalog/:id", handler.DeleteCatalogPolicy)
	}

	log.Fatal(router.Run(":" + cfg.Server.Port))
}
