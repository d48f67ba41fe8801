package httpapi

import (
	"net/http"
	"time"

	"universe-backend-go/internal/config"
	"universe-backend-go/internal/services"
	"universe-backend-go/internal/universe"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
)

type Server struct {
	Store      *universe.Store
	DB         *sqlx.DB
	Config     config.Config
	Tokens     services.TokenService
	Chatbot    *services.ChatbotClient
	MetricsHub *services.MetricsHub
}

func NewServer(store *universe.Store, db *sqlx.DB, cfg config.Config, hub *services.MetricsHub) *Server {
	tokens := services.TokenService{
		Secret:    []byte(cfg.JWTSecret),
		Issuer:    cfg.JWTIssuer,
		AccessTTL: time.Duration(cfg.AccessTTLSeconds) * time.Second,
	}
	return &Server{
		Store:      store,
		DB:         db,
		Config:     cfg,
		Tokens:     tokens,
		Chatbot:    services.NewChatbotClient(cfg.ChatAPIKey, cfg.ChatAPIURL),
		MetricsHub: hub,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestLogger)
	if len(s.Config.CorsOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   s.Config.CorsOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	r.Route("/api", func(api chi.Router) {
		api.Get("/me", s.Me)
		api.Put("/me", s.UpdateMe)

		api.Route("/events", func(events chi.Router) {
			events.Get("/", s.ListEvents)
			events.Post("/", s.CreateEvent)
			events.Put("/{eventId}", s.UpdateEvent)
			events.Delete("/{eventId}", s.DeleteEvent)
		})

		api.Route("/classes", func(classes chi.Router) {
			classes.Get("/", s.ListClasses)
			classes.Post("/", s.CreateClass)
			classes.Put("/{classId}", s.UpdateClass)
			classes.Delete("/{classId}", s.DeleteClass)
		})

		api.Route("/assignments", func(assignments chi.Router) {
			assignments.Get("/", s.ListAssignments)
			assignments.Post("/", s.CreateAssignment)
			assignments.Put("/{assignmentId}", s.UpdateAssignment)
			assignments.Delete("/{assignmentId}", s.DeleteAssignment)
		})

		api.Route("/messages", func(messages chi.Router) {
			messages.Get("/", s.ListMessages)
			messages.Get("/conversation", s.Conversation)
			messages.Post("/", s.SendMessage)
			messages.Post("/{messageId}/read", s.MarkMessageRead)
		})

		api.Route("/groupchats", func(chats chi.Router) {
			chats.Get("/", s.ListGroupChats)
			chats.Post("/", s.CreateGroupChat)
			chats.Post("/{groupId}/messages", s.SendGroupMessage)
		})

		api.Route("/contacts", func(contacts chi.Router) {
			contacts.Get("/", s.ListContacts)
			contacts.Get("/pending", s.PendingContacts)
			contacts.Post("/", s.CreateContact)
			contacts.Put("/{contactId}/status", s.UpdateContactStatus)
		})

		api.Route("/posts", func(posts chi.Router) {
			posts.Get("/", s.ListPosts)
			posts.Post("/", s.CreatePost)
			posts.Post("/{postId}/like", s.LikePost)
			posts.Post("/{postId}/unlike", s.UnlikePost)
			posts.Post("/{postId}/comments", s.AddComment)
		})

		api.Get("/wallet", s.GetWallet)
		api.Put("/wallet", s.UpdateWallet)
		api.Get("/transactions", s.ListTransactions)
		api.Post("/transactions", s.CreateTransaction)
		api.Get("/transactions/summary", s.SpendingSummary)

		api.Route("/resources", func(resources chi.Router) {
			resources.Get("/", s.ListResources)
			resources.Post("/", s.CreateResource)
		})

		api.Get("/campus", s.GetCampusInfo)
		api.Put("/campus", s.UpdateCampusInfo)

		api.Route("/notifications", func(notifications chi.Router) {
			notifications.Get("/", s.ListNotifications)
			notifications.Post("/{notificationId}/read", s.MarkNotificationRead)
			notifications.Post("/read-all", s.MarkAllNotificationsRead)
		})

		api.Post("/chat", s.ChatCompletion)

		api.With(WithAuth(s.Tokens)).Post("/friends", s.FriendManager)
		api.With(WithAuth(s.Tokens)).Get("/admin/metrics/history", s.MetricsHistory)

		api.Get("/public/health", s.Health)
	})

	r.Get("/ws/metrics", s.MetricsSocket)
	return r
}
