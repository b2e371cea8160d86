package routing

import (
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/mongo"

	"noteshop/pkg/handlers"
	"noteshop/pkg/middleware"
	"noteshop/pkg/purchase"
	"noteshop/pkg/session"
	"noteshop/pkg/song"
	"noteshop/pkg/user"
)

const (
	staticPath      = "./static"
	objectIDPattern = "[a-fA-F0-9]{24}"
	serverAddr      = ":8082"
)

func InitRoutes(api *mux.Router, db *sql.DB, mongoDB *mongo.Database, logger *slog.Logger) {

	sessionRepo := session.NewMySQLSessionRepo(db)

	userService := user.NewService(user.NewMySQLRepo(db), sessionRepo)
	userHandler := handlers.NewUserHandler(userService, logger)

	songRepo := song.NewMongoRepo(mongoDB)
	songService := song.NewService(songRepo)
	songHandler := handlers.NewSongHandler(songService, logger)

	purchaseService := purchase.NewService(purchase.NewMongoRepo(mongoDB), songRepo)
	purchaseHandler := handlers.NewPurchaseHandler(purchaseService, logger)

	/* -+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+ */

	authRouter := api.PathPrefix("").Subrouter()
	songsRouter := api.PathPrefix("/songs").Subrouter()
	songRouter := api.PathPrefix("/song").Subrouter()
	purchasesRouter := api.PathPrefix("/purchases").Subrouter()
	purchaseRouter := api.PathPrefix("/purchase").Subrouter()

	adminSongs := songsRouter.NewRoute().Subrouter()
	adminSong := songRouter.NewRoute().Subrouter()
	adminPurchase := purchaseRouter.NewRoute().Subrouter()
	adminSongs.Use(middleware.RequireAdmin)
	adminSong.Use(middleware.RequireAdmin)
	adminPurchase.Use(middleware.RequireAdmin)

	/* auth routes */
	authRouter.HandleFunc("/register", userHandler.Register).Methods("POST").Name("register")
	authRouter.HandleFunc("/login", userHandler.Login).Methods("POST").Name("login")
	authRouter.HandleFunc("/logout", userHandler.Logout).Methods("POST").Name("logout")

	/* catalog routes */
	songsRouter.HandleFunc("/", songHandler.GetSongs).Methods("GET")
	songRouter.HandleFunc("/{song_id:"+objectIDPattern+"}", songHandler.GetSongByID).Methods("GET")
	songRouter.HandleFunc("/{song_id:"+objectIDPattern+"}/view", songHandler.ReportView).Methods("POST")

	/* back-office routes */
	adminSongs.HandleFunc("", songHandler.CreateSong).Methods("POST")
	adminSong.HandleFunc("/{song_id:"+objectIDPattern+"}", songHandler.UpdateSong).Methods("PUT")
	adminSong.HandleFunc("/{song_id:"+objectIDPattern+"}", songHandler.DeleteSong).Methods("DELETE")

	/* purchase routes */
	purchasesRouter.HandleFunc("", purchaseHandler.GetMyPurchases).Methods("GET")
	purchasesRouter.HandleFunc("", purchaseHandler.Buy).Methods("POST")
	adminPurchase.HandleFunc("/{purchase_id:"+objectIDPattern+"}/complete", purchaseHandler.Complete).Methods("POST")
	adminPurchase.HandleFunc("/{purchase_id:"+objectIDPattern+"}/decline", purchaseHandler.Decline).Methods("POST")
}

func ServeStaticFiles(r *mux.Router) {
	fs := http.FileServer(http.Dir(staticPath))
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", fs))
}

func ServeFallback(r *mux.Router, logger *slog.Logger) {
	r.PathPrefix("/").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") || strings.HasPrefix(r.URL.Path, "/static/") {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			if _, err := w.Write([]byte("[]")); err != nil {
				logger.Error("failed to write fallback JSON", slog.String("path", r.URL.Path), slog.Any("error", err))
			}
			return
		}
		http.ServeFile(w, r, "static/html/index.html")
	})
}

func StartServer(r *mux.Router) {
	fmt.Println("\n\033[32m", "The server is running on http://localhost"+serverAddr, "\033[0m")
	if err := http.ListenAndServe(serverAddr, r); err != nil {
		log.Fatal("Server failed:", err)
	}
}
