package http

import (
	"net/http"

	"cashbook-backend/internal/security"
	"cashbook-backend/internal/service"

	"github.com/gorilla/mux"
)

// NewRouter registers every API route. Route names key the security levels in config.
func NewRouter(businessSvc service.BusinessService, bookSvc service.BookService, tm security.TokenManager) *mux.Router {
	router := mux.NewRouter()
	router.Use(RecoveryMiddleware, LoggingMiddleware, NewAuthMiddleware(tm).Handler)
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, http.StatusNotFound, "not found")
	})

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet).Name("Health")

	api := router.PathPrefix("/api/v1").Subrouter()
	RegisterBusinessRoutes(api, NewBusinessHandler(businessSvc))
	RegisterBookRoutes(api, NewBookHandler(bookSvc))
	return router
}

func RegisterBusinessRoutes(router *mux.Router, h *BusinessHandler) {
	router.HandleFunc("/businesses", h.ListBusinesses).Methods(http.MethodGet).Name("ListBusinesses")
	router.HandleFunc("/businesses", h.CreateBusiness).Methods(http.MethodPost).Name("CreateBusiness")
	router.HandleFunc("/businesses/join", h.JoinBusiness).Methods(http.MethodPost).Name("JoinBusiness")
	router.HandleFunc("/businesses/{businessID}", h.GetBusiness).Methods(http.MethodGet).Name("GetBusiness")
	router.HandleFunc("/businesses/{businessID}", h.UpdateBusiness).Methods(http.MethodPatch).Name("UpdateBusiness")
	router.HandleFunc("/businesses/{businessID}", h.DeleteBusiness).Methods(http.MethodDelete).Name("DeleteBusiness")
	router.HandleFunc("/businesses/{businessID}/join-code", h.RotateJoinCode).Methods(http.MethodPost).Name("RotateJoinCode")
	router.HandleFunc("/businesses/{businessID}/members", h.ListMembers).Methods(http.MethodGet).Name("ListMembers")
	router.HandleFunc("/businesses/{businessID}/members/{userID}", h.RemoveMember).Methods(http.MethodDelete).Name("RemoveMember")
}

func RegisterBookRoutes(router *mux.Router, h *BookHandler) {
	router.HandleFunc("/businesses/{businessID}/books", h.CreateBook).Methods(http.MethodPost).Name("CreateBook")
	router.HandleFunc("/books/{bookID}", h.GetBook).Methods(http.MethodGet).Name("GetBook")
	router.HandleFunc("/books/{bookID}", h.RenameBook).Methods(http.MethodPatch).Name("UpdateBook")
	router.HandleFunc("/books/{bookID}", h.DeleteBook).Methods(http.MethodDelete).Name("DeleteBook")
	router.HandleFunc("/books/{bookID}/transactions", h.AddTransaction).Methods(http.MethodPost).Name("CreateTransaction")
	router.HandleFunc("/transactions/{transactionID}", h.UpdateTransaction).Methods(http.MethodPut).Name("UpdateTransaction")
	router.HandleFunc("/transactions/{transactionID}", h.DeleteTransaction).Methods(http.MethodDelete).Name("DeleteTransaction")
}
