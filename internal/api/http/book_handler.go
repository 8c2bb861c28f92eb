package http

import (
	"net/http"

	"cashbook-backend/internal/service"

	"github.com/gorilla/mux"
)

type BookHandler struct {
	bookSvc service.BookService
}

func NewBookHandler(bookSvc service.BookService) *BookHandler {
	return &BookHandler{bookSvc: bookSvc}
}

func (h *BookHandler) CreateBook(w http.ResponseWriter, r *http.Request) {
	var req bookRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	book, err := h.bookSvc.CreateBook(r.Context(), SessionFromContext(r.Context()), mux.Vars(r)["businessID"], req.Name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, book)
}

func (h *BookHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	bookLedger, err := h.bookSvc.GetBook(r.Context(), SessionFromContext(r.Context()), mux.Vars(r)["bookID"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, bookLedger)
}

func (h *BookHandler) RenameBook(w http.ResponseWriter, r *http.Request) {
	var req bookRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	book, err := h.bookSvc.RenameBook(r.Context(), SessionFromContext(r.Context()), mux.Vars(r)["bookID"], req.Name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, book)
}

func (h *BookHandler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	if err := h.bookSvc.DeleteBook(r.Context(), SessionFromContext(r.Context()), mux.Vars(r)["bookID"]); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *BookHandler) AddTransaction(w http.ResponseWriter, r *http.Request) {
	var req transactionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	tx, err := h.bookSvc.AddTransaction(r.Context(), SessionFromContext(r.Context()), mux.Vars(r)["bookID"], req.toInput())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, tx)
}

func (h *BookHandler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	var req transactionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	tx, err := h.bookSvc.UpdateTransaction(r.Context(), SessionFromContext(r.Context()), mux.Vars(r)["transactionID"], req.toInput())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tx)
}

func (h *BookHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	if err := h.bookSvc.DeleteTransaction(r.Context(), SessionFromContext(r.Context()), mux.Vars(r)["transactionID"]); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
