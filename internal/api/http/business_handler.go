package http

import (
	"net/http"

	"cashbook-backend/internal/service"

	"github.com/gorilla/mux"
)

type BusinessHandler struct {
	businessSvc service.BusinessService
}

func NewBusinessHandler(businessSvc service.BusinessService) *BusinessHandler {
	return &BusinessHandler{businessSvc: businessSvc}
}

func (h *BusinessHandler) ListBusinesses(w http.ResponseWriter, r *http.Request) {
	businesses, err := h.businessSvc.ListBusinesses(r.Context(), SessionFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, businessListResponse{Businesses: businesses})
}

func (h *BusinessHandler) CreateBusiness(w http.ResponseWriter, r *http.Request) {
	var req createBusinessRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	business, err := h.businessSvc.CreateBusiness(r.Context(), SessionFromContext(r.Context()), service.BusinessInput{
		Name:     req.Name,
		Currency: req.Currency,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, business)
}

func (h *BusinessHandler) GetBusiness(w http.ResponseWriter, r *http.Request) {
	summary, err := h.businessSvc.GetBusiness(r.Context(), SessionFromContext(r.Context()), mux.Vars(r)["businessID"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *BusinessHandler) UpdateBusiness(w http.ResponseWriter, r *http.Request) {
	var req updateBusinessRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	business, err := h.businessSvc.UpdateBusiness(r.Context(), SessionFromContext(r.Context()), mux.Vars(r)["businessID"], service.BusinessUpdate{
		Name:     req.Name,
		Currency: req.Currency,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, business)
}

func (h *BusinessHandler) DeleteBusiness(w http.ResponseWriter, r *http.Request) {
	if err := h.businessSvc.DeleteBusiness(r.Context(), SessionFromContext(r.Context()), mux.Vars(r)["businessID"]); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *BusinessHandler) RotateJoinCode(w http.ResponseWriter, r *http.Request) {
	business, err := h.businessSvc.RotateJoinCode(r.Context(), SessionFromContext(r.Context()), mux.Vars(r)["businessID"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, joinCodeResponse{
		JoinCode:          business.JoinCode,
		JoinCodeRotatedAt: business.JoinCodeRotatedAt,
	})
}

func (h *BusinessHandler) JoinBusiness(w http.ResponseWriter, r *http.Request) {
	var req joinBusinessRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	summary, err := h.businessSvc.JoinBusiness(r.Context(), SessionFromContext(r.Context()), req.Code)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *BusinessHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.businessSvc.ListMembers(r.Context(), SessionFromContext(r.Context()), mux.Vars(r)["businessID"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, memberListResponse{Members: members})
}

func (h *BusinessHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.businessSvc.RemoveMember(r.Context(), SessionFromContext(r.Context()), vars["businessID"], vars["userID"]); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
