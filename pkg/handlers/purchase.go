package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"noteshop/pkg/claims"
	"noteshop/pkg/purchase"
)

type BuyForm struct {
	SongID string `json:"songId"`
	Type   string `json:"purchaseType"`
}

type PurchaseHandler struct {
	Service purchase.ServicePurchase
	Logger  *slog.Logger
}

func NewPurchaseHandler(service purchase.ServicePurchase, logger *slog.Logger) *PurchaseHandler {
	return &PurchaseHandler{
		Service: service,
		Logger:  logger,
	}
}

func (h *PurchaseHandler) GetMyPurchases(w http.ResponseWriter, r *http.Request) {
	var c claims.Claims
	if ok := getClaimsFromContext(w, r, &c); !ok {
		return
	}

	purchases, err := h.Service.GetByUser(c.User.ID)
	if err != nil {
		h.Logger.Error("GetMyPurchases", "error", err)
		writeError(w, http.StatusInternalServerError, typeError, "failed to fetch purchases")
		return
	}
	if purchases == nil {
		purchases = []*purchase.Purchase{}
	}

	writeJSON(w, h.Logger, purchases)
}

func (h *PurchaseHandler) Buy(w http.ResponseWriter, r *http.Request) {
	var req BuyForm
	if ok := DecodeJSONBody(w, r, &req); !ok {
		return
	}

	var c claims.Claims
	if ok := getClaimsFromContext(w, r, &c); !ok {
		return
	}

	created, err := h.Service.Buy(c.User.ID, req.SongID, req.Type)
	if err != nil {
		writeError(w, http.StatusBadRequest, typeError, err.Error())
		return
	}

	if ok := writeJSON(w, h.Logger, created); ok {
		h.Logger.Info("purchase created", "user", c.User.ID, "song", req.SongID)
	}
}

func (h *PurchaseHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.Service.Complete, "purchase completed")
}

func (h *PurchaseHandler) Decline(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.Service.Decline, "purchase declined")
}

func (h *PurchaseHandler) transition(w http.ResponseWriter, r *http.Request, fn func(string) (*purchase.Purchase, error), event string) {
	vars := mux.Vars(r)

	purchaseID, ok := vars[muxVarBuyID]
	if !ok || len(purchaseID) != lenID {
		writeError(w, http.StatusBadRequest, typeMessage, "invalid purchase id")
		return
	}

	updated, err := fn(purchaseID)
	if err != nil {
		writeError(w, http.StatusNotFound, typeError, err.Error())
		return
	}

	if ok := writeJSON(w, h.Logger, updated); ok {
		h.Logger.Info(event, muxVarBuyID, purchaseID)
	}
}
