package httpapi

import (
	"encoding/json"
	"net/http"

	"universe-backend-go/internal/universe"
)

func (s *Server) GetWallet(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]universe.Wallet{"wallet": s.Store.Wallet()})
}

func (s *Server) UpdateWallet(w http.ResponseWriter, r *http.Request) {
	var patch universe.WalletPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	WriteJSON(w, http.StatusOK, map[string]universe.Wallet{"wallet": s.Store.UpdateWallet(patch)})
}

func (s *Server) ListTransactions(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string][]universe.Transaction{"items": s.Store.Transactions()})
}

func (s *Server) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var transaction universe.Transaction
	if err := json.NewDecoder(r.Body).Decode(&transaction); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if transaction.Type != universe.TxExpense && transaction.Type != universe.TxTopup {
		WriteError(w, http.StatusBadRequest, "Transaction type must be expense or topup")
		return
	}
	created := s.Store.AddTransaction(transaction)
	WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"transaction": created,
		"balance":     s.Store.Wallet().Balance,
	})
}

func (s *Server) SpendingSummary(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]map[string]float64{"categories": s.Store.SpendingByCategory()})
}
