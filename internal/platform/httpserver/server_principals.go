package httpserver

import (
	"encoding/json"
	"net/http"

	directoryhttp "ideabazaar/contexts/identity-access/principal-directory/transport/http"
)

func (s *Server) handleRegisterPrincipal(w http.ResponseWriter, r *http.Request) {
	var req directoryhttp.RegisterPrincipalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDirectoryError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.principals.Handler.RegisterHandler(r.Context(), req)
	if err != nil {
		writeDirectoryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleGetPrincipal(w http.ResponseWriter, r *http.Request) {
	resp, err := s.principals.Handler.GetPrincipalHandler(r.Context(), r.PathValue("principal_id"))
	if err != nil {
		writeDirectoryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleChangeTier(w http.ResponseWriter, r *http.Request) {
	var req directoryhttp.ChangeTierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDirectoryError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.principals.Handler.ChangeTierHandler(r.Context(), r.PathValue("principal_id"), req)
	if err != nil {
		writeDirectoryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
