package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Post("/", createPetHandler(svc))
		pr.Get("/", listPetsHandler(svc))

		pr.Get("/{petID}", getPetHandler(svc))

		// PUT y PATCH comparten semántica: ambos son parciales
		// (campos ausentes quedan intactos).
		pr.Put("/{petID}", updatePetHandler(svc))
		pr.Patch("/{petID}", updatePetHandler(svc))

		pr.Delete("/{petID}", deletePetHandler(svc))
	})
}

type createPetRequest struct {
	Name    string `json:"name"`
	Species string `json:"species"`
}

type updatePetRequest struct {
	// Punteros para PATCH real: nil = no tocar.
	Name    *string `json:"name"`
	Species *string `json:"species"`
}

type petResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Species string `json:"species"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

const (
	msgRequiredFields = "Name and species are required"
	msgEmptyFields    = "Name and species cannot be empty"
	msgPetNotFound    = "Pet not found"
)

// createPetHandler godoc
//
//	@Summary	Create a pet
//	@Tags		pets
//	@Accept		json
//	@Produce	json
//	@Param		pet	body		pets.createPetRequest	true	"Pet to create"
//	@Success	201	{object}	pets.petResponse
//	@Failure	400	{object}	pets.errorResponse
//	@Router		/pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			// Body ilegible o ausente equivale a "sin campos requeridos".
			writeError(w, http.StatusBadRequest, msgRequiredFields)
			return
		}

		p, err := svc.Create(r.Context(), CreateInput{
			Name:    req.Name,
			Species: req.Species,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				writeError(w, http.StatusBadRequest, msgRequiredFields)
				return
			}
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

// listPetsHandler godoc
//
//	@Summary	List pets
//	@Tags		pets
//	@Produce	json
//	@Param		species	query	string	false	"Exact species match"
//	@Success	200	{array}	pets.petResponse
//	@Router		/pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var f ListFilter
		if sp := r.URL.Query().Get("species"); sp != "" {
			f.Species = &sp
		}

		items, err := svc.List(r.Context(), f)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// getPetHandler godoc
//
//	@Summary	Get a pet by id
//	@Tags		pets
//	@Produce	json
//	@Param		petID	path		int	true	"Pet ID"
//	@Success	200	{object}	pets.petResponse
//	@Failure	404	{object}	pets.errorResponse
//	@Router		/pets/{petID} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := petIDParam(r)
		if !ok {
			writeError(w, http.StatusNotFound, msgPetNotFound)
			return
		}

		p, err := svc.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				writeError(w, http.StatusNotFound, msgPetNotFound)
				return
			}
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// updatePetHandler godoc
//
//	@Summary	Update a pet (partial)
//	@Tags		pets
//	@Accept		json
//	@Produce	json
//	@Param		petID	path		int						true	"Pet ID"
//	@Param		pet		body		pets.updatePetRequest	true	"Fields to update"
//	@Success	200		{object}	pets.petResponse
//	@Failure	400		{object}	pets.errorResponse
//	@Failure	404		{object}	pets.errorResponse
//	@Router		/pets/{petID} [patch]
func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := petIDParam(r)
		if !ok {
			writeError(w, http.StatusNotFound, msgPetNotFound)
			return
		}

		var req updatePetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		updated, err := svc.Update(r.Context(), id, UpdateInput{
			Name:    req.Name,
			Species: req.Species,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				writeError(w, http.StatusNotFound, msgPetNotFound)
			case errors.Is(err, ErrInvalidInput):
				writeError(w, http.StatusBadRequest, msgEmptyFields)
			default:
				writeError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(updated))
	}
}

// deletePetHandler godoc
//
//	@Summary	Delete a pet
//	@Tags		pets
//	@Produce	json
//	@Param		petID	path		int	true	"Pet ID"
//	@Success	200		{object}	pets.messageResponse
//	@Failure	404		{object}	pets.errorResponse
//	@Router		/pets/{petID} [delete]
func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := petIDParam(r)
		if !ok {
			writeError(w, http.StatusNotFound, msgPetNotFound)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			if errors.Is(err, ErrNotFound) {
				writeError(w, http.StatusNotFound, msgPetNotFound)
				return
			}
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, messageResponse{Message: "Pet deleted successfully"})
	}
}

// petIDParam parsea {petID}. Un id no numérico se trata como inexistente
// (equivale al converter <int:pet_id> de un router tipado).
func petIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "petID"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:      p.ID,
		Name:    p.Name,
		Species: p.Species,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
