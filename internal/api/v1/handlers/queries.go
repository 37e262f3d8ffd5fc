package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"ulascansenturk/weather-query-service/internal/db/weatherquery"
	"ulascansenturk/weather-query-service/internal/service"
)

var validate = validator.New()

type QueryHandler struct {
	queryService service.QueryService
	handler      http.Handler
}

func NewQueryHandler(queryService service.QueryService, logger zerolog.Logger) *QueryHandler {
	h := &QueryHandler{queryService: queryService}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", h.Health)
	mux.HandleFunc("POST /queries", h.CreateQuery)
	mux.HandleFunc("GET /queries", h.ListQueries)
	mux.HandleFunc("GET /queries/{id}", h.GetQuery)
	mux.HandleFunc("PUT /queries/{id}", h.UpdateQuery)
	mux.HandleFunc("DELETE /queries/{id}", h.DeleteQuery)
	mux.HandleFunc("GET /export", h.Export)
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		respondWithError(w, http.StatusNotFound, "not found")
	})

	h.handler = withRequestLogging(logger, mux)

	return h
}

func (h *QueryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.handler.ServeHTTP(w, r)
}

func (h *QueryHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, HealthResponse{OK: true})
}

func (h *QueryHandler) CreateQuery(w http.ResponseWriter, r *http.Request) {
	var req CreateQueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	if err := validate.Struct(req); err != nil {
		respondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	start, _ := time.Parse(weatherquery.DateLayout, req.StartDate)
	end, _ := time.Parse(weatherquery.DateLayout, req.EndDate)

	record, err := h.queryService.Create(r.Context(), service.CreateInput{
		Location:  req.Location,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		h.respondWithServiceError(w, r, err, http.StatusUnprocessableEntity)
		return
	}

	respondWithJSON(w, http.StatusCreated, newQueryResponse(record))
}

func (h *QueryHandler) ListQueries(w http.ResponseWriter, r *http.Request) {
	records, err := h.queryService.List(r.Context())
	if err != nil {
		h.respondWithServiceError(w, r, err, http.StatusBadRequest)
		return
	}

	response := make([]QueryResponse, 0, len(records))
	for _, record := range records {
		response = append(response, newQueryResponse(record))
	}

	respondWithJSON(w, http.StatusOK, response)
}

func (h *QueryHandler) GetQuery(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	record, err := h.queryService.Get(r.Context(), id)
	if err != nil {
		h.respondWithServiceError(w, r, err, http.StatusBadRequest)
		return
	}

	respondWithJSON(w, http.StatusOK, newQueryResponse(record))
}

func (h *QueryHandler) UpdateQuery(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req UpdateQueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	if err := validate.Struct(req); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	input := service.UpdateInput{Location: req.Location}
	if req.StartDate != nil {
		start, _ := time.Parse(weatherquery.DateLayout, *req.StartDate)
		input.StartDate = &start
	}
	if req.EndDate != nil {
		end, _ := time.Parse(weatherquery.DateLayout, *req.EndDate)
		input.EndDate = &end
	}

	record, err := h.queryService.Update(r.Context(), id, input)
	if err != nil {
		h.respondWithServiceError(w, r, err, http.StatusBadRequest)
		return
	}

	respondWithJSON(w, http.StatusOK, newQueryResponse(record))
}

func (h *QueryHandler) DeleteQuery(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.queryService.Delete(r.Context(), id); err != nil {
		h.respondWithServiceError(w, r, err, http.StatusBadRequest)
		return
	}

	respondWithJSON(w, http.StatusOK, DeleteResponse{Deleted: id})
}

func (h *QueryHandler) Export(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")

	doc, err := h.queryService.Export(r.Context(), format)
	if err != nil {
		h.respondWithServiceError(w, r, err, http.StatusBadRequest)
		return
	}

	respondWithBody(w, http.StatusOK, doc.ContentType, doc.Body)
}

// respondWithServiceError maps the service error taxonomy onto HTTP statuses.
// validationStatus differs between create (422) and update (400).
func (h *QueryHandler) respondWithServiceError(w http.ResponseWriter, r *http.Request, err error, validationStatus int) {
	var (
		validationErr *service.ValidationError
		notFoundErr   *service.NotFoundError
		upstreamErr   *service.UpstreamError
	)

	switch {
	case errors.As(err, &validationErr):
		respondWithError(w, validationStatus, validationErr.Message)
	case errors.As(err, &notFoundErr):
		respondWithError(w, http.StatusNotFound, notFoundErr.Message)
	case errors.As(err, &upstreamErr):
		hlog.FromRequest(r).Error().Err(err).Str("op", upstreamErr.Op).Msg("weather provider call failed")
		respondWithError(w, http.StatusBadGateway, "failed to get weather data from "+upstreamErr.Op+" provider")
	default:
		hlog.FromRequest(r).Error().Err(err).Msg("weather query request failed")
		respondWithError(w, http.StatusInternalServerError, "internal error")
	}
}

func parseID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, strconv.IntSize)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "query id must be a positive integer")
		return 0, false
	}
	return uint(id), true
}
