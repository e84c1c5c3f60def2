package handle

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"smart-pos/internal/pos/app/services"
	"smart-pos/internal/pos/domain/dto"
	"smart-pos/internal/xpkg/logger"
)

type InkassaHandler struct {
	inkassaService *services.InkassaService
	mylog          logger.Logger
}

func NewInkassaHandler(inkassaService *services.InkassaService, mylog logger.Logger) *InkassaHandler {
	return &InkassaHandler{
		inkassaService: inkassaService,
		mylog:          mylog,
	}
}

func (ih *InkassaHandler) Balance() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mylog := ih.requestLog(r, "get_balance")

		ctx, cancel := requestCtx()
		defer cancel()

		res, err := ih.inkassaService.GetBalance(ctx)
		if err != nil {
			mylog.Error("Failed to read balance", err)
			jsonError(w, http.StatusInternalServerError, errInternal)
			return
		}
		jsonResponse(w, http.StatusOK, res)
	}
}

func (ih *InkassaHandler) PeriodStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mylog := ih.requestLog(r, "period_stats")

		ctx, cancel := requestCtx()
		defer cancel()

		res, err := ih.inkassaService.CurrentPeriodStats(ctx)
		if err != nil {
			mylog.Error("Failed to compute period stats", err)
			jsonError(w, http.StatusInternalServerError, errInternal)
			return
		}
		jsonResponse(w, http.StatusOK, res)
	}
}

func (ih *InkassaHandler) Perform() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mylog := ih.requestLog(r, "perform_inkassa")

		var req dto.PerformInkassaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			mylog.Action("parse_failed").Error("Failed to parse inkassa request", err)
			jsonError(w, http.StatusBadRequest, errParseFailed)
			return
		}

		ctx, cancel := requestCtx()
		defer cancel()

		res, err := ih.inkassaService.PerformInkassa(ctx, req)
		if err != nil {
			mylog.Error("Failed to perform inkassa", err)
			jsonError(w, http.StatusInternalServerError, errInternal)
			return
		}
		jsonResponse(w, statusFor(res.Result, http.StatusCreated), res)
	}
}

func (ih *InkassaHandler) History() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mylog := ih.requestLog(r, "inkassa_history")

		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

		ctx, cancel := requestCtx()
		defer cancel()

		res, err := ih.inkassaService.History(ctx, limit, offset)
		if err != nil {
			mylog.Error("Failed to list inkassas", err)
			jsonError(w, http.StatusInternalServerError, errInternal)
			return
		}
		jsonResponse(w, http.StatusOK, res)
	}
}

func (ih *InkassaHandler) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mylog := ih.requestLog(r, "get_inkassa")

		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		ctx, cancel := requestCtx()
		defer cancel()

		res, err := ih.inkassaService.GetByID(ctx, id)
		if err != nil {
			mylog.Error("Failed to get inkassa", err)
			jsonError(w, http.StatusInternalServerError, errInternal)
			return
		}
		jsonResponse(w, statusFor(res.Result, http.StatusOK), res)
	}
}

func (ih *InkassaHandler) requestLog(r *http.Request, action string) logger.Logger {
	return ih.mylog.Action(action).With("request_id", uuid.NewString(), "path", r.URL.Path)
}
