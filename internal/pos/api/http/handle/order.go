package handle

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"smart-pos/internal/pos/app/core"
	"smart-pos/internal/pos/app/services"
	"smart-pos/internal/pos/domain/dto"
	"smart-pos/internal/xpkg/logger"
)

var (
	errInvalidID   = errors.New("invalid id in path")
	errParseFailed = errors.New("failed to parse JSON")
	errInternal    = errors.New("internal error")
)

type OrderHandler struct {
	orderService *services.OrderService
	mylog        logger.Logger
}

func NewOrderHandler(orderService *services.OrderService, mylog logger.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		mylog:        mylog,
	}
}

func (oh *OrderHandler) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mylog := oh.requestLog(r, "create_order")

		var req dto.CreateOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			mylog.Action("parse_failed").Error("Failed to parse order", err)
			jsonError(w, http.StatusBadRequest, errParseFailed)
			return
		}

		ctx, cancel := requestCtx()
		defer cancel()

		res, err := oh.orderService.Create(ctx, req)
		if err != nil {
			mylog.Error("Failed to create order", err)
			jsonError(w, http.StatusInternalServerError, errInternal)
			return
		}
		jsonResponse(w, statusFor(res.Result, http.StatusCreated), res)
	}
}

func (oh *OrderHandler) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mylog := oh.requestLog(r, "get_order")

		orderID, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		ctx, cancel := requestCtx()
		defer cancel()

		res, err := oh.orderService.GetOrderByID(ctx, orderID)
		if err != nil {
			mylog.Error("Failed to get order", err)
			jsonError(w, http.StatusInternalServerError, errInternal)
			return
		}
		jsonResponse(w, statusFor(res.Result, http.StatusOK), res)
	}
}

func (oh *OrderHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mylog := oh.requestLog(r, "add_item")

		orderID, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		var req dto.AddItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			mylog.Action("parse_failed").Error("Failed to parse item", err)
			jsonError(w, http.StatusBadRequest, errParseFailed)
			return
		}

		ctx, cancel := requestCtx()
		defer cancel()

		res, err := oh.orderService.AddItem(ctx, orderID, req)
		if err != nil {
			mylog.Error("Failed to add item", err)
			jsonError(w, http.StatusInternalServerError, errInternal)
			return
		}
		jsonResponse(w, statusFor(res.Result, http.StatusOK), res)
	}
}

func (oh *OrderHandler) UpdateItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mylog := oh.requestLog(r, "update_item")

		orderID, ok := pathID(w, r, "id")
		if !ok {
			return
		}
		itemID, ok := pathID(w, r, "itemID")
		if !ok {
			return
		}

		var req dto.UpdateItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			mylog.Action("parse_failed").Error("Failed to parse item update", err)
			jsonError(w, http.StatusBadRequest, errParseFailed)
			return
		}

		ctx, cancel := requestCtx()
		defer cancel()

		res, err := oh.orderService.UpdateItem(ctx, orderID, itemID, req)
		if err != nil {
			mylog.Error("Failed to update item", err)
			jsonError(w, http.StatusInternalServerError, errInternal)
			return
		}
		jsonResponse(w, statusFor(res.Result, http.StatusOK), res)
	}
}

func (oh *OrderHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mylog := oh.requestLog(r, "remove_item")

		orderID, ok := pathID(w, r, "id")
		if !ok {
			return
		}
		itemID, ok := pathID(w, r, "itemID")
		if !ok {
			return
		}

		ctx, cancel := requestCtx()
		defer cancel()

		res, err := oh.orderService.RemoveItem(ctx, orderID, itemID)
		if err != nil {
			mylog.Error("Failed to remove item", err)
			jsonError(w, http.StatusInternalServerError, errInternal)
			return
		}
		jsonResponse(w, statusFor(res.Result, http.StatusOK), res)
	}
}

func (oh *OrderHandler) MarkItemReady() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mylog := oh.requestLog(r, "mark_item_ready")

		orderID, ok := pathID(w, r, "id")
		if !ok {
			return
		}
		itemID, ok := pathID(w, r, "itemID")
		if !ok {
			return
		}

		ctx, cancel := requestCtx()
		defer cancel()

		res, err := oh.orderService.MarkItemReady(ctx, orderID, itemID)
		if err != nil {
			mylog.Error("Failed to mark item ready", err)
			jsonError(w, http.StatusInternalServerError, errInternal)
			return
		}
		jsonResponse(w, statusFor(res.Result, http.StatusOK), res)
	}
}

func (oh *OrderHandler) UnmarkItemReady() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mylog := oh.requestLog(r, "unmark_item_ready")

		orderID, ok := pathID(w, r, "id")
		if !ok {
			return
		}
		itemID, ok := pathID(w, r, "itemID")
		if !ok {
			return
		}

		ctx, cancel := requestCtx()
		defer cancel()

		res, err := oh.orderService.UnmarkItemReady(ctx, orderID, itemID)
		if err != nil {
			mylog.Error("Failed to unmark item", err)
			jsonError(w, http.StatusInternalServerError, errInternal)
			return
		}
		jsonResponse(w, statusFor(res.Result, http.StatusOK), res)
	}
}

func (oh *OrderHandler) UpdateStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mylog := oh.requestLog(r, "update_status")

		orderID, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		var req dto.UpdateStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			mylog.Action("parse_failed").Error("Failed to parse status update", err)
			jsonError(w, http.StatusBadRequest, errParseFailed)
			return
		}

		ctx, cancel := requestCtx()
		defer cancel()

		res, err := oh.orderService.UpdateStatus(ctx, orderID, req)
		if err != nil {
			mylog.Error("Failed to update status", err)
			jsonError(w, http.StatusInternalServerError, errInternal)
			return
		}
		jsonResponse(w, statusFor(res.Result, http.StatusOK), res)
	}
}

func (oh *OrderHandler) MarkReady() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mylog := oh.requestLog(r, "mark_order_ready")

		orderID, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		ctx, cancel := requestCtx()
		defer cancel()

		res, err := oh.orderService.MarkOrderReady(ctx, orderID)
		if err != nil {
			mylog.Error("Failed to mark order ready", err)
			jsonError(w, http.StatusInternalServerError, errInternal)
			return
		}
		jsonResponse(w, statusFor(res.Result, http.StatusOK), res)
	}
}

func (oh *OrderHandler) Pay() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mylog := oh.requestLog(r, "pay_order")

		orderID, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		var req dto.PayOrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			mylog.Action("parse_failed").Error("Failed to parse payment", err)
			jsonError(w, http.StatusBadRequest, errParseFailed)
			return
		}

		ctx, cancel := requestCtx()
		defer cancel()

		res, err := oh.orderService.MarkAsPaid(ctx, orderID, req.PayerID)
		if err != nil {
			mylog.Error("Failed to mark order paid", err)
			jsonError(w, http.StatusInternalServerError, errInternal)
			return
		}
		jsonResponse(w, statusFor(res.Result, http.StatusOK), res)
	}
}

func (oh *OrderHandler) ClientDisplay() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mylog := oh.requestLog(r, "client_display")

		ctx, cancel := requestCtx()
		defer cancel()

		res, err := oh.orderService.ClientDisplay(ctx)
		if err != nil {
			mylog.Error("Failed to build display", err)
			jsonError(w, http.StatusInternalServerError, errInternal)
			return
		}
		jsonResponse(w, http.StatusOK, res)
	}
}

func (oh *OrderHandler) requestLog(r *http.Request, action string) logger.Logger {
	return oh.mylog.Action(action).With("request_id", uuid.NewString(), "path", r.URL.Path)
}

func requestCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), core.WaitTime*time.Second)
}
