package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/wakestop/internal/pkg/logger"
	"github.com/piresc/wakestop/internal/pkg/middleware"
	"github.com/piresc/wakestop/internal/pkg/models"
	nrpkg "github.com/piresc/wakestop/internal/pkg/newrelic"
	"github.com/piresc/wakestop/internal/utils"
	"github.com/piresc/wakestop/services/callbackend"
)

// CallHandler handles HTTP requests for wake-up calls
type CallHandler struct {
	callUC callbackend.CallUC
}

// NewCallHandler creates a new call HTTP handler
func NewCallHandler(callUC callbackend.CallUC) *CallHandler {
	return &CallHandler{
		callUC: callUC,
	}
}

// PlaceCall calls the authenticated user
func (h *CallHandler) PlaceCall(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "CallBackend.PlaceCall")

	ctx := c.Request().Context()
	result, err := h.callUC.PlaceCall(ctx, middleware.UserID(c))
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return callErrorResponse(c, err)
	}

	nrpkg.AddTransactionAttribute(txn, "call.id", result.CallID)
	return c.JSON(http.StatusOK, result)
}

func callErrorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, callbackend.ErrMissingUser):
		return utils.StatusErrorResponse(c, http.StatusUnauthorized, string(models.CallErrUnauthenticated), err.Error())
	case errors.Is(err, callbackend.ErrPhoneNotFound), errors.Is(err, callbackend.ErrInvalidPhone):
		return utils.StatusErrorResponse(c, http.StatusNotFound, string(models.CallErrNotFound), err.Error())
	case errors.Is(err, callbackend.ErrCallInProgress):
		return utils.StatusErrorResponse(c, http.StatusTooManyRequests, string(models.CallErrResourceExhausted), err.Error())
	default:
		logger.ErrorCtx(c.Request().Context(), "Failed to place call", logger.Err(err))
		return utils.StatusErrorResponse(c, http.StatusInternalServerError, string(models.CallErrInternal), "Failed to place call")
	}
}
