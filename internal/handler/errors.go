package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/go-faster/sdk/zctx"
	"github.com/ogen-go/ogen/ogenerrors"
	"go.uber.org/zap"

	"github.com/xenking/orderflow/gen/oas"
	"github.com/xenking/orderflow/internal/domain/auth"
	"github.com/xenking/orderflow/internal/domain/coupon"
	"github.com/xenking/orderflow/internal/domain/inventory"
	"github.com/xenking/orderflow/internal/domain/order"
	"github.com/xenking/orderflow/internal/domain/payment"
	"github.com/xenking/orderflow/internal/domain/sequence"
)

// requestError is a request the schema accepts but the handler cannot use.
// It maps to 400 with the offending field.
type requestError struct {
	Field  string
	Reason string
}

func (e *requestError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func badRequest(field, reason string) error {
	return &requestError{Field: field, Reason: reason}
}

func failure(status int, msg string, details *oas.ErrorDetails) *oas.ErrorStatusCode {
	resp := oas.Error{Success: false, Error: msg}
	if details != nil {
		resp.Details = oas.NewOptErrorDetails(*details)
	}
	return &oas.ErrorStatusCode{StatusCode: status, Response: resp}
}

func fieldDetails(field string) *oas.ErrorDetails {
	return &oas.ErrorDetails{Field: oas.NewOptString(field)}
}

// NewError maps a domain error to its status and error envelope. Anything
// unrecognised is an infrastructure failure: it is logged and the client
// sees a generic message.
func (h *Handler) NewError(ctx context.Context, err error) *oas.ErrorStatusCode {
	var (
		ready       *oas.ErrorStatusCode
		secErr      *ogenerrors.SecurityError
		reqErr      *requestError
		orderVal    *order.ValidationError
		couponVal   *coupon.ValidationError
		minOrder    *coupon.MinOrderValueError
		stockErr    *inventory.InsufficientStockError
		missing     *inventory.ProductNotFoundError
		transition  *order.TransitionError
		badStatus   *order.InvalidStatusError
		mismatch    *order.AmountMismatchError
		badAmount   *payment.InvalidAmountError
		upstreamErr *payment.UpstreamError
	)

	switch {
	case errors.As(err, &ready):
		return ready
	case errors.As(err, &secErr), errors.Is(err, auth.ErrUnauthenticated):
		return failure(http.StatusUnauthorized, auth.ErrUnauthenticated.Error(), nil)
	case errors.Is(err, auth.ErrForbidden):
		return failure(http.StatusForbidden, err.Error(), nil)

	case errors.As(err, &reqErr):
		return failure(http.StatusBadRequest, reqErr.Error(), fieldDetails(reqErr.Field))
	case errors.As(err, &orderVal):
		return failure(http.StatusBadRequest, orderVal.Error(), fieldDetails(orderVal.Field))
	case errors.As(err, &couponVal):
		return failure(http.StatusBadRequest, couponVal.Error(), fieldDetails(couponVal.Field))
	case errors.As(err, &badStatus):
		return failure(http.StatusBadRequest, badStatus.Error(), nil)
	case errors.As(err, &badAmount):
		return failure(http.StatusBadRequest, badAmount.Error(), nil)
	case errors.Is(err, order.ErrEmptyItems),
		errors.Is(err, inventory.ErrInvalidQuantity),
		errors.Is(err, payment.ErrInvalidStatus):
		return failure(http.StatusBadRequest, err.Error(), nil)

	case errors.As(err, &stockErr):
		return failure(http.StatusBadRequest, stockErr.Error(), &oas.ErrorDetails{
			ProductId: oas.NewOptString(stockErr.ProductID),
			Requested: oas.NewOptInt(stockErr.Requested),
		})
	case errors.As(err, &missing):
		return failure(http.StatusBadRequest, missing.Error(), &oas.ErrorDetails{
			ProductId: oas.NewOptString(missing.ProductID),
		})
	case errors.As(err, &minOrder):
		return failure(http.StatusBadRequest, minOrder.Error(), &oas.ErrorDetails{
			MinOrderValue: oas.NewOptFloat64(money(minOrder.Min)),
		})
	case errors.Is(err, coupon.ErrInactive),
		errors.Is(err, coupon.ErrNotStarted),
		errors.Is(err, coupon.ErrExpired),
		errors.Is(err, coupon.ErrUsageLimitReached),
		errors.Is(err, coupon.ErrBudgetExhausted),
		errors.Is(err, coupon.ErrNoApplicableAmount),
		errors.Is(err, coupon.ErrUserLimitReached):
		return failure(http.StatusBadRequest, err.Error(), nil)

	case errors.Is(err, payment.ErrSignatureMismatch):
		return failure(http.StatusBadRequest, "payment verification failed", nil)
	case errors.As(err, &mismatch):
		return failure(http.StatusUnprocessableEntity, "amount mismatch", &oas.ErrorDetails{
			Expected: oas.NewOptFloat64(money(mismatch.Expected)),
			Received: oas.NewOptFloat64(money(mismatch.Received)),
		})

	case errors.Is(err, order.ErrNotFound),
		errors.Is(err, coupon.ErrNotFound),
		errors.Is(err, payment.ErrNotFound):
		return failure(http.StatusNotFound, err.Error(), nil)

	case errors.As(err, &transition):
		return failure(http.StatusConflict, transition.Error(), &oas.ErrorDetails{
			From: oas.NewOptString(transition.From),
			To:   oas.NewOptString(transition.To),
		})
	case errors.Is(err, coupon.ErrCodeExists),
		errors.Is(err, order.ErrNotEditable),
		errors.Is(err, order.ErrNotInvoiceable),
		errors.Is(err, order.ErrStatusConflict),
		errors.Is(err, order.ErrDuplicate),
		errors.Is(err, order.ErrCouponNotApplied),
		errors.Is(err, payment.ErrConfirmationInProgress),
		errors.Is(err, payment.ErrNotRefundable),
		errors.Is(err, payment.ErrDuplicate),
		errors.Is(err, payment.ErrStateConflict):
		return failure(http.StatusConflict, err.Error(), nil)

	case errors.As(err, &upstreamErr):
		zctx.From(ctx).Warn("Payment gateway failure", zap.Error(err))
		return failure(http.StatusBadGateway, "payment gateway unavailable", nil)

	case errors.Is(err, sequence.ErrInvoiceSequenceExhausted):
		zctx.From(ctx).Error("Invoice numbers exhausted", zap.Error(err))
		return failure(http.StatusInternalServerError, "internal server error", nil)
	default:
		zctx.From(ctx).Error("Request failed", zap.Error(err))
		return failure(http.StatusInternalServerError, "internal server error", nil)
	}
}

// ErrorHandler writes the error envelope for failures raised by the
// generated server before a handler runs: malformed parameters or bodies
// and missing credentials.
func ErrorHandler(ctx context.Context, w http.ResponseWriter, r *http.Request, err error) {
	code := ogenerrors.ErrorCode(err)
	msg := err.Error()
	switch code {
	case http.StatusUnauthorized:
		msg = auth.ErrUnauthenticated.Error()
	case http.StatusBadRequest:
	default:
		zctx.From(ctx).Error("Request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		code, msg = http.StatusInternalServerError, "internal server error"
	}
	writeFailure(w, code, msg)
}

// NotFound answers routes the API does not define.
func NotFound(w http.ResponseWriter, _ *http.Request) {
	writeFailure(w, http.StatusNotFound, "route not found")
}

// MethodNotAllowed answers known routes called with another method.
func MethodNotAllowed(w http.ResponseWriter, _ *http.Request, allowed string) {
	w.Header().Set("Allow", allowed)
	writeFailure(w, http.StatusMethodNotAllowed, "method not allowed")
}

func writeFailure(w http.ResponseWriter, status int, msg string) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	e.ObjStart()
	e.FieldStart("success")
	e.Bool(false)
	e.FieldStart("error")
	e.Str(msg)
	e.ObjEnd()

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}
