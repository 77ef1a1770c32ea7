package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/orderflow/internal/domain/auth"
	"github.com/xenking/orderflow/internal/domain/coupon"
	"github.com/xenking/orderflow/internal/domain/inventory"
	"github.com/xenking/orderflow/internal/domain/order"
	"github.com/xenking/orderflow/internal/domain/payment"
	"github.com/xenking/orderflow/internal/domain/product"
	"github.com/xenking/orderflow/internal/domain/sequence"
	"github.com/xenking/orderflow/internal/gateway/sandbox"
	"github.com/xenking/orderflow/internal/handler"
	"github.com/xenking/orderflow/internal/storage/memory"
)

const (
	gatewaySecret = "sandbox_secret"
	tokenSecret   = "test-secret"
)

type env struct {
	t       *testing.T
	srv     *httptest.Server
	store   *memory.Store
	gw      *sandbox.Gateway
	coupons *coupon.Service
	sec     *handler.SecurityHandler
}

func newEnv(t *testing.T) *env {
	t.Helper()
	store := memory.New()
	store.Catalog.Put(
		product.Product{ID: "p1", Name: "Basmati Rice", Price: decimal.NewFromInt(250), TaxRate: decimal.NewFromInt(5), Stock: 10},
		product.Product{ID: "p2", Name: "Mustard Oil", Price: decimal.NewFromInt(150), TaxRate: decimal.NewFromInt(12), Stock: 5},
	)
	gw := sandbox.New(gatewaySecret)
	payments := payment.NewService(store.Transactions, gw, payment.Config{KeySecret: gatewaySecret})
	coupons := coupon.NewService(store.Coupons)
	orders, err := order.NewService(
		store.Orders,
		inventory.NewLedger(store.Catalog),
		coupons,
		sequence.NewGenerator(store.Counters),
		payments,
	)
	require.NoError(t, err)

	h := handler.NewHandler(handler.HandlerConfig{KeyID: "rzp_test_key"}, orders, coupons, payments)
	sec := handler.NewSecurityHandler([]byte(tokenSecret), "orderflow")

	api, err := handler.NewServer(h, sec)
	require.NoError(t, err)
	mux := http.NewServeMux()
	mux.Handle("/api/", api)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return &env{t: t, srv: srv, store: store, gw: gw, coupons: coupons, sec: sec}
}

func (e *env) token(p auth.Principal) string {
	e.t.Helper()
	tok, err := e.sec.Issue(p, time.Hour)
	require.NoError(e.t, err)
	return tok
}

type response struct {
	Status  int
	Success bool           `json:"success"`
	Error   string         `json:"error"`
	Data    map[string]any `json:"data"`
	Details map[string]any `json:"details"`
}

func (e *env) do(method, path, token, body string) response {
	e.t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), method, e.srv.URL+path, strings.NewReader(body))
	require.NoError(e.t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.srv.Client().Do(req)
	require.NoError(e.t, err)
	defer func() { _ = resp.Body.Close() }()

	ct := resp.Header.Get("Content-Type")
	assert.True(e.t, strings.HasPrefix(ct, "application/json"), "content type %q", ct)

	out := response{Status: resp.StatusCode}
	require.NoError(e.t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

var (
	customer = auth.Principal{UserID: "user-1"}
	stranger = auth.Principal{UserID: "user-2"}
	admin    = auth.Principal{UserID: "admin-1", Admin: true}
)

const codCart = `{
	"items": [{"productId": "p1", "quantity": 2}, {"productId": "p2", "quantity": 1}],
	"shippingAddress": {"address": "12 MG Road", "city": "Pune", "state": "Maharashtra", "pincode": "411001", "phone": "9800000000"}
}`

func TestAuthentication(t *testing.T) {
	e := newEnv(t)

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		status int
		error  string
	}{
		{"anonymous order list", http.MethodGet, "/api/orders", "", http.StatusUnauthorized, "authentication required"},
		{"garbage token", http.MethodGet, "/api/orders", "not-a-jwt", http.StatusUnauthorized, "authentication required"},
		{"customer on admin route", http.MethodGet, "/api/transactions", e.token(customer), http.StatusForbidden, "access denied"},
		{"anonymous on admin route", http.MethodGet, "/api/transactions", "", http.StatusUnauthorized, "authentication required"},
		{"unknown route", http.MethodGet, "/api/nope", e.token(customer), http.StatusNotFound, "route not found"},
		{"customer reading a coupon", http.MethodGet, "/api/coupons/c1", e.token(customer), http.StatusForbidden, "access denied"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := e.do(tt.method, tt.path, tt.token, "")
			assert.Equal(t, tt.status, res.Status)
			assert.False(t, res.Success)
			assert.Equal(t, tt.error, res.Error)
		})
	}
}

func TestSecurityHandler_WrongIssuer(t *testing.T) {
	other := handler.NewSecurityHandler([]byte(tokenSecret), "someone-else")
	tok, err := other.Issue(customer, time.Hour)
	require.NoError(t, err)

	sec := handler.NewSecurityHandler([]byte(tokenSecret), "orderflow")
	_, err = sec.Authenticate(tok)
	assert.Error(t, err)

	p, err := other.Authenticate(tok)
	require.NoError(t, err)
	assert.Equal(t, customer, p)
}

func TestCreateOrder(t *testing.T) {
	e := newEnv(t)
	tok := e.token(customer)

	res := e.do(http.MethodPost, "/api/orders", tok, codCart)
	require.Equal(t, http.StatusCreated, res.Status, res.Error)
	require.True(t, res.Success)

	assert.Equal(t, "ORD-00000001", res.Data["displayOrderNumber"])
	assert.Equal(t, "pending", res.Data["status"])
	assert.Equal(t, "pending", res.Data["paymentStatus"])
	assert.Equal(t, 650.0, res.Data["subtotal"])
	assert.Equal(t, 43.0, res.Data["tax"])
	assert.Equal(t, 693.0, res.Data["totalAmount"])
	assert.Equal(t, 8, e.store.Catalog.Stock("p1"))

	id := res.Data["id"].(string)
	assert.Equal(t, http.StatusOK, e.do(http.MethodGet, "/api/orders/"+id, tok, "").Status)
	assert.Equal(t, http.StatusForbidden, e.do(http.MethodGet, "/api/orders/"+id, e.token(stranger), "").Status)
	assert.Equal(t, http.StatusNotFound, e.do(http.MethodGet, "/api/orders/missing", tok, "").Status)
}

func TestCreateOrder_Invalid(t *testing.T) {
	e := newEnv(t)
	tok := e.token(customer)

	tests := []struct {
		name   string
		body   string
		status int
		check  func(t *testing.T, res response)
	}{
		{
			name:   "empty body",
			body:   "",
			status: http.StatusBadRequest,
		},
		{
			name:   "missing shipping address",
			body:   `{"items": [{"productId": "p1", "quantity": 1}]}`,
			status: http.StatusBadRequest,
		},
		{
			name:   "malformed JSON",
			body:   `{"items": [`,
			status: http.StatusBadRequest,
		},
		{
			name:   "no items",
			body:   `{"items": [], "shippingAddress": {"address": "a", "city": "b", "state": "c", "pincode": "411001", "phone": "9800000000"}}`,
			status: http.StatusBadRequest,
		},
		{
			name: "insufficient stock",
			body: `{"items": [{"productId": "p2", "quantity": 6}],
				"shippingAddress": {"address": "a", "city": "b", "state": "c", "pincode": "411001", "phone": "9800000000"}}`,
			status: http.StatusBadRequest,
			check: func(t *testing.T, res response) {
				assert.Equal(t, "p2", res.Details["productId"])
				assert.Equal(t, 6.0, res.Details["requested"])
			},
		},
		{
			name: "unknown product",
			body: `{"items": [{"productId": "p9", "quantity": 1}],
				"shippingAddress": {"address": "a", "city": "b", "state": "c", "pincode": "411001", "phone": "9800000000"}}`,
			status: http.StatusBadRequest,
			check: func(t *testing.T, res response) {
				assert.Equal(t, "p9", res.Details["productId"])
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := e.do(http.MethodPost, "/api/orders", tok, tt.body)
			assert.Equal(t, tt.status, res.Status)
			assert.False(t, res.Success)
			assert.NotEmpty(t, res.Error)
			if tt.check != nil {
				tt.check(t, res)
			}
		})
	}
	assert.Equal(t, 10, e.store.Catalog.Stock("p1"))
	assert.Equal(t, 5, e.store.Catalog.Stock("p2"))
}

func TestOrderLifecycle(t *testing.T) {
	e := newEnv(t)
	tok := e.token(customer)
	adminTok := e.token(admin)

	res := e.do(http.MethodPost, "/api/orders", tok, codCart)
	require.Equal(t, http.StatusCreated, res.Status, res.Error)
	id := res.Data["id"].(string)

	res = e.do(http.MethodPatch, "/api/orders/"+id+"/address", tok,
		`{"address": "7 FC Road", "city": "Pune", "state": "Maharashtra", "pincode": "411004", "phone": "9800000001"}`)
	require.Equal(t, http.StatusOK, res.Status, res.Error)
	addr := res.Data["shippingAddress"].(map[string]any)
	assert.Equal(t, "7 FC Road", addr["address"])

	res = e.do(http.MethodGet, "/api/orders/"+id+"/invoice", tok, "")
	require.Equal(t, http.StatusOK, res.Status, res.Error)
	invoiceNumber := res.Data["invoiceNumber"].(string)
	assert.Len(t, invoiceNumber, 9)

	res = e.do(http.MethodPatch, "/api/orders/"+id+"/status", tok, `{"status": "shipped"}`)
	assert.Equal(t, http.StatusForbidden, res.Status)

	res = e.do(http.MethodPatch, "/api/orders/"+id+"/status", adminTok, `{"status": "bogus"}`)
	assert.Equal(t, http.StatusBadRequest, res.Status)

	for _, status := range []string{"processing", "shipped"} {
		res = e.do(http.MethodPatch, "/api/orders/"+id+"/status", adminTok, `{"status": "`+status+`"}`)
		require.Equal(t, http.StatusOK, res.Status, res.Error)
		assert.Equal(t, status, res.Data["status"])
	}

	res = e.do(http.MethodPatch, "/api/orders/"+id+"/address", tok,
		`{"address": "1 Late Lane", "city": "Pune", "state": "Maharashtra", "pincode": "411004", "phone": "9800000001"}`)
	assert.Equal(t, http.StatusConflict, res.Status)

	res = e.do(http.MethodPost, "/api/orders/"+id+"/cancel", tok, "")
	assert.Equal(t, http.StatusConflict, res.Status)
	assert.Equal(t, "shipped", res.Details["from"])
	assert.Equal(t, "cancelled", res.Details["to"])

	res = e.do(http.MethodPatch, "/api/orders/"+id+"/status", adminTok, `{"status": "delivered"}`)
	require.Equal(t, http.StatusOK, res.Status, res.Error)
	assert.Equal(t, invoiceNumber, res.Data["invoiceNumber"])

	res = e.do(http.MethodGet, "/api/orders/"+id+"/invoice", tok, "")
	require.Equal(t, http.StatusOK, res.Status, res.Error)
	assert.Equal(t, invoiceNumber, res.Data["invoiceNumber"])

	res = e.do(http.MethodPatch, "/api/orders/"+id+"/admin-note", adminTok, `{"note": "left at the gate"}`)
	require.Equal(t, http.StatusOK, res.Status, res.Error)
	assert.Equal(t, "left at the gate", res.Data["adminNote"])
}

func TestCancelOrder_RestoresStock(t *testing.T) {
	e := newEnv(t)
	tok := e.token(customer)

	res := e.do(http.MethodPost, "/api/orders", tok, codCart)
	require.Equal(t, http.StatusCreated, res.Status, res.Error)
	id := res.Data["id"].(string)

	assert.Equal(t, http.StatusForbidden, e.do(http.MethodPost, "/api/orders/"+id+"/cancel", e.token(stranger), "").Status)

	res = e.do(http.MethodPost, "/api/orders/"+id+"/cancel", tok, "")
	require.Equal(t, http.StatusOK, res.Status, res.Error)
	assert.Equal(t, "cancelled", res.Data["status"])
	assert.Equal(t, 10, e.store.Catalog.Stock("p1"))
	assert.Equal(t, 5, e.store.Catalog.Stock("p2"))

	res = e.do(http.MethodGet, "/api/orders/"+id+"/invoice", tok, "")
	assert.Equal(t, http.StatusConflict, res.Status)
}

func TestPaymentFlow(t *testing.T) {
	e := newEnv(t)
	tok := e.token(customer)
	adminTok := e.token(admin)

	res := e.do(http.MethodPost, "/api/orders/payment-intent", tok, codCart)
	require.Equal(t, http.StatusCreated, res.Status, res.Error)
	assert.Equal(t, 693.0, res.Data["amount"])
	assert.Equal(t, 69300.0, res.Data["amountMinor"])
	assert.Equal(t, "rzp_test_key", res.Data["keyId"])
	assert.Equal(t, 10, e.store.Catalog.Stock("p1"), "intent does not reserve stock")

	gatewayOrderID := res.Data["gatewayOrderId"].(string)
	paymentID, signature, err := e.gw.Pay(gatewayOrderID)
	require.NoError(t, err)

	res = e.do(http.MethodPost, "/api/orders/payment-confirm", tok,
		`{"razorpay_order_id": "`+gatewayOrderID+`", "razorpay_payment_id": "`+paymentID+`", "razorpay_signature": "bad"}`)
	assert.Equal(t, http.StatusBadRequest, res.Status)
	assert.Equal(t, "payment verification failed", res.Error)

	confirm := `{"gatewayOrderId": "` + gatewayOrderID + `", "paymentId": "` + paymentID + `", "signature": "` + signature + `"}`
	res = e.do(http.MethodPost, "/api/orders/payment-confirm", tok, confirm)
	require.Equal(t, http.StatusOK, res.Status, res.Error)
	assert.Equal(t, "completed", res.Data["paymentStatus"])
	assert.Equal(t, "gateway", res.Data["paymentMethod"])
	assert.Equal(t, 8, e.store.Catalog.Stock("p1"))
	id := res.Data["id"].(string)

	// A repeated confirmation returns the same order.
	res = e.do(http.MethodPost, "/api/orders/payment-confirm", tok, confirm)
	require.Equal(t, http.StatusOK, res.Status, res.Error)
	assert.Equal(t, id, res.Data["id"])
	assert.Equal(t, 8, e.store.Catalog.Stock("p1"))

	res = e.do(http.MethodGet, "/api/transactions?status=captured", adminTok, "")
	require.Equal(t, http.StatusOK, res.Status, res.Error)
	assert.Len(t, res.Data["transactions"], 1)

	res = e.do(http.MethodPost, "/api/transactions/"+id+"/refund", tok, `{}`)
	assert.Equal(t, http.StatusForbidden, res.Status)

	res = e.do(http.MethodPost, "/api/transactions/"+id+"/refund", adminTok, `{"reason": "damaged"}`)
	require.Equal(t, http.StatusOK, res.Status, res.Error)
	tx := res.Data["transaction"].(map[string]any)
	assert.Equal(t, "refunded", tx["status"])
	o := res.Data["order"].(map[string]any)
	assert.Equal(t, "refunded", o["paymentStatus"])
	assert.Equal(t, "cancelled", o["status"])
	assert.Equal(t, 10, e.store.Catalog.Stock("p1"))

	res = e.do(http.MethodPost, "/api/transactions/"+id+"/refund", adminTok, `{}`)
	assert.Equal(t, http.StatusConflict, res.Status)

	res = e.do(http.MethodGet, "/api/transactions/stats", adminTok, "")
	require.Equal(t, http.StatusOK, res.Status, res.Error)
	assert.NotEmpty(t, res.Data["byStatus"])

	res = e.do(http.MethodGet, "/api/transactions?from=yesterday", adminTok, "")
	assert.Equal(t, http.StatusBadRequest, res.Status)
	assert.Equal(t, "from", res.Details["field"])
}

func TestPaymentIntent_AmountMismatch(t *testing.T) {
	e := newEnv(t)

	body := `{
		"items": [{"productId": "p1", "quantity": 2}, {"productId": "p2", "quantity": 1}],
		"shippingAddress": {"address": "a", "city": "b", "state": "c", "pincode": "411001", "phone": "9800000000"},
		"totalAmount": 650
	}`
	res := e.do(http.MethodPost, "/api/orders/payment-intent", e.token(customer), body)
	assert.Equal(t, http.StatusUnprocessableEntity, res.Status)
	assert.Equal(t, 693.0, res.Details["expected"])
	assert.Equal(t, 650.0, res.Details["received"])
}

func TestCoupons(t *testing.T) {
	e := newEnv(t)
	tok := e.token(customer)
	adminTok := e.token(admin)

	start := time.Now().Add(-time.Hour).UTC().Format(time.RFC3339)
	end := time.Now().Add(24 * time.Hour).UTC().Format(time.RFC3339)
	create := `{"code": "save10", "title": "Save 10", "discountType": "percentage", "discountValue": 10,
		"minOrderValue": 300, "startDate": "` + start + `", "endDate": "` + end + `"}`

	assert.Equal(t, http.StatusForbidden, e.do(http.MethodPost, "/api/coupons", tok, create).Status)

	res := e.do(http.MethodPost, "/api/coupons", adminTok, create)
	require.Equal(t, http.StatusCreated, res.Status, res.Error)
	assert.Equal(t, "SAVE10", res.Data["code"])
	couponID := res.Data["id"].(string)

	res = e.do(http.MethodPost, "/api/coupons", adminTok, create)
	assert.Equal(t, http.StatusConflict, res.Status)

	res = e.do(http.MethodPost, "/api/coupons/validate", tok, `{"code": "SAVE10", "cartTotal": 200}`)
	assert.Equal(t, http.StatusBadRequest, res.Status)
	assert.Equal(t, 300.0, res.Details["minOrderValue"])

	res = e.do(http.MethodPost, "/api/coupons/validate", tok, `{"code": "SAVE10", "cartTotal": 650}`)
	require.Equal(t, http.StatusOK, res.Status, res.Error)
	assert.Equal(t, 65.0, res.Data["discountAmount"])

	res = e.do(http.MethodPost, "/api/coupons/validate", tok, `{"code": "NOPE", "cartTotal": 650}`)
	assert.Equal(t, http.StatusNotFound, res.Status)

	withCoupon := strings.Replace(codCart, `"items"`, `"couponCode": "save10", "items"`, 1)
	placed := e.do(http.MethodPost, "/api/orders", tok, withCoupon)
	require.Equal(t, http.StatusCreated, placed.Status, placed.Error)
	assert.Equal(t, 65.0, placed.Data["discount"])
	assert.Equal(t, couponID, placed.Data["couponId"])
	orderID := placed.Data["id"].(string)

	// Placing the order recorded the usage; recording it again reports the
	// existing entry with the order's own amounts.
	res = e.do(http.MethodPost, "/api/coupons/"+couponID+"/usage", tok, `{"orderId": "`+orderID+`"}`)
	assert.Equal(t, http.StatusConflict, res.Status)
	require.Contains(t, res.Details, "usage")
	usage := res.Details["usage"].(map[string]any)
	assert.Equal(t, orderID, usage["orderId"])
	assert.Equal(t, 65.0, usage["discountAmount"])

	res = e.do(http.MethodPost, "/api/coupons/"+couponID+"/usage", e.token(stranger), `{"orderId": "`+orderID+`"}`)
	assert.Equal(t, http.StatusForbidden, res.Status)

	res = e.do(http.MethodGet, "/api/coupons/"+couponID, adminTok, "")
	require.Equal(t, http.StatusOK, res.Status, res.Error)
	stats := res.Data["stats"].(map[string]any)
	assert.Equal(t, 1.0, stats["uses"])
	assert.Equal(t, 65.0, stats["totalDiscount"])
}

func TestRecordCouponUsage_OnlyForTheAppliedCoupon(t *testing.T) {
	e := newEnv(t)
	tok := e.token(customer)
	adminTok := e.token(admin)

	start := time.Now().Add(-time.Hour).UTC().Format(time.RFC3339)
	end := time.Now().Add(24 * time.Hour).UTC().Format(time.RFC3339)
	res := e.do(http.MethodPost, "/api/coupons", adminTok, `{"code": "BIGSALE", "discountType": "fixed",
		"discountValue": 100, "budget": 100, "startDate": "`+start+`", "endDate": "`+end+`"}`)
	require.Equal(t, http.StatusCreated, res.Status, res.Error)
	couponID := res.Data["id"].(string)

	placed := e.do(http.MethodPost, "/api/orders", tok, codCart)
	require.Equal(t, http.StatusCreated, placed.Status, placed.Error)
	orderID := placed.Data["id"].(string)

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"order placed without the coupon", `{"orderId": "` + orderID + `"}`, http.StatusConflict},
		{"unknown order", `{"orderId": "missing"}`, http.StatusNotFound},
		{"no order", `{"orderId": ""}`, http.StatusBadRequest},
		{"amounts in the body are not accepted", `{"orderId": "` + orderID + `", "discountAmount": 100}`, http.StatusConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := e.do(http.MethodPost, "/api/coupons/"+couponID+"/usage", tok, tt.body)
			assert.Equal(t, tt.status, res.Status, res.Error)
			assert.False(t, res.Success)
		})
	}

	res = e.do(http.MethodGet, "/api/coupons/"+couponID, adminTok, "")
	require.Equal(t, http.StatusOK, res.Status, res.Error)
	stats := res.Data["stats"].(map[string]any)
	assert.Equal(t, 0.0, stats["uses"])
	assert.Equal(t, 100.0, stats["budgetRemaining"])
}

func TestMethodNotAllowed(t *testing.T) {
	e := newEnv(t)
	res := e.do(http.MethodDelete, "/api/orders", e.token(customer), "")
	assert.Equal(t, http.StatusMethodNotAllowed, res.Status)
	assert.Equal(t, "method not allowed", res.Error)
}
