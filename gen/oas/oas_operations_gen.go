// Code generated by ogen, DO NOT EDIT.

package oas

// OperationName is the ogen operation name
type OperationName = string

const (
	CancelOrderOperation         OperationName = "CancelOrder"
	ConfirmPaymentOperation      OperationName = "ConfirmPayment"
	CreateCouponOperation        OperationName = "CreateCoupon"
	CreateOrderOperation         OperationName = "CreateOrder"
	CreatePaymentIntentOperation OperationName = "CreatePaymentIntent"
	EditAddressOperation         OperationName = "EditAddress"
	GetCouponOperation           OperationName = "GetCoupon"
	GetInvoiceOperation          OperationName = "GetInvoice"
	GetOrderOperation            OperationName = "GetOrder"
	GetTransactionStatsOperation OperationName = "GetTransactionStats"
	ListOrdersOperation          OperationName = "ListOrders"
	ListTransactionsOperation    OperationName = "ListTransactions"
	RecordCouponUsageOperation   OperationName = "RecordCouponUsage"
	RefundOrderOperation         OperationName = "RefundOrder"
	UpdateAdminNoteOperation     OperationName = "UpdateAdminNote"
	UpdateOrderStatusOperation   OperationName = "UpdateOrderStatus"
	UpdatePaymentStatusOperation OperationName = "UpdatePaymentStatus"
	ValidateCouponOperation      OperationName = "ValidateCoupon"
)
