// Code generated by ogen, DO NOT EDIT.

package oas

import (
	"fmt"
	"time"
)

func (s *ErrorStatusCode) Error() string {
	return fmt.Sprintf("code %d: %+v", s.StatusCode, s.Response)
}

// Ref: #/components/schemas/Address
type Address struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
	Phone   string `json:"phone"`
}

// GetAddress returns the value of Address.
func (s *Address) GetAddress() string {
	return s.Address
}

// GetCity returns the value of City.
func (s *Address) GetCity() string {
	return s.City
}

// GetState returns the value of State.
func (s *Address) GetState() string {
	return s.State
}

// GetPincode returns the value of Pincode.
func (s *Address) GetPincode() string {
	return s.Pincode
}

// GetPhone returns the value of Phone.
func (s *Address) GetPhone() string {
	return s.Phone
}

// SetAddress sets the value of Address.
func (s *Address) SetAddress(val string) {
	s.Address = val
}

// SetCity sets the value of City.
func (s *Address) SetCity(val string) {
	s.City = val
}

// SetState sets the value of State.
func (s *Address) SetState(val string) {
	s.State = val
}

// SetPincode sets the value of Pincode.
func (s *Address) SetPincode(val string) {
	s.Pincode = val
}

// SetPhone sets the value of Phone.
func (s *Address) SetPhone(val string) {
	s.Phone = val
}

// The address may be sent bare or wrapped in shippingAddress.
// Ref: #/components/schemas/AddressUpdate
type AddressUpdate struct {
	ShippingAddress OptAddress `json:"shippingAddress"`
	Address         OptString  `json:"address"`
	City            OptString  `json:"city"`
	State           OptString  `json:"state"`
	Pincode         OptString  `json:"pincode"`
	Phone           OptString  `json:"phone"`
}

// GetShippingAddress returns the value of ShippingAddress.
func (s *AddressUpdate) GetShippingAddress() OptAddress {
	return s.ShippingAddress
}

// GetAddress returns the value of Address.
func (s *AddressUpdate) GetAddress() OptString {
	return s.Address
}

// GetCity returns the value of City.
func (s *AddressUpdate) GetCity() OptString {
	return s.City
}

// GetState returns the value of State.
func (s *AddressUpdate) GetState() OptString {
	return s.State
}

// GetPincode returns the value of Pincode.
func (s *AddressUpdate) GetPincode() OptString {
	return s.Pincode
}

// GetPhone returns the value of Phone.
func (s *AddressUpdate) GetPhone() OptString {
	return s.Phone
}

// SetShippingAddress sets the value of ShippingAddress.
func (s *AddressUpdate) SetShippingAddress(val OptAddress) {
	s.ShippingAddress = val
}

// SetAddress sets the value of Address.
func (s *AddressUpdate) SetAddress(val OptString) {
	s.Address = val
}

// SetCity sets the value of City.
func (s *AddressUpdate) SetCity(val OptString) {
	s.City = val
}

// SetState sets the value of State.
func (s *AddressUpdate) SetState(val OptString) {
	s.State = val
}

// SetPincode sets the value of Pincode.
func (s *AddressUpdate) SetPincode(val OptString) {
	s.Pincode = val
}

// SetPhone sets the value of Phone.
func (s *AddressUpdate) SetPhone(val OptString) {
	s.Phone = val
}

// Ref: #/components/schemas/AdminNoteUpdate
type AdminNoteUpdate struct {
	Note      OptString `json:"note"`
	AdminNote OptString `json:"adminNote"`
}

// GetNote returns the value of Note.
func (s *AdminNoteUpdate) GetNote() OptString {
	return s.Note
}

// GetAdminNote returns the value of AdminNote.
func (s *AdminNoteUpdate) GetAdminNote() OptString {
	return s.AdminNote
}

// SetNote sets the value of Note.
func (s *AdminNoteUpdate) SetNote(val OptString) {
	s.Note = val
}

// SetAdminNote sets the value of AdminNote.
func (s *AdminNoteUpdate) SetAdminNote(val OptString) {
	s.AdminNote = val
}

type BearerAuth struct {
	Token string
	Roles []string
}

// GetToken returns the value of Token.
func (s *BearerAuth) GetToken() string {
	return s.Token
}

// GetRoles returns the value of Roles.
func (s *BearerAuth) GetRoles() []string {
	return s.Roles
}

// SetToken sets the value of Token.
func (s *BearerAuth) SetToken(val string) {
	s.Token = val
}

// SetRoles sets the value of Roles.
func (s *BearerAuth) SetRoles(val []string) {
	s.Roles = val
}

// Ref: #/components/schemas/CartItem
type CartItem struct {
	ProductId string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// GetProductId returns the value of ProductId.
func (s *CartItem) GetProductId() string {
	return s.ProductId
}

// GetQuantity returns the value of Quantity.
func (s *CartItem) GetQuantity() int {
	return s.Quantity
}

// SetProductId sets the value of ProductId.
func (s *CartItem) SetProductId(val string) {
	s.ProductId = val
}

// SetQuantity sets the value of Quantity.
func (s *CartItem) SetQuantity(val int) {
	s.Quantity = val
}

// Ref: #/components/schemas/Checkout
type Checkout struct {
	Items           []CartItem `json:"items"`
	ShippingAddress Address    `json:"shippingAddress"`
	CouponCode      OptString  `json:"couponCode"`
}

// GetItems returns the value of Items.
func (s *Checkout) GetItems() []CartItem {
	return s.Items
}

// GetShippingAddress returns the value of ShippingAddress.
func (s *Checkout) GetShippingAddress() Address {
	return s.ShippingAddress
}

// GetCouponCode returns the value of CouponCode.
func (s *Checkout) GetCouponCode() OptString {
	return s.CouponCode
}

// SetItems sets the value of Items.
func (s *Checkout) SetItems(val []CartItem) {
	s.Items = val
}

// SetShippingAddress sets the value of ShippingAddress.
func (s *Checkout) SetShippingAddress(val Address) {
	s.ShippingAddress = val
}

// SetCouponCode sets the value of CouponCode.
func (s *Checkout) SetCouponCode(val OptString) {
	s.CouponCode = val
}

// Ref: #/components/schemas/Coupon
type Coupon struct {
	ID                 string     `json:"id"`
	Code               string     `json:"code"`
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	DiscountType       string     `json:"discountType"`
	DiscountValue      float64    `json:"discountValue"`
	MinOrderValue      float64    `json:"minOrderValue"`
	MaxUsageCount      OptInt     `json:"maxUsageCount"`
	UsagePerUser       int        `json:"usagePerUser"`
	Budget             OptFloat64 `json:"budget"`
	CurrentUsage       int        `json:"currentUsage"`
	TotalSales         float64    `json:"totalSales"`
	BudgetUtilized     float64    `json:"budgetUtilized"`
	StartDate          time.Time  `json:"startDate"`
	EndDate            time.Time  `json:"endDate"`
	IsActive           bool       `json:"isActive"`
	ApplicableProducts []string   `json:"applicableProducts"`
	ExcludedProducts   []string   `json:"excludedProducts"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// GetID returns the value of ID.
func (s *Coupon) GetID() string {
	return s.ID
}

// GetCode returns the value of Code.
func (s *Coupon) GetCode() string {
	return s.Code
}

// GetTitle returns the value of Title.
func (s *Coupon) GetTitle() string {
	return s.Title
}

// GetDescription returns the value of Description.
func (s *Coupon) GetDescription() string {
	return s.Description
}

// GetDiscountType returns the value of DiscountType.
func (s *Coupon) GetDiscountType() string {
	return s.DiscountType
}

// GetDiscountValue returns the value of DiscountValue.
func (s *Coupon) GetDiscountValue() float64 {
	return s.DiscountValue
}

// GetMinOrderValue returns the value of MinOrderValue.
func (s *Coupon) GetMinOrderValue() float64 {
	return s.MinOrderValue
}

// GetMaxUsageCount returns the value of MaxUsageCount.
func (s *Coupon) GetMaxUsageCount() OptInt {
	return s.MaxUsageCount
}

// GetUsagePerUser returns the value of UsagePerUser.
func (s *Coupon) GetUsagePerUser() int {
	return s.UsagePerUser
}

// GetBudget returns the value of Budget.
func (s *Coupon) GetBudget() OptFloat64 {
	return s.Budget
}

// GetCurrentUsage returns the value of CurrentUsage.
func (s *Coupon) GetCurrentUsage() int {
	return s.CurrentUsage
}

// GetTotalSales returns the value of TotalSales.
func (s *Coupon) GetTotalSales() float64 {
	return s.TotalSales
}

// GetBudgetUtilized returns the value of BudgetUtilized.
func (s *Coupon) GetBudgetUtilized() float64 {
	return s.BudgetUtilized
}

// GetStartDate returns the value of StartDate.
func (s *Coupon) GetStartDate() time.Time {
	return s.StartDate
}

// GetEndDate returns the value of EndDate.
func (s *Coupon) GetEndDate() time.Time {
	return s.EndDate
}

// GetIsActive returns the value of IsActive.
func (s *Coupon) GetIsActive() bool {
	return s.IsActive
}

// GetApplicableProducts returns the value of ApplicableProducts.
func (s *Coupon) GetApplicableProducts() []string {
	return s.ApplicableProducts
}

// GetExcludedProducts returns the value of ExcludedProducts.
func (s *Coupon) GetExcludedProducts() []string {
	return s.ExcludedProducts
}

// GetCreatedAt returns the value of CreatedAt.
func (s *Coupon) GetCreatedAt() time.Time {
	return s.CreatedAt
}

// GetUpdatedAt returns the value of UpdatedAt.
func (s *Coupon) GetUpdatedAt() time.Time {
	return s.UpdatedAt
}

// SetID sets the value of ID.
func (s *Coupon) SetID(val string) {
	s.ID = val
}

// SetCode sets the value of Code.
func (s *Coupon) SetCode(val string) {
	s.Code = val
}

// SetTitle sets the value of Title.
func (s *Coupon) SetTitle(val string) {
	s.Title = val
}

// SetDescription sets the value of Description.
func (s *Coupon) SetDescription(val string) {
	s.Description = val
}

// SetDiscountType sets the value of DiscountType.
func (s *Coupon) SetDiscountType(val string) {
	s.DiscountType = val
}

// SetDiscountValue sets the value of DiscountValue.
func (s *Coupon) SetDiscountValue(val float64) {
	s.DiscountValue = val
}

// SetMinOrderValue sets the value of MinOrderValue.
func (s *Coupon) SetMinOrderValue(val float64) {
	s.MinOrderValue = val
}

// SetMaxUsageCount sets the value of MaxUsageCount.
func (s *Coupon) SetMaxUsageCount(val OptInt) {
	s.MaxUsageCount = val
}

// SetUsagePerUser sets the value of UsagePerUser.
func (s *Coupon) SetUsagePerUser(val int) {
	s.UsagePerUser = val
}

// SetBudget sets the value of Budget.
func (s *Coupon) SetBudget(val OptFloat64) {
	s.Budget = val
}

// SetCurrentUsage sets the value of CurrentUsage.
func (s *Coupon) SetCurrentUsage(val int) {
	s.CurrentUsage = val
}

// SetTotalSales sets the value of TotalSales.
func (s *Coupon) SetTotalSales(val float64) {
	s.TotalSales = val
}

// SetBudgetUtilized sets the value of BudgetUtilized.
func (s *Coupon) SetBudgetUtilized(val float64) {
	s.BudgetUtilized = val
}

// SetStartDate sets the value of StartDate.
func (s *Coupon) SetStartDate(val time.Time) {
	s.StartDate = val
}

// SetEndDate sets the value of EndDate.
func (s *Coupon) SetEndDate(val time.Time) {
	s.EndDate = val
}

// SetIsActive sets the value of IsActive.
func (s *Coupon) SetIsActive(val bool) {
	s.IsActive = val
}

// SetApplicableProducts sets the value of ApplicableProducts.
func (s *Coupon) SetApplicableProducts(val []string) {
	s.ApplicableProducts = val
}

// SetExcludedProducts sets the value of ExcludedProducts.
func (s *Coupon) SetExcludedProducts(val []string) {
	s.ExcludedProducts = val
}

// SetCreatedAt sets the value of CreatedAt.
func (s *Coupon) SetCreatedAt(val time.Time) {
	s.CreatedAt = val
}

// SetUpdatedAt sets the value of UpdatedAt.
func (s *Coupon) SetUpdatedAt(val time.Time) {
	s.UpdatedAt = val
}

// Ref: #/components/schemas/CouponCreateRequest
type CouponCreateRequest struct {
	Code        string    `json:"code"`
	Title       OptString `json:"title"`
	Description OptString `json:"description"`
	// Percentage or fixed.
	DiscountType  string     `json:"discountType"`
	DiscountValue float64    `json:"discountValue"`
	MinOrderValue OptFloat64 `json:"minOrderValue"`
	MaxUsageCount OptInt     `json:"maxUsageCount"`
	UsagePerUser  OptInt     `json:"usagePerUser"`
	Budget        OptFloat64 `json:"budget"`
	// RFC 3339 time or a date.
	StartDate string `json:"startDate"`
	// RFC 3339 time or a date.
	EndDate            string   `json:"endDate"`
	IsActive           OptBool  `json:"isActive"`
	ApplicableProducts []string `json:"applicableProducts"`
	ExcludedProducts   []string `json:"excludedProducts"`
}

// GetCode returns the value of Code.
func (s *CouponCreateRequest) GetCode() string {
	return s.Code
}

// GetTitle returns the value of Title.
func (s *CouponCreateRequest) GetTitle() OptString {
	return s.Title
}

// GetDescription returns the value of Description.
func (s *CouponCreateRequest) GetDescription() OptString {
	return s.Description
}

// GetDiscountType returns the value of DiscountType.
func (s *CouponCreateRequest) GetDiscountType() string {
	return s.DiscountType
}

// GetDiscountValue returns the value of DiscountValue.
func (s *CouponCreateRequest) GetDiscountValue() float64 {
	return s.DiscountValue
}

// GetMinOrderValue returns the value of MinOrderValue.
func (s *CouponCreateRequest) GetMinOrderValue() OptFloat64 {
	return s.MinOrderValue
}

// GetMaxUsageCount returns the value of MaxUsageCount.
func (s *CouponCreateRequest) GetMaxUsageCount() OptInt {
	return s.MaxUsageCount
}

// GetUsagePerUser returns the value of UsagePerUser.
func (s *CouponCreateRequest) GetUsagePerUser() OptInt {
	return s.UsagePerUser
}

// GetBudget returns the value of Budget.
func (s *CouponCreateRequest) GetBudget() OptFloat64 {
	return s.Budget
}

// GetStartDate returns the value of StartDate.
func (s *CouponCreateRequest) GetStartDate() string {
	return s.StartDate
}

// GetEndDate returns the value of EndDate.
func (s *CouponCreateRequest) GetEndDate() string {
	return s.EndDate
}

// GetIsActive returns the value of IsActive.
func (s *CouponCreateRequest) GetIsActive() OptBool {
	return s.IsActive
}

// GetApplicableProducts returns the value of ApplicableProducts.
func (s *CouponCreateRequest) GetApplicableProducts() []string {
	return s.ApplicableProducts
}

// GetExcludedProducts returns the value of ExcludedProducts.
func (s *CouponCreateRequest) GetExcludedProducts() []string {
	return s.ExcludedProducts
}

// SetCode sets the value of Code.
func (s *CouponCreateRequest) SetCode(val string) {
	s.Code = val
}

// SetTitle sets the value of Title.
func (s *CouponCreateRequest) SetTitle(val OptString) {
	s.Title = val
}

// SetDescription sets the value of Description.
func (s *CouponCreateRequest) SetDescription(val OptString) {
	s.Description = val
}

// SetDiscountType sets the value of DiscountType.
func (s *CouponCreateRequest) SetDiscountType(val string) {
	s.DiscountType = val
}

// SetDiscountValue sets the value of DiscountValue.
func (s *CouponCreateRequest) SetDiscountValue(val float64) {
	s.DiscountValue = val
}

// SetMinOrderValue sets the value of MinOrderValue.
func (s *CouponCreateRequest) SetMinOrderValue(val OptFloat64) {
	s.MinOrderValue = val
}

// SetMaxUsageCount sets the value of MaxUsageCount.
func (s *CouponCreateRequest) SetMaxUsageCount(val OptInt) {
	s.MaxUsageCount = val
}

// SetUsagePerUser sets the value of UsagePerUser.
func (s *CouponCreateRequest) SetUsagePerUser(val OptInt) {
	s.UsagePerUser = val
}

// SetBudget sets the value of Budget.
func (s *CouponCreateRequest) SetBudget(val OptFloat64) {
	s.Budget = val
}

// SetStartDate sets the value of StartDate.
func (s *CouponCreateRequest) SetStartDate(val string) {
	s.StartDate = val
}

// SetEndDate sets the value of EndDate.
func (s *CouponCreateRequest) SetEndDate(val string) {
	s.EndDate = val
}

// SetIsActive sets the value of IsActive.
func (s *CouponCreateRequest) SetIsActive(val OptBool) {
	s.IsActive = val
}

// SetApplicableProducts sets the value of ApplicableProducts.
func (s *CouponCreateRequest) SetApplicableProducts(val []string) {
	s.ApplicableProducts = val
}

// SetExcludedProducts sets the value of ExcludedProducts.
func (s *CouponCreateRequest) SetExcludedProducts(val []string) {
	s.ExcludedProducts = val
}

// Ref: #/components/schemas/CouponDetails
type CouponDetails struct {
	Coupon       Coupon        `json:"coupon"`
	Status       string        `json:"status"`
	Stats        CouponStats   `json:"stats"`
	UsageHistory []CouponUsage `json:"usageHistory"`
}

// GetCoupon returns the value of Coupon.
func (s *CouponDetails) GetCoupon() Coupon {
	return s.Coupon
}

// GetStatus returns the value of Status.
func (s *CouponDetails) GetStatus() string {
	return s.Status
}

// GetStats returns the value of Stats.
func (s *CouponDetails) GetStats() CouponStats {
	return s.Stats
}

// GetUsageHistory returns the value of UsageHistory.
func (s *CouponDetails) GetUsageHistory() []CouponUsage {
	return s.UsageHistory
}

// SetCoupon sets the value of Coupon.
func (s *CouponDetails) SetCoupon(val Coupon) {
	s.Coupon = val
}

// SetStatus sets the value of Status.
func (s *CouponDetails) SetStatus(val string) {
	s.Status = val
}

// SetStats sets the value of Stats.
func (s *CouponDetails) SetStats(val CouponStats) {
	s.Stats = val
}

// SetUsageHistory sets the value of UsageHistory.
func (s *CouponDetails) SetUsageHistory(val []CouponUsage) {
	s.UsageHistory = val
}

// Ref: #/components/schemas/CouponDetailsResponse
type CouponDetailsResponse struct {
	Success bool          `json:"success"`
	Data    CouponDetails `json:"data"`
}

// GetSuccess returns the value of Success.
func (s *CouponDetailsResponse) GetSuccess() bool {
	return s.Success
}

// GetData returns the value of Data.
func (s *CouponDetailsResponse) GetData() CouponDetails {
	return s.Data
}

// SetSuccess sets the value of Success.
func (s *CouponDetailsResponse) SetSuccess(val bool) {
	s.Success = val
}

// SetData sets the value of Data.
func (s *CouponDetailsResponse) SetData(val CouponDetails) {
	s.Data = val
}

// Ref: #/components/schemas/CouponItem
type CouponItem struct {
	ProductId string     `json:"productId"`
	Price     OptFloat64 `json:"price"`
	Quantity  int        `json:"quantity"`
}

// GetProductId returns the value of ProductId.
func (s *CouponItem) GetProductId() string {
	return s.ProductId
}

// GetPrice returns the value of Price.
func (s *CouponItem) GetPrice() OptFloat64 {
	return s.Price
}

// GetQuantity returns the value of Quantity.
func (s *CouponItem) GetQuantity() int {
	return s.Quantity
}

// SetProductId sets the value of ProductId.
func (s *CouponItem) SetProductId(val string) {
	s.ProductId = val
}

// SetPrice sets the value of Price.
func (s *CouponItem) SetPrice(val OptFloat64) {
	s.Price = val
}

// SetQuantity sets the value of Quantity.
func (s *CouponItem) SetQuantity(val int) {
	s.Quantity = val
}

// Ref: #/components/schemas/CouponQuote
type CouponQuote struct {
	CouponId         string  `json:"couponId"`
	Code             string  `json:"code"`
	DiscountAmount   float64 `json:"discountAmount"`
	ApplicableAmount float64 `json:"applicableAmount"`
	FinalAmount      float64 `json:"finalAmount"`
}

// GetCouponId returns the value of CouponId.
func (s *CouponQuote) GetCouponId() string {
	return s.CouponId
}

// GetCode returns the value of Code.
func (s *CouponQuote) GetCode() string {
	return s.Code
}

// GetDiscountAmount returns the value of DiscountAmount.
func (s *CouponQuote) GetDiscountAmount() float64 {
	return s.DiscountAmount
}

// GetApplicableAmount returns the value of ApplicableAmount.
func (s *CouponQuote) GetApplicableAmount() float64 {
	return s.ApplicableAmount
}

// GetFinalAmount returns the value of FinalAmount.
func (s *CouponQuote) GetFinalAmount() float64 {
	return s.FinalAmount
}

// SetCouponId sets the value of CouponId.
func (s *CouponQuote) SetCouponId(val string) {
	s.CouponId = val
}

// SetCode sets the value of Code.
func (s *CouponQuote) SetCode(val string) {
	s.Code = val
}

// SetDiscountAmount sets the value of DiscountAmount.
func (s *CouponQuote) SetDiscountAmount(val float64) {
	s.DiscountAmount = val
}

// SetApplicableAmount sets the value of ApplicableAmount.
func (s *CouponQuote) SetApplicableAmount(val float64) {
	s.ApplicableAmount = val
}

// SetFinalAmount sets the value of FinalAmount.
func (s *CouponQuote) SetFinalAmount(val float64) {
	s.FinalAmount = val
}

// Ref: #/components/schemas/CouponQuoteResponse
type CouponQuoteResponse struct {
	Success bool        `json:"success"`
	Data    CouponQuote `json:"data"`
}

// GetSuccess returns the value of Success.
func (s *CouponQuoteResponse) GetSuccess() bool {
	return s.Success
}

// GetData returns the value of Data.
func (s *CouponQuoteResponse) GetData() CouponQuote {
	return s.Data
}

// SetSuccess sets the value of Success.
func (s *CouponQuoteResponse) SetSuccess(val bool) {
	s.Success = val
}

// SetData sets the value of Data.
func (s *CouponQuoteResponse) SetData(val CouponQuote) {
	s.Data = val
}

// Ref: #/components/schemas/CouponResponse
type CouponResponse struct {
	Success bool   `json:"success"`
	Data    Coupon `json:"data"`
}

// GetSuccess returns the value of Success.
func (s *CouponResponse) GetSuccess() bool {
	return s.Success
}

// GetData returns the value of Data.
func (s *CouponResponse) GetData() Coupon {
	return s.Data
}

// SetSuccess sets the value of Success.
func (s *CouponResponse) SetSuccess(val bool) {
	s.Success = val
}

// SetData sets the value of Data.
func (s *CouponResponse) SetData(val Coupon) {
	s.Data = val
}

// Ref: #/components/schemas/CouponStats
type CouponStats struct {
	Uses              int        `json:"uses"`
	UniqueUsers       int        `json:"uniqueUsers"`
	TotalDiscount     float64    `json:"totalDiscount"`
	TotalSales        float64    `json:"totalSales"`
	AverageOrderValue float64    `json:"averageOrderValue"`
	BudgetRemaining   OptFloat64 `json:"budgetRemaining"`
}

// GetUses returns the value of Uses.
func (s *CouponStats) GetUses() int {
	return s.Uses
}

// GetUniqueUsers returns the value of UniqueUsers.
func (s *CouponStats) GetUniqueUsers() int {
	return s.UniqueUsers
}

// GetTotalDiscount returns the value of TotalDiscount.
func (s *CouponStats) GetTotalDiscount() float64 {
	return s.TotalDiscount
}

// GetTotalSales returns the value of TotalSales.
func (s *CouponStats) GetTotalSales() float64 {
	return s.TotalSales
}

// GetAverageOrderValue returns the value of AverageOrderValue.
func (s *CouponStats) GetAverageOrderValue() float64 {
	return s.AverageOrderValue
}

// GetBudgetRemaining returns the value of BudgetRemaining.
func (s *CouponStats) GetBudgetRemaining() OptFloat64 {
	return s.BudgetRemaining
}

// SetUses sets the value of Uses.
func (s *CouponStats) SetUses(val int) {
	s.Uses = val
}

// SetUniqueUsers sets the value of UniqueUsers.
func (s *CouponStats) SetUniqueUsers(val int) {
	s.UniqueUsers = val
}

// SetTotalDiscount sets the value of TotalDiscount.
func (s *CouponStats) SetTotalDiscount(val float64) {
	s.TotalDiscount = val
}

// SetTotalSales sets the value of TotalSales.
func (s *CouponStats) SetTotalSales(val float64) {
	s.TotalSales = val
}

// SetAverageOrderValue sets the value of AverageOrderValue.
func (s *CouponStats) SetAverageOrderValue(val float64) {
	s.AverageOrderValue = val
}

// SetBudgetRemaining sets the value of BudgetRemaining.
func (s *CouponStats) SetBudgetRemaining(val OptFloat64) {
	s.BudgetRemaining = val
}

// Ref: #/components/schemas/CouponUsage
type CouponUsage struct {
	UserId         string    `json:"userId"`
	OrderId        string    `json:"orderId"`
	OrderTotal     float64   `json:"orderTotal"`
	DiscountAmount float64   `json:"discountAmount"`
	UsedAt         time.Time `json:"usedAt"`
}

// GetUserId returns the value of UserId.
func (s *CouponUsage) GetUserId() string {
	return s.UserId
}

// GetOrderId returns the value of OrderId.
func (s *CouponUsage) GetOrderId() string {
	return s.OrderId
}

// GetOrderTotal returns the value of OrderTotal.
func (s *CouponUsage) GetOrderTotal() float64 {
	return s.OrderTotal
}

// GetDiscountAmount returns the value of DiscountAmount.
func (s *CouponUsage) GetDiscountAmount() float64 {
	return s.DiscountAmount
}

// GetUsedAt returns the value of UsedAt.
func (s *CouponUsage) GetUsedAt() time.Time {
	return s.UsedAt
}

// SetUserId sets the value of UserId.
func (s *CouponUsage) SetUserId(val string) {
	s.UserId = val
}

// SetOrderId sets the value of OrderId.
func (s *CouponUsage) SetOrderId(val string) {
	s.OrderId = val
}

// SetOrderTotal sets the value of OrderTotal.
func (s *CouponUsage) SetOrderTotal(val float64) {
	s.OrderTotal = val
}

// SetDiscountAmount sets the value of DiscountAmount.
func (s *CouponUsage) SetDiscountAmount(val float64) {
	s.DiscountAmount = val
}

// SetUsedAt sets the value of UsedAt.
func (s *CouponUsage) SetUsedAt(val time.Time) {
	s.UsedAt = val
}

// Ref: #/components/schemas/CouponUsageRequest
type CouponUsageRequest struct {
	OrderId string `json:"orderId"`
}

// GetOrderId returns the value of OrderId.
func (s *CouponUsageRequest) GetOrderId() string {
	return s.OrderId
}

// SetOrderId sets the value of OrderId.
func (s *CouponUsageRequest) SetOrderId(val string) {
	s.OrderId = val
}

// Ref: #/components/schemas/CouponUsageResponse
type CouponUsageResponse struct {
	Success bool        `json:"success"`
	Data    CouponUsage `json:"data"`
}

// GetSuccess returns the value of Success.
func (s *CouponUsageResponse) GetSuccess() bool {
	return s.Success
}

// GetData returns the value of Data.
func (s *CouponUsageResponse) GetData() CouponUsage {
	return s.Data
}

// SetSuccess sets the value of Success.
func (s *CouponUsageResponse) SetSuccess(val bool) {
	s.Success = val
}

// SetData sets the value of Data.
func (s *CouponUsageResponse) SetData(val CouponUsage) {
	s.Data = val
}

// Ref: #/components/schemas/CouponValidateRequest
type CouponValidateRequest struct {
	Code       OptString    `json:"code"`
	CouponCode OptString    `json:"couponCode"`
	CartTotal  OptFloat64   `json:"cartTotal"`
	OrderValue OptFloat64   `json:"orderValue"`
	Items      []CouponItem `json:"items"`
}

// GetCode returns the value of Code.
func (s *CouponValidateRequest) GetCode() OptString {
	return s.Code
}

// GetCouponCode returns the value of CouponCode.
func (s *CouponValidateRequest) GetCouponCode() OptString {
	return s.CouponCode
}

// GetCartTotal returns the value of CartTotal.
func (s *CouponValidateRequest) GetCartTotal() OptFloat64 {
	return s.CartTotal
}

// GetOrderValue returns the value of OrderValue.
func (s *CouponValidateRequest) GetOrderValue() OptFloat64 {
	return s.OrderValue
}

// GetItems returns the value of Items.
func (s *CouponValidateRequest) GetItems() []CouponItem {
	return s.Items
}

// SetCode sets the value of Code.
func (s *CouponValidateRequest) SetCode(val OptString) {
	s.Code = val
}

// SetCouponCode sets the value of CouponCode.
func (s *CouponValidateRequest) SetCouponCode(val OptString) {
	s.CouponCode = val
}

// SetCartTotal sets the value of CartTotal.
func (s *CouponValidateRequest) SetCartTotal(val OptFloat64) {
	s.CartTotal = val
}

// SetOrderValue sets the value of OrderValue.
func (s *CouponValidateRequest) SetOrderValue(val OptFloat64) {
	s.OrderValue = val
}

// SetItems sets the value of Items.
func (s *CouponValidateRequest) SetItems(val []CouponItem) {
	s.Items = val
}

// Ref: #/components/schemas/DailyTotal
type DailyTotal struct {
	Date   time.Time `json:"date"`
	Count  int       `json:"count"`
	Amount float64   `json:"amount"`
}

// GetDate returns the value of Date.
func (s *DailyTotal) GetDate() time.Time {
	return s.Date
}

// GetCount returns the value of Count.
func (s *DailyTotal) GetCount() int {
	return s.Count
}

// GetAmount returns the value of Amount.
func (s *DailyTotal) GetAmount() float64 {
	return s.Amount
}

// SetDate sets the value of Date.
func (s *DailyTotal) SetDate(val time.Time) {
	s.Date = val
}

// SetCount sets the value of Count.
func (s *DailyTotal) SetCount(val int) {
	s.Count = val
}

// SetAmount sets the value of Amount.
func (s *DailyTotal) SetAmount(val float64) {
	s.Amount = val
}

// Ref: #/components/schemas/Error
type Error struct {
	Success bool            `json:"success"`
	Error   string          `json:"error"`
	Details OptErrorDetails `json:"details"`
}

// GetSuccess returns the value of Success.
func (s *Error) GetSuccess() bool {
	return s.Success
}

// GetError returns the value of Error.
func (s *Error) GetError() string {
	return s.Error
}

// GetDetails returns the value of Details.
func (s *Error) GetDetails() OptErrorDetails {
	return s.Details
}

// SetSuccess sets the value of Success.
func (s *Error) SetSuccess(val bool) {
	s.Success = val
}

// SetError sets the value of Error.
func (s *Error) SetError(val string) {
	s.Error = val
}

// SetDetails sets the value of Details.
func (s *Error) SetDetails(val OptErrorDetails) {
	s.Details = val
}

// Ref: #/components/schemas/ErrorDetails
type ErrorDetails struct {
	Field         OptString      `json:"field"`
	ProductId     OptString      `json:"productId"`
	Requested     OptInt         `json:"requested"`
	MinOrderValue OptFloat64     `json:"minOrderValue"`
	Expected      OptFloat64     `json:"expected"`
	Received      OptFloat64     `json:"received"`
	From          OptString      `json:"from"`
	To            OptString      `json:"to"`
	Usage         OptCouponUsage `json:"usage"`
}

// GetField returns the value of Field.
func (s *ErrorDetails) GetField() OptString {
	return s.Field
}

// GetProductId returns the value of ProductId.
func (s *ErrorDetails) GetProductId() OptString {
	return s.ProductId
}

// GetRequested returns the value of Requested.
func (s *ErrorDetails) GetRequested() OptInt {
	return s.Requested
}

// GetMinOrderValue returns the value of MinOrderValue.
func (s *ErrorDetails) GetMinOrderValue() OptFloat64 {
	return s.MinOrderValue
}

// GetExpected returns the value of Expected.
func (s *ErrorDetails) GetExpected() OptFloat64 {
	return s.Expected
}

// GetReceived returns the value of Received.
func (s *ErrorDetails) GetReceived() OptFloat64 {
	return s.Received
}

// GetFrom returns the value of From.
func (s *ErrorDetails) GetFrom() OptString {
	return s.From
}

// GetTo returns the value of To.
func (s *ErrorDetails) GetTo() OptString {
	return s.To
}

// GetUsage returns the value of Usage.
func (s *ErrorDetails) GetUsage() OptCouponUsage {
	return s.Usage
}

// SetField sets the value of Field.
func (s *ErrorDetails) SetField(val OptString) {
	s.Field = val
}

// SetProductId sets the value of ProductId.
func (s *ErrorDetails) SetProductId(val OptString) {
	s.ProductId = val
}

// SetRequested sets the value of Requested.
func (s *ErrorDetails) SetRequested(val OptInt) {
	s.Requested = val
}

// SetMinOrderValue sets the value of MinOrderValue.
func (s *ErrorDetails) SetMinOrderValue(val OptFloat64) {
	s.MinOrderValue = val
}

// SetExpected sets the value of Expected.
func (s *ErrorDetails) SetExpected(val OptFloat64) {
	s.Expected = val
}

// SetReceived sets the value of Received.
func (s *ErrorDetails) SetReceived(val OptFloat64) {
	s.Received = val
}

// SetFrom sets the value of From.
func (s *ErrorDetails) SetFrom(val OptString) {
	s.From = val
}

// SetTo sets the value of To.
func (s *ErrorDetails) SetTo(val OptString) {
	s.To = val
}

// SetUsage sets the value of Usage.
func (s *ErrorDetails) SetUsage(val OptCouponUsage) {
	s.Usage = val
}

// ErrorStatusCode wraps Error with StatusCode.
type ErrorStatusCode struct {
	StatusCode int
	Response   Error
}

// GetStatusCode returns the value of StatusCode.
func (s *ErrorStatusCode) GetStatusCode() int {
	return s.StatusCode
}

// GetResponse returns the value of Response.
func (s *ErrorStatusCode) GetResponse() Error {
	return s.Response
}

// SetStatusCode sets the value of StatusCode.
func (s *ErrorStatusCode) SetStatusCode(val int) {
	s.StatusCode = val
}

// SetResponse sets the value of Response.
func (s *ErrorStatusCode) SetResponse(val Error) {
	s.Response = val
}

// Ref: #/components/schemas/Invoice
type Invoice struct {
	InvoiceNumber string    `json:"invoiceNumber"`
	IssuedAt      time.Time `json:"issuedAt"`
	Cgst          float64   `json:"cgst"`
	Sgst          float64   `json:"sgst"`
	Order         Order     `json:"order"`
}

// GetInvoiceNumber returns the value of InvoiceNumber.
func (s *Invoice) GetInvoiceNumber() string {
	return s.InvoiceNumber
}

// GetIssuedAt returns the value of IssuedAt.
func (s *Invoice) GetIssuedAt() time.Time {
	return s.IssuedAt
}

// GetCgst returns the value of Cgst.
func (s *Invoice) GetCgst() float64 {
	return s.Cgst
}

// GetSgst returns the value of Sgst.
func (s *Invoice) GetSgst() float64 {
	return s.Sgst
}

// GetOrder returns the value of Order.
func (s *Invoice) GetOrder() Order {
	return s.Order
}

// SetInvoiceNumber sets the value of InvoiceNumber.
func (s *Invoice) SetInvoiceNumber(val string) {
	s.InvoiceNumber = val
}

// SetIssuedAt sets the value of IssuedAt.
func (s *Invoice) SetIssuedAt(val time.Time) {
	s.IssuedAt = val
}

// SetCgst sets the value of Cgst.
func (s *Invoice) SetCgst(val float64) {
	s.Cgst = val
}

// SetSgst sets the value of Sgst.
func (s *Invoice) SetSgst(val float64) {
	s.Sgst = val
}

// SetOrder sets the value of Order.
func (s *Invoice) SetOrder(val Order) {
	s.Order = val
}

// Ref: #/components/schemas/InvoiceResponse
type InvoiceResponse struct {
	Success bool    `json:"success"`
	Data    Invoice `json:"data"`
}

// GetSuccess returns the value of Success.
func (s *InvoiceResponse) GetSuccess() bool {
	return s.Success
}

// GetData returns the value of Data.
func (s *InvoiceResponse) GetData() Invoice {
	return s.Data
}

// SetSuccess sets the value of Success.
func (s *InvoiceResponse) SetSuccess(val bool) {
	s.Success = val
}

// SetData sets the value of Data.
func (s *InvoiceResponse) SetData(val Invoice) {
	s.Data = val
}

// NewOptAddress returns new OptAddress with value set to v.
func NewOptAddress(v Address) OptAddress {
	return OptAddress{
		Value: v,
		Set:   true,
	}
}

// OptAddress is optional Address.
type OptAddress struct {
	Value Address
	Set   bool
}

// IsSet returns true if OptAddress was set.
func (o OptAddress) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptAddress) Reset() {
	var v Address
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptAddress) SetTo(v Address) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptAddress) Get() (v Address, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptAddress) Or(d Address) Address {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptBool returns new OptBool with value set to v.
func NewOptBool(v bool) OptBool {
	return OptBool{
		Value: v,
		Set:   true,
	}
}

// OptBool is optional bool.
type OptBool struct {
	Value bool
	Set   bool
}

// IsSet returns true if OptBool was set.
func (o OptBool) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptBool) Reset() {
	var v bool
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptBool) SetTo(v bool) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptBool) Get() (v bool, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptBool) Or(d bool) bool {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptCheckout returns new OptCheckout with value set to v.
func NewOptCheckout(v Checkout) OptCheckout {
	return OptCheckout{
		Value: v,
		Set:   true,
	}
}

// OptCheckout is optional Checkout.
type OptCheckout struct {
	Value Checkout
	Set   bool
}

// IsSet returns true if OptCheckout was set.
func (o OptCheckout) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptCheckout) Reset() {
	var v Checkout
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptCheckout) SetTo(v Checkout) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptCheckout) Get() (v Checkout, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptCheckout) Or(d Checkout) Checkout {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptCouponUsage returns new OptCouponUsage with value set to v.
func NewOptCouponUsage(v CouponUsage) OptCouponUsage {
	return OptCouponUsage{
		Value: v,
		Set:   true,
	}
}

// OptCouponUsage is optional CouponUsage.
type OptCouponUsage struct {
	Value CouponUsage
	Set   bool
}

// IsSet returns true if OptCouponUsage was set.
func (o OptCouponUsage) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptCouponUsage) Reset() {
	var v CouponUsage
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptCouponUsage) SetTo(v CouponUsage) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptCouponUsage) Get() (v CouponUsage, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptCouponUsage) Or(d CouponUsage) CouponUsage {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptDateTime returns new OptDateTime with value set to v.
func NewOptDateTime(v time.Time) OptDateTime {
	return OptDateTime{
		Value: v,
		Set:   true,
	}
}

// OptDateTime is optional time.Time.
type OptDateTime struct {
	Value time.Time
	Set   bool
}

// IsSet returns true if OptDateTime was set.
func (o OptDateTime) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptDateTime) Reset() {
	var v time.Time
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptDateTime) SetTo(v time.Time) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptDateTime) Get() (v time.Time, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptDateTime) Or(d time.Time) time.Time {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptErrorDetails returns new OptErrorDetails with value set to v.
func NewOptErrorDetails(v ErrorDetails) OptErrorDetails {
	return OptErrorDetails{
		Value: v,
		Set:   true,
	}
}

// OptErrorDetails is optional ErrorDetails.
type OptErrorDetails struct {
	Value ErrorDetails
	Set   bool
}

// IsSet returns true if OptErrorDetails was set.
func (o OptErrorDetails) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptErrorDetails) Reset() {
	var v ErrorDetails
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptErrorDetails) SetTo(v ErrorDetails) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptErrorDetails) Get() (v ErrorDetails, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptErrorDetails) Or(d ErrorDetails) ErrorDetails {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptFloat64 returns new OptFloat64 with value set to v.
func NewOptFloat64(v float64) OptFloat64 {
	return OptFloat64{
		Value: v,
		Set:   true,
	}
}

// OptFloat64 is optional float64.
type OptFloat64 struct {
	Value float64
	Set   bool
}

// IsSet returns true if OptFloat64 was set.
func (o OptFloat64) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptFloat64) Reset() {
	var v float64
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptFloat64) SetTo(v float64) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptFloat64) Get() (v float64, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptFloat64) Or(d float64) float64 {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptInt returns new OptInt with value set to v.
func NewOptInt(v int) OptInt {
	return OptInt{
		Value: v,
		Set:   true,
	}
}

// OptInt is optional int.
type OptInt struct {
	Value int
	Set   bool
}

// IsSet returns true if OptInt was set.
func (o OptInt) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptInt) Reset() {
	var v int
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptInt) SetTo(v int) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptInt) Get() (v int, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptInt) Or(d int) int {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptString returns new OptString with value set to v.
func NewOptString(v string) OptString {
	return OptString{
		Value: v,
		Set:   true,
	}
}

// OptString is optional string.
type OptString struct {
	Value string
	Set   bool
}

// IsSet returns true if OptString was set.
func (o OptString) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptString) Reset() {
	var v string
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptString) SetTo(v string) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptString) Get() (v string, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptString) Or(d string) string {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// Ref: #/components/schemas/Order
type Order struct {
	ID                 string      `json:"id"`
	OrderNumber        int64       `json:"orderNumber"`
	DisplayOrderNumber string      `json:"displayOrderNumber"`
	InvoiceNumber      OptString   `json:"invoiceNumber"`
	UserId             string      `json:"userId"`
	Items              []OrderItem `json:"items"`
	Subtotal           float64     `json:"subtotal"`
	Discount           float64     `json:"discount"`
	CouponId           OptString   `json:"couponId"`
	CouponCode         OptString   `json:"couponCode"`
	Tax                float64     `json:"tax"`
	Shipping           float64     `json:"shipping"`
	TotalAmount        float64     `json:"totalAmount"`
	ShippingAddress    Address     `json:"shippingAddress"`
	PaymentMethod      string      `json:"paymentMethod"`
	PaymentStatus      string      `json:"paymentStatus"`
	Status             string      `json:"status"`
	GatewayOrderId     OptString   `json:"gatewayOrderId"`
	GatewayPaymentId   OptString   `json:"gatewayPaymentId"`
	AdminNote          OptString   `json:"adminNote"`
	AdminNoteUpdatedAt OptDateTime `json:"adminNoteUpdatedAt"`
	AdminNoteUpdatedBy OptString   `json:"adminNoteUpdatedBy"`
	CreatedAt          time.Time   `json:"createdAt"`
	UpdatedAt          time.Time   `json:"updatedAt"`
}

// GetID returns the value of ID.
func (s *Order) GetID() string {
	return s.ID
}

// GetOrderNumber returns the value of OrderNumber.
func (s *Order) GetOrderNumber() int64 {
	return s.OrderNumber
}

// GetDisplayOrderNumber returns the value of DisplayOrderNumber.
func (s *Order) GetDisplayOrderNumber() string {
	return s.DisplayOrderNumber
}

// GetInvoiceNumber returns the value of InvoiceNumber.
func (s *Order) GetInvoiceNumber() OptString {
	return s.InvoiceNumber
}

// GetUserId returns the value of UserId.
func (s *Order) GetUserId() string {
	return s.UserId
}

// GetItems returns the value of Items.
func (s *Order) GetItems() []OrderItem {
	return s.Items
}

// GetSubtotal returns the value of Subtotal.
func (s *Order) GetSubtotal() float64 {
	return s.Subtotal
}

// GetDiscount returns the value of Discount.
func (s *Order) GetDiscount() float64 {
	return s.Discount
}

// GetCouponId returns the value of CouponId.
func (s *Order) GetCouponId() OptString {
	return s.CouponId
}

// GetCouponCode returns the value of CouponCode.
func (s *Order) GetCouponCode() OptString {
	return s.CouponCode
}

// GetTax returns the value of Tax.
func (s *Order) GetTax() float64 {
	return s.Tax
}

// GetShipping returns the value of Shipping.
func (s *Order) GetShipping() float64 {
	return s.Shipping
}

// GetTotalAmount returns the value of TotalAmount.
func (s *Order) GetTotalAmount() float64 {
	return s.TotalAmount
}

// GetShippingAddress returns the value of ShippingAddress.
func (s *Order) GetShippingAddress() Address {
	return s.ShippingAddress
}

// GetPaymentMethod returns the value of PaymentMethod.
func (s *Order) GetPaymentMethod() string {
	return s.PaymentMethod
}

// GetPaymentStatus returns the value of PaymentStatus.
func (s *Order) GetPaymentStatus() string {
	return s.PaymentStatus
}

// GetStatus returns the value of Status.
func (s *Order) GetStatus() string {
	return s.Status
}

// GetGatewayOrderId returns the value of GatewayOrderId.
func (s *Order) GetGatewayOrderId() OptString {
	return s.GatewayOrderId
}

// GetGatewayPaymentId returns the value of GatewayPaymentId.
func (s *Order) GetGatewayPaymentId() OptString {
	return s.GatewayPaymentId
}

// GetAdminNote returns the value of AdminNote.
func (s *Order) GetAdminNote() OptString {
	return s.AdminNote
}

// GetAdminNoteUpdatedAt returns the value of AdminNoteUpdatedAt.
func (s *Order) GetAdminNoteUpdatedAt() OptDateTime {
	return s.AdminNoteUpdatedAt
}

// GetAdminNoteUpdatedBy returns the value of AdminNoteUpdatedBy.
func (s *Order) GetAdminNoteUpdatedBy() OptString {
	return s.AdminNoteUpdatedBy
}

// GetCreatedAt returns the value of CreatedAt.
func (s *Order) GetCreatedAt() time.Time {
	return s.CreatedAt
}

// GetUpdatedAt returns the value of UpdatedAt.
func (s *Order) GetUpdatedAt() time.Time {
	return s.UpdatedAt
}

// SetID sets the value of ID.
func (s *Order) SetID(val string) {
	s.ID = val
}

// SetOrderNumber sets the value of OrderNumber.
func (s *Order) SetOrderNumber(val int64) {
	s.OrderNumber = val
}

// SetDisplayOrderNumber sets the value of DisplayOrderNumber.
func (s *Order) SetDisplayOrderNumber(val string) {
	s.DisplayOrderNumber = val
}

// SetInvoiceNumber sets the value of InvoiceNumber.
func (s *Order) SetInvoiceNumber(val OptString) {
	s.InvoiceNumber = val
}

// SetUserId sets the value of UserId.
func (s *Order) SetUserId(val string) {
	s.UserId = val
}

// SetItems sets the value of Items.
func (s *Order) SetItems(val []OrderItem) {
	s.Items = val
}

// SetSubtotal sets the value of Subtotal.
func (s *Order) SetSubtotal(val float64) {
	s.Subtotal = val
}

// SetDiscount sets the value of Discount.
func (s *Order) SetDiscount(val float64) {
	s.Discount = val
}

// SetCouponId sets the value of CouponId.
func (s *Order) SetCouponId(val OptString) {
	s.CouponId = val
}

// SetCouponCode sets the value of CouponCode.
func (s *Order) SetCouponCode(val OptString) {
	s.CouponCode = val
}

// SetTax sets the value of Tax.
func (s *Order) SetTax(val float64) {
	s.Tax = val
}

// SetShipping sets the value of Shipping.
func (s *Order) SetShipping(val float64) {
	s.Shipping = val
}

// SetTotalAmount sets the value of TotalAmount.
func (s *Order) SetTotalAmount(val float64) {
	s.TotalAmount = val
}

// SetShippingAddress sets the value of ShippingAddress.
func (s *Order) SetShippingAddress(val Address) {
	s.ShippingAddress = val
}

// SetPaymentMethod sets the value of PaymentMethod.
func (s *Order) SetPaymentMethod(val string) {
	s.PaymentMethod = val
}

// SetPaymentStatus sets the value of PaymentStatus.
func (s *Order) SetPaymentStatus(val string) {
	s.PaymentStatus = val
}

// SetStatus sets the value of Status.
func (s *Order) SetStatus(val string) {
	s.Status = val
}

// SetGatewayOrderId sets the value of GatewayOrderId.
func (s *Order) SetGatewayOrderId(val OptString) {
	s.GatewayOrderId = val
}

// SetGatewayPaymentId sets the value of GatewayPaymentId.
func (s *Order) SetGatewayPaymentId(val OptString) {
	s.GatewayPaymentId = val
}

// SetAdminNote sets the value of AdminNote.
func (s *Order) SetAdminNote(val OptString) {
	s.AdminNote = val
}

// SetAdminNoteUpdatedAt sets the value of AdminNoteUpdatedAt.
func (s *Order) SetAdminNoteUpdatedAt(val OptDateTime) {
	s.AdminNoteUpdatedAt = val
}

// SetAdminNoteUpdatedBy sets the value of AdminNoteUpdatedBy.
func (s *Order) SetAdminNoteUpdatedBy(val OptString) {
	s.AdminNoteUpdatedBy = val
}

// SetCreatedAt sets the value of CreatedAt.
func (s *Order) SetCreatedAt(val time.Time) {
	s.CreatedAt = val
}

// SetUpdatedAt sets the value of UpdatedAt.
func (s *Order) SetUpdatedAt(val time.Time) {
	s.UpdatedAt = val
}

// Ref: #/components/schemas/OrderItem
type OrderItem struct {
	ProductId string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Gst       float64 `json:"gst"`
	GstAmount float64 `json:"gstAmount"`
}

// GetProductId returns the value of ProductId.
func (s *OrderItem) GetProductId() string {
	return s.ProductId
}

// GetName returns the value of Name.
func (s *OrderItem) GetName() string {
	return s.Name
}

// GetQuantity returns the value of Quantity.
func (s *OrderItem) GetQuantity() int {
	return s.Quantity
}

// GetPrice returns the value of Price.
func (s *OrderItem) GetPrice() float64 {
	return s.Price
}

// GetGst returns the value of Gst.
func (s *OrderItem) GetGst() float64 {
	return s.Gst
}

// GetGstAmount returns the value of GstAmount.
func (s *OrderItem) GetGstAmount() float64 {
	return s.GstAmount
}

// SetProductId sets the value of ProductId.
func (s *OrderItem) SetProductId(val string) {
	s.ProductId = val
}

// SetName sets the value of Name.
func (s *OrderItem) SetName(val string) {
	s.Name = val
}

// SetQuantity sets the value of Quantity.
func (s *OrderItem) SetQuantity(val int) {
	s.Quantity = val
}

// SetPrice sets the value of Price.
func (s *OrderItem) SetPrice(val float64) {
	s.Price = val
}

// SetGst sets the value of Gst.
func (s *OrderItem) SetGst(val float64) {
	s.Gst = val
}

// SetGstAmount sets the value of GstAmount.
func (s *OrderItem) SetGstAmount(val float64) {
	s.GstAmount = val
}

// Ref: #/components/schemas/OrderListResponse
type OrderListResponse struct {
	Success bool      `json:"success"`
	Data    OrderPage `json:"data"`
}

// GetSuccess returns the value of Success.
func (s *OrderListResponse) GetSuccess() bool {
	return s.Success
}

// GetData returns the value of Data.
func (s *OrderListResponse) GetData() OrderPage {
	return s.Data
}

// SetSuccess sets the value of Success.
func (s *OrderListResponse) SetSuccess(val bool) {
	s.Success = val
}

// SetData sets the value of Data.
func (s *OrderListResponse) SetData(val OrderPage) {
	s.Data = val
}

// Ref: #/components/schemas/OrderPage
type OrderPage struct {
	Orders []Order `json:"orders"`
	Total  int     `json:"total"`
	Limit  int     `json:"limit"`
	Offset int     `json:"offset"`
}

// GetOrders returns the value of Orders.
func (s *OrderPage) GetOrders() []Order {
	return s.Orders
}

// GetTotal returns the value of Total.
func (s *OrderPage) GetTotal() int {
	return s.Total
}

// GetLimit returns the value of Limit.
func (s *OrderPage) GetLimit() int {
	return s.Limit
}

// GetOffset returns the value of Offset.
func (s *OrderPage) GetOffset() int {
	return s.Offset
}

// SetOrders sets the value of Orders.
func (s *OrderPage) SetOrders(val []Order) {
	s.Orders = val
}

// SetTotal sets the value of Total.
func (s *OrderPage) SetTotal(val int) {
	s.Total = val
}

// SetLimit sets the value of Limit.
func (s *OrderPage) SetLimit(val int) {
	s.Limit = val
}

// SetOffset sets the value of Offset.
func (s *OrderPage) SetOffset(val int) {
	s.Offset = val
}

// Ref: #/components/schemas/OrderResponse
type OrderResponse struct {
	Success bool  `json:"success"`
	Data    Order `json:"data"`
}

// GetSuccess returns the value of Success.
func (s *OrderResponse) GetSuccess() bool {
	return s.Success
}

// GetData returns the value of Data.
func (s *OrderResponse) GetData() Order {
	return s.Data
}

// SetSuccess sets the value of Success.
func (s *OrderResponse) SetSuccess(val bool) {
	s.Success = val
}

// SetData sets the value of Data.
func (s *OrderResponse) SetData(val Order) {
	s.Data = val
}

// Gateway callback fields, under either naming. A cart in the body
// overrides the one recorded with the intent.
// Ref: #/components/schemas/PaymentConfirmRequest
type PaymentConfirmRequest struct {
	GatewayOrderId    OptString   `json:"gatewayOrderId"`
	PaymentId         OptString   `json:"paymentId"`
	Signature         OptString   `json:"signature"`
	RazorpayOrderID   OptString   `json:"razorpay_order_id"`
	RazorpayPaymentID OptString   `json:"razorpay_payment_id"`
	RazorpaySignature OptString   `json:"razorpay_signature"`
	Items             []CartItem  `json:"items"`
	ShippingAddress   OptAddress  `json:"shippingAddress"`
	CouponCode        OptString   `json:"couponCode"`
	OrderData         OptCheckout `json:"orderData"`
}

// GetGatewayOrderId returns the value of GatewayOrderId.
func (s *PaymentConfirmRequest) GetGatewayOrderId() OptString {
	return s.GatewayOrderId
}

// GetPaymentId returns the value of PaymentId.
func (s *PaymentConfirmRequest) GetPaymentId() OptString {
	return s.PaymentId
}

// GetSignature returns the value of Signature.
func (s *PaymentConfirmRequest) GetSignature() OptString {
	return s.Signature
}

// GetRazorpayOrderID returns the value of RazorpayOrderID.
func (s *PaymentConfirmRequest) GetRazorpayOrderID() OptString {
	return s.RazorpayOrderID
}

// GetRazorpayPaymentID returns the value of RazorpayPaymentID.
func (s *PaymentConfirmRequest) GetRazorpayPaymentID() OptString {
	return s.RazorpayPaymentID
}

// GetRazorpaySignature returns the value of RazorpaySignature.
func (s *PaymentConfirmRequest) GetRazorpaySignature() OptString {
	return s.RazorpaySignature
}

// GetItems returns the value of Items.
func (s *PaymentConfirmRequest) GetItems() []CartItem {
	return s.Items
}

// GetShippingAddress returns the value of ShippingAddress.
func (s *PaymentConfirmRequest) GetShippingAddress() OptAddress {
	return s.ShippingAddress
}

// GetCouponCode returns the value of CouponCode.
func (s *PaymentConfirmRequest) GetCouponCode() OptString {
	return s.CouponCode
}

// GetOrderData returns the value of OrderData.
func (s *PaymentConfirmRequest) GetOrderData() OptCheckout {
	return s.OrderData
}

// SetGatewayOrderId sets the value of GatewayOrderId.
func (s *PaymentConfirmRequest) SetGatewayOrderId(val OptString) {
	s.GatewayOrderId = val
}

// SetPaymentId sets the value of PaymentId.
func (s *PaymentConfirmRequest) SetPaymentId(val OptString) {
	s.PaymentId = val
}

// SetSignature sets the value of Signature.
func (s *PaymentConfirmRequest) SetSignature(val OptString) {
	s.Signature = val
}

// SetRazorpayOrderID sets the value of RazorpayOrderID.
func (s *PaymentConfirmRequest) SetRazorpayOrderID(val OptString) {
	s.RazorpayOrderID = val
}

// SetRazorpayPaymentID sets the value of RazorpayPaymentID.
func (s *PaymentConfirmRequest) SetRazorpayPaymentID(val OptString) {
	s.RazorpayPaymentID = val
}

// SetRazorpaySignature sets the value of RazorpaySignature.
func (s *PaymentConfirmRequest) SetRazorpaySignature(val OptString) {
	s.RazorpaySignature = val
}

// SetItems sets the value of Items.
func (s *PaymentConfirmRequest) SetItems(val []CartItem) {
	s.Items = val
}

// SetShippingAddress sets the value of ShippingAddress.
func (s *PaymentConfirmRequest) SetShippingAddress(val OptAddress) {
	s.ShippingAddress = val
}

// SetCouponCode sets the value of CouponCode.
func (s *PaymentConfirmRequest) SetCouponCode(val OptString) {
	s.CouponCode = val
}

// SetOrderData sets the value of OrderData.
func (s *PaymentConfirmRequest) SetOrderData(val OptCheckout) {
	s.OrderData = val
}

// Ref: #/components/schemas/PaymentIntent
type PaymentIntent struct {
	TransactionId  string  `json:"transactionId"`
	GatewayOrderId string  `json:"gatewayOrderId"`
	Amount         float64 `json:"amount"`
	AmountMinor    int64   `json:"amountMinor"`
	Currency       string  `json:"currency"`
	// Public gateway key for the checkout widget.
	KeyId    string    `json:"keyId"`
	Subtotal float64   `json:"subtotal"`
	Discount float64   `json:"discount"`
	Tax      float64   `json:"tax"`
	Shipping float64   `json:"shipping"`
	CouponId OptString `json:"couponId"`
}

// GetTransactionId returns the value of TransactionId.
func (s *PaymentIntent) GetTransactionId() string {
	return s.TransactionId
}

// GetGatewayOrderId returns the value of GatewayOrderId.
func (s *PaymentIntent) GetGatewayOrderId() string {
	return s.GatewayOrderId
}

// GetAmount returns the value of Amount.
func (s *PaymentIntent) GetAmount() float64 {
	return s.Amount
}

// GetAmountMinor returns the value of AmountMinor.
func (s *PaymentIntent) GetAmountMinor() int64 {
	return s.AmountMinor
}

// GetCurrency returns the value of Currency.
func (s *PaymentIntent) GetCurrency() string {
	return s.Currency
}

// GetKeyId returns the value of KeyId.
func (s *PaymentIntent) GetKeyId() string {
	return s.KeyId
}

// GetSubtotal returns the value of Subtotal.
func (s *PaymentIntent) GetSubtotal() float64 {
	return s.Subtotal
}

// GetDiscount returns the value of Discount.
func (s *PaymentIntent) GetDiscount() float64 {
	return s.Discount
}

// GetTax returns the value of Tax.
func (s *PaymentIntent) GetTax() float64 {
	return s.Tax
}

// GetShipping returns the value of Shipping.
func (s *PaymentIntent) GetShipping() float64 {
	return s.Shipping
}

// GetCouponId returns the value of CouponId.
func (s *PaymentIntent) GetCouponId() OptString {
	return s.CouponId
}

// SetTransactionId sets the value of TransactionId.
func (s *PaymentIntent) SetTransactionId(val string) {
	s.TransactionId = val
}

// SetGatewayOrderId sets the value of GatewayOrderId.
func (s *PaymentIntent) SetGatewayOrderId(val string) {
	s.GatewayOrderId = val
}

// SetAmount sets the value of Amount.
func (s *PaymentIntent) SetAmount(val float64) {
	s.Amount = val
}

// SetAmountMinor sets the value of AmountMinor.
func (s *PaymentIntent) SetAmountMinor(val int64) {
	s.AmountMinor = val
}

// SetCurrency sets the value of Currency.
func (s *PaymentIntent) SetCurrency(val string) {
	s.Currency = val
}

// SetKeyId sets the value of KeyId.
func (s *PaymentIntent) SetKeyId(val string) {
	s.KeyId = val
}

// SetSubtotal sets the value of Subtotal.
func (s *PaymentIntent) SetSubtotal(val float64) {
	s.Subtotal = val
}

// SetDiscount sets the value of Discount.
func (s *PaymentIntent) SetDiscount(val float64) {
	s.Discount = val
}

// SetTax sets the value of Tax.
func (s *PaymentIntent) SetTax(val float64) {
	s.Tax = val
}

// SetShipping sets the value of Shipping.
func (s *PaymentIntent) SetShipping(val float64) {
	s.Shipping = val
}

// SetCouponId sets the value of CouponId.
func (s *PaymentIntent) SetCouponId(val OptString) {
	s.CouponId = val
}

// Ref: #/components/schemas/PaymentIntentRequest
type PaymentIntentRequest struct {
	Items           []CartItem `json:"items"`
	ShippingAddress Address    `json:"shippingAddress"`
	CouponCode      OptString  `json:"couponCode"`
	// The total the client displayed.
	TotalAmount OptFloat64 `json:"totalAmount"`
	Amount      OptFloat64 `json:"amount"`
}

// GetItems returns the value of Items.
func (s *PaymentIntentRequest) GetItems() []CartItem {
	return s.Items
}

// GetShippingAddress returns the value of ShippingAddress.
func (s *PaymentIntentRequest) GetShippingAddress() Address {
	return s.ShippingAddress
}

// GetCouponCode returns the value of CouponCode.
func (s *PaymentIntentRequest) GetCouponCode() OptString {
	return s.CouponCode
}

// GetTotalAmount returns the value of TotalAmount.
func (s *PaymentIntentRequest) GetTotalAmount() OptFloat64 {
	return s.TotalAmount
}

// GetAmount returns the value of Amount.
func (s *PaymentIntentRequest) GetAmount() OptFloat64 {
	return s.Amount
}

// SetItems sets the value of Items.
func (s *PaymentIntentRequest) SetItems(val []CartItem) {
	s.Items = val
}

// SetShippingAddress sets the value of ShippingAddress.
func (s *PaymentIntentRequest) SetShippingAddress(val Address) {
	s.ShippingAddress = val
}

// SetCouponCode sets the value of CouponCode.
func (s *PaymentIntentRequest) SetCouponCode(val OptString) {
	s.CouponCode = val
}

// SetTotalAmount sets the value of TotalAmount.
func (s *PaymentIntentRequest) SetTotalAmount(val OptFloat64) {
	s.TotalAmount = val
}

// SetAmount sets the value of Amount.
func (s *PaymentIntentRequest) SetAmount(val OptFloat64) {
	s.Amount = val
}

// Ref: #/components/schemas/PaymentIntentResponse
type PaymentIntentResponse struct {
	Success bool          `json:"success"`
	Data    PaymentIntent `json:"data"`
}

// GetSuccess returns the value of Success.
func (s *PaymentIntentResponse) GetSuccess() bool {
	return s.Success
}

// GetData returns the value of Data.
func (s *PaymentIntentResponse) GetData() PaymentIntent {
	return s.Data
}

// SetSuccess sets the value of Success.
func (s *PaymentIntentResponse) SetSuccess(val bool) {
	s.Success = val
}

// SetData sets the value of Data.
func (s *PaymentIntentResponse) SetData(val PaymentIntent) {
	s.Data = val
}

// Ref: #/components/schemas/PaymentStats
type PaymentStats struct {
	From     time.Time     `json:"from"`
	To       time.Time     `json:"to"`
	ByStatus []StatusTotal `json:"byStatus"`
	Daily    []DailyTotal  `json:"daily"`
}

// GetFrom returns the value of From.
func (s *PaymentStats) GetFrom() time.Time {
	return s.From
}

// GetTo returns the value of To.
func (s *PaymentStats) GetTo() time.Time {
	return s.To
}

// GetByStatus returns the value of ByStatus.
func (s *PaymentStats) GetByStatus() []StatusTotal {
	return s.ByStatus
}

// GetDaily returns the value of Daily.
func (s *PaymentStats) GetDaily() []DailyTotal {
	return s.Daily
}

// SetFrom sets the value of From.
func (s *PaymentStats) SetFrom(val time.Time) {
	s.From = val
}

// SetTo sets the value of To.
func (s *PaymentStats) SetTo(val time.Time) {
	s.To = val
}

// SetByStatus sets the value of ByStatus.
func (s *PaymentStats) SetByStatus(val []StatusTotal) {
	s.ByStatus = val
}

// SetDaily sets the value of Daily.
func (s *PaymentStats) SetDaily(val []DailyTotal) {
	s.Daily = val
}

// Ref: #/components/schemas/PaymentStatsResponse
type PaymentStatsResponse struct {
	Success bool         `json:"success"`
	Data    PaymentStats `json:"data"`
}

// GetSuccess returns the value of Success.
func (s *PaymentStatsResponse) GetSuccess() bool {
	return s.Success
}

// GetData returns the value of Data.
func (s *PaymentStatsResponse) GetData() PaymentStats {
	return s.Data
}

// SetSuccess sets the value of Success.
func (s *PaymentStatsResponse) SetSuccess(val bool) {
	s.Success = val
}

// SetData sets the value of Data.
func (s *PaymentStatsResponse) SetData(val PaymentStats) {
	s.Data = val
}

// Ref: #/components/schemas/RefundRequest
type RefundRequest struct {
	// Defaults to the full captured amount.
	Amount OptFloat64 `json:"amount"`
	Reason OptString  `json:"reason"`
}

// GetAmount returns the value of Amount.
func (s *RefundRequest) GetAmount() OptFloat64 {
	return s.Amount
}

// GetReason returns the value of Reason.
func (s *RefundRequest) GetReason() OptString {
	return s.Reason
}

// SetAmount sets the value of Amount.
func (s *RefundRequest) SetAmount(val OptFloat64) {
	s.Amount = val
}

// SetReason sets the value of Reason.
func (s *RefundRequest) SetReason(val OptString) {
	s.Reason = val
}

// Ref: #/components/schemas/RefundResponse
type RefundResponse struct {
	Success bool         `json:"success"`
	Data    RefundResult `json:"data"`
}

// GetSuccess returns the value of Success.
func (s *RefundResponse) GetSuccess() bool {
	return s.Success
}

// GetData returns the value of Data.
func (s *RefundResponse) GetData() RefundResult {
	return s.Data
}

// SetSuccess sets the value of Success.
func (s *RefundResponse) SetSuccess(val bool) {
	s.Success = val
}

// SetData sets the value of Data.
func (s *RefundResponse) SetData(val RefundResult) {
	s.Data = val
}

// Ref: #/components/schemas/RefundResult
type RefundResult struct {
	Transaction Transaction `json:"transaction"`
	Order       Order       `json:"order"`
}

// GetTransaction returns the value of Transaction.
func (s *RefundResult) GetTransaction() Transaction {
	return s.Transaction
}

// GetOrder returns the value of Order.
func (s *RefundResult) GetOrder() Order {
	return s.Order
}

// SetTransaction sets the value of Transaction.
func (s *RefundResult) SetTransaction(val Transaction) {
	s.Transaction = val
}

// SetOrder sets the value of Order.
func (s *RefundResult) SetOrder(val Order) {
	s.Order = val
}

// Ref: #/components/schemas/StatusTotal
type StatusTotal struct {
	Status string  `json:"status"`
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
}

// GetStatus returns the value of Status.
func (s *StatusTotal) GetStatus() string {
	return s.Status
}

// GetCount returns the value of Count.
func (s *StatusTotal) GetCount() int {
	return s.Count
}

// GetAmount returns the value of Amount.
func (s *StatusTotal) GetAmount() float64 {
	return s.Amount
}

// SetStatus sets the value of Status.
func (s *StatusTotal) SetStatus(val string) {
	s.Status = val
}

// SetCount sets the value of Count.
func (s *StatusTotal) SetCount(val int) {
	s.Count = val
}

// SetAmount sets the value of Amount.
func (s *StatusTotal) SetAmount(val float64) {
	s.Amount = val
}

// Ref: #/components/schemas/StatusUpdate
type StatusUpdate struct {
	Status        OptString `json:"status"`
	PaymentStatus OptString `json:"paymentStatus"`
}

// GetStatus returns the value of Status.
func (s *StatusUpdate) GetStatus() OptString {
	return s.Status
}

// GetPaymentStatus returns the value of PaymentStatus.
func (s *StatusUpdate) GetPaymentStatus() OptString {
	return s.PaymentStatus
}

// SetStatus sets the value of Status.
func (s *StatusUpdate) SetStatus(val OptString) {
	s.Status = val
}

// SetPaymentStatus sets the value of PaymentStatus.
func (s *StatusUpdate) SetPaymentStatus(val OptString) {
	s.PaymentStatus = val
}

// Ref: #/components/schemas/Transaction
type Transaction struct {
	ID               string     `json:"id"`
	GatewayOrderId   string     `json:"gatewayOrderId"`
	OrderId          OptString  `json:"orderId"`
	UserId           string     `json:"userId"`
	Amount           float64    `json:"amount"`
	Currency         string     `json:"currency"`
	Status           string     `json:"status"`
	PaymentId        OptString  `json:"paymentId"`
	RefundId         OptString  `json:"refundId"`
	RefundStatus     OptString  `json:"refundStatus"`
	RefundAmount     OptFloat64 `json:"refundAmount"`
	ErrorCode        OptString  `json:"errorCode"`
	ErrorDescription OptString  `json:"errorDescription"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// GetID returns the value of ID.
func (s *Transaction) GetID() string {
	return s.ID
}

// GetGatewayOrderId returns the value of GatewayOrderId.
func (s *Transaction) GetGatewayOrderId() string {
	return s.GatewayOrderId
}

// GetOrderId returns the value of OrderId.
func (s *Transaction) GetOrderId() OptString {
	return s.OrderId
}

// GetUserId returns the value of UserId.
func (s *Transaction) GetUserId() string {
	return s.UserId
}

// GetAmount returns the value of Amount.
func (s *Transaction) GetAmount() float64 {
	return s.Amount
}

// GetCurrency returns the value of Currency.
func (s *Transaction) GetCurrency() string {
	return s.Currency
}

// GetStatus returns the value of Status.
func (s *Transaction) GetStatus() string {
	return s.Status
}

// GetPaymentId returns the value of PaymentId.
func (s *Transaction) GetPaymentId() OptString {
	return s.PaymentId
}

// GetRefundId returns the value of RefundId.
func (s *Transaction) GetRefundId() OptString {
	return s.RefundId
}

// GetRefundStatus returns the value of RefundStatus.
func (s *Transaction) GetRefundStatus() OptString {
	return s.RefundStatus
}

// GetRefundAmount returns the value of RefundAmount.
func (s *Transaction) GetRefundAmount() OptFloat64 {
	return s.RefundAmount
}

// GetErrorCode returns the value of ErrorCode.
func (s *Transaction) GetErrorCode() OptString {
	return s.ErrorCode
}

// GetErrorDescription returns the value of ErrorDescription.
func (s *Transaction) GetErrorDescription() OptString {
	return s.ErrorDescription
}

// GetCreatedAt returns the value of CreatedAt.
func (s *Transaction) GetCreatedAt() time.Time {
	return s.CreatedAt
}

// GetUpdatedAt returns the value of UpdatedAt.
func (s *Transaction) GetUpdatedAt() time.Time {
	return s.UpdatedAt
}

// SetID sets the value of ID.
func (s *Transaction) SetID(val string) {
	s.ID = val
}

// SetGatewayOrderId sets the value of GatewayOrderId.
func (s *Transaction) SetGatewayOrderId(val string) {
	s.GatewayOrderId = val
}

// SetOrderId sets the value of OrderId.
func (s *Transaction) SetOrderId(val OptString) {
	s.OrderId = val
}

// SetUserId sets the value of UserId.
func (s *Transaction) SetUserId(val string) {
	s.UserId = val
}

// SetAmount sets the value of Amount.
func (s *Transaction) SetAmount(val float64) {
	s.Amount = val
}

// SetCurrency sets the value of Currency.
func (s *Transaction) SetCurrency(val string) {
	s.Currency = val
}

// SetStatus sets the value of Status.
func (s *Transaction) SetStatus(val string) {
	s.Status = val
}

// SetPaymentId sets the value of PaymentId.
func (s *Transaction) SetPaymentId(val OptString) {
	s.PaymentId = val
}

// SetRefundId sets the value of RefundId.
func (s *Transaction) SetRefundId(val OptString) {
	s.RefundId = val
}

// SetRefundStatus sets the value of RefundStatus.
func (s *Transaction) SetRefundStatus(val OptString) {
	s.RefundStatus = val
}

// SetRefundAmount sets the value of RefundAmount.
func (s *Transaction) SetRefundAmount(val OptFloat64) {
	s.RefundAmount = val
}

// SetErrorCode sets the value of ErrorCode.
func (s *Transaction) SetErrorCode(val OptString) {
	s.ErrorCode = val
}

// SetErrorDescription sets the value of ErrorDescription.
func (s *Transaction) SetErrorDescription(val OptString) {
	s.ErrorDescription = val
}

// SetCreatedAt sets the value of CreatedAt.
func (s *Transaction) SetCreatedAt(val time.Time) {
	s.CreatedAt = val
}

// SetUpdatedAt sets the value of UpdatedAt.
func (s *Transaction) SetUpdatedAt(val time.Time) {
	s.UpdatedAt = val
}

// Ref: #/components/schemas/TransactionListResponse
type TransactionListResponse struct {
	Success bool            `json:"success"`
	Data    TransactionPage `json:"data"`
}

// GetSuccess returns the value of Success.
func (s *TransactionListResponse) GetSuccess() bool {
	return s.Success
}

// GetData returns the value of Data.
func (s *TransactionListResponse) GetData() TransactionPage {
	return s.Data
}

// SetSuccess sets the value of Success.
func (s *TransactionListResponse) SetSuccess(val bool) {
	s.Success = val
}

// SetData sets the value of Data.
func (s *TransactionListResponse) SetData(val TransactionPage) {
	s.Data = val
}

// Ref: #/components/schemas/TransactionPage
type TransactionPage struct {
	Transactions []Transaction `json:"transactions"`
	Total        int           `json:"total"`
	Limit        int           `json:"limit"`
	Offset       int           `json:"offset"`
}

// GetTransactions returns the value of Transactions.
func (s *TransactionPage) GetTransactions() []Transaction {
	return s.Transactions
}

// GetTotal returns the value of Total.
func (s *TransactionPage) GetTotal() int {
	return s.Total
}

// GetLimit returns the value of Limit.
func (s *TransactionPage) GetLimit() int {
	return s.Limit
}

// GetOffset returns the value of Offset.
func (s *TransactionPage) GetOffset() int {
	return s.Offset
}

// SetTransactions sets the value of Transactions.
func (s *TransactionPage) SetTransactions(val []Transaction) {
	s.Transactions = val
}

// SetTotal sets the value of Total.
func (s *TransactionPage) SetTotal(val int) {
	s.Total = val
}

// SetLimit sets the value of Limit.
func (s *TransactionPage) SetLimit(val int) {
	s.Limit = val
}

// SetOffset sets the value of Offset.
func (s *TransactionPage) SetOffset(val int) {
	s.Offset = val
}
