package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"lasercraft/internal/domain/entities"
	"lasercraft/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidOrderID             = errors.New("invalid order id")
	ErrOrderNotFound              = errors.New("order not found")
	ErrInvalidPaymentMethod       = errors.New("invalid payment method")
	ErrWrongPaymentChannel        = errors.New("order is not paid through the gateway")
	ErrOrderNotPayable            = errors.New("order is not payable")
	ErrInvalidPaymentPayload      = errors.New("invalid payment payload")
	ErrInvalidNotification        = errors.New("invalid gateway notification")
	ErrPaymentIdentityConflict    = errors.New("conflicting external payment id for order")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

// InvalidTransitionError reports a fulfillment call whose precondition did not
// hold (e.g. shipping an order that is not PAID). It signals a caller/ordering
// bug and is surfaced, never swallowed.
type InvalidTransitionError struct {
	From entities.OrderStatus
	To   entities.OrderStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid order transition %s -> %s", e.From, e.To)
}

// IOrderUseCase owns the order lifecycle.
//
// Payment confirmations arrive from two channels (gateway webhook, manual
// transfer verification); both funnel into ApplyPaymentOutcome, which is the
// only writer of PENDING -> PAID/CANCELLED. Fulfillment transitions come from
// the shipping collaborator.

type IOrderUseCase interface {
	CreateFromCutRequest(ctx context.Context, req entities.CutRequest, method entities.PaymentMethod) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	CreateGatewayPayment(ctx context.Context, orderID string, payload json.RawMessage) (entities.GatewayPayment, error)
	ApplyPaymentOutcome(ctx context.Context, orderID string, outcome entities.PaymentOutcome, source entities.PaymentMethod, externalPaymentID string) (entities.Order, error)
	HandleGatewayNotification(ctx context.Context, orderID, providerPaymentID, providerStatus string) (entities.Order, error)
	ConfirmTransfer(ctx context.Context, orderID string, approved bool) (entities.Order, error)
	MarkShipped(ctx context.Context, orderID string) (entities.Order, error)
	MarkCompleted(ctx context.Context, orderID string) (entities.Order, error)
}

type OrderUseCase struct {
	orders  interfaces.IOrderRepository
	catalog interfaces.IMaterialCatalogRepository
	quotes  IQuoteUseCase
	gateway interfaces.IPaymentGateway
	locks   *orderLocks
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(orders interfaces.IOrderRepository, catalog interfaces.IMaterialCatalogRepository, quotes IQuoteUseCase, gateway interfaces.IPaymentGateway) *OrderUseCase {
	return &OrderUseCase{orders: orders, catalog: catalog, quotes: quotes, gateway: gateway, locks: newOrderLocks()}
}

func (u *OrderUseCase) CreateFromCutRequest(ctx context.Context, req entities.CutRequest, method entities.PaymentMethod) (entities.Order, error) {
	method = entities.PaymentMethod(strings.ToUpper(strings.TrimSpace(string(method))))
	if method != entities.PaymentMethodGateway && method != entities.PaymentMethodTransfer {
		return entities.Order{}, ErrInvalidPaymentMethod
	}
	if u.quotes == nil {
		return entities.Order{}, errors.New("quote usecase not configured")
	}

	q, err := u.quotes.RequestQuote(ctx, req)
	if err != nil {
		return entities.Order{}, err
	}

	now := time.Now().UTC()
	o := entities.Order{
		ID:             uuid.NewString(),
		Status:         entities.OrderStatusPending,
		PaymentMethod:  method,
		Amount:         q.Total,
		MaterialTypeID: q.Request.MaterialTypeID,
		Quantity:       q.Request.Quantity,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	created, err := u.orders.Create(ctx, o)
	if err != nil {
		return entities.Order{}, err
	}
	log.Printf("[order][usecase] created order_id=%s method=%s amount=%.2f", created.ID, created.PaymentMethod, created.Amount)
	return created, nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

// ApplyPaymentOutcome advances a PENDING order on a normalized payment
// outcome. Deliveries are at-least-once and may race across channels, so the
// call serializes per order and re-applying an already-applied outcome is a
// benign no-op, not an error. The one exception is a SUCCEEDED claim carrying
// a different external payment id than the one recorded: that is reported as
// ErrPaymentIdentityConflict for an operator to look at.
func (u *OrderUseCase) ApplyPaymentOutcome(ctx context.Context, orderID string, outcome entities.PaymentOutcome, source entities.PaymentMethod, externalPaymentID string) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	externalPaymentID = strings.TrimSpace(externalPaymentID)

	m := u.locks.acquire(orderID)
	defer m.Unlock()

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}

	switch outcome {
	case entities.PaymentOutcomeSucceeded:
		return u.applySucceeded(ctx, order, source, externalPaymentID)
	case entities.PaymentOutcomeFailed:
		return u.applyFailed(ctx, order)
	default:
		// PENDING absorbs provider retries/acknowledgements without effect.
		log.Printf("[order][usecase] outcome pending, no change order_id=%s source=%s", order.ID, source)
		return order, nil
	}
}

func (u *OrderUseCase) applySucceeded(ctx context.Context, order entities.Order, source entities.PaymentMethod, externalPaymentID string) (entities.Order, error) {
	if order.Status != entities.OrderStatusPending {
		return u.reconcileSucceeded(order, source, externalPaymentID)
	}

	recordID := ""
	if source == entities.PaymentMethodGateway {
		recordID = externalPaymentID
	}
	updated, err := u.orders.UpdateStatus(ctx, order.ID, entities.OrderStatusPending, entities.OrderStatusPaid, recordID)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		// Lost the conditional write to a writer in another process.
		cur, err := u.orders.GetByID(ctx, order.ID)
		if err != nil {
			return entities.Order{}, err
		}
		if cur.ID == "" {
			return entities.Order{}, ErrOrderNotFound
		}
		return u.reconcileSucceeded(cur, source, externalPaymentID)
	}

	log.Printf("[order][usecase] paid order_id=%s source=%s external_payment_id=%s", updated.ID, source, updated.ExternalPaymentID)
	u.decrementStock(ctx, updated)
	return updated, nil
}

// reconcileSucceeded handles a SUCCEEDED delivery for an order that already
// left PENDING: a duplicate webhook, an operator double-confirmation, or the
// second channel arriving late. Only a mismatched recorded payment identity
// is an error.
func (u *OrderUseCase) reconcileSucceeded(order entities.Order, source entities.PaymentMethod, externalPaymentID string) (entities.Order, error) {
	if order.ExternalPaymentID != "" && externalPaymentID != "" && order.ExternalPaymentID != externalPaymentID {
		log.Printf("[order][usecase] payment identity conflict order_id=%s recorded=%s delivered=%s source=%s",
			order.ID, order.ExternalPaymentID, externalPaymentID, source)
		return order, ErrPaymentIdentityConflict
	}
	log.Printf("[order][usecase] duplicate success delivery ignored order_id=%s status=%s source=%s", order.ID, order.Status, source)
	return order, nil
}

func (u *OrderUseCase) applyFailed(ctx context.Context, order entities.Order) (entities.Order, error) {
	if order.Status != entities.OrderStatusPending {
		log.Printf("[order][usecase] failure delivery ignored order_id=%s status=%s", order.ID, order.Status)
		return order, nil
	}

	updated, err := u.orders.UpdateStatus(ctx, order.ID, entities.OrderStatusPending, entities.OrderStatusCancelled, "")
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		cur, err := u.orders.GetByID(ctx, order.ID)
		if err != nil {
			return entities.Order{}, err
		}
		if cur.ID == "" {
			return entities.Order{}, ErrOrderNotFound
		}
		log.Printf("[order][usecase] failure delivery lost race order_id=%s status=%s", cur.ID, cur.Status)
		return cur, nil
	}
	log.Printf("[order][usecase] cancelled order_id=%s", updated.ID)
	return updated, nil
}

// decrementStock consumes material once per paid order. The update is
// conditional on enough stock remaining; if the catalog raced to zero the
// order stays paid and the shortage is left for an operator.
func (u *OrderUseCase) decrementStock(ctx context.Context, order entities.Order) {
	if u.catalog == nil || order.MaterialTypeID == "" || order.Quantity <= 0 {
		return
	}
	if err := u.catalog.DecrementStock(ctx, order.MaterialTypeID, order.Quantity); err != nil {
		log.Printf("[order][usecase] stock decrement failed order_id=%s material_type_id=%s qty=%d err=%v",
			order.ID, order.MaterialTypeID, order.Quantity, err)
	}
}

// HandleGatewayNotification is the webhook entry point. Mercado Pago delivers
// at-least-once and sometimes only a payment id; missing fields are resolved
// through the gateway before the outcome is applied.
func (u *OrderUseCase) HandleGatewayNotification(ctx context.Context, orderID, providerPaymentID, providerStatus string) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	providerPaymentID = strings.TrimSpace(providerPaymentID)
	providerStatus = strings.TrimSpace(providerStatus)

	if providerPaymentID == "" && providerStatus == "" {
		return entities.Order{}, ErrInvalidNotification
	}
	if u.gateway == nil {
		return entities.Order{}, errors.New("payment gateway not configured")
	}

	if (providerStatus == "" || orderID == "") && providerPaymentID != "" {
		st, ref, err := u.gateway.GetPayment(ctx, providerPaymentID)
		if err != nil {
			log.Printf("[order][usecase] payment lookup failed provider_payment_id=%s err=%v", providerPaymentID, err)
			return entities.Order{}, classifyGatewayError(err)
		}
		if providerStatus == "" {
			providerStatus = strings.TrimSpace(st)
		}
		if orderID == "" {
			orderID = strings.TrimSpace(ref)
		}
	}
	if orderID == "" {
		return entities.Order{}, ErrInvalidNotification
	}

	outcome := u.gateway.Normalize(providerStatus)
	log.Printf("[order][usecase] gateway notification order_id=%s provider_payment_id=%s provider_status=%s outcome=%s",
		orderID, providerPaymentID, providerStatus, outcome)
	return u.ApplyPaymentOutcome(ctx, orderID, outcome, entities.PaymentMethodGateway, providerPaymentID)
}

// ConfirmTransfer applies the operator's verdict on a manually verified bank
// transfer. The verification itself happens outside this service; here it is
// just a synthetic SUCCEEDED/FAILED through the same transition path.
func (u *OrderUseCase) ConfirmTransfer(ctx context.Context, orderID string, approved bool) (entities.Order, error) {
	outcome := entities.PaymentOutcomeFailed
	if approved {
		outcome = entities.PaymentOutcomeSucceeded
	}
	log.Printf("[order][usecase] transfer confirmation order_id=%s approved=%t", strings.TrimSpace(orderID), approved)
	return u.ApplyPaymentOutcome(ctx, orderID, outcome, entities.PaymentMethodTransfer, "")
}

func (u *OrderUseCase) MarkShipped(ctx context.Context, orderID string) (entities.Order, error) {
	return u.advance(ctx, orderID, entities.OrderStatusPaid, entities.OrderStatusShipped)
}

func (u *OrderUseCase) MarkCompleted(ctx context.Context, orderID string) (entities.Order, error) {
	return u.advance(ctx, orderID, entities.OrderStatusShipped, entities.OrderStatusCompleted)
}

func (u *OrderUseCase) advance(ctx context.Context, orderID string, from, to entities.OrderStatus) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	m := u.locks.acquire(orderID)
	defer m.Unlock()

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	if order.Status != from {
		return entities.Order{}, &InvalidTransitionError{From: order.Status, To: to}
	}

	updated, err := u.orders.UpdateStatus(ctx, orderID, from, to, "")
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		cur, err := u.orders.GetByID(ctx, orderID)
		if err != nil {
			return entities.Order{}, err
		}
		return entities.Order{}, &InvalidTransitionError{From: cur.Status, To: to}
	}
	log.Printf("[order][usecase] %s order_id=%s", strings.ToLower(string(to)), updated.ID)
	return updated, nil
}

// CreateGatewayPayment creates a provider payment for a PENDING gateway-paid
// order and applies the resulting outcome. The order amount from the database
// is the source of truth for the charged value, whatever the caller sent.
func (u *OrderUseCase) CreateGatewayPayment(ctx context.Context, orderID string, payload json.RawMessage) (entities.GatewayPayment, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.GatewayPayment{}, ErrInvalidOrderID
	}
	if u.gateway == nil {
		return entities.GatewayPayment{}, errors.New("payment gateway not configured")
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.GatewayPayment{}, err
	}
	if order.ID == "" {
		return entities.GatewayPayment{}, ErrOrderNotFound
	}
	if order.PaymentMethod != entities.PaymentMethodGateway {
		return entities.GatewayPayment{}, ErrWrongPaymentChannel
	}
	if order.Status != entities.OrderStatusPending {
		return entities.GatewayPayment{}, ErrOrderNotPayable
	}

	payload, err = enrichPaymentPayload(payload, order)
	if err != nil {
		return entities.GatewayPayment{}, err
	}

	log.Printf("[order][usecase] calling payment gateway order_id=%s payload_len=%d", order.ID, len(payload))
	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[order][usecase] payment gateway failed order_id=%s err=%v", order.ID, err)
		return entities.GatewayPayment{}, classifyGatewayError(err)
	}

	outcome := u.gateway.Normalize(providerStatus)
	if _, err := u.ApplyPaymentOutcome(ctx, order.ID, outcome, entities.PaymentMethodGateway, providerPaymentID); err != nil {
		return entities.GatewayPayment{}, err
	}

	return entities.GatewayPayment{
		ProviderPaymentID:  providerPaymentID,
		OrderID:            order.ID,
		ProviderStatus:     providerStatus,
		Outcome:            outcome,
		Date:               time.Now().UTC(),
		ProviderPayloadRaw: providerResp,
	}, nil
}

// enrichPaymentPayload stamps linkage and the authoritative amount onto the
// caller-supplied Mercado Pago payload. external_reference carries the order
// id so webhook events can be reconciled back to the order.
func enrichPaymentPayload(payload json.RawMessage, order entities.Order) (json.RawMessage, error) {
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	if !json.Valid(payload) {
		return nil, ErrInvalidPaymentPayload
	}

	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err != nil {
		return nil, ErrInvalidPaymentPayload
	}
	if reqMap == nil {
		reqMap = map[string]any{}
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = order.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Laser cut order %s", order.ID)
	}
	reqMap["transaction_amount"] = order.Amount

	return json.Marshal(reqMap)
}

func classifyGatewayError(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	default:
		return err
	}
}
