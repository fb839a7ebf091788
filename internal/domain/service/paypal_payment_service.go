package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"portafolio/pkg/logger"
)

// PaypalPaymentService talks to the PayPal Orders v2 REST API directly.
type PaypalPaymentService struct {
	clientID     string
	secret       string
	currency     string
	intent       string
	isProduction bool
	baseURL      string
	httpClient   *http.Client

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

func NewPaypalPaymentService(clientID, secret, currency, intent string, isProduction bool) *PaypalPaymentService {
	baseURL := "https://api-m.sandbox.paypal.com"
	if isProduction {
		baseURL = "https://api-m.paypal.com"
	}

	return &PaypalPaymentService{
		clientID:     clientID,
		secret:       secret,
		currency:     currency,
		intent:       intent,
		isProduction: isProduction,
		baseURL:      baseURL,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
	}
}

type paypalAmount struct {
	CurrencyCode string           `json:"currency_code"`
	Value        string           `json:"value"`
	Breakdown    *paypalBreakdown `json:"breakdown,omitempty"`
}

type paypalBreakdown struct {
	ItemTotal paypalMoney `json:"item_total"`
}

type paypalMoney struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

type paypalItem struct {
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	UnitAmount  paypalMoney `json:"unit_amount"`
	Quantity    string      `json:"quantity"`
}

type paypalPurchaseUnit struct {
	Description string       `json:"description,omitempty"`
	Amount      paypalAmount `json:"amount"`
	Items       []paypalItem `json:"items,omitempty"`
}

type paypalOrderRequest struct {
	Intent             string               `json:"intent"`
	PurchaseUnits      []paypalPurchaseUnit `json:"purchase_units"`
	ApplicationContext *paypalAppContext    `json:"application_context,omitempty"`
}

type paypalAppContext struct {
	ReturnURL string `json:"return_url,omitempty"`
	CancelURL string `json:"cancel_url,omitempty"`
}

type paypalOrderResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type paypalCaptureResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Payer  struct {
		Name struct {
			GivenName string `json:"given_name"`
			Surname   string `json:"surname"`
		} `json:"name"`
		EmailAddress string `json:"email_address"`
	} `json:"payer"`
	PurchaseUnits []struct {
		Payments struct {
			Captures []struct {
				ID     string      `json:"id"`
				Status string      `json:"status"`
				Amount paypalMoney `json:"amount"`
			} `json:"captures"`
		} `json:"payments"`
	} `json:"purchase_units"`
}

func (ps *PaypalPaymentService) CreateCheckoutSession(ctx context.Context, items []LineItem, total string, successURL, cancelURL string) (string, error) {
	logger.Info("Creating PayPal checkout session, total: %s %s, items: %d", total, ps.currency, len(items))

	paypalItems := make([]paypalItem, 0, len(items))
	for _, item := range items {
		paypalItems = append(paypalItems, paypalItem{
			Name:        item.Name,
			Description: item.Description,
			UnitAmount:  paypalMoney{CurrencyCode: ps.currency, Value: item.UnitAmount},
			Quantity:    strconv.Itoa(item.Quantity),
		})
	}

	req := paypalOrderRequest{
		Intent: ps.intent,
		PurchaseUnits: []paypalPurchaseUnit{{
			Amount: paypalAmount{
				CurrencyCode: ps.currency,
				Value:        total,
				Breakdown: &paypalBreakdown{
					ItemTotal: paypalMoney{CurrencyCode: ps.currency, Value: total},
				},
			},
			Items: paypalItems,
		}},
		ApplicationContext: &paypalAppContext{
			ReturnURL: successURL,
			CancelURL: cancelURL,
		},
	}

	var resp paypalOrderResponse
	if err := ps.post(ctx, "/v2/checkout/orders", req, &resp); err != nil {
		return "", fmt.Errorf("failed to create checkout session: %w", err)
	}

	logger.Info("PayPal checkout session created: %s (%s)", resp.ID, resp.Status)
	return resp.ID, nil
}

func (ps *PaypalPaymentService) CreateOrder(ctx context.Context, total string, description string) (string, error) {
	logger.Info("Creating PayPal order, total: %s %s", total, ps.currency)

	req := paypalOrderRequest{
		Intent: ps.intent,
		PurchaseUnits: []paypalPurchaseUnit{{
			Description: description,
			Amount: paypalAmount{
				CurrencyCode: ps.currency,
				Value:        total,
			},
		}},
	}

	var resp paypalOrderResponse
	if err := ps.post(ctx, "/v2/checkout/orders", req, &resp); err != nil {
		return "", fmt.Errorf("failed to create order: %w", err)
	}

	logger.Info("PayPal order created: %s (%s)", resp.ID, resp.Status)
	return resp.ID, nil
}

func (ps *PaypalPaymentService) CaptureOrder(ctx context.Context, orderID string) (*CaptureResult, error) {
	logger.Info("Capturing PayPal order: %s", orderID)

	var resp paypalCaptureResponse
	if err := ps.post(ctx, "/v2/checkout/orders/"+orderID+"/capture", struct{}{}, &resp); err != nil {
		return nil, fmt.Errorf("failed to capture order: %w", err)
	}

	if resp.Status != "COMPLETED" {
		return nil, fmt.Errorf("capture not completed, status: %s", resp.Status)
	}

	result := &CaptureResult{
		OrderID:    resp.ID,
		Status:     resp.Status,
		PayerName:  resp.Payer.Name.GivenName,
		PayerEmail: resp.Payer.EmailAddress,
	}
	if len(resp.PurchaseUnits) > 0 {
		captures := resp.PurchaseUnits[0].Payments.Captures
		if len(captures) > 0 {
			result.Amount = captures[0].Amount.Value
		}
	}

	logger.Info("PayPal capture completed: %s, payer: %s", result.OrderID, result.PayerEmail)
	return result, nil
}

func (ps *PaypalPaymentService) post(ctx context.Context, path string, payload interface{}, out interface{}) error {
	token, err := ps.token(ctx)
	if err != nil {
		return err
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %v", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, ps.baseURL+path, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %v", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+token)

	resp, err := ps.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %v", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Error("PayPal API error %d: %s", resp.StatusCode, string(body))
		return fmt.Errorf("provider returned status %d", resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %v", err)
	}

	return nil
}

type paypalTokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

func (ps *PaypalPaymentService) token(ctx context.Context) (string, error) {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	if ps.accessToken != "" && time.Now().Before(ps.tokenExpiry) {
		return ps.accessToken, nil
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, ps.baseURL+"/v1/oauth2/token",
		strings.NewReader("grant_type=client_credentials"))
	if err != nil {
		return "", fmt.Errorf("failed to create token request: %v", err)
	}

	authHeader := base64.StdEncoding.EncodeToString([]byte(ps.clientID + ":" + ps.secret))
	httpReq.Header.Set("Authorization", "Basic "+authHeader)
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := ps.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("token request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read token response: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token request returned status %d", resp.StatusCode)
	}

	var tokenResp paypalTokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return "", fmt.Errorf("failed to parse token response: %v", err)
	}

	ps.accessToken = tokenResp.AccessToken
	// Renew a minute early so in-flight calls never carry a stale token.
	ps.tokenExpiry = time.Now().Add(time.Duration(tokenResp.ExpiresIn-60) * time.Second)

	return ps.accessToken, nil
}
