// Package couponsvc is the HTTP client for the remote coupon-validation
// service. The service computes the authoritative discount amount for an
// order; this client only transports and decodes.
package couponsvc

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"math"
	"net/http"

	"event-booking/internal/domain/coupon"
	"event-booking/internal/pkg/config"
	"event-booking/internal/pkg/errs"
	"event-booking/internal/usecase/commands"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg config.CouponServiceConfig) commands.CouponValidator {
	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// The wire format uses currency units (e.g. 12.34), not cents.
type validateRequest struct {
	Code        string   `json:"code"`
	OrderAmount float64  `json:"orderAmount"`
	EventIDs    []string `json:"eventIds"`
	UserID      string   `json:"userId,omitempty"`
}

type validateResponse struct {
	Success bool `json:"success"`
	Data    struct {
		IsValid        bool    `json:"isValid"`
		DiscountAmount float64 `json:"discountAmount"`
		Coupon         struct {
			Code        string  `json:"code"`
			Name        string  `json:"name"`
			Description string  `json:"description"`
			Type        string  `json:"type"`
			Value       float64 `json:"value"`
		} `json:"coupon"`
	} `json:"data"`
}

type errorResponse struct {
	Message string `json:"message"`
	Error   struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) Validate(ctx context.Context, req commands.CouponValidationRequest) (*commands.CouponValidationResult, error) {
	eventIDs := make([]string, len(req.EventIDs))
	for i, id := range req.EventIDs {
		eventIDs[i] = id.String()
	}

	wireReq := validateRequest{
		Code:        req.Code,
		OrderAmount: float64(req.OrderAmountCents) / 100.0,
		EventIDs:    eventIDs,
	}
	if req.UserID != nil {
		wireReq.UserID = req.UserID.String()
	}

	body, err := json.Marshal(wireReq)
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode coupon validation request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/coupons/validate", bytes.NewReader(body))
	if err != nil {
		return nil, errs.Wrap(err, "failed to build coupon validation request")
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrCouponServiceFailure)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrCouponServiceFailure)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Failures carry a human-readable message, not a structured code;
		// it is surfaced as-is for the substring classification upstream.
		return nil, errs.Mark(errs.New(backendMessage(respBody, resp.Status)), errs.ErrCouponRejected)
	}

	var wireResp validateResponse
	if err := json.Unmarshal(respBody, &wireResp); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to decode coupon validation response"), errs.ErrCouponServiceFailure)
	}

	if !wireResp.Success || !wireResp.Data.IsValid {
		return &commands.CouponValidationResult{IsValid: false}, nil
	}

	return &commands.CouponValidationResult{
		IsValid: true,
		Coupon: coupon.Applied{
			Code:          wireResp.Data.Coupon.Code,
			Name:          wireResp.Data.Coupon.Name,
			Description:   wireResp.Data.Coupon.Description,
			Type:          coupon.DiscountType(wireResp.Data.Coupon.Type),
			Value:         wireResp.Data.Coupon.Value,
			DiscountCents: int64(math.Round(wireResp.Data.DiscountAmount * 100)),
		},
	}, nil
}

func backendMessage(body []byte, status string) string {
	var errResp errorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		if errResp.Message != "" {
			return errResp.Message
		}
		if errResp.Error.Message != "" {
			return errResp.Error.Message
		}
	}
	return status
}
