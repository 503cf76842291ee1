package bookingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const metricsTarget = "booking_api"

// Client клиент для работы с внешним booking/payment API
// Токен пользователя передается явно в каждый вызов: клиент не хранит
// глобальных мутируемых заголовков авторизации
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
	metrics    Metrics
}

// NewClient создает новый экземпляр клиента booking API
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:     log,
		metrics: nopMetrics{},
	}
}

// WithMetrics подключает коллектор метрик upstream-запросов
func (c *Client) WithMetrics(m Metrics) *Client {
	c.metrics = m
	return c
}

// GetCourtsWithAvailability получает все корты вместе с сетками доступности
func (c *Client) GetCourtsWithAvailability(ctx context.Context, token string) ([]CourtWithAvailability, error) {
	var courts []CourtWithAvailability
	err := c.doJSON(ctx, "get_courts_with_availability", http.MethodGet,
		"/courts/with-availability", token, nil, &courts)
	if err != nil {
		return nil, err
	}
	return courts, nil
}

// BulkInitiate инициирует batch бронирований одним запросом
// Одиночное бронирование - частный случай batch из одного элемента:
// оба сценария проходят через один и тот же путь
func (c *Client) BulkInitiate(ctx context.Context, token string, lines []CreateBookingRequest) (*BulkInitiateResponse, error) {
	var resp BulkInitiateResponse
	err := c.doJSON(ctx, "bulk_initiate", http.MethodPost, "/bookings/bulk", token, lines, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// VerifyPayment отправляет платежное подтверждение на финальную верификацию
func (c *Client) VerifyPayment(ctx context.Context, token string, req VerifyPaymentRequest) ([]Booking, error) {
	var bookings []Booking
	err := c.doJSON(ctx, "verify_payment", http.MethodPost, "/bookings/verify", token, req, &bookings)
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// GetMyBookings получает бронирования текущего пользователя
func (c *Client) GetMyBookings(ctx context.Context, token string) ([]Booking, error) {
	var bookings []Booking
	err := c.doJSON(ctx, "get_my_bookings", http.MethodGet, "/bookings/my", token, nil, &bookings)
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// CancelBooking отменяет бронирование по ID
func (c *Client) CancelBooking(ctx context.Context, token string, bookingID string) error {
	return c.doJSON(ctx, "cancel_booking", http.MethodDelete,
		fmt.Sprintf("/bookings/%s", bookingID), token, nil, nil)
}

// doJSON выполняет JSON запрос к booking API и классифицирует ответ
func (c *Client) doJSON(ctx context.Context, operation, method, path, token string, body, out interface{}) error {
	started := time.Now()

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to marshal request body: %v", ErrInternal, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Транспортный сбой: определенного ответа не было, запрос можно повторять
		c.metrics.ObserveUpstreamRequest(metricsTarget, operation, "transport_error", time.Since(started))
		c.log.Error("bookingapi: %s %s transport error: %v", method, path, err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if err := c.classifyStatus(operation, resp); err != nil {
		c.metrics.ObserveUpstreamRequest(metricsTarget, operation, fmt.Sprintf("http_%d", resp.StatusCode), time.Since(started))
		return err
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			c.metrics.ObserveUpstreamRequest(metricsTarget, operation, "decode_error", time.Since(started))
			return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
		}
	}

	c.metrics.ObserveUpstreamRequest(metricsTarget, operation, "ok", time.Since(started))
	return nil
}

// classifyStatus маппит статус-коды ответа на sentinel ошибки клиента
func (c *Client) classifyStatus(operation string, resp *http.Response) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return ErrBookingNotFound
	case resp.StatusCode == http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrSlotConflict, readErrorMessage(resp))
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		// Для верификации 4xx означает отказ по подписи/ордеру
		if operation == "verify_payment" {
			return fmt.Errorf("%w: %s", ErrVerificationRejected, readErrorMessage(resp))
		}
		return fmt.Errorf("%w: %s", ErrInvalidResponse, readErrorMessage(resp))
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	default:
		return fmt.Errorf("%w: unexpected status code %d", ErrInvalidResponse, resp.StatusCode)
	}
}

// readErrorMessage извлекает сообщение об ошибке из тела ответа
func readErrorMessage(resp *http.Response) string {
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil || len(body) == 0 {
		return fmt.Sprintf("status %d", resp.StatusCode)
	}

	var errResp ErrorResponse
	if json.Unmarshal(body, &errResp) == nil && errResp.Message != "" {
		return errResp.Message
	}
	return string(body)
}
