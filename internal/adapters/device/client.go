package device

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/B-1P/ledtomato/internal/domain"
)

const (
	statusPath = "/api/status"
	configPath = "/api/pomodoro/config"
	startPath  = "/api/pomodoro/start"
	stopPath   = "/api/pomodoro/stop"

	maxResponseBytes = 1 << 16

	DefaultRequestTimeout = 10 * time.Second
	DefaultPingTimeout    = 5 * time.Second
	DefaultProbeTimeout   = 2 * time.Second
)

// Client talks to one device over its REST API. Every failure wraps
// domain.ErrDeviceUnavailable.
type Client struct {
	Addr           domain.DeviceAddress
	HTTPClient     *http.Client
	RequestTimeout time.Duration
	PingTimeout    time.Duration
}

type statusResponse struct {
	WiFiConnected bool   `json:"wifiConnected"`
	IPAddress     string `json:"ipAddress"`
	Hostname      string `json:"hostname"`
	Pomodoro      struct {
		State     int  `json:"state"`
		Running   bool `json:"running"`
		Remaining int  `json:"remaining"`
		Elapsed   int  `json:"elapsed"`
		Duration  int  `json:"duration"`
	} `json:"pomodoro"`
}

type configResponse struct {
	WorkTime       int    `json:"workTime"`
	ShortBreakTime int    `json:"shortBreakTime"`
	LongBreakTime  int    `json:"longBreakTime"`
	WorkColor      string `json:"workColor"`
	BreakColor     string `json:"breakColor"`
	WorkAnimation  bool   `json:"workAnimation"`
	BreakAnimation bool   `json:"breakAnimation"`
	Brightness     int    `json:"brightness"`
}

type actionResponse struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
}

func (c *Client) Address() domain.DeviceAddress {
	return c.Addr
}

func (c *Client) Ping(ctx context.Context) error {
	timeout := c.PingTimeout
	if timeout <= 0 {
		timeout = DefaultPingTimeout
	}

	var payload statusResponse
	return c.do(ctx, timeout, http.MethodGet, statusPath, nil, &payload)
}

func (c *Client) GetStatus(ctx context.Context) (domain.DeviceStatus, error) {
	var payload statusResponse
	if err := c.do(ctx, c.requestTimeout(), http.MethodGet, statusPath, nil, &payload); err != nil {
		return domain.DeviceStatus{}, err
	}

	tag := domain.TimerTag(payload.Pomodoro.State)
	if !tag.Valid() {
		return domain.DeviceStatus{}, fmt.Errorf("%w: unknown timer state %d", domain.ErrDeviceUnavailable, payload.Pomodoro.State)
	}

	return domain.DeviceStatus{
		Hostname:      payload.Hostname,
		IPAddress:     payload.IPAddress,
		WiFiConnected: payload.WiFiConnected,
		Timer: domain.TimerState{
			Tag:       tag,
			Running:   payload.Pomodoro.Running,
			Elapsed:   payload.Pomodoro.Elapsed,
			Remaining: payload.Pomodoro.Remaining,
			Duration:  payload.Pomodoro.Duration,
		},
	}, nil
}

func (c *Client) GetConfig(ctx context.Context) (domain.DeviceConfig, error) {
	var payload configResponse
	if err := c.do(ctx, c.requestTimeout(), http.MethodGet, configPath, nil, &payload); err != nil {
		return domain.DeviceConfig{}, err
	}

	workColor, err := domain.ParseColor(payload.WorkColor)
	if err != nil {
		return domain.DeviceConfig{}, fmt.Errorf("%w: %w", domain.ErrDeviceUnavailable, err)
	}
	breakColor, err := domain.ParseColor(payload.BreakColor)
	if err != nil {
		return domain.DeviceConfig{}, fmt.Errorf("%w: %w", domain.ErrDeviceUnavailable, err)
	}

	return domain.DeviceConfig{
		WorkTime:       payload.WorkTime,
		ShortBreakTime: payload.ShortBreakTime,
		LongBreakTime:  payload.LongBreakTime,
		WorkColor:      workColor,
		BreakColor:     breakColor,
		WorkAnimation:  payload.WorkAnimation,
		BreakAnimation: payload.BreakAnimation,
		Brightness:     payload.Brightness,
	}, nil
}

// UpdateConfig always sends the complete object.
func (c *Client) UpdateConfig(ctx context.Context, cfg domain.DeviceConfig) error {
	form := url.Values{}
	form.Set("workTime", strconv.Itoa(cfg.WorkTime))
	form.Set("shortBreakTime", strconv.Itoa(cfg.ShortBreakTime))
	form.Set("longBreakTime", strconv.Itoa(cfg.LongBreakTime))
	form.Set("workColor", cfg.WorkColor.Hex())
	form.Set("breakColor", cfg.BreakColor.Hex())
	form.Set("workAnimation", strconv.FormatBool(cfg.WorkAnimation))
	form.Set("breakAnimation", strconv.FormatBool(cfg.BreakAnimation))
	form.Set("brightness", strconv.Itoa(cfg.Brightness))

	return c.action(ctx, configPath, form)
}

func (c *Client) StartTimer(ctx context.Context, kind domain.SessionKind) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidSessionKind, kind)
	}

	form := url.Values{}
	form.Set("type", string(kind))
	return c.action(ctx, startPath, form)
}

func (c *Client) StopTimer(ctx context.Context) error {
	return c.action(ctx, stopPath, url.Values{})
}

func (c *Client) action(ctx context.Context, path string, form url.Values) error {
	var payload actionResponse
	if err := c.do(ctx, c.requestTimeout(), http.MethodPost, path, form, &payload); err != nil {
		return err
	}
	if payload.Success != nil && !*payload.Success {
		return fmt.Errorf("%w: POST %s rejected: %s", domain.ErrDeviceUnavailable, path, payload.Message)
	}
	return nil
}

func (c *Client) do(ctx context.Context, timeout time.Duration, method, path string, form url.Values, out any) error {
	requestCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(requestCtx, method, c.Addr.BaseURL()+path, body)
	if err != nil {
		return fmt.Errorf("%w: create %s %s request: %w", domain.ErrDeviceUnavailable, method, path, err)
	}
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", domain.ErrDeviceUnavailable, method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: %s %s: status %d", domain.ErrDeviceUnavailable, method, path, resp.StatusCode)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); err != nil {
		if errors.Is(err, io.EOF) && method == http.MethodPost {
			return nil
		}
		return fmt.Errorf("%w: decode %s response: %w", domain.ErrDeviceUnavailable, path, err)
	}

	return nil
}

func (c *Client) requestTimeout() time.Duration {
	if c.RequestTimeout > 0 {
		return c.RequestTimeout
	}
	return DefaultRequestTimeout
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}
