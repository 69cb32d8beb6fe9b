// Package client is a typed wrapper around the smart-home HTTP API.
// Every operation is a single one-shot request/response exchange: no
// retries, no caching, no state shared between calls.
package client

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"smarthome-api/api"
)

type Client struct {
	http *resty.Client
}

// New builds a client for one base URL, e.g. "http://localhost:8080".
// Retries stay disabled: a caller that wants to retry does so above
// this layer.
func New(apiURL string) *Client {
	hc := resty.New().
		SetBaseURL(apiURL).
		SetTimeout(30 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{http: hc}
}

func (c *Client) GetHouse(ctx context.Context) (*api.House, error) {
	var out api.House
	if err := c.do(ctx, http.MethodGet, "/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListRooms(ctx context.Context) ([]api.Room, error) {
	var out []api.Room
	if err := c.do(ctx, http.MethodGet, "/rooms", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AddRoom(ctx context.Context, newRoom api.NewRoom) (*api.Room, error) {
	var out api.Room
	if err := c.do(ctx, http.MethodPost, "/rooms", newRoom, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetRoom(ctx context.Context, roomID string) (*api.Room, error) {
	var out api.Room
	if err := c.do(ctx, http.MethodGet, "/rooms/"+roomID, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateRoom(ctx context.Context, roomID string, newRoom api.NewRoom) (*api.Room, error) {
	var out api.Room
	if err := c.do(ctx, http.MethodPatch, "/rooms/"+roomID, newRoom, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteRoom(ctx context.Context, roomID string) error {
	return c.do(ctx, http.MethodDelete, "/rooms/"+roomID, nil, nil)
}

func (c *Client) ListDevices(ctx context.Context, roomID string) ([]api.Device, error) {
	var out []api.Device
	if err := c.do(ctx, http.MethodGet, "/rooms/"+roomID+"/devices", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AddDevice(ctx context.Context, roomID string, newDevice api.NewDevice) (*api.Device, error) {
	var out api.Device
	if err := c.do(ctx, http.MethodPost, "/rooms/"+roomID+"/devices", newDevice, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetDevice(ctx context.Context, roomID, deviceID string) (*api.Device, error) {
	var out api.Device
	if err := c.do(ctx, http.MethodGet, "/rooms/"+roomID+"/devices/"+deviceID, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateDevice(ctx context.Context, roomID, deviceID string, newDevice api.NewDevice) (*api.Device, error) {
	var out api.Device
	if err := c.do(ctx, http.MethodPatch, "/rooms/"+roomID+"/devices/"+deviceID, newDevice, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteDevice(ctx context.Context, roomID, deviceID string) error {
	return c.do(ctx, http.MethodDelete, "/rooms/"+roomID+"/devices/"+deviceID, nil, nil)
}

func (c *Client) GetReport(ctx context.Context) (*api.Report, error) {
	var out api.Report
	if err := c.do(ctx, http.MethodGet, "/report", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	req := c.http.R().SetContext(ctx)
	if payload != nil {
		req.SetBody(payload)
	}
	resp, err := req.Execute(method, path)
	if err != nil {
		return &Error{Kind: KindTransport, cause: err}
	}
	return interpret(resp, out)
}

// interpret is the whole client-side protocol: one case per status the
// client understands, one fallback. Bodies are decoded manually so the
// status decides the shape, never the other way around.
func interpret(resp *resty.Response, out any) error {
	switch resp.StatusCode() {
	case http.StatusOK, http.StatusCreated:
		if out == nil {
			return nil
		}
		if err := json.Unmarshal(resp.Body(), out); err != nil {
			return &Error{Kind: KindMalformed, cause: err}
		}
		return nil

	case http.StatusNoContent:
		return nil

	case http.StatusNotFound:
		return &Error{Kind: KindNotFound}

	case http.StatusInternalServerError:
		var body api.Error
		if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Error != "" {
			return &Error{Kind: KindServer, Message: body.Error}
		}
		return &Error{Kind: KindServer}

	default:
		return &Error{Kind: KindUnexpectedStatus, Status: resp.StatusCode()}
	}
}
