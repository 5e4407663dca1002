// Package cdp is the Command Layer and top-level facade for the CDP
// client runtime: it composes the Config & Context, Process Registry,
// WebSocket Transport, Command Bus, Async Worker and Event Router
// components into a single Client a host program drives.
package cdp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/tgraves/cdpctl/internal/bus"
	"github.com/tgraves/cdpctl/internal/cdpconfig"
	"github.com/tgraves/cdpctl/internal/cdperr"
	"github.com/tgraves/cdpctl/internal/cdplog"
	"github.com/tgraves/cdpctl/internal/events"
	"github.com/tgraves/cdpctl/internal/registry"
	"github.com/tgraves/cdpctl/internal/worker"
	"github.com/tgraves/cdpctl/internal/wsconn"
)

// Client is the single entry point a host program uses to launch or
// attach to a browser, issue commands, and subscribe to events.
type Client struct {
	Config cdpconfig.Config
	Log    cdplog.Logger
	Hooks  cdpconfig.Hooks

	runtime *cdpconfig.RuntimeState
	conn    *cdpconfig.ConnectionState

	registry *registry.Registry
	instance *registry.Instance

	transport *wsconn.Conn
	bus       *bus.Bus
	router    *events.Router
	work      *worker.Worker

	workerCtx    context.Context
	workerCancel context.CancelFunc
}

// New constructs a Client from cfg, validating it first.
func New(cfg cdpconfig.Config, log cdplog.Logger) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, cdperr.New(cdperr.InvalidArgs, err)
	}
	if log == nil {
		log = cdplog.Discard()
	}
	return &Client{
		Config:  cfg,
		Log:     log,
		runtime: &cdpconfig.RuntimeState{},
		conn:    cdpconfig.NewConnectionState(cfg.MaxRetries),
		router:  events.New(),
	}, nil
}

// Launch starts a new local browser process per c.Config and connects to
// its first page target.
func (c *Client) Launch(ctx context.Context) error {
	c.registry = registry.New(c.Config.MaxInstances, c.Log)
	inst, err := c.registry.Launch(ctx, c.Config)
	if err != nil {
		return err
	}
	c.instance = inst
	c.Config.Port = inst.DebugPort
	return c.Attach(ctx)
}

// Attach connects to an already-running browser's debug port without
// launching a new process.
func (c *Client) Attach(ctx context.Context) error {
	targets, err := wsconn.ListTargets(ctx, c.Config.Host, c.Config.Port)
	if err != nil {
		return cdperr.New(cdperr.Connect, err)
	}
	var target wsconn.TargetInfo
	found := false
	for _, t := range targets {
		if t.IsPage() {
			target, found = t, true
			break
		}
	}
	if !found {
		target, err = wsconn.NewTarget(ctx, c.Config.Host, c.Config.Port, "")
		if err != nil {
			return cdperr.New(cdperr.Connect, err)
		}
	}
	return c.connectTo(ctx, target)
}

func (c *Client) connectTo(ctx context.Context, target wsconn.TargetInfo) error {
	addr := fmt.Sprintf("%s:%d", c.Config.Host, c.Config.Port)
	conn, err := wsconn.Dial(ctx, addr, wsconn.DevToolsPath(target.WebSocketDebuggerURL), wsconn.Options{
		DialTimeout: c.Config.ConnectTimeout,
		Log:         c.Log,
	})
	if err != nil {
		return cdperr.New(cdperr.Handshake, err)
	}
	c.transport = conn
	c.bus = bus.New(c.Config.MaxConnections, c.Log)
	c.conn.MarkConnected(target.ID)
	c.Hooks.FireConnect()

	c.work = worker.New(conn, c.bus, c.router, c.Log)
	c.workerCtx, c.workerCancel = context.WithCancel(context.Background())
	go c.work.Run(c.workerCtx)

	if target.IsPage() {
		if _, err := c.Call(ctx, "Runtime.enable", nil, c.Config.CommandTimeout); err == nil {
			c.runtime.SetRuntimeReady(true)
		}
		if c.Config.EnableDOM {
			_, _ = c.Call(ctx, "DOM.enable", nil, c.Config.CommandTimeout)
		}
		if c.Config.EnableNetwork {
			_, _ = c.Call(ctx, "Network.enable", nil, c.Config.CommandTimeout)
		}
		if c.Config.EnableConsole {
			_, _ = c.Call(ctx, "Console.enable", nil, c.Config.CommandTimeout)
		}
		if c.Config.InitScript != "" {
			params := struct {
				Source string `json:"source"`
			}{Source: c.Config.InitScript}
			_, _ = c.Call(ctx, "Page.addScriptToEvaluateOnNewDocument", params, c.Config.CommandTimeout)
		}
	}
	return nil
}

// Call submits a single CDP command and blocks until it completes, fails,
// or times out. This is the low-level primitive every generated domain
// command's Do method calls through the Caller interface.
func (c *Client) Call(ctx context.Context, method string, params any, timeout time.Duration) (json.RawMessage, error) {
	if c.bus == nil {
		return nil, cdperr.New(cdperr.Connect, fmt.Errorf("client is not connected"))
	}
	if timeout <= 0 {
		timeout = c.Config.CommandTimeout
	}

	var raw json.RawMessage
	if params != nil {
		b, err := json.Marshal(params)
		if err != nil {
			return nil, cdperr.New(cdperr.InvalidArgs, err)
		}
		raw = b
	}

	id := c.runtime.NextCorrelationID()
	type result struct {
		resp *bus.Message
		err  error
	}
	done := make(chan result, 1)

	req, err := c.bus.Submit(id, method, raw, timeout, func(resp *bus.Message, err error) {
		done <- result{resp, err}
	})
	if err != nil {
		return nil, err
	}
	_ = req // the worker marshals and sends it; see bus.PendingRequests

	if c.work != nil {
		c.work.Wake()
	}

	select {
	case r := <-done:
		if r.err != nil {
			return nil, cdperr.NewWithID(cdperr.Protocol, id, r.err)
		}
		c.conn.Touch()
		return r.resp.Result, nil
	case <-ctx.Done():
		return nil, cdperr.NewWithID(cdperr.Timeout, id, ctx.Err())
	}
}

// Subscribe registers handler for every event named method.
func (c *Client) Subscribe(method string, handler func(*bus.Message)) int64 {
	return c.router.Subscribe(method, handler)
}

// Unsubscribe removes a previously registered handler.
func (c *Client) Unsubscribe(method string, id int64) {
	c.router.Unsubscribe(method, id)
}

// Close disconnects the transport, stops the worker, and (if this Client
// launched its own browser process) kills that process.
func (c *Client) Close(ctx context.Context) error {
	if c.work != nil {
		c.work.Stop()
	}
	if c.workerCancel != nil {
		c.workerCancel()
	}
	if c.bus != nil {
		c.bus.FailAll(cdperr.New(cdperr.Connect, fmt.Errorf("client closed")))
	}
	if c.transport != nil {
		c.transport.Close(1000, nil)
	}
	c.conn.MarkDisconnected()
	c.Hooks.FireDisconnect()

	if c.instance != nil && c.registry != nil {
		return c.registry.Kill(ctx, c.instance.InstanceID, 3*time.Second)
	}
	return nil
}
