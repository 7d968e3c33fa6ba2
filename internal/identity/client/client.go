// Package client issues Identity Service commands on behalf of other services.
package client

import (
	"context"
	"time"

	"google.golang.org/grpc"

	identityv1 "workspace-hub/backend/api/identity/v1"
	apperrors "workspace-hub/backend/internal/platform/errors"
	"workspace-hub/backend/internal/platform/rpc"
)

// Client applies the command timeout to every call and converts failures into typed errors.
type Client struct {
	rpc     identityv1.IdentityServiceClient
	timeout time.Duration
}

// New returns a Client over cc. timeout <= 0 uses rpc.DefaultCommandTimeout.
func New(cc grpc.ClientConnInterface, timeout time.Duration) *Client {
	return &Client{rpc: identityv1.NewIdentityServiceClient(cc), timeout: timeout}
}

// LookupUserByEmail returns the user registered with email, or nil when none is.
func (c *Client) LookupUserByEmail(ctx context.Context, email string) (*identityv1.User, error) {
	ctx, cancel := rpc.WithCallTimeout(ctx, c.timeout)
	defer cancel()
	resp, err := c.rpc.LookupUserByEmail(ctx, &identityv1.LookupUserByEmailRequest{Email: email})
	if err != nil {
		return nil, apperrors.FromGRPC(err)
	}
	if !resp.Found {
		return nil, nil
	}
	return resp.User, nil
}

// LookupUserByID returns the user with id, or nil when none exists.
func (c *Client) LookupUserByID(ctx context.Context, id string) (*identityv1.User, error) {
	ctx, cancel := rpc.WithCallTimeout(ctx, c.timeout)
	defer cancel()
	resp, err := c.rpc.LookupUserByID(ctx, &identityv1.LookupUserByIDRequest{UserID: id})
	if err != nil {
		return nil, apperrors.FromGRPC(err)
	}
	if !resp.Found {
		return nil, nil
	}
	return resp.User, nil
}

func (c *Client) Register(ctx context.Context, email, password, name string) (*identityv1.User, error) {
	ctx, cancel := rpc.WithCallTimeout(ctx, c.timeout)
	defer cancel()
	resp, err := c.rpc.Register(ctx, &identityv1.RegisterRequest{Email: email, Password: password, Name: name})
	if err != nil {
		return nil, apperrors.FromGRPC(err)
	}
	return &resp.User, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*identityv1.LoginResponse, error) {
	ctx, cancel := rpc.WithCallTimeout(ctx, c.timeout)
	defer cancel()
	resp, err := c.rpc.Login(ctx, &identityv1.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, apperrors.FromGRPC(err)
	}
	return resp, nil
}
