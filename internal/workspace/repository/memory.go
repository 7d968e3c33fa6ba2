package repository

import (
	"context"
	"sort"
	"sync"

	invitationdomain "workspace-hub/backend/internal/invitation/domain"
	membershipdomain "workspace-hub/backend/internal/membership/domain"
	"workspace-hub/backend/internal/workspace/domain"
)

// MemoryRepository is an in-process Repository with the same constraint semantics as the Postgres
// store. A single mutex stands in for the transactions and unique indexes.
type MemoryRepository struct {
	mu          sync.Mutex
	workspaces  map[string]*domain.Workspace
	memberships map[string]*membershipdomain.Membership // by user id
	invitations map[string]*invitationdomain.Invitation // by id
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		workspaces:  make(map[string]*domain.Workspace),
		memberships: make(map[string]*membershipdomain.Membership),
		invitations: make(map[string]*invitationdomain.Invitation),
	}
}

func (r *MemoryRepository) GetWorkspace(_ context.Context, id string) (*domain.Workspace, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.workspaces[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *w
	return &cp, nil
}

func (r *MemoryRepository) CreateWorkspace(_ context.Context, w *domain.Workspace, owner *membershipdomain.Membership) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.workspaces {
		if existing.Slug == w.Slug {
			return ErrSlugTaken
		}
	}
	if _, ok := r.memberships[owner.UserID]; ok {
		return ErrMembershipExists
	}
	wc, mc := *w, *owner
	r.workspaces[w.ID] = &wc
	r.memberships[owner.UserID] = &mc
	return nil
}

func (r *MemoryRepository) GetMembershipByUser(_ context.Context, userID string) (*membershipdomain.Membership, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.memberships[userID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *MemoryRepository) ListMembershipsByUser(ctx context.Context, userID string) ([]*membershipdomain.Membership, error) {
	m, err := r.GetMembershipByUser(ctx, userID)
	if err == ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []*membershipdomain.Membership{m}, nil
}

func (r *MemoryRepository) GetInvitationByID(_ context.Context, id string) (*invitationdomain.Invitation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.invitations[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyInvitation(inv), nil
}

func (r *MemoryRepository) GetInvitationByToken(_ context.Context, token string) (*invitationdomain.Invitation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, inv := range r.invitations {
		if inv.Token == token {
			return copyInvitation(inv), nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryRepository) ListInvitationsByWorkspace(_ context.Context, workspaceID string) ([]*invitationdomain.Invitation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*invitationdomain.Invitation
	for _, inv := range r.invitations {
		if inv.WorkspaceID == workspaceID {
			out = append(out, copyInvitation(inv))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *MemoryRepository) CreateInvitation(_ context.Context, inv *invitationdomain.Invitation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.invitations {
		if existing.Token == inv.Token {
			return ErrTokenCollision
		}
		if existing.WorkspaceID != inv.WorkspaceID || existing.Email != inv.Email || existing.Status != invitationdomain.StatusPending {
			continue
		}
		if existing.IsExpired(inv.CreatedAt) {
			existing.Status = invitationdomain.StatusExpired
			continue
		}
		return ErrDuplicatePending
	}
	r.invitations[inv.ID] = copyInvitation(inv)
	return nil
}

func (r *MemoryRepository) AcceptInvitation(_ context.Context, invitationID string, m *membershipdomain.Membership) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.invitations[invitationID]
	if !ok {
		return ErrNotFound
	}
	if inv.Status != invitationdomain.StatusPending || inv.IsExpired(m.CreatedAt) {
		return ErrStaleTransition
	}
	if _, ok := r.memberships[m.UserID]; ok {
		return ErrMembershipExists
	}
	mc := *m
	r.memberships[m.UserID] = &mc
	at := m.CreatedAt
	inv.Status = invitationdomain.StatusAccepted
	inv.RespondedAt = &at
	return nil
}

func (r *MemoryRepository) TransitionInvitation(_ context.Context, invitationID string, t Transition) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.invitations[invitationID]
	if !ok || inv.Status != invitationdomain.StatusPending {
		return ErrStaleTransition
	}
	if !invitationdomain.CanTransition(inv.Status, t.To) {
		return ErrStaleTransition
	}
	at := t.At
	inv.Status = t.To
	switch {
	case t.CancelledByID != "":
		inv.CancelledAt = &at
		inv.CancelledByID = t.CancelledByID
	case t.To != invitationdomain.StatusExpired:
		inv.RespondedAt = &at
	}
	return nil
}

func copyInvitation(inv *invitationdomain.Invitation) *invitationdomain.Invitation {
	cp := *inv
	if inv.RespondedAt != nil {
		t := *inv.RespondedAt
		cp.RespondedAt = &t
	}
	if inv.CancelledAt != nil {
		t := *inv.CancelledAt
		cp.CancelledAt = &t
	}
	return &cp
}
