// Package access implements the authorization decision engine for files.
//
// Two paths exist to a file: an authenticated account (ownership or a share
// grant) and a bearer share link. The engine is the single place where those
// rules live; handlers never reimplement them.
package access

import (
	"context"
	"time"

	"github.com/shareguard/shareguard/internal/logger"
	"github.com/shareguard/shareguard/internal/telemetry"
	"github.com/shareguard/shareguard/pkg/models"
	"github.com/shareguard/shareguard/pkg/store"
)

// Source records which rule granted access.
type Source string

const (
	// SourceOwner means the requester owns the file.
	SourceOwner Source = "owner"
	// SourceGrant means a live share grant covers the request.
	SourceGrant Source = "grant"
	// SourceLink means a bearer link covers the request.
	SourceLink Source = "link"
)

// Decision is a successful authorization outcome.
type Decision struct {
	File       *models.File
	Permission models.Permission
	Source     Source
}

// Engine evaluates access rules against the store.
type Engine struct {
	store store.Store
	now   func() time.Time
}

// NewEngine creates an access engine.
func NewEngine(st store.Store) *Engine {
	return &Engine{
		store: st,
		now:   time.Now,
	}
}

// Authorize decides whether the account may perform the requested operation
// on the file. Rules, in order:
//
//  1. The owner may do anything to their own file.
//  2. A grant that has not expired allows the request if its permission
//     covers the requested one (download covers view).
//  3. Otherwise the request is denied.
//
// Returns models.ErrFileNotFound if the file doesn't exist and
// models.ErrAccessDenied when no rule allows the request. An expired grant
// behaves exactly like a missing one.
func (e *Engine) Authorize(ctx context.Context, accountID, fileID string, requested models.Permission) (*Decision, error) {
	ctx, span := telemetry.StartAccessSpan(ctx, telemetry.SpanAuthorize,
		telemetry.AccountID(accountID),
		telemetry.FileID(fileID),
		telemetry.Permission(string(requested)))
	defer span.End()

	file, err := e.store.GetFile(ctx, fileID)
	if err != nil {
		telemetry.RecordError(ctx, err)
		return nil, err
	}

	if file.OwnerID == accountID {
		telemetry.SetAttributes(ctx, telemetry.AccessSource(string(SourceOwner)))
		return &Decision{
			File:       file,
			Permission: models.PermissionDownload,
			Source:     SourceOwner,
		}, nil
	}

	grant, err := e.store.GetGrant(ctx, fileID, accountID)
	if err == nil && !grant.Expired(e.now()) && grant.GetPermission().Covers(requested) {
		telemetry.SetAttributes(ctx, telemetry.AccessSource(string(SourceGrant)))
		return &Decision{
			File:       file,
			Permission: grant.GetPermission(),
			Source:     SourceGrant,
		}, nil
	}

	logger.DebugCtx(ctx, "access denied",
		logger.KeyAccountID, accountID,
		logger.KeyFileID, fileID,
		"requested", string(requested))
	telemetry.RecordError(ctx, models.ErrAccessDenied)
	return nil, models.ErrAccessDenied
}

// RedeemLink decides whether a bearer link allows the requested operation
// and, for a one-time link, consumes it. Rules, in order:
//
//  1. Unknown token: models.ErrLinkNotFound.
//  2. Expired link: models.ErrLinkExpired. Expiry dominates consumption, so
//     an expired link reports expired even if it was already used.
//  3. Already-consumed one-time link: models.ErrLinkAlreadyUsed.
//  4. Insufficient permission: models.ErrAccessDenied. The link is NOT
//     consumed, so the holder can retry with an operation it does cover.
//  5. One-time links are consumed atomically; exactly one concurrent
//     redemption wins, the rest get models.ErrLinkAlreadyUsed.
func (e *Engine) RedeemLink(ctx context.Context, token string, requested models.Permission) (*Decision, error) {
	ctx, span := telemetry.StartAccessSpan(ctx, telemetry.SpanRedeemLink,
		telemetry.Permission(string(requested)))
	defer span.End()

	link, err := e.store.GetLinkByToken(ctx, token)
	if err != nil {
		telemetry.RecordError(ctx, err)
		return nil, err
	}
	telemetry.SetAttributes(ctx, telemetry.LinkID(link.ID), telemetry.FileID(link.FileID))

	if link.Expired(e.now()) {
		telemetry.RecordError(ctx, models.ErrLinkExpired)
		return nil, models.ErrLinkExpired
	}
	if link.OneTimeUse && link.Consumed {
		telemetry.RecordError(ctx, models.ErrLinkAlreadyUsed)
		return nil, models.ErrLinkAlreadyUsed
	}
	if !link.GetPermission().Covers(requested) {
		telemetry.RecordError(ctx, models.ErrAccessDenied)
		return nil, models.ErrAccessDenied
	}

	if link.OneTimeUse {
		if err := e.store.ConsumeLink(ctx, token); err != nil {
			telemetry.RecordError(ctx, err)
			return nil, err
		}
	}

	file, err := e.store.GetFile(ctx, link.FileID)
	if err != nil {
		telemetry.RecordError(ctx, err)
		return nil, err
	}

	logger.InfoCtx(ctx, "link redeemed",
		logger.KeyLinkID, link.ID,
		logger.KeyFileID, link.FileID,
		"one_time", link.OneTimeUse)
	return &Decision{
		File:       file,
		Permission: link.GetPermission(),
		Source:     SourceLink,
	}, nil
}

// PeekLink reports a link's state without consuming it, for showing a
// preview page before the holder commits to redeeming a one-time link.
func (e *Engine) PeekLink(ctx context.Context, token string) (*models.ShareLink, error) {
	link, err := e.store.GetLinkByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if link.Expired(e.now()) {
		return nil, models.ErrLinkExpired
	}
	if link.OneTimeUse && link.Consumed {
		return nil, models.ErrLinkAlreadyUsed
	}
	return link, nil
}
