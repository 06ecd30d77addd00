package approval

import (
	"context"

	"engagement-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Resolve(ctx context.Context, sc model.Scope, input ResolveInput) (ItemOutput, error)
	Edit(ctx context.Context, sc model.Scope, input EditInput) (ItemOutput, error)
	BulkResolve(ctx context.Context, sc model.Scope, input BulkResolveInput) (BulkResolveOutput, error)
}
