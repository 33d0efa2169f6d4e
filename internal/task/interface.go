package task

import "context"

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	List(ctx context.Context) (ListOutput, error)
	Detail(ctx context.Context, id int64) (DetailOutput, error)
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
	// Update replaces the title only; completion state is left as stored.
	Update(ctx context.Context, input UpdateInput) (UpdateOutput, error)
	Delete(ctx context.Context, id int64) error
}
