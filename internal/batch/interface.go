package batch

import "context"

// Handler processes one video dropped into the input folder.
type Handler interface {
	Handle(ctx context.Context, videoPath string) error
}
