package interfaces

import (
	"context"

	"window_quotation/internal/domain/diagram"
)

// DiagramSheet is one page of a rendered quotation: a titled window scene.
type DiagramSheet struct {
	Title    string
	Subtitle string
	Scene    diagram.SceneDescription
}

// IDiagramRenderer turns scene descriptions into a printable document.
type IDiagramRenderer interface {
	Render(ctx context.Context, quotationNumber string, sheets []DiagramSheet) ([]byte, error)
}
