package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/courtside/internal/catalog"
)

type catalogResultMsg struct {
	catalog *catalog.Catalog
	source  string
	err     error
}

// loadCatalogJob reads the sample catalog at path, or the embedded one when
// path is empty.
func loadCatalogJob(path string) jobRunner {
	return func(ctx context.Context) (tea.Msg, error) {
		if err := ctx.Err(); err != nil {
			return catalogResultMsg{err: err}, err
		}
		if path == "" {
			c, err := catalog.Default()
			return catalogResultMsg{catalog: c, source: "embedded", err: err}, err
		}
		c, err := catalog.LoadFile(path)
		return catalogResultMsg{catalog: c, source: path, err: err}, err
	}
}
