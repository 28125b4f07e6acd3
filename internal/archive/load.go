package archive

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Load reads a conversation export: a JSON array of conversation records.
// The context lets a superseding load abort a stale one.
func Load(ctx context.Context, path string) ([]Conversation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("archive not found at %s: %w", path, err)
		}
		return nil, fmt.Errorf("read archive %s: %w", path, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var convs []Conversation
	if err := json.Unmarshal(data, &convs); err != nil {
		return nil, fmt.Errorf("decode archive %s: %w", path, err)
	}

	for i := range convs {
		fillNodeIDs(&convs[i])
	}
	return convs, nil
}

// fillNodeIDs backfills node ids from mapping keys; some exports omit the
// redundant id field inside each node.
func fillNodeIDs(c *Conversation) {
	for key, node := range c.Mapping {
		if node.ID == "" {
			node.ID = key
			c.Mapping[key] = node
		}
	}
}
