package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/tidwall/gjson"
)

// GetProgress fetches the learning curve of a lab. The progress endpoint has
// drifted across backend releases (top-level array, "points", or "history",
// with "iteration"/"step" and "score"/"value" field spellings), so the body
// is walked with gjson instead of binding to a struct.
func (c *Client) GetProgress(ctx context.Context, labID string) ([]ProgressPoint, error) {
	raw, err := c.getRaw(ctx, "/api/v1/labs/"+url.PathEscape(labID)+"/progress")
	if err != nil {
		return nil, fmt.Errorf("get progress for lab %s: %w", labID, err)
	}

	root := gjson.ParseBytes(raw)
	series := root
	if !root.IsArray() {
		for _, key := range []string{"points", "history", "data"} {
			if candidate := root.Get(key); candidate.IsArray() {
				series = candidate
				break
			}
		}
	}
	if !series.IsArray() {
		return nil, fmt.Errorf("get progress for lab %s: unrecognized payload shape", labID)
	}

	var points []ProgressPoint
	best := 0.0
	series.ForEach(func(_, item gjson.Result) bool {
		point := ProgressPoint{
			Iteration: int(firstInt(item, "iteration", "step", "index")),
			Score:     firstFloat(item, "score", "value"),
		}
		point.BestScore = firstFloat(item, "best_score", "best")
		if point.BestScore == 0 {
			if point.Score > best {
				best = point.Score
			}
			point.BestScore = best
		} else if point.BestScore > best {
			best = point.BestScore
		}
		points = append(points, point)
		return true
	})
	return points, nil
}

func firstInt(item gjson.Result, keys ...string) int64 {
	for _, key := range keys {
		if v := item.Get(key); v.Exists() {
			return v.Int()
		}
	}
	return 0
}

func firstFloat(item gjson.Result, keys ...string) float64 {
	for _, key := range keys {
		if v := item.Get(key); v.Exists() {
			return v.Float()
		}
	}
	return 0
}
