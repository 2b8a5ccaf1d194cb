package googletrends

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"time"

	"trend-srv/internal/model"
	"trend-srv/internal/source"
)

var errNoTimeseries = errors.New("no timeseries widget")

func (a *adapter) Source() string {
	return model.SourceGoogleTrends
}

// Fetch loads search interest for product. It never returns posts; limit is ignored.
func (a *adapter) Fetch(ctx context.Context, product string, _ int) (source.Result, error) {
	widgets, err := a.explore(ctx, product)
	if err != nil {
		a.l.Warnf(ctx, "source.googletrends.Fetch: explore failed, using fallback: %v", err)
		return a.Fallback(product), nil
	}

	var ts, geo *widget
	for i := range widgets {
		switch widgets[i].ID {
		case widgetTimeseries:
			ts = &widgets[i]
		case widgetGeoMap:
			if geo == nil {
				geo = &widgets[i]
			}
		}
	}
	if ts == nil {
		a.l.Warnf(ctx, "source.googletrends.Fetch: %v, using fallback", errNoTimeseries)
		return a.Fallback(product), nil
	}

	points, err := a.timeline(ctx, *ts)
	if err != nil || len(points) == 0 {
		a.l.Warnf(ctx, "source.googletrends.Fetch: multiline failed, using fallback: %v", err)
		return a.Fallback(product), nil
	}

	interest := &model.SearchInterest{Points: points}
	if geo != nil {
		byRegion, err := a.regions(ctx, *geo)
		if err != nil {
			a.l.Warnf(ctx, "source.googletrends.Fetch: comparedgeo failed: %v", err)
		} else {
			interest.ByRegion = byRegion
		}
	}
	return source.Result{Source: model.SourceGoogleTrends, Interest: interest}, nil
}

func (a *adapter) explore(ctx context.Context, product string) ([]widget, error) {
	req, err := json.Marshal(exploreRequest{
		ComparisonItem: []comparisonItem{{Keyword: product, Time: a.cfg.Timeframe}},
	})
	if err != nil {
		return nil, err
	}

	var resp exploreResponse
	if err := a.get(ctx, "/explore", map[string]string{"req": string(req)}, &resp); err != nil {
		return nil, err
	}
	return resp.Widgets, nil
}

func (a *adapter) timeline(ctx context.Context, w widget) ([]model.InterestPoint, error) {
	var resp multilineResponse
	if err := a.get(ctx, "/widgetdata/multiline", map[string]string{
		"req":   string(w.Request),
		"token": w.Token,
	}, &resp); err != nil {
		return nil, err
	}

	points := make([]model.InterestPoint, 0, len(resp.Default.TimelineData))
	for _, d := range resp.Default.TimelineData {
		if len(d.Value) == 0 {
			continue
		}
		sec, err := strconv.ParseInt(d.Time, 10, 64)
		if err != nil {
			continue
		}
		points = append(points, model.InterestPoint{
			Date:  time.Unix(sec, 0).UTC(),
			Value: float64(d.Value[0]),
		})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
	return points, nil
}

func (a *adapter) regions(ctx context.Context, w widget) (map[string]int, error) {
	var resp comparedGeoResponse
	if err := a.get(ctx, "/widgetdata/comparedgeo", map[string]string{
		"req":   string(w.Request),
		"token": w.Token,
	}, &resp); err != nil {
		return nil, err
	}

	out := make(map[string]int, len(resp.Default.GeoMapData))
	for _, g := range resp.Default.GeoMapData {
		if g.GeoCode == "" || len(g.Value) == 0 || g.Value[0] == 0 {
			continue
		}
		out[g.GeoCode] = g.Value[0]
	}
	return out, nil
}

// get calls a trends endpoint and decodes the body after the anti-XSSI prefix.
func (a *adapter) get(ctx context.Context, path string, query map[string]string, out interface{}) error {
	query["hl"] = a.cfg.Language
	query["tz"] = a.cfg.TZ

	body, status, err := a.http.GetWithQuery(ctx, a.cfg.BaseURL+path, query, nil)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("%s status %d", path, status)
	}
	if err := json.Unmarshal(stripXSSI(body), out); err != nil {
		return fmt.Errorf("%s decode: %w", path, err)
	}
	return nil
}

// stripXSSI drops the ")]}'" guard by cutting everything before the first '{'.
func stripXSSI(body []byte) []byte {
	if i := bytes.IndexByte(body, '{'); i > 0 {
		return body[i:]
	}
	return body
}
