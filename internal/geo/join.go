package geo

import (
	"log/slog"
	"sort"
	"strings"

	"odatlas/internal/mortality"
)

// Joiner joins pooled proportions to state shapes and places state
// labels. Label anchors default to the bounding-box midpoint of each
// state's vertices; overrides reposition states whose midpoint falls
// outside their visible shape (elongated or irregular outlines). The
// override set comes from configuration, never from code.
type Joiner struct {
	overrides map[string]Point // lowercase state name → anchor
	logger    *slog.Logger
}

// NewJoiner creates a joiner with the given label anchor overrides.
func NewJoiner(overrides map[string]Point, logger *slog.Logger) *Joiner {
	if logger == nil {
		logger = slog.Default()
	}
	normalized := make(map[string]Point, len(overrides))
	for name, p := range overrides {
		normalized[strings.ToLower(strings.TrimSpace(name))] = p
	}
	return &Joiner{overrides: normalized, logger: logger}
}

// Join inner-joins the pooled view with the shape set on lowercase state
// name. States present in only one source are excluded from the result;
// each exclusion is logged as a warning so geo-dataset drift is visible.
// Returns the renderable rows (sorted by state, then year) and one label
// anchor per joined state.
func (j *Joiner) Join(pooled []mortality.PooledProportion, shapes map[string]StateShape) ([]MapRow, []LabelAnchor) {
	rows := make([]MapRow, 0, len(pooled))
	joined := make(map[string]string) // lowercase name → state code
	missingShapes := make(map[string]bool)

	for _, p := range pooled {
		name := strings.ToLower(strings.TrimSpace(p.StateName))
		shape, ok := shapes[name]
		if !ok {
			missingShapes[name] = true
			continue
		}
		rows = append(rows, MapRow{
			State:      name,
			StateCode:  p.StateCode,
			Year:       p.Year,
			Rings:      shape.Rings,
			Proportion: p.Proportion,
			Delta:      p.Delta,
		})
		joined[name] = p.StateCode
	}

	for name := range missingShapes {
		j.logger.Warn("state has mortality data but no polygon; excluded from maps", "state", name)
	}
	for name := range shapes {
		if _, ok := joined[name]; !ok {
			j.logger.Warn("state has polygon but no mortality data; excluded from maps", "state", name)
		}
	}

	sort.Slice(rows, func(i, k int) bool {
		if rows[i].State != rows[k].State {
			return rows[i].State < rows[k].State
		}
		return rows[i].Year < rows[k].Year
	})

	anchors := make([]LabelAnchor, 0, len(joined))
	for name, code := range joined {
		anchor, overridden := j.overrides[name]
		if !overridden {
			anchor = shapes[name].BoundingBoxMidpoint()
		}
		anchors = append(anchors, LabelAnchor{State: name, Code: code, Anchor: anchor})
	}
	sort.Slice(anchors, func(i, k int) bool { return anchors[i].State < anchors[k].State })

	j.logger.Info("joined proportions to shapes",
		"rows", len(rows),
		"states", len(anchors),
		"excluded", len(missingShapes))

	return rows, anchors
}
