package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dyluth/tension/internal/config"
	"github.com/dyluth/tension/internal/gauge"
	"github.com/dyluth/tension/internal/plan"
	"github.com/dyluth/tension/internal/swatch"
)

// API request bodies. Gauges travel as the same "stitches/rows" specs the CLI
// takes, so curl examples and the form page read identically.

type sizeRequest struct {
	Desired       float64   `json:"desired"`
	Dimension     string    `json:"dimension"`
	PersonalGauge string    `json:"personal_gauge"`
	PatternGauge  string    `json:"pattern_gauge"`
	Sizes         []float64 `json:"sizes"`
}

type pickupRequest struct {
	PatternStitches int    `json:"pattern_stitches"`
	PatternRows     int    `json:"pattern_rows"`
	TotalRows       int    `json:"total_rows"`
	PatternGauge    string `json:"pattern_gauge"`
	PersonalGauge   string `json:"personal_gauge"`
	AllowOverflow   *bool  `json:"allow_overflow"`
}

type borderRequest struct {
	MainCount         int     `json:"main_count"`
	MainGauge         string  `json:"main_gauge"`
	BorderStitchGauge float64 `json:"border_stitch_gauge"`
	Edge              string  `json:"edge"`
}

type spreadRequest struct {
	Items int `json:"items"`
	Slots int `json:"slots"`
}

func (s *Server) handleSize(c *gin.Context) {
	var req sizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, fmt.Errorf("invalid request body: %w", err))
		return
	}

	personal, err := s.gaugeOrConfig("personal_gauge", req.PersonalGauge)
	if err != nil {
		badRequest(c, err)
		return
	}
	pattern, err := requiredGauge("pattern_gauge", req.PatternGauge)
	if err != nil {
		badRequest(c, err)
		return
	}

	var dim plan.Dimension
	if req.Dimension != "" {
		dim, err = plan.ParseDimension(req.Dimension)
		if err != nil {
			badRequest(c, err)
			return
		}
	}

	p, err := plan.BuildSize(plan.SizeRequest{
		Desired:       req.Desired,
		Dimension:     dim,
		PersonalGauge: personal,
		PatternGauge:  pattern,
		Sizes:         req.Sizes,
	})
	if err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) handlePickup(c *gin.Context) {
	var req pickupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, fmt.Errorf("invalid request body: %w", err))
		return
	}

	pattern, err := requiredGauge("pattern_gauge", req.PatternGauge)
	if err != nil {
		badRequest(c, err)
		return
	}
	personal, err := s.gaugeOrConfig("personal_gauge", req.PersonalGauge)
	if err != nil {
		badRequest(c, err)
		return
	}

	p, err := plan.BuildPickup(plan.PickupRequest{
		PatternStitches: req.PatternStitches,
		PatternRows:     req.PatternRows,
		TotalRows:       req.TotalRows,
		PatternGauge:    pattern,
		PersonalGauge:   personal,
		AllowOverflow:   s.allowOverflow(req.AllowOverflow),
	})
	if err != nil {
		if errors.Is(err, plan.ErrOverflow) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": err.Error(),
				"hint":  "set allow_overflow to true to place more than one stitch per row end",
			})
			return
		}
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) handleBorder(c *gin.Context) {
	var req borderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, fmt.Errorf("invalid request body: %w", err))
		return
	}

	mainGauge, err := s.gaugeOrConfig("main_gauge", req.MainGauge)
	if err != nil {
		badRequest(c, err)
		return
	}

	var edge gauge.EdgeKind
	if req.Edge != "" {
		edge, err = gauge.ParseEdge(req.Edge)
		if err != nil {
			badRequest(c, err)
			return
		}
	}

	p, err := plan.BuildBorder(plan.BorderRequest{
		MainCount:         req.MainCount,
		MainGauge:         mainGauge,
		BorderStitchGauge: req.BorderStitchGauge,
		Edge:              edge,
	})
	if err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) handleSpread(c *gin.Context) {
	var req spreadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, fmt.Errorf("invalid request body: %w", err))
		return
	}

	p, err := plan.BuildSpread(plan.SpreadRequest{Items: req.Items, Slots: req.Slots})
	if err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) handleSwatchSVG(c *gin.Context) {
	g, err := s.gaugeOrConfig("gauge", c.Query("gauge"))
	if err != nil {
		badRequest(c, err)
		return
	}
	if err := g.Validate(); err != nil {
		badRequest(c, fmt.Errorf("gauge: %w", err))
		return
	}

	c.Header("Content-Type", "image/svg+xml")
	if err := swatch.WriteSVG(c.Writer, g); err != nil {
		s.logger.Warn("swatch render failed",
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.Error(err))
	}
}

func (s *Server) handleChartSVG(c *gin.Context) {
	items, err := queryInt(c, "items")
	if err != nil {
		badRequest(c, err)
		return
	}
	slots, err := queryInt(c, "slots")
	if err != nil {
		badRequest(c, err)
		return
	}

	p, err := plan.BuildSpread(plan.SpreadRequest{Items: items, Slots: slots})
	if err != nil {
		badRequest(c, err)
		return
	}

	c.Header("Content-Type", "image/svg+xml")
	if err := swatch.WriteChartSVG(c.Writer, p.FullSequence); err != nil {
		s.logger.Warn("chart render failed",
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.Error(err))
	}
}

// gaugeOrConfig resolves a gauge field, falling back to the tension.yml gauge
// when the request leaves it empty.
func (s *Server) gaugeOrConfig(field, spec string) (gauge.Gauge, error) {
	if spec != "" {
		g, err := gauge.Parse(spec)
		if err != nil {
			return gauge.Gauge{}, fmt.Errorf("%s: %w", field, err)
		}
		return g, nil
	}
	if s.cfg != nil && s.cfg.Gauge != nil {
		return *s.cfg.Gauge, nil
	}
	return gauge.Gauge{}, fmt.Errorf("%s is required (or set gauge in %s)", field, config.DefaultPath)
}

// allowOverflow resolves the overflow flag: an explicit request value wins,
// then the tension.yml preference, then false.
func (s *Server) allowOverflow(req *bool) bool {
	if req != nil {
		return *req
	}
	return s.cfg != nil && s.cfg.Preferences != nil && s.cfg.Preferences.AllowOverflow
}

// requiredGauge parses a gauge field with no config fallback.
func requiredGauge(field, spec string) (gauge.Gauge, error) {
	g, err := gauge.Parse(spec)
	if err != nil {
		return gauge.Gauge{}, fmt.Errorf("%s: %w", field, err)
	}
	return g, nil
}

// queryInt parses a required integer query parameter.
func queryInt(c *gin.Context, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, fmt.Errorf("%s query parameter is required", name)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", name, raw)
	}
	return n, nil
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
