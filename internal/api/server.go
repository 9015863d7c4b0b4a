// Package api exposes the read-only analysis records and alert CRUD over
// HTTP. Rendering is the caller's job; the API serves JSON only.
package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"StockRadar/internal/alert"
	"StockRadar/internal/analyzer"
	"StockRadar/internal/model"
)

// Server serves the HTTP API.
type Server struct {
	analyzer  *analyzer.Analyzer
	store     alert.Store
	registry  *prometheus.Registry
	watchlist []string
	parallel  bool
	httpSrv   *http.Server
}

// New builds the server and its route table.
func New(addr string, a *analyzer.Analyzer, store alert.Store, reg *prometheus.Registry, watchlist []string, parallel bool) *Server {
	s := &Server{
		analyzer:  a,
		store:     store,
		registry:  reg,
		watchlist: watchlist,
		parallel:  parallel,
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/analysis", s.handleAnalysisBatch)
		apiGroup.GET("/analysis/:ticker", s.handleAnalysis)
		apiGroup.GET("/screener", s.handleScreener)
		apiGroup.GET("/alerts", s.handleListAlerts)
		apiGroup.POST("/alerts", s.handleAddAlert)
		apiGroup.DELETE("/alerts/:id", s.handleDeleteAlert)
		apiGroup.POST("/alerts/check", s.handleCheckAlerts)
	}

	s.httpSrv = &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
	return s
}

// Start serves until Shutdown is called.
func (s *Server) Start() error {
	log.Info().Str("addr", s.httpSrv.Addr).Msg("http server listening")
	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

func (s *Server) handleAnalysis(c *gin.Context) {
	ticker := c.Param("ticker")
	a, err := s.analyzer.Analyze(c.Request.Context(), ticker)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, a)
}

func (s *Server) handleAnalysisBatch(c *gin.Context) {
	tickers := s.watchlist
	if q := c.QueryArray("ticker"); len(q) > 0 {
		tickers = q
	}
	analyses := s.analyzer.AnalyzeBatch(c.Request.Context(), tickers, s.parallel)
	c.JSON(http.StatusOK, analyses)
}

func (s *Server) handleScreener(c *gin.Context) {
	f := analyzer.DefaultScreenFilter()
	if v, ok := queryFloat(c, "rsi_min"); ok {
		f.RSIMin = v
	}
	if v, ok := queryFloat(c, "rsi_max"); ok {
		f.RSIMax = v
	}
	if v, ok := queryFloat(c, "roe_min"); ok {
		f.ROEMin = v
	}
	if v, ok := queryFloat(c, "pb_max"); ok {
		f.PriceToBookMax = v
	}
	if v, ok := queryFloat(c, "volume_min"); ok {
		f.VolumeMin = v
	}

	analyses := s.analyzer.AnalyzeBatch(c.Request.Context(), s.watchlist, s.parallel)
	c.JSON(http.StatusOK, analyzer.Screen(analyses, f))
}

func (s *Server) handleListAlerts(c *gin.Context) {
	alerts, err := s.store.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if alerts == nil {
		alerts = []model.Alert{}
	}
	c.JSON(http.StatusOK, alerts)
}

func (s *Server) handleAddAlert(c *gin.Context) {
	var a model.Alert
	if err := c.ShouldBindJSON(&a); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validateAlert(a); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	stored, err := s.store.Add(a)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, stored)
}

func (s *Server) handleDeleteAlert(c *gin.Context) {
	if err := s.store.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleCheckAlerts(c *gin.Context) {
	alerts, err := s.store.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// One snapshot per distinct ticker with at least one alert.
	snapshots := make(map[string]*model.IndicatorSnapshot)
	for _, a := range alerts {
		if _, ok := snapshots[a.Ticker]; ok {
			continue
		}
		snap, err := s.analyzer.Snapshot(c.Request.Context(), a.Ticker)
		if err != nil {
			log.Warn().Str("ticker", a.Ticker).Err(err).Msg("alert check: snapshot unavailable")
			continue
		}
		snapshots[a.Ticker] = snap
	}

	fired := alert.CheckAll(alerts, snapshots, time.Now())
	if fired == nil {
		fired = []model.TriggeredAlert{}
	}
	c.JSON(http.StatusOK, fired)
}

func validateAlert(a model.Alert) error {
	if a.Ticker == "" {
		return errMissing("ticker")
	}
	switch a.Type {
	case model.AlertPrice, model.AlertRSI:
		if a.Condition != model.CondAbove && a.Condition != model.CondBelow {
			return errMissing("condition (ABOVE/BELOW)")
		}
	case model.AlertMACD:
		if a.Signal != model.MACDCrossover && a.Signal != model.MACDCrossunder {
			return errMissing("signal (CROSSOVER/CROSSUNDER)")
		}
	default:
		return errMissing("type (PRICE/RSI/MACD)")
	}
	return nil
}

type errMissing string

func (e errMissing) Error() string { return "missing or invalid " + string(e) }

func queryFloat(c *gin.Context, name string) (float64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
