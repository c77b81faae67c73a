package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/judd-droid/supernovabigboard/internal/metrics"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the big-board HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		env, err := initApp(ctx)
		if err != nil {
			return err
		}
		defer env.Close()

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: newRouter(env),
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			srv.Shutdown(ctx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

func newRouter(env *appEnv) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: env.cfg.Server.AllowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/sales", env.handleSales)
		r.Route("/reports", func(r chi.Router) {
			r.Get("/", env.handleListReports)
			r.Get("/{id}", env.handleGetReport)
		})
	})

	return r
}

// requestLogger emits one structured entry per request through the
// global zap logger, keeping the access log in the same stream as the
// rest of the application logs.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
		next.ServeHTTP(ww, req)
		zap.L().Info("http request",
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("elapsed", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(req.Context())),
		)
	})
}

func (e *appEnv) handleSales(w http.ResponseWriter, req *http.Request) {
	q := req.URL.Query()

	preset, rng, err := e.resolveRange(q.Get("preset"), q.Get("start"), q.Get("end"))
	if err != nil {
		if eris.Is(err, metrics.ErrInvalidRange) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "range resolution failed")
		return
	}

	wb, err := e.loadWorkbook(req.Context())
	if err != nil {
		zap.L().Error("workbook fetch failed", zap.Error(err))
		writeError(w, http.StatusBadGateway, "upstream sheet fetch failed")
		return
	}

	report, err := e.computeReport(req.Context(), wb, preset, rng, q.Get("unit"), q.Get("advisor"))
	if err != nil {
		zap.L().Error("report computation failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "report computation failed")
		return
	}

	writeJSON(w, http.StatusOK, report)
}

func (e *appEnv) handleListReports(w http.ResponseWriter, req *http.Request) {
	limit, _ := strconv.Atoi(req.URL.Query().Get("limit"))

	metas, err := e.store.ListReports(req.Context(), limit)
	if err != nil {
		zap.L().Error("report list failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "report list failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"reports": metas})
}

func (e *appEnv) handleGetReport(w http.ResponseWriter, req *http.Request) {
	id := chi.URLParam(req, "id")

	report, err := e.store.GetReport(req.Context(), id)
	if err != nil {
		zap.L().Error("report load failed", zap.String("report_id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "report load failed")
		return
	}
	if report == nil {
		writeError(w, http.StatusNotFound, "report not found")
		return
	}

	writeJSON(w, http.StatusOK, report)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Warn("response encode failed", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
