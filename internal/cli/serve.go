package cli

import (
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/canopymap/canopy/pkg/format/formats"
	"github.com/canopymap/canopy/pkg/format/native"
	"github.com/canopymap/canopy/pkg/mindmap"
	"github.com/canopymap/canopy/pkg/render"
)

// newServeCmd creates the serve command, an HTTP viewer for a single map.
func newServeCmd(configPath *string) *cobra.Command {
	var (
		addr       string
		formatName string
	)

	cmd := &cobra.Command{
		Use:   "serve <file>",
		Short: "Serve a mind map over HTTP",
		Long: `Serve a mind map over HTTP.

Endpoints:
  GET /map.json   the map in native JSON
  GET /map.svg    a rendered node-link diagram
  GET /healthz    liveness check`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Serve.Addr
			}

			m, err := formats.ReadFile(args[0], formatName)
			if err != nil {
				return err
			}
			m.ComputeLayout()

			logger := loggerFromContext(cmd.Context())
			logger.Infof("Serving %s on %s", args[0], addr)
			printInfo("Listening on %s", addr)

			return http.ListenAndServe(addr, newServeMux(m))
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8420)")
	cmd.Flags().StringVarP(&formatName, "format", "f", "", "input format (default: by extension)")

	return cmd
}

// mapHandler serves one map. The Map itself is not safe for concurrent
// use, so every handler takes the mutex.
type mapHandler struct {
	mu sync.RWMutex
	m  *mindmap.Map
}

func newServeMux(m *mindmap.Map) http.Handler {
	h := &mapHandler{m: m}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/healthz", h.health)
	r.Get("/map.json", h.mapJSON)
	r.Get("/map.svg", h.mapSVG)
	return r
}

func (h *mapHandler) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("ok"))
}

func (h *mapHandler) mapJSON(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	data, err := native.New().Encode(h.m)
	h.mu.RUnlock()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func (h *mapHandler) mapSVG(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	dot := render.ToDOT(h.m, render.Options{ShowIcons: true})
	h.mu.RUnlock()

	svg, err := render.RenderSVG(dot)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write(svg)
}
