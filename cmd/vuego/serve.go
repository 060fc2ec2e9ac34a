package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/vuego-dev/vuego"
	"github.com/vuego-dev/vuego/pkg/metrics"
	"github.com/vuego-dev/vuego/pkg/render"
	"github.com/vuego-dev/vuego/pkg/vdom"
)

func serveCmd() *cobra.Command {
	var (
		addr     string
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the runtime demo server",
		Long: `Start a demo server exercising the runtime core.

The server renders a small component tree to HTML, then streams live
patches over WebSocket: each tick re-renders the tree through a block
tracking pass and diffs only the tracked dynamic nodes.

Endpoints:
  /         SSR demo page
  /ws       live patch stream
  /metrics  Prometheus metrics

Examples:
  vuego serve
  vuego serve --addr=:8080 --interval=500ms`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(addr, interval)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":4000", "Address to listen on")
	cmd.Flags().DurationVarP(&interval, "interval", "i", time.Second, "Patch stream tick interval")

	return cmd
}

// tickView is the demo component: a block whose count paragraph is the
// only text-dynamic node, so the patch stream carries exactly one
// SetText per tick.
func tickView(pass *vdom.RenderPass, count int) *vdom.VNode {
	pass.OpenBlock(false)
	kids := []*vdom.VNode{
		pass.ElementVNode("h1", nil, "vuego live demo", 0, nil),
		pass.ElementVNode("p", vdom.Props{"class": "count"},
			fmt.Sprintf("ticks: %d", count), vdom.PatchText, nil),
		pass.ElementVNode("small", nil, "updates arrive as block patches", 0, nil),
	}
	return pass.ElementBlock("main", vdom.Props{"id": "app"}, kids, 0, nil)
}

// wirePatch is the JSON form of a render.Patch sent to the client.
type wirePatch struct {
	Op     string `json:"op"`
	Target any    `json:"target,omitempty"`
	Key    string `json:"key,omitempty"`
	Value  string `json:"value,omitempty"`
}

func runServe(addr string, interval time.Duration) error {
	logger := slog.Default().With("component", "serve")
	collector := metrics.New()

	upgrader := websocket.Upgrader{
		CheckOrigin: func(*http.Request) bool { return true },
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		renderer := render.NewRenderer(render.Config{})
		app := vuego.CreateApp(vdom.Func(func() *vdom.VNode {
			pass := vdom.NewRenderPass()
			pass.Observer = collector
			return tickView(pass, 0)
		}), nil,
			vuego.WithRenderer(renderer),
			vuego.WithObserver(collector),
			vuego.WithDevtools(collector),
		)
		container := render.NewContainer()
		app.Mount(container)

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprintf(w, pageTemplate, container.HTML)
		app.Unmount()
	})

	r.Get("/ws", func(w http.ResponseWriter, req *http.Request) {
		conn, err := upgrader.Upgrade(w, req, nil)
		if err != nil {
			logger.Error("websocket upgrade failed", "error", err)
			return
		}
		defer conn.Close()
		streamPatches(req.Context(), conn, collector, interval, logger)
	})

	r.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	printBanner()
	success("demo server listening on %s", addr)
	info("open http://localhost%s to watch the patch stream", addr)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		errorMsg("server error: %v", err)
		return err
	}
	logger.Info("server stopped")
	return nil
}

// streamPatches re-renders the demo tree each tick and sends the diff.
func streamPatches(ctx context.Context, conn *websocket.Conn, collector *metrics.Collector, interval time.Duration, logger *slog.Logger) {
	renderer := render.NewRenderer(render.Config{})

	buildTree := func(count int) *vdom.VNode {
		pass := vdom.NewRenderPass()
		pass.Observer = collector
		return tickView(pass, count)
	}

	prev := buildTree(0)
	if _, err := renderer.RenderToString(prev); err != nil {
		logger.Error("initial render failed", "error", err)
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	count := 0
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		count++
		stop := collector.TimeRender()
		next := buildTree(count)
		patches := render.Diff(prev, next)
		stop()

		frame := make([]wirePatch, 0, len(patches))
		for _, p := range patches {
			frame = append(frame, wirePatch{
				Op:     p.Op.String(),
				Target: p.Target,
				Key:    p.Key,
				Value:  p.Value,
			})
		}

		payload, err := json.Marshal(frame)
		if err != nil {
			logger.Error("patch encode failed", "error", err)
			return
		}
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			logger.Info("client disconnected", "error", err)
			return
		}
		prev = next
	}
}

const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>vuego demo</title>
<style>body { font-family: sans-serif; margin: 3rem; } .count { font-size: 2rem; }</style>
</head>
<body>
%s
<script>
const ws = new WebSocket("ws://" + location.host + "/ws");
ws.onmessage = (e) => {
  for (const p of JSON.parse(e.data)) {
    const el = document.querySelector('[data-v="' + p.target + '"]');
    if (!el) continue;
    if (p.op === "SetText") el.textContent = p.value;
    else if (p.op === "SetClass") el.setAttribute("class", p.value);
    else if (p.op === "SetStyle") el.setAttribute("style", p.value);
    else if (p.op === "SetProp") el.setAttribute(p.key, p.value);
    else if (p.op === "RemoveProp") el.removeAttribute(p.key);
  }
};
</script>
</body>
</html>
`
