package server

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Mnajm6201/RealTimeRayTracer/pkg/renderer"
	"github.com/Mnajm6201/RealTimeRayTracer/pkg/scene"
)

// Server renders preview frames over HTTP. Each request gets its own
// scene and raytracer, so concurrent requests never share mutable state.
type Server struct {
	port   int
	config renderer.Config
}

// NewServer creates a new preview server
func NewServer(port int) *Server {
	return &Server{port: port, config: renderer.DefaultConfig()}
}

// Start starts the web server
func (s *Server) Start() error {
	mux := s.Handler()
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting preview server on http://localhost%s", addr)
	return http.ListenAndServe(addr, mux)
}

// Handler builds the route table
func (s *Server) Handler() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/frame.png", s.handleFrame)
	mux.HandleFunc("/api/health", s.handleHealth)
	return mux
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, `{"status":"ok"}`)
}

// handleFrame renders one frame from query-parameter camera state and
// returns it as PNG. Camera distance and sample count are clamped by the
// renderer; width and height are validated here.
func (s *Server) handleFrame(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	width, err := parseIntParam(query, "w", 320, 16, 1920)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	height, err := parseIntParam(query, "h", 240, 16, 1080)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	samples, err := parseIntParam(query, "spp", s.config.SamplesPerPixel, 1, s.config.MaxSamples)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	angleX := parseFloatParam(query, "ax", 0)
	angleY := parseFloatParam(query, "ay", 0)
	distance := parseFloatParam(query, "dist", 5)
	elapsed := parseFloatParam(query, "t", 0)

	rt := renderer.NewRaytracer(scene.NewDefaultScene(), s.config)
	camera, spp := rt.Update(renderer.FrameInput{
		AngleX:          angleX,
		AngleY:          angleY,
		Distance:        distance,
		Elapsed:         elapsed,
		Width:           width,
		Height:          height,
		SamplesPerPixel: samples,
	})

	buffer := rt.RenderFrame(camera, spp, rand.New(rand.NewSource(42)))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < width*height; i++ {
		img.Pix[i*4] = buffer[i*3]
		img.Pix[i*4+1] = buffer[i*3+1]
		img.Pix[i*4+2] = buffer[i*3+2]
		img.Pix[i*4+3] = 255
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-cache")
	if err := png.Encode(w, img); err != nil {
		log.Printf("Encoding frame: %v", err)
	}
}

// handleIndex serves a minimal page that animates by polling frame.png
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, indexHTML)
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	value := values.Get(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %s", key, value)
	}
	if parsed < min || parsed > max {
		return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
	}
	return parsed, nil
}

// parseFloatParam parses a float parameter, falling back to the default on
// absence or garbage. Range policy for these values is clamping in the
// renderer, not rejection here.
func parseFloatParam(values url.Values, key string, defaultValue float64) float64 {
	value := values.Get(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return parsed
}

const indexHTML = `<!DOCTYPE html>
<html>
<head><title>Real-Time Ray Tracer</title></head>
<body style="background:#111;color:#ddd;font-family:monospace;text-align:center">
<h3>Real-Time Ray Tracer</h3>
<img id="frame" width="640" height="480">
<p>drag: orbit &middot; wheel: zoom</p>
<script>
let ax = 0, ay = 0, dist = 5, dragging = false, lastX = 0, lastY = 0;
const start = Date.now();
const img = document.getElementById('frame');
img.onmousedown = e => { dragging = true; lastX = e.clientX; lastY = e.clientY; };
window.onmouseup = () => dragging = false;
window.onmousemove = e => {
  if (!dragging) return;
  ax += (e.clientX - lastX) * 0.01;
  ay += (e.clientY - lastY) * 0.01;
  lastX = e.clientX; lastY = e.clientY;
};
img.onwheel = e => { dist += e.deltaY * 0.005; e.preventDefault(); };
function refresh() {
  const t = (Date.now() - start) / 1000;
  const next = new Image();
  next.onload = () => { img.src = next.src; setTimeout(refresh, 50); };
  next.onerror = () => setTimeout(refresh, 500);
  next.src = '/frame.png?w=320&h=240&ax=' + ax.toFixed(3) + '&ay=' + ay.toFixed(3) +
    '&dist=' + dist.toFixed(2) + '&t=' + t.toFixed(3);
}
refresh();
</script>
</body>
</html>
`
