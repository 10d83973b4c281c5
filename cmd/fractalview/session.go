package main

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"sync"
	"time"

	fractal "github.com/dkoubek/fractalview"
	"github.com/dkoubek/fractalview/render"
)

// applyRequest is the message the browser sends when the Update button is
// clicked. Slider moves are staged client-side only; both values arrive
// together here.
type applyRequest struct {
	Iterations int     `json:"iterations"`
	Zoom       float64 `json:"zoom"`
}

// frameMeta is the text message preceding the two binary PNG frames (image,
// then colorbar) on the websocket. On a rejected apply only Error is set
// and no binary frames follow.
type frameMeta struct {
	Kind       string  `json:"kind"`
	MaxIter    int     `json:"maxIter"`
	Zoom       float64 `json:"zoom"`
	Resolution int     `json:"resolution"`
	Scale      string  `json:"scale"`
	ElapsedMs  int64   `json:"elapsedMs"`
	Error      string  `json:"error,omitempty"`
}

// frame is one complete render pushed to a client.
type frame struct {
	meta     frameMeta
	img      []byte // PNG
	colorbar []byte // PNG
}

// session owns the committed render parameters. The browser keeps its own
// pending slider values; nothing here changes until apply commits a new
// iteration cap and zoom together, at which point the field is regenerated
// from a snapshot of the committed parameters.
type session struct {
	mu        sync.Mutex
	bounds    fractal.ViewBounds
	params    fractal.Params
	renderer  *render.Mapper
	scaleName string
}

func newSession(bounds fractal.ViewBounds, params fractal.Params, renderer *render.Mapper, scaleName string) (*session, error) {
	if err := bounds.Validate(); err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &session{
		bounds:    bounds,
		params:    params,
		renderer:  renderer,
		scaleName: scaleName,
	}, nil
}

// current regenerates from the committed parameters, for the initial
// display of a freshly connected client.
func (s *session) current() (frame, error) {
	s.mu.Lock()
	snapshot := s.params
	s.mu.Unlock()

	return s.regenerate(snapshot)
}

// apply validates the staged values, commits them and regenerates. A
// rejected apply leaves the committed parameters untouched.
func (s *session) apply(req applyRequest) (frame, error) {
	s.mu.Lock()
	staged := s.params
	staged.MaxIter = req.Iterations
	staged.Zoom = req.Zoom
	if err := staged.Validate(); err != nil {
		s.mu.Unlock()
		return frame{}, err
	}
	s.params = staged
	s.mu.Unlock()

	return s.regenerate(staged)
}

// regenerate is the explicit, side-effect-free render call: sample the
// field for the snapshot, color it, encode both PNGs.
func (s *session) regenerate(p fractal.Params) (frame, error) {
	start := time.Now()

	field, err := fractal.Sample(s.bounds, p)
	if err != nil {
		return frame{}, fmt.Errorf("sample: %w", err)
	}

	img, err := s.renderer.Render(field, p.MaxIter)
	if err != nil {
		return frame{}, fmt.Errorf("render: %w", err)
	}
	bar := s.renderer.Colorbar(24, p.Resolution)

	imgPNG, err := encodePNG(img)
	if err != nil {
		return frame{}, err
	}
	barPNG, err := encodePNG(bar)
	if err != nil {
		return frame{}, err
	}

	return frame{
		meta: frameMeta{
			Kind:       string(p.Kind),
			MaxIter:    p.MaxIter,
			Zoom:       p.Zoom,
			Resolution: p.Resolution,
			Scale:      s.scaleName,
			ElapsedMs:  time.Since(start).Milliseconds(),
		},
		img:      imgPNG,
		colorbar: barPNG,
	}, nil
}

// committed returns a copy of the committed parameters.
func (s *session) committed() fractal.Params {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.params
}

func encodePNG(img *image.RGBA) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}
