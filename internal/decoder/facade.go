package decoder

import (
	"image"
	"log/slog"
)

// Facade runs the decode backends against a single luma frame.
type Facade struct {
	backends []Backend
}

// New returns a facade with the published backend order: gozxing
// first, goqr second.
func New() *Facade {
	return &Facade{backends: []Backend{newZXingBackend(), newQuircBackend()}}
}

// NewWithBackends returns a facade over an explicit backend list.
// Used by tests to substitute fakes.
func NewWithBackends(backends ...Backend) *Facade {
	return &Facade{backends: backends}
}

// Attempt tries backends in order and stops at the first success. The
// returned outcome records only the winning backend.
func (f *Facade) Attempt(luma *image.Gray) Outcome {
	for _, b := range f.backends {
		res, err := safeDecode(b, luma)
		if err != nil {
			continue
		}
		return Outcome{
			OK:       true,
			Content:  res.Content,
			Version:  res.Version,
			EC:       res.EC,
			Backends: []string{b.Name()},
		}
	}
	return Outcome{}
}

// AttemptBoth runs every backend regardless of earlier successes and
// records each one that decoded the frame. Content comes from the
// first success; version and EC level prefer the quirc backend, which
// measures them from the symbol grid rather than estimating.
func (f *Facade) AttemptBoth(luma *image.Gray) Outcome {
	var out Outcome
	for _, b := range f.backends {
		res, err := safeDecode(b, luma)
		if err != nil {
			slog.Debug("backend failed", "backend", b.Name(), "error", err)
			continue
		}
		if !out.OK {
			out.OK = true
			out.Content = res.Content
			out.Version = res.Version
			out.EC = res.EC
		} else if b.Name() == BackendQuirc {
			out.Version = res.Version
			out.EC = res.EC
		}
		out.Backends = append(out.Backends, b.Name())
	}
	return out
}
