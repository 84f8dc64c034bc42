package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/lehmer/pkg/buildinfo"
	lerrors "github.com/matzehuels/lehmer/pkg/errors"
	"github.com/matzehuels/lehmer/pkg/store"
)

type factorialResponse struct {
	N     int    `json:"n"`
	Value string `json:"value"`
}

type encodeRequest struct {
	Permutation []int `json:"permutation"`
}

type orderingRequest struct {
	Permutation []int    `json:"permutation"`
	Labels      []string `json:"labels,omitempty"`
}

type listResponse struct {
	Orderings []*store.Ordering `json:"orderings"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": buildinfo.Version})
}

func (s *Server) handleFactorial(w http.ResponseWriter, r *http.Request) {
	n, err := s.lengthParam(r, "n")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	v, err := s.runner.Factorial(r.Context(), n)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, factorialResponse{N: n, Value: v})
}

func (s *Server) handleEncode(w http.ResponseWriter, r *http.Request) {
	var req encodeRequest
	if err := s.decodeBody(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.checkLength(len(req.Permutation)); err != nil {
		s.writeError(w, r, err)
		return
	}
	res, err := s.runner.Encode(r.Context(), req.Permutation)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	length, err := s.lengthParam(r, "length")
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	res, err := s.runner.Decode(r.Context(), length, chi.URLParam(r, "code"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleListOrderings(w http.ResponseWriter, r *http.Request) {
	list, err := s.runner.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if list == nil {
		list = []*store.Ordering{}
	}
	writeJSON(w, http.StatusOK, listResponse{Orderings: list})
}

func (s *Server) handleGetOrdering(w http.ResponseWriter, r *http.Request) {
	e, err := s.runner.Load(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (s *Server) handlePutOrdering(w http.ResponseWriter, r *http.Request) {
	var req orderingRequest
	if err := s.decodeBody(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.checkLength(len(req.Permutation)); err != nil {
		s.writeError(w, r, err)
		return
	}
	o, err := s.runner.Save(r.Context(), chi.URLParam(r, "name"), req.Permutation, req.Labels)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (s *Server) handleDeleteOrdering(w http.ResponseWriter, r *http.Request) {
	if err := s.runner.Delete(r.Context(), chi.URLParam(r, "name")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// lengthParam parses a non-negative length URL parameter bounded by
// Options.MaxLength.
func (s *Server) lengthParam(r *http.Request, key string) (int, error) {
	raw := chi.URLParam(r, key)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, lerrors.New(lerrors.ErrCodeInvalidFormat, "%s %q is not an integer", key, raw)
	}
	if err := s.checkLength(n); err != nil {
		return 0, err
	}
	return n, nil
}

func (s *Server) checkLength(n int) error {
	if n > s.opts.MaxLength {
		return lerrors.New(lerrors.ErrCodeInvalidArgument, "length %d exceeds the server limit of %d", n, s.opts.MaxLength)
	}
	return nil
}

func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, s.opts.MaxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			return lerrors.New(lerrors.ErrCodeInvalidInput, "request body exceeds %d bytes", maxErr.Limit)
		case errors.Is(err, io.EOF):
			return lerrors.New(lerrors.ErrCodeInvalidInput, "request body is empty")
		default:
			return lerrors.Wrap(lerrors.ErrCodeInvalidFormat, err, "invalid JSON body")
		}
	}
	return nil
}
