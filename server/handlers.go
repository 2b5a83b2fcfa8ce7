/*
 * tempograph
 *
 * This Source Code Form is subject to the terms of the Mozilla Public
 * License, v. 2.0. If a copy of the MPL was not distributed with this
 * file, You can obtain one at http://mozilla.org/MPL/2.0/.
 */

package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/krotik/tempograph/algorithms"
	"github.com/krotik/tempograph/graph/util"
	"github.com/krotik/tempograph/query"
	"github.com/krotik/tempograph/runner"
	"github.com/krotik/tempograph/tgtime"
	"github.com/krotik/tempograph/tgview"
)

/*
ErrorResponse is the JSON body returned for a non-2xx response.
*/
type ErrorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, ErrorResponse{Error: msg})
}

/*
externalIDFromQuery builds an ExternalID from a raw id string: numeric
strings resolve to NumID, anything else to StrID.
*/
func externalIDFromQuery(raw string) util.ExternalID {
	if n, err := strconv.ParseUint(raw, 10, 64); err == nil {
		return util.NumID(n)
	}
	return util.StrID(raw)
}

func externalIDString(ext util.ExternalID) string {
	if ext.IsString {
		return ext.Str
	}
	return strconv.FormatUint(ext.Num, 10)
}

/*
viewFromQuery builds a View over m scoped by the request's optional
"start", "end" and "layer" query parameters. start/end accept any
literal tgtime.ParseTime understands: a plain integer, an ISO-like
timestamp, or a duration expression.
*/
func (s *Server) viewFromQuery(r *http.Request) tgview.View {
	v := tgview.New(s.m)

	q := r.URL.Query()
	if startStr, endStr := q.Get("start"), q.Get("end"); startStr != "" && endStr != "" {
		start, err1 := tgtime.ParseTime(startStr)
		end, err2 := tgtime.ParseTime(endStr)
		if err1 == nil && err2 == nil {
			v = v.Window(start, end)
		}
	}
	if layer := q.Get("layer"); layer != "" {
		v = v.Layer(layer)
	}

	return v
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"uptime": time.Since(s.startTime).String(),
		"nodes":  s.m.NodesLen(),
		"edges":  s.m.EdgesLen(),
	})
}

/*
handleNode resolves /nodes/{id} to a node's degree and constant
properties within the request's view scope, plus the view's bounds as
window_start/window_end when the view has any.
*/
func (s *Server) handleNode(w http.ResponseWriter, r *http.Request) {
	raw := strings.TrimPrefix(r.URL.Path, "/nodes/")
	if raw == "" {
		respondError(w, http.StatusBadRequest, "missing node id")
		return
	}

	v := s.viewFromQuery(r)
	nv, ok := v.NodeByExternal(externalIDFromQuery(raw))
	if !ok {
		respondError(w, http.StatusNotFound, "node not found in scope")
		return
	}

	constant, _ := nv.Properties()
	props := make(map[string]string)
	for _, k := range constant.Keys() {
		val, _ := constant.Get(k)
		props[k] = val.String()
	}

	start, end, ok := nv.View.Bounds()
	resp := map[string]interface{}{
		"degree":     nv.Degree(),
		"in_degree":  nv.InDegree(),
		"out_degree": nv.OutDegree(),
		"properties": props,
	}
	if ok {
		resp["window_start"] = start
		resp["window_end"] = end
	}

	respondJSON(w, http.StatusOK, resp)
}

/*
handleDegree runs DegreeAll over the request's view on the task runner,
using the server's configured worker count.
*/
func (s *Server) handleDegree(w http.ResponseWriter, r *http.Request) {
	v := s.viewFromQuery(r)

	result := algorithms.DegreeAll(v, runner.Config{Threads: s.cfg.Runner.Threads, MaxIterations: 1})

	out := make(map[string]algorithms.DegreeResult, len(result))
	for vid, d := range result {
		ext, ok := s.m.Interner().Resolve(vid)
		if !ok {
			continue
		}
		out[externalIDString(ext)] = d
	}

	respondJSON(w, http.StatusOK, out)
}

/*
handleBalance computes the balance reduction for the "property" and
"direction" query parameters ("out", "in", "both"; default "both").
*/
func (s *Server) handleBalance(w http.ResponseWriter, r *http.Request) {
	propName := r.URL.Query().Get("property")
	if propName == "" {
		respondError(w, http.StatusBadRequest, "missing property parameter")
		return
	}

	dir := query.BOTH
	switch r.URL.Query().Get("direction") {
	case "out":
		dir = query.OUT
	case "in":
		dir = query.IN
	}

	v := s.viewFromQuery(r)
	result := query.Balance(v, propName, dir)

	out := make(map[string]float64, len(result))
	for vid, bal := range result {
		ext, ok := s.m.Interner().Resolve(vid)
		if !ok {
			continue
		}
		out[externalIDString(ext)] = bal
	}

	respondJSON(w, http.StatusOK, out)
}

/*
handleNeighbours lists the neighbours of the node named by the "id"
query parameter in the given "direction" ("out", "in", "both"; default
"both").
*/
func (s *Server) handleNeighbours(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("id")
	if raw == "" {
		respondError(w, http.StatusBadRequest, "missing id parameter")
		return
	}

	v := s.viewFromQuery(r)
	nv, ok := v.NodeByExternal(externalIDFromQuery(raw))
	if !ok {
		respondError(w, http.StatusNotFound, "node not found in scope")
		return
	}

	var neighbours []util.VID
	switch r.URL.Query().Get("direction") {
	case "out":
		neighbours = nv.OutNeighbours()
	case "in":
		neighbours = nv.InNeighbours()
	default:
		neighbours = nv.Neighbours()
	}

	out := make([]string, 0, len(neighbours))
	for _, vid := range neighbours {
		ext, ok := s.m.Interner().Resolve(vid)
		if !ok {
			continue
		}
		out = append(out, externalIDString(ext))
	}

	respondJSON(w, http.StatusOK, out)
}
