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

	"github.com/gorilla/websocket"

	"github.com/krotik/tempograph/algorithms"
	"github.com/krotik/tempograph/runner"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

/*
progressMessage is one line of a /stream/runner session.
*/
type progressMessage struct {
	Iteration   int  `json:"iteration"`
	ActiveNodes int  `json:"active_nodes"`
	Done        bool `json:"done"`
}

/*
handleRunnerStream upgrades to a WebSocket and streams per-iteration
progress of a DegreeAll run over the request's view, one JSON message
per BSP iteration, followed by a final message with done=true.
*/
func (s *Server) handleRunnerStream(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		print("websocket upgrade failed: ", err)
		return
	}
	defer conn.Close()

	v := s.viewFromQuery(r)

	maxIter := s.cfg.Runner.MaxIterations
	if raw := r.URL.Query().Get("max_iterations"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			maxIter = n
		}
	}

	cfg := runner.Config{
		Threads:       s.cfg.Runner.Threads,
		MaxIterations: maxIter,
		Progress: func(iteration, active int) {
			msg := progressMessage{Iteration: iteration, ActiveNodes: active}
			payload, _ := json.Marshal(msg)
			_ = conn.WriteMessage(websocket.TextMessage, payload)
		},
	}

	algorithms.DegreeAll(v, cfg)

	final, _ := json.Marshal(progressMessage{Done: true})
	_ = conn.WriteMessage(websocket.TextMessage, final)
}
