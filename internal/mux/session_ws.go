package mux

import (
	"cardbot-server/pkg/deck"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const writeWait = time.Second * 10
const pongWait = time.Second * 60
const pingPeriod = pongWait * 9 / 10

type sessionRequest struct {
	Hand *deck.Hand `json:"hand"`
}

type sessionResponse struct {
	Round int64  `json:"round"`
	Error string `json:"error,omitempty"`
	*planResponse
}

// session is a single connected controller. The controller streams
// observed hand states and each one is answered with a plan.
type session struct {
	conn       *websocket.Conn
	controller string
	send       chan *sessionResponse
	round      int64
	logger     logrus.FieldLogger
}

func (m *Mux) getSessionWS() http.HandlerFunc {
	upgrader := &websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logrus.WithError(err).Error("could not upgrade connection")
			return
		}

		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			_ = conn.SetReadDeadline(time.Now().Add(pongWait))
			return nil
		})

		controller, _ := r.Context().Value(ctxControllerKey).(string)
		sess := &session{
			conn:       conn,
			controller: controller,
			send:       make(chan *sessionResponse, 8),
			logger:     logrus.WithField("controller", controller),
		}

		go sess.writeLoop()
		sess.readLoop()
		close(sess.send)
	}
}

func (s *session) readLoop() {
	for {
		_, msg, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.WithError(err).Error("could not read message")
			}
			return
		}

		var req sessionRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			s.send <- &sessionResponse{Round: s.round, Error: err.Error()}
			continue
		}

		s.send <- s.handle(&req)
	}
}

// handle plans the observed hand. The round number only advances when
// a plan succeeds, so the controller can detect dropped requests.
func (s *session) handle(req *sessionRequest) *sessionResponse {
	if req.Hand == nil {
		return &sessionResponse{Round: s.round, Error: "missing hand"}
	}

	plan, err := buildPlan(*req.Hand)
	if err != nil {
		return &sessionResponse{Round: s.round, Error: err.Error()}
	}

	s.round++
	recordRound(s.controller, plan)

	return &sessionResponse{Round: s.round, planResponse: plan}
}

func (s *session) writeLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = s.conn.Close()
	}()

	for {
		select {
		case <-ticker.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case msg, ok := <-s.send:
			if !ok {
				_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
				_ = s.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}

			s.logger.WithField("round", msg.Round).Trace("sending plan")

			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteJSON(msg); err != nil {
				s.logger.WithError(err).Error("could not write message")
				return
			}
		}
	}
}
