package socket

import (
	"encoding/json"
	"net/http"

	"github.com/DedS3t/monopoly-properties/app/models"
	"github.com/DedS3t/monopoly-properties/platform/board"
	"github.com/DedS3t/monopoly-properties/platform/queries"
	socketio "github.com/googollee/go-socket.io"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

const boardRoom = "board"

// Server pushes property updates to every client that joined the board room.
type Server struct {
	io        *socketio.Server
	board     *board.Board
	broadcast func(event string, payload string)
}

func CreateSocketIOServer(b *board.Board) (*Server, error) {
	server, err := socketio.NewServer(nil)
	if err != nil {
		return nil, err
	}
	s := &Server{io: server, board: b}
	s.broadcast = func(event string, payload string) {
		server.BroadcastToRoom("/", boardRoom, event, payload)
	}

	server.OnConnect("/", func(conn socketio.Conn) error {
		conn.SetContext("")
		return nil
	})

	server.OnEvent("/", "join-board", func(conn socketio.Conn) {
		conn.Join(boardRoom)
		event, payload := s.joinReply()
		conn.Emit(event, payload)
		logrus.WithField("conn", conn.ID()).Debug("joined board")
	})

	server.OnEvent("/", "property-status", func(conn socketio.Conn, name string) {
		event, payload := s.statusReply(name)
		conn.Emit(event, payload)
	})

	server.OnError("/", func(conn socketio.Conn, e error) {
		logrus.WithError(e).Warn("socket error")
	})

	server.OnDisconnect("/", func(conn socketio.Conn, reason string) {
		conn.LeaveAll()
	})

	return s, nil
}

func (s *Server) joinReply() (string, string) {
	payload, err := json.Marshal(s.board.Statuses())
	if err != nil {
		return "error-message", "Board unavailable"
	}
	return "joined-board", string(payload)
}

func (s *Server) statusReply(name string) (string, string) {
	status, err := queries.GetStatus(s.board, name)
	if err != nil {
		return "error-message", "Unknown property"
	}
	payload, err := json.Marshal(status)
	if err != nil {
		return "error-message", "Status unavailable"
	}
	return "property-status", string(payload)
}

// PropertyChanged implements queries.Notifier.
func (s *Server) PropertyChanged(result models.ActionResult) {
	payload, err := json.Marshal(result)
	if err != nil {
		logrus.WithError(err).Error("encode property update")
		return
	}
	s.broadcast("property-update", string(payload))
}

func (s *Server) Handler(allowedOrigins []string) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
	})

	mux := http.NewServeMux()
	mux.Handle("/socket.io/", s.io)
	return c.Handler(mux)
}

func (s *Server) ListenAndServe(addr string, allowedOrigins []string) error {
	go s.io.Serve()
	defer s.io.Close()
	return http.ListenAndServe(addr, s.Handler(allowedOrigins))
}
